package settings

import (
	"bytes"
	"strings"
)

// rootEntry is the byte span of one key-value statement in the root table,
// from the start of its line to just past its terminating newline.
type rootEntry struct {
	key        string
	start, end int
}

// spliceRootKey replaces the root-table statement for key with line, or
// removes it when line is nil. A missing key is appended to the end of the
// root table, ahead of the first table header. doc must be valid TOML.
func spliceRootKey(doc []byte, key string, line []byte) []byte {
	entries, rootEnd := scanRootTable(doc)

	for _, e := range entries {
		if e.key != key {
			continue
		}

		out := make([]byte, 0, len(doc)+len(line))
		out = append(out, doc[:e.start]...)
		out = append(out, line...)

		return append(out, doc[e.end:]...)
	}

	if line == nil {
		return doc
	}

	ins := insertionPoint(doc, rootEnd)

	out := make([]byte, 0, len(doc)+len(line)+2)
	out = append(out, doc[:ins]...)

	if ins > 0 && doc[ins-1] != '\n' {
		out = append(out, '\n')
	}

	out = append(out, line...)

	if ins == rootEnd && rootEnd < len(doc) {
		out = append(out, '\n')
	}

	return append(out, doc[ins:]...)
}

// insertionPoint backs up from the end of the root table over blank lines
// so a new key lands right after the last root statement.
func insertionPoint(doc []byte, rootEnd int) int {
	ins := rootEnd

	for ins > 0 && doc[ins-1] == '\n' {
		prev := bytes.LastIndexByte(doc[:ins-1], '\n')
		if len(bytes.TrimSpace(doc[prev+1:ins-1])) != 0 {
			break
		}

		ins = prev + 1
	}

	return ins
}

// scanRootTable lists the key-value statements before the first table
// header and returns the offset where the root table ends.
func scanRootTable(doc []byte) ([]rootEntry, int) {
	var entries []rootEntry

	pos := 0
	for pos < len(doc) {
		lineStart := pos
		p := skipBlank(doc, pos)

		if p >= len(doc) {
			break
		}

		switch doc[p] {
		case '\n':
			pos = p + 1

			continue
		case '\r':
			pos = p + 1

			continue
		case '#':
			pos = lineEnd(doc, p)

			continue
		case '[':
			return entries, lineStart
		}

		eq := keyEnd(doc, p)
		if eq >= len(doc) {
			break
		}

		end := valueEnd(doc, eq+1)
		entries = append(entries, rootEntry{
			key:   normalizeKey(string(doc[p:eq])),
			start: lineStart,
			end:   end,
		})
		pos = end
	}

	return entries, len(doc)
}

func skipBlank(doc []byte, p int) int {
	for p < len(doc) && (doc[p] == ' ' || doc[p] == '\t') {
		p++
	}

	return p
}

// lineEnd returns the offset just past the next newline.
func lineEnd(doc []byte, p int) int {
	if i := bytes.IndexByte(doc[p:], '\n'); i >= 0 {
		return p + i + 1
	}

	return len(doc)
}

// keyEnd returns the offset of the '=' that ends the key starting at p.
func keyEnd(doc []byte, p int) int {
	for p < len(doc) {
		switch doc[p] {
		case '=':
			return p
		case '"':
			p = basicStringEnd(doc, p+1)
		case '\'':
			p = literalStringEnd(doc, p+1)
		default:
			p++
		}
	}

	return p
}

// valueEnd returns the offset just past the newline that terminates the
// value starting at p, honoring strings, arrays, inline tables and comments.
func valueEnd(doc []byte, p int) int {
	depth := 0

	for p < len(doc) {
		switch c := doc[p]; c {
		case '"':
			if bytes.HasPrefix(doc[p:], []byte(`"""`)) {
				p = multilineEnd(doc, p+3, `"""`, true)
			} else {
				p = basicStringEnd(doc, p+1)
			}
		case '\'':
			if bytes.HasPrefix(doc[p:], []byte(`'''`)) {
				p = multilineEnd(doc, p+3, `'''`, false)
			} else {
				p = literalStringEnd(doc, p+1)
			}
		case '[', '{':
			depth++
			p++
		case ']', '}':
			depth--
			p++
		case '#':
			p = lineEnd(doc, p) - 1
		case '\n':
			if depth <= 0 {
				return p + 1
			}

			p++
		default:
			p++
		}
	}

	return len(doc)
}

// basicStringEnd returns the offset past the closing quote of a basic string.
func basicStringEnd(doc []byte, p int) int {
	for p < len(doc) {
		switch doc[p] {
		case '\\':
			p += 2
		case '"':
			return p + 1
		case '\n':
			return p
		default:
			p++
		}
	}

	return len(doc)
}

// literalStringEnd returns the offset past the closing quote of a literal string.
func literalStringEnd(doc []byte, p int) int {
	for p < len(doc) {
		switch doc[p] {
		case '\'':
			return p + 1
		case '\n':
			return p
		default:
			p++
		}
	}

	return len(doc)
}

// multilineEnd returns the offset past the delimiter closing a multi-line
// string. Up to two extra quotes may precede the delimiter.
func multilineEnd(doc []byte, p int, delim string, escapes bool) int {
	for p < len(doc) {
		if escapes && doc[p] == '\\' {
			p += 2

			continue
		}

		if bytes.HasPrefix(doc[p:], []byte(delim)) {
			p += len(delim)
			for i := 0; i < 2 && p < len(doc) && doc[p] == delim[0]; i++ {
				p++
			}

			return p
		}

		p++
	}

	return len(doc)
}

// normalizeKey trims and unquotes a simple key. Dotted keys are returned
// as written.
func normalizeKey(raw string) string {
	key := strings.TrimSpace(raw)

	if len(key) >= 2 {
		first, last := key[0], key[len(key)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			inner := key[1 : len(key)-1]
			if !strings.ContainsAny(inner, `"'\`) {
				return inner
			}
		}
	}

	return key
}
