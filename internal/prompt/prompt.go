// Package prompt provides utilities for interactive user prompts.
package prompt

//go:generate mockgen -source=prompt.go -destination=prompt_mock.go -package=prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrEmptyInput is returned when the user provides empty input and no default is set.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidInput is returned when the user provides invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// Prompter defines the interface for interactive prompts.
type Prompter interface {
	// Input prompts for a single line of text input.
	Input(prompt string, defaultValue string) (string, error)

	// Confirm prompts for a yes/no confirmation.
	Confirm(prompt string, defaultValue bool) (bool, error)

	// Select prompts for one of options and returns its index.
	Select(prompt string, options []string, defaultIndex int) (int, error)

	// MultiSelect prompts for any subset of options and returns the
	// selected indexes in ascending order.
	MultiSelect(prompt string, options []string, defaults []int) ([]int, error)
}

// StdPrompter is the standard implementation of Prompter using stdin/stdout.
type StdPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewStdPrompter creates a new StdPrompter. Prompts go to stderr so they
// never mix with command output.
func NewStdPrompter() *StdPrompter {
	return &StdPrompter{
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stderr,
	}
}

// NewPrompter creates a new Prompter with custom reader and writer (for testing).
func NewPrompter(reader io.Reader, writer io.Writer) *StdPrompter {
	return &StdPrompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// Input prompts for a single line of text input.
func (p *StdPrompter) Input(prompt string, defaultValue string) (string, error) {
	// Format prompt with default value if provided
	if defaultValue != "" {
		if _, err := fmt.Fprintf(p.writer, "%s [%s]: ", prompt, defaultValue); err != nil {
			return "", errors.Wrap(err, "failed to write prompt")
		}
	} else {
		if _, err := fmt.Fprintf(p.writer, "%s: ", prompt); err != nil {
			return "", errors.Wrap(err, "failed to write prompt")
		}
	}

	input, err := p.readLine()
	if err != nil {
		return "", err
	}

	// Use default if input is empty
	if input == "" {
		if defaultValue == "" {
			return "", ErrEmptyInput
		}

		return defaultValue, nil
	}

	return input, nil
}

// Confirm prompts for a yes/no confirmation.
func (p *StdPrompter) Confirm(prompt string, defaultValue bool) (bool, error) {
	// Format prompt with default value
	defaultStr := "y/N"
	if defaultValue {
		defaultStr = "Y/n"
	}

	if _, err := fmt.Fprintf(p.writer, "%s [%s]: ", prompt, defaultStr); err != nil {
		return false, errors.Wrap(err, "failed to write prompt")
	}

	input, err := p.readLine()
	if err != nil {
		return false, err
	}

	input = strings.ToLower(input)

	// Use default if input is empty
	if input == "" {
		return defaultValue, nil
	}

	// Parse yes/no
	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, errors.Wrapf(ErrInvalidInput, "expected y/n, got %q", input)
	}
}

// Select prints options as a numbered list and reads one number.
func (p *StdPrompter) Select(prompt string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return 0, errors.Wrap(ErrInvalidInput, "no options")
	}

	if err := p.writeOptions(prompt, options); err != nil {
		return 0, err
	}

	if _, err := fmt.Fprintf(p.writer, "Choice [%d]: ", defaultIndex+1); err != nil {
		return 0, errors.Wrap(err, "failed to write prompt")
	}

	input, err := p.readLine()
	if err != nil {
		return 0, err
	}

	if input == "" {
		return defaultIndex, nil
	}

	return parseChoice(input, len(options))
}

// MultiSelect prints options as a numbered list and reads a comma or space
// separated list of numbers. "all" and "none" are accepted; empty input
// keeps the defaults.
func (p *StdPrompter) MultiSelect(prompt string, options []string, defaults []int) ([]int, error) {
	if err := p.writeOptions(prompt, options); err != nil {
		return nil, err
	}

	current := make([]string, 0, len(defaults))
	for _, i := range defaults {
		current = append(current, strconv.Itoa(i+1))
	}

	if _, err := fmt.Fprintf(p.writer, "Choices (e.g. 1,3, all, none) [%s]: ", strings.Join(current, ",")); err != nil {
		return nil, errors.Wrap(err, "failed to write prompt")
	}

	input, err := p.readLine()
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(input) {
	case "":
		out := slices.Clone(defaults)
		slices.Sort(out)

		return out, nil
	case "all":
		out := make([]int, len(options))
		for i := range out {
			out[i] = i
		}

		return out, nil
	case "none":
		return []int{}, nil
	}

	fields := strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == ' ' })
	selected := make([]int, 0, len(fields))

	for _, field := range fields {
		i, err := parseChoice(field, len(options))
		if err != nil {
			return nil, err
		}

		if !slices.Contains(selected, i) {
			selected = append(selected, i)
		}
	}

	slices.Sort(selected)

	return selected, nil
}

func (p *StdPrompter) writeOptions(prompt string, options []string) error {
	var b strings.Builder

	b.WriteString(prompt + "\n")

	for i, option := range options {
		fmt.Fprintf(&b, "  %d) %s\n", i+1, option)
	}

	if _, err := io.WriteString(p.writer, b.String()); err != nil {
		return errors.Wrap(err, "failed to write prompt")
	}

	return nil
}

// readLine reads one trimmed line. A final line without newline is accepted.
func (p *StdPrompter) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", errors.Wrap(err, "failed to read input")
	}

	return strings.TrimSpace(input), nil
}

func parseChoice(s string, n int) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 1 || i > n {
		return 0, errors.Wrapf(ErrInvalidInput, "expected a number between 1 and %d, got %q", n, s)
	}

	return i - 1, nil
}
