// Package crashdump records diagnostic information when anot panics.
package crashdump

import "time"

// CrashInfo is the content of one crash dump file.
type CrashInfo struct {
	ID         string       `json:"id"`
	Timestamp  time.Time    `json:"timestamp"`
	PanicValue string       `json:"panic_value"`
	StackTrace string       `json:"stack_trace"`
	Runtime    RuntimeInfo  `json:"runtime"`
	Context    *ContextInfo `json:"context,omitempty"`
	Metadata   DumpMetadata `json:"metadata"`
}

// RuntimeInfo describes the process at crash time.
type RuntimeInfo struct {
	GOOS         string `json:"goos"`
	GOARCH       string `json:"goarch"`
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
}

// ContextInfo describes what anot was doing. Payload text is never recorded.
type ContextInfo struct {
	Command   string `json:"command"`
	Agent     string `json:"agent,omitempty"`
	EventKind string `json:"event_kind,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// DumpMetadata carries host details.
type DumpMetadata struct {
	Version    string `json:"version"`
	User       string `json:"user,omitempty"`
	Hostname   string `json:"hostname,omitempty"`
	WorkingDir string `json:"working_dir,omitempty"`
}

// DumpSummary is a listing entry.
type DumpSummary struct {
	ID         string
	Timestamp  time.Time
	PanicValue string
	FilePath   string
	Size       int64
}
