package hookresponse

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
)

// Success is the response after a notification was delivered.
func Success() *HookResponse {
	return &HookResponse{Continue: true, SuppressOutput: true}
}

// DeliveryFailed is the response when the event was understood but the
// notification could not be shown. The agent continues.
func DeliveryFailed(err error) *HookResponse {
	return &HookResponse{
		Continue:       true,
		SuppressOutput: true,
		SystemMessage:  "Failed to send notification: " + err.Error(),
	}
}

// ParseFailed is the response when the hook payload was rejected. Output is
// not suppressed so the user sees the message.
func ParseFailed(err error) *HookResponse {
	return &HookResponse{
		Continue:       true,
		SuppressOutput: false,
		SystemMessage:  "Failed to parse input JSON: " + err.Error(),
	}
}

// Failed is the response when anot itself could not handle the event, for
// example because its preferences are invalid. The message is shown.
func Failed(err error) *HookResponse {
	return &HookResponse{
		Continue:       true,
		SuppressOutput: false,
		SystemMessage:  "anot failed: " + err.Error(),
	}
}

// Write encodes r as a single JSON line.
func (r *HookResponse) Write(w io.Writer) error {
	data, err := json.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "marshal hook response")
	}

	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "write hook response")
	}

	return nil
}
