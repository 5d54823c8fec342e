package crashdump

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"os/user"
	"runtime"
	"runtime/debug"
	"time"
)

const idHashLen = 8

// Capture builds a dump for a value recovered from a panic. It must run in
// the deferred function that recovered, so the stack still shows the panic
// site. ctx may be nil.
func Capture(recovered any, version string, ctx *ContextInfo) *CrashInfo {
	now := time.Now()
	value := panicText(recovered)

	return &CrashInfo{
		ID:         dumpID(now, value),
		Timestamp:  now,
		PanicValue: value,
		StackTrace: string(debug.Stack()),
		Runtime: RuntimeInfo{
			GOOS:         runtime.GOOS,
			GOARCH:       runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			NumCPU:       runtime.NumCPU(),
		},
		Context:  ctx,
		Metadata: hostMetadata(version),
	}
}

// panicText renders a recovered value. panic(nil) recovers as
// *runtime.PanicNilError since Go 1.21.
func panicText(v any) string {
	switch x := v.(type) {
	case nil, *runtime.PanicNilError:
		return "panic(nil)"
	case error:
		return x.Error()
	default:
		return fmt.Sprint(x)
	}
}

func hostMetadata(version string) DumpMetadata {
	meta := DumpMetadata{Version: version}

	if u, err := user.Current(); err == nil {
		meta.User = u.Username
	}

	meta.Hostname, _ = os.Hostname()
	meta.WorkingDir, _ = os.Getwd()

	return meta
}

// dumpID is crash-<local time>-<hash prefix>. The hash keeps two panics in
// the same second apart.
func dumpID(at time.Time, value string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%d-%s", at.UnixNano(), value))

	return "crash-" + at.Format("20060102T150405") + "-" + hex.EncodeToString(sum[:])[:idHashLen]
}
