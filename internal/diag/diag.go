// Package diag is the diagnostic reporter: per-path error lines, the
// two single-shot warnings from spec.md §4.4, and the "did any error
// happen" bit that determines the process exit status (§6, §7).
//
// It wraps github.com/sirupsen/logrus the way backend/local wraps
// fs.Errorf/fs.Debugf in the teacher repo: one log call per reportable
// condition, named by the path it concerns. The formatter is pinned
// down to spec.md §6's exact wire format — "path: reason\n", nothing
// else — so logrus's structured-field machinery never becomes visible
// on stderr; it is used here purely as the leveled-logging backend,
// not for its structured output.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Reporter accumulates per-path diagnostics and tracks whether any
// reportable error occurred during the run.
type Reporter struct {
	log *logrus.Logger

	mu      sync.Mutex
	errored bool
	warned  map[string]bool
}

// plainFormatter renders exactly "message\n", discarding level,
// timestamp, and fields — logrus is used for its leveling, not its
// structured output, since spec.md §6 mandates unstructured stderr.
type plainFormatter struct{}

func (plainFormatter) Format(e *logrus.Entry) ([]byte, error) {
	return []byte(e.Message + "\n"), nil
}

// New returns a Reporter writing to w at the given verbosity. debug
// enables logrus.DebugLevel (the -d flag, an unspecified implementor
// convenience per spec.md §9); otherwise only warnings and errors are
// emitted.
func New(w io.Writer, debug bool) *Reporter {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(plainFormatter{})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return &Reporter{log: l, warned: make(map[string]bool)}
}

// NewStderr is the usual constructor: a Reporter writing to os.Stderr.
func NewStderr(debug bool) *Reporter {
	return New(os.Stderr, debug)
}

// Errorf reports a per-path failure ("path: reason") and flips the
// "any error happened" bit. Used for every "Report" policy in spec.md
// §7's error-kind table: root open/stat failures, descendant
// open/stat failures, extent mapping failures, and readahead failures.
func (r *Reporter) Errorf(path string, format string, args ...interface{}) {
	r.mu.Lock()
	r.errored = true
	r.mu.Unlock()
	r.log.Errorf("%s: %s", path, fmt.Sprintf(format, args...))
}

// WarnOnce emits msg at most once per run per key, implementing the
// single-shot warnings ("file system does not support dt_type", "disk
// location unknown" and "no FIEMAP and no root"). Does not set the error bit —
// these are degraded-mode notices, not failures.
func (r *Reporter) WarnOnce(key, msg string) {
	r.mu.Lock()
	already := r.warned[key]
	if !already {
		r.warned[key] = true
	}
	r.mu.Unlock()
	if !already {
		r.log.Warn(msg)
	}
}

// Debugf logs a progress narration at debug level (pass boundaries,
// entry and extent counts); a no-op unless -d was given.
func (r *Reporter) Debugf(format string, args ...interface{}) {
	r.log.Debugf(format, args...)
}

// Errored reports whether any Errorf call has been made so far —
// the single "any error happened" bit spec.md §6 requires for the
// process exit status.
func (r *Reporter) Errored() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errored
}

// Fatal reports an unrecoverable condition (allocation failure, §4.1)
// and terminates the process with a distinct nonzero status.
func Fatal(msg string) {
	fmt.Fprintf(os.Stderr, "fastwalk: %s\n", msg)
	os.Exit(2)
}
