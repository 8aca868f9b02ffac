// Package wfcerr defines the sentinel error kinds spec §7 distinguishes:
// contradiction (retryable), exhaustion (move on to the next problem), a
// malformed problem description (fatal to that problem), and I/O failure
// (fatal to that problem). Call sites wrap these with fmt.Errorf("...: %w",
// ...) for context, the same way the teacher wraps errors throughout
// pkg/generator and cmd/.
package wfcerr

import "errors"

var (
	// ErrContradiction means the solver's wave reached a cell with zero
	// alive patterns. The driver retries with a fresh seed.
	ErrContradiction = errors.New("wfc: contradiction reached during propagation")

	// ErrExhausted means every retry attempt for one problem contradicted.
	// The driver logs and moves on to the next problem.
	ErrExhausted = errors.New("wfc: exhausted all attempts for this problem")

	// ErrMalformedProblem covers a missing tile file, an unknown symmetry
	// letter, a zero tile size, an unreadable example image, or an
	// observed example pattern absent from the declared tile set. Fatal
	// to the current problem only.
	ErrMalformedProblem = errors.New("wfc: malformed problem description")

	// ErrIO covers output-directory creation and image-write failures.
	// Fatal to the affected problem only.
	ErrIO = errors.New("wfc: I/O failure")
)
