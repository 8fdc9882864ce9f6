package invocation

import (
	"time"
)

// Mode selects where a function is invoked.
type Mode string

const (
	// ModeLocal invokes the function in the local emulator.
	ModeLocal Mode = "local"
	// ModeRemote invokes the deployed function in the cloud.
	ModeRemote Mode = "remote"
)

// ParseMode accepts exactly "local" or "remote".
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeLocal, ModeRemote:
		return Mode(s), true
	default:
		return "", false
	}
}

// Kind is the outcome of one invocation
type Kind string

const (
	// KindSuccess means the function answered 200 without errors.
	KindSuccess Kind = "SUCCESS"
	// KindFailure means the function answered, but not successfully, or the answer could not be parsed.
	KindFailure Kind = "FAILURE"
	// KindNotFound means no declared function matches the fixture.
	KindNotFound Kind = "NOT_FOUND"
	// KindProcessFailed means the invoking process exited with a non-zero code.
	KindProcessFailed Kind = "PROCESS_FAILED"
	// KindEmptyResponse means the process succeeded but produced no response.
	KindEmptyResponse Kind = "EMPTY_RESPONSE"
	// KindErrored means the invocation could not be carried out, e.g. the deployed name lookup failed.
	KindErrored Kind = "ERRORED"
)

// Result is the settled outcome of invoking one fixture.
type Result struct {
	Fixture string `json:"fixture"`
	Mode    Mode   `json:"mode"`
	Kind    Kind   `json:"kind"`
	// FunctionName is the declared name from the descriptor.
	FunctionName string `json:"function_name,omitempty"`
	// Target is the deployed name in remote mode.
	Target     string `json:"target,omitempty"`
	OutputPath string `json:"output_path,omitempty"`
	ExitCode   int    `json:"exit_code"`
	// Response is set whenever the output could be decoded.
	Response *Response `json:"response,omitempty"`
	// Note explains a Failure that is not a function error, e.g. malformed output.
	Note string `json:"note,omitempty"`
	// Err holds the cause of NotFound and Errored results.
	Err   error  `json:"-"`
	Error string `json:"error,omitempty"`
	// Verbose asks reporters to print the full response.
	Verbose   bool          `json:"-"`
	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`
}

// Passed reports whether the invocation succeeded.
func (r Result) Passed() bool {
	return r.Kind == KindSuccess
}

// Reporter receives every settled result. Implementations must be safe for concurrent use.
type Reporter interface {
	Report(result Result)
}
