package batch

import (
	"time"

	"lambdatest/internal/descriptor"
	"lambdatest/internal/invocation"
)

// DefaultTemplate is parsed when no template path is configured.
const DefaultTemplate = "template.yaml"

// InputError reports caller misuse, such as an unknown mode or an empty fixture set.
// Its message is meant to be shown to the user as is.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// Options configures a batch run.
type Options struct {
	// Mode is the raw mode argument, "local" or "remote".
	Mode string
	// Fixture optionally restricts the run to one fixture. It also turns on verbose output.
	Fixture string
	// Args are the command line arguments, quoted when no fixture is found.
	Args []string

	EventsDir    string
	OutputDir    string
	TemplatePath string
	StackName    string
	LocalBin     string
	RemoteBin    string

	// Parallel bounds the number of concurrent invocations; <= 0 runs all at once.
	Parallel int
	Verbose  bool

	Resolver *descriptor.Resolver
	Lookup   invocation.NameLookup
	Spawner  invocation.Spawner
	Reporter invocation.Reporter
}

// Summary is the outcome of a batch run. Results follow fixture order.
type Summary struct {
	RunID     string              `json:"run_id"`
	Mode      invocation.Mode     `json:"mode"`
	StartTime time.Time           `json:"start_time"`
	EndTime   time.Time           `json:"end_time"`
	Duration  time.Duration       `json:"duration"`
	Results   []invocation.Result `json:"results"`

	Total  int                     `json:"total"`
	Passed int                     `json:"passed"`
	Failed int                     `json:"failed"`
	Counts map[invocation.Kind]int `json:"counts"`
}

// Succeeded reports whether every fixture passed.
func (s *Summary) Succeeded() bool {
	return s.Failed == 0
}

func (s *Summary) tally() {
	s.Total = len(s.Results)
	s.Passed, s.Failed = 0, 0
	s.Counts = make(map[invocation.Kind]int)
	for _, r := range s.Results {
		s.Counts[r.Kind]++
		if r.Passed() {
			s.Passed++
		} else {
			s.Failed++
		}
	}
}
