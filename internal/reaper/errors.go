package reaper

import "fmt"

// LookupError is returned when the diagnostic command that lists port owners
// could not run or exited with a failure status. A sweep that hits it never
// attempts a kill.
type LookupError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *LookupError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("lookup with %s failed: %v", e.Command, e.Err)
	case e.Stderr != "":
		return fmt.Sprintf("lookup with %s failed: exit status %d: %s", e.Command, e.ExitCode, e.Stderr)
	default:
		return fmt.Sprintf("lookup with %s failed: exit status %d", e.Command, e.ExitCode)
	}
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
