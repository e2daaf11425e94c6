// Package reapertest provides a scripted reaper.Runner for tests.
package reapertest

import (
	"context"

	"github.com/dsmmcken/killport/internal/reaper"
)

// Call records one command the runner was asked to execute.
type Call struct {
	Name string
	Args []string
}

// Runner answers commands from canned results keyed by command name and
// records every call. Commands with no entry succeed with empty output.
type Runner struct {
	Results map[string]reaper.Result
	Errors  map[string]error
	Calls   []Call
}

func (r *Runner) Run(_ context.Context, name string, args ...string) (reaper.Result, error) {
	r.Calls = append(r.Calls, Call{Name: name, Args: append([]string(nil), args...)})
	if err := r.Errors[name]; err != nil {
		return reaper.Result{}, err
	}
	return r.Results[name], nil
}

// CallsTo returns the recorded calls to the named command, in order.
func (r *Runner) CallsTo(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
