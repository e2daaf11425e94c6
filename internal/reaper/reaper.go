// Package reaper finds the processes that own a TCP port and force-kills them.
//
// A sweep is two strictly ordered phases. Lookup runs one platform diagnostic
// command (netstat on Windows, lsof elsewhere) and parses its text output into
// a set of PIDs. Terminate then runs the platform kill command once per PID.
// Lookup failures abort the sweep; kill failures are ignored, since a process
// that is already gone leaves the port just as free.
package reaper

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// Reaper clears a port on one platform using Runner for every external
// command.
type Reaper struct {
	Runner   Runner
	Platform Platform
	Match    MatchMode
	// DryRun stops a sweep after lookup.
	DryRun bool
	Log    logrus.FieldLogger
}

// Report describes the outcome of a sweep.
type Report struct {
	Port     int      `json:"port"`
	Platform Platform `json:"platform"`
	PIDs     []PID    `json:"pids"`
	DryRun   bool     `json:"dry_run"`
}

// New returns a Reaper for the running platform that executes real commands.
func New(log logrus.FieldLogger) *Reaper {
	return &Reaper{
		Runner:   ExecRunner{},
		Platform: Detect(),
		Match:    MatchLocal,
		Log:      log,
	}
}

// Reap finds every process owning port and kills each one. Every kill happens
// after lookup has finished. A port nobody owns yields an empty report and a
// nil error.
func (r *Reaper) Reap(ctx context.Context, port int) (Report, error) {
	pids, err := r.FindOwningProcesses(ctx, port)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Port:     port,
		Platform: r.Platform,
		PIDs:     pids,
		DryRun:   r.DryRun,
	}
	if rep.PIDs == nil {
		rep.PIDs = []PID{}
	}
	if r.DryRun {
		return rep, nil
	}

	for _, pid := range pids {
		r.Kill(ctx, pid)
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	return rep, nil
}

func (r *Reaper) log() logrus.FieldLogger {
	if r.Log != nil {
		return r.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
