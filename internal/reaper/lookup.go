package reaper

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// lsofNoMatch is the status lsof exits with when nothing matched the selector.
// Usage errors exit with the same status, so stderr decides which one it was.
const lsofNoMatch = 1

const lsofWarningPrefix = "lsof: WARNING"

func lookupCommand(p Platform, port int) (string, []string) {
	if p == Windows {
		return "netstat", []string{"-ano"}
	}
	return "lsof", []string{"-t", "-iTCP:" + strconv.Itoa(port), "-sTCP:LISTEN"}
}

// FindOwningProcesses returns the distinct PIDs owning port. It spawns exactly
// one diagnostic process. An unowned port yields an empty result, not an error.
func (r *Reaper) FindOwningProcesses(ctx context.Context, port int) ([]PID, error) {
	name, args := lookupCommand(r.Platform, port)
	entry := r.log().WithFields(logrus.Fields{
		"command": name + " " + strings.Join(args, " "),
		"port":    port,
	})
	entry.Debug("looking up port owners")

	res, err := r.Runner.Run(ctx, name, args...)
	if err != nil {
		return nil, &LookupError{Command: name, Err: err}
	}

	var pids []PID
	switch r.Platform {
	case Windows:
		if res.ExitCode != 0 {
			return nil, lookupFailed(name, res)
		}
		pids = ParseNetstatOutput(string(res.Stdout), port, r.Match)
	default:
		if res.ExitCode == lsofNoMatch && len(bytes.TrimSpace(res.Stdout)) == 0 && onlyLsofWarnings(res.Stderr) {
			if stderr := strings.TrimSpace(string(res.Stderr)); stderr != "" {
				entry.WithField("stderr", stderr).Debug("lsof reported no matches")
			}
			return nil, nil
		}
		if res.ExitCode != 0 {
			return nil, lookupFailed(name, res)
		}
		pids = ParseLsofOutput(string(res.Stdout))
	}

	entry.WithField("pids", pids).Debug("lookup finished")
	return pids, nil
}

func lookupFailed(name string, res Result) *LookupError {
	return &LookupError{
		Command:  name,
		ExitCode: res.ExitCode,
		Stderr:   strings.TrimSpace(string(res.Stderr)),
	}
}

// onlyLsofWarnings reports whether every non-blank stderr line is one of the
// warnings lsof prints on an otherwise successful run.
func onlyLsofWarnings(stderr []byte) bool {
	for _, line := range strings.Split(string(stderr), "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, lsofWarningPrefix) {
			return false
		}
	}
	return true
}
