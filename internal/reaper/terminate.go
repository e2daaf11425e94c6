package reaper

import (
	"context"

	"github.com/sirupsen/logrus"
)

func killCommand(p Platform, pid PID) (string, []string) {
	if p == Windows {
		return "taskkill", []string{"/PID", string(pid), "/F"}
	}
	return "kill", []string{"-9", string(pid)}
}

// Kill force-kills pid and does not report whether it worked. A process that
// already exited, or one we lack permission to kill, is not an error here; the
// outcome is only logged at debug level.
func (r *Reaper) Kill(ctx context.Context, pid PID) {
	name, args := killCommand(r.Platform, pid)
	entry := r.log().WithFields(logrus.Fields{"pid": pid, "command": name})

	res, err := r.Runner.Run(ctx, name, args...)
	switch {
	case err != nil:
		entry.WithError(err).Debug("kill command did not run")
	case res.ExitCode != 0:
		entry.WithField("exit_code", res.ExitCode).Debug("kill command failed")
	default:
		entry.Debug("kill command succeeded")
	}
}
