// Package logging builds the logrus logger shared by killport's commands.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing plain key=value lines to w. Only warnings and
// errors are shown unless verbose is set.
func New(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
