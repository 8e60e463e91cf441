package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger: colored text in development,
// JSON everywhere else. An unknown level falls back to info and is reported.
func Setup(out io.Writer, level string, development bool) {
	logrus.SetOutput(out)
	if development {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.WithField("level", level).Warn("unknown LOG_LEVEL, using info")
		return
	}
	logrus.SetLevel(lvl)
}
