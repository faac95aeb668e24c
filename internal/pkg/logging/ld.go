package logging

import (
	"io"
	"net"
	"os"

	"s3-buckets/internal/config"

	logdoc "github.com/SandQuattro/logdoc-go-appender/logrus"
	"github.com/gurkankaymak/hocon"
	"github.com/sirupsen/logrus"
)

// LDSubsystemInit connects the LogDoc appender described by the ld.* keys.
func LDSubsystemInit(conf *hocon.Config) (net.Conn, error) {
	return logdoc.Init(
		config.String(conf, "ld.proto", "tcp"),
		config.String(conf, "ld.host", "localhost")+":"+config.String(conf, "ld.port", "5656"),
		config.String(conf, "ld.app", "s3-buckets"),
		logdoc.TEXT,
	)
}

// New returns the process logger. With ld.enabled the LogDoc logger is used
// and the returned closer releases its connection; otherwise a plain logrus
// logger writing to stderr is built and the closer is a no-op.
func New(conf *hocon.Config) (logrus.FieldLogger, io.Closer) {
	level := parseLevel(config.String(conf, "log.level", "info"))

	if config.Bool(conf, "ld.enabled", false) {
		conn, err := LDSubsystemInit(conf)
		if err == nil && conn != nil {
			logger := logdoc.GetLogger()
			logger.SetLevel(level)
			return logger, conn
		}
		fallback := newStd(level)
		fallback.WithError(err).Warn("LogDoc subsystem unavailable, logging to stderr")
		return fallback, nopCloser{}
	}
	return newStd(level), nopCloser{}
}

func newStd(level logrus.Level) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger
}

func parseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
