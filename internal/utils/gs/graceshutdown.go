package gs

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// GracefulShutdown blocks until SIGINT or SIGTERM, then stops srv within timeout.
func GracefulShutdown(srv Shutdowner, timeout time.Duration, logger logrus.FieldLogger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	Shutdown(srv, timeout, logger)
}

func Shutdown(srv Shutdowner, timeout time.Duration, logger logrus.FieldLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	logger.Warn("Gracefully shutdown server...")
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("gracefully shutdown error")
	}
}
