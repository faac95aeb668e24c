package bucketsws

import (
	"net/http"
	"time"

	"s3-buckets/internal/app/interfaces"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	HandshakeTimeoutSecs = 10
)

type Endpoint struct {
	s           interfaces.BucketLister
	defaultSort string
	logger      logrus.FieldLogger
	upgrader    websocket.Upgrader
}

func New(s interfaces.BucketLister, defaultSort string, logger logrus.FieldLogger) *Endpoint {
	if defaultSort == "" {
		defaultSort = "asc"
	}
	return &Endpoint{
		s:           s,
		defaultSort: defaultSort,
		logger:      logger,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: time.Second * HandshakeTimeoutSecs,
			// Access is guarded by the token middleware, not by origin.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// WebSocketBucketsHandler upgrades GET /ws/buckets and answers every
// {"sort": "..."} message with a bucket listing until the client leaves.
func (e *Endpoint) WebSocketBucketsHandler(ctx echo.Context) error {
	ws, err := e.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		e.logger.WithError(err).Debug("Error on open of websocket connection")
		return echo.NewHTTPError(http.StatusBadRequest, "Error on open of websocket connection")
	}
	defer ws.Close()

	e.processingLoop(ctx.Request().Context(), ws)
	return nil
}
