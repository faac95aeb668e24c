package bucketsws

import (
	"context"
	"encoding/json"
	"errors"

	"s3-buckets/internal/app/structs"

	"github.com/gorilla/websocket"
)

func (e *Endpoint) processingLoop(ctx context.Context, ws *websocket.Conn) {
	if err := e.sendStatus(ws, structs.ListStatus{Code: 200, Status: "READY"}); err != nil {
		e.logger.WithError(err).Error("Error sending status")
		return
	}
	e.logger.Debug("Websocket client connected, ready for interaction")

	for {
		mt, message, err := ws.ReadMessage()
		if err != nil {
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) && (closeErr.Code == websocket.CloseNormalClosure || closeErr.Code == websocket.CloseGoingAway) {
				e.logger.Debug("Client closed websocket connection")
			} else {
				e.logger.WithError(err).Warn("Websocket read failed")
			}
			return
		}

		reply := e.handleMessage(ctx, mt, message)
		if err := e.sendStatus(ws, reply); err != nil {
			e.logger.WithError(err).Error("Error sending status")
			return
		}
	}
}

func (e *Endpoint) handleMessage(ctx context.Context, mt int, message []byte) structs.ListStatus {
	if mt != websocket.TextMessage {
		return structs.ListStatus{Code: 400, Status: "ERROR", Error: "Invalid message received, expecting a JSON listing request"}
	}

	var req structs.ListRequest
	if err := json.Unmarshal(message, &req); err != nil {
		return structs.ListStatus{Code: 400, Status: "ERROR", Error: "Error decoding listing request: " + err.Error()}
	}
	if req.Sort == "" {
		req.Sort = e.defaultSort
	}

	names, err := e.s.ListBucketNames(ctx, req.Sort)
	if err != nil {
		return structs.ListStatus{Code: 500, Status: "ERROR", Error: err.Error()}
	}
	return structs.ListStatus{Code: 200, Status: "OK", Buckets: names}
}

func (e *Endpoint) sendStatus(ws *websocket.Conn, status structs.ListStatus) error {
	msg, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return ws.WriteMessage(websocket.TextMessage, msg)
}
