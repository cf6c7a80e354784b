package server

import (
	"bytes"
	"net/http"

	"github.com/gorilla/websocket"
)

type wsError struct {
	Error string `json:"error"`
}

// handleWebSocket answers every text message with a simulation of the
// request it carries, in order, until the peer closes.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade")
		return
	}
	defer conn.Close()

	entry := s.log.WithField("remote", r.RemoteAddr)
	entry.Debug("websocket connected")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				entry.WithError(err).Warn("websocket read")
			}
			return
		}

		var reply interface{}
		if req, err := decodeRequest(bytes.NewReader(data)); err != nil {
			reply = wsError{Error: "invalid request: " + err.Error()}
		} else if res, err := s.simulate(req); err != nil {
			reply = wsError{Error: err.Error()}
		} else {
			reply = NewResponse(res)
		}

		if err := conn.WriteJSON(reply); err != nil {
			entry.WithError(err).Warn("websocket write")
			return
		}
	}
}

