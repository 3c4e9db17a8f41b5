package ws

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/contrib/websocket"

	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/repository"
)

// Conn is the part of a websocket connection used by Handler.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

type Handler struct {
	repo      *repository.SessionRepository
	ws        Conn
	sessionID string
}

// NewHandler creates a new Handler for one session.
func NewHandler(ws Conn, repo *repository.SessionRepository, sessionID string) *Handler {
	return &Handler{repo: repo, ws: ws, sessionID: sessionID}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	var (
		data any
		err  error
	)

	switch req.Event {
	case "state":
		data, err = h.repo.Get(h.sessionID)
	case "move":
		data, err = h.handleMove(req)
	case "computer_move":
		data, err = h.repo.ComputerMove(h.sessionID)
	case "reset":
		data, err = h.repo.Reset(h.sessionID)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}

	// Request errors are reported to the client, the connection stays open.
	if err != nil {
		return &Outgoing{ID: req.ID, Error: err.Error()}, nil
	}

	return &Outgoing{ID: req.ID, Data: data}, nil
}

func (h *Handler) handleMove(req *Incoming) (models.MoveResponse, error) {
	var reqData models.MoveRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return models.MoveResponse{}, fmt.Errorf("ws move request unmarshal error: %w", err)
	}

	pos, err := reqData.Validate()
	if err != nil {
		return models.MoveResponse{}, err
	}

	return h.repo.Move(h.sessionID, pos)
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(req)
		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}
