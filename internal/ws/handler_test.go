package ws

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/services"
)

var errClosed = errors.New("closed")

// fakeConn replays incoming messages and records outgoing ones.
type fakeConn struct {
	incoming [][]byte
	msgType  int
	outgoing []Outgoing
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	if len(f.incoming) == 0 {
		return 0, nil, errClosed
	}
	msg := f.incoming[0]
	f.incoming = f.incoming[1:]
	return f.msgType, msg, nil
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	var outgoing Outgoing
	if err := json.Unmarshal(data, &outgoing); err != nil {
		return err
	}
	f.outgoing = append(f.outgoing, outgoing)
	return nil
}

func newTestRepo(t *testing.T) (*repository.SessionRepository, string) {
	t.Helper()

	svc := services.InitServices(&config.ServerConfig{SessionTTL: time.Minute, MaxSessions: 10})
	repo := repository.NewSessionRepositoryFromServices(svc)

	session, err := repo.Create(models.CreateSessionRequest{})
	require.NoError(t, err)

	return repo, session.ID
}

func dataAs[T any](t *testing.T, outgoing Outgoing) T {
	t.Helper()

	raw, err := json.Marshal(outgoing.Data)
	require.NoError(t, err)

	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHandler_Handle(t *testing.T) {
	repo, id := newTestRepo(t)

	conn := &fakeConn{
		msgType: websocket.TextMessage,
		incoming: [][]byte{
			[]byte(`{"event":"state","id":1}`),
			[]byte(`{"event":"move","id":2,"data":{"move":"c4"}}`),
			[]byte(`{"event":"move","id":3,"data":{"move":"a1"}}`),
			[]byte(`{"event":"move","id":4,"data":{"move":"x"}}`),
			[]byte(`{"event":"computer_move","id":5}`),
			[]byte(`{"event":"reset","id":6}`),
		},
	}

	err := NewHandler(conn, repo, id).Handle()
	require.ErrorIs(t, err, errClosed)
	require.Len(t, conn.outgoing, 6)

	state := dataAs[models.SessionResponse](t, conn.outgoing[0])
	require.Equal(t, 1, conn.outgoing[0].ID)
	require.Equal(t, id, state.ID)
	require.Equal(t, "Black", state.State.CurrentPlayer)

	move := dataAs[models.MoveResponse](t, conn.outgoing[1])
	require.Equal(t, "applied", move.Outcome)
	require.Equal(t, "White", move.State.CurrentPlayer)

	rejected := dataAs[models.MoveResponse](t, conn.outgoing[2])
	require.Equal(t, "rejected", rejected.Outcome)

	require.Equal(t, 4, conn.outgoing[3].ID)
	require.NotEmpty(t, conn.outgoing[3].Error)

	// Player vs player, the computer doesn't move.
	computer := dataAs[models.MoveResponse](t, conn.outgoing[4])
	require.Equal(t, "rejected", computer.Outcome)

	reset := dataAs[models.SessionResponse](t, conn.outgoing[5])
	require.Equal(t, "Black: 2, White: 2", reset.State.Score.Text)
}

func TestHandler_UnknownSession(t *testing.T) {
	repo, _ := newTestRepo(t)

	conn := &fakeConn{
		msgType:  websocket.TextMessage,
		incoming: [][]byte{[]byte(`{"event":"state","id":1}`)},
	}

	err := NewHandler(conn, repo, "missing").Handle()
	require.ErrorIs(t, err, errClosed)
	require.Len(t, conn.outgoing, 1)
	require.Contains(t, conn.outgoing[0].Error, "session not found")
}

func TestHandler_ProtocolErrors(t *testing.T) {
	repo, id := newTestRepo(t)

	tests := []struct {
		name    string
		msgType int
		msg     string
	}{
		{"binary message", websocket.BinaryMessage, `{"event":"state"}`},
		{"invalid json", websocket.TextMessage, `{`},
		{"missing event", websocket.TextMessage, `{"id":1}`},
		{"unknown event", websocket.TextMessage, `{"event":"undo","id":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &fakeConn{msgType: tt.msgType, incoming: [][]byte{[]byte(tt.msg)}}

			err := NewHandler(conn, repo, id).Handle()
			require.Error(t, err)
			require.NotErrorIs(t, err, errClosed)
			require.Empty(t, conn.outgoing)
		})
	}
}
