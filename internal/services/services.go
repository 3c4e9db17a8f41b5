package services

import (
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/sessions"
)

// Services contains the shared state of the server.
type Services struct {
	Sessions *sessions.Store
}

func InitServices(cfg *config.ServerConfig) *Services {
	return &Services{
		Sessions: sessions.NewStore(cfg.SessionTTL, cfg.MaxSessions),
	}
}
