package service

import (
	"context"

	"github.com/codeassess/api/config"
	"github.com/codeassess/api/internal/dto"
	"github.com/codeassess/api/internal/store"
	"github.com/rs/zerolog/log"
)

// DiagService backs the /test connectivity diagnostic. Store failures are
// reported inside the status object instead of failing the request.
type DiagService interface {
	Diagnose(ctx context.Context) dto.DiagResponse
}

type diagService struct {
	cfg   *config.Config
	store store.Store
}

func NewDiagService(cfg *config.Config, s store.Store) DiagService {
	return &diagService{cfg: cfg, store: s}
}

func (s *diagService) Diagnose(ctx context.Context) dto.DiagResponse {
	resp := dto.DiagResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		DatabaseName:     "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if s.cfg.Database.URL != "" {
		resp.DatabaseURL = "set"
	}
	if s.cfg.Database.Name != "" {
		resp.DatabaseName = "set"
	}

	collections, err := s.store.Collections(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Database diagnostic failed")
		msg := err.Error()
		if len(msg) > 80 {
			msg = msg[:80]
		}
		resp.Database = "error: " + msg
		return resp
	}

	if len(collections) > 10 {
		collections = collections[:10]
	}
	resp.Collections = collections
	resp.Database = "connected"
	resp.ConnectionStatus = "connected"
	return resp
}
