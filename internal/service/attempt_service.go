package service

import (
	"context"
	"fmt"

	"github.com/codeassess/api/internal/dto"
	"github.com/codeassess/api/internal/model"
	"github.com/codeassess/api/internal/store"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type AttemptService interface {
	StartAttempt(ctx context.Context, req dto.CreateAttemptRequest) (*dto.CreateResponse, error)
	ListAttempts(ctx context.Context, testID, userEmail string) ([]dto.AttemptResponse, error)
}

type attemptService struct {
	store store.Store
}

func NewAttemptService(s store.Store) AttemptService {
	return &attemptService{store: s}
}

func (s *attemptService) StartAttempt(ctx context.Context, req dto.CreateAttemptRequest) (*dto.CreateResponse, error) {
	id, err := s.store.Insert(ctx, store.CollectionAttempt, req.ToModel())
	if err != nil {
		log.Error().Err(err).Str("testID", req.TestID).Msg("Failed to insert attempt")
		return nil, fmt.Errorf("error creating attempt: %w", err)
	}
	return &dto.CreateResponse{ID: id}, nil
}

func (s *attemptService) ListAttempts(ctx context.Context, testID, userEmail string) ([]dto.AttemptResponse, error) {
	filter := map[string]interface{}{}
	if testID != "" {
		filter["test_id"] = testID
	}
	if userEmail != "" {
		filter["user_email"] = userEmail
	}

	var attempts []model.Attempt
	if err := s.store.Find(ctx, store.CollectionAttempt, filter, 0, &attempts); err != nil {
		log.Error().Err(err).Msg("Failed to list attempts")
		return nil, fmt.Errorf("error fetching attempts: %w", err)
	}
	resp := make([]dto.AttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		var item dto.AttemptResponse
		copier.Copy(&item, &a)
		item.ID = a.ID.Hex()
		if item.Submissions == nil {
			item.Submissions = []string{}
		}
		resp = append(resp, item)
	}
	return resp, nil
}
