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

type SubmissionService interface {
	AddSubmission(ctx context.Context, req dto.CreateSubmissionRequest) (*dto.CreateResponse, error)
	ListSubmissions(ctx context.Context, attemptID string) ([]dto.SubmissionResponse, error)
}

type submissionService struct {
	store store.Store
}

func NewSubmissionService(s store.Store) SubmissionService {
	return &submissionService{store: s}
}

func (s *submissionService) AddSubmission(ctx context.Context, req dto.CreateSubmissionRequest) (*dto.CreateResponse, error) {
	id, err := s.store.Insert(ctx, store.CollectionSubmission, req.ToModel())
	if err != nil {
		log.Error().Err(err).Str("attemptID", req.AttemptID).Msg("Failed to insert submission")
		return nil, fmt.Errorf("error creating submission: %w", err)
	}
	return &dto.CreateResponse{ID: id}, nil
}

func (s *submissionService) ListSubmissions(ctx context.Context, attemptID string) ([]dto.SubmissionResponse, error) {
	filter := map[string]interface{}{}
	if attemptID != "" {
		filter["attempt_id"] = attemptID
	}

	var subs []model.Submission
	if err := s.store.Find(ctx, store.CollectionSubmission, filter, 0, &subs); err != nil {
		log.Error().Err(err).Msg("Failed to list submissions")
		return nil, fmt.Errorf("error fetching submissions: %w", err)
	}
	resp := make([]dto.SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		var item dto.SubmissionResponse
		copier.Copy(&item, &sub)
		item.ID = sub.ID.Hex()
		resp = append(resp, item)
	}
	return resp, nil
}
