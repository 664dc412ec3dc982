package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeassess/api/internal/dto"
	"github.com/codeassess/api/internal/model"
	"github.com/codeassess/api/internal/store"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type TestService interface {
	CreateTest(ctx context.Context, req dto.CreateTestRequest) (*dto.CreateResponse, error)
	ListTests(ctx context.Context, limit int64) ([]dto.TestResponse, error)
	GetTest(ctx context.Context, id string) (*dto.TestResponse, error)
}

type testService struct {
	store store.Store
}

func NewTestService(s store.Store) TestService {
	return &testService{store: s}
}

func (s *testService) CreateTest(ctx context.Context, req dto.CreateTestRequest) (*dto.CreateResponse, error) {
	id, err := s.store.Insert(ctx, store.CollectionTest, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("Failed to insert test")
		return nil, fmt.Errorf("error creating test: %w", err)
	}
	return &dto.CreateResponse{ID: id}, nil
}

func (s *testService) ListTests(ctx context.Context, limit int64) ([]dto.TestResponse, error) {
	var tests []model.Test
	if err := s.store.Find(ctx, store.CollectionTest, nil, limit, &tests); err != nil {
		log.Error().Err(err).Msg("Failed to list tests")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}
	resp := make([]dto.TestResponse, 0, len(tests))
	for _, t := range tests {
		resp = append(resp, toTestResponse(t))
	}
	return resp, nil
}

func (s *testService) GetTest(ctx context.Context, id string) (*dto.TestResponse, error) {
	var test model.Test
	if err := s.store.FindByID(ctx, store.CollectionTest, id, &test); err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
			log.Warn().Err(err).Str("testID", id).Msg("Test not found")
		} else {
			log.Error().Err(err).Str("testID", id).Msg("Failed to fetch test")
		}
		return nil, err
	}
	resp := toTestResponse(test)
	return &resp, nil
}

func toTestResponse(t model.Test) dto.TestResponse {
	var resp dto.TestResponse
	copier.Copy(&resp, &t)
	resp.ID = t.ID.Hex()
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if resp.Questions == nil {
		resp.Questions = []dto.QuestionResponse{}
	}
	return resp
}
