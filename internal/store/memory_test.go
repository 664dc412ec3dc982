package store

import (
	"context"
	"testing"

	"github.com/codeassess/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestInsertAndFindByID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	test := model.Test{
		Title:           "Frontend Basics",
		Description:     "",
		DurationMinutes: 60,
		Tags:            []string{"js"},
		Questions:       []model.Question{},
	}
	id, err := s.Insert(ctx, CollectionTest, test)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	var got model.Test
	require.NoError(t, s.FindByID(ctx, CollectionTest, id, &got))
	assert.Equal(t, "Frontend Basics", got.Title)
	assert.Equal(t, []string{"js"}, got.Tags)
	assert.Equal(t, 60, got.DurationMinutes)
	assert.Equal(t, id, got.ID.Hex())
}

func TestFindByIDMalformedSkipsLookup(t *testing.T) {
	s := NewMemoryStore()

	var got model.Test
	err := s.FindByID(context.Background(), CollectionTest, "not-a-valid-id", &got)
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Equal(t, 0, s.Lookups, "malformed ids must never reach the store")
}

func TestFindByIDNotFound(t *testing.T) {
	s := NewMemoryStore()

	var got model.Test
	err := s.FindByID(context.Background(), CollectionTest, primitive.NewObjectID().Hex(), &got)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrInvalidID)
	assert.Equal(t, 1, s.Lookups)
}

func TestFindFilterConjunction(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, a := range []model.Attempt{
		{TestID: "t1", UserEmail: "a@b.com", UserName: "A", Status: "active", Submissions: []string{}},
		{TestID: "t1", UserEmail: "c@d.com", UserName: "C", Status: "active", Submissions: []string{}},
		{TestID: "t2", UserEmail: "a@b.com", UserName: "A", Status: "finished", Submissions: []string{}},
	} {
		_, err := s.Insert(ctx, CollectionAttempt, a)
		require.NoError(t, err)
	}

	var attempts []model.Attempt
	require.NoError(t, s.Find(ctx, CollectionAttempt, map[string]interface{}{"user_email": "a@b.com"}, 0, &attempts))
	require.Len(t, attempts, 2)
	for _, a := range attempts {
		assert.Equal(t, "a@b.com", a.UserEmail)
	}

	attempts = nil
	require.NoError(t, s.Find(ctx, CollectionAttempt, map[string]interface{}{"user_email": "a@b.com", "test_id": "t1"}, 0, &attempts))
	require.Len(t, attempts, 1)
	assert.Equal(t, "t1", attempts[0].TestID)
	assert.Equal(t, "active", attempts[0].Status)
}

func TestFindLimit(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.Insert(ctx, CollectionTest, model.Test{Title: "T", Tags: []string{}, Questions: []model.Question{}})
		require.NoError(t, err)
	}

	var tests []model.Test
	require.NoError(t, s.Find(ctx, CollectionTest, nil, 3, &tests))
	assert.Len(t, tests, 3)
}

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()
	parsed, err := ParseID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, parsed)

	_, err = ParseID("zzz")
	assert.ErrorIs(t, err, ErrInvalidID)
}
