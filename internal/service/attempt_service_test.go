package service

import (
	"context"
	"testing"

	"github.com/codeassess/api/internal/dto"
	"github.com/codeassess/api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAttemptAppliesDefaults(t *testing.T) {
	svc := NewAttemptService(store.NewMemoryStore())
	ctx := context.Background()

	created, err := svc.StartAttempt(ctx, dto.CreateAttemptRequest{
		TestID:    "t1",
		UserEmail: "a@b.com",
		UserName:  "A",
	})
	require.NoError(t, err)

	attempts, err := svc.ListAttempts(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, created.ID, attempts[0].ID)
	assert.Equal(t, "active", attempts[0].Status)
	assert.Zero(t, attempts[0].Score)
	assert.Equal(t, []string{}, attempts[0].Submissions)
}

func TestListAttemptsFilter(t *testing.T) {
	svc := NewAttemptService(store.NewMemoryStore())
	ctx := context.Background()

	emails := []string{"a@b.com", "c@d.com", "a@b.com"}
	for i, email := range emails {
		testID := "t1"
		if i == 2 {
			testID = "t2"
		}
		_, err := svc.StartAttempt(ctx, dto.CreateAttemptRequest{TestID: testID, UserEmail: email, UserName: "U"})
		require.NoError(t, err)
	}

	attempts, err := svc.ListAttempts(ctx, "", "a@b.com")
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	for _, a := range attempts {
		assert.Equal(t, "a@b.com", a.UserEmail)
	}

	attempts, err = svc.ListAttempts(ctx, "t1", "a@b.com")
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, "t1", attempts[0].TestID)

	attempts, err = svc.ListAttempts(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, attempts, 3)
}
