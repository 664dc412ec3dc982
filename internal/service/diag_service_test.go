package service

import (
	"context"
	"testing"

	"github.com/codeassess/api/config"
	"github.com/codeassess/api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnoseWithStore(t *testing.T) {
	mem := store.NewMemoryStore()
	_, err := mem.Insert(context.Background(), store.CollectionTest, map[string]string{"title": "T"})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Database.URL = "mongodb://localhost:27017"
	cfg.Database.Name = "codeassess"

	resp := NewDiagService(cfg, mem).Diagnose(context.Background())
	assert.Equal(t, "running", resp.Backend)
	assert.Equal(t, "connected", resp.Database)
	assert.Equal(t, "connected", resp.ConnectionStatus)
	assert.Equal(t, "set", resp.DatabaseURL)
	assert.Equal(t, "set", resp.DatabaseName)
	assert.Contains(t, resp.Collections, store.CollectionTest)
}

func TestDiagnoseWithoutStore(t *testing.T) {
	resp := NewDiagService(&config.Config{}, store.NewMongoStore(nil)).Diagnose(context.Background())

	// The diagnostic endpoint downgrades store failures to a status string.
	assert.Equal(t, "running", resp.Backend)
	assert.Contains(t, resp.Database, "error")
	assert.Equal(t, "not connected", resp.ConnectionStatus)
	assert.Equal(t, "not set", resp.DatabaseURL)
	assert.Equal(t, "not set", resp.DatabaseName)
	assert.Empty(t, resp.Collections)
}
