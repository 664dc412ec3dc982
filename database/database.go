package database

import (
	"context"
	"time"

	"github.com/codeassess/api/config"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewDatabase builds the process-wide database handle. The client is created
// once here and reused for every request; it is never re-created.
//
// A missing connection string or an unreachable server is not fatal: the
// handle comes back nil (or unpinged) and store-backed endpoints fail
// per-request while /health and /test keep answering.
func NewDatabase(cfg *config.Config) (*mongo.Database, error) {
	if cfg.Database.URL == "" {
		log.Warn().Msg("DATABASE_URL not set, running without a database")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Database.URL))
	if err != nil {
		log.Warn().Err(err).Msg("Failed to create database client, running without a database")
		return nil, nil
	}

	name := cfg.Database.Name
	if name == "" {
		name = "codeassess"
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		log.Warn().Err(err).Msg("Database ping failed, store operations will fail until it recovers")
	} else {
		log.Info().Str("database", name).Msg("Connected to database")
	}

	return client.Database(name), nil
}
