package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"aidmatch/pkg/types"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	schemaName      = "aidmatch"
	applicationName = "aidmatch"
)

// PoolConfig builds the pool settings from the environment config. Runtime
// parameters already present in DATABASE_URL win over the defaults set here.
func PoolConfig(config *types.Config) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(config.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	params := poolConfig.ConnConfig.RuntimeParams
	setDefault := func(key, value string) {
		if _, ok := params[key]; !ok {
			params[key] = value
		}
	}

	setDefault("search_path", schemaName)
	setDefault("application_name", applicationName)
	if config.DatabaseStatementTimeoutMs > 0 {
		setDefault("statement_timeout", strconv.FormatUint(uint64(config.DatabaseStatementTimeoutMs), 10))
	}

	if config.DatabaseMaxConns > 0 {
		poolConfig.MaxConns = config.DatabaseMaxConns
	}
	poolConfig.MaxConnIdleTime = 15 * time.Minute
	poolConfig.MaxConnLifetime = 45 * time.Minute

	return poolConfig, nil
}

func Connect(ctx context.Context, config *types.Config) (*pgxpool.Pool, error) {
	poolConfig, err := PoolConfig(config)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
