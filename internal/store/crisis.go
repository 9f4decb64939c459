package store

import (
	"context"
	"fmt"
	"time"

	"aidmatch/internal/utils"
	"aidmatch/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const crisisTableName = "aidmatch.crises"

var crisisColumns = utils.StructTagValues(types.Crisis{})

type CrisisRepository struct {
	pool *pgxpool.Pool
}

func NewCrisisRepository(pool *pgxpool.Pool) *CrisisRepository {
	return &CrisisRepository{pool: pool}
}

func (r *CrisisRepository) Crisis(ctx context.Context, id string) (*types.Crisis, error) {
	query, args, err := psql().
		Select(crisisColumns...).
		From(crisisTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate crisis query: %w", err)
	}

	var crisis = new(types.Crisis)
	err = pgxscan.Get(ctx, r.pool, crisis, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrCrisisNotFound
		}
		return nil, fmt.Errorf("failed to fetch crisis: %w", err)
	}

	return crisis, nil
}

func (r *CrisisRepository) ActiveCrises(ctx context.Context) ([]*types.Crisis, error) {
	query, args, err := psql().
		Select(crisisColumns...).
		From(crisisTableName).
		Where(sq.Eq{"status": types.CrisisStatusActive}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate crises query: %w", err)
	}

	var crises = make([]*types.Crisis, 0)
	err = pgxscan.Select(ctx, r.pool, &crises, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch crises: %w", err)
	}

	return crises, nil
}

func (r *CrisisRepository) UpsertCrisis(ctx context.Context, crisis *types.Crisis) error {
	now := time.Now()
	if crisis.ID == "" {
		crisis.ID = utils.NewID(utils.KindCrisis)
	}
	crisis.CreatedAt = now
	crisis.UpdatedAt = now
	crisisMap := utils.StructToMap(crisis)

	query, args, err := psql().
		Insert(crisisTableName).
		SetMap(crisisMap).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + buildUpdateClause(crisisMap, "id", "created_at")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert crisis query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to upsert crisis")
}
