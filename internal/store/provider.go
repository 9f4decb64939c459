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

const providerTableName = "aidmatch.providers"

var (
	providerColumns          = utils.StructTagValues(types.Provider{})
	eligibleProviderStatuses = []types.ProviderStatus{
		types.ProviderStatusActive,
		types.ProviderStatusWatchlist,
	}
)

type ProviderRepository struct {
	pool *pgxpool.Pool
}

func NewProviderRepository(pool *pgxpool.Pool) *ProviderRepository {
	return &ProviderRepository{pool: pool}
}

func (r *ProviderRepository) Provider(ctx context.Context, id string) (*types.Provider, error) {
	query, args, err := psql().
		Select(providerColumns...).
		From(providerTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate provider query: %w", err)
	}

	var provider = new(types.Provider)
	err = pgxscan.Get(ctx, r.pool, provider, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}

	return provider, nil
}

func (r *ProviderRepository) Providers(ctx context.Context) ([]*types.Provider, error) {
	return r.selectProviders(ctx, nil)
}

// EligibleProviders returns providers that are neither suspended nor banned.
func (r *ProviderRepository) EligibleProviders(ctx context.Context) ([]*types.Provider, error) {
	return r.selectProviders(ctx, sq.Eq{"status": eligibleProviderStatuses})
}

func (r *ProviderRepository) selectProviders(ctx context.Context, where sq.Sqlizer) ([]*types.Provider, error) {
	builder := psql().
		Select(providerColumns...).
		From(providerTableName).
		OrderBy("created_at ASC", "id ASC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate providers query: %w", err)
	}

	var providers = make([]*types.Provider, 0)
	err = pgxscan.Select(ctx, r.pool, &providers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch providers: %w", err)
	}

	return providers, nil
}

func (r *ProviderRepository) UpsertProvider(ctx context.Context, provider *types.Provider) error {
	now := time.Now()
	if provider.ID == "" {
		provider.ID = utils.NewID(utils.KindProvider)
	}
	provider.CreatedAt = now
	provider.UpdatedAt = now
	providerMap := utils.StructToMap(provider)

	query, args, err := psql().
		Insert(providerTableName).
		SetMap(providerMap).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + buildUpdateClause(providerMap, "id", "created_at")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert provider query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to upsert provider")
}

// UpdateTrustScore stores a freshly computed trust score. The score is
// informational for matching runs that read the stored value.
func (r *ProviderRepository) UpdateTrustScore(ctx context.Context, id string, score float64) error {
	query, args, err := psql().
		Update(providerTableName).
		Set("trust_score", score).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate trust score query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update trust score: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrProviderNotFound
	}

	return nil
}
