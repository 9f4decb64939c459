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

const beneficiaryTableName = "aidmatch.beneficiaries"

var beneficiaryColumns = utils.StructTagValues(types.Beneficiary{})

// Assignment records a beneficiary matched to a provider by a batch run.
type Assignment struct {
	BeneficiaryID string
	ProviderID    string
}

type BeneficiaryRepository struct {
	pool *pgxpool.Pool
}

func NewBeneficiaryRepository(pool *pgxpool.Pool) *BeneficiaryRepository {
	return &BeneficiaryRepository{pool: pool}
}

func (r *BeneficiaryRepository) Beneficiary(ctx context.Context, id string) (*types.Beneficiary, error) {
	query, args, err := psql().
		Select(beneficiaryColumns...).
		From(beneficiaryTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate beneficiary query: %w", err)
	}

	var beneficiary = new(types.Beneficiary)
	err = pgxscan.Get(ctx, r.pool, beneficiary, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrBeneficiaryNotFound
		}
		return nil, fmt.Errorf("failed to fetch beneficiary: %w", err)
	}

	return beneficiary, nil
}

func (r *BeneficiaryRepository) Beneficiaries(ctx context.Context) ([]*types.Beneficiary, error) {
	return r.selectBeneficiaries(ctx, nil)
}

// BeneficiariesByStatus returns applications in any of the given statuses,
// oldest first so batch runs see applicants in submission order.
func (r *BeneficiaryRepository) BeneficiariesByStatus(ctx context.Context, statuses ...types.ApplicationStatus) ([]*types.Beneficiary, error) {
	return r.selectBeneficiaries(ctx, sq.Eq{"application_status": statuses})
}

func (r *BeneficiaryRepository) BeneficiariesByProvider(ctx context.Context, providerID string) ([]*types.Beneficiary, error) {
	return r.selectBeneficiaries(ctx, sq.Eq{"matched_provider_id": providerID})
}

func (r *BeneficiaryRepository) selectBeneficiaries(ctx context.Context, where sq.Sqlizer) ([]*types.Beneficiary, error) {
	builder := psql().
		Select(beneficiaryColumns...).
		From(beneficiaryTableName).
		OrderBy("created_at ASC", "id ASC")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate beneficiaries query: %w", err)
	}

	var beneficiaries = make([]*types.Beneficiary, 0)
	err = pgxscan.Select(ctx, r.pool, &beneficiaries, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch beneficiaries: %w", err)
	}

	return beneficiaries, nil
}

func (r *BeneficiaryRepository) CreateBeneficiary(ctx context.Context, beneficiary *types.Beneficiary) error {
	now := time.Now()
	if beneficiary.ID == "" {
		beneficiary.ID = utils.NewID(utils.KindBeneficiary)
	}
	beneficiary.CreatedAt = now
	beneficiary.UpdatedAt = now

	query, args, err := psql().
		Insert(beneficiaryTableName).
		SetMap(utils.StructToMap(beneficiary)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert beneficiary query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create beneficiary")
}

// UpsertBeneficiary inserts or refreshes a beneficiary keyed by ID. Used by
// the seed command.
func (r *BeneficiaryRepository) UpsertBeneficiary(ctx context.Context, beneficiary *types.Beneficiary) error {
	now := time.Now()
	beneficiary.CreatedAt = now
	beneficiary.UpdatedAt = now
	beneficiaryMap := utils.StructToMap(beneficiary)

	query, args, err := psql().
		Insert(beneficiaryTableName).
		SetMap(beneficiaryMap).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + buildUpdateClause(beneficiaryMap, "id", "created_at")).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert beneficiary query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to upsert beneficiary")
}

// UpdateApplicationStatus moves an application from one status to another.
// The row is only touched while it is still in the expected status.
func (r *BeneficiaryRepository) UpdateApplicationStatus(ctx context.Context, id string, from, to types.ApplicationStatus) error {
	if !types.CanAdvance(from, to) {
		return fmt.Errorf("%w: %s -> %s", types.ErrInvalidStatusTransition, from, to)
	}

	query, args, err := psql().
		Update(beneficiaryTableName).
		Set("application_status", to).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id, "application_status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate beneficiary status query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update beneficiary status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: beneficiary %s is no longer %s", types.ErrInvalidStatusTransition, id, from)
	}

	return nil
}

// ApplyAssignments persists a batch run in one transaction: each beneficiary
// still awaiting a match is marked matched and its provider's aided count
// goes up by one. A provider without room aborts the whole batch. It
// returns the number of assignments applied.
func (r *BeneficiaryRepository) ApplyAssignments(ctx context.Context, assignments []Assignment) (int, error) {
	if len(assignments) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin assignment transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	now := time.Now()
	applied := 0

	for _, assignment := range assignments {
		beneficiaryQuery, beneficiaryArgs, err := psql().
			Update(beneficiaryTableName).
			Set("application_status", types.ApplicationStatusMatched).
			Set("matched_provider_id", assignment.ProviderID).
			Set("updated_at", now).
			Where(sq.Eq{
				"id": assignment.BeneficiaryID,
				"application_status": []types.ApplicationStatus{
					types.ApplicationStatusSubmitted,
					types.ApplicationStatusVerified,
				},
			}).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("failed to generate beneficiary assignment query: %w", err)
		}

		tag, err := tx.Exec(ctx, beneficiaryQuery, beneficiaryArgs...)
		if err != nil {
			return 0, fmt.Errorf("failed to assign beneficiary %s: %w", assignment.BeneficiaryID, err)
		}
		if tag.RowsAffected() == 0 {
			continue
		}

		providerQuery, providerArgs, err := psql().
			Update(providerTableName).
			Set("total_aided_beneficiaries", sq.Expr("total_aided_beneficiaries + 1")).
			Set("updated_at", now).
			Where(sq.Eq{"id": assignment.ProviderID}).
			Where("total_aided_beneficiaries < max_active_beneficiaries").
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("failed to generate provider capacity query: %w", err)
		}

		tag, err = tx.Exec(ctx, providerQuery, providerArgs...)
		if err != nil {
			return 0, fmt.Errorf("failed to update provider %s capacity: %w", assignment.ProviderID, err)
		}
		if tag.RowsAffected() == 0 {
			return 0, fmt.Errorf("%w: provider %s has no remaining capacity", types.ErrProviderIneligible, assignment.ProviderID)
		}

		applied++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit assignment transaction: %w", err)
	}

	return applied, nil
}
