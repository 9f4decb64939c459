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

const allocationTableName = "aidmatch.beneficiary_allocations"

var allocationColumns = utils.StructTagValues(types.BeneficiaryAllocation{})

type AllocationRepository struct {
	pool *pgxpool.Pool
}

func NewAllocationRepository(pool *pgxpool.Pool) *AllocationRepository {
	return &AllocationRepository{pool: pool}
}

func (r *AllocationRepository) Allocation(ctx context.Context, id string) (*types.BeneficiaryAllocation, error) {
	query, args, err := psql().
		Select(allocationColumns...).
		From(allocationTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate allocation query: %w", err)
	}

	var allocation = new(types.BeneficiaryAllocation)
	err = pgxscan.Get(ctx, r.pool, allocation, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrAllocationNotFound
		}
		return nil, fmt.Errorf("failed to fetch allocation: %w", err)
	}

	return allocation, nil
}

func (r *AllocationRepository) AllocationsByDonation(ctx context.Context, donationID string) ([]*types.BeneficiaryAllocation, error) {
	query, args, err := psql().
		Select(allocationColumns...).
		From(allocationTableName).
		Where(sq.Eq{"donation_id": donationID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate allocations query: %w", err)
	}

	var allocations = make([]*types.BeneficiaryAllocation, 0)
	err = pgxscan.Select(ctx, r.pool, &allocations, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch allocations: %w", err)
	}

	return allocations, nil
}

// ProviderAllocatedSince sums what a provider has been allocated since the
// given time. Used to enforce the monthly fund cap.
func (r *AllocationRepository) ProviderAllocatedSince(ctx context.Context, providerID string, since time.Time) (int64, error) {
	query, args, err := psql().
		Select("COALESCE(SUM(amount_cents), 0)").
		From(allocationTableName).
		Where(sq.Eq{"provider_id": providerID}).
		Where(sq.GtOrEq{"created_at": since}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate provider allocation total query: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to fetch provider allocation total: %w", err)
	}

	return total, nil
}

// VerifiedCentsForBeneficiary sums the allocations to a beneficiary whose
// distribution has been verified.
func (r *AllocationRepository) VerifiedCentsForBeneficiary(ctx context.Context, beneficiaryID string) (int64, error) {
	query, args, err := psql().
		Select("COALESCE(SUM(amount_cents), 0)").
		From(allocationTableName).
		Where(sq.Eq{"beneficiary_id": beneficiaryID, "status": types.AllocationStatusVerified}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate verified allocation total query: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to fetch verified allocation total: %w", err)
	}

	return total, nil
}

// CreateAllocations records a donation split in one transaction: each
// allocation row is inserted, the beneficiary's received amount grows by
// the allocated amount and a matched beneficiary moves to in_progress.
// A pending donation becomes allocated.
func (r *AllocationRepository) CreateAllocations(ctx context.Context, donationID string, allocations []*types.BeneficiaryAllocation) error {
	if len(allocations) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin allocation transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	now := time.Now()

	for _, allocation := range allocations {
		if allocation.ID == "" {
			allocation.ID = utils.NewID(utils.KindAllocation)
		}
		allocation.DonationID = donationID
		allocation.CreatedAt = now
		allocation.UpdatedAt = now

		query, args, err := psql().
			Insert(allocationTableName).
			SetMap(utils.StructToMap(allocation)).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to generate insert allocation query: %w", err)
		}

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to create allocation: %w", err)
		}

		query, args, err = receivedUpdate(allocation, now).ToSql()
		if err != nil {
			return fmt.Errorf("failed to generate beneficiary received query: %w", err)
		}

		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update beneficiary received amount: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return types.ErrBeneficiaryNotFound
		}
	}

	query, args, err := psql().
		Update(donationTableName).
		Set("status", types.DonationStatusAllocated).
		Set("updated_at", now).
		Where(sq.Eq{"id": donationID, "status": types.DonationStatusPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate donation allocated query: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark donation allocated: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit allocation transaction: %w", err)
	}

	return nil
}

// receivedUpdate credits an allocation to its beneficiary. A matched
// beneficiary starts receiving aid and moves to in_progress; any other
// status is left alone.
func receivedUpdate(allocation *types.BeneficiaryAllocation, now time.Time) sq.UpdateBuilder {
	return psql().
		Update(beneficiaryTableName).
		Set("amount_received_cents", sq.Expr("amount_received_cents + ?", allocation.AmountCents)).
		Set("application_status", sq.Expr(
			"CASE WHEN application_status = ? THEN ? ELSE application_status END",
			types.ApplicationStatusMatched, types.ApplicationStatusInProgress,
		)).
		Set("updated_at", now).
		Where(sq.Eq{"id": allocation.BeneficiaryID})
}

// UpdateProof attaches distribution proof to an allocation and moves it to
// the reviewed status.
func (r *AllocationRepository) UpdateProof(ctx context.Context, id string, proof *types.DistributionProof, status types.AllocationStatus) error {
	query, args, err := psql().
		Update(allocationTableName).
		Set("proof", proof).
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate allocation proof query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update allocation proof: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrAllocationNotFound
	}

	return nil
}

// UpdateAllocationStatus moves an allocation between statuses. The row is
// only touched while it is still in the expected status.
func (r *AllocationRepository) UpdateAllocationStatus(ctx context.Context, id string, from, to types.AllocationStatus) error {
	query, args, err := psql().
		Update(allocationTableName).
		Set("status", to).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate allocation status query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update allocation status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: allocation %s is no longer %s", types.ErrInvalidStatusTransition, id, from)
	}

	return nil
}
