package store

import (
	"context"
	"fmt"
	"time"

	"aidmatch/internal/utils"
	"aidmatch/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const donationTableName = "aidmatch.donations"

var donationColumns = utils.StructTagValues(types.Donation{})

type DonationRepository struct {
	pool *pgxpool.Pool
}

func NewDonationRepository(pool *pgxpool.Pool) *DonationRepository {
	return &DonationRepository{pool: pool}
}

func (r *DonationRepository) Donation(ctx context.Context, id string) (*types.Donation, error) {
	query, args, err := psql().
		Select(donationColumns...).
		From(donationTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate donation query: %w", err)
	}

	var donation = new(types.Donation)
	err = pgxscan.Get(ctx, r.pool, donation, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrDonationNotFound
		}
		return nil, fmt.Errorf("failed to fetch donation: %w", err)
	}

	return donation, nil
}

// CreateDonation inserts the donation and, when it targets a crisis, adds
// the amount to the crisis funding in the same transaction. The crisis row
// is only updated while it is active and the new total stays within the
// funding needed.
func (r *DonationRepository) CreateDonation(ctx context.Context, donation *types.Donation) error {
	now := time.Now()
	if donation.ID == "" {
		donation.ID = utils.NewID(utils.KindDonation)
	}
	if donation.Status == "" {
		donation.Status = types.DonationStatusPending
	}
	donation.CreatedAt = now
	donation.UpdatedAt = now

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin donation transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if donation.CrisisID != "" {
		if err := fundCrisis(ctx, tx, donation.CrisisID, donation.AmountCents, now); err != nil {
			return err
		}
	}

	query, args, err := psql().
		Insert(donationTableName).
		SetMap(utils.StructToMap(donation)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert donation query: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit donation transaction: %w", err)
	}

	return nil
}

func fundCrisis(ctx context.Context, tx pgx.Tx, crisisID string, amountCents int64, now time.Time) error {
	query, args, err := psql().
		Update(crisisTableName).
		Set("funding_received_cents", sq.Expr("funding_received_cents + ?", amountCents)).
		Set("updated_at", now).
		Where(sq.Eq{"id": crisisID, "status": types.CrisisStatusActive}).
		Where(sq.Expr("funding_received_cents + ? <= funding_needed_cents", amountCents)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate crisis funding query: %w", err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update crisis funding: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	existsQuery, existsArgs, err := psql().
		Select("1").
		From(crisisTableName).
		Where(sq.Eq{"id": crisisID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate crisis exists query: %w", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, existsQuery, existsArgs...).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check crisis: %w", err)
	}
	if !exists {
		return types.ErrCrisisNotFound
	}

	return types.ErrCrisisOverfunded
}

func (r *DonationRepository) UpdateDonationStatus(ctx context.Context, id string, status types.DonationStatus) error {
	query, args, err := psql().
		Update(donationTableName).
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate donation status query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update donation status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrDonationNotFound
	}

	return nil
}
