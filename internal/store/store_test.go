package store

import (
	"testing"
	"time"

	"aidmatch/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sq "github.com/Masterminds/squirrel"
)

func TestBuildUpdateClause(t *testing.T) {
	got := buildUpdateClause(map[string]any{
		"id":         "x",
		"name":       "n",
		"created_at": nil,
		"status":     "active",
	}, "id", "created_at")

	assert.Equal(t, "name = EXCLUDED.name, status = EXCLUDED.status", got)
}

func TestPsqlUsesDollarPlaceholders(t *testing.T) {
	query, args, err := psql().
		Select("id").
		From(providerTableName).
		Where(sq.Eq{"status": eligibleProviderStatuses}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM aidmatch.providers WHERE status IN ($1,$2)", query)
	assert.Len(t, args, 2)
}

func TestColumnsIncludeEmbeddedFields(t *testing.T) {
	assert.Contains(t, beneficiaryColumns, "division")
	assert.Contains(t, beneficiaryColumns, "longitude")
	assert.Contains(t, providerColumns, "divisions")
	assert.Contains(t, donationColumns, "preferred_provider_ids")
	assert.NotContains(t, donationColumns, "allocations")
}

func TestReceivedUpdateStartsMatchedBeneficiaries(t *testing.T) {
	now := time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

	query, args, err := receivedUpdate(&types.BeneficiaryAllocation{BeneficiaryID: "b1", AmountCents: 50000}, now).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE aidmatch.beneficiaries SET amount_received_cents = amount_received_cents + $1, "+
			"application_status = CASE WHEN application_status = $2 THEN $3 ELSE application_status END, "+
			"updated_at = $4 WHERE id = $5",
		query,
	)
	assert.Equal(t, []any{
		int64(50000),
		types.ApplicationStatusMatched,
		types.ApplicationStatusInProgress,
		now,
		"b1",
	}, args)
}
