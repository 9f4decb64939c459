package seed

import (
	"context"
	"fmt"

	"aidmatch/internal/matching"
	"aidmatch/pkg/types"

	"github.com/sirupsen/logrus"
)

type ProviderUpserter interface {
	UpsertProvider(ctx context.Context, provider *types.Provider) error
}

type BeneficiaryUpserter interface {
	UpsertBeneficiary(ctx context.Context, beneficiary *types.Beneficiary) error
}

type CrisisUpserter interface {
	UpsertCrisis(ctx context.Context, crisis *types.Crisis) error
}

// SeedProviders syncs the demo providers below. Trust scores are derived
// from each provider's history rather than hard coded.
//
// To generate new IDs: `go run ./cmd/aidmatch nanoid --kind prv`
func SeedProviders(ctx context.Context, logger logrus.FieldLogger, repo ProviderUpserter) error {
	for _, provider := range Providers() {
		provider.TrustScore = matching.CalculateTrustScore(*provider).TrustScore

		if err := repo.UpsertProvider(ctx, provider); err != nil {
			return fmt.Errorf("failed to seed provider %s: %w", provider.Name, err)
		}

		logger.WithField("provider_id", provider.ID).
			WithField("trust_score", provider.TrustScore).
			Debug("provider seeded")
	}

	return nil
}

func SeedBeneficiaries(ctx context.Context, logger logrus.FieldLogger, repo BeneficiaryUpserter) error {
	for _, beneficiary := range Beneficiaries() {
		if err := repo.UpsertBeneficiary(ctx, beneficiary); err != nil {
			return fmt.Errorf("failed to seed beneficiary %s: %w", beneficiary.ID, err)
		}

		logger.WithField("beneficiary_id", beneficiary.ID).Debug("beneficiary seeded")
	}

	return nil
}

func SeedCrises(ctx context.Context, logger logrus.FieldLogger, repo CrisisUpserter) error {
	for _, crisis := range Crises() {
		if err := repo.UpsertCrisis(ctx, crisis); err != nil {
			return fmt.Errorf("failed to seed crisis %s: %w", crisis.Title, err)
		}

		logger.WithField("crisis_id", crisis.ID).Debug("crisis seeded")
	}

	return nil
}
