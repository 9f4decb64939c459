package service

import (
	"context"
	"fmt"

	"aidmatch/internal/matching"
)

// RefreshTrustScore recomputes a provider's trust score and stores it.
func (s *Service) RefreshTrustScore(ctx context.Context, providerID string) (*matching.TrustResult, error) {
	provider, err := s.providers.Provider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	result := matching.CalculateTrustScore(*provider)
	if err := s.providers.UpdateTrustScore(ctx, provider.ID, result.TrustScore); err != nil {
		return nil, err
	}

	s.logger.WithField("provider_id", provider.ID).
		WithField("trust_score", result.TrustScore).
		Debug("trust score refreshed")

	return &result, nil
}

// RefreshTrustScores recomputes every provider's trust score and returns
// the new scores keyed by provider ID.
func (s *Service) RefreshTrustScores(ctx context.Context) (map[string]float64, error) {
	providers, err := s.providers.Providers(ctx)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(providers))
	for _, provider := range providers {
		result := matching.CalculateTrustScore(*provider)
		if err := s.providers.UpdateTrustScore(ctx, provider.ID, result.TrustScore); err != nil {
			return nil, fmt.Errorf("failed to refresh provider %s: %w", provider.ID, err)
		}
		scores[provider.ID] = result.TrustScore
	}

	s.logger.WithField("providers", len(scores)).Info("trust scores refreshed")

	return scores, nil
}
