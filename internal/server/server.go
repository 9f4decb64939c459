package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"aidmatch/internal/matching"
	"aidmatch/internal/service"
	"aidmatch/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

// Backend is the set of operations the HTTP API exposes.
type Backend interface {
	RunBatch(ctx context.Context, persist bool) (*service.BatchOutcome, error)
	MatchBeneficiary(ctx context.Context, beneficiaryID string) (*matching.Match, error)
	ScreenBeneficiary(ctx context.Context, beneficiaryID string) (*matching.FraudReport, error)
	ScanFraud(ctx context.Context, suspiciousOnly bool) ([]matching.FraudReport, error)
	RefreshTrustScore(ctx context.Context, providerID string) (*matching.TrustResult, error)
	CreateDonation(ctx context.Context, req *service.CreateDonationRequest) (*types.Donation, error)
	SuggestProviders(ctx context.Context, donationID string, opts matching.SuggestOptions) ([]matching.Suggestion, error)
	AllocateDonation(ctx context.Context, donationID, providerID string) (*types.Donation, error)
	MarkDistributed(ctx context.Context, allocationID string) (*types.BeneficiaryAllocation, error)
	SubmitProof(ctx context.Context, allocationID string, proof *types.DistributionProof) (*service.ProofOutcome, error)
	SubmitApplication(ctx context.Context, req *service.ApplicationRequest) (*service.ApplicationOutcome, error)
	ActiveCrises(ctx context.Context) ([]*types.Crisis, error)
}

type Service struct {
	logger  logrus.FieldLogger
	config  *types.Config
	backend Backend
	limiter *clientLimiter

	server *http.Server
}

func New(config *types.Config, logger logrus.FieldLogger, backend Backend) *Service {
	mux := flow.New()

	s := &Service{
		logger:  logger,
		config:  config,
		backend: backend,
		limiter: newClientLimiter(config.RateLimitPerSec, config.RateLimitBurst),
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", config.ServerPort),
		Handler:           s.StripTrailingSlash(mux),
		ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	s.buildRouter(mux)

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RateLimit)

		r.HandleFunc("/beneficiaries", s.handleSubmitApplication, http.MethodPost)
		r.HandleFunc("/crises", s.handleActiveCrises, http.MethodGet)

		r.HandleFunc("/match/batch", s.handleRunBatch, http.MethodPost)
		r.HandleFunc("/beneficiaries/:id/match", s.handleMatchBeneficiary, http.MethodGet)
		r.HandleFunc("/beneficiaries/:id/fraud", s.handleScreenBeneficiary, http.MethodGet)
		r.HandleFunc("/fraud", s.handleScanFraud, http.MethodGet)
		r.HandleFunc("/providers/:id/trust", s.handleRefreshTrustScore, http.MethodGet)

		r.HandleFunc("/donations", s.handleCreateDonation, http.MethodPost)
		r.HandleFunc("/donations/:id/suggestions", s.handleSuggestProviders, http.MethodGet)
		r.HandleFunc("/donations/:id/allocate", s.handleAllocateDonation, http.MethodPost)
		r.HandleFunc("/allocations/:id/distributed", s.handleMarkDistributed, http.MethodPost)
		r.HandleFunc("/allocations/:id/proof", s.handleSubmitProof, http.MethodPost)
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
