package matching

import (
	"fmt"
	"slices"
	"strings"

	"aidmatch/pkg/types"
)

// costOutlierRatio is how far above the peer mean a request may go before
// it is flagged.
const costOutlierRatio = 1.3

type FraudFlag string

const (
	FlagDuplicateNID FraudFlag = "duplicate_nid"
	FlagCostOutlier  FraudFlag = "cost_outlier"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type FraudReport struct {
	BeneficiaryID  string      `json:"beneficiaryId"`
	Flags          []FraudFlag `json:"flags"`
	DuplicateCount int         `json:"duplicateCount"`
	PeerCount      int         `json:"peerCount"`
	PeerMeanCents  float64     `json:"peerMeanCents"`
	RiskLevel      RiskLevel   `json:"riskLevel"`
	Details        []string    `json:"details"`
}

func (r FraudReport) Suspicious() bool {
	return len(r.Flags) > 0
}

type peerKey struct {
	district string
	category types.NeedCategory
}

func peerKeyOf(b *types.Beneficiary) peerKey {
	return peerKey{district: strings.ToLower(strings.TrimSpace(b.District)), category: b.NeedCategory}
}

type peerStats struct {
	count int
	sum   int64
}

// fraudIndex counts NIDs and sums requested amounts per district and need
// category over a collection. Every entry counts, whatever its ID.
type fraudIndex struct {
	nids  map[string]int
	peers map[peerKey]*peerStats
}

func newFraudIndex(all []*types.Beneficiary) *fraudIndex {
	idx := &fraudIndex{
		nids:  make(map[string]int, len(all)),
		peers: make(map[peerKey]*peerStats),
	}
	for _, b := range all {
		idx.add(b)
	}
	return idx
}

func (idx *fraudIndex) add(b *types.Beneficiary) {
	if b == nil {
		return
	}

	if b.NIDNumber != "" {
		idx.nids[b.NIDNumber]++
	}

	key := peerKeyOf(b)
	stats, ok := idx.peers[key]
	if !ok {
		stats = &peerStats{}
		idx.peers[key] = stats
	}
	stats.count++
	stats.sum += b.AmountRequestedCents
}

func (idx *fraudIndex) report(b *types.Beneficiary) FraudReport {
	report := FraudReport{
		BeneficiaryID: b.ID,
		Flags:         make([]FraudFlag, 0, 2),
		Details:       make([]string, 0, 2),
		RiskLevel:     RiskLow,
	}

	if b.NIDNumber != "" {
		report.DuplicateCount = idx.nids[b.NIDNumber]
		if report.DuplicateCount > 1 {
			report.Flags = append(report.Flags, FlagDuplicateNID)
			report.Details = append(report.Details, fmt.Sprintf("NID %s is used by %d applications", b.NIDNumber, report.DuplicateCount))
		}
	}

	if stats, ok := idx.peers[peerKeyOf(b)]; ok && stats.count > 0 {
		report.PeerCount = stats.count
		report.PeerMeanCents = float64(stats.sum) / float64(stats.count)
		if float64(b.AmountRequestedCents) > report.PeerMeanCents*costOutlierRatio {
			report.Flags = append(report.Flags, FlagCostOutlier)
			report.Details = append(report.Details, fmt.Sprintf(
				"requested %d is more than 30%% above the %s/%s mean of %.0f",
				b.AmountRequestedCents, b.District, b.NeedCategory, report.PeerMeanCents,
			))
		}
	}

	switch {
	case report.DuplicateCount > 1:
		report.RiskLevel = RiskHigh
	case len(report.Flags) > 0:
		report.RiskLevel = RiskMedium
	}

	return report
}

// DetectFraud runs the duplicate NID and cost outlier checks for one
// beneficiary against a collection. The target counts towards both checks
// exactly once: it is added unless the same pointer is already in all.
func DetectFraud(target *types.Beneficiary, all []*types.Beneficiary) FraudReport {
	if target == nil {
		return FraudReport{Flags: []FraudFlag{}, Details: []string{}, RiskLevel: RiskLow}
	}

	idx := newFraudIndex(all)
	if !slices.Contains(all, target) {
		idx.add(target)
	}

	return idx.report(target)
}

// ScanFraud reports on every beneficiary in the collection.
func ScanFraud(all []*types.Beneficiary) []FraudReport {
	idx := newFraudIndex(all)

	reports := make([]FraudReport, 0, len(all))
	for _, b := range all {
		if b == nil {
			continue
		}
		reports = append(reports, idx.report(b))
	}
	return reports
}
