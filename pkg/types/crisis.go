package types

import "time"

type CrisisStatus string

const (
	CrisisStatusActive   CrisisStatus = "active"
	CrisisStatusResolved CrisisStatus = "resolved"
)

type Crisis struct {
	ID       string       `db:"id" json:"id"`
	Title    string       `db:"title" json:"title"`
	Category NeedCategory `db:"category" json:"category"`
	Division string       `db:"division" json:"division"`
	District string       `db:"district" json:"district"`
	Severity Urgency      `db:"severity" json:"severity"`

	FundingNeededCents   int64        `db:"funding_needed_cents" json:"fundingNeededCents"`
	FundingReceivedCents int64        `db:"funding_received_cents" json:"fundingReceivedCents"`
	Status               CrisisStatus `db:"status" json:"status"`
	CreatedAt            time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt            time.Time    `db:"updated_at" json:"updatedAt"`
}

// Location returns the crisis area as a matching target location.
func (c *Crisis) Location() Location {
	return Location{Division: c.Division, District: c.District}
}

func (c *Crisis) CanAccept(amountCents int64) bool {
	return c.FundingReceivedCents+amountCents <= c.FundingNeededCents
}
