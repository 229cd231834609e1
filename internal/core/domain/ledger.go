package domain

import (
	"time"

	"github.com/google/uuid"
)

// DonationRecord is a ledger row written when a donation is accepted.
// Amounts are stored in integer units (e.g. micro-units of the native
// currency). It is a custody artifact of the host side, not part of the
// campaign state record: the core only keeps the donor counter.
type DonationRecord struct {
	ID         int64
	Token      string
	CampaignID uuid.UUID
	Location   string
	Amount     int64
	CreatedAt  time.Time
}

// TransferRecord is a ledger row written when a closed campaign's full
// balance is swept to the owner account.
type TransferRecord struct {
	ID         int64
	Token      string
	CampaignID uuid.UUID
	ToAccount  string
	Amount     int64
	CreatedAt  time.Time
}
