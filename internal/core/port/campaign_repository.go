package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"donation-ledger/internal/core/domain"
)

// ErrCampaignNotFound is returned when no campaign exists for an id.
var ErrCampaignNotFound = errors.New("campaign not found")

// ErrInsufficientBalance is returned when a sweep would overdraw the
// campaign balance at the storage level.
var ErrInsufficientBalance = errors.New("insufficient balance")

// CampaignRepository defines the persistence layer for the donation
// ledger. It is an outbound port in hexagonal architecture and plays the
// host role: it custodies campaign balances, serializes concurrent
// invocations against the same campaign, and guarantees that each
// mutating call commits all-or-nothing, so a failure leaves no partial
// state behind. The usecase validates against a state snapshot; because
// that snapshot can go stale under concurrency, every mutating method
// re-checks the phase guard as part of its own commit and fails with
// the matching domain error when the guard no longer holds.
type CampaignRepository interface {
	// CreateCampaign stores a newly instantiated campaign.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id, or ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// CreateDonationAndCredit writes a donation ledger row, credits the
	// campaign balance by the attached amount and increments the donor
	// counter, all in one transaction. If the campaign was closed since
	// the snapshot was taken, it fails with ErrDonationClosed and
	// commits nothing.
	CreateDonationAndCredit(ctx context.Context, c *domain.Campaign, don *domain.DonationRecord) error
	// CloseAndSweep saves the closed state record, debits the full
	// campaign balance, credits the owner account and writes a transfer
	// ledger row, all in one transaction. It returns the swept amount.
	// If the campaign is no longer open it fails with ErrWrongPhase; on
	// any failure the whole transaction rolls back, including the phase
	// flip.
	CloseAndSweep(ctx context.Context, c *domain.Campaign) (int64, error)
	// ReopenCampaign flips a closed campaign back to open. If the
	// campaign is no longer closed it fails with ErrWrongPhase.
	ReopenCampaign(ctx context.Context, c *domain.Campaign) error
	// Balance returns the campaign's currently held balance.
	Balance(ctx context.Context, id uuid.UUID) (int64, error)
}
