package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"donation-ledger/internal/core/domain"
)

// CampaignUseCase defines the operations exposed by the donation ledger.
// This interface is the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type CampaignUseCase interface {
	// CreateCampaign instantiates a new campaign from the init
	// parameters. The authenticated sender becomes the campaign owner.
	CreateCampaign(ctx context.Context, owner string, params InitParams) (*domain.Campaign, error)

	// Donate validates a donation against the campaign state and, on
	// success, credits the attached amount to the campaign balance and
	// increments the donor counter in one atomic commit. Validation
	// failures abort the invocation with no state change.
	Donate(ctx context.Context, id uuid.UUID, don Donation) error

	// CloseCampaign flips an open campaign to closed and sweeps the
	// entire collected balance to the owner. The phase flip and the
	// sweep commit together or not at all. Returns the swept amount.
	CloseCampaign(ctx context.Context, id uuid.UUID, caller string) (int64, error)

	// OpenCampaign flips a closed campaign back to open. A previously
	// swept balance is not restored.
	OpenCampaign(ctx context.Context, id uuid.UUID, caller string) error

	// View returns a read-only projection of the campaign state and its
	// current balance. It requires no authorization.
	View(ctx context.Context, id uuid.UUID) (*CampaignView, error)
}

// InitParams is the instantiation input for a campaign: the immutable
// location allow-list and the collection deadline.
type InitParams struct {
	DonationLocations []string
	EndTime           time.Time
}

// Donation carries one donate invocation: the claimed donation location
// and the attached amount in integer units. The sender is deliberately
// absent: the ledger does not track who donated. A zero amount is a
// valid donation; negative amounts are malformed.
type Donation struct {
	Location string
	Amount   int64
}

// CampaignView is the read-only projection returned by View. It is a
// DTO used by the HTTP layer and does not contain domain behaviour.
type CampaignView struct {
	DonorCount uint32
	Phase      domain.Phase
	Deadline   time.Time
	Balance    int64
}
