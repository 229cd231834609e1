package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/port"
)

// CampaignUseCase provides the business logic of the donation ledger.
// It orchestrates the campaign state machine and the repository that
// custodies balances, implementing the CampaignUseCase interface. Each
// call loads a state snapshot, runs the pure transition on it and
// commits the result atomically through the repository, so a failed
// invocation leaves no observable state change.
type CampaignUseCase struct {
	repo port.CampaignRepository

	// now supplies the current time for deadline checks. It is a field
	// so tests can pin it to a fixed instant.
	now func() time.Time
}

// NewCampaignUseCase creates a new usecase with the provided repository.
// Time defaults to the wall clock in UTC.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// CreateCampaign instantiates a campaign from the init parameters and
// stores it. The owner identity is captured here, at creation, and is
// the only account the close/open guards will accept. An empty location
// allow-list is malformed: such a campaign could never accept anything.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, owner string, params port.InitParams) (*domain.Campaign, error) {
	if owner == "" || len(params.DonationLocations) == 0 || params.EndTime.IsZero() {
		return nil, domain.ErrParseParams
	}
	c := domain.NewCampaign(owner, params.DonationLocations, params.EndTime)
	if err := u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Donate runs the donate transition against the campaign and, on
// success, credits the attached amount and the incremented donor count
// in one transaction. Validation errors abort with no state change.
func (u *CampaignUseCase) Donate(ctx context.Context, id uuid.UUID, don port.Donation) error {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if err = c.AcceptDonation(don.Location, don.Amount, u.now()); err != nil {
		return err
	}
	rec := &domain.DonationRecord{
		Token:      uuid.NewString(),
		CampaignID: c.ID,
		Location:   don.Location,
		Amount:     don.Amount,
	}
	return u.repo.CreateDonationAndCredit(ctx, c, rec)
}

// CloseCampaign closes an open campaign and sweeps its entire balance
// to the owner. The phase flip and the transfer commit together: if the
// sweep fails the repository rolls both back, so the campaign stays
// open. Returns the swept amount.
func (u *CampaignUseCase) CloseCampaign(ctx context.Context, id uuid.UUID, caller string) (int64, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return 0, err
	}
	if err = c.Close(caller); err != nil {
		return 0, err
	}
	return u.repo.CloseAndSweep(ctx, c)
}

// OpenCampaign reopens a closed campaign. The swept balance is not
// restored; collection simply resumes from zero.
func (u *CampaignUseCase) OpenCampaign(ctx context.Context, id uuid.UUID, caller string) error {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	if err = c.Reopen(caller); err != nil {
		return err
	}
	return u.repo.ReopenCampaign(ctx, c)
}

// View returns the read-only projection of the campaign state together
// with the balance currently held for it.
func (u *CampaignUseCase) View(ctx context.Context, id uuid.UUID) (*port.CampaignView, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	balance, err := u.repo.Balance(ctx, id)
	if err != nil {
		return nil, err
	}
	return &port.CampaignView{
		DonorCount: c.DonorCount,
		Phase:      c.Phase,
		Deadline:   c.Deadline,
		Balance:    balance,
	}, nil
}
