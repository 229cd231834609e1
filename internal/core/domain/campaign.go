package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Phase is the lifecycle flag of a campaign. A campaign accepts
// donations while open; closing it sweeps the collected balance to the
// owner. Both phases accept a transition back to the other via owner
// action, so neither is terminal.
type Phase string

const (
	PhaseOpen   Phase = "open"
	PhaseClosed Phase = "closed"
)

// Campaign is the durable state record of one donation-collection
// instance. AllowedLocations and Deadline are fixed at creation and
// never mutated afterwards; Phase is toggled only through Close and
// Reopen. The collected balance is not part of this record; custody is
// the repository's job.
type Campaign struct {
	ID               uuid.UUID
	Owner            string
	DonorCount       uint32
	Phase            Phase
	AllowedLocations []string
	Deadline         time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewCampaign instantiates a campaign owned by the given account. The
// campaign starts open with a zero donor count.
func NewCampaign(owner string, locations []string, deadline time.Time) *Campaign {
	return &Campaign{
		ID:               uuid.New(),
		Owner:            owner,
		DonorCount:       0,
		Phase:            PhaseOpen,
		AllowedLocations: slices.Clone(locations),
		Deadline:         deadline,
	}
}

// AcceptDonation validates a donation against the current state and
// records it. Checks run in a fixed order so the first failing
// precondition determines the reported error: deadline, then phase,
// then parameter well-formedness, then the location allow-list.
// Donating at exactly the deadline is still accepted; only a strictly
// later time fails. A zero amount is a valid donation.
func (c *Campaign) AcceptDonation(location string, amount int64, now time.Time) error {
	if now.After(c.Deadline) {
		return ErrDonationEnded
	}
	if c.Phase == PhaseClosed {
		return ErrDonationClosed
	}
	if location == "" || amount < 0 {
		return ErrParseParams
	}
	if !slices.Contains(c.AllowedLocations, location) {
		return ErrInvalidLocation
	}
	c.DonorCount++
	return nil
}

// Close halts collection. Only the owner may close, and only an open
// campaign can be closed. The caller is responsible for sweeping the
// collected balance to the owner in the same atomic commit.
func (c *Campaign) Close(caller string) error {
	if caller != c.Owner {
		return ErrNotOwner
	}
	if c.Phase != PhaseOpen {
		return ErrWrongPhase
	}
	c.Phase = PhaseClosed
	return nil
}

// Reopen resumes collection on a closed campaign. Only the owner may
// reopen. A previously swept balance stays with the owner.
func (c *Campaign) Reopen(caller string) error {
	if caller != c.Owner {
		return ErrNotOwner
	}
	if c.Phase != PhaseClosed {
		return ErrWrongPhase
	}
	c.Phase = PhaseOpen
	return nil
}
