package domain

import (
	"errors"
	"testing"
	"time"
)

func testCampaign() *Campaign {
	return NewCampaign("acc-owner", []string{"GE", "CM", "IT", "FR"}, time.UnixMilli(10000).UTC())
}

func TestAcceptDonation(t *testing.T) {
	tests := []struct {
		name     string
		phase    Phase
		location string
		amount   int64
		at       int64 // milliseconds
		wantErr  error
	}{
		{name: "valid location before deadline", phase: PhaseOpen, location: "CM", amount: 100, at: 0},
		{name: "valid location at exact deadline", phase: PhaseOpen, location: "GE", amount: 100, at: 10000},
		{name: "zero amount is a valid donation", phase: PhaseOpen, location: "IT", amount: 0, at: 0},
		{name: "unknown location", phase: PhaseOpen, location: "USA", amount: 100, at: 0, wantErr: ErrInvalidLocation},
		{name: "unknown location with zero amount", phase: PhaseOpen, location: "USA", amount: 0, at: 0, wantErr: ErrInvalidLocation},
		{name: "past deadline", phase: PhaseOpen, location: "CM", amount: 100, at: 10001, wantErr: ErrDonationEnded},
		{name: "closed campaign", phase: PhaseClosed, location: "CM", amount: 100, at: 0, wantErr: ErrDonationClosed},
		{name: "empty location", phase: PhaseOpen, location: "", amount: 100, at: 0, wantErr: ErrParseParams},
		{name: "negative amount", phase: PhaseOpen, location: "CM", amount: -1, at: 0, wantErr: ErrParseParams},
		// first failing check wins
		{name: "deadline check precedes phase", phase: PhaseClosed, location: "CM", amount: 100, at: 10001, wantErr: ErrDonationEnded},
		{name: "phase check precedes location", phase: PhaseClosed, location: "USA", amount: 100, at: 0, wantErr: ErrDonationClosed},
		{name: "parse check precedes location", phase: PhaseOpen, location: "", amount: -1, at: 0, wantErr: ErrParseParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCampaign()
			c.Phase = tt.phase

			err := c.AcceptDonation(tt.location, tt.amount, time.UnixMilli(tt.at).UTC())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AcceptDonation: got %v, want %v", err, tt.wantErr)
			}

			wantCount := uint32(0)
			if tt.wantErr == nil {
				wantCount = 1
			}
			if c.DonorCount != wantCount {
				t.Fatalf("donor count: got %d, want %d", c.DonorCount, wantCount)
			}
			if c.Phase != tt.phase {
				t.Fatalf("phase changed by donate: got %s, want %s", c.Phase, tt.phase)
			}
			if len(c.AllowedLocations) != 4 {
				t.Fatalf("allow-list mutated by donate: %v", c.AllowedLocations)
			}
		})
	}
}

func TestDonorCountAccumulates(t *testing.T) {
	c := testCampaign()
	at := time.UnixMilli(0)
	for i, loc := range []string{"GE", "CM", "IT", "FR", "CM"} {
		if err := c.AcceptDonation(loc, 100, at); err != nil {
			t.Fatalf("donation %d: %v", i, err)
		}
	}
	if c.DonorCount != 5 {
		t.Fatalf("donor count: got %d, want 5", c.DonorCount)
	}
}

func TestClose(t *testing.T) {
	t.Run("owner closes open campaign", func(t *testing.T) {
		c := testCampaign()
		if err := c.Close("acc-owner"); err != nil {
			t.Fatalf("Close: %v", err)
		}
		if c.Phase != PhaseClosed {
			t.Fatalf("phase: got %s, want %s", c.Phase, PhaseClosed)
		}
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		c := testCampaign()
		if err := c.Close("acc-other"); !errors.Is(err, ErrNotOwner) {
			t.Fatalf("Close: got %v, want %v", err, ErrNotOwner)
		}
		if c.Phase != PhaseOpen {
			t.Fatalf("phase changed by rejected close: %s", c.Phase)
		}
	})

	t.Run("already closed", func(t *testing.T) {
		c := testCampaign()
		c.Phase = PhaseClosed
		if err := c.Close("acc-owner"); !errors.Is(err, ErrWrongPhase) {
			t.Fatalf("Close: got %v, want %v", err, ErrWrongPhase)
		}
	})

	t.Run("owner check precedes phase check", func(t *testing.T) {
		c := testCampaign()
		c.Phase = PhaseClosed
		if err := c.Close("acc-other"); !errors.Is(err, ErrNotOwner) {
			t.Fatalf("Close: got %v, want %v", err, ErrNotOwner)
		}
	})
}

func TestReopen(t *testing.T) {
	t.Run("owner reopens closed campaign", func(t *testing.T) {
		c := testCampaign()
		c.Phase = PhaseClosed
		if err := c.Reopen("acc-owner"); err != nil {
			t.Fatalf("Reopen: %v", err)
		}
		if c.Phase != PhaseOpen {
			t.Fatalf("phase: got %s, want %s", c.Phase, PhaseOpen)
		}
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		c := testCampaign()
		c.Phase = PhaseClosed
		if err := c.Reopen("acc-other"); !errors.Is(err, ErrNotOwner) {
			t.Fatalf("Reopen: got %v, want %v", err, ErrNotOwner)
		}
		if c.Phase != PhaseClosed {
			t.Fatalf("phase changed by rejected reopen: %s", c.Phase)
		}
	})

	t.Run("already open", func(t *testing.T) {
		c := testCampaign()
		if err := c.Reopen("acc-owner"); !errors.Is(err, ErrWrongPhase) {
			t.Fatalf("Reopen: got %v, want %v", err, ErrWrongPhase)
		}
	})
}

// TestCloseReopenRoundTrip checks that close followed by open restores
// the open phase and that the campaign accepts donations again.
func TestCloseReopenRoundTrip(t *testing.T) {
	c := testCampaign()
	if err := c.Close("acc-owner"); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Reopen("acc-owner"); err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	if c.Phase != PhaseOpen {
		t.Fatalf("phase after round trip: got %s, want %s", c.Phase, PhaseOpen)
	}
	if err := c.AcceptDonation("FR", 50, time.UnixMilli(0)); err != nil {
		t.Fatalf("donate after reopen: %v", err)
	}
}
