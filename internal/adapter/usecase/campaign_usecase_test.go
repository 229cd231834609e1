package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/port"
	"donation-ledger/internal/core/port/mocks"
)

const owner = "acc-owner"

func openCampaign() *domain.Campaign {
	return domain.NewCampaign(owner, []string{"GE", "CM", "IT", "FR"}, time.UnixMilli(10000).UTC())
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms).UTC() }
}

// TestDonate ensures a valid donation is committed with the incremented
// donor count and the attached amount.
func TestDonate(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := openCampaign()

	repo.EXPECT().
		GetCampaign(mock.Anything, c.ID).
		Return(c, nil)

	repo.EXPECT().
		CreateDonationAndCredit(mock.Anything, c, mock.AnythingOfType("*domain.DonationRecord")).
		Run(func(ctx context.Context, got *domain.Campaign, rec *domain.DonationRecord) {
			if got.DonorCount != 1 {
				t.Errorf("committed donor count: got %d, want 1", got.DonorCount)
			}
			if rec.Location != "CM" || rec.Amount != 100 {
				t.Errorf("committed record: got %q/%d, want CM/100", rec.Location, rec.Amount)
			}
			if rec.CampaignID != c.ID || rec.Token == "" {
				t.Errorf("record not bound to campaign: %+v", rec)
			}
		}).
		Return(nil)

	svc := NewCampaignUseCase(repo)
	svc.now = fixedClock(0)

	if err := svc.Donate(context.Background(), c.ID, port.Donation{Location: "CM", Amount: 100}); err != nil {
		t.Fatalf("Donate: %v", err)
	}
}

// TestDonateRejections ensures validation failures never reach the
// repository commit, so no state change is observable.
func TestDonateRejections(t *testing.T) {
	tests := []struct {
		name    string
		don     port.Donation
		atMs    int64
		phase   domain.Phase
		wantErr error
	}{
		{name: "after deadline", don: port.Donation{Location: "CM", Amount: 100}, atMs: 10001, phase: domain.PhaseOpen, wantErr: domain.ErrDonationEnded},
		{name: "closed campaign", don: port.Donation{Location: "CM", Amount: 100}, atMs: 0, phase: domain.PhaseClosed, wantErr: domain.ErrDonationClosed},
		{name: "unknown location", don: port.Donation{Location: "USA", Amount: 100}, atMs: 0, phase: domain.PhaseOpen, wantErr: domain.ErrInvalidLocation},
		{name: "negative amount", don: port.Donation{Location: "CM", Amount: -5}, atMs: 0, phase: domain.PhaseOpen, wantErr: domain.ErrParseParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockCampaignRepository(t)
			c := openCampaign()
			c.Phase = tt.phase

			repo.EXPECT().
				GetCampaign(mock.Anything, c.ID).
				Return(c, nil)
			// no CreateDonationAndCredit expectation: a commit would fail the test

			svc := NewCampaignUseCase(repo)
			svc.now = fixedClock(tt.atMs)

			err := svc.Donate(context.Background(), c.ID, tt.don)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Donate: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestCloseCampaign ensures the owner's close commits the closed phase
// together with the full-balance sweep and reports the swept amount.
func TestCloseCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := openCampaign()

	repo.EXPECT().
		GetCampaign(mock.Anything, c.ID).
		Return(c, nil)

	repo.EXPECT().
		CloseAndSweep(mock.Anything, c).
		Run(func(ctx context.Context, got *domain.Campaign) {
			if got.Phase != domain.PhaseClosed {
				t.Errorf("committed phase: got %s, want %s", got.Phase, domain.PhaseClosed)
			}
		}).
		Return(int64(100), nil)

	svc := NewCampaignUseCase(repo)

	swept, err := svc.CloseCampaign(context.Background(), c.ID, owner)
	if err != nil {
		t.Fatalf("CloseCampaign: %v", err)
	}
	if swept != 100 {
		t.Fatalf("swept: got %d, want 100", swept)
	}
}

// TestCloseCampaignNotOwner ensures a non-owner close never reaches the
// repository.
func TestCloseCampaignNotOwner(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := openCampaign()

	repo.EXPECT().
		GetCampaign(mock.Anything, c.ID).
		Return(c, nil)

	svc := NewCampaignUseCase(repo)

	if _, err := svc.CloseCampaign(context.Background(), c.ID, "acc-other"); !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("CloseCampaign: got %v, want %v", err, domain.ErrNotOwner)
	}
}

// TestCloseCampaignSweepFailure ensures a failed sweep propagates as a
// failure of the whole operation.
func TestCloseCampaignSweepFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := openCampaign()

	repo.EXPECT().
		GetCampaign(mock.Anything, c.ID).
		Return(c, nil)

	repo.EXPECT().
		CloseAndSweep(mock.Anything, c).
		Return(int64(0), port.ErrInsufficientBalance)

	svc := NewCampaignUseCase(repo)

	if _, err := svc.CloseCampaign(context.Background(), c.ID, owner); !errors.Is(err, port.ErrInsufficientBalance) {
		t.Fatalf("CloseCampaign: got %v, want %v", err, port.ErrInsufficientBalance)
	}
}

// TestConcurrentClose ensures that of several racing closes exactly one
// sweeps the balance; the rest observe the committed closed phase. The
// repository re-checks the phase as part of its commit, so the stale
// snapshots the losers validated against cannot double-sweep.
func TestConcurrentClose(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	var (
		mu      sync.Mutex
		phase         = domain.PhaseOpen
		balance int64 = 500
		sweeps  int
	)

	repo.EXPECT().
		GetCampaign(mock.Anything, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
			c := openCampaign()
			c.ID = id
			mu.Lock()
			c.Phase = phase
			mu.Unlock()
			return c, nil
		})

	repo.EXPECT().
		CloseAndSweep(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		RunAndReturn(func(ctx context.Context, c *domain.Campaign) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			if phase != domain.PhaseOpen {
				return 0, domain.ErrWrongPhase
			}
			phase = domain.PhaseClosed
			swept := balance
			balance = 0
			sweeps++
			return swept, nil
		}).
		Maybe()

	svc := NewCampaignUseCase(repo)
	id := uuid.New()

	wg := sync.WaitGroup{}
	count := 10
	errs := make([]error, count)
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CloseCampaign(context.Background(), id, owner)
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, domain.ErrWrongPhase):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if won != 1 || lost != count-1 {
		t.Fatalf("racing closes: %d succeeded, %d rejected, want 1/%d", won, lost, count-1)
	}
	if sweeps != 1 || balance != 0 {
		t.Fatalf("after racing closes: %d sweeps, balance %d, want exactly one sweep of the full balance", sweeps, balance)
	}
}

// TestConcurrentDonate ensures racing donations each land as a relative
// increment on the stored state, so no donor or credit is lost to a
// stale snapshot.
func TestConcurrentDonate(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := openCampaign()

	var (
		mu      sync.Mutex
		donors  uint32
		balance int64
	)

	repo.EXPECT().
		GetCampaign(mock.Anything, c.ID).
		RunAndReturn(func(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
			snap := *c
			return &snap, nil
		})

	repo.EXPECT().
		CreateDonationAndCredit(mock.Anything, mock.AnythingOfType("*domain.Campaign"), mock.AnythingOfType("*domain.DonationRecord")).
		Run(func(ctx context.Context, got *domain.Campaign, rec *domain.DonationRecord) {
			mu.Lock()
			defer mu.Unlock()
			donors++
			balance += rec.Amount
		}).
		Return(nil)

	svc := NewCampaignUseCase(repo)
	svc.now = fixedClock(0)

	wg := sync.WaitGroup{}
	count := 10
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			if err := svc.Donate(context.Background(), c.ID, port.Donation{Location: "GE", Amount: 50}); err != nil {
				t.Errorf("Donate: %v", err)
			}
		}()
	}
	wg.Wait()

	if donors != uint32(count) || balance != int64(count)*50 {
		t.Fatalf("after racing donations: donors %d, balance %d, want %d/%d", donors, balance, count, count*50)
	}
}

// TestOpenCampaign ensures the owner can reopen a closed campaign and
// the reopened state is saved without any transfer.
func TestOpenCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := openCampaign()
	c.Phase = domain.PhaseClosed

	repo.EXPECT().
		GetCampaign(mock.Anything, c.ID).
		Return(c, nil)

	repo.EXPECT().
		ReopenCampaign(mock.Anything, c).
		Run(func(ctx context.Context, got *domain.Campaign) {
			if got.Phase != domain.PhaseOpen {
				t.Errorf("committed phase: got %s, want %s", got.Phase, domain.PhaseOpen)
			}
		}).
		Return(nil)

	svc := NewCampaignUseCase(repo)

	if err := svc.OpenCampaign(context.Background(), c.ID, owner); err != nil {
		t.Fatalf("OpenCampaign: %v", err)
	}
}

// TestOpenCampaignWrongPhase ensures reopening an open campaign fails
// without touching storage.
func TestOpenCampaignWrongPhase(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := openCampaign()

	repo.EXPECT().
		GetCampaign(mock.Anything, c.ID).
		Return(c, nil)

	svc := NewCampaignUseCase(repo)

	if err := svc.OpenCampaign(context.Background(), c.ID, owner); !errors.Is(err, domain.ErrWrongPhase) {
		t.Fatalf("OpenCampaign: got %v, want %v", err, domain.ErrWrongPhase)
	}
}

// TestView ensures the projection combines the state record with the
// balance held by the repository.
func TestView(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := openCampaign()
	c.DonorCount = 7

	repo.EXPECT().
		GetCampaign(mock.Anything, c.ID).
		Return(c, nil)

	repo.EXPECT().
		Balance(mock.Anything, c.ID).
		Return(int64(4200), nil)

	svc := NewCampaignUseCase(repo)

	view, err := svc.View(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.DonorCount != 7 || view.Phase != domain.PhaseOpen || view.Balance != 4200 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if !view.Deadline.Equal(c.Deadline) {
		t.Fatalf("deadline: got %v, want %v", view.Deadline, c.Deadline)
	}
}

// TestCreateCampaign ensures instantiation captures the owner and
// starts the campaign open with a zero donor count.
func TestCreateCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(nil)

	svc := NewCampaignUseCase(repo)

	params := port.InitParams{
		DonationLocations: []string{"GE", "CM", "IT", "FR"},
		EndTime:           time.UnixMilli(10000).UTC(),
	}
	c, err := svc.CreateCampaign(context.Background(), owner, params)
	if err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	if c.Owner != owner || c.Phase != domain.PhaseOpen || c.DonorCount != 0 {
		t.Fatalf("unexpected campaign: %+v", c)
	}
}

// TestCreateCampaignEmptyAllowList ensures a campaign without any
// allowed location is rejected as malformed.
func TestCreateCampaignEmptyAllowList(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	svc := NewCampaignUseCase(repo)

	params := port.InitParams{EndTime: time.UnixMilli(10000).UTC()}
	if _, err := svc.CreateCampaign(context.Background(), owner, params); !errors.Is(err, domain.ErrParseParams) {
		t.Fatalf("CreateCampaign: got %v, want %v", err, domain.ErrParseParams)
	}
}
