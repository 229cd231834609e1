package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool
// for PostgreSQL. Mutating operations run in serializable transactions
// and re-check the phase guard on a row locked FOR UPDATE inside the
// transaction, so concurrent invocations serialize on the row lock and
// the loser sees the winner's committed phase. Each invocation commits
// all-or-nothing, which is what gives the state machine its
// no-partial-mutation guarantee.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// CreateCampaign stores a newly instantiated campaign with a zero balance.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, owner_account, donor_count, phase, allowed_locations, deadline, balance, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,0,$7,$8)`,
		c.ID, c.Owner, c.DonorCount, c.Phase, c.AllowedLocations, c.Deadline, c.CreatedAt, c.UpdatedAt)
	return err
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT id, owner_account, donor_count, phase, allowed_locations, deadline, created_at, updated_at
FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.Owner, &c.DonorCount, &c.Phase, &c.AllowedLocations, &c.Deadline, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateDonationAndCredit writes the donation ledger row, credits the
// campaign balance and bumps the donor counter in one transaction. The
// phase is re-read under the row lock: a campaign closed by a
// concurrent invocation rejects the donation with ErrDonationClosed
// instead of committing against the stale snapshot. The counter is a
// relative increment for the same reason.
func (r *CampaignRepository) CreateDonationAndCredit(ctx context.Context, c *domain.Campaign, don *domain.DonationRecord) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()
	// lock campaign row and re-check the phase guard
	var phase domain.Phase
	err = tx.QueryRow(ctx, `SELECT phase FROM campaigns WHERE id = $1 FOR UPDATE`, c.ID).Scan(&phase)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrCampaignNotFound
		return err
	}
	if err != nil {
		return err
	}
	if phase == domain.PhaseClosed {
		err = domain.ErrDonationClosed
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	_, err = tx.Exec(ctx, `UPDATE campaigns SET donor_count = donor_count + 1, balance = balance + $1, updated_at = $2 WHERE id = $3`,
		don.Amount, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	don.CreatedAt = c.UpdatedAt
	_, err = tx.Exec(ctx, `INSERT INTO donations (token, campaign_id, location, amount, created_at) VALUES ($1,$2,$3,$4,$5)`,
		don.Token, don.CampaignID, don.Location, don.Amount, don.CreatedAt)
	if err != nil {
		err = mapPgError(err)
		return err
	}
	err = tx.Commit(ctx)
	return err
}

// CloseAndSweep saves the closed state record, moves the full campaign
// balance to the owner account and writes a transfer ledger row in one
// transaction. The phase is re-read under the row lock, so of two
// racing closes only the first commits; the second sees the committed
// closed phase and fails with ErrWrongPhase. If any step fails the
// transaction rolls back, so the phase flip is discarded too and the
// campaign stays open.
func (r *CampaignRepository) CloseAndSweep(ctx context.Context, c *domain.Campaign) (int64, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()
	// lock campaign row, re-check the phase guard and read the balance to sweep
	var phase domain.Phase
	var balance int64
	err = tx.QueryRow(ctx, `SELECT phase, balance FROM campaigns WHERE id = $1 FOR UPDATE`, c.ID).Scan(&phase, &balance)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrCampaignNotFound
		return 0, err
	}
	if err != nil {
		return 0, err
	}
	if phase != domain.PhaseOpen {
		err = domain.ErrWrongPhase
		return 0, err
	}
	c.UpdatedAt = time.Now().UTC()
	_, err = tx.Exec(ctx, `UPDATE campaigns SET phase = $1, balance = balance - $2, updated_at = $3 WHERE id = $4`,
		domain.PhaseClosed, balance, c.UpdatedAt, c.ID)
	if err != nil {
		err = mapPgError(err)
		return 0, err
	}
	_, err = tx.Exec(ctx, `INSERT INTO accounts (address, balance) VALUES ($1, $2)
ON CONFLICT (address) DO UPDATE SET balance = accounts.balance + EXCLUDED.balance`,
		c.Owner, balance)
	if err != nil {
		return 0, err
	}
	transfer := &domain.TransferRecord{
		Token:      uuid.NewString(),
		CampaignID: c.ID,
		ToAccount:  c.Owner,
		Amount:     balance,
		CreatedAt:  c.UpdatedAt,
	}
	_, err = tx.Exec(ctx, `INSERT INTO transfers (token, campaign_id, to_account, amount, created_at) VALUES ($1,$2,$3,$4,$5)`,
		transfer.Token, transfer.CampaignID, transfer.ToAccount, transfer.Amount, transfer.CreatedAt)
	if err != nil {
		return 0, err
	}
	err = tx.Commit(ctx)
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// ReopenCampaign flips a closed campaign back to open. The phase guard
// is part of the UPDATE predicate, so of two racing reopens only the
// first matches a row; the second fails with ErrWrongPhase. The
// allow-list and deadline are immutable after creation and are never
// written here.
func (r *CampaignRepository) ReopenCampaign(ctx context.Context, c *domain.Campaign) error {
	c.UpdatedAt = time.Now().UTC()
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET phase = $1, updated_at = $2 WHERE id = $3 AND phase = $4`,
		domain.PhaseOpen, c.UpdatedAt, c.ID, domain.PhaseClosed)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, c.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return port.ErrCampaignNotFound
		}
		return domain.ErrWrongPhase
	}
	return nil
}

// Balance returns the campaign's currently held balance.
func (r *CampaignRepository) Balance(ctx context.Context, id uuid.UUID) (int64, error) {
	var balance int64
	err := r.pool.QueryRow(ctx, `SELECT balance FROM campaigns WHERE id = $1`, id).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, port.ErrCampaignNotFound
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// mapPgError converts constraint violations into typed errors. The
// balance column carries a CHECK (balance >= 0), so an overdraw surfaces
// as ErrInsufficientBalance instead of a raw driver error.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
		return port.ErrInsufficientBalance
	}
	return err
}
