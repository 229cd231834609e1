package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data into the donation-ledger database: a handful of
// open campaigns with the classic GE/CM/IT/FR allow-list and a spread of
// donations against them.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	locations := []string{"GE", "CM", "IT", "FR"}

	for i := 1; i <= 3; i++ {
		id := uuid.New()
		owner := fmt.Sprintf("acc-owner-%d", i)
		deadline := time.Now().AddDate(0, 1, 0)
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, owner_account, donor_count, phase, allowed_locations, deadline, balance, created_at, updated_at)
VALUES ($1,$2,0,'open',$3,$4,0,now(),now()) ON CONFLICT DO NOTHING`,
			id, owner, locations, deadline)
		if err != nil {
			return err
		}

		// donations against the campaign
		count := 5 + r.Intn(20)
		var total int64
		for j := 0; j < count; j++ {
			amount := int64(r.Intn(100_000)) // up to 1000.00 units
			location := locations[r.Intn(len(locations))]
			_, err = db.Exec(ctx, `INSERT INTO donations
(token, campaign_id, location, amount, created_at)
VALUES ($1,$2,$3,$4,now()) ON CONFLICT DO NOTHING`,
				uuid.NewString(), id, location, amount)
			if err != nil {
				return err
			}
			total += amount
		}
		_, err = db.Exec(ctx, `UPDATE campaigns SET donor_count = $1, balance = $2 WHERE id = $3`,
			count, total, id)
		if err != nil {
			return err
		}
	}
	return nil
}
