package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"petpromise/internal/domain/donation"
	"petpromise/internal/infra"
	"petpromise/internal/pkg/errs"
	"petpromise/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) commands.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, ledger commands.Ledger) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, ledger commands.Ledger) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, &txLedger{tx: pgxTx})
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- positive after masking the sign bit
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

// txLedger executes the donation/campaign-total writes on one transaction.
type txLedger struct {
	tx pgx.Tx
}

// InsertDonation relies on the primary key on transaction_id: a replayed
// charge conflicts and writes nothing.
func (l *txLedger) InsertDonation(ctx context.Context, d *donation.Donation) (bool, error) {
	tag, err := l.tx.Exec(ctx,
		`INSERT INTO donations (transaction_id, campaign_id, donor_email, donor_name,
		   pet_name, image_url, amount, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (transaction_id) DO NOTHING`,
		d.TransactionID, d.CampaignID, d.DonorEmail, d.DonorName,
		d.PetName, d.ImageURL, d.Amount, d.CreatedAt)
	if err != nil {
		return false, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to insert donation", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (l *txLedger) AddToCampaignTotal(ctx context.Context, campaignID uuid.UUID, amount float64) error {
	tag, err := l.tx.Exec(ctx,
		`UPDATE campaigns
		 SET total_donated_amount = total_donated_amount + $2
		 WHERE id = $1`,
		campaignID, amount)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to increment campaign total", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "campaign not found", nil)
	}
	return nil
}

func (l *txLedger) DeleteDonation(ctx context.Context, transactionID string) (*donation.Donation, error) {
	row := l.tx.QueryRow(ctx,
		`DELETE FROM donations WHERE transaction_id = $1
		 RETURNING transaction_id, campaign_id, donor_email, donor_name,
		   pet_name, image_url, amount, created_at`,
		transactionID)

	var d donation.Donation
	err := row.Scan(&d.TransactionID, &d.CampaignID, &d.DonorEmail, &d.DonorName,
		&d.PetName, &d.ImageURL, &d.Amount, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "donation not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to delete donation", err)
	}
	return &d, nil
}

// SubtractFromCampaignTotal floors the stored total at zero so refunds of
// pre-migration records cannot push it negative.
func (l *txLedger) SubtractFromCampaignTotal(ctx context.Context, campaignID uuid.UUID, amount float64) error {
	tag, err := l.tx.Exec(ctx,
		`UPDATE campaigns
		 SET total_donated_amount = GREATEST(total_donated_amount - $2, 0)
		 WHERE id = $1`,
		campaignID, amount)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to decrement campaign total", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "campaign not found", nil)
	}
	return nil
}

var _ commands.Ledger = (*txLedger)(nil)
