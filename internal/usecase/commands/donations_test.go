//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"petpromise/internal/domain/donation"
	"petpromise/internal/infra"
	"petpromise/internal/pkg/clock"
	"petpromise/internal/pkg/errs"
	"petpromise/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeLedger executes uow callbacks against in-memory state so the
// insert-then-increment coupling is observable.
type fakeLedger struct {
	donations map[string]*donation.Donation
	totals    map[uuid.UUID]float64
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		donations: map[string]*donation.Donation{},
		totals:    map[uuid.UUID]float64{},
	}
}

func (l *fakeLedger) Within(ctx context.Context, fn func(ctx context.Context, ledger commands.Ledger) error) error {
	return fn(ctx, l)
}

func (l *fakeLedger) InsertDonation(_ context.Context, d *donation.Donation) (bool, error) {
	if _, ok := l.donations[d.TransactionID]; ok {
		return false, nil
	}
	copied := *d
	l.donations[d.TransactionID] = &copied
	return true, nil
}

func (l *fakeLedger) AddToCampaignTotal(_ context.Context, campaignID uuid.UUID, amount float64) error {
	l.totals[campaignID] += amount
	return nil
}

func (l *fakeLedger) DeleteDonation(_ context.Context, transactionID string) (*donation.Donation, error) {
	d, ok := l.donations[transactionID]
	if !ok {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "donation not found", nil)
	}
	delete(l.donations, transactionID)
	return d, nil
}

func (l *fakeLedger) SubtractFromCampaignTotal(_ context.Context, campaignID uuid.UUID, amount float64) error {
	l.totals[campaignID] -= amount
	if l.totals[campaignID] < 0 {
		l.totals[campaignID] = 0
	}
	return nil
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*commands.PaymentIntent, error) {
	args := m.Called(ctx, amountMinor, currency)
	if i := args.Get(0); i != nil {
		return i.(*commands.PaymentIntent), args.Error(1)
	}
	return nil, args.Error(1)
}

func newDonationCommands(ledger *fakeLedger, payments commands.PaymentService) commands.DonationCommands {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	return commands.NewDonationCommands(ledger, payments, "usd", clk)
}

func TestCreateIntent(t *testing.T) {
	t.Run("converts to minor units", func(t *testing.T) {
		payments := new(MockPaymentService)
		payments.On("CreateIntent", mock.Anything, int64(2550), "usd").
			Return(&commands.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil)

		cmds := newDonationCommands(newFakeLedger(), payments)
		intent, err := cmds.CreateIntent(context.Background(), 25.50)

		require.NoError(t, err)
		assert.Equal(t, "pi_1_secret", intent.ClientSecret)
		payments.AssertExpectations(t)
	})

	t.Run("non-positive amount is rejected before the processor call", func(t *testing.T) {
		payments := new(MockPaymentService)
		cmds := newDonationCommands(newFakeLedger(), payments)

		for _, amount := range []float64{0, -5} {
			_, err := cmds.CreateIntent(context.Background(), amount)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		}
		payments.AssertNotCalled(t, "CreateIntent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("processor rejection is surfaced, not retried", func(t *testing.T) {
		payments := new(MockPaymentService)
		payments.On("CreateIntent", mock.Anything, int64(25), "usd").
			Return(nil, errs.New("amount below minimum")).Once()

		cmds := newDonationCommands(newFakeLedger(), payments)
		_, err := cmds.CreateIntent(context.Background(), 0.25)

		assert.ErrorIs(t, err, errs.ErrPaymentRejected)
		payments.AssertExpectations(t)
	})
}

func TestRecordDonation(t *testing.T) {
	actor := commands.Actor{Email: "donor@example.com"}
	campaignID := uuid.New()
	input := commands.RecordDonationInput{
		TransactionID: "pi_abc123",
		CampaignID:    campaignID,
		DonorEmail:    "donor@example.com",
		Amount:        40,
	}

	t.Run("first record inserts and moves the total", func(t *testing.T) {
		ledger := newFakeLedger()
		cmds := newDonationCommands(ledger, new(MockPaymentService))

		res, err := cmds.Record(context.Background(), input, actor)

		require.NoError(t, err)
		assert.False(t, res.Replayed)
		assert.Len(t, ledger.donations, 1)
		assert.Equal(t, 40.0, ledger.totals[campaignID])
	})

	t.Run("same transaction id is idempotent", func(t *testing.T) {
		ledger := newFakeLedger()
		cmds := newDonationCommands(ledger, new(MockPaymentService))

		_, err := cmds.Record(context.Background(), input, actor)
		require.NoError(t, err)
		res, err := cmds.Record(context.Background(), input, actor)
		require.NoError(t, err)

		assert.True(t, res.Replayed)
		assert.Len(t, ledger.donations, 1, "exactly one donation record")
		assert.Equal(t, 40.0, ledger.totals[campaignID], "total applied exactly once")
	})

	t.Run("donor must be the caller", func(t *testing.T) {
		cmds := newDonationCommands(newFakeLedger(), new(MockPaymentService))
		_, err := cmds.Record(context.Background(), input, commands.Actor{Email: "other@example.com"})
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestRefundDonation(t *testing.T) {
	actor := commands.Actor{Email: "donor@example.com"}
	campaignID := uuid.New()
	input := commands.RecordDonationInput{
		TransactionID: "pi_abc123",
		CampaignID:    campaignID,
		DonorEmail:    "donor@example.com",
		Amount:        40,
	}

	t.Run("refund removes the record and walks the total back", func(t *testing.T) {
		ledger := newFakeLedger()
		cmds := newDonationCommands(ledger, new(MockPaymentService))
		_, err := cmds.Record(context.Background(), input, actor)
		require.NoError(t, err)

		removed, err := cmds.Refund(context.Background(), "pi_abc123", actor)

		require.NoError(t, err)
		assert.Equal(t, 40.0, removed.Amount)
		assert.Empty(t, ledger.donations)
		assert.Equal(t, 0.0, ledger.totals[campaignID])
	})

	t.Run("second refund of the same id fails and leaves the total alone", func(t *testing.T) {
		ledger := newFakeLedger()
		cmds := newDonationCommands(ledger, new(MockPaymentService))
		_, err := cmds.Record(context.Background(), input, actor)
		require.NoError(t, err)

		_, err = cmds.Refund(context.Background(), "pi_abc123", actor)
		require.NoError(t, err)
		_, err = cmds.Refund(context.Background(), "pi_abc123", actor)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, 0.0, ledger.totals[campaignID])
	})

	t.Run("only the donor or an admin may refund", func(t *testing.T) {
		ledger := newFakeLedger()
		cmds := newDonationCommands(ledger, new(MockPaymentService))
		_, err := cmds.Record(context.Background(), input, actor)
		require.NoError(t, err)

		_, err = cmds.Refund(context.Background(), "pi_abc123", commands.Actor{Email: "other@example.com"})
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}
