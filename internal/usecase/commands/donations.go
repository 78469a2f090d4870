package commands

import (
	"context"

	"petpromise/internal/domain/donation"
	"petpromise/internal/domain/user"
	"petpromise/internal/pkg/clock"
	"petpromise/internal/pkg/errs"

	"github.com/google/uuid"
)

type RecordDonationInput struct {
	TransactionID string
	CampaignID    uuid.UUID
	DonorEmail    string
	DonorName     string
	PetName       string
	ImageURL      string
	Amount        float64
}

type RecordDonationResult struct {
	Donation *donation.Donation
	// Replayed is true when the transaction id was already recorded; the
	// campaign total is not touched again.
	Replayed bool
}

type DonationCommands interface {
	// CreateIntent converts the decimal amount to minor units and asks the
	// external processor for a charge intent.
	CreateIntent(ctx context.Context, amount float64) (*PaymentIntent, error)
	// Record persists the donation and moves the campaign total in one
	// storage transaction, idempotently per transaction id.
	Record(ctx context.Context, in RecordDonationInput, actor Actor) (*RecordDonationResult, error)
	// Refund removes the donation and walks the campaign total back in one
	// storage transaction. A second refund of the same id fails with a
	// not-found error and leaves the total unchanged.
	Refund(ctx context.Context, transactionID string, actor Actor) (*donation.Donation, error)
}

type donationCommandsImpl struct {
	uow      UnitOfWork
	payments PaymentService
	currency string
	clock    clock.Clock
}

func NewDonationCommands(uow UnitOfWork, payments PaymentService, currency string, clk clock.Clock) DonationCommands {
	return &donationCommandsImpl{uow: uow, payments: payments, currency: currency, clock: clk}
}

func (c *donationCommandsImpl) CreateIntent(ctx context.Context, amount float64) (*PaymentIntent, error) {
	minor := donation.MinorUnits(amount)
	if minor <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	intent, err := c.payments.CreateIntent(ctx, minor, c.currency)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPaymentRejected)
	}
	return intent, nil
}

func (c *donationCommandsImpl) Record(ctx context.Context, in RecordDonationInput, actor Actor) (*RecordDonationResult, error) {
	donor := user.NormalizeEmail(in.DonorEmail)
	if donor != actor.Email {
		return nil, errs.ErrForbidden
	}
	if in.TransactionID == "" || in.Amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	d := &donation.Donation{
		TransactionID: in.TransactionID,
		CampaignID:    in.CampaignID,
		DonorEmail:    donor,
		DonorName:     in.DonorName,
		PetName:       in.PetName,
		ImageURL:      in.ImageURL,
		Amount:        in.Amount,
		CreatedAt:     c.clock.Now(),
	}

	var replayed bool
	err := c.uow.Within(ctx, func(ctx context.Context, ledger Ledger) error {
		inserted, err := ledger.InsertDonation(ctx, d)
		if err != nil {
			return err
		}
		if !inserted {
			replayed = true
			return nil
		}
		return ledger.AddToCampaignTotal(ctx, d.CampaignID, d.Amount)
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to record donation")
	}
	return &RecordDonationResult{Donation: d, Replayed: replayed}, nil
}

func (c *donationCommandsImpl) Refund(ctx context.Context, transactionID string, actor Actor) (*donation.Donation, error) {
	var removed *donation.Donation
	err := c.uow.Within(ctx, func(ctx context.Context, ledger Ledger) error {
		d, err := ledger.DeleteDonation(ctx, transactionID)
		if err != nil {
			return err
		}
		if !actor.IsAdmin() && d.DonorEmail != actor.Email {
			return errs.ErrForbidden
		}
		removed = d
		return ledger.SubtractFromCampaignTotal(ctx, d.CampaignID, d.Amount)
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}
