package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Authorization errors
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Pet errors
	ErrPetNotFound = errors.New("pet not found")

	// Adoption errors
	ErrRequestNotFound  = errors.New("adoption request not found")
	ErrDuplicateRequest = errors.New("adoption already requested for this pet")

	// Campaign errors
	ErrCampaignNotFound = errors.New("donation campaign not found")

	// Donation errors
	ErrDonationNotFound = errors.New("donation not found")
	ErrInvalidAmount    = errors.New("invalid donation amount")
	ErrPaymentRejected  = errors.New("payment intent rejected")

	// Mutation errors
	ErrEmptyPayload    = errors.New("empty update payload")
	ErrFieldNotAllowed = errors.New("field not allowed for this update")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
