package httperr

import (
	"errors"
	"net/http"

	"petpromise/internal/infra"
	"petpromise/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps sentinel and repository errors onto HTTP statuses
// so handlers stay free of per-error switch statements.
func AbortWithDomainError(c *gin.Context, err error) {
	status := statusOf(err)
	AbortWithError(c, status, err, publicMessage(status, err), nil)
}

// publicMessage keeps driver and repository detail out of response bodies.
// The full chain stays on the gin error list for the logger.
func publicMessage(status int, err error) string {
	if status == http.StatusInternalServerError {
		return "Internal server error"
	}
	var repoErr infra.RepositoryError
	if errors.As(err, &repoErr) {
		return repoErr.Message()
	}
	return err.Error()
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrDuplicateRequest):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidAmount),
		errors.Is(err, errs.ErrEmptyPayload),
		errors.Is(err, errs.ErrFieldNotAllowed):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrPaymentRejected):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrPetNotFound),
		errors.Is(err, errs.ErrRequestNotFound),
		errors.Is(err, errs.ErrCampaignNotFound),
		errors.Is(err, errs.ErrDonationNotFound):
		return http.StatusNotFound
	case infra.IsKind(err, infra.KindNotFound):
		return http.StatusNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
