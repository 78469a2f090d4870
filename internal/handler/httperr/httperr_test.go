//go:build unit

package httperr_test

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"petpromise/internal/handler/httperr"
	"petpromise/internal/infra"
	"petpromise/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performAbort(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	httperr.AbortWithDomainError(c, err)
	return w
}

func TestAbortWithDomainError(t *testing.T) {
	t.Run("db failure body carries no driver detail", func(t *testing.T) {
		driverErr := errors.New(`connect to host db-prod-01.internal:5432 failed: password authentication failed for user "petpromise_app"`)
		err := infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to list pets", driverErr)

		w := performAbort(err)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
		assert.NotContains(t, w.Body.String(), "db-prod-01.internal")
		assert.NotContains(t, w.Body.String(), "password authentication")
		assert.NotContains(t, w.Body.String(), "DB_FAILURE")
	})

	t.Run("not found keeps the operation message only", func(t *testing.T) {
		err := infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "failed to find pet", errors.New("no rows in result set"))

		w := performAbort(err)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "failed to find pet")
		assert.NotContains(t, w.Body.String(), "no rows")
		assert.NotContains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("duplicate key keeps the operation message only", func(t *testing.T) {
		err := infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "failed to create adoption request",
			errors.New(`duplicate key value violates unique constraint "adoption_requests_requestor_email_pet_id_key"`))

		w := performAbort(err)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NotContains(t, w.Body.String(), "unique constraint")
	})

	t.Run("sentinel errors keep their message", func(t *testing.T) {
		w := performAbort(errs.ErrForbidden)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), errs.ErrForbidden.Error())
	})

	t.Run("unknown errors answer generic 500", func(t *testing.T) {
		w := performAbort(errors.New("pgx pool exhausted at 10.0.3.7"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "10.0.3.7")
	})
}
