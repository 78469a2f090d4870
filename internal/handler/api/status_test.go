//go:build unit

package api_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petpromise/internal/domain/user"
	"petpromise/internal/handler/api"
	"petpromise/internal/infra"
	"petpromise/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// fakeDocStore keeps documents in memory so the full route path can run
// against the real mutation engine.
type fakeDocStore struct {
	kind string
	docs map[uuid.UUID]map[string]any
}

func newFakeDocStore(kind string) *fakeDocStore {
	return &fakeDocStore{kind: kind, docs: make(map[uuid.UUID]map[string]any)}
}

func (s *fakeDocStore) Kind() string { return s.kind }

func (s *fakeDocStore) Fetch(_ context.Context, id uuid.UUID) (map[string]any, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "failed to find "+s.kind, nil)
	}
	copied := make(map[string]any, len(doc))
	for k, v := range doc {
		copied[k] = v
	}
	return copied, nil
}

func (s *fakeDocStore) Apply(_ context.Context, id uuid.UUID, fields map[string]any) error {
	doc, ok := s.docs[id]
	if !ok {
		return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "failed to find "+s.kind, nil)
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

type MutationHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	pets   *fakeDocStore
	users  *fakeDocStore
	petID  uuid.UUID
	userID uuid.UUID
}

func (s *MutationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.pets = newFakeDocStore("pet")
	s.users = newFakeDocStore("user")

	s.petID = uuid.New()
	s.pets.docs[s.petID] = map[string]any{
		"ownerEmail": "owner@example.com",
		"petName":    "Rex",
		"adopted":    false,
	}
	s.userID = uuid.New()
	s.users.docs[s.userID] = map[string]any{
		"email": "user@example.com",
		"role":  "User",
	}

	h := api.NewMutationHandler(commands.NewMutationCommands(), api.MutationStores{
		Users:     s.users,
		Pets:      s.pets,
		Requests:  newFakeDocStore("adoption request"),
		Campaigns: newFakeDocStore("campaign"),
	})

	// The auth stub reads the caller identity from headers so each case can
	// pick its own actor.
	identity := func(c *gin.Context) {
		if email := c.GetHeader("X-Test-Email"); email != "" {
			c.Set("user_email", email)
		}
		if role := c.GetHeader("X-Test-Role"); role != "" {
			c.Set("user_role", user.Role(role))
		}
		c.Next()
	}

	s.router = gin.New()
	s.router.PATCH("/change-pet-status/:id", identity, h.ChangePetStatus())
	s.router.PATCH("/make-admin/:id", identity, h.MakeAdmin())
}

func TestMutationHandlerSuite(t *testing.T) {
	suite.Run(t, new(MutationHandlerTestSuite))
}

func (s *MutationHandlerTestSuite) patch(url, body, email, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		req.Header.Set("X-Test-Email", email)
	}
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *MutationHandlerTestSuite) TestChangePetStatus() {
	url := "/change-pet-status/" + s.petID.String()

	s.Run("owner flips the adopted flag", func() {
		w := s.patch(url, `{"adopted":true}`, "owner@example.com", "")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "pet updated")
		s.Equal(true, s.pets.docs[s.petID]["adopted"])
	})

	s.Run("matching value reports a no-op", func() {
		w := s.patch(url, `{"adopted":true}`, "owner@example.com", "")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "No changes detected, all fields match")
	})

	s.Run("non-owner is rejected", func() {
		w := s.patch(url, `{"adopted":false}`, "stranger@example.com", "")

		s.Equal(http.StatusForbidden, w.Code)
		s.Equal(true, s.pets.docs[s.petID]["adopted"])
	})

	s.Run("admin override is honored", func() {
		w := s.patch(url, `{"adopted":false}`, "stranger@example.com", "Admin")

		s.Equal(http.StatusOK, w.Code)
		s.Equal(false, s.pets.docs[s.petID]["adopted"])
	})

	s.Run("field outside the route's surface is rejected", func() {
		w := s.patch(url, `{"ownerEmail":"stolen@example.com"}`, "owner@example.com", "")

		s.Equal(http.StatusBadRequest, w.Code)
		s.Equal("owner@example.com", s.pets.docs[s.petID]["ownerEmail"])
	})

	s.Run("empty payload is rejected", func() {
		w := s.patch(url, `{}`, "owner@example.com", "")

		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unknown id answers 404", func() {
		w := s.patch("/change-pet-status/"+uuid.NewString(), `{"adopted":true}`, "owner@example.com", "")

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("anonymous caller is rejected", func() {
		w := s.patch(url, `{"adopted":true}`, "", "")

		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *MutationHandlerTestSuite) TestMakeAdmin() {
	url := "/make-admin/" + s.userID.String()

	s.Run("admin promotes a user", func() {
		w := s.patch(url, `{"role":"Admin"}`, "admin@example.com", "Admin")

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "user updated")
		s.Equal("Admin", s.users.docs[s.userID]["role"])
	})

	s.Run("non-admin may not promote", func() {
		s.users.docs[s.userID]["role"] = "User"

		w := s.patch(url, `{"role":"Admin"}`, "user@example.com", "")

		s.Equal(http.StatusForbidden, w.Code)
		s.Equal("User", s.users.docs[s.userID]["role"])
	})
}
