//go:build unit

package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petpromise/internal/domain/user"
	"petpromise/internal/handler/middleware"
	"petpromise/internal/pkg/jwt"
	"petpromise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type stubUserQueries struct {
	roles map[string]user.Role
	err   error
}

func (s stubUserQueries) RoleByEmail(_ context.Context, email string) (user.Role, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.roles[email], nil
}

func (s stubUserQueries) ListExcept(context.Context, string, queries.PageRequest) (queries.PageResult[user.User], error) {
	return queries.PageResult[user.User]{}, nil
}

type AuthMiddlewareTestSuite struct {
	suite.Suite
	tokens *jwt.Service
	mw     *middleware.AuthMiddleware
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.tokens = jwt.NewService("test-secret", time.Hour)
	s.mw = middleware.NewAuthMiddleware(s.tokens, stubUserQueries{
		roles: map[string]user.Role{
			"admin@example.com": user.RoleAdmin,
			"user@example.com":  user.RoleUser,
		},
	})
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	all := append(handlers, func(c *gin.Context) {
		email, _ := middleware.GetActorEmail(c)
		role, _ := middleware.GetActorRole(c)
		c.JSON(http.StatusOK, gin.H{"email": email, "role": role})
	})
	r.GET("/probe", all...)
	return r
}

func (s *AuthMiddlewareTestSuite) perform(r *gin.Engine, url, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) issue(email string) string {
	token, err := s.tokens.GenerateToken(email)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	r := s.newRouter(s.mw.RequireAuth())

	s.Run("valid token passes and exposes the email", func() {
		w := s.perform(r, "/probe", s.issue("user@example.com"))
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "user@example.com")
	})

	s.Run("missing header is rejected", func() {
		w := s.perform(r, "/probe", "")
		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Access token required")
	})

	s.Run("garbage token is rejected", func() {
		w := s.perform(r, "/probe", "not-a-jwt")
		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Invalid or expired token")
	})

	s.Run("mixed-case claim email is lowercased in the context", func() {
		w := s.perform(r, "/probe", s.issue("User@Example.COM"))
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "user@example.com")
		s.NotContains(w.Body.String(), "User@Example.COM")
	})

	s.Run("expired token is rejected", func() {
		expired := jwt.NewService("test-secret", -time.Minute)
		token, err := expired.GenerateToken("user@example.com")
		s.Require().NoError(err)

		w := s.perform(r, "/probe", token)
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireAdmin() {
	r := s.newRouter(s.mw.RequireAuth(), s.mw.RequireAdmin())

	s.Run("admin passes with role attached", func() {
		w := s.perform(r, "/probe", s.issue("admin@example.com"))
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Admin")
	})

	s.Run("regular user is rejected", func() {
		w := s.perform(r, "/probe", s.issue("user@example.com"))
		s.Equal(http.StatusForbidden, w.Code)
		s.Contains(w.Body.String(), "Admin access required")
	})

	s.Run("unknown user is rejected", func() {
		w := s.perform(r, "/probe", s.issue("nobody@example.com"))
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *AuthMiddlewareTestSuite) TestAttachRole() {
	r := s.newRouter(s.mw.RequireAuth(), s.mw.AttachRole())

	s.Run("admin role is visible downstream", func() {
		w := s.perform(r, "/probe", s.issue("admin@example.com"))
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "Admin")
	})

	s.Run("lookup failure still admits the caller", func() {
		broken := middleware.NewAuthMiddleware(s.tokens, stubUserQueries{err: context.DeadlineExceeded})
		r := s.newRouter(broken.RequireAuth(), broken.AttachRole())

		w := s.perform(r, "/probe", s.issue("user@example.com"))
		s.Equal(http.StatusOK, w.Code)
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireSelf() {
	r := s.newRouter(s.mw.RequireAuth(), s.mw.RequireSelf("email"))

	s.Run("matching email passes", func() {
		w := s.perform(r, "/probe?email=user@example.com", s.issue("user@example.com"))
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("case differences are tolerated", func() {
		w := s.perform(r, "/probe?email=User@Example.com", s.issue("user@example.com"))
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("mixed-case token matches its normalized parameter", func() {
		w := s.perform(r, "/probe?email=user@example.com", s.issue("User@Example.com"))
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("someone else's email is rejected", func() {
		w := s.perform(r, "/probe?email=other@example.com", s.issue("user@example.com"))
		s.Equal(http.StatusForbidden, w.Code)
		s.Contains(w.Body.String(), "Forbidden access")
	})

	s.Run("missing parameter is rejected", func() {
		w := s.perform(r, "/probe", s.issue("user@example.com"))
		s.Equal(http.StatusForbidden, w.Code)
	})
}
