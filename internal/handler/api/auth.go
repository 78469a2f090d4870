package api

import (
	"net/http"

	"petpromise/internal/domain/user"
	reqdto "petpromise/internal/handler/dto/request"
	resdto "petpromise/internal/handler/dto/response"
	"petpromise/internal/handler/httperr"
	"petpromise/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	tokens *jwt.Service
}

func NewAuthHandler(tokens *jwt.Service) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// @Summary Issue access token
// @Description Issue a signed access token for the given email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.TokenRequest true "Token request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 400 {object} map[string]string
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req reqdto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	token, err := h.tokens.GenerateToken(user.NormalizeEmail(req.Email))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to issue token", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.TokenResponse{Token: token})
}
