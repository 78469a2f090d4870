package api

import (
	"net/http"

	reqdto "petpromise/internal/handler/dto/request"
	resdto "petpromise/internal/handler/dto/response"
	"petpromise/internal/handler/httperr"
	"petpromise/internal/handler/middleware"
	"petpromise/internal/pkg/errs"
	"petpromise/internal/usecase/commands"
	"petpromise/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Register user
// @Description Create the user on first sight of an email; an existing email returns a null insertedId
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUserRequest true "Create user request"
// @Success 200 {object} resdto.InsertResponse
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	if !result.Created {
		c.JSON(http.StatusOK, resdto.NotInserted("USER ALREADY EXISTS"))
		return
	}
	c.JSON(http.StatusOK, resdto.Inserted(result.User.ID.String()))
}

// @Summary List users
// @Description List all registered users except the calling admin
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email query string true "Caller email to exclude"
// @Param page query int false "Page number"
// @Success 200 {object} resdto.UserListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /all-users [get]
func (h *UserHandler) ListAll(c *gin.Context) {
	email := c.Query("email")
	page := queries.NewPageRequest(c.Query("page"), "", queries.DefaultUsersLimit)

	result, err := h.q.ListExcept(c.Request.Context(), email, page)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserList(result.Items, result.TotalCount))
}

// @Summary Get user role
// @Description Return the caller's stored role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email query string true "Caller email"
// @Success 200 {string} string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /user-role [get]
func (h *UserHandler) Role(c *gin.Context) {
	email, ok := middleware.GetActorEmail(c)
	if !ok {
		httperr.AbortWithDomainError(c, errs.ErrUnauthenticated)
		return
	}

	role, err := h.q.RoleByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		return
	}

	c.JSON(http.StatusOK, string(role))
}
