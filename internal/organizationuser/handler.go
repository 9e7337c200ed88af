package organizationuser

import (
	"github.com/gin-gonic/gin"

	"orgusers-api/pkg/auth"
	"orgusers-api/pkg/response"
)

type handler struct {
	service       Service
	authorization AuthorizationContext
	middlewares   []gin.HandlerFunc
}

func NewHandler(service Service, authorization AuthorizationContext, middlewares ...gin.HandlerFunc) *handler {
	return &handler{
		service:       service,
		authorization: authorization,
		middlewares:   middlewares,
	}
}

type removeOrganizationUsersRequest struct {
	Ids []string `json:"ids" binding:"required"`
}

func (h *handler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/organizations/:organizationId/users", h.middlewares...)
	group.DELETE("/:organizationUserId", h.RemoveOrganizationUser)
	group.POST("/remove", h.RemoveOrganizationUsers)
}

func (h *handler) RemoveOrganizationUser(c *gin.Context) {
	ctx := c.Request.Context()
	organizationId := c.Param("organizationId")

	userId, ok := h.authorize(c, organizationId)
	if !ok {
		return
	}

	err := h.service.RemoveOrganizationUser(ctx, organizationId, c.Param("organizationUserId"), UserActor{UserId: userId})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func (h *handler) RemoveOrganizationUsers(c *gin.Context) {
	ctx := c.Request.Context()
	organizationId := c.Param("organizationId")

	var req removeOrganizationUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, ErrInvalidRequestBody)
		return
	}

	userId, ok := h.authorize(c, organizationId)
	if !ok {
		return
	}

	results, err := h.service.RemoveOrganizationUsers(ctx, organizationId, req.Ids, UserActor{UserId: userId})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, results)
}

// authorize resolves the caller and requires admin rights in the organization.
// It writes the error response itself and reports whether the request may continue.
func (h *handler) authorize(c *gin.Context, organizationId string) (string, bool) {
	ctx := c.Request.Context()

	userId, err := auth.MustGetUserID(ctx)
	if err != nil {
		response.Error(c, err)
		return "", false
	}

	canManage, err := h.authorization.IsOrganizationAdmin(ctx, organizationId, userId)
	if err != nil {
		response.Error(c, err)
		return "", false
	}
	if !canManage {
		response.Error(c, ErrPermissionDenied)
		return "", false
	}

	return userId, true
}
