package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/micropost/micropost/internal/core/ports"
)

// FollowHandler handles follow requests.
type FollowHandler struct {
	service ports.SocialService
}

func NewFollowHandler(service ports.SocialService) *FollowHandler {
	return &FollowHandler{service: service}
}

type followRequest struct {
	Username string `json:"username" validate:"required"`
}

// Follow handles POST /v1/follow — the authenticated user follows the named
// account. Duplicate follows are a no-op.
//
// @Summary      Follow a user
// @Tags         social
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /v1/follow [post]
func (h *FollowHandler) Follow(c echo.Context) error {
	var req followRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, username, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Follow(c.Request().Context(), username, req.Username); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
