package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/micropost/micropost/internal/core/ports"
)

// PostHandler handles post publication.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type publishRequest struct {
	Message string `json:"message" validate:"required"`
}

type publishResponse struct {
	PostID          uint64   `json:"post_id"`
	CreatedAt       string   `json:"created_at"`
	Followers       int      `json:"followers"`
	Delivered       int      `json:"delivered"`
	FailedFollowers []string `json:"failed_followers,omitempty"`
}

// Publish handles POST /v1/posts.
//
// The response carries the fan-out tally; a post that reached only some
// followers is still created (201) with the failures listed.
//
// @Summary      Publish a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      publishRequest  true  "Post body"
// @Success      201   {object}  publishResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /v1/posts [post]
func (h *PostHandler) Publish(c echo.Context) error {
	var req publishRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, username, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.service.Publish(c.Request().Context(), ports.PublishInput{
		AuthorID:   userID,
		AuthorName: username,
		Message:    req.Message,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, publishResponse{
		PostID:          result.PostID,
		CreatedAt:       result.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Followers:       result.Followers,
		Delivered:       result.Delivered,
		FailedFollowers: result.FailedFollowers,
	})
}
