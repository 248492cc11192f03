package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/micropost/micropost/internal/core/ports"
)

// FeedHandler serves the aggregated feed view.
type FeedHandler struct {
	feeds  ports.FeedService
	social ports.SocialService
}

func NewFeedHandler(feeds ports.FeedService, social ports.SocialService) *FeedHandler {
	return &FeedHandler{feeds: feeds, social: social}
}

type feedResponse struct {
	Username    string           `json:"username"`
	Timeline    []ports.FeedItem `json:"timeline"`
	Suggestions []string         `json:"suggestions"`
}

// Get handles GET /v1/feed — the user's assembled timeline plus
// who-to-follow suggestions.
//
// @Summary      Read the authenticated user's feed
// @Tags         feed
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  feedResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /v1/feed [get]
func (h *FeedHandler) Get(c echo.Context) error {
	_, username, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	timeline, err := h.feeds.Assemble(ctx, username)
	if err != nil {
		return err
	}
	suggestions, err := h.social.Suggestions(ctx, username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, feedResponse{
		Username:    username,
		Timeline:    timeline,
		Suggestions: suggestions,
	})
}
