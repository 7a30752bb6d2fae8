package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mkhalid11/openblog/backend/internal/apperr"
	"github.com/mkhalid11/openblog/backend/internal/controllers"
	"github.com/mkhalid11/openblog/backend/internal/middleware"
	"github.com/mkhalid11/openblog/backend/internal/models"
)

// CommentHandler handles HTTP requests related to comments. Comments are
// always addressed through their parent post.
type CommentHandler struct {
	controller *controllers.CommentController
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(controller *controllers.CommentController) *CommentHandler {
	return &CommentHandler{controller: controller}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/posts/:post_id/comments", h.ListComments)
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.PATCH("/posts/:post_id/comments/:id", h.UpdateComment)
	g.PUT("/posts/:post_id/comments/:id", h.UpdateComment)
	g.DELETE("/posts/:post_id/comments/:id", h.DeleteComment)
}

// ListComments retrieves a page of comments for a specific post
func (h *CommentHandler) ListComments(c echo.Context) error {
	postID, err := parseID(c, "post_id", "post")
	if err != nil {
		return err
	}
	limit, offset := pageParams(c)
	comments, count, err := h.controller.List(c.Request().Context(), postID, limit, offset)
	if err != nil {
		return err
	}
	results := make([]models.CommentResponse, 0, len(comments))
	for i := range comments {
		results = append(results, comments[i].ToResponse())
	}
	return c.JSON(http.StatusOK, newPage(c, count, limit, offset, results))
}

// CreateComment creates a new comment on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	postID, err := parseID(c, "post_id", "post")
	if err != nil {
		return err
	}
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request payload", nil)
	}
	comment, err := h.controller.Create(c.Request().Context(), middleware.CallerFrom(c), postID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment.ToResponse())
}

// UpdateComment updates an existing comment
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	postID, err := parseID(c, "post_id", "post")
	if err != nil {
		return err
	}
	commentID, err := parseID(c, "id", "comment")
	if err != nil {
		return err
	}
	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request payload", nil)
	}
	comment, err := h.controller.Update(c.Request().Context(), middleware.CallerFrom(c), postID, commentID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment.ToResponse())
}

// DeleteComment deletes a comment
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	postID, err := parseID(c, "post_id", "post")
	if err != nil {
		return err
	}
	commentID, err := parseID(c, "id", "comment")
	if err != nil {
		return err
	}
	if err := h.controller.Delete(c.Request().Context(), middleware.CallerFrom(c), postID, commentID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
