package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mkhalid11/openblog/backend/internal/apperr"
	"github.com/mkhalid11/openblog/backend/internal/controllers"
	"github.com/mkhalid11/openblog/backend/internal/middleware"
	"github.com/mkhalid11/openblog/backend/internal/models"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	controller *controllers.PostController
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(controller *controllers.PostController) *PostHandler {
	return &PostHandler{controller: controller}
}

// RegisterPostRoutes registers post-related routes. PUT is accepted as an
// alias of PATCH on updates.
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts", h.ListPosts)
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.PATCH("/posts/:id", h.UpdatePost)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// ListPosts retrieves a page of posts
func (h *PostHandler) ListPosts(c echo.Context) error {
	limit, offset := pageParams(c)
	posts, count, err := h.controller.List(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}
	results := make([]models.PostResponse, 0, len(posts))
	for i := range posts {
		results = append(results, posts[i].ToResponse())
	}
	return c.JSON(http.StatusOK, newPage(c, count, limit, offset, results))
}

// CreatePost creates a new post authored by the caller
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request payload", nil)
	}
	post, err := h.controller.Create(c.Request().Context(), middleware.CallerFrom(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post.ToResponse())
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := parseID(c, "id", "post")
	if err != nil {
		return err
	}
	post, err := h.controller.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post.ToResponse())
}

// UpdatePost updates an existing post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, err := parseID(c, "id", "post")
	if err != nil {
		return err
	}
	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request payload", nil)
	}
	post, err := h.controller.Update(c.Request().Context(), middleware.CallerFrom(c), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post.ToResponse())
}

// DeletePost deletes a post
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := parseID(c, "id", "post")
	if err != nil {
		return err
	}
	if err := h.controller.Delete(c.Request().Context(), middleware.CallerFrom(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
