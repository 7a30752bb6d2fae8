package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mkhalid11/openblog/backend/internal/controllers"
)

// GroupHandler handles HTTP requests related to groups
type GroupHandler struct {
	controller *controllers.GroupController
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(controller *controllers.GroupController) *GroupHandler {
	return &GroupHandler{controller: controller}
}

// RegisterGroupRoutes registers group-related routes. Read-only surface.
func (h *GroupHandler) RegisterGroupRoutes(g *echo.Group) {
	g.GET("/groups", h.ListGroups)
	g.GET("/groups/:id", h.GetGroup)
}

// ListGroups retrieves a page of groups
func (h *GroupHandler) ListGroups(c echo.Context) error {
	limit, offset := pageParams(c)
	groups, count, err := h.controller.List(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPage(c, count, limit, offset, groups))
}

// GetGroup retrieves a group by ID
func (h *GroupHandler) GetGroup(c echo.Context) error {
	id, err := parseID(c, "id", "group")
	if err != nil {
		return err
	}
	group, err := h.controller.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, group)
}
