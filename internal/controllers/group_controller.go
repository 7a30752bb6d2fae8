package controllers

import (
	"context"

	"github.com/mkhalid11/openblog/backend/internal/models"
	"github.com/mkhalid11/openblog/backend/internal/repositories"
)

// GroupController exposes the read-only group surface. Any caller,
// including anonymous, may list and fetch groups.
type GroupController struct {
	groups repositories.GroupRepository
}

// NewGroupController creates a new GroupController
func NewGroupController(groups repositories.GroupRepository) *GroupController {
	return &GroupController{groups: groups}
}

// List returns a page of groups and the total count.
func (ctl *GroupController) List(ctx context.Context, limit, offset int) ([]models.Group, int64, error) {
	groups, count, err := ctl.groups.GetGroups(ctx, limit, offset)
	if err != nil {
		return nil, 0, lookupError(err, "group")
	}
	return groups, count, nil
}

// Get returns the group with the given id.
func (ctl *GroupController) Get(ctx context.Context, id uint) (*models.Group, error) {
	group, err := ctl.groups.GetGroupByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "group")
	}
	return group, nil
}
