package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mkhalid11/openblog/backend/internal/apperr"
	"github.com/mkhalid11/openblog/backend/internal/models"
	"github.com/mkhalid11/openblog/backend/internal/permissions"
	"github.com/mkhalid11/openblog/backend/internal/repositories"
	"gorm.io/gorm"
)

// PostController implements the post resource's decision logic.
type PostController struct {
	posts    repositories.PostRepository
	groups   repositories.GroupRepository
	validate *validator.Validate
}

// NewPostController creates a new PostController
func NewPostController(posts repositories.PostRepository, groups repositories.GroupRepository) *PostController {
	return &PostController{
		posts:    posts,
		groups:   groups,
		validate: validator.New(),
	}
}

// List returns a page of posts and the total count. Open to any caller.
func (ctl *PostController) List(ctx context.Context, limit, offset int) ([]models.Post, int64, error) {
	posts, count, err := ctl.posts.GetPosts(ctx, limit, offset)
	if err != nil {
		return nil, 0, lookupError(err, "post")
	}
	return posts, count, nil
}

// Get returns the post with the given id. Open to any caller.
func (ctl *PostController) Get(ctx context.Context, id uint) (*models.Post, error) {
	post, err := ctl.posts.GetPostByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "post")
	}
	return post, nil
}

// Create persists a new post authored by the caller. The author is always
// the caller; the group reference is taken from the input when present.
func (ctl *PostController) Create(ctx context.Context, caller models.Caller, req models.CreatePostRequest) (*models.Post, error) {
	if caller.IsAnonymous() {
		return nil, apperr.Unauthenticated("authentication required to create a post")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := ctl.checkGroup(ctx, req.Group); err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:      req.Text,
		AuthorID:  caller.ID,
		Author:    models.User{ID: caller.ID, Username: caller.Username},
		GroupID:   req.Group,
		CreatedAt: time.Now(),
	}
	if err := ctl.posts.CreatePost(ctx, post); err != nil {
		return nil, apperr.Internal(err)
	}
	return post, nil
}

// Update applies validated fields to the caller's own post. Ownership is
// checked against the loaded post before anything is mutated; the author
// field is never writable.
func (ctl *PostController) Update(ctx context.Context, caller models.Caller, id uint, req models.UpdatePostRequest) (*models.Post, error) {
	post, err := ctl.posts.GetPostByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "post")
	}
	if caller.IsAnonymous() {
		return nil, apperr.Unauthenticated("authentication required to change a post")
	}
	if !permissions.Allowed(caller, http.MethodPatch, post.AuthorID) {
		return nil, apperr.Forbidden("changing someone else's content is forbidden")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if req.Text != "" {
		post.Text = req.Text
	}
	if req.Group != nil {
		if err := ctl.checkGroup(ctx, req.Group); err != nil {
			return nil, err
		}
		post.GroupID = req.Group
	}
	if err := ctl.posts.UpdatePost(ctx, post); err != nil {
		return nil, lookupError(err, "post")
	}
	return post, nil
}

// Delete removes the caller's own post. Comments cascade at the
// persistence layer.
func (ctl *PostController) Delete(ctx context.Context, caller models.Caller, id uint) error {
	post, err := ctl.posts.GetPostByID(ctx, id)
	if err != nil {
		return lookupError(err, "post")
	}
	if caller.IsAnonymous() {
		return apperr.Unauthenticated("authentication required to delete a post")
	}
	if !permissions.Allowed(caller, http.MethodDelete, post.AuthorID) {
		return apperr.Forbidden("deleting someone else's content is forbidden")
	}
	if err := ctl.posts.DeletePost(ctx, id); err != nil {
		return lookupError(err, "post")
	}
	return nil
}

// checkGroup rejects a group reference pointing at no existing group. An
// unknown group id is a payload problem, not a missing resource.
func (ctl *PostController) checkGroup(ctx context.Context, groupID *uint) error {
	if groupID == nil {
		return nil
	}
	if _, err := ctl.groups.GetGroupByID(ctx, *groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Validation("invalid request payload", map[string]string{
				"group": "no such group",
			})
		}
		return apperr.Internal(err)
	}
	return nil
}
