package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mkhalid11/openblog/backend/internal/apperr"
	"github.com/mkhalid11/openblog/backend/internal/models"
	"github.com/mkhalid11/openblog/backend/internal/permissions"
	"github.com/mkhalid11/openblog/backend/internal/repositories"
)

// CommentController implements the comment resource's decision logic.
// Every operation resolves the parent post first: a missing parent is
// NotFound before any comment-level work, regardless of who is asking.
type CommentController struct {
	comments repositories.CommentRepository
	posts    repositories.PostRepository
	validate *validator.Validate
}

// NewCommentController creates a new CommentController
func NewCommentController(comments repositories.CommentRepository, posts repositories.PostRepository) *CommentController {
	return &CommentController{
		comments: comments,
		posts:    posts,
		validate: validator.New(),
	}
}

// List returns a page of the resolved post's comments and their total
// count. Open to any caller.
func (ctl *CommentController) List(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, int64, error) {
	if err := ctl.resolvePost(ctx, postID); err != nil {
		return nil, 0, err
	}
	comments, count, err := ctl.comments.GetCommentsByPostID(ctx, postID, limit, offset)
	if err != nil {
		return nil, 0, lookupError(err, "comment")
	}
	return comments, count, nil
}

// Create persists a new comment under the resolved post, authored by the
// caller. Author and post always come from the caller and the path.
func (ctl *CommentController) Create(ctx context.Context, caller models.Caller, postID uint, req models.CreateCommentRequest) (*models.Comment, error) {
	if err := ctl.resolvePost(ctx, postID); err != nil {
		return nil, err
	}
	if caller.IsAnonymous() {
		return nil, apperr.Unauthenticated("authentication required to create a comment")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	comment := &models.Comment{
		Text:      req.Text,
		AuthorID:  caller.ID,
		Author:    models.User{ID: caller.ID, Username: caller.Username},
		PostID:    postID,
		CreatedAt: time.Now(),
	}
	if err := ctl.comments.CreateComment(ctx, comment); err != nil {
		return nil, apperr.Internal(err)
	}
	return comment, nil
}

// Update applies the validated text to the caller's own comment. The
// comment lookup is scoped to the resolved post, so a comment living under
// a different post is NotFound. Author and post are never writable.
func (ctl *CommentController) Update(ctx context.Context, caller models.Caller, postID, commentID uint, req models.UpdateCommentRequest) (*models.Comment, error) {
	if err := ctl.resolvePost(ctx, postID); err != nil {
		return nil, err
	}
	comment, err := ctl.comments.GetCommentByID(ctx, postID, commentID)
	if err != nil {
		return nil, lookupError(err, "comment")
	}
	if caller.IsAnonymous() {
		return nil, apperr.Unauthenticated("authentication required to change a comment")
	}
	if !permissions.Allowed(caller, http.MethodPatch, comment.AuthorID) {
		return nil, apperr.Forbidden("changing someone else's content is forbidden")
	}
	if err := ctl.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	comment.Text = req.Text
	if err := ctl.comments.UpdateComment(ctx, comment); err != nil {
		return nil, lookupError(err, "comment")
	}
	return comment, nil
}

// Delete removes the caller's own comment, following the same resolution
// sequence as Update.
func (ctl *CommentController) Delete(ctx context.Context, caller models.Caller, postID, commentID uint) error {
	if err := ctl.resolvePost(ctx, postID); err != nil {
		return err
	}
	comment, err := ctl.comments.GetCommentByID(ctx, postID, commentID)
	if err != nil {
		return lookupError(err, "comment")
	}
	if caller.IsAnonymous() {
		return apperr.Unauthenticated("authentication required to delete a comment")
	}
	if !permissions.Allowed(caller, http.MethodDelete, comment.AuthorID) {
		return apperr.Forbidden("deleting someone else's content is forbidden")
	}
	if err := ctl.comments.DeleteComment(ctx, postID, commentID); err != nil {
		return lookupError(err, "comment")
	}
	return nil
}

// resolvePost verifies the parent post exists.
func (ctl *CommentController) resolvePost(ctx context.Context, postID uint) error {
	if _, err := ctl.posts.GetPostByID(ctx, postID); err != nil {
		return lookupError(err, "post")
	}
	return nil
}
