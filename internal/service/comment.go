// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/vasei-me/Architecture-Blog-API/internal/apierr"
	"github.com/vasei-me/Architecture-Blog-API/internal/models"
)

const defaultCommentLimit = 10

// CommentService owns comment lifecycle, threading and likes.
type CommentService struct {
	comments CommentStore
	posts    PostStore
}

func NewCommentService(comments CommentStore, posts PostStore) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// CreateCommentInput is the request body for comment creation.
type CreateCommentInput struct {
	Content       string  `json:"content"`
	Post          string  `json:"post"`
	ParentComment *string `json:"parentComment"`
}

// UpdateCommentInput is the patch body for comment updates. Nil fields are
// left unchanged.
type UpdateCommentInput struct {
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

// LikeResult reports the direction of a like toggle together with the
// refreshed comment.
type LikeResult struct {
	Comment *models.Comment
	Liked   bool
}

// Create validates the input and persists an approved comment on an existing
// post, optionally as a reply to an existing parent.
func (s *CommentService) Create(in CreateCommentInput, authorID uuid.UUID) (*models.Comment, error) {
	content := strings.TrimSpace(in.Content)
	if msg := validateCommentContent(content); msg != "" {
		return nil, apierr.Validation(msg)
	}

	postID, err := uuid.Parse(in.Post)
	if err != nil {
		return nil, apierr.Validation("Invalid post ID")
	}
	exists, err := s.posts.Exists(postID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if !exists {
		return nil, apierr.NotFound("Post not found")
	}

	var parentID *uuid.UUID
	if in.ParentComment != nil {
		pid, err := uuid.Parse(*in.ParentComment)
		if err != nil {
			return nil, apierr.Validation("Invalid comment ID")
		}
		parent, err := s.comments.FindByID(pid)
		if err != nil {
			return nil, apierr.Internal(err)
		}
		if parent == nil {
			return nil, apierr.NotFound("Parent comment not found")
		}
		parentID = &pid
	}

	created, err := s.comments.Create(&models.Comment{
		Content:  content,
		Author:   models.AuthorInfo{ID: authorID},
		PostID:   postID,
		ParentID: parentID,
		Status:   models.CommentStatusApproved,
	})
	if err != nil {
		return nil, apierr.Internal(err)
	}
	return created, nil
}

// ListByPost returns a page of approved top-level comments on a post, each
// with its approved replies attached.
func (s *CommentService) ListByPost(postID string, page, limit int) ([]models.Comment, Pagination, error) {
	pid, err := uuid.Parse(postID)
	if err != nil {
		return nil, Pagination{}, apierr.Validation("Invalid post ID")
	}
	exists, err := s.posts.Exists(pid)
	if err != nil {
		return nil, Pagination{}, apierr.Internal(err)
	}
	if !exists {
		return nil, Pagination{}, apierr.NotFound("Post not found")
	}

	page, limit = normalizePage(page, limit, defaultCommentLimit)
	items, total, err := s.comments.ListByPost(pid, page, limit)
	if err != nil {
		return nil, Pagination{}, apierr.Internal(err)
	}
	return items, newPagination(page, limit, total), nil
}

// ListByAuthor returns a page of the author's comments in every status.
func (s *CommentService) ListByAuthor(authorID uuid.UUID, page, limit int) ([]models.Comment, Pagination, error) {
	page, limit = normalizePage(page, limit, defaultCommentLimit)

	items, total, err := s.comments.ListByAuthor(authorID, page, limit)
	if err != nil {
		return nil, Pagination{}, apierr.Internal(err)
	}
	return items, newPagination(page, limit, total), nil
}

// Update applies a partial update to a comment owned by requesterID.
func (s *CommentService) Update(id string, in UpdateCommentInput, requesterID uuid.UUID) (*models.Comment, error) {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return nil, apierr.Validation("Invalid comment ID")
	}

	c, err := s.comments.FindByID(commentID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if c == nil || !authorizeOwner(requesterID, c.Author.ID) {
		return nil, apierr.NotFound("Comment not found or you are not authorized to update this comment")
	}

	if in.Content != nil {
		content := strings.TrimSpace(*in.Content)
		if msg := validateCommentContent(content); msg != "" {
			return nil, apierr.Validation(msg)
		}
		c.Content = content
	}
	if in.Status != nil {
		if !models.ValidCommentStatus(*in.Status) {
			return nil, apierr.Validation("Status must be one of approved, pending, spam")
		}
		c.Status = models.CommentStatus(*in.Status)
	}

	if err := s.comments.Update(c); err != nil {
		return nil, apierr.Internal(err)
	}

	updated, err := s.comments.FindByID(commentID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	return updated, nil
}

// Delete removes a comment owned by requesterID together with its replies.
func (s *CommentService) Delete(id string, requesterID uuid.UUID) error {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return apierr.Validation("Invalid comment ID")
	}

	c, err := s.comments.FindByID(commentID)
	if err != nil {
		return apierr.Internal(err)
	}
	if c == nil || !authorizeOwner(requesterID, c.Author.ID) {
		return apierr.NotFound("Comment not found or you are not authorized to delete this comment")
	}

	if err := s.comments.Delete(commentID); err != nil {
		return apierr.Internal(err)
	}
	return nil
}

// ToggleLike flips requesterID's like on a comment and reports the
// resulting direction.
func (s *CommentService) ToggleLike(id string, requesterID uuid.UUID) (*LikeResult, error) {
	commentID, err := uuid.Parse(id)
	if err != nil {
		return nil, apierr.Validation("Invalid comment ID")
	}

	c, err := s.comments.FindByID(commentID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if c == nil {
		return nil, apierr.NotFound("Comment not found")
	}

	liked, err := s.comments.ToggleLike(commentID, requesterID)
	if err != nil {
		return nil, apierr.Internal(err)
	}

	updated, err := s.comments.FindByID(commentID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	return &LikeResult{Comment: updated, Liked: liked}, nil
}

func validateCommentContent(content string) string {
	switch {
	case content == "":
		return "Comment content is required"
	case utf8.RuneCountInString(content) < 2:
		return "Comment must be at least 2 characters long"
	case utf8.RuneCountInString(content) > 1000:
		return "Comment cannot exceed 1000 characters"
	}
	return ""
}
