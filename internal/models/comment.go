// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentStatus represents the moderation state of a comment.
type CommentStatus string

const (
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusSpam     CommentStatus = "spam"
)

// ValidCommentStatus reports whether s is one of the known comment statuses.
func ValidCommentStatus(s string) bool {
	switch CommentStatus(s) {
	case CommentStatusApproved, CommentStatusPending, CommentStatusSpam:
		return true
	}
	return false
}

// Comment is a reader comment on a post. A comment may reply to another
// comment through ParentID, one level deep: top-level comments carry their
// direct replies, replies carry none.
type Comment struct {
	ID        uuid.UUID     `json:"id"`
	Content   string        `json:"content"`
	Author    AuthorInfo    `json:"author"`
	PostID    uuid.UUID     `json:"post"`
	ParentID  *uuid.UUID    `json:"parentComment,omitempty"`
	Status    CommentStatus `json:"status"`
	Likes     []uuid.UUID   `json:"likes"`
	LikeCount int           `json:"likeCount"`
	Replies   []Comment     `json:"replies,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
