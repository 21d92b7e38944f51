// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus represents the publishing state of a post.
type PostStatus string

const (
	PostStatusPublished PostStatus = "published"
	PostStatusDraft     PostStatus = "draft"
	PostStatusArchived  PostStatus = "archived"
)

// ValidPostStatus reports whether s is one of the known post statuses.
func ValidPostStatus(s string) bool {
	switch PostStatus(s) {
	case PostStatusPublished, PostStatusDraft, PostStatusArchived:
		return true
	}
	return false
}

// Post represents a blog post. Slug and ReadTime are derived from Title and
// Content respectively and are never supplied by clients. Likes holds the
// IDs of users who liked the post; CommentCount and LikeCount are computed
// from the owned collections at read time, never persisted.
type Post struct {
	ID              uuid.UUID   `json:"id"`
	Title           string      `json:"title"`
	Content         string      `json:"content"`
	Excerpt         *string     `json:"excerpt,omitempty"`
	Author          AuthorInfo  `json:"author"`
	Categories      []uuid.UUID `json:"categories"`
	Tags            []string    `json:"tags"`
	Slug            string      `json:"slug"`
	FeaturedImage   *string     `json:"featuredImage,omitempty"`
	Status          PostStatus  `json:"status"`
	ReadTime        int         `json:"readTime"`
	Views           int         `json:"views"`
	MetaTitle       *string     `json:"metaTitle,omitempty"`
	MetaDescription *string     `json:"metaDescription,omitempty"`
	CommentCount    int         `json:"commentCount"`
	Likes           []uuid.UUID `json:"likes"`
	LikeCount       int         `json:"likeCount"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// IsPublished returns true if the post is in published status.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// PostRef is the compact post view embedded in category responses.
type PostRef struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Slug  string    `json:"slug"`
}
