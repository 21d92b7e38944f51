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
	"github.com/vasei-me/Architecture-Blog-API/internal/readtime"
	"github.com/vasei-me/Architecture-Blog-API/internal/slug"
	"github.com/vasei-me/Architecture-Blog-API/internal/store"
)

const defaultPostLimit = 10

// PostService owns post lifecycle: validation, derived fields and the
// ownership policy for mutation.
type PostService struct {
	posts PostStore
	slugs *slug.Generator
}

func NewPostService(posts PostStore, slugs *slug.Generator) *PostService {
	return &PostService{posts: posts, slugs: slugs}
}

// CreatePostInput is the request body for post creation. Slug, read time and
// view count are derived server-side and cannot be supplied.
type CreatePostInput struct {
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Excerpt         *string  `json:"excerpt"`
	Categories      []string `json:"categories"`
	Tags            []string `json:"tags"`
	FeaturedImage   *string  `json:"featuredImage"`
	Status          string   `json:"status"`
	MetaTitle       *string  `json:"metaTitle"`
	MetaDescription *string  `json:"metaDescription"`
}

// UpdatePostInput is the patch body for post updates. Nil fields are left
// unchanged.
type UpdatePostInput struct {
	Title           *string   `json:"title"`
	Content         *string   `json:"content"`
	Excerpt         *string   `json:"excerpt"`
	Categories      *[]string `json:"categories"`
	Tags            *[]string `json:"tags"`
	FeaturedImage   *string   `json:"featuredImage"`
	Status          *string   `json:"status"`
	MetaTitle       *string   `json:"metaTitle"`
	MetaDescription *string   `json:"metaDescription"`
}

// Create validates the input, derives slug and read time and persists the
// post. Status defaults to draft when omitted.
func (s *PostService) Create(in CreatePostInput, authorID uuid.UUID) (*models.Post, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if msg := validatePostFields(in.Title, in.Content, in.Excerpt, in.Tags, in.MetaTitle, in.MetaDescription); msg != "" {
		return nil, apierr.Validation(msg)
	}

	status := models.PostStatusDraft
	if in.Status != "" {
		if !models.ValidPostStatus(in.Status) {
			return nil, apierr.Validation("Status must be one of published, draft, archived")
		}
		status = models.PostStatus(in.Status)
	}

	categories, err := parseIDs(in.Categories, "Invalid category ID")
	if err != nil {
		return nil, err
	}

	p := &models.Post{
		Title:           in.Title,
		Content:         in.Content,
		Excerpt:         in.Excerpt,
		Author:          models.AuthorInfo{ID: authorID},
		Categories:      categories,
		Tags:            in.Tags,
		Slug:            s.slugs.WithFallback("post", in.Title),
		FeaturedImage:   in.FeaturedImage,
		Status:          status,
		ReadTime:        readtime.Estimate(in.Content),
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
	}

	created, err := s.posts.Create(p)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return nil, apierr.Conflict("A post with this title already exists")
		}
		// A well-formed category UUID that matches no row trips the
		// reference constraint, which is bad input, not a server fault.
		if store.IsForeignKeyViolation(err) {
			return nil, apierr.NotFound("Category not found")
		}
		return nil, apierr.Internal(err)
	}
	return created, nil
}

// Get returns a single post and counts the read as a view.
func (s *PostService) Get(id string) (*models.Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, apierr.Validation("Invalid post ID")
	}

	p, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if p == nil {
		return nil, apierr.NotFound("Post not found")
	}

	if err := s.posts.IncrementViews(postID); err != nil {
		return nil, apierr.Internal(err)
	}
	p.Views++
	return p, nil
}

// List returns a page of posts in the given status. Unknown status values
// fall back to published, which is also the default.
func (s *PostService) List(status string, page, limit int) ([]models.Post, Pagination, error) {
	page, limit = normalizePage(page, limit, defaultPostLimit)

	st := models.PostStatusPublished
	if models.ValidPostStatus(status) {
		st = models.PostStatus(status)
	}

	items, total, err := s.posts.List(st, page, limit)
	if err != nil {
		return nil, Pagination{}, apierr.Internal(err)
	}
	return items, newPagination(page, limit, total), nil
}

// ListByAuthor returns a page of the author's posts in every status.
func (s *PostService) ListByAuthor(authorID uuid.UUID, page, limit int) ([]models.Post, Pagination, error) {
	page, limit = normalizePage(page, limit, defaultPostLimit)

	items, total, err := s.posts.ListByAuthor(authorID, page, limit)
	if err != nil {
		return nil, Pagination{}, apierr.Internal(err)
	}
	return items, newPagination(page, limit, total), nil
}

// ListByUser is ListByAuthor with an untrusted ID from the URL.
func (s *PostService) ListByUser(userID string, page, limit int) ([]models.Post, Pagination, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, Pagination{}, apierr.Validation("Invalid user ID")
	}
	return s.ListByAuthor(id, page, limit)
}

// Update applies a partial update to a post owned by requesterID. Slug is
// re-derived when the title changes, read time when the content changes.
func (s *PostService) Update(id string, in UpdatePostInput, requesterID uuid.UUID) (*models.Post, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, apierr.Validation("Invalid post ID")
	}

	p, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if p == nil || !authorizeOwner(requesterID, p.Author.ID) {
		return nil, apierr.NotFound("Post not found or you are not authorized to update this post")
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title != p.Title {
			p.Title = title
			p.Slug = s.slugs.WithFallback("post", title)
		}
	}
	if in.Content != nil {
		content := strings.TrimSpace(*in.Content)
		if content != p.Content {
			p.Content = content
			p.ReadTime = readtime.Estimate(content)
		}
	}
	if in.Excerpt != nil {
		p.Excerpt = in.Excerpt
	}
	if in.Categories != nil {
		categories, err := parseIDs(*in.Categories, "Invalid category ID")
		if err != nil {
			return nil, err
		}
		p.Categories = categories
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	if in.FeaturedImage != nil {
		p.FeaturedImage = in.FeaturedImage
	}
	if in.Status != nil {
		if !models.ValidPostStatus(*in.Status) {
			return nil, apierr.Validation("Status must be one of published, draft, archived")
		}
		p.Status = models.PostStatus(*in.Status)
	}
	if in.MetaTitle != nil {
		p.MetaTitle = in.MetaTitle
	}
	if in.MetaDescription != nil {
		p.MetaDescription = in.MetaDescription
	}

	if msg := validatePostFields(p.Title, p.Content, p.Excerpt, p.Tags, p.MetaTitle, p.MetaDescription); msg != "" {
		return nil, apierr.Validation(msg)
	}

	if err := s.posts.Update(p); err != nil {
		if store.IsUniqueViolation(err) {
			return nil, apierr.Conflict("A post with this title already exists")
		}
		if store.IsForeignKeyViolation(err) {
			return nil, apierr.NotFound("Category not found")
		}
		return nil, apierr.Internal(err)
	}

	updated, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	return updated, nil
}

// Delete removes a post owned by requesterID together with its comments and
// likes.
func (s *PostService) Delete(id string, requesterID uuid.UUID) error {
	postID, err := uuid.Parse(id)
	if err != nil {
		return apierr.Validation("Invalid post ID")
	}

	p, err := s.posts.FindByID(postID)
	if err != nil {
		return apierr.Internal(err)
	}
	if p == nil || !authorizeOwner(requesterID, p.Author.ID) {
		return apierr.NotFound("Post not found or you are not authorized to delete this post")
	}

	if err := s.posts.Delete(postID); err != nil {
		return apierr.Internal(err)
	}
	return nil
}

func validatePostFields(title, content string, excerpt *string, tags []string, metaTitle, metaDescription *string) string {
	switch {
	case title == "":
		return "Title is required"
	case utf8.RuneCountInString(title) < 5 || utf8.RuneCountInString(title) > 200:
		return "Title must be between 5 and 200 characters"
	case content == "":
		return "Content is required"
	case utf8.RuneCountInString(content) < 50:
		return "Content must be at least 50 characters long"
	case excerpt != nil && utf8.RuneCountInString(*excerpt) > 300:
		return "Excerpt cannot exceed 300 characters"
	case metaTitle != nil && utf8.RuneCountInString(*metaTitle) > 200:
		return "Meta title cannot exceed 200 characters"
	case metaDescription != nil && utf8.RuneCountInString(*metaDescription) > 300:
		return "Meta description cannot exceed 300 characters"
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) > 20 {
			return "Tags cannot exceed 20 characters"
		}
	}
	return ""
}

func parseIDs(raw []string, invalidMsg string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, apierr.Validation(invalidMsg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
