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
	"github.com/vasei-me/Architecture-Blog-API/internal/slug"
	"github.com/vasei-me/Architecture-Blog-API/internal/store"
)

const (
	defaultCategoryLimit = 50
	defaultPopularLimit  = 10
)

// CategoryService owns category lifecycle and post membership. Categories
// have no owner: any authenticated caller may mutate them.
type CategoryService struct {
	categories CategoryStore
	posts      PostStore
	slugs      *slug.Generator
}

func NewCategoryService(categories CategoryStore, posts PostStore, slugs *slug.Generator) *CategoryService {
	return &CategoryService{categories: categories, posts: posts, slugs: slugs}
}

// CategoryInput is the request body for category creation and update. On
// update, nil fields are left unchanged.
type CategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Create validates the name, refuses duplicates and derives the slug.
func (s *CategoryService) Create(in CategoryInput) (*models.Category, error) {
	if in.Name == nil {
		return nil, apierr.Validation("Name is required")
	}
	name := strings.TrimSpace(*in.Name)
	if msg := validateCategoryFields(name, in.Description); msg != "" {
		return nil, apierr.Validation(msg)
	}

	existing, err := s.categories.FindByName(name)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if existing != nil {
		return nil, apierr.Conflict("Category with this name already exists")
	}

	created, err := s.categories.Create(&models.Category{
		Name:        name,
		Slug:        s.slugs.WithFallback("category", name),
		Description: in.Description,
	})
	if err != nil {
		if store.IsUniqueViolation(err) {
			return nil, apierr.Conflict("Category with this name already exists")
		}
		return nil, apierr.Internal(err)
	}
	return created, nil
}

// List returns a page of categories ordered by name.
func (s *CategoryService) List(page, limit int) ([]models.Category, Pagination, error) {
	page, limit = normalizePage(page, limit, defaultCategoryLimit)

	items, total, err := s.categories.List(page, limit)
	if err != nil {
		return nil, Pagination{}, apierr.Internal(err)
	}
	return items, newPagination(page, limit, total), nil
}

// Popular returns the categories with the most posts.
func (s *CategoryService) Popular(limit int) ([]models.Category, error) {
	if limit < 1 {
		limit = defaultPopularLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	items, err := s.categories.Popular(limit)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	return items, nil
}

// Get returns a single category with its member posts.
func (s *CategoryService) Get(id string) (*models.Category, error) {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, apierr.Validation("Invalid category ID")
	}

	c, err := s.categories.FindByID(categoryID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if c == nil {
		return nil, apierr.NotFound("Category not found")
	}
	return c, nil
}

// GetBySlug resolves a category by its URL slug.
func (s *CategoryService) GetBySlug(categorySlug string) (*models.Category, error) {
	c, err := s.categories.FindBySlug(categorySlug)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if c == nil {
		return nil, apierr.NotFound("Category not found")
	}
	return c, nil
}

// Update applies a partial update. The slug is re-derived when the name
// changes.
func (s *CategoryService) Update(id string, in CategoryInput) (*models.Category, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name != c.Name {
			existing, err := s.categories.FindByName(name)
			if err != nil {
				return nil, apierr.Internal(err)
			}
			if existing != nil {
				return nil, apierr.Conflict("Category with this name already exists")
			}
			c.Name = name
			c.Slug = s.slugs.WithFallback("category", name)
		}
	}
	if in.Description != nil {
		c.Description = in.Description
	}

	if msg := validateCategoryFields(c.Name, c.Description); msg != "" {
		return nil, apierr.Validation(msg)
	}

	if err := s.categories.Update(c); err != nil {
		if store.IsUniqueViolation(err) {
			return nil, apierr.Conflict("Category with this name already exists")
		}
		return nil, apierr.Internal(err)
	}

	updated, err := s.categories.FindByID(c.ID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	return updated, nil
}

// Delete removes an empty category. Categories that still have posts are
// refused so posts never silently lose a reference.
func (s *CategoryService) Delete(id string) error {
	c, err := s.Get(id)
	if err != nil {
		return err
	}

	count, err := s.categories.PostCount(c.ID)
	if err != nil {
		return apierr.Internal(err)
	}
	if count > 0 {
		return apierr.Conflict("Cannot delete category that has posts. Please reassign posts first.")
	}

	if err := s.categories.Delete(c.ID); err != nil {
		return apierr.Internal(err)
	}
	return nil
}

// AddPost adds a post to the category. Adding a post that is already a
// member is a no-op.
func (s *CategoryService) AddPost(id, postID string) (*models.Category, error) {
	return s.changeMembership(id, postID, s.categories.AddPost)
}

// RemovePost removes a post from the category. Removing a post that is not
// a member is a no-op.
func (s *CategoryService) RemovePost(id, postID string) (*models.Category, error) {
	return s.changeMembership(id, postID, s.categories.RemovePost)
}

func (s *CategoryService) changeMembership(id, postID string, change func(categoryID, postID uuid.UUID) error) (*models.Category, error) {
	c, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	pid, err := uuid.Parse(postID)
	if err != nil {
		return nil, apierr.Validation("Invalid post ID")
	}
	exists, err := s.posts.Exists(pid)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if !exists {
		return nil, apierr.NotFound("Post not found")
	}

	if err := change(c.ID, pid); err != nil {
		return nil, apierr.Internal(err)
	}

	updated, err := s.categories.FindByID(c.ID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	return updated, nil
}

func validateCategoryFields(name string, description *string) string {
	switch {
	case name == "":
		return "Name is required"
	case utf8.RuneCountInString(name) > 50:
		return "Category name cannot exceed 50 characters"
	case description != nil && utf8.RuneCountInString(*description) > 200:
		return "Description cannot exceed 200 characters"
	}
	return ""
}
