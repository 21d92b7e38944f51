// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/vasei-me/Architecture-Blog-API/internal/models"
)

// CategoryStore manages categories and their post membership rows.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// categorySelect includes the post count computed from the membership table.
const categorySelect = `
	SELECT c.id, c.name, c.slug, c.description, c.created_at, c.updated_at,
	       (SELECT COUNT(*) FROM post_categories pc WHERE pc.category_id = c.id) AS post_count
	FROM categories c`

// scanCategory scans one row of categorySelect.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	c := &models.Category{}
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description,
		&c.CreatedAt, &c.UpdatedAt, &c.PostCount,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new category and returns it.
func (s *CategoryStore) Create(c *models.Category) (*models.Category, error) {
	result := &models.Category{}
	err := s.db.QueryRow(`
		INSERT INTO categories (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, slug, description, created_at, updated_at
	`, c.Name, c.Slug, c.Description).Scan(
		&result.ID, &result.Name, &result.Slug, &result.Description,
		&result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

// List returns one page of categories ordered by name, with the total count.
func (s *CategoryStore) List(page, limit int) ([]models.Category, int, error) {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	rows, err := s.db.Query(
		categorySelect+` ORDER BY c.name ASC LIMIT $1 OFFSET $2`,
		limit, offset(page, limit),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	items := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, total, rows.Err()
}

// Popular returns the categories with the most posts, descending.
func (s *CategoryStore) Popular(limit int) ([]models.Category, error) {
	rows, err := s.db.Query(categorySelect+` ORDER BY post_count DESC, c.name ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list popular categories: %w", err)
	}
	defer rows.Close()

	items := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category with its member posts. Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	row := s.db.QueryRow(categorySelect+` WHERE c.id = $1`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	if err := s.attachPosts(c); err != nil {
		return nil, err
	}
	return c, nil
}

// FindBySlug retrieves a category by slug with its member posts.
// Returns nil if not found.
func (s *CategoryStore) FindBySlug(slug string) (*models.Category, error) {
	row := s.db.QueryRow(categorySelect+` WHERE c.slug = $1`, slug)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by slug: %w", err)
	}
	if err := s.attachPosts(c); err != nil {
		return nil, err
	}
	return c, nil
}

// FindByName retrieves a category by exact name. Returns nil if not found.
func (s *CategoryStore) FindByName(name string) (*models.Category, error) {
	row := s.db.QueryRow(categorySelect+` WHERE c.name = $1`, name)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return c, nil
}

// attachPosts loads the compact post references belonging to a category.
func (s *CategoryStore) attachPosts(c *models.Category) error {
	rows, err := s.db.Query(`
		SELECT p.id, p.title, p.slug
		FROM post_categories pc
		JOIN posts p ON p.id = pc.post_id
		WHERE pc.category_id = $1
		ORDER BY p.created_at DESC
	`, c.ID)
	if err != nil {
		return fmt.Errorf("load category posts: %w", err)
	}
	defer rows.Close()

	c.Posts = []models.PostRef{}
	for rows.Next() {
		var ref models.PostRef
		if err := rows.Scan(&ref.ID, &ref.Title, &ref.Slug); err != nil {
			return fmt.Errorf("scan category post: %w", err)
		}
		c.Posts = append(c.Posts, ref)
	}
	return rows.Err()
}

// Update modifies an existing category.
func (s *CategoryStore) Update(c *models.Category) error {
	_, err := s.db.Exec(`
		UPDATE categories SET
			name = $1, slug = $2, description = $3, updated_at = NOW()
		WHERE id = $4
	`, c.Name, c.Slug, c.Description, c.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes a category by ID.
func (s *CategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// PostCount returns how many posts belong to the category.
func (s *CategoryStore) PostCount(id uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM post_categories WHERE category_id = $1`, id,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count category posts: %w", err)
	}
	return count, nil
}

// AddPost adds a post to the category with set semantics: adding a post that
// is already a member is a no-op.
func (s *CategoryStore) AddPost(categoryID, postID uuid.UUID) error {
	_, err := s.db.Exec(`
		INSERT INTO post_categories (post_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, postID, categoryID)
	if err != nil {
		return fmt.Errorf("add post to category: %w", err)
	}
	return nil
}

// RemovePost removes a post from the category. Removing a non-member is a no-op.
func (s *CategoryStore) RemovePost(categoryID, postID uuid.UUID) error {
	_, err := s.db.Exec(`
		DELETE FROM post_categories WHERE post_id = $1 AND category_id = $2
	`, postID, categoryID)
	if err != nil {
		return fmt.Errorf("remove post from category: %w", err)
	}
	return nil
}
