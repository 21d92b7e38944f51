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

// PostStore handles all post-related database operations.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// postSelect returns posts joined with their author and the computed
// comment/like counts. Tag, category, and liker references are attached
// separately.
const postSelect = `
	SELECT p.id, p.title, p.content, p.excerpt, p.slug, p.featured_image,
	       p.status, p.read_time, p.views, p.meta_title, p.meta_description,
	       p.created_at, p.updated_at,
	       u.id, u.username, u.email,
	       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id),
	       (SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id)
	FROM posts p
	JOIN users u ON u.id = p.author_id`

// scanPost scans one row of postSelect.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	p := &models.Post{Tags: []string{}, Categories: []uuid.UUID{}, Likes: []uuid.UUID{}}
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Content, &p.Excerpt, &p.Slug, &p.FeaturedImage,
		&p.Status, &p.ReadTime, &p.Views, &p.MetaTitle, &p.MetaDescription,
		&p.CreatedAt, &p.UpdatedAt,
		&p.Author.ID, &p.Author.Username, &p.Author.Email,
		&p.CommentCount, &p.LikeCount,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new post with its tag and category references and returns
// the stored post.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var id uuid.UUID
	err = tx.QueryRow(`
		INSERT INTO posts (title, content, excerpt, author_id, slug,
		                   featured_image, status, read_time,
		                   meta_title, meta_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, p.Title, p.Content, p.Excerpt, p.Author.ID, p.Slug,
		p.FeaturedImage, p.Status, p.ReadTime,
		p.MetaTitle, p.MetaDescription,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	if err := replaceRefs(tx, id, p.Tags, p.Categories); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create post: %w", err)
	}

	return s.FindByID(id)
}

// replaceRefs rewrites a post's tag and category reference rows.
func replaceRefs(tx *sql.Tx, postID uuid.UUID, tags []string, categories []uuid.UUID) error {
	if _, err := tx.Exec(`DELETE FROM post_tags WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("clear post tags: %w", err)
	}
	for i, tag := range tags {
		_, err := tx.Exec(`
			INSERT INTO post_tags (post_id, position, tag)
			VALUES ($1, $2, $3)
			ON CONFLICT DO NOTHING
		`, postID, i, tag)
		if err != nil {
			return fmt.Errorf("insert post tag: %w", err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM post_categories WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("clear post categories: %w", err)
	}
	for _, categoryID := range categories {
		_, err := tx.Exec(`
			INSERT INTO post_categories (post_id, category_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, postID, categoryID)
		if err != nil {
			return fmt.Errorf("insert post category: %w", err)
		}
	}
	return nil
}

// attachRefs loads the tag and category reference lists for a post.
func (s *PostStore) attachRefs(p *models.Post) error {
	rows, err := s.db.Query(`
		SELECT tag FROM post_tags WHERE post_id = $1 ORDER BY position
	`, p.ID)
	if err != nil {
		return fmt.Errorf("load post tags: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return fmt.Errorf("scan post tag: %w", err)
		}
		p.Tags = append(p.Tags, tag)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	catRows, err := s.db.Query(`
		SELECT category_id FROM post_categories WHERE post_id = $1
	`, p.ID)
	if err != nil {
		return fmt.Errorf("load post categories: %w", err)
	}
	defer catRows.Close()
	for catRows.Next() {
		var categoryID uuid.UUID
		if err := catRows.Scan(&categoryID); err != nil {
			return fmt.Errorf("scan post category: %w", err)
		}
		p.Categories = append(p.Categories, categoryID)
	}
	if err := catRows.Err(); err != nil {
		return err
	}

	likeRows, err := s.db.Query(`
		SELECT user_id FROM post_likes WHERE post_id = $1
	`, p.ID)
	if err != nil {
		return fmt.Errorf("load post likes: %w", err)
	}
	defer likeRows.Close()
	for likeRows.Next() {
		var userID uuid.UUID
		if err := likeRows.Scan(&userID); err != nil {
			return fmt.Errorf("scan post like: %w", err)
		}
		p.Likes = append(p.Likes, userID)
	}
	return likeRows.Err()
}

// FindByID retrieves a post by its UUID. Returns nil if not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	row := s.db.QueryRow(postSelect+` WHERE p.id = $1`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	if err := s.attachRefs(p); err != nil {
		return nil, err
	}
	return p, nil
}

// IncrementViews bumps the post's view counter by one. The increment is a
// single UPDATE, so concurrent reads cannot lose counts.
func (s *PostStore) IncrementViews(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE posts SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment post views: %w", err)
	}
	return nil
}

// List returns one page of posts with the given status, newest first, along
// with the total matching count.
func (s *PostStore) List(status models.PostStatus, page, limit int) ([]models.Post, int, error) {
	var total int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM posts WHERE status = $1`, status,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	rows, err := s.db.Query(
		postSelect+` WHERE p.status = $1 ORDER BY p.created_at DESC LIMIT $2 OFFSET $3`,
		status, limit, offset(page, limit),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts, err := s.collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListByAuthor returns one page of a user's posts regardless of status,
// newest first, along with the total count.
func (s *PostStore) ListByAuthor(authorID uuid.UUID, page, limit int) ([]models.Post, int, error) {
	var total int
	if err := s.db.QueryRow(
		`SELECT COUNT(*) FROM posts WHERE author_id = $1`, authorID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts by author: %w", err)
	}

	rows, err := s.db.Query(
		postSelect+` WHERE p.author_id = $1 ORDER BY p.created_at DESC LIMIT $2 OFFSET $3`,
		authorID, limit, offset(page, limit),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts by author: %w", err)
	}
	defer rows.Close()

	posts, err := s.collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// collect scans all rows and attaches references to each post.
func (s *PostStore) collect(rows *sql.Rows) ([]models.Post, error) {
	posts := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range posts {
		if err := s.attachRefs(&posts[i]); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

// Update rewrites an existing post and its reference rows.
func (s *PostStore) Update(p *models.Post) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE posts SET
			title = $1, content = $2, excerpt = $3, slug = $4,
			featured_image = $5, status = $6, read_time = $7,
			meta_title = $8, meta_description = $9, updated_at = NOW()
		WHERE id = $10
	`, p.Title, p.Content, p.Excerpt, p.Slug,
		p.FeaturedImage, p.Status, p.ReadTime,
		p.MetaTitle, p.MetaDescription, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}

	if err := replaceRefs(tx, p.ID, p.Tags, p.Categories); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes a post by ID. Reference rows, likes, and comments go with it
// via ON DELETE CASCADE.
func (s *PostStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// Exists reports whether a post with the given ID exists.
func (s *PostStore) Exists(id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check post exists: %w", err)
	}
	return exists, nil
}
