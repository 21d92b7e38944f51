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

// CommentStore handles all comment-related database operations, including
// the liker set and the two-level reply tree.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore creates a new CommentStore with the given database connection.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

const commentSelect = `
	SELECT c.id, c.content, c.post_id, c.parent_id, c.status,
	       c.created_at, c.updated_at,
	       u.id, u.username, u.email,
	       (SELECT COUNT(*) FROM comment_likes cl WHERE cl.comment_id = c.id)
	FROM comments c
	JOIN users u ON u.id = c.author_id`

// scanComment scans one row of commentSelect.
func scanComment(scanner interface{ Scan(...any) error }) (*models.Comment, error) {
	c := &models.Comment{Likes: []uuid.UUID{}}
	err := scanner.Scan(
		&c.ID, &c.Content, &c.PostID, &c.ParentID, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
		&c.Author.ID, &c.Author.Username, &c.Author.Email,
		&c.LikeCount,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// attachLikes loads the liker set for a comment.
func (s *CommentStore) attachLikes(c *models.Comment) error {
	rows, err := s.db.Query(`
		SELECT user_id FROM comment_likes WHERE comment_id = $1
	`, c.ID)
	if err != nil {
		return fmt.Errorf("load comment likes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var userID uuid.UUID
		if err := rows.Scan(&userID); err != nil {
			return fmt.Errorf("scan comment like: %w", err)
		}
		c.Likes = append(c.Likes, userID)
	}
	return rows.Err()
}

// Create inserts a new comment and returns it with the author populated.
func (s *CommentStore) Create(c *models.Comment) (*models.Comment, error) {
	var id uuid.UUID
	err := s.db.QueryRow(`
		INSERT INTO comments (content, author_id, post_id, parent_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, c.Content, c.Author.ID, c.PostID, c.ParentID, c.Status).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return s.FindByID(id)
}

// FindByID retrieves a comment by its UUID. Returns nil if not found.
func (s *CommentStore) FindByID(id uuid.UUID) (*models.Comment, error) {
	row := s.db.QueryRow(commentSelect+` WHERE c.id = $1`, id)
	c, err := scanComment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find comment by id: %w", err)
	}
	if err := s.attachLikes(c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListByPost returns one page of a post's approved top-level comments, newest
// first, each carrying its approved replies. The total counts top-level
// comments only.
func (s *CommentStore) ListByPost(postID uuid.UUID, page, limit int) ([]models.Comment, int, error) {
	var total int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM comments
		WHERE post_id = $1 AND parent_id IS NULL AND status = 'approved'
	`, postID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count post comments: %w", err)
	}

	rows, err := s.db.Query(commentSelect+`
		WHERE c.post_id = $1 AND c.parent_id IS NULL AND c.status = 'approved'
		ORDER BY c.created_at DESC LIMIT $2 OFFSET $3`,
		postID, limit, offset(page, limit),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list post comments: %w", err)
	}
	defer rows.Close()

	comments, err := s.collect(rows)
	if err != nil {
		return nil, 0, err
	}

	for i := range comments {
		replies, err := s.repliesOf(comments[i].ID)
		if err != nil {
			return nil, 0, err
		}
		comments[i].Replies = replies
	}
	return comments, total, nil
}

// repliesOf returns the approved direct replies to a comment, oldest first.
func (s *CommentStore) repliesOf(parentID uuid.UUID) ([]models.Comment, error) {
	rows, err := s.db.Query(commentSelect+`
		WHERE c.parent_id = $1 AND c.status = 'approved'
		ORDER BY c.created_at ASC`, parentID)
	if err != nil {
		return nil, fmt.Errorf("list comment replies: %w", err)
	}
	defer rows.Close()
	return s.collect(rows)
}

// ListByAuthor returns one page of a user's comments in any status, newest
// first, along with the total count.
func (s *CommentStore) ListByAuthor(authorID uuid.UUID, page, limit int) ([]models.Comment, int, error) {
	var total int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM comments WHERE author_id = $1`, authorID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count comments by author: %w", err)
	}

	rows, err := s.db.Query(commentSelect+`
		WHERE c.author_id = $1
		ORDER BY c.created_at DESC LIMIT $2 OFFSET $3`,
		authorID, limit, offset(page, limit),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list comments by author: %w", err)
	}
	defer rows.Close()

	comments, err := s.collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

// collect scans all rows and attaches the liker set to each comment.
func (s *CommentStore) collect(rows *sql.Rows) ([]models.Comment, error) {
	comments := []models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range comments {
		if err := s.attachLikes(&comments[i]); err != nil {
			return nil, err
		}
	}
	return comments, nil
}

// Update modifies a comment's content and status.
func (s *CommentStore) Update(c *models.Comment) error {
	_, err := s.db.Exec(`
		UPDATE comments SET content = $1, status = $2, updated_at = NOW()
		WHERE id = $3
	`, c.Content, c.Status, c.ID)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	return nil
}

// Delete removes a comment and all of its direct replies in one transaction.
func (s *CommentStore) Delete(id uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM comments WHERE parent_id = $1`, id); err != nil {
		return fmt.Errorf("delete comment replies: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM comments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return tx.Commit()
}

// ToggleLike flips the user's membership in the comment's liker set: present
// becomes absent, absent becomes present. Returns true when the user likes
// the comment after the call.
func (s *CommentStore) ToggleLike(commentID, userID uuid.UUID) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2
	`, commentID, userID)
	if err != nil {
		return false, fmt.Errorf("unlike comment: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("unlike comment: %w", err)
	}

	liked := removed == 0
	if liked {
		_, err := tx.Exec(`
			INSERT INTO comment_likes (comment_id, user_id) VALUES ($1, $2)
		`, commentID, userID)
		if err != nil {
			return false, fmt.Errorf("like comment: %w", err)
		}
	}
	return liked, tx.Commit()
}
