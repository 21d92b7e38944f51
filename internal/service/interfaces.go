package service

import (
	"github.com/google/uuid"

	"github.com/vasei-me/Architecture-Blog-API/internal/models"
)

// The store interfaces mirror the concrete types in internal/store.
// Services depend on them so tests can substitute in-memory fakes.

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	Create(username, email, password string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	ExistsByEmailOrUsername(email, username string) (bool, error)
	CheckPassword(user *models.User, password string) bool
}

// PostStore is the persistence surface the post service needs.
type PostStore interface {
	Create(p *models.Post) (*models.Post, error)
	FindByID(id uuid.UUID) (*models.Post, error)
	IncrementViews(id uuid.UUID) error
	List(status models.PostStatus, page, limit int) ([]models.Post, int, error)
	ListByAuthor(authorID uuid.UUID, page, limit int) ([]models.Post, int, error)
	Update(p *models.Post) error
	Delete(id uuid.UUID) error
	Exists(id uuid.UUID) (bool, error)
}

// CategoryStore is the persistence surface the category service needs.
type CategoryStore interface {
	Create(c *models.Category) (*models.Category, error)
	List(page, limit int) ([]models.Category, int, error)
	Popular(limit int) ([]models.Category, error)
	FindByID(id uuid.UUID) (*models.Category, error)
	FindBySlug(slug string) (*models.Category, error)
	FindByName(name string) (*models.Category, error)
	Update(c *models.Category) error
	Delete(id uuid.UUID) error
	PostCount(id uuid.UUID) (int, error)
	AddPost(categoryID, postID uuid.UUID) error
	RemovePost(categoryID, postID uuid.UUID) error
}

// CommentStore is the persistence surface the comment service needs.
type CommentStore interface {
	Create(c *models.Comment) (*models.Comment, error)
	FindByID(id uuid.UUID) (*models.Comment, error)
	ListByPost(postID uuid.UUID, page, limit int) ([]models.Comment, int, error)
	ListByAuthor(authorID uuid.UUID, page, limit int) ([]models.Comment, int, error)
	Update(c *models.Comment) error
	Delete(id uuid.UUID) error
	ToggleLike(commentID, userID uuid.UUID) (bool, error)
}
