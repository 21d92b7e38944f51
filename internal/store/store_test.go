// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/vasei-me/Architecture-Blog-API/internal/database"
	"github.com/vasei-me/Architecture-Blog-API/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with local development defaults.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "blog")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "blog")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testUser creates a user with unique credentials and registers cleanup.
func testUser(t *testing.T, db *sql.DB) *models.User {
	t.Helper()

	suffix := uuid.NewString()[:8]
	u, err := NewUserStore(db).Create("writer"+suffix, "writer"+suffix+"@example.com", "secret123")
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM users WHERE id = $1", u.ID)
	})
	return u
}

// testPost creates a draft post owned by author and registers cleanup.
func testPost(t *testing.T, db *sql.DB, author *models.User, title, slug string) *models.Post {
	t.Helper()

	p, err := NewPostStore(db).Create(&models.Post{
		Title:    title,
		Content:  "Body text long enough to stand in for real content in tests.",
		Author:   author.Info(),
		Slug:     slug,
		Status:   models.PostStatusDraft,
		ReadTime: 1,
		Tags:     []string{"go", "testing"},
	})
	if err != nil {
		t.Fatalf("create test post: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM posts WHERE id = $1", p.ID)
	})
	return p
}

// testCategory creates a category with a unique name and registers cleanup.
func testCategory(t *testing.T, db *sql.DB, name, slug string) *models.Category {
	t.Helper()

	c, err := NewCategoryStore(db).Create(&models.Category{Name: name, Slug: slug})
	if err != nil {
		t.Fatalf("create test category: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM categories WHERE id = $1", c.ID)
	})
	return c
}
