package service

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasei-me/Architecture-Blog-API/internal/apierr"
	"github.com/vasei-me/Architecture-Blog-API/internal/models"
	"github.com/vasei-me/Architecture-Blog-API/internal/slug"
)

const longContent = "This body is comfortably past the fifty character minimum required for a post."

func newPostService() (*PostService, *fakePostStore) {
	posts := newFakePostStore()
	return NewPostService(posts, slug.Default()), posts
}

func TestPostService_Create(t *testing.T) {
	svc, _ := newPostService()
	author := uuid.New()

	p, err := svc.Create(CreatePostInput{Title: "Hello, World! 2026", Content: longContent}, author)
	require.NoError(t, err)

	assert.Equal(t, "hello-world-2026", p.Slug)
	assert.Equal(t, models.PostStatusDraft, p.Status, "status defaults to draft")
	assert.Equal(t, 1, p.ReadTime)
	assert.Equal(t, author, p.Author.ID)
	assert.Zero(t, p.Views)
}

func TestPostService_Create_Validation(t *testing.T) {
	svc, _ := newPostService()
	author := uuid.New()
	long := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = 'x'
		}
		return string(b)
	}

	tests := []struct {
		name string
		in   CreatePostInput
		msg  string
	}{
		{"missing title", CreatePostInput{Content: longContent}, "Title is required"},
		{"short title", CreatePostInput{Title: "Hey", Content: longContent}, "Title must be between 5 and 200 characters"},
		{"long title", CreatePostInput{Title: long(201), Content: longContent}, "Title must be between 5 and 200 characters"},
		{"missing content", CreatePostInput{Title: "A fine title"}, "Content is required"},
		{"short content", CreatePostInput{Title: "A fine title", Content: "too short"}, "Content must be at least 50 characters long"},
		{"bad status", CreatePostInput{Title: "A fine title", Content: longContent, Status: "vanished"}, "Status must be one of published, draft, archived"},
		{"long tag", CreatePostInput{Title: "A fine title", Content: longContent, Tags: []string{"a-tag-well-over-twenty-characters"}}, "Tags cannot exceed 20 characters"},
		{"bad category id", CreatePostInput{Title: "A fine title", Content: longContent, Categories: []string{"not-a-uuid"}}, "Invalid category ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.in, author)
			require.Error(t, err)
			ae := apierr.From(err)
			assert.Equal(t, http.StatusBadRequest, ae.Status)
			assert.Equal(t, tt.msg, ae.Message)
		})
	}
}

func TestPostService_Create_DuplicateTitle(t *testing.T) {
	svc, _ := newPostService()
	author := uuid.New()

	_, err := svc.Create(CreatePostInput{Title: "Same Title", Content: longContent}, author)
	require.NoError(t, err)

	_, err = svc.Create(CreatePostInput{Title: "Same Title", Content: longContent}, author)
	require.Error(t, err)
	ae := apierr.From(err)
	assert.Equal(t, http.StatusBadRequest, ae.Status)
	assert.Equal(t, "A post with this title already exists", ae.Message)
}

func TestPostService_UnknownCategoryReference(t *testing.T) {
	svc, posts := newPostService()
	author := uuid.New()

	// A parseable category UUID that matches no row surfaces as 404,
	// not as an internal error.
	posts.writeErr = foreignKeyViolation()
	_, err := svc.Create(CreatePostInput{
		Title:      "Post In A Ghost Category",
		Content:    longContent,
		Categories: []string{uuid.NewString()},
	}, author)
	require.Error(t, err)
	ae := apierr.From(err)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "Category not found", ae.Message)

	p, err := svc.Create(CreatePostInput{Title: "Post In A Ghost Category", Content: longContent}, author)
	require.NoError(t, err)

	posts.writeErr = foreignKeyViolation()
	categories := []string{uuid.NewString()}
	_, err = svc.Update(p.ID.String(), UpdatePostInput{Categories: &categories}, author)
	require.Error(t, err)
	ae = apierr.From(err)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "Category not found", ae.Message)
}

func TestPostService_List_PageBeyondRange(t *testing.T) {
	svc, _ := newPostService()
	author := uuid.New()

	_, err := svc.Create(CreatePostInput{Title: "Published Lone Post", Content: longContent, Status: "published"}, author)
	require.NoError(t, err)

	// Far past the last page: empty list, never an error.
	items, pg, err := svc.List("", 922337203685477580, 100)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 1, pg.Total)
}

func TestPostService_Get_CountsView(t *testing.T) {
	svc, _ := newPostService()
	author := uuid.New()

	p, err := svc.Create(CreatePostInput{Title: "Viewed Post", Content: longContent}, author)
	require.NoError(t, err)

	for want := 1; want <= 3; want++ {
		got, err := svc.Get(p.ID.String())
		require.NoError(t, err)
		assert.Equal(t, want, got.Views)
	}
}

func TestPostService_Get_Errors(t *testing.T) {
	svc, _ := newPostService()

	_, err := svc.Get("not-a-uuid")
	require.Error(t, err)
	ae := apierr.From(err)
	assert.Equal(t, http.StatusBadRequest, ae.Status)
	assert.Equal(t, "Invalid post ID", ae.Message)

	_, err = svc.Get(uuid.NewString())
	require.Error(t, err)
	ae = apierr.From(err)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "Post not found", ae.Message)
}

func TestPostService_List_DefaultsToPublished(t *testing.T) {
	svc, _ := newPostService()
	author := uuid.New()

	_, err := svc.Create(CreatePostInput{Title: "Published One", Content: longContent, Status: "published"}, author)
	require.NoError(t, err)
	_, err = svc.Create(CreatePostInput{Title: "Draft One", Content: longContent}, author)
	require.NoError(t, err)

	items, pg, err := svc.List("", 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Published One", items[0].Title)
	assert.Equal(t, Pagination{Page: 1, Limit: 10, Total: 1, Pages: 1}, pg)

	// Unknown status strings also fall back to published.
	items, _, err = svc.List("bogus", 1, 10)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	items, _, err = svc.List("draft", 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Draft One", items[0].Title)
}

func TestPostService_ListByAuthor_AllStatuses(t *testing.T) {
	svc, _ := newPostService()
	author := uuid.New()
	other := uuid.New()

	_, err := svc.Create(CreatePostInput{Title: "Mine Published", Content: longContent, Status: "published"}, author)
	require.NoError(t, err)
	_, err = svc.Create(CreatePostInput{Title: "Mine Draft", Content: longContent}, author)
	require.NoError(t, err)
	_, err = svc.Create(CreatePostInput{Title: "Someone Else's", Content: longContent}, other)
	require.NoError(t, err)

	items, pg, err := svc.ListByAuthor(author, 1, 10)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 2, pg.Total)
}

func TestPostService_Update(t *testing.T) {
	svc, _ := newPostService()
	author := uuid.New()

	p, err := svc.Create(CreatePostInput{Title: "Original Title", Content: longContent}, author)
	require.NoError(t, err)

	title := "A Different Title"
	status := "published"
	got, err := svc.Update(p.ID.String(), UpdatePostInput{Title: &title, Status: &status}, author)
	require.NoError(t, err)

	assert.Equal(t, "A Different Title", got.Title)
	assert.Equal(t, "a-different-title", got.Slug, "slug follows a title change")
	assert.Equal(t, models.PostStatusPublished, got.Status)
}

func TestPostService_Update_MaskedForNonOwner(t *testing.T) {
	svc, _ := newPostService()
	author := uuid.New()
	stranger := uuid.New()

	p, err := svc.Create(CreatePostInput{Title: "Private Post", Content: longContent}, author)
	require.NoError(t, err)

	title := "Hijacked"
	for _, id := range []string{p.ID.String(), uuid.NewString()} {
		_, err := svc.Update(id, UpdatePostInput{Title: &title}, stranger)
		require.Error(t, err)
		ae := apierr.From(err)
		assert.Equal(t, http.StatusNotFound, ae.Status)
		assert.Equal(t, "Post not found or you are not authorized to update this post", ae.Message)
	}
}

func TestPostService_Delete(t *testing.T) {
	svc, posts := newPostService()
	author := uuid.New()
	stranger := uuid.New()

	p, err := svc.Create(CreatePostInput{Title: "Doomed Post", Content: longContent}, author)
	require.NoError(t, err)

	err = svc.Delete(p.ID.String(), stranger)
	require.Error(t, err)
	ae := apierr.From(err)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "Post not found or you are not authorized to delete this post", ae.Message)

	require.NoError(t, svc.Delete(p.ID.String(), author))
	exists, _ := posts.Exists(p.ID)
	assert.False(t, exists)
}
