package service

// In-memory store fakes. Unique violations are simulated with the same
// pgconn error the real stores surface, so the services' conflict mapping
// is exercised for real.

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vasei-me/Architecture-Blog-API/internal/models"
)

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

func foreignKeyViolation() error {
	return &pgconn.PgError{Code: "23503"}
}

type fakeUserStore struct {
	users     map[uuid.UUID]*models.User
	passwords map[uuid.UUID]string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:     map[uuid.UUID]*models.User{},
		passwords: map[uuid.UUID]string{},
	}
}

func (f *fakeUserStore) Create(username, email, password string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			return nil, uniqueViolation()
		}
	}
	u := &models.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.users[u.ID] = u
	f.passwords[u.ID] = password
	return u, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) ExistsByEmailOrUsername(email, username string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) CheckPassword(user *models.User, password string) bool {
	return f.passwords[user.ID] == password
}

type fakePostStore struct {
	posts map[uuid.UUID]*models.Post
	// writeErr, when set, is returned by the next Create or Update call,
	// standing in for a constraint the fake does not model.
	writeErr error
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[uuid.UUID]*models.Post{}}
}

func (f *fakePostStore) Create(p *models.Post) (*models.Post, error) {
	if f.writeErr != nil {
		err := f.writeErr
		f.writeErr = nil
		return nil, err
	}
	for _, other := range f.posts {
		if other.Slug == p.Slug {
			return nil, uniqueViolation()
		}
	}
	cp := *p
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.posts[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakePostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePostStore) IncrementViews(id uuid.UUID) error {
	if p, ok := f.posts[id]; ok {
		p.Views++
	}
	return nil
}

func (f *fakePostStore) List(status models.PostStatus, page, limit int) ([]models.Post, int, error) {
	var all []models.Post
	for _, p := range f.posts {
		if p.Status == status {
			all = append(all, *p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return pageOf(all, page, limit), len(all), nil
}

func (f *fakePostStore) ListByAuthor(authorID uuid.UUID, page, limit int) ([]models.Post, int, error) {
	var all []models.Post
	for _, p := range f.posts {
		if p.Author.ID == authorID {
			all = append(all, *p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return pageOf(all, page, limit), len(all), nil
}

func (f *fakePostStore) Update(p *models.Post) error {
	if f.writeErr != nil {
		err := f.writeErr
		f.writeErr = nil
		return err
	}
	for _, other := range f.posts {
		if other.ID != p.ID && other.Slug == p.Slug {
			return uniqueViolation()
		}
	}
	cp := *p
	cp.UpdatedAt = time.Now()
	f.posts[p.ID] = &cp
	return nil
}

func (f *fakePostStore) Delete(id uuid.UUID) error {
	delete(f.posts, id)
	return nil
}

func (f *fakePostStore) Exists(id uuid.UUID) (bool, error) {
	_, ok := f.posts[id]
	return ok, nil
}

type fakeCategoryStore struct {
	categories map[uuid.UUID]*models.Category
	members    map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{
		categories: map[uuid.UUID]*models.Category{},
		members:    map[uuid.UUID]map[uuid.UUID]bool{},
	}
}

func (f *fakeCategoryStore) Create(c *models.Category) (*models.Category, error) {
	for _, other := range f.categories {
		if other.Name == c.Name || other.Slug == c.Slug {
			return nil, uniqueViolation()
		}
	}
	cp := *c
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.categories[cp.ID] = &cp
	f.members[cp.ID] = map[uuid.UUID]bool{}
	out := cp
	return &out, nil
}

func (f *fakeCategoryStore) List(page, limit int) ([]models.Category, int, error) {
	var all []models.Category
	for id, c := range f.categories {
		cp := *c
		cp.PostCount = len(f.members[id])
		all = append(all, cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return pageOf(all, page, limit), len(all), nil
}

func (f *fakeCategoryStore) Popular(limit int) ([]models.Category, error) {
	all, _, _ := f.List(1, maxLimit)
	sort.SliceStable(all, func(i, j int) bool { return all[i].PostCount > all[j].PostCount })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeCategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.PostCount = len(f.members[id])
	for pid := range f.members[id] {
		cp.Posts = append(cp.Posts, models.PostRef{ID: pid})
	}
	return &cp, nil
}

func (f *fakeCategoryStore) FindBySlug(slug string) (*models.Category, error) {
	for id, c := range f.categories {
		if c.Slug == slug {
			return f.FindByID(id)
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) FindByName(name string) (*models.Category, error) {
	for id, c := range f.categories {
		if c.Name == name {
			return f.FindByID(id)
		}
	}
	return nil, nil
}

func (f *fakeCategoryStore) Update(c *models.Category) error {
	for _, other := range f.categories {
		if other.ID != c.ID && (other.Name == c.Name || other.Slug == c.Slug) {
			return uniqueViolation()
		}
	}
	cp := *c
	cp.UpdatedAt = time.Now()
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryStore) Delete(id uuid.UUID) error {
	delete(f.categories, id)
	delete(f.members, id)
	return nil
}

func (f *fakeCategoryStore) PostCount(id uuid.UUID) (int, error) {
	return len(f.members[id]), nil
}

func (f *fakeCategoryStore) AddPost(categoryID, postID uuid.UUID) error {
	f.members[categoryID][postID] = true
	return nil
}

func (f *fakeCategoryStore) RemovePost(categoryID, postID uuid.UUID) error {
	delete(f.members[categoryID], postID)
	return nil
}

type fakeCommentStore struct {
	comments map[uuid.UUID]*models.Comment
	likes    map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{
		comments: map[uuid.UUID]*models.Comment{},
		likes:    map[uuid.UUID]map[uuid.UUID]bool{},
	}
}

func (f *fakeCommentStore) Create(c *models.Comment) (*models.Comment, error) {
	cp := *c
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.comments[cp.ID] = &cp
	f.likes[cp.ID] = map[uuid.UUID]bool{}
	out := cp
	return &out, nil
}

func (f *fakeCommentStore) FindByID(id uuid.UUID) (*models.Comment, error) {
	c, ok := f.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	for uid := range f.likes[id] {
		cp.Likes = append(cp.Likes, uid)
	}
	cp.LikeCount = len(cp.Likes)
	return &cp, nil
}

func (f *fakeCommentStore) ListByPost(postID uuid.UUID, page, limit int) ([]models.Comment, int, error) {
	var top []models.Comment
	for _, c := range f.comments {
		if c.PostID == postID && c.ParentID == nil && c.Status == models.CommentStatusApproved {
			cp := *c
			for _, r := range f.comments {
				if r.ParentID != nil && *r.ParentID == c.ID && r.Status == models.CommentStatusApproved {
					cp.Replies = append(cp.Replies, *r)
				}
			}
			top = append(top, cp)
		}
	}
	sort.Slice(top, func(i, j int) bool { return top[i].CreatedAt.After(top[j].CreatedAt) })
	return pageOf(top, page, limit), len(top), nil
}

func (f *fakeCommentStore) ListByAuthor(authorID uuid.UUID, page, limit int) ([]models.Comment, int, error) {
	var all []models.Comment
	for _, c := range f.comments {
		if c.Author.ID == authorID {
			all = append(all, *c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return pageOf(all, page, limit), len(all), nil
}

func (f *fakeCommentStore) Update(c *models.Comment) error {
	cp := *c
	cp.UpdatedAt = time.Now()
	f.comments[c.ID] = &cp
	return nil
}

func (f *fakeCommentStore) Delete(id uuid.UUID) error {
	for rid, r := range f.comments {
		if r.ParentID != nil && *r.ParentID == id {
			delete(f.comments, rid)
			delete(f.likes, rid)
		}
	}
	delete(f.comments, id)
	delete(f.likes, id)
	return nil
}

func (f *fakeCommentStore) ToggleLike(commentID, userID uuid.UUID) (bool, error) {
	if f.likes[commentID][userID] {
		delete(f.likes[commentID], userID)
		return false, nil
	}
	f.likes[commentID][userID] = true
	return true, nil
}

func pageOf[T any](all []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(all) {
		return nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
