package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"estateBack/internal/models"
)

// BlogMemoryRepository holds posts fixed at process start. There is no
// write path.
type BlogMemoryRepository struct {
	mu    sync.RWMutex
	order []string
	blogs map[string]models.Blog
}

func NewBlogMemoryRepository(seed []models.Blog) *BlogMemoryRepository {
	r := &BlogMemoryRepository{
		blogs: make(map[string]models.Blog),
	}
	for _, b := range seed {
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		r.blogs[b.ID] = b
		r.order = append(r.order, b.ID)
	}
	return r
}

func (r *BlogMemoryRepository) GetBlogs(ctx context.Context) ([]models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blogs := make([]models.Blog, 0, len(r.order))
	for _, id := range r.order {
		blogs = append(blogs, r.blogs[id])
	}
	return blogs, nil
}

func (r *BlogMemoryRepository) GetBlogByID(ctx context.Context, id string) (models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blog, ok := r.blogs[id]
	if !ok {
		return models.Blog{}, models.ErrBlogNotFound
	}
	return blog, nil
}
