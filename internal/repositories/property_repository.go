package repositories

import (
	"context"

	"estateBack/internal/models"
)

// PropertyRepository is the injected store contract. The in-memory
// implementation is the default and doubles as the test fixture; the MySQL
// one is selected via config.
type PropertyRepository interface {
	GetProperties(ctx context.Context) ([]models.Property, error)
	GetPropertyByID(ctx context.Context, id string) (models.Property, error)
	CreateProperty(ctx context.Context, property models.Property) (models.Property, error)
	UpdateProperty(ctx context.Context, property models.Property) (models.Property, error)
	DeleteProperty(ctx context.Context, id string) error
}

type BlogRepository interface {
	GetBlogs(ctx context.Context) ([]models.Blog, error)
	GetBlogByID(ctx context.Context, id string) (models.Blog, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}
