package services

import (
	"context"

	"estateBack/internal/models"
	"estateBack/internal/repositories"
)

type BlogService struct {
	BlogRepo repositories.BlogRepository
}

func (s *BlogService) GetBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.BlogRepo.GetBlogs(ctx)
}

func (s *BlogService) GetBlogByID(ctx context.Context, id string) (models.Blog, error) {
	return s.BlogRepo.GetBlogByID(ctx, id)
}
