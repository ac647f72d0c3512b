package repositories

import (
	"context"
	"database/sql"
	"errors"

	"estateBack/internal/models"
)

type BlogMySQLRepository struct {
	DB *sql.DB
}

func (r *BlogMySQLRepository) GetBlogs(ctx context.Context) ([]models.Blog, error) {
	query := `SELECT id, title, excerpt, content, category, author, date, featured_image
	          FROM blogs ORDER BY seq`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []models.Blog
	for rows.Next() {
		var blog models.Blog
		if err := rows.Scan(&blog.ID, &blog.Title, &blog.Excerpt, &blog.Content,
			&blog.Category, &blog.Author, &blog.Date, &blog.FeaturedImage); err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

func (r *BlogMySQLRepository) GetBlogByID(ctx context.Context, id string) (models.Blog, error) {
	var blog models.Blog
	query := `SELECT id, title, excerpt, content, category, author, date, featured_image
	          FROM blogs WHERE id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&blog.ID, &blog.Title, &blog.Excerpt,
		&blog.Content, &blog.Category, &blog.Author, &blog.Date, &blog.FeaturedImage)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Blog{}, models.ErrBlogNotFound
	}
	return blog, err
}
