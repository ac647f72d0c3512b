package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"estateBack/internal/config"
	"estateBack/internal/handlers"
	"estateBack/internal/mailer"
	"estateBack/internal/ratelimit"
	"estateBack/internal/repositories"
	"estateBack/internal/services"
	"estateBack/utils"
)

const (
	contactRateLimit  = 5
	contactRateWindow = time.Minute
)

type application struct {
	errorLog        *log.Logger
	infoLog         *log.Logger
	tokens          *utils.Manager
	limiter         *ratelimit.Limiter
	wsManager       *NotificationHub
	propertyHandler *handlers.PropertyHandler
	blogHandler     *handlers.BlogHandler
	userHandler     *handlers.UserHandler
	contactHandler  *handlers.ContactHandler
	loanHandler     *handlers.LoanHandler
	imageHandler    *handlers.ImageHandler
}

func initializeApp(cfg config.Config, db *sql.DB, rdb *redis.Client, errorLog, infoLog *log.Logger) (*application, error) {
	tokens, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		return nil, err
	}

	// Repositories
	var propertyRepo repositories.PropertyRepository
	var blogRepo repositories.BlogRepository
	if cfg.Database.Driver == "mysql" {
		propertyRepo = &repositories.PropertyMySQLRepository{DB: db}
		blogRepo = &repositories.BlogMySQLRepository{DB: db}
	} else {
		propertyRepo = repositories.NewPropertyMemoryRepository(repositories.SeedProperties())
		blogRepo = repositories.NewBlogMemoryRepository(repositories.SeedBlogs())
	}
	userRepo := repositories.NewUserMemoryRepository()

	var contactMailer services.Mailer
	if cfg.SMTP.Host != "" && cfg.SMTP.Password != "" {
		contactMailer = &mailer.SMTPMailer{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			To:       cfg.SMTP.To,
		}
	}

	var storage *utils.S3Storage
	if cfg.Storage.Bucket != "" {
		storage = utils.NewS3Storage(cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.Endpoint,
			cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.PublicBaseURL)
	}

	wsManager := NewNotificationHub()

	// Services
	propertyService := &services.PropertyService{PropertyRepo: propertyRepo, Notifier: wsManager}
	blogService := &services.BlogService{BlogRepo: blogRepo}
	userService := &services.UserService{
		UserRepo:   userRepo,
		Tokens:     tokens,
		AdminEmail: cfg.Auth.AdminEmail,
		TokenTTL:   time.Duration(cfg.Auth.TokenTTLHours) * time.Hour,
	}
	contactService := &services.ContactService{Mailer: contactMailer}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		tokens:          tokens,
		limiter:         ratelimit.New(rdb, contactRateLimit, contactRateWindow),
		wsManager:       wsManager,
		propertyHandler: &handlers.PropertyHandler{Service: propertyService},
		blogHandler:     &handlers.BlogHandler{Service: blogService},
		userHandler:     &handlers.UserHandler{Service: userService},
		contactHandler:  &handlers.ContactHandler{Service: contactService},
		loanHandler:     &handlers.LoanHandler{},
		imageHandler:    &handlers.ImageHandler{Storage: storage},
	}, nil
}
