package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/paperhub/paperhub/internal/config"
	"github.com/paperhub/paperhub/internal/db"
	"github.com/paperhub/paperhub/internal/repository"
	"github.com/paperhub/paperhub/internal/service"
	"github.com/paperhub/paperhub/internal/storage"
)

type App struct {
	Cfg          *config.Config
	DB           *sqlx.DB
	AuthService  *service.AuthService
	UserService  *service.UserService
	PaperService *service.PaperService
	NewsService  *service.NewsService
	EventService *service.EventService
	EmailService *service.EmailService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	paperRepository := repository.NewPaperRepository(database)
	newsRepository := repository.NewNewsRepository(database)
	eventRepository := repository.NewEventRepository(database)

	// Storage
	mediaStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		emailService,
		cfg.JWTSecret,
		cfg.JWTExpiry,
	)
	userService := service.NewUserService(userRepository, mediaStorage)
	paperService := service.NewPaperService(paperRepository, mediaStorage)
	newsService := service.NewNewsService(newsRepository)
	eventService := service.NewEventService(eventRepository)

	return &App{
		Cfg:          cfg,
		DB:           database,
		AuthService:  authService,
		UserService:  userService,
		PaperService: paperService,
		NewsService:  newsService,
		EventService: eventService,
		EmailService: emailService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
