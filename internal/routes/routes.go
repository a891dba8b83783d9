package routes

import (
	"net/http"

	"github.com/paperhub/paperhub/internal/app"
	"github.com/paperhub/paperhub/internal/handler"
	"github.com/paperhub/paperhub/internal/httpx"
	"github.com/paperhub/paperhub/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler()
	auth := handler.NewAuthHandler(app.AuthService)
	paper := handler.NewPaperHandler(app.PaperService, app.Cfg.MaxPaperSize)
	user := handler.NewUserHandler(app.UserService, app.Cfg.MaxAvatarSize)
	news := handler.NewNewsHandler(app.NewsService)
	event := handler.NewEventHandler(app.EventService)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /api/health", health.Health)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /api/auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /api/auth/login", rateLimiter(auth.Login))

	// Papers
	mux.HandleFunc("GET /api/papers", paper.List)
	mux.HandleFunc("GET /api/papers/{id}", paper.Get)
	mux.HandleFunc("POST /api/papers", middleware.RequireAuth(paper.Create))
	mux.HandleFunc("DELETE /api/papers/{id}", middleware.RequireAuth(paper.Delete))
	mux.HandleFunc("POST /api/papers/{id}/comments", middleware.RequireAuth(paper.AddComment))
	mux.HandleFunc("POST /api/papers/{id}/like", middleware.RequireAuth(paper.Like))

	// Users
	mux.HandleFunc("POST /api/users/avatar", middleware.RequireAuth(user.UploadAvatar))

	// News (mutations are admin-gated)
	mux.HandleFunc("GET /api/news", news.List)
	mux.HandleFunc("POST /api/news", middleware.RequireAdmin(news.Create))
	mux.HandleFunc("DELETE /api/news/{id}", middleware.RequireAdmin(news.Delete))

	// Events (mutations are admin-gated)
	mux.HandleFunc("GET /api/events", event.List)
	mux.HandleFunc("POST /api/events", middleware.RequireAdmin(event.Create))
	mux.HandleFunc("DELETE /api/events/{id}", middleware.RequireAdmin(event.Delete))

	// 404
	mux.HandleFunc("/{path...}", func(w http.ResponseWriter, r *http.Request) {
		httpx.Error(w, http.StatusNotFound, "Not found")
	})

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Recover,
		middleware.RequestLogging,
		middleware.CORS(app.Cfg.AllowedOrigin),
		middleware.AuthMiddleware(app.AuthService, app.UserService),
	)

	return handler
}
