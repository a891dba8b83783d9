package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/paperhub/paperhub/internal/httpx"
	"github.com/paperhub/paperhub/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Institution string `json:"institution"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	err := httpx.Decode(r, &req)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Register(req.Name, req.Email, req.Password, req.Institution)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailAlreadyExists):
			httpx.Error(w, http.StatusBadRequest, "Email already exists")
		case errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrWeakPassword):
			httpx.Error(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("registration failed", "error", err)
			httpx.Error(w, http.StatusInternalServerError, "Failed to register")
		}
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		httpx.Error(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	slog.Info("user registered", "user_id", user.ID)
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	err := httpx.Decode(r, &req)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.Error(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		slog.Error("login failed", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		httpx.Error(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"user":  user,
		"token": token,
	})
}
