package handler

import (
	"log/slog"
	"net/http"

	"github.com/paperhub/paperhub/internal/ctxkeys"
	"github.com/paperhub/paperhub/internal/httpx"
	"github.com/paperhub/paperhub/internal/service"
	"github.com/paperhub/paperhub/internal/validation"
)

type UserHandler struct {
	userService   *service.UserService
	maxAvatarSize int64
}

func NewUserHandler(userService *service.UserService, maxAvatarSize int64) *UserHandler {
	return &UserHandler{
		userService:   userService,
		maxAvatarSize: maxAvatarSize,
	}
}

func (h *UserHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := r.ParseMultipartForm(h.maxAvatarSize + 1<<20)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Avatar file is required")
		return
	}
	defer func() { _ = file.Close() }()

	err = validation.ValidateFile(header, validation.ImageConstraints(h.maxAvatarSize))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	url, err := h.userService.UpdateAvatar(user, file, header)
	if err != nil {
		slog.Error("avatar upload failed", "error", err, "user_id", user.ID)
		httpx.Error(w, http.StatusInternalServerError, "Failed to upload avatar")
		return
	}

	slog.Info("avatar updated", "user_id", user.ID)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"ok":     true,
		"avatar": url,
	})
}
