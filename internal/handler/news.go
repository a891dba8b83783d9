package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/paperhub/paperhub/internal/httpx"
	"github.com/paperhub/paperhub/internal/repository"
	"github.com/paperhub/paperhub/internal/service"
)

type NewsHandler struct {
	newsService *service.NewsService
}

func NewNewsHandler(newsService *service.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.newsService.List()
	if err != nil {
		slog.Error("failed to list news", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to list news")
		return
	}

	httpx.JSON(w, http.StatusOK, items)
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.CreateNewsInput
	err := httpx.Decode(r, &req)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.newsService.Create(req)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to create news item", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to create news item")
		return
	}

	httpx.JSON(w, http.StatusCreated, item)
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.newsService.Delete(id)
	if err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			httpx.Error(w, http.StatusNotFound, "News item not found")
			return
		}
		slog.Error("failed to delete news item", "error", err, "news_id", id)
		httpx.Error(w, http.StatusInternalServerError, "Failed to delete news item")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
