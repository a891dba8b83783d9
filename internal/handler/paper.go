package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/paperhub/paperhub/internal/ctxkeys"
	"github.com/paperhub/paperhub/internal/httpx"
	"github.com/paperhub/paperhub/internal/repository"
	"github.com/paperhub/paperhub/internal/service"
	"github.com/paperhub/paperhub/internal/validation"
)

type PaperHandler struct {
	paperService *service.PaperService
	maxPaperSize int64
}

func NewPaperHandler(paperService *service.PaperService, maxPaperSize int64) *PaperHandler {
	return &PaperHandler{
		paperService: paperService,
		maxPaperSize: maxPaperSize,
	}
}

func (h *PaperHandler) List(w http.ResponseWriter, r *http.Request) {
	papers, err := h.paperService.List()
	if err != nil {
		slog.Error("failed to list papers", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to list papers")
		return
	}

	httpx.JSON(w, http.StatusOK, papers)
}

func (h *PaperHandler) Get(w http.ResponseWriter, r *http.Request) {
	paper, err := h.paperService.Get(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPaperNotFound) {
			httpx.Error(w, http.StatusNotFound, "Paper not found")
			return
		}
		slog.Error("failed to get paper", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to get paper")
		return
	}

	httpx.JSON(w, http.StatusOK, paper)
}

// Create handles a multipart paper submission: metadata fields plus one PDF
// attachment in the "file" field. Validation runs before any storage or
// database side effect.
func (h *PaperHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := r.ParseMultipartForm(h.maxPaperSize + 1<<20)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Paper file is required")
		return
	}
	defer func() { _ = file.Close() }()

	err = validation.ValidateFile(header, validation.PDFConstraints(h.maxPaperSize))
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	in := service.SubmitPaperInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Collab:      r.FormValue("collab") == "true",
	}

	paper, err := h.paperService.Submit(user, in, file, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			httpx.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUploadFailed):
			slog.Error("paper upload failed", "error", err, "user_id", user.ID)
			httpx.Error(w, http.StatusInternalServerError, "Failed to store paper file")
		default:
			slog.Error("paper submission failed", "error", err, "user_id", user.ID)
			httpx.Error(w, http.StatusInternalServerError, "Failed to create paper")
		}
		return
	}

	slog.Info("paper created", "paper_id", paper.ID, "user_id", user.ID)
	httpx.JSON(w, http.StatusCreated, paper)
}

func (h *PaperHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	id := r.PathValue("id")

	err := h.paperService.Delete(user, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPaperNotFound):
			httpx.Error(w, http.StatusNotFound, "Paper not found")
		case errors.Is(err, service.ErrForbidden):
			httpx.Error(w, http.StatusForbidden, "Only the author or an admin can delete a paper")
		default:
			slog.Error("failed to delete paper", "error", err, "paper_id", id)
			httpx.Error(w, http.StatusInternalServerError, "Failed to delete paper")
		}
		return
	}

	slog.Info("paper deleted", "paper_id", id, "user_id", user.ID)
	httpx.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type AddCommentRequest struct {
	Text string `json:"text"`
}

func (h *PaperHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	id := r.PathValue("id")

	var req AddCommentRequest
	err := httpx.Decode(r, &req)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comments, err := h.paperService.AppendComment(user, id, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPaperNotFound):
			httpx.Error(w, http.StatusNotFound, "Paper not found")
		case errors.Is(err, service.ErrTextRequired):
			httpx.Error(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("failed to add comment", "error", err, "paper_id", id)
			httpx.Error(w, http.StatusInternalServerError, "Failed to add comment")
		}
		return
	}

	httpx.JSON(w, http.StatusOK, comments)
}

func (h *PaperHandler) Like(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	likes, err := h.paperService.Like(id)
	if err != nil {
		if errors.Is(err, repository.ErrPaperNotFound) {
			httpx.Error(w, http.StatusNotFound, "Paper not found")
			return
		}
		slog.Error("failed to like paper", "error", err, "paper_id", id)
		httpx.Error(w, http.StatusInternalServerError, "Failed to like paper")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]int{"likes": likes})
}
