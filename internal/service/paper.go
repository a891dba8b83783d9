package service

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paperhub/paperhub/internal/model"
	"github.com/paperhub/paperhub/internal/repository"
	"github.com/paperhub/paperhub/internal/storage"
)

var (
	ErrForbidden     = errors.New("not allowed")
	ErrTitleRequired = errors.New("title is required")
	ErrTextRequired  = errors.New("text is required")

	// ErrUploadFailed marks a storage-side failure, surfaced as a server error
	ErrUploadFailed = errors.New("upload failed")
)

type PaperService struct {
	paperRepo repository.PaperRepository
	storage   storage.Storage
}

func NewPaperService(paperRepo repository.PaperRepository, storage storage.Storage) *PaperService {
	return &PaperService{
		paperRepo: paperRepo,
		storage:   storage,
	}
}

// SubmitPaperInput carries the metadata fields of a multipart submission
type SubmitPaperInput struct {
	Title       string
	Description string
	Category    string
	Collab      bool
}

// Submit pushes the attachment to object storage, then persists the record
// referencing the returned URL and key.
//
// The two steps are not transactional. If the record insert fails after a
// successful upload, one best-effort cleanup of the uploaded object is
// attempted; if that also fails the object orphans, which is accepted.
// Note: File validation (type, size, content) should be done by the caller before calling Submit
func (s *PaperService) Submit(user *model.User, in SubmitPaperInput, file multipart.File, header *multipart.FileHeader) (*model.Paper, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	ext := filepath.Ext(header.Filename)
	key := fmt.Sprintf("papers/%s%s", uuid.New().String(), ext)

	err := s.storage.Save(key, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUploadFailed, err.Error())
	}

	paper := &model.Paper{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		AuthorName:   user.Name,
		AuthorAvatar: user.AvatarURL,
		FileURL:      s.storage.URL(key),
		StorageKey:   key,
		Collab:       in.Collab,
		CreatedAt:    time.Now(),
		Comments:     []model.Comment{},
	}

	err = s.paperRepo.Create(paper)
	if err != nil {
		delErr := s.storage.Delete(key)
		if delErr != nil {
			slog.Error("failed to delete object from storage during cleanup", "error", delErr, "key", key)
		}
		return nil, fmt.Errorf("failed to create paper record: %w", err)
	}

	return paper, nil
}

func (s *PaperService) List() ([]*model.Paper, error) {
	return s.paperRepo.List()
}

func (s *PaperService) Get(id string) (*model.Paper, error) {
	return s.paperRepo.ByID(id)
}

// Delete removes a paper and its stored object. Only the author or an admin
// may delete; authorization failure terminates before any side effect. The
// remote delete is best-effort: a missing object is logged, not fatal.
func (s *PaperService) Delete(user *model.User, id string) error {
	paper, err := s.paperRepo.ByID(id)
	if err != nil {
		return err
	}

	if paper.UserID != user.ID && !user.IsAdmin {
		return ErrForbidden
	}

	if paper.StorageKey != "" {
		delErr := s.storage.Delete(paper.StorageKey)
		if delErr != nil {
			slog.Error("failed to delete object from storage", "error", delErr, "key", paper.StorageKey)
		}
	}

	return s.paperRepo.Delete(id)
}

// AppendComment adds a comment and returns the paper's full comment sequence,
// oldest first.
func (s *PaperService) AppendComment(user *model.User, paperID, text string) ([]model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextRequired
	}

	// Existence check so a comment on an unknown paper is NotFound, not a
	// dangling row
	_, err := s.paperRepo.ByID(paperID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:           uuid.New().String(),
		PaperID:      paperID,
		AuthorName:   user.Name,
		AuthorAvatar: user.AvatarURL,
		Text:         text,
		CreatedAt:    time.Now(),
	}

	err = s.paperRepo.AddComment(comment)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	return s.paperRepo.Comments(paperID)
}

func (s *PaperService) Like(id string) (int, error) {
	return s.paperRepo.IncrementLikes(id)
}
