package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paperhub/paperhub/internal/model"
	"github.com/paperhub/paperhub/internal/repository"
)

type NewsService struct {
	newsRepo repository.NewsRepository
}

func NewNewsService(newsRepo repository.NewsRepository) *NewsService {
	return &NewsService{newsRepo: newsRepo}
}

type CreateNewsInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	ImageURL    string `json:"imageUrl"`
}

func (s *NewsService) Create(in CreateNewsInput) (*model.News, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	item := &model.News{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Tags:        in.Tags,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now(),
	}

	err := s.newsRepo.Create(item)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (s *NewsService) List() ([]*model.News, error) {
	return s.newsRepo.List()
}

func (s *NewsService) Delete(id string) error {
	return s.newsRepo.Delete(id)
}
