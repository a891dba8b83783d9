package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paperhub/paperhub/internal/model"
	"github.com/paperhub/paperhub/internal/repository"
)

type EventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

type CreateEventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventType   string `json:"eventType"`
	ImageURL    string `json:"imageUrl"`
}

func (s *EventService) Create(in CreateEventInput) (*model.Event, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	event := &model.Event{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		EventType:   in.EventType,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now(),
	}

	err := s.eventRepo.Create(event)
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (s *EventService) List() ([]*model.Event, error) {
	return s.eventRepo.List()
}

func (s *EventService) Delete(id string) error {
	return s.eventRepo.Delete(id)
}
