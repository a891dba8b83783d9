package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/paperhub/paperhub/internal/model"
)

var (
	ErrEventNotFound = errors.New("event not found")
)

type EventRepository interface {
	Create(event *model.Event) error
	List() ([]*model.Event, error)
	Delete(id string) error
}

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *model.Event) error {
	query := `INSERT INTO events (id, title, description, event_type, image_url, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query, event.ID, event.Title, event.Description, event.EventType, event.ImageURL, event.CreatedAt)
	return err
}

func (r *eventRepository) List() ([]*model.Event, error) {
	events := []*model.Event{}
	query := `SELECT * FROM events ORDER BY created_at DESC, id DESC`

	err := r.db.Select(&events, query)
	if err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEventNotFound
	}

	return nil
}
