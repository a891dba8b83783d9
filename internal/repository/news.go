package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/paperhub/paperhub/internal/model"
)

var (
	ErrNewsNotFound = errors.New("news item not found")
)

type NewsRepository interface {
	Create(item *model.News) error
	List() ([]*model.News, error)
	Delete(id string) error
}

type newsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) Create(item *model.News) error {
	query := `INSERT INTO news (id, title, description, tags, image_url, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query, item.ID, item.Title, item.Description, item.Tags, item.ImageURL, item.CreatedAt)
	return err
}

func (r *newsRepository) List() ([]*model.News, error) {
	items := []*model.News{}
	query := `SELECT * FROM news ORDER BY created_at DESC, id DESC`

	err := r.db.Select(&items, query)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *newsRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNewsNotFound
	}

	return nil
}
