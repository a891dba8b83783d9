package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/paperhub/paperhub/internal/model"
)

var (
	ErrPaperNotFound = errors.New("paper not found")
)

type PaperRepository interface {
	Create(paper *model.Paper) error
	List() ([]*model.Paper, error)
	ByID(id string) (*model.Paper, error)
	Delete(id string) error
	AddComment(comment *model.Comment) error
	Comments(paperID string) ([]model.Comment, error)
	IncrementLikes(id string) (int, error)
}

type paperRepository struct {
	db *sqlx.DB
}

func NewPaperRepository(db *sqlx.DB) PaperRepository {
	return &paperRepository{db: db}
}

func (r *paperRepository) Create(paper *model.Paper) error {
	query := `INSERT INTO papers (id, user_id, title, description, category, author_name, author_avatar, file_url, storage_key, collab, likes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(query,
		paper.ID,
		paper.UserID,
		paper.Title,
		paper.Description,
		paper.Category,
		paper.AuthorName,
		paper.AuthorAvatar,
		paper.FileURL,
		paper.StorageKey,
		paper.Collab,
		paper.Likes,
		paper.CreatedAt,
	)

	return err
}

// List returns all papers newest first. Equal timestamps tie-break on id so the
// ordering is stable across drivers.
func (r *paperRepository) List() ([]*model.Paper, error) {
	var papers []*model.Paper
	query := `SELECT * FROM papers ORDER BY created_at DESC, id DESC`

	err := r.db.Select(&papers, query)
	if err != nil {
		return nil, err
	}

	if len(papers) == 0 {
		return papers, nil
	}

	ids := make([]string, 0, len(papers))
	byID := make(map[string]*model.Paper, len(papers))
	for _, paper := range papers {
		paper.Comments = []model.Comment{}
		ids = append(ids, paper.ID)
		byID[paper.ID] = paper
	}

	query, args, err := sqlx.In(`SELECT * FROM comments WHERE paper_id IN (?) ORDER BY created_at ASC, id ASC`, ids)
	if err != nil {
		return nil, err
	}

	var comments []model.Comment
	err = r.db.Select(&comments, r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}

	for _, comment := range comments {
		paper := byID[comment.PaperID]
		if paper != nil {
			paper.Comments = append(paper.Comments, comment)
		}
	}

	return papers, nil
}

func (r *paperRepository) ByID(id string) (*model.Paper, error) {
	paper := &model.Paper{}
	query := `SELECT * FROM papers WHERE id = $1`

	err := r.db.Get(paper, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrPaperNotFound
	}
	if err != nil {
		return nil, err
	}

	paper.Comments, err = r.Comments(id)
	if err != nil {
		return nil, err
	}

	return paper, nil
}

func (r *paperRepository) Delete(id string) error {
	query := `DELETE FROM papers WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPaperNotFound
	}

	return nil
}

func (r *paperRepository) AddComment(comment *model.Comment) error {
	query := `INSERT INTO comments (id, paper_id, author_name, author_avatar, text, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		comment.ID,
		comment.PaperID,
		comment.AuthorName,
		comment.AuthorAvatar,
		comment.Text,
		comment.CreatedAt,
	)

	return err
}

func (r *paperRepository) Comments(paperID string) ([]model.Comment, error) {
	comments := []model.Comment{}
	query := `SELECT * FROM comments WHERE paper_id = $1 ORDER BY created_at ASC, id ASC`

	err := r.db.Select(&comments, query, paperID)
	if err != nil {
		return nil, err
	}

	return comments, nil
}

// IncrementLikes bumps the like counter in a single statement, which is atomic
// per row, and returns the new count.
func (r *paperRepository) IncrementLikes(id string) (int, error) {
	result, err := r.db.Exec(`UPDATE papers SET likes = likes + 1 WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, ErrPaperNotFound
	}

	var likes int
	err = r.db.Get(&likes, `SELECT likes FROM papers WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}

	return likes, nil
}
