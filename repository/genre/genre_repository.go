package genre

import (
	"context"

	"github.com/emirhly/marketplace/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type GenreRepository interface {
	List(ctx context.Context) ([]model.GenreEntity, error)
}

func NewGenreRepository(conn *sqlx.DB) GenreRepository {
	return &SQL{conn: conn}
}

const listGenresQuery = `SELECT genre_id, genre_name FROM genres`

func (s *SQL) List(ctx context.Context) ([]model.GenreEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listGenresQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := make([]model.GenreEntity, 0)
	for rows.Next() {
		var g model.GenreEntity
		if err := rows.StructScan(&g); err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}
