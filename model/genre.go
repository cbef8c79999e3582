package model

// GenreEntity represents a genres row
type GenreEntity struct {
	GenreID   int64  `db:"genre_id" json:"genre_id"`
	GenreName string `db:"genre_name" json:"genre_name"`
}
