package comment

import (
	"context"
	"database/sql"

	"github.com/emirhly/marketplace/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type CommentRepository interface {
	ListByListing(ctx context.Context, listingID uint64) ([]model.CommentWithAuthor, error)
	Insert(ctx context.Context, data *model.CommentEntity) error
	GetOwnerID(ctx context.Context, commentID uint64) (string, error)
	UpdateContent(ctx context.Context, commentID uint64, content string) error
	Delete(ctx context.Context, commentID uint64) error
	DeleteByListingTx(ctx context.Context, tx *sqlx.Tx, listingID uint64) error
}

func NewCommentRepository(conn *sqlx.DB) CommentRepository {
	return &SQL{conn: conn}
}

const (
	listByListingQuery = `SELECT c.comment_id, c.comment_content, c.comment_date, c.comment_ownerid, c.comment_listingid, u.user_name
FROM comments_table c
JOIN users_table u ON u.user_id = c.comment_ownerid
WHERE c.comment_listingid = ?`

	insertCommentQuery = `INSERT INTO comments_table (comment_content, comment_date, comment_ownerid, comment_listingid) VALUES (?, ?, ?, ?)`

	getOwnerIDQuery = `SELECT comment_ownerid FROM comments_table WHERE comment_id = ?`

	updateContentQuery = `UPDATE comments_table SET comment_content = ? WHERE comment_id = ?`

	deleteCommentQuery = `DELETE FROM comments_table WHERE comment_id = ?`

	deleteByListingQuery = `DELETE FROM comments_table WHERE comment_listingid = ?`
)

func (s *SQL) ListByListing(ctx context.Context, listingID uint64) ([]model.CommentWithAuthor, error) {
	rows, err := s.conn.QueryxContext(ctx, listByListingQuery, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CommentWithAuthor, 0)
	for rows.Next() {
		var it model.CommentWithAuthor
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) Insert(ctx context.Context, data *model.CommentEntity) error {
	_, err := s.conn.ExecContext(ctx, insertCommentQuery,
		data.CommentContent, data.CommentDate, data.CommentOwnerID, data.CommentListingID)
	return err
}

func (s *SQL) GetOwnerID(ctx context.Context, commentID uint64) (string, error) {
	var ownerID string
	if err := s.conn.GetContext(ctx, &ownerID, getOwnerIDQuery, commentID); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return ownerID, nil
}

func (s *SQL) UpdateContent(ctx context.Context, commentID uint64, content string) error {
	_, err := s.conn.ExecContext(ctx, updateContentQuery, content, commentID)
	return err
}

func (s *SQL) Delete(ctx context.Context, commentID uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteCommentQuery, commentID)
	return err
}

func (s *SQL) DeleteByListingTx(ctx context.Context, tx *sqlx.Tx, listingID uint64) error {
	_, err := tx.ExecContext(ctx, deleteByListingQuery, listingID)
	return err
}
