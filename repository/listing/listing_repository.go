package listing

import (
	"context"
	"database/sql"

	"github.com/emirhly/marketplace/constant"
	"github.com/emirhly/marketplace/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type ListingRepository interface {
	List(ctx context.Context) ([]model.ListingWithOwner, error)
	GetWithOwner(ctx context.Context, listingID uint64) (*model.ListingWithOwner, error)
	GetOwnerID(ctx context.Context, listingID uint64) (string, error)
	Genres(ctx context.Context, listingID uint64) ([]string, error)
	Search(ctx context.Context, keyword string) ([]model.ListingWithOwner, error)
	Filter(ctx context.Context, filter *model.ListingFilter) ([]model.ListingWithOwner, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.ListingEntity) (uint64, error)
	InsertGenresTx(ctx context.Context, tx *sqlx.Tx, listingID uint64, genreIDs []int64) error
	DeleteGenresTx(ctx context.Context, tx *sqlx.Tx, listingID uint64) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, listingID uint64, req *model.ListingUpdateRequest) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, listingID uint64) error
	UpdateImagePath(ctx context.Context, listingID uint64, path string) error
	ListView(ctx context.Context) ([]model.UserListingGenreRow, error)
}

func NewListingRepository(conn *sqlx.DB) ListingRepository {
	return &SQL{conn: conn}
}

const (
	listingWithOwnerBase = `SELECT l.listing_id, l.listing_name, l.listing_price, l.listing_ownerid, l.listing_condition, l.listing_date, l.listing_desc, l.listing_imagepath,
u.user_name, u.user_city, u.user_restofaddress, u.user_phonenumber
FROM listings_table l
JOIN users_table u ON l.listing_ownerid = u.user_id`

	getOwnerIDQuery = `SELECT listing_ownerid FROM listings_table WHERE listing_id = ?`

	getGenreNamesQuery = `SELECT g.genre_name FROM genres g
JOIN listing_genres lg ON g.genre_id = lg.genre_id
WHERE lg.listing_id = ?`

	insertListingQuery = `INSERT INTO listings_table (listing_name, listing_price, listing_ownerid, listing_condition, listing_date, listing_desc, listing_imagepath) VALUES (?, ?, ?, ?, ?, ?, ?)`

	insertListingGenreQuery = `INSERT INTO listing_genres (listing_id, genre_id) VALUES (?, ?)`

	deleteListingGenresQuery = `DELETE FROM listing_genres WHERE listing_id = ?`

	updateListingQuery = `UPDATE listings_table SET listing_name = ?, listing_price = ?, listing_condition = ?, listing_desc = ? WHERE listing_id = ?`

	deleteListingQuery = `DELETE FROM listings_table WHERE listing_id = ?`

	updateImagePathQuery = `UPDATE listings_table SET listing_imagepath = ? WHERE listing_id = ?`

	listViewQuery = `SELECT user_id, user_name, user_city, listing_id, listing_name, listing_price, genre_name FROM user_listing_genre_view`
)

func (s *SQL) List(ctx context.Context) ([]model.ListingWithOwner, error) {
	return s.selectListings(ctx, listingWithOwnerBase)
}

func (s *SQL) GetWithOwner(ctx context.Context, listingID uint64) (*model.ListingWithOwner, error) {
	var entity model.ListingWithOwner
	query := listingWithOwnerBase + " WHERE l.listing_id = ?"
	if err := s.conn.QueryRowxContext(ctx, query, listingID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetOwnerID(ctx context.Context, listingID uint64) (string, error) {
	var ownerID string
	if err := s.conn.GetContext(ctx, &ownerID, getOwnerIDQuery, listingID); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return ownerID, nil
}

func (s *SQL) Genres(ctx context.Context, listingID uint64) ([]string, error) {
	names := make([]string, 0)
	if err := s.conn.SelectContext(ctx, &names, getGenreNamesQuery, listingID); err != nil {
		return nil, err
	}
	return names, nil
}

func (s *SQL) Search(ctx context.Context, keyword string) ([]model.ListingWithOwner, error) {
	query := listingWithOwnerBase + " WHERE l.listing_name LIKE ?"
	return s.selectListings(ctx, query, "%"+keyword+"%")
}

func (s *SQL) Filter(ctx context.Context, filter *model.ListingFilter) ([]model.ListingWithOwner, error) {
	query, args := buildFilterQuery(filter)
	return s.selectListings(ctx, query, args...)
}

// buildFilterQuery assembles the composable WHERE clause. Every predicate is
// parameterized; unset parameters impose no constraint.
func buildFilterQuery(filter *model.ListingFilter) (string, []any) {
	query := `SELECT DISTINCT l.listing_id, l.listing_name, l.listing_price, l.listing_ownerid, l.listing_condition, l.listing_date, l.listing_desc, l.listing_imagepath,
u.user_name, u.user_city, u.user_restofaddress, u.user_phonenumber
FROM listings_table l
JOIN users_table u ON l.listing_ownerid = u.user_id
LEFT JOIN listing_genres lg ON l.listing_id = lg.listing_id
LEFT JOIN genres g ON lg.genre_id = g.genre_id
WHERE 1=1`

	args := make([]any, 0, 5)

	if filter.Name != "" {
		query += " AND l.listing_name LIKE ?"
		args = append(args, "%"+filter.Name+"%")
	}
	if filter.City != "" {
		query += " AND u.user_city = ?"
		args = append(args, filter.City)
	}
	if filter.MinPrice != nil {
		query += " AND l.listing_price >= ?"
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query += " AND l.listing_price <= ?"
		args = append(args, *filter.MaxPrice)
	}
	if filter.Genre != "" {
		query += " AND g.genre_name = ?"
		args = append(args, filter.Genre)
	}

	if order, ok := sortClause(filter.SortBy, filter.SortOrder); ok {
		query += order
	}

	return query, args
}

// sortClause maps the enumerated sort parameters onto an ORDER BY fragment.
// Both parameters must be present and valid, otherwise no ordering applies.
func sortClause(sortBy, sortOrder string) (string, bool) {
	var column string
	switch sortBy {
	case constant.SortByName:
		column = "l.listing_name"
	case constant.SortByPrice:
		column = "l.listing_price"
	default:
		return "", false
	}

	switch sortOrder {
	case constant.SortOrderAsc:
		return " ORDER BY " + column + " ASC", true
	case constant.SortOrderDesc:
		return " ORDER BY " + column + " DESC", true
	}
	return "", false
}

func (s *SQL) selectListings(ctx context.Context, query string, args ...any) ([]model.ListingWithOwner, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ListingWithOwner, 0)
	for rows.Next() {
		var it model.ListingWithOwner
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, data *model.ListingEntity) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertListingQuery,
		data.ListingName, data.ListingPrice, data.ListingOwnerID, data.ListingCondition, data.ListingDate, data.ListingDesc, data.ListingImagePath)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) InsertGenresTx(ctx context.Context, tx *sqlx.Tx, listingID uint64, genreIDs []int64) error {
	for _, gid := range genreIDs {
		if _, err := tx.ExecContext(ctx, insertListingGenreQuery, listingID, gid); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQL) DeleteGenresTx(ctx context.Context, tx *sqlx.Tx, listingID uint64) error {
	_, err := tx.ExecContext(ctx, deleteListingGenresQuery, listingID)
	return err
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, listingID uint64, req *model.ListingUpdateRequest) error {
	_, err := tx.ExecContext(ctx, updateListingQuery,
		req.ListingName, req.ListingPrice, req.ListingCondition, req.ListingDesc, listingID)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, listingID uint64) error {
	_, err := tx.ExecContext(ctx, deleteListingQuery, listingID)
	return err
}

func (s *SQL) UpdateImagePath(ctx context.Context, listingID uint64, path string) error {
	_, err := s.conn.ExecContext(ctx, updateImagePathQuery, path, listingID)
	return err
}

func (s *SQL) ListView(ctx context.Context) ([]model.UserListingGenreRow, error) {
	rows, err := s.conn.QueryxContext(ctx, listViewQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.UserListingGenreRow, 0)
	for rows.Next() {
		var it model.UserListingGenreRow
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
