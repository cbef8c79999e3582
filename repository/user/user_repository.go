package user

import (
	"context"
	"database/sql"
	"strings"

	"github.com/emirhly/marketplace/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) error
	GetByID(ctx context.Context, userID string) (*model.UserEntity, error)
	GetByPhone(ctx context.Context, phone string) (*model.UserEntity, error)
	List(ctx context.Context) ([]model.UserEntity, error)
	Update(ctx context.Context, userID string, req *model.UserProfileUpdate) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users_table (user_id, user_name, user_city, user_restofaddress, user_phonenumber, user_passwordhashes) VALUES (?, ?, ?, ?, ?, ?)`
	getUserBase     = `SELECT user_id, user_name, user_city, user_restofaddress, user_phonenumber, user_passwordhashes FROM users_table`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.UserID, data.UserName, data.UserCity, data.UserAddress, data.UserPhone, data.PasswordHash)
	return err
}

func (s *SQL) GetByID(ctx context.Context, userID string) (*model.UserEntity, error) {
	return s.getOne(ctx, getUserBase+" WHERE user_id = ?", userID)
}

func (s *SQL) GetByPhone(ctx context.Context, phone string) (*model.UserEntity, error) {
	return s.getOne(ctx, getUserBase+" WHERE user_phonenumber = ?", phone)
}

func (s *SQL) getOne(ctx context.Context, query string, arg any) (*model.UserEntity, error) {
	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, arg).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.UserEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getUserBase)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]model.UserEntity, 0)
	for rows.Next() {
		var u model.UserEntity
		if err := rows.StructScan(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update rebuilds the SET clause from the supplied fields; the password
// column is only touched when a new hash was provided.
func (s *SQL) Update(ctx context.Context, userID string, req *model.UserProfileUpdate) error {
	sets := []string{"user_name = ?", "user_city = ?", "user_restofaddress = ?", "user_phonenumber = ?"}
	args := []any{req.UserName, req.UserCity, req.UserAddress, req.UserPhone}

	if req.PasswordHash != nil {
		sets = append(sets, "user_passwordhashes = ?")
		args = append(args, *req.PasswordHash)
	}

	args = append(args, userID)
	query := "UPDATE users_table SET " + strings.Join(sets, ", ") + " WHERE user_id = ?"

	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}
