package model

// UserEntity represents a users_table row
type UserEntity struct {
	UserID       string `db:"user_id" json:"user_id"`
	UserName     string `db:"user_name" json:"user_name"`
	UserCity     string `db:"user_city" json:"user_city"`
	UserAddress  string `db:"user_restofaddress" json:"user_restofaddress"`
	UserPhone    string `db:"user_phonenumber" json:"user_phonenumber"`
	PasswordHash string `db:"user_passwordhashes" json:"-"`
}

// RegisterRequest for user registration
type RegisterRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	UserName    string `json:"user_name" validate:"required"`
	UserCity    string `json:"user_city" validate:"required"`
	UserAddress string `json:"user_restofaddress" validate:"required"`
	UserPhone   string `json:"user_phonenumber" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// LoginRequest for user login
type LoginRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// UserUpdateRequest replaces the mutable profile fields; NewPassword is
// re-hashed before storage when present.
type UserUpdateRequest struct {
	UserName    string  `json:"user_name" validate:"required"`
	UserCity    string  `json:"user_city" validate:"required"`
	UserAddress string  `json:"user_restofaddress" validate:"required"`
	UserPhone   string  `json:"user_phonenumber" validate:"required"`
	NewPassword *string `json:"new_password,omitempty"`
}

// UserProfileUpdate is the repository-level update payload; PasswordHash is
// only set when the caller supplied a new password.
type UserProfileUpdate struct {
	UserName     string
	UserCity     string
	UserAddress  string
	UserPhone    string
	PasswordHash *string
}
