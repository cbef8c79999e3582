package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrUserIDExists
	ErrPhoneExists
	ErrInvalidCredentials
	ErrInvalidFileType
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthorize:        "unauthorize request",
	ErrForbidden:          "forbidden",
	ErrUserIDExists:       "user id already exists",
	ErrPhoneExists:        "phone number already registered",
	ErrInvalidCredentials: "invalid credentials",
	ErrInvalidFileType:    "invalid file format (jpg, jpeg, png, webp)",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthorize:        http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrUserIDExists:       http.StatusBadRequest,
	ErrPhoneExists:        http.StatusBadRequest,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrInvalidFileType:    http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthorize:        "0004",
	ErrForbidden:          "0005",
	ErrUserIDExists:       "0006",
	ErrPhoneExists:        "0007",
	ErrInvalidCredentials: "0008",
	ErrInvalidFileType:    "0009",
}
