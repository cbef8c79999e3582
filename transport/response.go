package transport

import (
	"encoding/json"
	"net/http"

	"github.com/emirhly/marketplace/constant"
	"github.com/emirhly/marketplace/utils/errors"
)

type envelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(envelope{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	customErr, ok := err.(errors.CustomError)
	if !ok {
		customErr = errors.SetCustomError(constant.ErrInternal)
	}

	w.WriteHeader(customErr.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(envelope{
		Code:    customErr.ErrorCode(),
		Message: customErr.Error(),
	})
}

// setAuthCookie installs the HTTP-only session cookie.
func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     constant.AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   constant.AuthCookieMaxAge,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearAuthCookie expires the session cookie immediately.
func clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constant.AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
}
