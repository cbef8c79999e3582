package constant

const (
	SortByName  = "name"
	SortByPrice = "price"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// AllowedImageExtensions is the upload allow-list; anything else is rejected.
var AllowedImageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"webp": true,
}

const AuthCookieName = "access_token"

// AuthCookieMaxAge is the cookie lifetime in seconds (matches the token expiry).
const AuthCookieMaxAge = 1800
