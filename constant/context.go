package constant

type contextKey string

// UserIDKey carries the authenticated user id (token subject) in a request context.
const UserIDKey contextKey = "user_id"
