package middleware

// Context keys used to store request and authentication metadata.
const (
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
)
