package domain

// Credentials exists only for the duration of a login call. It is never
// persisted and must never be logged.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// String masks the password so accidental formatting cannot leak it.
func (c Credentials) String() string {
	return "credentials{username=" + c.Username + " password=***}"
}
