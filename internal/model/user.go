package model

// User represents an application account as stored in the `users` table.
// Each field corresponds to a column.  The password column always holds a
// bcrypt hash; the clear-text password never leaves the signup request.
// Timestamps are stored as RFC 3339 strings rather than DATETIME so the rows
// stay portable across store engines.
//
// Fields:
//
//	ID           – primary key, a random UUID string assigned at signup.
//	Name         – display name shown on pages and copied onto bookings.
//	Email        – unique natural key, used for login and booking ownership.
//	PasswordHash – bcrypt hashed password (users.password).
//	CreatedAt    – RFC 3339 creation timestamp.
type User struct {
	ID           string // users.id
	Name         string // users.name
	Email        string // users.email
	PasswordHash string // users.password
	CreatedAt    string // users.created_at
}

// Identity is the per-client session record: the three account fields a
// logged-in browser carries between requests.  It is everything a handler is
// allowed to know about the current user; the password hash stays inside the
// repository layer.
type Identity struct {
	ID    string
	Name  string
	Email string
}
