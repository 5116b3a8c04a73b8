package models

import "time"

// User represents an account entity used for authentication and data
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries: handlers return [PublicUser] projections, never User itself.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique display handle of the user.
	Username string `json:"username"`

	// Email is the unique address used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the argon2id-encoded digest of the user's
	// password. This value MUST be a derived value, never plaintext,
	// and is excluded from every JSON representation.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed by the database on any change to the record.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the client-facing projection of a [User]. Producing it once
// at the model boundary guarantees the password hash cannot leak through a
// handler that forgets to omit a field.
type PublicUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public converts the user into its client-facing projection.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
