package model

import (
	"errors"
	"time"
)

// User is an identity record. The ID is caller-supplied at sign-up (a
// generated UUID, or the fixed guest sentinel in no-login mode).
type User struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Salt         string    `db:"salt" json:"-"`
	DisplayName  *string   `db:"display_name" json:"display_name"`
	AvatarURL    *string   `db:"avatar_url" json:"avatar_url"`
	Bio          *string   `db:"bio" json:"bio"`
	CoverURL     *string   `db:"cover_url" json:"cover_url"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// UserSummary is the lightweight shape used in lists (followers, friends,
// search results).
type UserSummary struct {
	ID          string  `db:"id" json:"id"`
	Username    string  `db:"username" json:"username"`
	DisplayName *string `db:"display_name" json:"display_name"`
	AvatarURL   *string `db:"avatar_url" json:"avatar_url"`
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave as is".
type ProfileUpdate struct {
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
	Bio         *string `json:"bio"`
	CoverURL    *string `json:"cover_url"`
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when attempting to create a user with a taken username
	ErrUsernameExists = errors.New("username already exists")

	// ErrEmailExists is returned when attempting to create a user with a taken email
	ErrEmailExists = errors.New("email already exists")

	// ErrIncorrectPassword is returned when login credentials do not match
	ErrIncorrectPassword = errors.New("incorrect password")
)

// Sign-up validation failures. Each malformed input maps to its own sentinel
// so the presentation layer can render a specific reason.
var (
	ErrUsernameTooShort     = errors.New("username too short")
	ErrUsernameTooLong      = errors.New("username too long")
	ErrUsernameInvalidChars = errors.New("username contains invalid characters")
	ErrEmailInvalid         = errors.New("invalid email format")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrPasswordTooWeak      = errors.New("password too weak")
)
