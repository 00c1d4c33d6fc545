package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"cinelog/internal/model"
	"cinelog/internal/repository"
)

// AuthService handles sign-up and login. Passwords are stored as the
// hex-encoded SHA-256 of salt+password with a random 16-character salt
// generated per user.
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
)

// SignUp validates the input, then creates the account. Validation failures
// and conflicts come back as the sentinels declared in model; they are never
// thrown past this boundary.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (*model.User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if !emailRe.MatchString(email) {
		return nil, model.ErrEmailInvalid
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, model.ErrUsernameExists
	}

	exists, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, model.ErrEmailExists
	}

	salt, err := generateSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		Salt:         salt,
		PasswordHash: hashPassword(salt, password),
	}

	// The insert aborts on a conflicting row, so a sign-up racing past the
	// existence checks still surfaces as a named conflict.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates by username or email.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*model.User, error) {
	var (
		user *model.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.users.GetByEmail(ctx, identifier)
	} else {
		user, err = s.users.GetByUsername(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}

	if hashPassword(user.Salt, password) != user.PasswordHash {
		return nil, model.ErrIncorrectPassword
	}

	return user, nil
}

func validateUsername(username string) error {
	if len(username) < 3 {
		return model.ErrUsernameTooShort
	}
	if len(username) > 20 {
		return model.ErrUsernameTooLong
	}
	if !usernameRe.MatchString(username) {
		return model.ErrUsernameInvalidChars
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return model.ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return model.ErrPasswordTooWeak
	}

	return nil
}

// generateSalt returns a random 16-character hex string.
func generateSalt() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashPassword(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}
