package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Email struct {
	value string
}

// NormalizeEmail is the canonical form used for every stored and compared
// email: trimmed and lowercased. All identity checks compare normalized
// values with ==.
func NormalizeEmail(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}

func NewEmail(raw string) (Email, error) {
	v := NormalizeEmail(raw)
	if v == "" || !emailPattern.MatchString(v) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) String() string {
	return e.value
}

func NewRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleUser, RoleAdmin:
		return Role(raw), nil
	default:
		return "", ErrInvalidRole
	}
}
