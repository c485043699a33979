package user

import (
	"strings"

	"campustix/internal/pkg/errs"
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

var ErrInvalidRole = errs.New("invalid role")

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleMember, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string { return string(r) }

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	t := strings.TrimSpace(strings.ToLower(s))
	at := strings.Index(t, "@")
	if at <= 0 || at == len(t)-1 || len(t) > 254 {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: t}, nil
}

func (e Email) String() string { return e.value }

const MaxUsernameLength = 32

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	t := strings.TrimSpace(s)
	if t == "" || len(t) > MaxUsernameLength {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: t}, nil
}

func (u Username) String() string { return u.value }
