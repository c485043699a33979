package user

import (
	"time"

	"campustix/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail    = errs.New("invalid email")
	ErrInvalidUsername = errs.New("invalid username")
)

type User struct {
	id           uuid.UUID
	email        Email
	username     Username
	passwordHash string
	role         Role
	isActive     bool
	createdAt    time.Time
}

func NewUser(emailValue, usernameValue, passwordHash string, role Role, now time.Time) (*User, error) {
	email, err := NewEmail(emailValue)
	if err != nil {
		return nil, err
	}

	username, err := NewUsername(usernameValue)
	if err != nil {
		return nil, err
	}

	return &User{
		id:           uuid.New(),
		email:        email,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
	}, nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
