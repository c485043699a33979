package commands

import (
	"context"
	"log/slog"

	"campustix/internal/domain/user"
	"campustix/internal/infra"
	"campustix/internal/infra/db"
	"campustix/internal/pkg/clock"
	"campustix/internal/pkg/errs"
	"campustix/internal/pkg/jwt"
	"campustix/internal/pkg/password"
	"campustix/internal/usecase/queries"
	"campustix/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user is inactive")
	ErrEmailTaken         = errs.New("email or username already registered")
	ErrInvalidTokenType   = errs.New("token is not a refresh token")
)

type RegisterRequest struct {
	Email    string
	Username string
	Password string
}

type RegisterResult struct {
	UserID uuid.UUID
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *queries.AuthorizedUserView
}

type RefreshResult struct {
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error)
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	users      queries.UserReadStore
	userRepo   shared.UserRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, users queries.UserReadStore, userRepo shared.UserRepository, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authUseCaseImpl{uow: uow, users: users, userRepo: userRepo, jwtService: jwtService, clock: clk}
}

func (uc *authUseCaseImpl) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(req.Email, req.Username, hash, user.RoleMember, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), shared.CreateUserParams{
			ID:           u.ID(),
			Email:        u.Email().String(),
			Username:     u.Username().String(),
			PasswordHash: u.PasswordHash(),
			Role:         u.Role().String(),
		})
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &RegisterResult{UserID: createdID}, nil
}

func (uc *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	view, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(view.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, err
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(view.ID, role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := uc.jwtService.GenerateRefreshToken(view.ID, role)
	if err != nil {
		return nil, err
	}

	// Last-login bookkeeping must not fail the login
	if uerr := uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return uc.userRepo.UpdateLastLogin(ctx, dbtx, view.ID)
	}); uerr != nil {
		slog.Warn("failed to update last login", "user_id", view.ID.String(), "error", uerr.Error())
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         view,
	}, nil
}

func (uc *authUseCaseImpl) Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	claims, err := uc.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidTokenType
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, err
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(claims.UserID, role)
	if err != nil {
		return nil, err
	}
	return &RefreshResult{AccessToken: accessToken}, nil
}
