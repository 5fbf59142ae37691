package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Fabirm9/nest-graphql/internal/core/auth"
	"github.com/Fabirm9/nest-graphql/internal/core/cache"
	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/pkg/apperr"
	"github.com/Fabirm9/nest-graphql/pkg/utils"
)

type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type Auth struct {
	users   *Users
	jwt     *auth.JWTer
	cache   *cache.Cache // nil disables caching
	userTTL time.Duration
	log     *zap.Logger
}

func NewAuth(users *Users, jwter *auth.JWTer, c *cache.Cache, userTTL time.Duration, l *zap.Logger) *Auth {
	if userTTL <= 0 {
		userTTL = 30 * time.Second
	}
	return &Auth{users: users, jwt: jwter, cache: c, userTTL: userTTL, log: l}
}

func (s *Auth) Signup(ctx context.Context, in SignUpInput) (*AuthResponse, error) {
	u, err := s.users.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	return s.respond(u)
}

// Login verifies the bcrypt hash before any token is minted. Unknown email
// and wrong password produce the same message so the surface does not reveal
// which accounts exist.
func (s *Auth) Login(ctx context.Context, in LoginInput) (*AuthResponse, error) {
	u, err := s.users.FindOneByEmail(ctx, in.Email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, errBadCredentials()
		}
		return nil, err
	}
	if !utils.CheckPassword(in.Password, u.Password) {
		return nil, errBadCredentials()
	}
	return s.respond(u)
}

// ValidateUser resolves a token subject to a live account. Inactive accounts
// are rejected and the password hash is stripped from the returned record.
// Lookups go through the redis cache when one is configured; Users.Update and
// Users.Block invalidate the same key.
func (s *Auth) ValidateUser(ctx context.Context, id string) (*domain.User, error) {
	u, err := cache.GetOrLoadJSON[domain.User](s.cache, ctx, userCacheKey(id), s.userTTL,
		func(ctx context.Context) (*domain.User, error) {
			return s.users.FindOneByID(ctx, id)
		})
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("invalid token")
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, apperr.Unauthorized("user is inactive, talk with an admin")
	}
	u.Password = ""
	return u, nil
}

// RefreshToken reissues a token for an already-authenticated caller.
func (s *Auth) RefreshToken(user *domain.User) (*AuthResponse, error) {
	return s.respond(user)
}

func (s *Auth) respond(u *domain.User) (*AuthResponse, error) {
	tok, err := s.jwt.Issue(u.ID)
	if err != nil {
		s.log.Error("auth: token issuance failed", zap.Error(err))
		return nil, apperr.Internal("please check server logs", err)
	}
	return &AuthResponse{Token: tok, User: u}, nil
}

func errBadCredentials() error {
	return apperr.BadRequest("problem with email and password")
}
