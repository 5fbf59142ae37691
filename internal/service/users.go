package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Fabirm9/nest-graphql/internal/core/cache"
	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/internal/repo"
	"github.com/Fabirm9/nest-graphql/pkg/apperr"
	"github.com/Fabirm9/nest-graphql/pkg/utils"
)

func userCacheKey(id string) string { return "user:" + id }

type Users struct {
	repo  domain.UserRepository
	cache *cache.Cache // nil disables caching
	log   *zap.Logger
}

func NewUsers(r domain.UserRepository, c *cache.Cache, l *zap.Logger) *Users {
	return &Users{repo: r, cache: c, log: l}
}

// Create persists a new user with a hashed password and the default role.
// A unique-constraint hit on email surfaces as a BadRequest; anything else
// is logged and replaced with a generic internal error.
func (s *Users) Create(ctx context.Context, in SignUpInput) (*domain.User, error) {
	u := &domain.User{
		ID:       utils.NewID(),
		Email:    normalizeEmail(in.Email),
		FullName: strings.TrimSpace(in.FullName),
		Password: utils.HashPassword(in.Password),
		Roles:    []domain.Role{domain.RoleUser},
		IsActive: true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if repo.IsDuplicate(err) {
			return nil, apperr.BadRequest("key email already exists")
		}
		return nil, s.internal(err)
	}
	return u, nil
}

func (s *Users) FindAll(ctx context.Context, roles []domain.Role) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx, roles)
	if err != nil {
		return nil, s.internal(err)
	}
	return users, nil
}

func (s *Users) FindOneByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.internal(err)
	}
	if u == nil {
		return nil, apperr.NotFound(fmt.Sprintf("%s not found", id))
	}
	return u, nil
}

func (s *Users) FindOneByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, s.internal(err)
	}
	if u == nil {
		return nil, apperr.NotFound(fmt.Sprintf("%s not found", email))
	}
	return u, nil
}

// Update merges the provided fields into the stored record and stamps it
// with the acting user. Unset fields keep their prior values.
func (s *Users) Update(ctx context.Context, id string, in UpdateUserInput, actor *domain.User) (*domain.User, error) {
	u, err := s.FindOneByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Email != nil {
		u.Email = normalizeEmail(*in.Email)
	}
	if in.FullName != nil {
		u.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Password != nil {
		u.Password = utils.HashPassword(*in.Password)
	}
	if in.Roles != nil {
		for _, role := range in.Roles {
			if !role.Valid() {
				return nil, apperr.BadRequest(fmt.Sprintf("invalid role %q", role))
			}
		}
		u.Roles = in.Roles
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	u.LastUpdateByID = &actor.ID

	if err := s.repo.Save(ctx, u); err != nil {
		if repo.IsDuplicate(err) {
			return nil, apperr.BadRequest("key email already exists")
		}
		return nil, s.internal(err)
	}
	s.cache.Invalidate(ctx, userCacheKey(u.ID))
	return u, nil
}

// Block deactivates a user; blocked users fail token validation on their
// next request.
func (s *Users) Block(ctx context.Context, id string, actor *domain.User) (*domain.User, error) {
	u, err := s.FindOneByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.IsActive = false
	u.LastUpdateByID = &actor.ID
	if err := s.repo.Save(ctx, u); err != nil {
		return nil, s.internal(err)
	}
	s.cache.Invalidate(ctx, userCacheKey(u.ID))
	return u, nil
}

func (s *Users) internal(err error) error {
	s.log.Error("users: persistence failure", zap.Error(err))
	return apperr.Internal("please check server logs", err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
