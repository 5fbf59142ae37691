package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/pkg/apperr"
	"github.com/Fabirm9/nest-graphql/pkg/utils"
)

type Lists struct {
	repo domain.ListRepository
	log  *zap.Logger
}

func NewLists(r domain.ListRepository, l *zap.Logger) *Lists {
	return &Lists{repo: r, log: l}
}

func (s *Lists) Create(ctx context.Context, in CreateListInput, owner *domain.User) (*domain.List, error) {
	l := &domain.List{
		ID:     utils.NewID(),
		Name:   in.Name,
		UserID: owner.ID,
		User:   owner,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, s.internal(err)
	}
	return l, nil
}

func (s *Lists) FindAll(ctx context.Context, q domain.ListQuery, owner *domain.User) ([]domain.List, error) {
	lists, err := s.repo.FindAllByUser(ctx, owner.ID, q)
	if err != nil {
		return nil, s.internal(err)
	}
	return lists, nil
}

func (s *Lists) FindOne(ctx context.Context, id string, owner *domain.User) (*domain.List, error) {
	l, err := s.repo.FindByIDAndUser(ctx, id, owner.ID)
	if err != nil {
		return nil, s.internal(err)
	}
	if l == nil {
		return nil, apperr.NotFound(fmt.Sprintf("list with %s not found", id))
	}
	return l, nil
}

func (s *Lists) Update(ctx context.Context, id string, in UpdateListInput, owner *domain.User) (*domain.List, error) {
	l, err := s.FindOne(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		l.Name = *in.Name
	}
	if err := s.repo.Save(ctx, l); err != nil {
		return nil, s.internal(err)
	}
	return l, nil
}

func (s *Lists) Remove(ctx context.Context, id string, owner *domain.User) (*domain.List, error) {
	l, err := s.FindOne(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, l.ID); err != nil {
		return nil, s.internal(err)
	}
	return l, nil
}

func (s *Lists) CountByUser(ctx context.Context, owner *domain.User) (int64, error) {
	n, err := s.repo.CountByUser(ctx, owner.ID)
	if err != nil {
		return 0, s.internal(err)
	}
	return n, nil
}

func (s *Lists) internal(err error) error {
	s.log.Error("lists: persistence failure", zap.Error(err))
	return apperr.Internal("please check server logs", err)
}
