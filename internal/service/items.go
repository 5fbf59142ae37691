package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/pkg/apperr"
	"github.com/Fabirm9/nest-graphql/pkg/utils"
)

// Items scopes every operation to the owning user. A miss and a row owned
// by somebody else are both reported as not found.
type Items struct {
	repo domain.ItemRepository
	log  *zap.Logger
}

func NewItems(r domain.ItemRepository, l *zap.Logger) *Items {
	return &Items{repo: r, log: l}
}

func (s *Items) Create(ctx context.Context, in CreateItemInput, owner *domain.User) (*domain.Item, error) {
	it := &domain.Item{
		ID:            utils.NewID(),
		Name:          in.Name,
		QuantityUnits: in.QuantityUnits,
		UserID:        owner.ID,
		User:          owner,
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, s.internal(err)
	}
	return it, nil
}

func (s *Items) FindAll(ctx context.Context, q domain.ListQuery, owner *domain.User) ([]domain.Item, error) {
	items, err := s.repo.FindAllByUser(ctx, owner.ID, q)
	if err != nil {
		return nil, s.internal(err)
	}
	return items, nil
}

func (s *Items) FindOne(ctx context.Context, id string, owner *domain.User) (*domain.Item, error) {
	it, err := s.repo.FindByIDAndUser(ctx, id, owner.ID)
	if err != nil {
		return nil, s.internal(err)
	}
	if it == nil {
		return nil, apperr.NotFound(fmt.Sprintf("item with %s not found", id))
	}
	return it, nil
}

func (s *Items) Update(ctx context.Context, id string, in UpdateItemInput, owner *domain.User) (*domain.Item, error) {
	it, err := s.FindOne(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		it.Name = *in.Name
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if in.QuantityUnits != nil {
		it.QuantityUnits = in.QuantityUnits
	}
	if err := s.repo.Save(ctx, it); err != nil {
		return nil, s.internal(err)
	}
	return it, nil
}

// Remove deletes the row and hands back the former record for confirmation.
func (s *Items) Remove(ctx context.Context, id string, owner *domain.User) (*domain.Item, error) {
	it, err := s.FindOne(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, it.ID); err != nil {
		return nil, s.internal(err)
	}
	return it, nil
}

func (s *Items) CountByUser(ctx context.Context, owner *domain.User) (int64, error) {
	n, err := s.repo.CountByUser(ctx, owner.ID)
	if err != nil {
		return 0, s.internal(err)
	}
	return n, nil
}

func (s *Items) internal(err error) error {
	s.log.Error("items: persistence failure", zap.Error(err))
	return apperr.Internal("please check server logs", err)
}
