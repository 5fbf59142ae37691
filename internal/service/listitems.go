package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/internal/repo"
	"github.com/Fabirm9/nest-graphql/pkg/apperr"
	"github.com/Fabirm9/nest-graphql/pkg/utils"
)

// ListItems manages list memberships. Ownership is not checked here: the
// API layer resolves the parent list and item through the owner-scoped
// services before calling in.
type ListItems struct {
	repo domain.ListItemRepository
	log  *zap.Logger
}

func NewListItems(r domain.ListItemRepository, l *zap.Logger) *ListItems {
	return &ListItems{repo: r, log: l}
}

func (s *ListItems) Create(ctx context.Context, in CreateListItemInput) (*domain.ListItem, error) {
	li := &domain.ListItem{
		ID:     utils.NewID(),
		ListID: in.ListID,
		ItemID: in.ItemID,
	}
	if in.Quantity != nil {
		li.Quantity = *in.Quantity
	}
	if in.Completed != nil {
		li.Completed = *in.Completed
	}
	if err := s.repo.Create(ctx, li); err != nil {
		if repo.IsDuplicate(err) {
			return nil, apperr.BadRequest("item is already on the list")
		}
		return nil, s.internal(err)
	}
	// reload with list/item references resolved
	return s.FindOne(ctx, li.ID)
}

func (s *ListItems) FindAll(ctx context.Context, list *domain.List, q domain.ListQuery) ([]domain.ListItem, error) {
	lis, err := s.repo.FindAllByList(ctx, list.ID, q)
	if err != nil {
		return nil, s.internal(err)
	}
	return lis, nil
}

func (s *ListItems) FindOne(ctx context.Context, id string) (*domain.ListItem, error) {
	li, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.internal(err)
	}
	if li == nil {
		return nil, apperr.NotFound(fmt.Sprintf("list item with %s not found", id))
	}
	return li, nil
}

func (s *ListItems) Update(ctx context.Context, id string, in UpdateListItemInput) (*domain.ListItem, error) {
	li, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Quantity != nil {
		li.Quantity = *in.Quantity
	}
	if in.Completed != nil {
		li.Completed = *in.Completed
	}
	if in.ListID != nil {
		li.ListID = *in.ListID
	}
	if in.ItemID != nil {
		li.ItemID = *in.ItemID
	}
	if err := s.repo.Save(ctx, li); err != nil {
		if repo.IsDuplicate(err) {
			return nil, apperr.BadRequest("item is already on the list")
		}
		return nil, s.internal(err)
	}
	return s.FindOne(ctx, li.ID)
}

func (s *ListItems) Remove(ctx context.Context, id string) (*domain.ListItem, error) {
	li, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, li.ID); err != nil {
		return nil, s.internal(err)
	}
	return li, nil
}

func (s *ListItems) CountByList(ctx context.Context, list *domain.List) (int64, error) {
	n, err := s.repo.CountByList(ctx, list.ID)
	if err != nil {
		return 0, s.internal(err)
	}
	return n, nil
}

func (s *ListItems) internal(err error) error {
	s.log.Error("list-items: persistence failure", zap.Error(err))
	return apperr.Internal("please check server logs", err)
}
