package service

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Fabirm9/nest-graphql/internal/domain"
	"github.com/Fabirm9/nest-graphql/pkg/apperr"
)

// Seed wipes the datastore and reloads it with fixture data. Strictly a
// development helper; Execute refuses to run when the environment is prod.
type Seed struct {
	env string

	users     *Users
	items     *Items
	lists     *Lists
	listItems *ListItems

	userRepo     domain.UserRepository
	itemRepo     domain.ItemRepository
	listRepo     domain.ListRepository
	listItemRepo domain.ListItemRepository

	log *zap.Logger
}

type SeedDeps struct {
	Env       string
	Users     *Users
	Items     *Items
	Lists     *Lists
	ListItems *ListItems

	UserRepo     domain.UserRepository
	ItemRepo     domain.ItemRepository
	ListRepo     domain.ListRepository
	ListItemRepo domain.ListItemRepository
}

func NewSeed(d SeedDeps, l *zap.Logger) *Seed {
	return &Seed{
		env:          d.Env,
		users:        d.Users,
		items:        d.Items,
		lists:        d.Lists,
		listItems:    d.ListItems,
		userRepo:     d.UserRepo,
		itemRepo:     d.ItemRepo,
		listRepo:     d.ListRepo,
		listItemRepo: d.ListItemRepo,
		log:          l,
	}
}

// Execute wipes everything and loads the fixture set: seed users, items and
// lists owned by the first user, then memberships pairing the first list
// with the first 15 items. The steps are sequential and not atomic.
func (s *Seed) Execute(ctx context.Context) (bool, error) {
	if s.env == "prod" {
		return false, apperr.Forbidden("we cannot run seed on prod")
	}

	if err := s.DeleteDatabase(ctx); err != nil {
		return false, err
	}

	user, err := s.loadUsers(ctx)
	if err != nil {
		return false, err
	}
	if err := s.loadItems(ctx, user); err != nil {
		return false, err
	}
	list, err := s.loadLists(ctx, user)
	if err != nil {
		return false, err
	}

	items, err := s.items.FindAll(ctx, domain.ListQuery{Limit: 15}, user)
	if err != nil {
		return false, err
	}
	if err := s.loadListItems(ctx, list, items); err != nil {
		return false, err
	}

	s.log.Info("seed executed",
		zap.Int("users", len(seedUsers)),
		zap.Int("items", len(seedItems)),
		zap.Int("lists", len(seedLists)),
		zap.Int("list_items", len(items)),
	)
	return true, nil
}

// DeleteDatabase removes every row, children before parents, to satisfy
// foreign keys.
func (s *Seed) DeleteDatabase(ctx context.Context) error {
	if err := s.listItemRepo.DeleteAll(ctx); err != nil {
		return s.internal(err)
	}
	if err := s.listRepo.DeleteAll(ctx); err != nil {
		return s.internal(err)
	}
	if err := s.itemRepo.DeleteAll(ctx); err != nil {
		return s.internal(err)
	}
	if err := s.userRepo.DeleteAll(ctx); err != nil {
		return s.internal(err)
	}
	return nil
}

// loadUsers creates the seed users and returns the first one, which owns
// all seeded items and lists.
func (s *Seed) loadUsers(ctx context.Context) (*domain.User, error) {
	var first *domain.User
	for _, su := range seedUsers {
		u, err := s.users.Create(ctx, SignUpInput{
			Email:    su.Email,
			FullName: su.FullName,
			Password: su.Password,
		})
		if err != nil {
			return nil, err
		}
		if len(su.Roles) > 0 {
			u.Roles = su.Roles
			if err := s.userRepo.Save(ctx, u); err != nil {
				return nil, s.internal(err)
			}
		}
		if first == nil {
			first = u
		}
	}
	return first, nil
}

func (s *Seed) loadItems(ctx context.Context, owner *domain.User) error {
	for _, si := range seedItems {
		in := CreateItemInput{Name: si.Name, Quantity: ptr(si.Quantity)}
		if si.Units != "" {
			in.QuantityUnits = ptr(si.Units)
		}
		if _, err := s.items.Create(ctx, in, owner); err != nil {
			return err
		}
	}
	return nil
}

// loadLists creates the seed lists and returns the first one.
func (s *Seed) loadLists(ctx context.Context, owner *domain.User) (*domain.List, error) {
	var first *domain.List
	for _, name := range seedLists {
		l, err := s.lists.Create(ctx, CreateListInput{Name: name}, owner)
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = l
		}
	}
	return first, nil
}

func (s *Seed) loadListItems(ctx context.Context, list *domain.List, items []domain.Item) error {
	for _, it := range items {
		_, err := s.listItems.Create(ctx, CreateListItemInput{
			Quantity:  ptr(float64(rand.IntN(11))),
			Completed: ptr(rand.IntN(2) == 1),
			ListID:    list.ID,
			ItemID:    it.ID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seed) internal(err error) error {
	s.log.Error("seed: persistence failure", zap.Error(err))
	return apperr.Internal("please check server logs", err)
}

func ptr[T any](v T) *T { return &v }
