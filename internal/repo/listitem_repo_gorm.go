package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Fabirm9/nest-graphql/internal/domain"
)

type ListItemRepo struct{ db *gorm.DB }

func NewListItemRepo(db *gorm.DB) *ListItemRepo { return &ListItemRepo{db: db} }

func (r *ListItemRepo) Create(ctx context.Context, li *domain.ListItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(li).Error
}

func (r *ListItemRepo) FindByID(ctx context.Context, id string) (*domain.ListItem, error) {
	var li domain.ListItem
	err := r.db.WithContext(ctx).
		Preload("List").
		Preload("Item").
		First(&li, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &li, nil
}

func (r *ListItemRepo) FindAllByList(ctx context.Context, listID string, q domain.ListQuery) ([]domain.ListItem, error) {
	tx := r.db.WithContext(ctx).Model(&domain.ListItem{}).
		Where("list_items.list_id = ?", listID)
	if s := strings.TrimSpace(q.Search); s != "" {
		tx = tx.Joins("JOIN items ON items.id = list_items.item_id").
			Where("LOWER(items.name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	var lis []domain.ListItem
	err := applyWindow(tx, q).
		Order("list_items.created_at, list_items.id").
		Preload("List").
		Preload("Item").
		Find(&lis).Error
	if err != nil {
		return nil, err
	}
	return lis, nil
}

func (r *ListItemRepo) Save(ctx context.Context, li *domain.ListItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(li).Error
}

func (r *ListItemRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.ListItem{}, "id = ?", id).Error
}

func (r *ListItemRepo) CountByList(ctx context.Context, listID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.ListItem{}).Where("list_id = ?", listID).Count(&n).Error
	return n, err
}

func (r *ListItemRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.ListItem{}).Error
}
