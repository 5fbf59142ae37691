package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Fabirm9/nest-graphql/internal/domain"
)

type ItemRepo struct{ db *gorm.DB }

func NewItemRepo(db *gorm.DB) *ItemRepo { return &ItemRepo{db: db} }

func (r *ItemRepo) Create(ctx context.Context, it *domain.Item) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(it).Error
}

func (r *ItemRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*domain.Item, error) {
	var it domain.Item
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&it, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *ItemRepo) FindAllByUser(ctx context.Context, userID string, q domain.ListQuery) ([]domain.Item, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Item{}).Where("user_id = ?", userID)
	if s := strings.TrimSpace(q.Search); s != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	var items []domain.Item
	err := applyWindow(tx, q).Order("created_at, id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepo) Save(ctx context.Context, it *domain.Item) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(it).Error
}

func (r *ItemRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Item{}, "id = ?", id).Error
}

func (r *ItemRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Item{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *ItemRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.Item{}).Error
}
