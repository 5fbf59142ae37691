package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Fabirm9/nest-graphql/internal/domain"
)

type ListRepo struct{ db *gorm.DB }

func NewListRepo(db *gorm.DB) *ListRepo { return &ListRepo{db: db} }

func (r *ListRepo) Create(ctx context.Context, l *domain.List) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error
}

func (r *ListRepo) FindByIDAndUser(ctx context.Context, id, userID string) (*domain.List, error) {
	var l domain.List
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&l, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListRepo) FindAllByUser(ctx context.Context, userID string, q domain.ListQuery) ([]domain.List, error) {
	tx := r.db.WithContext(ctx).Model(&domain.List{}).Where("user_id = ?", userID)
	if s := strings.TrimSpace(q.Search); s != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	var lists []domain.List
	err := applyWindow(tx, q).Order("created_at, id").Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *ListRepo) Save(ctx context.Context, l *domain.List) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(l).Error
}

func (r *ListRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.List{}, "id = ?", id).Error
}

func (r *ListRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.List{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *ListRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.List{}).Error
}
