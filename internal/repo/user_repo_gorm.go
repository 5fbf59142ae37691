package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Fabirm9/nest-graphql/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(u).Error
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindAll(ctx context.Context, roles []domain.Role) ([]domain.User, error) {
	tx := r.db.WithContext(ctx).Model(&domain.User{})
	if len(roles) > 0 {
		// roles is a JSON-serialized string column; membership becomes a
		// LIKE on the quoted role name
		cond := r.db.Where("roles LIKE ?", rolePattern(roles[0]))
		for _, role := range roles[1:] {
			cond = cond.Or("roles LIKE ?", rolePattern(role))
		}
		tx = tx.Where(cond)
	}
	var users []domain.User
	if err := tx.Order("created_at, id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func rolePattern(role domain.Role) string { return `%"` + string(role) + `"%` }

func (r *UserRepo) Save(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(u).Error
}

func (r *UserRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.User{}).Error
}
