package repo

import (
	"errors"

	"gorm.io/gorm"

	"booknest/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByUsernameOrEmail(username, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "username = ? OR email = ?", username, email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) List() ([]domain.User, error) {
	var users []domain.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepo) Update(u *domain.User) error {
	err := r.db.Save(u).Error
	if isDupKey(err) {
		return domain.Conflict("username or email already exists")
	}
	return err
}

func (r *UserRepo) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NotFound("user not found")
		}
		if err := tx.Where("user_id = ?", id).Delete(&domain.Loan{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", id).Delete(&domain.ReadingListEntry{}).Error
	})
}
