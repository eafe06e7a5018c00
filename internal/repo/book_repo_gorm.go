package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"booknest/internal/domain"
)

type BookRepo struct{ db *gorm.DB }

func NewBookRepo(db *gorm.DB) *BookRepo { return &BookRepo{db: db} }

func (r *BookRepo) Create(b *domain.Book) error { return r.db.Create(b).Error }

func (r *BookRepo) FindByID(id uint) (*domain.Book, error) {
	var b domain.Book
	err := r.db.First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &b, err
}

func (r *BookRepo) List() ([]domain.Book, error) {
	var books []domain.Book
	err := r.db.Order("id").Find(&books).Error
	return books, err
}

// Search applies case-insensitive substring filters, ANDed together.
// LOWER(...) LIKE keeps behavior identical across postgres/mysql/sqlite.
func (r *BookRepo) Search(f domain.BookFilter) ([]domain.Book, error) {
	q := r.db.Model(&domain.Book{})
	if s := strings.TrimSpace(f.Title); s != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(f.Author); s != "" {
		q = q.Where("LOWER(author) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(f.Genre); s != "" {
		q = q.Where("LOWER(genre) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	var books []domain.Book
	err := q.Order("id").Find(&books).Error
	return books, err
}

func (r *BookRepo) Update(b *domain.Book) error { return r.db.Save(b).Error }

func (r *BookRepo) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.Book{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NotFound("book not found")
		}
		if err := tx.Where("book_id = ?", id).Delete(&domain.Loan{}).Error; err != nil {
			return err
		}
		return tx.Where("book_id = ?", id).Delete(&domain.ReadingListEntry{}).Error
	})
}
