package repo

import (
	"errors"

	"gorm.io/gorm"

	"booknest/internal/domain"
)

type ReadingListRepo struct{ db *gorm.DB }

func NewReadingListRepo(db *gorm.DB) *ReadingListRepo { return &ReadingListRepo{db: db} }

// Add mirrors the borrow transaction: lock the book row, check the pair,
// insert. The (user_id, book_id) uniqueness is enforced here, not by schema.
func (r *ReadingListRepo) Add(userID, bookID uint, note string) (*domain.ReadingListEntry, error) {
	var entry *domain.ReadingListEntry
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var book domain.Book
		if err := withRowLock(tx).First(&book, "id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound("book not found")
			}
			return err
		}

		var existing int64
		err := tx.Model(&domain.ReadingListEntry{}).
			Where("user_id = ? AND book_id = ?", userID, bookID).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return domain.Conflict("book already in your reading list")
		}

		e := &domain.ReadingListEntry{UserID: userID, BookID: bookID, Note: note}
		if err := tx.Create(e).Error; err != nil {
			if isDupKey(err) {
				return domain.Conflict("book already in your reading list")
			}
			return err
		}
		entry = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *ReadingListRepo) FindByID(id uint) (*domain.ReadingListEntry, error) {
	var e domain.ReadingListEntry
	err := r.db.First(&e, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &e, err
}

func (r *ReadingListRepo) ListByUser(userID uint) ([]domain.ReadingListDetail, error) {
	var rows []domain.ReadingListDetail
	err := r.db.Table("reading_list").
		Select("reading_list.id, reading_list.book_id, reading_list.note, "+
			"book.title AS book_title, book.author AS book_author, book.genre AS book_genre").
		Joins("LEFT JOIN book ON book.id = reading_list.book_id").
		Where("reading_list.user_id = ?", userID).
		Order("reading_list.id").
		Scan(&rows).Error
	return rows, err
}

func (r *ReadingListRepo) Update(e *domain.ReadingListEntry) error { return r.db.Save(e).Error }

func (r *ReadingListRepo) Delete(id uint) error {
	return r.db.Delete(&domain.ReadingListEntry{}, id).Error
}
