package repo

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"booknest/internal/domain"
)

type LoanRepo struct{ db *gorm.DB }

func NewLoanRepo(db *gorm.DB) *LoanRepo { return &LoanRepo{db: db} }

// Borrow runs the check-then-insert as one transaction. The book row is
// locked first, so two concurrent borrows of the same pair serialize on it
// and the loser observes the fresh loan.
func (r *LoanRepo) Borrow(userID, bookID uint, now time.Time) (*domain.Loan, error) {
	var loan *domain.Loan
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var book domain.Book
		if err := withRowLock(tx).First(&book, "id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound("book not found")
			}
			return err
		}

		var outstanding int64
		err := tx.Model(&domain.Loan{}).
			Where("user_id = ? AND book_id = ? AND returned_at IS NULL", userID, bookID).
			Count(&outstanding).Error
		if err != nil {
			return err
		}
		if outstanding > 0 {
			return domain.AlreadyBorrowed()
		}

		l := &domain.Loan{
			UserID:     userID,
			BookID:     bookID,
			BorrowedAt: now,
			DueDate:    now.Add(domain.LoanPeriod),
		}
		if err := tx.Create(l).Error; err != nil {
			// Backstop for engines where the lock is bypassed and a
			// filtered unique index fires instead.
			if isDupKey(err) {
				return domain.AlreadyBorrowed()
			}
			return err
		}
		loan = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

func (r *LoanRepo) FindByID(id uint) (*domain.Loan, error) {
	var l domain.Loan
	err := r.db.First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &l, err
}

func (r *LoanRepo) ListByUser(userID uint) ([]domain.LoanDetail, error) {
	var rows []domain.LoanDetail
	err := r.db.Table("loan").
		Select("loan.id, loan.book_id, loan.borrowed_at, loan.due_date, loan.returned_at, "+
			"book.title AS book_title, book.author AS book_author, book.genre AS book_genre").
		Joins("LEFT JOIN book ON book.id = loan.book_id").
		Where("loan.user_id = ?", userID).
		Order("loan.id").
		Scan(&rows).Error
	return rows, err
}

func (r *LoanRepo) ListAll() ([]domain.AdminLoanRow, error) {
	var rows []domain.AdminLoanRow
	err := r.db.Table("loan").
		Select("loan.id, loan.user_id, loan.book_id, loan.borrowed_at, loan.due_date, loan.returned_at, " +
			"book.title AS book_title").
		Joins("LEFT JOIN book ON book.id = loan.book_id").
		Order("loan.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// "user" is a reserved word on postgres, so the email join happens here
	// instead of in raw SQL; gorm quotes the table per dialect.
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
	}
	emails := map[uint]string{}
	if len(ids) > 0 {
		var users []domain.User
		if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
			return nil, err
		}
		for _, u := range users {
			emails[u.ID] = u.Email
		}
	}
	for i := range rows {
		rows[i].UserEmail = emails[rows[i].UserID]
	}
	return rows, nil
}

func (r *LoanRepo) Update(l *domain.Loan) error { return r.db.Save(l).Error }

func (r *LoanRepo) Delete(id uint) error {
	return r.db.Delete(&domain.Loan{}, id).Error
}
