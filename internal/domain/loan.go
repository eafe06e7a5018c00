package domain

import "time"

// LoanPeriod is how long a borrow lasts before due_date. Informational only:
// nothing enforces it, matching every observed deployment.
const LoanPeriod = 14 * 24 * time.Hour

type Loan struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	BookID     uint       `gorm:"not null;index" json:"book_id"`
	BorrowedAt time.Time  `gorm:"not null" json:"borrowed_at"`
	DueDate    time.Time  `gorm:"not null" json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at"`
}

func (Loan) TableName() string { return "loan" }

// Outstanding reports whether the loan has not been returned yet.
func (l *Loan) Outstanding() bool { return l.ReturnedAt == nil }

// LoanDetail is a user's loan joined with its book summary for display.
type LoanDetail struct {
	ID         uint       `json:"id"`
	BookID     uint       `json:"book_id"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueDate    time.Time  `json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at"`
	BookTitle  string     `json:"-"`
	BookAuthor string     `json:"-"`
	BookGenre  string     `json:"-"`
}

// AdminLoanRow is the denormalized row the admin listing shows.
type AdminLoanRow struct {
	ID         uint       `json:"id"`
	UserID     uint       `json:"user_id"`
	BookID     uint       `json:"book_id"`
	UserEmail  string     `json:"user_email"`
	BookTitle  string     `json:"book_title"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueDate    time.Time  `json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at"`
}

type LoanRepository interface {
	// Borrow atomically verifies the book exists, that no outstanding loan
	// for (userID, bookID) is present, and inserts the new loan. Exactly one
	// of two concurrent calls for the same pair may succeed.
	Borrow(userID, bookID uint, now time.Time) (*Loan, error)
	FindByID(id uint) (*Loan, error)
	ListByUser(userID uint) ([]LoanDetail, error)
	ListAll() ([]AdminLoanRow, error)
	Update(l *Loan) error
	Delete(id uint) error
}
