package service

import (
	"time"

	"booknest/internal/domain"
)

type LoanService struct {
	loans domain.LoanRepository
}

func NewLoanService(loans domain.LoanRepository) *LoanService {
	return &LoanService{loans: loans}
}

// Borrow transitions (user, book) from NoLoan or Returned to Outstanding.
// Outstanding to Outstanding is rejected; the repo enforces it atomically.
func (s *LoanService) Borrow(userID, bookID uint) (*domain.Loan, error) {
	if bookID == 0 {
		return nil, domain.InvalidInput("book_id is required")
	}
	return s.loans.Borrow(userID, bookID, time.Now().UTC())
}

// Return sets returned_at once. Owner only; admins get no override here.
func (s *LoanService) Return(loanID, callerID uint) (*domain.Loan, error) {
	l, err := s.loans.FindByID(loanID)
	if err != nil {
		return nil, domain.Internal("lookup failed", err)
	}
	if l == nil {
		return nil, domain.NotFound("loan not found")
	}
	if l.UserID != callerID {
		return nil, domain.Forbidden("not authorized to return this book")
	}
	if !l.Outstanding() {
		return nil, domain.AlreadyReturned()
	}
	now := time.Now().UTC()
	l.ReturnedAt = &now
	if err := s.loans.Update(l); err != nil {
		return nil, domain.Internal("update loan failed", err)
	}
	return l, nil
}

// Delete is allowed for the owner or an admin. Existence is checked before
// ownership so a missing loan is always 404.
func (s *LoanService) Delete(loanID, callerID uint, isAdmin bool) error {
	l, err := s.loans.FindByID(loanID)
	if err != nil {
		return domain.Internal("lookup failed", err)
	}
	if l == nil {
		return domain.NotFound("loan not found")
	}
	if l.UserID != callerID && !isAdmin {
		return domain.Forbidden("not authorized to delete this loan")
	}
	if err := s.loans.Delete(loanID); err != nil {
		return domain.Internal("delete loan failed", err)
	}
	return nil
}

func (s *LoanService) ListAll() ([]domain.AdminLoanRow, error) {
	rows, err := s.loans.ListAll()
	if err != nil {
		return nil, domain.Internal("list loans failed", err)
	}
	return rows, nil
}

func (s *LoanService) ListMine(userID uint) ([]domain.LoanDetail, error) {
	rows, err := s.loans.ListByUser(userID)
	if err != nil {
		return nil, domain.Internal("list loans failed", err)
	}
	return rows, nil
}
