package repo

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"booknest/internal/domain"
	"booknest/internal/testutil"
)

func seedUserAndBook(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	u := &domain.User{Username: "alice", Email: "alice@x.com", PasswordHash: "h"}
	require.NoError(t, db.Create(u).Error)
	b := &domain.Book{Title: "1984", Author: "Orwell", Genre: "Dystopian"}
	require.NoError(t, db.Create(b).Error)
	return u.ID, b.ID
}

func TestBorrowCreatesOutstandingLoan(t *testing.T) {
	db := testutil.NewTestDB(t)
	userID, bookID := seedUserAndBook(t, db)
	loans := NewLoanRepo(db)

	now := time.Now().UTC()
	l, err := loans.Borrow(userID, bookID, now)
	require.NoError(t, err)
	assert.Equal(t, userID, l.UserID)
	assert.Equal(t, bookID, l.BookID)
	assert.True(t, l.Outstanding())
	assert.Equal(t, now.Add(domain.LoanPeriod), l.DueDate)
}

func TestBorrowUnknownBook(t *testing.T) {
	db := testutil.NewTestDB(t)
	userID, _ := seedUserAndBook(t, db)
	loans := NewLoanRepo(db)

	_, err := loans.Borrow(userID, 9999, time.Now().UTC())
	var ae *domain.AppError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, domain.CodeNotFound, ae.Code)
}

func TestBorrowRejectsSecondOutstanding(t *testing.T) {
	db := testutil.NewTestDB(t)
	userID, bookID := seedUserAndBook(t, db)
	loans := NewLoanRepo(db)

	_, err := loans.Borrow(userID, bookID, time.Now().UTC())
	require.NoError(t, err)

	_, err = loans.Borrow(userID, bookID, time.Now().UTC())
	var ae *domain.AppError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, domain.CodeInvalidInput, ae.Code)
	assert.Equal(t, "you already borrowed this book", ae.Msg)
}

func TestBorrowAgainAfterReturn(t *testing.T) {
	db := testutil.NewTestDB(t)
	userID, bookID := seedUserAndBook(t, db)
	loans := NewLoanRepo(db)

	first, err := loans.Borrow(userID, bookID, time.Now().UTC())
	require.NoError(t, err)

	now := time.Now().UTC()
	first.ReturnedAt = &now
	require.NoError(t, loans.Update(first))

	second, err := loans.Borrow(userID, bookID, time.Now().UTC())
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// the returned loan stays as history
	var total int64
	require.NoError(t, db.Model(&domain.Loan{}).Where("user_id = ? AND book_id = ?", userID, bookID).Count(&total).Error)
	assert.EqualValues(t, 2, total)
}

func TestConcurrentBorrowExactlyOneWins(t *testing.T) {
	db := testutil.NewTestDB(t)
	userID, bookID := seedUserAndBook(t, db)
	loans := NewLoanRepo(db)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = loans.Borrow(userID, bookID, time.Now().UTC())
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		}
	}
	assert.Equal(t, 1, wins)

	var outstanding int64
	require.NoError(t, db.Model(&domain.Loan{}).
		Where("user_id = ? AND book_id = ? AND returned_at IS NULL", userID, bookID).
		Count(&outstanding).Error)
	assert.EqualValues(t, 1, outstanding)
}

func TestListByUserJoinsBook(t *testing.T) {
	db := testutil.NewTestDB(t)
	userID, bookID := seedUserAndBook(t, db)
	loans := NewLoanRepo(db)

	_, err := loans.Borrow(userID, bookID, time.Now().UTC())
	require.NoError(t, err)

	rows, err := loans.ListByUser(userID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1984", rows[0].BookTitle)
	assert.Equal(t, "Orwell", rows[0].BookAuthor)
}

func TestListAllDenormalized(t *testing.T) {
	db := testutil.NewTestDB(t)
	userID, bookID := seedUserAndBook(t, db)
	loans := NewLoanRepo(db)

	_, err := loans.Borrow(userID, bookID, time.Now().UTC())
	require.NoError(t, err)

	rows, err := loans.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alice@x.com", rows[0].UserEmail)
	assert.Equal(t, "1984", rows[0].BookTitle)
}
