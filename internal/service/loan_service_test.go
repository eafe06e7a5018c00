package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"booknest/internal/domain"
	"booknest/internal/repo"
	"booknest/internal/testutil"
)

func seedLending(t *testing.T, db *gorm.DB) (owner, other, bookID uint, svc *LoanService) {
	t.Helper()
	u1 := &domain.User{Username: "alice", Email: "alice@x.com", PasswordHash: "h"}
	u2 := &domain.User{Username: "bob", Email: "bob@x.com", PasswordHash: "h"}
	require.NoError(t, db.Create(u1).Error)
	require.NoError(t, db.Create(u2).Error)
	b := &domain.Book{Title: "1984", Author: "Orwell"}
	require.NoError(t, db.Create(b).Error)
	return u1.ID, u2.ID, b.ID, NewLoanService(repo.NewLoanRepo(db))
}

func appCode(t *testing.T, err error) int {
	t.Helper()
	var ae *domain.AppError
	require.True(t, errors.As(err, &ae), "expected AppError, got %v", err)
	return ae.Code
}

func TestReturnIsOwnerOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner, other, bookID, svc := seedLending(t, db)

	l, err := svc.Borrow(owner, bookID)
	require.NoError(t, err)

	_, err = svc.Return(l.ID, other)
	assert.Equal(t, domain.CodeForbidden, appCode(t, err))

	// admin gets no override on return either; there is no admin path at all
	got, err := svc.Return(l.ID, owner)
	require.NoError(t, err)
	assert.NotNil(t, got.ReturnedAt)
}

func TestReturnTwiceFailsAndKeepsTimestamp(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner, _, bookID, svc := seedLending(t, db)

	l, err := svc.Borrow(owner, bookID)
	require.NoError(t, err)

	first, err := svc.Return(l.ID, owner)
	require.NoError(t, err)
	require.NotNil(t, first.ReturnedAt)
	stamp := *first.ReturnedAt

	_, err = svc.Return(l.ID, owner)
	assert.Equal(t, domain.CodeInvalidInput, appCode(t, err))

	var reloaded domain.Loan
	require.NoError(t, db.First(&reloaded, l.ID).Error)
	require.NotNil(t, reloaded.ReturnedAt)
	assert.True(t, reloaded.ReturnedAt.Equal(stamp), "returned_at must be set exactly once")
}

func TestReturnUnknownLoanIsNotFoundBeforeOwnership(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, other, _, svc := seedLending(t, db)

	_, err := svc.Return(999, other)
	assert.Equal(t, domain.CodeNotFound, appCode(t, err))
}

func TestDeleteOwnerOrAdmin(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner, other, bookID, svc := seedLending(t, db)

	l, err := svc.Borrow(owner, bookID)
	require.NoError(t, err)

	// stranger, not admin
	err = svc.Delete(l.ID, other, false)
	assert.Equal(t, domain.CodeForbidden, appCode(t, err))

	// stranger with admin claim
	require.NoError(t, svc.Delete(l.ID, other, true))

	// owner
	l2, err := svc.Borrow(owner, bookID)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(l2.ID, owner, false))

	err = svc.Delete(l2.ID, owner, false)
	assert.Equal(t, domain.CodeNotFound, appCode(t, err))
}

func TestBorrowRequiresBookID(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner, _, _, svc := seedLending(t, db)

	_, err := svc.Borrow(owner, 0)
	assert.Equal(t, domain.CodeInvalidInput, appCode(t, err))
}
