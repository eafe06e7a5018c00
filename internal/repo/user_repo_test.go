package repo

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booknest/internal/domain"
	"booknest/internal/testutil"
)

func TestUserDeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	userID, bookID := seedUserAndBook(t, db)
	users := NewUserRepo(db)
	loans := NewLoanRepo(db)
	entries := NewReadingListRepo(db)

	_, err := loans.Borrow(userID, bookID, time.Now().UTC())
	require.NoError(t, err)
	_, err = entries.Add(userID, bookID, "note")
	require.NoError(t, err)

	require.NoError(t, users.DeleteCascade(userID))

	u, err := users.FindByID(userID)
	require.NoError(t, err)
	assert.Nil(t, u)

	var loanCount, entryCount int64
	require.NoError(t, db.Model(&domain.Loan{}).Where("user_id = ?", userID).Count(&loanCount).Error)
	require.NoError(t, db.Model(&domain.ReadingListEntry{}).Where("user_id = ?", userID).Count(&entryCount).Error)
	assert.Zero(t, loanCount)
	assert.Zero(t, entryCount)
}

func TestUserDeleteCascadeUnknownUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := NewUserRepo(db)

	err := users.DeleteCascade(123)
	var ae *domain.AppError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, domain.CodeNotFound, ae.Code)
}

func TestBookDeleteCascades(t *testing.T) {
	db := testutil.NewTestDB(t)
	userID, bookID := seedUserAndBook(t, db)
	books := NewBookRepo(db)
	loans := NewLoanRepo(db)

	_, err := loans.Borrow(userID, bookID, time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, books.DeleteCascade(bookID))

	var loanCount int64
	require.NoError(t, db.Model(&domain.Loan{}).Where("book_id = ?", bookID).Count(&loanCount).Error)
	assert.Zero(t, loanCount)
}

func TestFindByUsernameOrEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedUserAndBook(t, db)
	users := NewUserRepo(db)

	byName, err := users.FindByUsernameOrEmail("alice", "other@x.com")
	require.NoError(t, err)
	require.NotNil(t, byName)

	byEmail, err := users.FindByUsernameOrEmail("someone", "alice@x.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)

	none, err := users.FindByUsernameOrEmail("bob", "bob@x.com")
	require.NoError(t, err)
	assert.Nil(t, none)
}
