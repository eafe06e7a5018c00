package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"booknest/internal/domain"
	"booknest/internal/testutil"
)

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	books := []domain.Book{
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Fiction"},
		{Title: "1984", Author: "George Orwell", Genre: "Dystopian"},
		{Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "Historical Fiction"},
	}
	for i := range books {
		require.NoError(t, db.Create(&books[i]).Error)
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedCatalog(t, db)
	books := NewBookRepo(db)

	// "Historical Fiction" and "Fiction" both match genre=fiction
	got, err := books.Search(domain.BookFilter{Genre: "fiction"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = books.Search(domain.BookFilter{Author: "ORWELL"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1984", got[0].Title)
}

func TestSearchFiltersCombineWithAND(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedCatalog(t, db)
	books := NewBookRepo(db)

	got, err := books.Search(domain.BookFilter{Genre: "fiction", Author: "lee"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "To Kill a Mockingbird", got[0].Title)
}

func TestSearchEmptyFiltersReturnAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	seedCatalog(t, db)
	books := NewBookRepo(db)

	got, err := books.Search(domain.BookFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
