package domain

type ReadingListEntry struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	BookID uint   `gorm:"not null;index" json:"book_id"`
	Note   string `gorm:"size:1024" json:"note"`
}

func (ReadingListEntry) TableName() string { return "reading_list" }

// ReadingListDetail is an entry joined with its book summary.
type ReadingListDetail struct {
	ID         uint   `json:"id"`
	BookID     uint   `json:"book_id"`
	Note       string `json:"note"`
	BookTitle  string `json:"-"`
	BookAuthor string `json:"-"`
	BookGenre  string `json:"-"`
}

type ReadingListRepository interface {
	// Add atomically verifies the book exists and that no entry for
	// (userID, bookID) is present before inserting. The pair uniqueness is
	// enforced here at write time, not by a declared index.
	Add(userID, bookID uint, note string) (*ReadingListEntry, error)
	FindByID(id uint) (*ReadingListEntry, error)
	ListByUser(userID uint) ([]ReadingListDetail, error)
	Update(e *ReadingListEntry) error
	Delete(id uint) error
}
