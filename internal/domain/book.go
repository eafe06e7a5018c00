package domain

type Book struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Title  string `gorm:"size:255;not null" json:"title"`
	Author string `gorm:"size:255;not null" json:"author"`
	Genre  string `gorm:"size:64" json:"genre"`
}

func (Book) TableName() string { return "book" }

// BookFilter holds the /books/search query. Empty fields are no-ops; set
// fields match case-insensitive substrings and combine with AND.
type BookFilter struct {
	Title  string
	Author string
	Genre  string
}

type BookRepository interface {
	Create(b *Book) error
	FindByID(id uint) (*Book, error)
	List() ([]Book, error)
	Search(f BookFilter) ([]Book, error)
	Update(b *Book) error
	// DeleteCascade removes the book and every loan / reading-list row
	// referencing it inside one transaction.
	DeleteCascade(id uint) error
}
