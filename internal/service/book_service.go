package service

import (
	"strings"

	"booknest/internal/domain"
)

type BookService struct {
	books domain.BookRepository
}

func NewBookService(books domain.BookRepository) *BookService {
	return &BookService{books: books}
}

func (s *BookService) List() ([]domain.Book, error) {
	books, err := s.books.List()
	if err != nil {
		return nil, domain.Internal("list books failed", err)
	}
	return books, nil
}

func (s *BookService) Search(f domain.BookFilter) ([]domain.Book, error) {
	books, err := s.books.Search(f)
	if err != nil {
		return nil, domain.Internal("search books failed", err)
	}
	return books, nil
}

func (s *BookService) Create(title, author, genre string) (*domain.Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" || author == "" {
		return nil, domain.InvalidInput("title and author are required")
	}
	b := &domain.Book{Title: title, Author: author, Genre: strings.TrimSpace(genre)}
	if err := s.books.Create(b); err != nil {
		return nil, domain.Internal("create book failed", err)
	}
	return b, nil
}

// BookUpdate carries the optional fields of a PATCH. Nil means unchanged.
type BookUpdate struct {
	Title  *string
	Author *string
	Genre  *string
}

func (s *BookService) Update(id uint, in BookUpdate) (*domain.Book, error) {
	b, err := s.books.FindByID(id)
	if err != nil {
		return nil, domain.Internal("lookup failed", err)
	}
	if b == nil {
		return nil, domain.NotFound("book not found")
	}
	if in.Title != nil {
		b.Title = strings.TrimSpace(*in.Title)
	}
	if in.Author != nil {
		b.Author = strings.TrimSpace(*in.Author)
	}
	if in.Genre != nil {
		b.Genre = strings.TrimSpace(*in.Genre)
	}
	if b.Title == "" || b.Author == "" {
		return nil, domain.InvalidInput("title and author must not be empty")
	}
	if err := s.books.Update(b); err != nil {
		return nil, domain.Internal("update book failed", err)
	}
	return b, nil
}

// Delete removes the book and cascades its loans and reading-list entries.
func (s *BookService) Delete(id uint) error {
	return s.books.DeleteCascade(id)
}
