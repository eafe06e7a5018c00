package seed

import (
	"go.uber.org/zap"

	"booknest/internal/domain"
	"booknest/pkg/utils"
)

// EnsureAdmin creates the configured admin account if no user with that email
// exists yet. Safe to run on every startup.
func EnsureAdmin(users domain.UserRepository, username, email, password string, l *zap.Logger) error {
	if email == "" || password == "" {
		return nil
	}
	existing, err := users.FindByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	u := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := users.Create(u); err != nil {
		return err
	}
	l.Info("admin account seeded", zap.String("email", email))
	return nil
}

// DemoBooks is the starter catalog inserted by cmd/seed when empty.
var DemoBooks = []domain.Book{
	{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Fiction"},
	{Title: "1984", Author: "George Orwell", Genre: "Dystopian"},
	{Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "Historical"},
	{Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy"},
	{Title: "Atomic Habits", Author: "James Clear", Genre: "Self-help"},
}

// EnsureDemoBooks fills an empty catalog with the demo titles.
func EnsureDemoBooks(books domain.BookRepository, l *zap.Logger) error {
	existing, err := books.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for i := range DemoBooks {
		b := DemoBooks[i]
		if err := books.Create(&b); err != nil {
			return err
		}
	}
	l.Info("demo catalog seeded", zap.Int("books", len(DemoBooks)))
	return nil
}
