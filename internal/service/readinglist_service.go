package service

import (
	"booknest/internal/domain"
)

type ReadingListService struct {
	entries domain.ReadingListRepository
}

func NewReadingListService(entries domain.ReadingListRepository) *ReadingListService {
	return &ReadingListService{entries: entries}
}

func (s *ReadingListService) Add(userID, bookID uint, note string) (*domain.ReadingListEntry, error) {
	if bookID == 0 {
		return nil, domain.InvalidInput("book_id is required")
	}
	return s.entries.Add(userID, bookID, note)
}

func (s *ReadingListService) List(userID uint) ([]domain.ReadingListDetail, error) {
	rows, err := s.entries.ListByUser(userID)
	if err != nil {
		return nil, domain.Internal("list reading list failed", err)
	}
	return rows, nil
}

// UpdateNote replaces the note when one is given; nil leaves it unchanged.
func (s *ReadingListService) UpdateNote(entryID, callerID uint, note *string) (*domain.ReadingListEntry, error) {
	e, err := s.owned(entryID, callerID)
	if err != nil {
		return nil, err
	}
	if note != nil {
		e.Note = *note
		if err := s.entries.Update(e); err != nil {
			return nil, domain.Internal("update entry failed", err)
		}
	}
	return e, nil
}

func (s *ReadingListService) Remove(entryID, callerID uint) error {
	if _, err := s.owned(entryID, callerID); err != nil {
		return err
	}
	if err := s.entries.Delete(entryID); err != nil {
		return domain.Internal("delete entry failed", err)
	}
	return nil
}

// owned loads an entry, existence first, then ownership.
func (s *ReadingListService) owned(entryID, callerID uint) (*domain.ReadingListEntry, error) {
	e, err := s.entries.FindByID(entryID)
	if err != nil {
		return nil, domain.Internal("lookup failed", err)
	}
	if e == nil {
		return nil, domain.NotFound("reading list entry not found")
	}
	if e.UserID != callerID {
		return nil, domain.Forbidden("not authorized for this entry")
	}
	return e, nil
}
