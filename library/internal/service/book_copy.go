package service

import (
	"context"

	"github.com/Astemirdum/library-membership/library/internal/errs"
	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/library/internal/repository"
)

type BookCopyService struct {
	crud[*model.BookCopy]
	repo  repository.BookCopyRepository
	books *BookService
}

// Get also fails when the book the copy belongs to has been deleted.
func (s *BookCopyService) Get(ctx context.Context, id int64) (*model.BookCopy, error) {
	return inTx(ctx, s.tx, func(ctx context.Context) (*model.BookCopy, error) {
		bookCopy, err := s.get(ctx, id)
		if err != nil {
			return nil, err
		}
		book, err := s.books.live(ctx, bookCopy.BookID)
		if err != nil {
			return nil, err
		}
		bookCopy.Book = book
		return bookCopy, nil
	})
}

// Add creates a copy of the live book bookID. Copies have no natural key, so nothing is restored.
func (s *BookCopyService) Add(ctx context.Context, bookCopy *model.BookCopy, bookID *int64) (*model.BookCopy, error) {
	if bookID == nil {
		return nil, errs.InvalidArgument("cannot add book copy without specifying a book ID")
	}
	bookCopy.Book = nil

	var book *model.Book
	out, err := s.add(ctx, bookCopy, func(ctx context.Context) (bool, error) {
		var err error
		if book, err = s.books.live(ctx, *bookID); err != nil {
			return false, err
		}
		bookCopy.BookID = book.ID
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	out.Book = book
	return out, nil
}

// FullUpdate keeps the current book when bookId is omitted.
func (s *BookCopyService) FullUpdate(ctx context.Context, id int64, bookCopy *model.BookCopy) (*model.BookCopy, error) {
	bookCopy.Book = nil
	return s.fullUpdate(ctx, id, bookCopy, func(ctx context.Context, existing *model.BookCopy) error {
		if bookCopy.BookID == 0 || bookCopy.BookID == existing.BookID {
			bookCopy.BookID = existing.BookID
			return nil
		}
		_, err := s.books.live(ctx, bookCopy.BookID)
		return err
	})
}

// ListByBook returns live copies of an existing book.
func (s *BookCopyService) ListByBook(ctx context.Context, bookID int64, limit int) ([]*model.BookCopy, error) {
	return inTx(ctx, s.tx, func(ctx context.Context) ([]*model.BookCopy, error) {
		if _, err := s.books.fetch(ctx, bookID); err != nil {
			return nil, err
		}
		copies, err := s.repo.ListByBook(ctx, bookID, listLimit(limit))
		if err != nil {
			return nil, s.storeErr("list by book", err)
		}
		return copies, nil
	})
}
