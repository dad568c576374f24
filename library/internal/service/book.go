package service

import (
	"context"

	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/library/internal/repository"
)

type BookService struct {
	crud[*model.Book]
	repo repository.BookRepository
}

// Add inserts a book, or brings back a deleted book with the same ISBN under its old id.
func (s *BookService) Add(ctx context.Context, book *model.Book) (*model.Book, error) {
	return s.add(ctx, book, func(ctx context.Context) (bool, error) {
		return s.reconcile(ctx, book, "isbn", book.ISBN, s.byISBN(book.ISBN))
	})
}

func (s *BookService) FullUpdate(ctx context.Context, id int64, book *model.Book) (*model.Book, error) {
	return s.fullUpdate(ctx, id, book, func(ctx context.Context, existing *model.Book) error {
		if existing.ISBN == book.ISBN {
			return nil
		}
		return s.ensureUnique(ctx, id, "isbn", book.ISBN, s.byISBN(book.ISBN))
	})
}

func (s *BookService) byISBN(isbn string) func(ctx context.Context) (*model.Book, error) {
	return func(ctx context.Context) (*model.Book, error) {
		return s.repo.GetByISBN(ctx, isbn)
	}
}
