package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-membership/library/internal/model"
)

type bookRepository struct {
	base
}

var bookColumns = []string{"id", "isbn", "title", "year", "author", "type", "genre", "value", "deleted"}

func (r *bookRepository) Get(ctx context.Context, id int64) (*model.Book, error) {
	return getOne[model.Book](ctx, r.base, qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}))
}

func (r *bookRepository) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	return getOne[model.Book](ctx, r.base, byNaturalKey(qb.Select(bookColumns...).From(booksTableName), "isbn", isbn))
}

func (r *bookRepository) List(ctx context.Context, limit uint64, includeDeleted bool) ([]*model.Book, error) {
	return getMany[model.Book](ctx, r.base, listQuery(qb.Select(bookColumns...).From(booksTableName), limit, includeDeleted))
}

func (r *bookRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	return getOne[model.Book](ctx, r.base, qb.Insert(booksTableName).
		Columns("isbn", "title", "year", "author", "type", "genre", "value", "deleted").
		Values(book.ISBN, book.Title, book.Year, book.Author, book.Type, book.Genre, book.Value, book.Deleted).
		Suffix("returning "+columnList(bookColumns)))
}

func (r *bookRepository) Update(ctx context.Context, book *model.Book) (*model.Book, error) {
	return getOne[model.Book](ctx, r.base, qb.Update(booksTableName).
		SetMap(map[string]interface{}{
			"isbn":    book.ISBN,
			"title":   book.Title,
			"year":    book.Year,
			"author":  book.Author,
			"type":    book.Type,
			"genre":   book.Genre,
			"value":   book.Value,
			"deleted": book.Deleted,
		}).
		Where(sq.Eq{"id": book.ID}).
		Suffix("returning "+columnList(bookColumns)))
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.base, booksTableName, id)
}
