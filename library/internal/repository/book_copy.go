package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-membership/library/internal/model"
)

type bookCopyRepository struct {
	base
}

var bookCopyColumns = []string{"id", "book_id", "floor", "bookcase", "shelve", "deleted"}

// bookCopyRow is the flat table shape; floor, bookcase and shelve are the embedded Location.
type bookCopyRow struct {
	ID       int64 `db:"id"`
	BookID   int64 `db:"book_id"`
	Floor    *int  `db:"floor"`
	Bookcase *int  `db:"bookcase"`
	Shelve   *int  `db:"shelve"`
	Deleted  bool  `db:"deleted"`
}

func toBookCopyRow(c *model.BookCopy) bookCopyRow {
	row := bookCopyRow{ID: c.ID, BookID: c.BookID, Deleted: c.Deleted}
	if c.Location != nil {
		row.Floor, row.Bookcase, row.Shelve = c.Location.Floor, c.Location.Bookcase, c.Location.Shelve
	}
	return row
}

func (row *bookCopyRow) toModel() *model.BookCopy {
	c := &model.BookCopy{ID: row.ID, BookID: row.BookID}
	c.Deleted = row.Deleted
	if row.Floor != nil || row.Bookcase != nil || row.Shelve != nil {
		c.Location = &model.Location{Floor: row.Floor, Bookcase: row.Bookcase, Shelve: row.Shelve}
	}
	return c
}

func (r *bookCopyRepository) one(ctx context.Context, q sq.Sqlizer) (*model.BookCopy, error) {
	row, err := getOne[bookCopyRow](ctx, r.base, q)
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

func (r *bookCopyRepository) many(ctx context.Context, q sq.Sqlizer) ([]*model.BookCopy, error) {
	rows, err := getMany[bookCopyRow](ctx, r.base, q)
	if err != nil {
		return nil, err
	}
	copies := make([]*model.BookCopy, 0, len(rows))
	for _, row := range rows {
		copies = append(copies, row.toModel())
	}
	return copies, nil
}

func (r *bookCopyRepository) Get(ctx context.Context, id int64) (*model.BookCopy, error) {
	return r.one(ctx, qb.Select(bookCopyColumns...).
		From(bookCopiesTableName).
		Where(sq.Eq{"id": id}))
}

func (r *bookCopyRepository) List(ctx context.Context, limit uint64, includeDeleted bool) ([]*model.BookCopy, error) {
	return r.many(ctx, listQuery(qb.Select(bookCopyColumns...).From(bookCopiesTableName), limit, includeDeleted))
}

func (r *bookCopyRepository) ListByBook(ctx context.Context, bookID int64, limit uint64) ([]*model.BookCopy, error) {
	return r.many(ctx, listQuery(qb.Select(bookCopyColumns...).
		From(bookCopiesTableName).
		Where(sq.Eq{"book_id": bookID}), limit, false))
}

func (r *bookCopyRepository) Create(ctx context.Context, c *model.BookCopy) (*model.BookCopy, error) {
	row := toBookCopyRow(c)
	return r.one(ctx, qb.Insert(bookCopiesTableName).
		Columns("book_id", "floor", "bookcase", "shelve", "deleted").
		Values(row.BookID, row.Floor, row.Bookcase, row.Shelve, row.Deleted).
		Suffix("returning "+columnList(bookCopyColumns)))
}

func (r *bookCopyRepository) Update(ctx context.Context, c *model.BookCopy) (*model.BookCopy, error) {
	row := toBookCopyRow(c)
	return r.one(ctx, qb.Update(bookCopiesTableName).
		SetMap(map[string]interface{}{
			"book_id":  row.BookID,
			"floor":    row.Floor,
			"bookcase": row.Bookcase,
			"shelve":   row.Shelve,
			"deleted":  row.Deleted,
		}).
		Where(sq.Eq{"id": row.ID}).
		Suffix("returning "+columnList(bookCopyColumns)))
}

func (r *bookCopyRepository) Delete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.base, bookCopiesTableName, id)
}
