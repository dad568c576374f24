package repository

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-membership/library/internal/errs"
	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/pkg/postgres"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

// Get returns the row whatever its deleted flag; List hides deleted rows unless includeDeleted is set.

type BookRepository interface {
	Get(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, limit uint64, includeDeleted bool) ([]*model.Book, error)
	Create(ctx context.Context, book *model.Book) (*model.Book, error)
	Update(ctx context.Context, book *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)
}

type BookCopyRepository interface {
	Get(ctx context.Context, id int64) (*model.BookCopy, error)
	List(ctx context.Context, limit uint64, includeDeleted bool) ([]*model.BookCopy, error)
	Create(ctx context.Context, bookCopy *model.BookCopy) (*model.BookCopy, error)
	Update(ctx context.Context, bookCopy *model.BookCopy) (*model.BookCopy, error)
	Delete(ctx context.Context, id int64) error
	ListByBook(ctx context.Context, bookID int64, limit uint64) ([]*model.BookCopy, error)
}

type CustomerRepository interface {
	Get(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context, limit uint64, includeDeleted bool) ([]*model.Customer, error)
	Create(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id int64) error
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
}

type MemberRepository interface {
	Get(ctx context.Context, id int64) (*model.Member, error)
	List(ctx context.Context, limit uint64, includeDeleted bool) ([]*model.Member, error)
	Create(ctx context.Context, member *model.Member) (*model.Member, error)
	Update(ctx context.Context, member *model.Member) (*model.Member, error)
	Delete(ctx context.Context, id int64) error
	GetByEmail(ctx context.Context, email string) (*model.Member, error)
	ListByMembership(ctx context.Context, membershipID int64, limit uint64) ([]*model.Member, error)
}

type MembershipRepository interface {
	Get(ctx context.Context, id int64) (*model.Membership, error)
	List(ctx context.Context, limit uint64, includeDeleted bool) ([]*model.Membership, error)
	Create(ctx context.Context, membership *model.Membership) (*model.Membership, error)
	Update(ctx context.Context, membership *model.Membership) (*model.Membership, error)
	Delete(ctx context.Context, id int64) error
}

type MembershipTypeRepository interface {
	Get(ctx context.Context, id int64) (*model.MembershipType, error)
	List(ctx context.Context, limit uint64, includeDeleted bool) ([]*model.MembershipType, error)
	Create(ctx context.Context, membershipType *model.MembershipType) (*model.MembershipType, error)
	Update(ctx context.Context, membershipType *model.MembershipType) (*model.MembershipType, error)
	Delete(ctx context.Context, id int64) error
	GetByType(ctx context.Context, kind model.MembershipKind) (*model.MembershipType, error)
}

type UserRepository interface {
	Get(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context, limit uint64) ([]*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
}

type Repository struct {
	Books           BookRepository
	BookCopies      BookCopyRepository
	Customers       CustomerRepository
	Members         MemberRepository
	Memberships     MembershipRepository
	MembershipTypes MembershipTypeRepository
	Users           UserRepository
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*Repository, error) {
	b := base{db: db, log: log.Named("repo")}
	return &Repository{
		Books:           &bookRepository{base: b},
		BookCopies:      &bookCopyRepository{base: b},
		Customers:       &customerRepository{base: b},
		Members:         &memberRepository{base: b},
		Memberships:     &membershipRepository{base: b},
		MembershipTypes: &membershipTypeRepository{base: b},
		Users:           &userRepository{base: b},
	}, nil
}

const (
	booksTableName           = `books`
	bookCopiesTableName      = `book_copies`
	customersTableName       = `customers`
	membersTableName         = `members`
	membershipsTableName     = `memberships`
	membershipTypesTableName = `membership_types`
	usersTableName           = `users`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type base struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func (b base) conn(ctx context.Context) postgres.Querier {
	return postgres.Conn(ctx, b.db)
}

// getOne runs a builder expecting a single row scanned by name into T.
func getOne[T any](ctx context.Context, b base, q sq.Sqlizer) (*T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := b.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		b.log.Error("getOne", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return nil, mapErr(err)
	}
	return item, nil
}

func getMany[T any](ctx context.Context, b base, q sq.Sqlizer) ([]*T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	b.log.Debug("getMany", zap.String("query", query), zap.Any("args", args))

	rows, err := b.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, mapErr(err)
	}
	return items, nil
}

func softDelete(ctx context.Context, b base, table string, id int64) error {
	query, args, err := softDeleteQuery(table, id).ToSql()
	if err != nil {
		return err
	}
	tag, err := b.conn(ctx).Exec(ctx, query, args...)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func softDeleteQuery(table string, id int64) sq.UpdateBuilder {
	return qb.Update(table).
		Set("deleted", true).
		Where(sq.Eq{"id": id})
}

func columnList(columns []string) string {
	return strings.Join(columns, ", ")
}

// listQuery applies the soft-delete filter and the limit.
func listQuery(q sq.SelectBuilder, limit uint64, includeDeleted bool) sq.SelectBuilder {
	if !includeDeleted {
		q = q.Where(sq.Eq{"deleted": false})
	}
	return q.OrderBy("id").Limit(limit)
}

// byNaturalKey prefers the live row when the key is shared with deleted ones.
func byNaturalKey(q sq.SelectBuilder, column string, value any) sq.SelectBuilder {
	return q.Where(sq.Eq{column: value}).OrderBy("deleted", "id desc").Limit(1)
}

// mapErr turns unique violations raised by the partial natural-key indexes into ErrConflict.
func mapErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errs.Conflict("%s already exists", constraintSubject(pgErr.ConstraintName))
		case pgerrcode.ForeignKeyViolation:
			return errs.NotFound("referenced row does not exist (%s)", pgErr.ConstraintName)
		}
	}
	return err
}

func constraintSubject(constraint string) string {
	switch constraint {
	case "books_isbn_live_idx":
		return "book with this isbn"
	case "customers_email_live_idx":
		return "customer with this email address"
	case "members_email_live_idx":
		return "member with this email address"
	case "membership_types_type_live_idx":
		return "membership type with this type"
	case "users_username_key":
		return "user with this username"
	default:
		return "row"
	}
}
