package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/library/internal/repository"
	"github.com/Astemirdum/library-membership/pkg/auth"
)

// DefaultListLimit bounds list calls made with a non-positive limit.
const DefaultListLimit = 50

type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher delivers lifecycle events. Delivery is best effort and never fails the caller.
type Publisher interface {
	Publish(ctx context.Context, event model.Event)
}

type Validator interface {
	Validate(i interface{}) error
}

type Service struct {
	Books           *BookService
	BookCopies      *BookCopyService
	Customers       *CustomerService
	Members         *MemberService
	Memberships     *MembershipService
	MembershipTypes *MembershipTypeService
	Users           *UserService
}

type deps struct {
	tx        Transactor
	validator Validator
	publisher Publisher
	log       *zap.Logger
}

func NewService(repo *repository.Repository, tx Transactor, publisher Publisher, issuer *auth.Issuer, log *zap.Logger) *Service {
	d := deps{
		tx:        tx,
		validator: model.NewValidator(),
		publisher: publisher,
		log:       log.Named("service"),
	}

	books := &BookService{crud: newCrud[*model.Book]("book", repo.Books, d), repo: repo.Books}
	membershipTypes := &MembershipTypeService{
		crud: newCrud[*model.MembershipType]("membership type", repo.MembershipTypes, d),
		repo: repo.MembershipTypes,
	}
	memberships := &MembershipService{
		crud:    newCrud[*model.Membership]("membership", repo.Memberships, d),
		types:   membershipTypes,
		members: repo.Members,
	}

	return &Service{
		Books: books,
		BookCopies: &BookCopyService{
			crud:  newCrud[*model.BookCopy]("book copy", repo.BookCopies, d),
			repo:  repo.BookCopies,
			books: books,
		},
		Customers: &CustomerService{
			crud: newCrud[*model.Customer]("customer", repo.Customers, d),
			repo: repo.Customers,
		},
		Members: &MemberService{
			crud:        newCrud[*model.Member]("member", repo.Members, d),
			repo:        repo.Members,
			memberships: memberships,
		},
		Memberships:     memberships,
		MembershipTypes: membershipTypes,
		Users: &UserService{
			deps:   d,
			repo:   repo.Users,
			issuer: issuer,
		},
	}
}

func inTx[R any](ctx context.Context, tx Transactor, fn func(ctx context.Context) (R, error)) (R, error) {
	var out R
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)
		return err
	})
	return out, err
}

func listLimit(limit int) uint64 {
	if limit <= 0 {
		return DefaultListLimit
	}
	return uint64(limit)
}
