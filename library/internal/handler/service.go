package handler

import (
	"context"

	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ BookService           = (*service.BookService)(nil)
	_ BookCopyService       = (*service.BookCopyService)(nil)
	_ CustomerService       = (*service.CustomerService)(nil)
	_ MemberService         = (*service.MemberService)(nil)
	_ MembershipService     = (*service.MembershipService)(nil)
	_ MembershipTypeService = (*service.MembershipTypeService)(nil)
	_ UserService           = (*service.UserService)(nil)
)

type BookService interface {
	Get(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, limit int) ([]*model.Book, error)
	ListAll(ctx context.Context, limit int) ([]*model.Book, error)
	Add(ctx context.Context, book *model.Book) (*model.Book, error)
	FullUpdate(ctx context.Context, id int64, book *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type BookCopyService interface {
	Get(ctx context.Context, id int64) (*model.BookCopy, error)
	List(ctx context.Context, limit int) ([]*model.BookCopy, error)
	ListAll(ctx context.Context, limit int) ([]*model.BookCopy, error)
	Add(ctx context.Context, bookCopy *model.BookCopy, bookID *int64) (*model.BookCopy, error)
	FullUpdate(ctx context.Context, id int64, bookCopy *model.BookCopy) (*model.BookCopy, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListByBook(ctx context.Context, bookID int64, limit int) ([]*model.BookCopy, error)
}

type CustomerService interface {
	Get(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context, limit int) ([]*model.Customer, error)
	ListAll(ctx context.Context, limit int) ([]*model.Customer, error)
	Add(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	FullUpdate(ctx context.Context, id int64, customer *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type MemberService interface {
	Get(ctx context.Context, id int64) (*model.Member, error)
	List(ctx context.Context, limit int) ([]*model.Member, error)
	ListAll(ctx context.Context, limit int) ([]*model.Member, error)
	Add(ctx context.Context, member *model.Member, membershipID *int64) (*model.Member, error)
	FullUpdate(ctx context.Context, id int64, member *model.Member) (*model.Member, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Patch(ctx context.Context, id int64, ops []model.PatchOperation) (*model.Member, error)
}

type MembershipService interface {
	Get(ctx context.Context, id int64) (*model.Membership, error)
	List(ctx context.Context, limit int) ([]*model.Membership, error)
	ListAll(ctx context.Context, limit int) ([]*model.Membership, error)
	Add(ctx context.Context, membership *model.Membership, typeID *int64) (*model.Membership, error)
	FullUpdate(ctx context.Context, id int64, membership *model.Membership) (*model.Membership, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Members(ctx context.Context, id int64, limit int) ([]*model.Member, error)
}

type MembershipTypeService interface {
	Get(ctx context.Context, id int64) (*model.MembershipType, error)
	List(ctx context.Context, limit int) ([]*model.MembershipType, error)
	ListAll(ctx context.Context, limit int) ([]*model.MembershipType, error)
	Add(ctx context.Context, membershipType *model.MembershipType) (*model.MembershipType, error)
	FullUpdate(ctx context.Context, id int64, membershipType *model.MembershipType) (*model.MembershipType, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type UserService interface {
	Register(ctx context.Context, req model.UserCreateRequest) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context, limit int) ([]*model.User, error)
	Authorize(ctx context.Context, req model.AuthRequest) (*model.AuthResponse, error)
}

// Services is the set of domain services the router dispatches to.
type Services struct {
	Books           BookService
	BookCopies      BookCopyService
	Customers       CustomerService
	Members         MemberService
	Memberships     MembershipService
	MembershipTypes MembershipTypeService
	Users           UserService
}

func NewServices(svc *service.Service) Services {
	return Services{
		Books:           svc.Books,
		BookCopies:      svc.BookCopies,
		Customers:       svc.Customers,
		Members:         svc.Members,
		Memberships:     svc.Memberships,
		MembershipTypes: svc.MembershipTypes,
		Users:           svc.Users,
	}
}
