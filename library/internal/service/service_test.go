package service

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/library/internal/repository"
	mock_repository "github.com/Astemirdum/library-membership/library/internal/repository/mocks"
	"github.com/Astemirdum/library-membership/pkg/auth"
)

type txStub struct{}

func (txStub) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type publisherStub struct {
	mu     sync.Mutex
	events []model.Event
}

func (p *publisherStub) Publish(_ context.Context, event model.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *publisherStub) actions() []model.EventAction {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.EventAction, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Action)
	}
	return out
}

type repoMocks struct {
	books           *mock_repository.MockBookRepository
	bookCopies      *mock_repository.MockBookCopyRepository
	customers       *mock_repository.MockCustomerRepository
	members         *mock_repository.MockMemberRepository
	memberships     *mock_repository.MockMembershipRepository
	membershipTypes *mock_repository.MockMembershipTypeRepository
	users           *mock_repository.MockUserRepository
}

func newTestService(t *testing.T) (*Service, repoMocks, *publisherStub) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := repoMocks{
		books:           mock_repository.NewMockBookRepository(ctrl),
		bookCopies:      mock_repository.NewMockBookCopyRepository(ctrl),
		customers:       mock_repository.NewMockCustomerRepository(ctrl),
		members:         mock_repository.NewMockMemberRepository(ctrl),
		memberships:     mock_repository.NewMockMembershipRepository(ctrl),
		membershipTypes: mock_repository.NewMockMembershipTypeRepository(ctrl),
		users:           mock_repository.NewMockUserRepository(ctrl),
	}
	repo := &repository.Repository{
		Books:           m.books,
		BookCopies:      m.bookCopies,
		Customers:       m.customers,
		Members:         m.members,
		Memberships:     m.memberships,
		MembershipTypes: m.membershipTypes,
		Users:           m.users,
	}
	pub := &publisherStub{}
	issuer := auth.NewIssuer(auth.Config{Secret: "test", TokenTTL: time.Hour})
	return NewService(repo, txStub{}, pub, issuer, zap.NewNop()), m, pub
}

func randomBook() *model.Book {
	year := 1990 + randomdata.Number(0, 30)
	return &model.Book{
		ISBN:   "978" + strconv.Itoa(randomdata.Number(1000000000, 9999999999)),
		Title:  randomdata.SillyName(),
		Year:   &year,
		Author: randomdata.FullName(randomdata.RandomGender),
		Genre:  "fiction",
		Value:  randomdata.Number(0, 100000),
	}
}

func randomMember() *model.Member {
	birthday := model.NewDate(1980+randomdata.Number(0, 20), time.March, 1+randomdata.Number(0, 27))
	return &model.Member{
		Name:         randomdata.FullName(randomdata.RandomGender),
		HomeAddress:  randomdata.Address(),
		EmailAddress: randomdata.Email(),
		Birthday:     &birthday,
	}
}

func randomMembership(typeID int64) *model.Membership {
	start := model.NewDate(2020, time.January, 1+randomdata.Number(0, 27))
	return &model.Membership{
		MembershipTypeID: typeID,
		StartDate:        start,
		EndDate:          model.Date{Time: start.AddDate(1, 0, 0)},
	}
}

func int64Ptr(v int64) *int64 { return &v }

func deleted[T model.Entity](ent T) T {
	ent.SetDeleted(true)
	return ent
}

func echoBook(_ context.Context, b *model.Book) (*model.Book, error) {
	out := *b
	return &out, nil
}

func echoMember(_ context.Context, m *model.Member) (*model.Member, error) {
	out := *m
	return &out, nil
}
