package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-membership/library/internal/errs"
	"github.com/Astemirdum/library-membership/library/internal/model"
)

func TestBookCopyService_Add(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing book id", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)

		_, err := svc.BookCopies.Add(ctx, &model.BookCopy{}, nil)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		require.Equal(t, "cannot add book copy without specifying a book ID", err.Error())
	})

	t.Run("deleted book", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		m.books.EXPECT().Get(gomock.Any(), int64(2)).Return(deleted(&model.Book{ID: 2}), nil)

		_, err := svc.BookCopies.Add(ctx, &model.BookCopy{}, int64Ptr(2))
		require.ErrorIs(t, err, errs.ErrDeletedDependency)
		require.Equal(t, "book with id 2 has been deleted", err.Error())
	})

	t.Run("missing book", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		m.books.EXPECT().Get(gomock.Any(), int64(2)).Return(nil, errs.ErrNotFound)

		_, err := svc.BookCopies.Add(ctx, &model.BookCopy{}, int64Ptr(2))
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("invalid location", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)
		floor := model.NrOfFloors + 1
		bookCopy := &model.BookCopy{Location: &model.Location{Floor: &floor}}

		_, err := svc.BookCopies.Add(ctx, bookCopy, int64Ptr(2))
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("copy references the live book", func(t *testing.T) {
		t.Parallel()
		svc, m, pub := newTestService(t)
		book := randomBook()
		book.ID = 2
		location := model.NewLocation(1, 2, 3)

		m.books.EXPECT().Get(gomock.Any(), int64(2)).Return(book, nil)
		m.bookCopies.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *model.BookCopy) (*model.BookCopy, error) {
				require.Equal(t, int64(2), c.BookID)
				out := *c
				out.ID = 11
				return &out, nil
			})

		out, err := svc.BookCopies.Add(ctx, &model.BookCopy{Location: location}, int64Ptr(2))
		require.NoError(t, err)
		require.Equal(t, int64(11), out.ID)
		require.Equal(t, book, out.Book)
		require.Equal(t, []model.EventAction{model.EventCreated}, pub.actions())
	})
}

func TestBookCopyService_Get(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, m, _ := newTestService(t)

	m.bookCopies.EXPECT().Get(gomock.Any(), int64(11)).Return(&model.BookCopy{ID: 11, BookID: 2}, nil)
	m.books.EXPECT().Get(gomock.Any(), int64(2)).Return(deleted(&model.Book{ID: 2}), nil)

	_, err := svc.BookCopies.Get(ctx, 11)
	require.ErrorIs(t, err, errs.ErrDeletedDependency)
}

func TestBookCopyService_ListByBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, m, _ := newTestService(t)

	m.books.EXPECT().Get(gomock.Any(), int64(2)).Return(&model.Book{ID: 2}, nil)
	m.bookCopies.EXPECT().ListByBook(gomock.Any(), int64(2), uint64(DefaultListLimit)).
		Return([]*model.BookCopy{{ID: 1, BookID: 2}}, nil)

	copies, err := svc.BookCopies.ListByBook(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, copies, 1)
}

func TestMembershipService_Add(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing type id", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)

		_, err := svc.Memberships.Add(ctx, randomMembership(0), nil)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		require.Equal(t, "cannot add membership without specifying a membership type ID", err.Error())
	})

	t.Run("deleted type", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		m.membershipTypes.EXPECT().Get(gomock.Any(), int64(3)).
			Return(deleted(&model.MembershipType{ID: 3, Type: model.MembershipAdult}), nil)

		_, err := svc.Memberships.Add(ctx, randomMembership(0), int64Ptr(3))
		require.ErrorIs(t, err, errs.ErrDeletedDependency)
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)
		membership := randomMembership(0)
		membership.EndDate = model.Date{Time: membership.StartDate.AddDate(model.MaxMembershipYears, 0, 1)}

		_, err := svc.Memberships.Add(ctx, membership, int64Ptr(3))
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("created with its type", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		membershipType := &model.MembershipType{ID: 3, Type: model.MembershipStudent, CostPerMonth: 10}
		m.membershipTypes.EXPECT().Get(gomock.Any(), int64(3)).Return(membershipType, nil)
		m.memberships.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ms *model.Membership) (*model.Membership, error) {
				out := *ms
				out.ID = 20
				return &out, nil
			})

		out, err := svc.Memberships.Add(ctx, randomMembership(0), int64Ptr(3))
		require.NoError(t, err)
		require.Equal(t, int64(3), out.MembershipTypeID)
		require.Equal(t, membershipType, out.MembershipType)
	})
}

func TestMembershipService_Members(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, m, _ := newTestService(t)

	m.memberships.EXPECT().Get(gomock.Any(), int64(20)).Return(randomMembership(3), nil)
	m.members.EXPECT().ListByMembership(gomock.Any(), int64(20), uint64(5)).
		Return([]*model.Member{randomMember()}, nil)

	members, err := svc.Memberships.Members(ctx, 20, 5)
	require.NoError(t, err)
	require.Len(t, members, 1)
}

func TestMembershipTypeService_Add(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, m, pub := newTestService(t)

	m.membershipTypes.EXPECT().GetByType(gomock.Any(), model.MembershipSenior).
		Return(deleted(&model.MembershipType{ID: 4, Type: model.MembershipSenior, CostPerMonth: 1}), nil)
	m.membershipTypes.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, mt *model.MembershipType) (*model.MembershipType, error) {
			return mt, nil
		})

	out, err := svc.MembershipTypes.Add(ctx, &model.MembershipType{Type: model.MembershipSenior, CostPerMonth: 15})
	require.NoError(t, err)
	require.Equal(t, int64(4), out.ID)
	require.Equal(t, 15, out.CostPerMonth)
	require.Equal(t, []model.EventAction{model.EventRestored}, pub.actions())
}

func TestCustomerService_Add(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, m, _ := newTestService(t)
	customer := &model.Customer{Name: "Jane", EmailAddress: "jane@example.com"}

	m.customers.EXPECT().GetByEmail(gomock.Any(), "jane@example.com").
		Return(&model.Customer{ID: 1, EmailAddress: "jane@example.com"}, nil)

	_, err := svc.Customers.Add(ctx, customer)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.Equal(t, "customer with email jane@example.com already exists", err.Error())
}

func TestBookCopyService_FullUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	echoCopy := func(_ context.Context, c *model.BookCopy) (*model.BookCopy, error) {
		out := *c
		return &out, nil
	}

	t.Run("omitted book id keeps the book", func(t *testing.T) {
		t.Parallel()
		svc, m, pub := newTestService(t)
		m.bookCopies.EXPECT().Get(gomock.Any(), int64(11)).Return(&model.BookCopy{ID: 11, BookID: 2}, nil)
		m.bookCopies.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoCopy)

		out, err := svc.BookCopies.FullUpdate(ctx, 11, &model.BookCopy{Location: model.NewLocation(1, 1, 1)})
		require.NoError(t, err)
		require.Equal(t, int64(2), out.BookID)
		require.Equal(t, []model.EventAction{model.EventUpdated}, pub.actions())
	})

	t.Run("moving to a deleted book", func(t *testing.T) {
		t.Parallel()
		svc, m, pub := newTestService(t)
		m.bookCopies.EXPECT().Get(gomock.Any(), int64(11)).Return(&model.BookCopy{ID: 11, BookID: 2}, nil)
		m.books.EXPECT().Get(gomock.Any(), int64(3)).Return(deleted(&model.Book{ID: 3}), nil)

		_, err := svc.BookCopies.FullUpdate(ctx, 11, &model.BookCopy{BookID: 3})
		require.ErrorIs(t, err, errs.ErrDeletedDependency)
		require.Equal(t, "book with id 3 has been deleted", err.Error())
		require.Empty(t, pub.actions())
	})

	t.Run("moving to a live book", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		m.bookCopies.EXPECT().Get(gomock.Any(), int64(11)).Return(&model.BookCopy{ID: 11, BookID: 2}, nil)
		m.books.EXPECT().Get(gomock.Any(), int64(3)).Return(&model.Book{ID: 3}, nil)
		m.bookCopies.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoCopy)

		out, err := svc.BookCopies.FullUpdate(ctx, 11, &model.BookCopy{BookID: 3})
		require.NoError(t, err)
		require.Equal(t, int64(3), out.BookID)
	})
}

func TestMembershipService_FullUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	echoMembership := func(_ context.Context, ms *model.Membership) (*model.Membership, error) {
		out := *ms
		return &out, nil
	}

	t.Run("omitted type id keeps the type", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		stored := randomMembership(3)
		stored.ID = 7
		m.memberships.EXPECT().Get(gomock.Any(), int64(7)).Return(stored, nil)
		m.memberships.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoMembership)

		out, err := svc.Memberships.FullUpdate(ctx, 7, randomMembership(0))
		require.NoError(t, err)
		require.Equal(t, int64(7), out.ID)
		require.Equal(t, int64(3), out.MembershipTypeID)
	})

	t.Run("deleted type", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		stored := randomMembership(3)
		stored.ID = 7
		m.memberships.EXPECT().Get(gomock.Any(), int64(7)).Return(stored, nil)
		m.membershipTypes.EXPECT().Get(gomock.Any(), int64(4)).Return(deleted(&model.MembershipType{ID: 4}), nil)

		_, err := svc.Memberships.FullUpdate(ctx, 7, randomMembership(4))
		require.ErrorIs(t, err, errs.ErrDeletedDependency)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		m.memberships.EXPECT().Get(gomock.Any(), int64(7)).Return(nil, errs.ErrNotFound)

		_, err := svc.Memberships.FullUpdate(ctx, 7, randomMembership(3))
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.Equal(t, "membership with id 7 does not exist", err.Error())
	})
}

func TestCustomerService_FullUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	echoCustomer := func(_ context.Context, c *model.Customer) (*model.Customer, error) {
		out := *c
		return &out, nil
	}

	t.Run("same email skips the lookup", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		m.customers.EXPECT().Get(gomock.Any(), int64(1)).
			Return(&model.Customer{ID: 1, Name: "Jane", EmailAddress: "jane@example.com"}, nil)
		m.customers.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoCustomer)

		out, err := svc.Customers.FullUpdate(ctx, 1, &model.Customer{Name: "Janet", EmailAddress: "jane@example.com"})
		require.NoError(t, err)
		require.Equal(t, "Janet", out.Name)
	})

	t.Run("email held by another live customer", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		m.customers.EXPECT().Get(gomock.Any(), int64(1)).
			Return(&model.Customer{ID: 1, Name: "Jane", EmailAddress: "jane@example.com"}, nil)
		m.customers.EXPECT().GetByEmail(gomock.Any(), "bob@example.com").
			Return(&model.Customer{ID: 2, EmailAddress: "bob@example.com"}, nil)

		_, err := svc.Customers.FullUpdate(ctx, 1, &model.Customer{Name: "Jane", EmailAddress: "bob@example.com"})
		require.ErrorIs(t, err, errs.ErrConflict)
		require.Equal(t, "customer with email bob@example.com already exists", err.Error())
	})
}
