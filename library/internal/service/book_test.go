package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-membership/library/internal/errs"
	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/pkg/auth"
)

func TestBookService_Add(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("new isbn is inserted", func(t *testing.T) {
		t.Parallel()
		svc, m, pub := newTestService(t)
		book := randomBook()
		book.ID = 99

		m.books.EXPECT().GetByISBN(gomock.Any(), book.ISBN).Return(nil, errs.ErrNotFound)
		m.books.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *model.Book) (*model.Book, error) {
				require.Zero(t, b.ID)
				out := *b
				out.ID = 1
				return &out, nil
			})

		out, err := svc.Books.Add(ctx, book)
		require.NoError(t, err)
		require.Equal(t, int64(1), out.ID)
		require.False(t, out.Deleted)
		require.Equal(t, []model.EventAction{model.EventCreated}, pub.actions())
	})

	t.Run("deleted isbn is restored under its old id", func(t *testing.T) {
		t.Parallel()
		svc, m, pub := newTestService(t)
		book := randomBook()
		old := deleted(&model.Book{ID: 7, ISBN: book.ISBN, Title: "old title", Value: 1})

		m.books.EXPECT().GetByISBN(gomock.Any(), book.ISBN).Return(old, nil)
		m.books.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoBook)

		out, err := svc.Books.Add(ctx, book)
		require.NoError(t, err)
		require.Equal(t, int64(7), out.ID)
		require.False(t, out.Deleted)
		require.Equal(t, book.Title, out.Title)
		require.Equal(t, []model.EventAction{model.EventRestored}, pub.actions())
	})

	t.Run("live isbn conflicts", func(t *testing.T) {
		t.Parallel()
		svc, m, pub := newTestService(t)
		book := randomBook()

		m.books.EXPECT().GetByISBN(gomock.Any(), book.ISBN).Return(&model.Book{ID: 3, ISBN: book.ISBN}, nil)

		_, err := svc.Books.Add(ctx, book)
		require.ErrorIs(t, err, errs.ErrConflict)
		require.Equal(t, "book with isbn "+book.ISBN+" already exists", err.Error())
		require.Empty(t, pub.actions())
	})

	t.Run("invalid book never reaches the store", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)
		book := randomBook()
		book.Value = 100001
		book.Title = " "

		_, err := svc.Books.Add(ctx, book)
		require.ErrorIs(t, err, errs.ErrValidation)
		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Violations, 2)
	})
}

func TestBookService_Get(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		stored  *model.Book
		repoErr error
		wantErr error
		wantMsg string
	}{
		{
			name:   "live",
			stored: &model.Book{ID: 5, ISBN: "1", Title: "t"},
		},
		{
			name:    "deleted is hidden",
			stored:  deleted(&model.Book{ID: 5, ISBN: "1", Title: "t"}),
			wantErr: errs.ErrNotFound,
			wantMsg: "book with id 5 does not exist",
		},
		{
			name:    "missing",
			repoErr: errs.ErrNotFound,
			wantErr: errs.ErrNotFound,
			wantMsg: "book with id 5 does not exist",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, m, _ := newTestService(t)
			m.books.EXPECT().Get(gomock.Any(), int64(5)).Return(tt.stored, tt.repoErr)

			out, err := svc.Books.Get(ctx, 5)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, tt.wantMsg, err.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.stored, out)
		})
	}
}

func TestBookService_Lists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, m, _ := newTestService(t)

	books := []*model.Book{{ID: 1}, deleted(&model.Book{ID: 2})}
	m.books.EXPECT().List(gomock.Any(), uint64(DefaultListLimit), true).Return(books, nil)
	m.books.EXPECT().List(gomock.Any(), uint64(10), false).Return(books[:1], nil)

	all, err := svc.Books.ListAll(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)

	live, err := svc.Books.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, live, 1)
}

func TestBookService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("first delete succeeds", func(t *testing.T) {
		t.Parallel()
		svc, m, pub := newTestService(t)
		m.books.EXPECT().Get(gomock.Any(), int64(4)).Return(&model.Book{ID: 4}, nil)
		m.books.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

		ok, err := svc.Books.Delete(ctx, 4)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []model.EventAction{model.EventDeleted}, pub.actions())
	})

	t.Run("event carries the authenticated user", func(t *testing.T) {
		t.Parallel()
		svc, m, pub := newTestService(t)
		m.books.EXPECT().Get(gomock.Any(), int64(5)).Return(&model.Book{ID: 5}, nil)
		m.books.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

		_, err := svc.Books.Delete(auth.SetUserName(ctx, "librarian"), 5)
		require.NoError(t, err)
		require.Len(t, pub.events, 1)
		require.Equal(t, "librarian", pub.events[0].Actor)
		require.Equal(t, int64(5), pub.events[0].EntityID)
	})

	t.Run("second delete conflicts", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		m.books.EXPECT().Get(gomock.Any(), int64(4)).Return(deleted(&model.Book{ID: 4}), nil)

		ok, err := svc.Books.Delete(ctx, 4)
		require.ErrorIs(t, err, errs.ErrConflict)
		require.Equal(t, "book with id 4 has already been deleted", err.Error())
		require.False(t, ok)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		m.books.EXPECT().Get(gomock.Any(), int64(4)).Return(nil, errs.ErrNotFound)

		_, err := svc.Books.Delete(ctx, 4)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestBookService_FullUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("keeps id and deleted flag", func(t *testing.T) {
		t.Parallel()
		svc, m, pub := newTestService(t)
		stored := deleted(randomBook())
		stored.ID = 8
		book := randomBook()
		book.ISBN = stored.ISBN
		book.ID = 1000

		m.books.EXPECT().Get(gomock.Any(), int64(8)).Return(stored, nil)
		m.books.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoBook)

		out, err := svc.Books.FullUpdate(ctx, 8, book)
		require.NoError(t, err)
		require.Equal(t, int64(8), out.ID)
		require.True(t, out.Deleted)
		require.Equal(t, book.Title, out.Title)
		require.Equal(t, []model.EventAction{model.EventUpdated}, pub.actions())
	})

	t.Run("isbn taken by another live book", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		stored := randomBook()
		stored.ID = 8
		book := randomBook()

		m.books.EXPECT().Get(gomock.Any(), int64(8)).Return(stored, nil)
		m.books.EXPECT().GetByISBN(gomock.Any(), book.ISBN).Return(&model.Book{ID: 9, ISBN: book.ISBN}, nil)

		_, err := svc.Books.FullUpdate(ctx, 8, book)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("isbn of a deleted book may be taken", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		stored := randomBook()
		stored.ID = 8
		book := randomBook()

		m.books.EXPECT().Get(gomock.Any(), int64(8)).Return(stored, nil)
		m.books.EXPECT().GetByISBN(gomock.Any(), book.ISBN).Return(deleted(&model.Book{ID: 9, ISBN: book.ISBN}), nil)
		m.books.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoBook)

		_, err := svc.Books.FullUpdate(ctx, 8, book)
		require.NoError(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		m.books.EXPECT().Get(gomock.Any(), int64(8)).Return(nil, errs.ErrNotFound)

		_, err := svc.Books.FullUpdate(ctx, 8, randomBook())
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}
