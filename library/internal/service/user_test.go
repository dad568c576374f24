package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-membership/library/internal/errs"
	"github.com/Astemirdum/library-membership/library/internal/model"
)

func TestUserService_Register(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("taken username", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		m.users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&model.User{ID: 1, Username: "alice"}, nil)

		_, err := svc.Users.Register(ctx, model.UserCreateRequest{Username: "alice", Password: "password1"})
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("short password", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t)

		_, err := svc.Users.Register(ctx, model.UserCreateRequest{Username: "alice", Password: "short"})
		require.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("stores a hash", func(t *testing.T) {
		t.Parallel()
		svc, m, _ := newTestService(t)
		m.users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errs.ErrNotFound)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *model.User) (*model.User, error) {
				ok, err := u.PasswordMatches("password1")
				require.NoError(t, err)
				require.True(t, ok)
				out := *u
				out.ID = 1
				return &out, nil
			})

		user, err := svc.Users.Register(ctx, model.UserCreateRequest{Username: "alice", Password: "password1"})
		require.NoError(t, err)
		require.Equal(t, int64(1), user.ID)
	})
}

func TestUserService_Authorize(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	user := &model.User{ID: 1, Username: "alice"}
	require.NoError(t, user.SetPassword("password1"))

	tests := []struct {
		name     string
		password string
		found    bool
		wantErr  error
	}{
		{name: "ok", password: "password1", found: true},
		{name: "wrong password", password: "password2", found: true, wantErr: errs.ErrUnauthorized},
		{name: "unknown user", password: "password1", wantErr: errs.ErrUnauthorized},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, m, _ := newTestService(t)
			if tt.found {
				m.users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
			} else {
				m.users.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errs.ErrNotFound)
			}

			resp, err := svc.Users.Authorize(ctx, model.AuthRequest{Username: "alice", Password: tt.password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, resp.AccessToken)
			require.Equal(t, "Bearer", resp.TokenType)
			require.Positive(t, resp.ExpiresIn)
		})
	}
}
