package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-membership/library/internal/model"
)

type userRepository struct {
	base
}

var userColumns = []string{"id", "username", "password_hash"}

func (r *userRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	return getOne[model.User](ctx, r.base, qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"id": id}))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return getOne[model.User](ctx, r.base, qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		Limit(1))
}

func (r *userRepository) List(ctx context.Context, limit uint64) ([]*model.User, error) {
	return getMany[model.User](ctx, r.base, qb.Select(userColumns...).
		From(usersTableName).
		OrderBy("id").
		Limit(limit))
}

func (r *userRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	return getOne[model.User](ctx, r.base, qb.Insert(usersTableName).
		Columns("username", "password_hash").
		Values(u.Username, u.PasswordHash).
		Suffix("returning "+columnList(userColumns)))
}
