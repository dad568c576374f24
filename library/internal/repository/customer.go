package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-membership/library/internal/model"
)

type customerRepository struct {
	base
}

var customerColumns = []string{"id", "name", "home_address", "email_address", "birthday", "deleted"}

func (r *customerRepository) Get(ctx context.Context, id int64) (*model.Customer, error) {
	return getOne[model.Customer](ctx, r.base, qb.Select(customerColumns...).
		From(customersTableName).
		Where(sq.Eq{"id": id}))
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return getOne[model.Customer](ctx, r.base, byNaturalKey(qb.Select(customerColumns...).From(customersTableName), "email_address", email))
}

func (r *customerRepository) List(ctx context.Context, limit uint64, includeDeleted bool) ([]*model.Customer, error) {
	return getMany[model.Customer](ctx, r.base, listQuery(qb.Select(customerColumns...).From(customersTableName), limit, includeDeleted))
}

func (r *customerRepository) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	return getOne[model.Customer](ctx, r.base, qb.Insert(customersTableName).
		Columns("name", "home_address", "email_address", "birthday", "deleted").
		Values(c.Name, c.HomeAddress, c.EmailAddress, c.Birthday, c.Deleted).
		Suffix("returning "+columnList(customerColumns)))
}

func (r *customerRepository) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	return getOne[model.Customer](ctx, r.base, qb.Update(customersTableName).
		SetMap(map[string]interface{}{
			"name":          c.Name,
			"home_address":  c.HomeAddress,
			"email_address": c.EmailAddress,
			"birthday":      c.Birthday,
			"deleted":       c.Deleted,
		}).
		Where(sq.Eq{"id": c.ID}).
		Suffix("returning "+columnList(customerColumns)))
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.base, customersTableName, id)
}
