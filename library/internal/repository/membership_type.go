package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-membership/library/internal/model"
)

type membershipTypeRepository struct {
	base
}

var membershipTypeColumns = []string{"id", "type", "cost_per_month", "deleted"}

func (r *membershipTypeRepository) Get(ctx context.Context, id int64) (*model.MembershipType, error) {
	return getOne[model.MembershipType](ctx, r.base, qb.Select(membershipTypeColumns...).
		From(membershipTypesTableName).
		Where(sq.Eq{"id": id}))
}

func (r *membershipTypeRepository) GetByType(ctx context.Context, kind model.MembershipKind) (*model.MembershipType, error) {
	return getOne[model.MembershipType](ctx, r.base, byNaturalKey(qb.Select(membershipTypeColumns...).From(membershipTypesTableName), "type", string(kind)))
}

func (r *membershipTypeRepository) List(ctx context.Context, limit uint64, includeDeleted bool) ([]*model.MembershipType, error) {
	return getMany[model.MembershipType](ctx, r.base, listQuery(qb.Select(membershipTypeColumns...).From(membershipTypesTableName), limit, includeDeleted))
}

func (r *membershipTypeRepository) Create(ctx context.Context, t *model.MembershipType) (*model.MembershipType, error) {
	return getOne[model.MembershipType](ctx, r.base, qb.Insert(membershipTypesTableName).
		Columns("type", "cost_per_month", "deleted").
		Values(string(t.Type), t.CostPerMonth, t.Deleted).
		Suffix("returning "+columnList(membershipTypeColumns)))
}

func (r *membershipTypeRepository) Update(ctx context.Context, t *model.MembershipType) (*model.MembershipType, error) {
	return getOne[model.MembershipType](ctx, r.base, qb.Update(membershipTypesTableName).
		SetMap(map[string]interface{}{
			"type":           string(t.Type),
			"cost_per_month": t.CostPerMonth,
			"deleted":        t.Deleted,
		}).
		Where(sq.Eq{"id": t.ID}).
		Suffix("returning "+columnList(membershipTypeColumns)))
}

func (r *membershipTypeRepository) Delete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.base, membershipTypesTableName, id)
}
