package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-membership/library/internal/model"
)

type membershipRepository struct {
	base
}

var membershipColumns = []string{"id", "membership_type_id", "start_date", "end_date", "deleted"}

func (r *membershipRepository) Get(ctx context.Context, id int64) (*model.Membership, error) {
	return getOne[model.Membership](ctx, r.base, qb.Select(membershipColumns...).
		From(membershipsTableName).
		Where(sq.Eq{"id": id}))
}

func (r *membershipRepository) List(ctx context.Context, limit uint64, includeDeleted bool) ([]*model.Membership, error) {
	return getMany[model.Membership](ctx, r.base, listQuery(qb.Select(membershipColumns...).From(membershipsTableName), limit, includeDeleted))
}

func (r *membershipRepository) Create(ctx context.Context, m *model.Membership) (*model.Membership, error) {
	return getOne[model.Membership](ctx, r.base, qb.Insert(membershipsTableName).
		Columns("membership_type_id", "start_date", "end_date", "deleted").
		Values(m.MembershipTypeID, m.StartDate, m.EndDate, m.Deleted).
		Suffix("returning "+columnList(membershipColumns)))
}

func (r *membershipRepository) Update(ctx context.Context, m *model.Membership) (*model.Membership, error) {
	return getOne[model.Membership](ctx, r.base, qb.Update(membershipsTableName).
		SetMap(map[string]interface{}{
			"membership_type_id": m.MembershipTypeID,
			"start_date":         m.StartDate,
			"end_date":           m.EndDate,
			"deleted":            m.Deleted,
		}).
		Where(sq.Eq{"id": m.ID}).
		Suffix("returning "+columnList(membershipColumns)))
}

func (r *membershipRepository) Delete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.base, membershipsTableName, id)
}
