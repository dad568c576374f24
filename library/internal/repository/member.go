package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/library-membership/library/internal/model"
)

type memberRepository struct {
	base
}

var memberColumns = []string{"id", "name", "home_address", "email_address", "birthday", "membership_id", "deleted"}

func (r *memberRepository) Get(ctx context.Context, id int64) (*model.Member, error) {
	return getOne[model.Member](ctx, r.base, qb.Select(memberColumns...).
		From(membersTableName).
		Where(sq.Eq{"id": id}))
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	return getOne[model.Member](ctx, r.base, byNaturalKey(qb.Select(memberColumns...).From(membersTableName), "email_address", email))
}

func (r *memberRepository) List(ctx context.Context, limit uint64, includeDeleted bool) ([]*model.Member, error) {
	return getMany[model.Member](ctx, r.base, listQuery(qb.Select(memberColumns...).From(membersTableName), limit, includeDeleted))
}

func (r *memberRepository) ListByMembership(ctx context.Context, membershipID int64, limit uint64) ([]*model.Member, error) {
	return getMany[model.Member](ctx, r.base, listQuery(qb.Select(memberColumns...).
		From(membersTableName).
		Where(sq.Eq{"membership_id": membershipID}), limit, false))
}

func (r *memberRepository) Create(ctx context.Context, m *model.Member) (*model.Member, error) {
	return getOne[model.Member](ctx, r.base, qb.Insert(membersTableName).
		Columns("name", "home_address", "email_address", "birthday", "membership_id", "deleted").
		Values(m.Name, m.HomeAddress, m.EmailAddress, m.Birthday, m.MembershipID, m.Deleted).
		Suffix("returning "+columnList(memberColumns)))
}

func (r *memberRepository) Update(ctx context.Context, m *model.Member) (*model.Member, error) {
	return getOne[model.Member](ctx, r.base, qb.Update(membersTableName).
		SetMap(map[string]interface{}{
			"name":          m.Name,
			"home_address":  m.HomeAddress,
			"email_address": m.EmailAddress,
			"birthday":      m.Birthday,
			"membership_id": m.MembershipID,
			"deleted":       m.Deleted,
		}).
		Where(sq.Eq{"id": m.ID}).
		Suffix("returning "+columnList(memberColumns)))
}

func (r *memberRepository) Delete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.base, membersTableName, id)
}
