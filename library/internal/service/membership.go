package service

import (
	"context"

	"github.com/Astemirdum/library-membership/library/internal/errs"
	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/library/internal/repository"
)

type MembershipService struct {
	crud[*model.Membership]
	types   *MembershipTypeService
	members repository.MemberRepository
}

func (s *MembershipService) Get(ctx context.Context, id int64) (*model.Membership, error) {
	return inTx(ctx, s.tx, func(ctx context.Context) (*model.Membership, error) {
		membership, err := s.get(ctx, id)
		if err != nil {
			return nil, err
		}
		if membership.MembershipType, err = s.types.fetch(ctx, membership.MembershipTypeID); err != nil {
			return nil, err
		}
		return membership, nil
	})
}

// Add creates a membership of the live membership type typeID.
func (s *MembershipService) Add(ctx context.Context, membership *model.Membership, typeID *int64) (*model.Membership, error) {
	if typeID == nil {
		return nil, errs.InvalidArgument("cannot add membership without specifying a membership type ID")
	}
	membership.MembershipType = nil

	var membershipType *model.MembershipType
	out, err := s.add(ctx, membership, func(ctx context.Context) (bool, error) {
		var err error
		if membershipType, err = s.types.live(ctx, *typeID); err != nil {
			return false, err
		}
		membership.MembershipTypeID = membershipType.ID
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	out.MembershipType = membershipType
	return out, nil
}

// FullUpdate keeps the current membership type when membershipTypeId is omitted.
func (s *MembershipService) FullUpdate(ctx context.Context, id int64, membership *model.Membership) (*model.Membership, error) {
	membership.MembershipType = nil
	return s.fullUpdate(ctx, id, membership, func(ctx context.Context, existing *model.Membership) error {
		if membership.MembershipTypeID == 0 || membership.MembershipTypeID == existing.MembershipTypeID {
			membership.MembershipTypeID = existing.MembershipTypeID
			return nil
		}
		_, err := s.types.live(ctx, membership.MembershipTypeID)
		return err
	})
}

// Members lists the live members holding membership id.
func (s *MembershipService) Members(ctx context.Context, id int64, limit int) ([]*model.Member, error) {
	return inTx(ctx, s.tx, func(ctx context.Context) ([]*model.Member, error) {
		if _, err := s.get(ctx, id); err != nil {
			return nil, err
		}
		members, err := s.members.ListByMembership(ctx, id, listLimit(limit))
		if err != nil {
			return nil, s.storeErr("list members", err)
		}
		return members, nil
	})
}
