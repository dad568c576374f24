package service

import (
	"context"

	"github.com/Astemirdum/library-membership/library/internal/errs"
	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/library/internal/repository"
)

type MemberService struct {
	crud[*model.Member]
	repo        repository.MemberRepository
	memberships *MembershipService
}

func (s *MemberService) Get(ctx context.Context, id int64) (*model.Member, error) {
	return inTx(ctx, s.tx, func(ctx context.Context) (*model.Member, error) {
		member, err := s.get(ctx, id)
		if err != nil {
			return nil, err
		}
		return member, s.attachMembership(ctx, member)
	})
}

// Add registers a member, restoring a deleted member with the same email address.
// membershipID, when given, wins over the one in the body and must point to a live membership.
func (s *MemberService) Add(ctx context.Context, member *model.Member, membershipID *int64) (*model.Member, error) {
	if membershipID == nil {
		membershipID = member.MembershipID
	}
	member.Membership = nil

	var membership *model.Membership
	out, err := s.add(ctx, member, func(ctx context.Context) (bool, error) {
		restored, err := s.reconcile(ctx, member, "email", member.EmailAddress, s.byEmail(member.EmailAddress))
		if err != nil {
			return false, err
		}
		member.MembershipID = nil
		if membershipID != nil {
			if membership, err = s.memberships.live(ctx, *membershipID); err != nil {
				return false, err
			}
			member.MembershipID = &membership.ID
		}
		return restored, nil
	})
	if err != nil {
		return nil, err
	}
	out.Membership = membership
	return out, nil
}

// FullUpdate keeps the current membership when membershipId is omitted.
func (s *MemberService) FullUpdate(ctx context.Context, id int64, member *model.Member) (*model.Member, error) {
	member.Membership = nil
	return s.fullUpdate(ctx, id, member, func(ctx context.Context, existing *model.Member) error {
		if existing.EmailAddress != member.EmailAddress {
			if err := s.ensureUnique(ctx, id, "email", member.EmailAddress, s.byEmail(member.EmailAddress)); err != nil {
				return err
			}
		}
		if member.MembershipID == nil || sameID(member.MembershipID, existing.MembershipID) {
			member.MembershipID = existing.MembershipID
			return nil
		}
		_, err := s.memberships.live(ctx, *member.MembershipID)
		return err
	})
}

// Patch applies a JSON patch to the member's scalar fields. Fields the patch
// leaves alone, the membership relation included, come out unchanged.
func (s *MemberService) Patch(ctx context.Context, id int64, ops []model.PatchOperation) (*model.Member, error) {
	out, err := inTx(ctx, s.tx, func(ctx context.Context) (*model.Member, error) {
		existing, err := s.fetch(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing.IsDeleted() {
			return nil, errs.NotFound("member with id %d has been deleted", id)
		}

		patched, err := applyPatch(existing.ToPatch(), ops)
		if err != nil {
			return nil, err
		}
		if err := s.validate(patched); err != nil {
			return nil, err
		}

		member := patched.Apply(existing)
		member.Membership = nil
		if member.EmailAddress != existing.EmailAddress {
			if err := s.ensureUnique(ctx, id, "email", member.EmailAddress, s.byEmail(member.EmailAddress)); err != nil {
				return nil, err
			}
		}
		if touches(ops, "/membershipId") && member.MembershipID != nil {
			if member.Membership, err = s.memberships.live(ctx, *member.MembershipID); err != nil {
				return nil, err
			}
		}

		saved, err := s.update(ctx, member)
		if err != nil {
			return nil, err
		}
		if member.Membership != nil {
			saved.Membership = member.Membership
			return saved, nil
		}
		return saved, s.attachMembership(ctx, saved)
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, id, model.EventUpdated)
	return out, nil
}

func (s *MemberService) attachMembership(ctx context.Context, member *model.Member) error {
	if member.MembershipID == nil {
		return nil
	}
	membership, err := s.memberships.fetch(ctx, *member.MembershipID)
	if err != nil {
		return err
	}
	member.Membership = membership
	return nil
}

func (s *MemberService) byEmail(email string) func(ctx context.Context) (*model.Member, error) {
	return func(ctx context.Context) (*model.Member, error) {
		return s.repo.GetByEmail(ctx, email)
	}
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
