package service

import (
	"context"

	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/library/internal/repository"
)

type MembershipTypeService struct {
	crud[*model.MembershipType]
	repo repository.MembershipTypeRepository
}

func (s *MembershipTypeService) Add(ctx context.Context, membershipType *model.MembershipType) (*model.MembershipType, error) {
	return s.add(ctx, membershipType, func(ctx context.Context) (bool, error) {
		return s.reconcile(ctx, membershipType, "type", string(membershipType.Type), s.byType(membershipType.Type))
	})
}

func (s *MembershipTypeService) FullUpdate(ctx context.Context, id int64, membershipType *model.MembershipType) (*model.MembershipType, error) {
	return s.fullUpdate(ctx, id, membershipType, func(ctx context.Context, existing *model.MembershipType) error {
		if existing.Type == membershipType.Type {
			return nil
		}
		return s.ensureUnique(ctx, id, "type", string(membershipType.Type), s.byType(membershipType.Type))
	})
}

func (s *MembershipTypeService) byType(kind model.MembershipKind) func(ctx context.Context) (*model.MembershipType, error) {
	return func(ctx context.Context) (*model.MembershipType, error) {
		return s.repo.GetByType(ctx, kind)
	}
}
