package service

import (
	"context"

	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/library/internal/repository"
)

type CustomerService struct {
	crud[*model.Customer]
	repo repository.CustomerRepository
}

func (s *CustomerService) Add(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	return s.add(ctx, customer, func(ctx context.Context) (bool, error) {
		return s.reconcile(ctx, customer, "email", customer.EmailAddress, s.byEmail(customer.EmailAddress))
	})
}

func (s *CustomerService) FullUpdate(ctx context.Context, id int64, customer *model.Customer) (*model.Customer, error) {
	return s.fullUpdate(ctx, id, customer, func(ctx context.Context, existing *model.Customer) error {
		if existing.EmailAddress == customer.EmailAddress {
			return nil
		}
		return s.ensureUnique(ctx, id, "email", customer.EmailAddress, s.byEmail(customer.EmailAddress))
	})
}

func (s *CustomerService) byEmail(email string) func(ctx context.Context) (*model.Customer, error) {
	return func(ctx context.Context) (*model.Customer, error) {
		return s.repo.GetByEmail(ctx, email)
	}
}
