package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-membership/library/internal/errs"
	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/Astemirdum/library-membership/library/internal/repository"
	"github.com/Astemirdum/library-membership/pkg/auth"
)

const tokenType = "Bearer"

type UserService struct {
	deps
	repo   repository.UserRepository
	issuer *auth.Issuer
}

func (s *UserService) Register(ctx context.Context, req model.UserCreateRequest) (*model.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, errs.FromValidator(err)
	}
	return inTx(ctx, s.tx, func(ctx context.Context) (*model.User, error) {
		_, err := s.repo.GetByUsername(ctx, req.Username)
		switch {
		case err == nil:
			return nil, errs.Conflict("user with username %s already exists", req.Username)
		case !errors.Is(err, errs.ErrNotFound):
			return nil, errors.Wrap(err, "user lookup")
		}

		user := &model.User{Username: req.Username}
		if err := user.SetPassword(req.Password); err != nil {
			return nil, errors.Wrap(err, "hash password")
		}
		created, err := s.repo.Create(ctx, user)
		if err != nil {
			return nil, s.wrap("create", err)
		}
		s.log.Info("user registered", zap.String("username", created.Username))
		return created, nil
	})
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.NotFound("user with id %d does not exist", id)
		}
		return nil, s.wrap("get", err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, limit int) ([]*model.User, error) {
	users, err := s.repo.List(ctx, listLimit(limit))
	if err != nil {
		return nil, s.wrap("list", err)
	}
	return users, nil
}

// Authorize exchanges valid credentials for a signed access token.
func (s *UserService) Authorize(ctx context.Context, req model.AuthRequest) (*model.AuthResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, errs.FromValidator(err)
	}
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.Unauthorized("invalid username or password")
		}
		return nil, s.wrap("get by username", err)
	}
	ok, err := user.PasswordMatches(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "compare password")
	}
	if !ok {
		return nil, errs.Unauthorized("invalid username or password")
	}

	token, expiresAt, err := s.issuer.NewToken(user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "issue token")
	}
	return &model.AuthResponse{
		AccessToken: token,
		ExpiresIn:   int(time.Until(expiresAt).Seconds()),
		TokenType:   tokenType,
	}, nil
}

func (s *UserService) wrap(op string, err error) error {
	var domainErr *errs.Error
	if errors.As(err, &domainErr) {
		return err
	}
	return errors.Wrapf(err, "user %s", op)
}
