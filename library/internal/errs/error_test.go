package errs_test

import (
	"testing"

	"github.com/Astemirdum/library-membership/library/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestError_Kinds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		kind error
		msg  string
	}{
		{name: "not found", err: errs.NotFound("book with id %d does not exist", 1), kind: errs.ErrNotFound, msg: "book with id 1 does not exist"},
		{name: "conflict", err: errs.Conflict("book with isbn %s already exists", "1"), kind: errs.ErrConflict, msg: "book with isbn 1 already exists"},
		{name: "invalid", err: errs.InvalidArgument("bad"), kind: errs.ErrInvalidArgument, msg: "bad"},
		{name: "deleted", err: errs.DeletedDependency("book with id %d has been deleted", 2), kind: errs.ErrDeletedDependency, msg: "book with id 2 has been deleted"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tt.err, tt.kind)
			require.ErrorIs(t, errors.Wrap(tt.err, "wrapped"), tt.kind)
			require.EqualError(t, tt.err, tt.msg)
		})
	}
}

func TestFromValidator(t *testing.T) {
	t.Parallel()
	type req struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}
	err := errs.FromValidator(validator.New().Struct(req{Email: "nope"}))

	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	require.ErrorIs(t, err, errs.ErrValidation)
	require.Len(t, verr.Violations, 2)

	other := errors.New("boom")
	require.Equal(t, other, errs.FromValidator(other))
}
