package model_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func violations(t *testing.T, err error) validator.ValidationErrors {
	t.Helper()
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	return verrs
}

func intPtr(v int) *int { return &v }

func TestLocation_Validate(t *testing.T) {
	t.Parallel()
	v := model.NewValidator()

	tests := []struct {
		name     string
		location model.Location
		want     int
	}{
		{name: "valid", location: *model.NewLocation(1, 1, 1), want: 0},
		{name: "bounds", location: *model.NewLocation(model.NrOfFloors, model.MaxBookcases, model.MaxShelves), want: 0},
		{name: "floor below range", location: *model.NewLocation(-1, 1, 1), want: 1},
		{name: "all out of range", location: *model.NewLocation(9, 0, 99), want: 1},
		{name: "all null", location: model.Location{}, want: 1},
		{name: "one null", location: model.Location{Floor: intPtr(1), Bookcase: intPtr(1)}, want: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Len(t, violations(t, v.Validate(tt.location)), tt.want)
		})
	}
}

func TestBookCopy_NullLocation(t *testing.T) {
	t.Parallel()
	v := model.NewValidator()

	require.NoError(t, v.Validate(model.BookCopy{BookID: 1}))

	verrs := violations(t, v.Validate(model.BookCopy{BookID: 1, Location: &model.Location{}}))
	require.Len(t, verrs, 1)
	require.Equal(t, "location", verrs[0].Tag())
}

func TestBook_Validate(t *testing.T) {
	t.Parallel()
	v := model.NewValidator()
	nextYear := time.Now().Year() + 1

	require.NoError(t, v.Validate(model.Book{ISBN: "978-0-1", Title: "Go", Value: 10}))
	require.NoError(t, v.Validate(model.Book{ISBN: "978-0-1", Title: "Go", Year: intPtr(1999)}))
	require.Len(t, violations(t, v.Validate(model.Book{ISBN: " ", Title: "Go"})), 1)
	require.Len(t, violations(t, v.Validate(model.Book{ISBN: "1", Title: "Go", Year: &nextYear})), 1)
	require.Len(t, violations(t, v.Validate(model.Book{ISBN: "1", Title: "Go", Value: -1})), 1)
}

func TestCustomer_Validate(t *testing.T) {
	t.Parallel()
	v := model.NewValidator()
	past := model.NewDate(1990, time.May, 4)
	future := model.Date{Time: time.Now().AddDate(0, 0, 2)}

	require.NoError(t, v.Validate(model.Customer{Name: "Ann", EmailAddress: "ann@example.com", Birthday: &past}))
	require.NoError(t, v.Validate(model.Customer{Name: "Ann", EmailAddress: "ann@example.com"}))

	verrs := violations(t, v.Validate(model.Customer{Name: "", EmailAddress: "not-an-email", Birthday: &future}))
	require.Len(t, verrs, 3)
}

func TestMembership_Validate(t *testing.T) {
	t.Parallel()
	v := model.NewValidator()
	start := model.NewDate(2020, time.January, 1)

	tests := []struct {
		name string
		end  model.Date
		want int
	}{
		{name: "one year", end: model.NewDate(2021, time.January, 1), want: 0},
		{name: "max duration", end: model.NewDate(2025, time.January, 1), want: 0},
		{name: "too long", end: model.NewDate(2025, time.January, 2), want: 1},
		{name: "ends before start", end: model.NewDate(2019, time.December, 31), want: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := model.Membership{MembershipTypeID: 1, StartDate: start, EndDate: tt.end}
			require.Len(t, violations(t, v.Validate(m)), tt.want)
		})
	}

	future := model.Date{Time: time.Now().AddDate(0, 1, 0)}
	verrs := violations(t, v.Validate(model.Membership{StartDate: future, EndDate: model.Date{Time: future.AddDate(1, 0, 0)}}))
	require.Len(t, verrs, 1)
	require.Equal(t, "notfuture", verrs[0].Tag())
}

func TestMembershipType_Validate(t *testing.T) {
	t.Parallel()
	v := model.NewValidator()

	require.NoError(t, v.Validate(model.MembershipType{Type: model.MembershipAdult, CostPerMonth: 20}))
	require.Len(t, violations(t, v.Validate(model.MembershipType{Type: "GOLD", CostPerMonth: -1})), 2)
}

func TestUserCreateRequest_Validate(t *testing.T) {
	t.Parallel()
	v := model.NewValidator()

	require.NoError(t, v.Validate(model.UserCreateRequest{Username: "librarian", Password: "secret-pass"}))
	require.Len(t, violations(t, v.Validate(model.UserCreateRequest{Username: "   ", Password: "secret-pass"})), 1)
	require.Len(t, violations(t, v.Validate(model.UserCreateRequest{Username: "abcdefghijklmnopqrstuvwxyz", Password: "secret-pass"})), 1)
}
