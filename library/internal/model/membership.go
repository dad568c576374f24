package model

const MaxMembershipYears = 5

type Membership struct {
	ID               int64           `json:"id" db:"id" query:"-"`
	MembershipTypeID int64           `json:"membershipTypeId" db:"membership_type_id" query:"membershipTypeId"`
	MembershipType   *MembershipType `json:"membershipType,omitempty" db:"-" query:"-"`
	StartDate        Date            `json:"startDate" db:"start_date" query:"startDate" validate:"required,notfuture"`
	EndDate          Date            `json:"endDate" db:"end_date" query:"endDate" validate:"required"`
	SoftDelete
}

func (m *Membership) GetID() int64 { return m.ID }

func (m *Membership) SetID(id int64) { m.ID = id }

// DurationValid reports whether EndDate lies within [StartDate, StartDate+MaxMembershipYears].
func (m *Membership) DurationValid() bool {
	if m.EndDate.Before(m.StartDate.Time) {
		return false
	}
	return !m.EndDate.After(m.StartDate.AddDate(MaxMembershipYears, 0, 0))
}
