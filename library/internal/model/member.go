package model

type Member struct {
	ID           int64       `json:"id" db:"id" query:"-"`
	Name         string      `json:"name" db:"name" query:"name" validate:"required,notblank,max=255"`
	HomeAddress  string      `json:"homeAddress" db:"home_address" query:"homeAddress" validate:"max=255"`
	EmailAddress string      `json:"emailAddress" db:"email_address" query:"emailAddress" validate:"required,email,max=255"`
	Birthday     *Date       `json:"birthday" db:"birthday" query:"birthday" validate:"omitempty,notfuture"`
	MembershipID *int64      `json:"membershipId" db:"membership_id" query:"membershipId"`
	Membership   *Membership `json:"membership,omitempty" db:"-" query:"-"`
	SoftDelete
}

func (m *Member) GetID() int64 { return m.ID }

func (m *Member) SetID(id int64) { m.ID = id }

// MemberPatch is the document a JSON patch is applied to. MembershipID is
// exposed as a scalar, separate from the Membership relation.
type MemberPatch struct {
	Name         string `json:"name" validate:"required,notblank,max=255"`
	HomeAddress  string `json:"homeAddress" validate:"max=255"`
	EmailAddress string `json:"emailAddress" validate:"required,email,max=255"`
	Birthday     *Date  `json:"birthday" validate:"omitempty,notfuture"`
	MembershipID *int64 `json:"membershipId"`
}

func (m *Member) ToPatch() MemberPatch {
	return MemberPatch{
		Name:         m.Name,
		HomeAddress:  m.HomeAddress,
		EmailAddress: m.EmailAddress,
		Birthday:     m.Birthday,
		MembershipID: m.MembershipID,
	}
}

// Apply copies the patched fields onto a copy of m. The relation is left to the caller.
func (p MemberPatch) Apply(m *Member) *Member {
	out := *m
	out.Name = p.Name
	out.HomeAddress = p.HomeAddress
	out.EmailAddress = p.EmailAddress
	out.Birthday = p.Birthday
	out.MembershipID = p.MembershipID
	return &out
}
