package model

type MembershipKind string

const (
	MembershipJunior  MembershipKind = "JUNIOR"
	MembershipStudent MembershipKind = "STUDENT"
	MembershipAdult   MembershipKind = "ADULT"
	MembershipSenior  MembershipKind = "SENIOR"
)

type MembershipType struct {
	ID           int64          `json:"id" db:"id" query:"-"`
	Type         MembershipKind `json:"type" db:"type" query:"type" validate:"required,oneof=JUNIOR STUDENT ADULT SENIOR"`
	CostPerMonth int            `json:"costPerMonth" db:"cost_per_month" query:"costPerMonth" validate:"gte=0,lte=1000"`
	SoftDelete
}

func (t *MembershipType) GetID() int64 { return t.ID }

func (t *MembershipType) SetID(id int64) { t.ID = id }
