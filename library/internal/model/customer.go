package model

type Customer struct {
	ID           int64  `json:"id" db:"id" query:"-"`
	Name         string `json:"name" db:"name" query:"name" validate:"required,notblank,max=255"`
	HomeAddress  string `json:"homeAddress" db:"home_address" query:"homeAddress" validate:"max=255"`
	EmailAddress string `json:"emailAddress" db:"email_address" query:"emailAddress" validate:"required,email,max=255"`
	Birthday     *Date  `json:"birthday" db:"birthday" query:"birthday" validate:"omitempty,notfuture"`
	SoftDelete
}

func (c *Customer) GetID() int64 { return c.ID }

func (c *Customer) SetID(id int64) { c.ID = id }
