package model

type Book struct {
	ID     int64  `json:"id" db:"id" query:"-"`
	ISBN   string `json:"isbn" db:"isbn" query:"isbn" validate:"required,notblank,max=20"`
	Title  string `json:"title" db:"title" query:"title" validate:"required,notblank,max=255"`
	Year   *int   `json:"year" db:"year" query:"year" validate:"omitempty,notfutureyear"`
	Author string `json:"author" db:"author" query:"author" validate:"max=255"`
	Type   string `json:"type" db:"type" query:"type" validate:"max=64"`
	Genre  string `json:"genre" db:"genre" query:"genre" validate:"max=64"`
	Value  int    `json:"value" db:"value" query:"value" validate:"gte=0,lte=100000"`
	SoftDelete
}

func (b *Book) GetID() int64 { return b.ID }

func (b *Book) SetID(id int64) { b.ID = id }
