package model

type BookCopy struct {
	ID       int64     `json:"id" query:"-"`
	Location *Location `json:"location" query:"-"`
	BookID   int64     `json:"bookId" query:"bookId"`
	Book     *Book     `json:"book,omitempty" query:"-"`
	SoftDelete
}

func (c *BookCopy) GetID() int64 { return c.ID }

func (c *BookCopy) SetID(id int64) { c.ID = id }
