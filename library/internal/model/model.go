package model

// Entity is a soft-deletable record with a store-assigned identity.
type Entity interface {
	GetID() int64
	SetID(id int64)
	IsDeleted() bool
	SetDeleted(deleted bool)
}

// SoftDelete is embedded into every soft-deletable entity.
type SoftDelete struct {
	Deleted bool `json:"deleted" db:"deleted" query:"-"`
}

func (s *SoftDelete) IsDeleted() bool { return s.Deleted }

func (s *SoftDelete) SetDeleted(deleted bool) { s.Deleted = deleted }

// DeleteResponse is the payload of a successful delete.
type DeleteResponse struct {
	Delete bool `json:"delete"`
}
