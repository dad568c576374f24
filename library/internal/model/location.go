package model

const (
	NrOfFloors   = 3
	MaxBookcases = 100
	MaxShelves   = 15
)

// Location places a book copy in the building. Either all fields are set or the
// whole Location is absent.
type Location struct {
	Floor    *int `json:"floor"`
	Bookcase *int `json:"bookcase"`
	Shelve   *int `json:"shelve"`
}

func NewLocation(floor, bookcase, shelve int) *Location {
	return &Location{Floor: &floor, Bookcase: &bookcase, Shelve: &shelve}
}

func (l Location) Valid() bool {
	return inRange(l.Floor, 0, NrOfFloors) &&
		inRange(l.Bookcase, 1, MaxBookcases) &&
		inRange(l.Shelve, 1, MaxShelves)
}

func inRange(v *int, lo, hi int) bool {
	return v != nil && *v >= lo && *v <= hi
}
