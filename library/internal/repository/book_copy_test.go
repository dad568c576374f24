package repository

import (
	"testing"

	"github.com/Astemirdum/library-membership/library/internal/model"
	"github.com/stretchr/testify/require"
)

func TestBookCopyRow_Location(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   *model.BookCopy
	}{
		{
			name: "with location",
			in:   &model.BookCopy{ID: 1, BookID: 2, Location: model.NewLocation(1, 2, 3)},
		},
		{
			name: "without location",
			in:   &model.BookCopy{ID: 3, BookID: 4},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			row := toBookCopyRow(tt.in)
			require.Equal(t, tt.in, row.toModel())
		})
	}

	deleted := &model.BookCopy{ID: 5, BookID: 6}
	deleted.Deleted = true
	row := toBookCopyRow(deleted)
	require.True(t, row.Deleted)
	require.Nil(t, row.Floor)
	require.True(t, row.toModel().IsDeleted())
}
