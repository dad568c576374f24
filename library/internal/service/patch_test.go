package service

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-membership/library/internal/errs"
	"github.com/Astemirdum/library-membership/library/internal/model"
)

func TestApplyPatch(t *testing.T) {
	t.Parallel()

	doc := model.MemberPatch{
		Name:         "Ann",
		HomeAddress:  "Main St 1",
		EmailAddress: "ann@example.com",
		MembershipID: int64Ptr(3),
	}

	tests := []struct {
		name    string
		ops     []model.PatchOperation
		want    model.MemberPatch
		wantErr bool
	}{
		{
			name: "no operations",
			want: doc,
		},
		{
			name: "add overwrites",
			ops:  []model.PatchOperation{op(model.PatchAdd, "/homeAddress", `"Elm St 2"`)},
			want: model.MemberPatch{Name: "Ann", HomeAddress: "Elm St 2", EmailAddress: "ann@example.com", MembershipID: int64Ptr(3)},
		},
		{
			name: "copy",
			ops:  []model.PatchOperation{{Op: model.PatchCopy, From: "/name", Path: "/homeAddress"}},
			want: model.MemberPatch{Name: "Ann", HomeAddress: "Ann", EmailAddress: "ann@example.com", MembershipID: int64Ptr(3)},
		},
		{
			name: "move",
			ops:  []model.PatchOperation{{Op: model.PatchMove, From: "/homeAddress", Path: "/name"}},
			want: model.MemberPatch{Name: "Main St 1", EmailAddress: "ann@example.com", MembershipID: int64Ptr(3)},
		},
		{
			name: "test then replace",
			ops: []model.PatchOperation{
				op(model.PatchTest, "/membershipId", `3`),
				op(model.PatchReplace, "/membershipId", `4`),
			},
			want: model.MemberPatch{Name: "Ann", HomeAddress: "Main St 1", EmailAddress: "ann@example.com", MembershipID: int64Ptr(4)},
		},
		{
			name: "test compares numbers by value",
			ops: []model.PatchOperation{
				op(model.PatchTest, "/membershipId", `3.0`),
				op(model.PatchReplace, "/name", `"Bo"`),
			},
			want: model.MemberPatch{Name: "Bo", HomeAddress: "Main St 1", EmailAddress: "ann@example.com", MembershipID: int64Ptr(3)},
		},
		{
			name:    "test number mismatch",
			ops:     []model.PatchOperation{op(model.PatchTest, "/membershipId", `3.5`)},
			wantErr: true,
		},
		{
			name: "replace with null clears membership",
			ops:  []model.PatchOperation{op(model.PatchReplace, "/membershipId", `null`)},
			want: model.MemberPatch{Name: "Ann", HomeAddress: "Main St 1", EmailAddress: "ann@example.com"},
		},
		{
			name: "add null birthday",
			ops:  []model.PatchOperation{op(model.PatchAdd, "/birthday", `null`)},
			want: doc,
		},
		{
			name:    "escaped pointer",
			ops:     []model.PatchOperation{op(model.PatchReplace, "/na~1me", `"x"`)},
			wantErr: true,
		},
		{
			name:    "unknown field",
			ops:     []model.PatchOperation{op(model.PatchReplace, "/id", `1`)},
			wantErr: true,
		},
		{
			name:    "nested path",
			ops:     []model.PatchOperation{op(model.PatchReplace, "/birthday/year", `1`)},
			wantErr: true,
		},
		{
			name:    "replace missing member",
			ops:     []model.PatchOperation{op(model.PatchRemove, "/name", ""), op(model.PatchReplace, "/name", `"x"`)},
			wantErr: true,
		},
		{
			name:    "wrong type",
			ops:     []model.PatchOperation{op(model.PatchReplace, "/membershipId", `"three"`)},
			wantErr: true,
		},
		{
			name:    "unsupported op",
			ops:     []model.PatchOperation{op("merge", "/name", `"x"`)},
			wantErr: true,
		},
		{
			name:    "missing value",
			ops:     []model.PatchOperation{op(model.PatchAdd, "/name", "")},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := applyPatch(doc, tt.ops)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestApplyPatch_NullFromRequestBody(t *testing.T) {
	t.Parallel()

	doc := model.MemberPatch{
		Name:         "Ann",
		EmailAddress: "ann@example.com",
		Birthday:     &model.Date{},
		MembershipID: int64Ptr(7),
	}
	body := `[
		{"op":"replace","path":"/membershipId","value":null},
		{"op":"add","path":"/birthday","value":null}
	]`
	var ops []model.PatchOperation
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(body, &ops))

	got, err := applyPatch(doc, ops)
	require.NoError(t, err)
	require.Nil(t, got.MembershipID)
	require.Nil(t, got.Birthday)
	require.Equal(t, "Ann", got.Name)
}
