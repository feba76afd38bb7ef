package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMember = "9b2f4c1e-3a5d-4f6e-8b7c-1d2e3f4a5b6c"

func TestRole_IsValid(t *testing.T) {
	for _, r := range Roles() {
		assert.True(t, r.IsValid(), string(r))
	}

	assert.False(t, Role("OWNER").IsValid())
	assert.False(t, Role("admin").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRole_Protected(t *testing.T) {
	assert.True(t, RoleSuperAdmin.Protected())
	assert.False(t, RoleAdmin.Protected())
	assert.False(t, RoleMember.Protected())
}

func TestListMembersPayload_Validate(t *testing.T) {
	cases := []struct {
		name  string
		id    string
		valid bool
		want  int64
	}{
		{"numeric", "42", true, 42},
		{"negative", "-1", true, -1},
		{"signed", "+7", true, 7},
		{"missing", "", false, 0},
		{"alpha", "abc", false, 0},
		{"decimal", "1.5", false, 0},
		{"overflow", "99999999999999999999", false, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &ListMembersPayload{BoardParams{ID: tc.id}}
			err := p.Validate()
			if tc.valid {
				require.NoError(t, err)
				assert.Equal(t, tc.want, p.BoardID())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUpdateMemberRolePayload_Validate(t *testing.T) {
	ok := &UpdateMemberRolePayload{BoardParams: BoardParams{ID: "1"}, Member: validMember, Role: "ADMIN"}
	require.NoError(t, ok.Validate())

	// Unknown roles pass shape validation; the registry check happens later.
	unknownRole := &UpdateMemberRolePayload{BoardParams: BoardParams{ID: "1"}, Member: validMember, Role: "OWNER"}
	require.NoError(t, unknownRole.Validate())

	missingRole := &UpdateMemberRolePayload{BoardParams: BoardParams{ID: "1"}, Member: validMember}
	assert.Error(t, missingRole.Validate())

	badMember := &UpdateMemberRolePayload{BoardParams: BoardParams{ID: "1"}, Member: "not-a-uuid", Role: "ADMIN"}
	assert.Error(t, badMember.Validate())
}

func TestDeleteMemberPayload_Validate(t *testing.T) {
	ok := &DeleteMemberPayload{BoardParams: BoardParams{ID: "7"}, Member: validMember}
	require.NoError(t, ok.Validate())
	assert.Equal(t, int64(7), ok.BoardID())

	missing := &DeleteMemberPayload{BoardParams: BoardParams{ID: "7"}}
	assert.Error(t, missing.Validate())
}
