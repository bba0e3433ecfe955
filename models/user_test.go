package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"test1@EXAMPLE.com", "test1@example.com"},
		{"Test2@example.com", "Test2@example.com"},
		{"TEST3@EXAMPLE.COM", "TEST3@example.com"},
		{"test4@example.COM", "test4@example.com"},
		{"  spaced@Example.org ", "spaced@example.org"},
		{"no-at-sign", "no-at-sign"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := NormalizeEmail(tt.email)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeEmail(got), "normalization must be idempotent")
		})
	}
}

func TestUserInput_Apply(t *testing.T) {
	u := User{Username: "old", Email: "a@b.c", IsActive: true}

	UserInput{
		Username:    strPtr("new"),
		Email:       strPtr("Jane@EXAMPLE.com"),
		FirstName:   strPtr("Jane"),
		Password:    strPtr("ignored"),
		IsStaff:     boolPtr(true),
		IsSuperuser: boolPtr(true),
	}.Apply(&u)

	assert.Equal(t, "new", u.Username)
	assert.Equal(t, "Jane@example.com", u.Email)
	assert.Equal(t, "Jane", u.FirstName)
	assert.Empty(t, u.Password, "password must not be copied without hashing")
	assert.True(t, u.IsActive)
	assert.True(t, u.IsStaff)
	assert.True(t, u.IsSuperuser)
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, User{IsActive: true, IsStaff: true}.IsAdmin())
	assert.False(t, User{IsActive: true}.IsAdmin())
	assert.False(t, User{IsActive: false, IsStaff: true}.IsAdmin())
}

func TestUserSchemaFor_KnownCombinations(t *testing.T) {
	tests := []struct {
		role   Role
		action Action
		name   string
	}{
		{RolePublic, ActionCreate, "signup"},
		{RoleSelf, ActionRetrieve, "user"},
		{RoleSelf, ActionUpdate, "user"},
		{RoleAdmin, ActionList, "admin-list"},
		{RoleAdmin, ActionRetrieve, "admin-detail"},
		{RoleAdmin, ActionCreate, "admin-detail"},
		{RoleAdmin, ActionUpdate, "admin-detail"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.action), func(t *testing.T) {
			schema, ok := UserSchemaFor(tt.role, tt.action)
			require.True(t, ok)
			assert.Equal(t, tt.name, schema.Name)
			assert.False(t, schema.CanRead(FieldPassword), "password must never be readable")
		})
	}
}

func TestUserSchemaFor_UnknownCombination(t *testing.T) {
	_, ok := UserSchemaFor(RoleSelf, ActionList)
	assert.False(t, ok)

	_, ok = UserSchemaFor(RolePublic, ActionRetrieve)
	assert.False(t, ok)
}

func TestUserSchema_Render_SelfFieldsOnly(t *testing.T) {
	schema, _ := UserSchemaFor(RoleSelf, ActionRetrieve)
	u := User{
		ID:          7,
		Username:    "testUser",
		Password:    "$2a$hash",
		Email:       "t@example.com",
		FirstName:   "Test",
		LastName:    "Name",
		IsStaff:     true,
		IsSuperuser: true,
	}

	got := schema.Render(u)

	assert.Equal(t, map[string]any{
		FieldUsername:  "testUser",
		FieldFirstName: "Test",
		FieldLastName:  "Name",
	}, got)
}

func TestUserSchema_Render_AdminDetailExtendsBase(t *testing.T) {
	schema, _ := UserSchemaFor(RoleAdmin, ActionRetrieve)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	u := User{ID: 3, Username: "u", IsActive: true, DateCreated: created}

	got := schema.Render(u)

	assert.Len(t, got, 9)
	assert.Equal(t, int64(3), got[FieldID])
	assert.Equal(t, true, got[FieldIsActive])
	assert.Equal(t, created, got[FieldDateCreated])
	assert.NotContains(t, got, FieldPassword)
}

func TestUserSchema_RenderList_AdminList(t *testing.T) {
	schema, _ := UserSchemaFor(RoleAdmin, ActionList)

	got := schema.RenderList([]User{{ID: 1, Username: "a"}, {ID: 2, Username: "b"}})

	require.Len(t, got, 2)
	for _, row := range got {
		assert.Len(t, row, 7)
		assert.NotContains(t, row, FieldIsSuperuser)
	}
}

func TestUserSchema_Filter_SelfDropsPrivileges(t *testing.T) {
	schema, _ := UserSchemaFor(RoleSelf, ActionUpdate)
	in := UserInput{
		Username:    strPtr("hijack"),
		Email:       strPtr("other@example.com"),
		Password:    strPtr("newpassword123"),
		FirstName:   strPtr("New"),
		IsStaff:     boolPtr(true),
		IsSuperuser: boolPtr(true),
	}

	got := schema.Filter(in)

	assert.Nil(t, got.Username)
	assert.Nil(t, got.Email)
	assert.Nil(t, got.IsStaff)
	assert.Nil(t, got.IsSuperuser)
	require.NotNil(t, got.Password)
	assert.Equal(t, "newpassword123", *got.Password)
	require.NotNil(t, got.FirstName)
}

func TestUserSchema_Filter_AdminKeepsPrivileges(t *testing.T) {
	schema, _ := UserSchemaFor(RoleAdmin, ActionCreate)
	in := UserInput{Username: strPtr("u"), IsStaff: boolPtr(true), IsActive: boolPtr(false)}

	got := schema.Filter(in)

	assert.Equal(t, in, got)
}
