// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Role is the caller role used to pick a user schema.
type Role string

const (
	// RolePublic is an anonymous caller (signup).
	RolePublic Role = "public"
	// RoleSelf is an authenticated caller acting on their own profile.
	RoleSelf Role = "self"
	// RoleAdmin is an authenticated staff caller acting on any user.
	RoleAdmin Role = "admin"
)

// Action is the CRUD action used to pick a user schema.
type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
)

// User field names as they appear on the wire.
const (
	FieldID          = "id"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldEmail       = "email"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldIsActive    = "is_active"
	FieldIsStaff     = "is_staff"
	FieldIsSuperuser = "is_superuser"
	FieldDateCreated = "date_created"
)

// UserSchema is a named field policy: which user attributes are rendered
// and which are accepted from a request body. Password is never readable.
type UserSchema struct {
	Name     string
	Readable []string
	Writable []string
}

type schemaKey struct {
	role   Role
	action Action
}

var (
	baseUserFields = []string{FieldUsername, FieldEmail, FieldFirstName, FieldLastName}
	selfFields     = []string{FieldUsername, FieldFirstName, FieldLastName}

	adminListExtra   = []string{FieldID, FieldIsActive, FieldIsStaff}
	adminDetailExtra = []string{FieldID, FieldIsActive, FieldIsStaff, FieldIsSuperuser, FieldDateCreated}

	selfWritable   = []string{FieldFirstName, FieldLastName, FieldPassword}
	signupWritable = []string{FieldUsername, FieldEmail, FieldFirstName, FieldLastName, FieldPassword}
	adminWritable  = []string{FieldUsername, FieldEmail, FieldFirstName, FieldLastName, FieldPassword,
		FieldIsActive, FieldIsStaff, FieldIsSuperuser}
)

var (
	selfSchema = UserSchema{
		Name:     "user",
		Readable: selfFields,
		Writable: selfWritable,
	}
	signupSchema = UserSchema{
		Name:     "signup",
		Readable: baseUserFields,
		Writable: signupWritable,
	}
	adminListSchema = UserSchema{
		Name:     "admin-list",
		Readable: compose(baseUserFields, adminListExtra),
	}
	adminDetailSchema = UserSchema{
		Name:     "admin-detail",
		Readable: compose(baseUserFields, adminDetailExtra),
		Writable: adminWritable,
	}
)

var userSchemas = map[schemaKey]UserSchema{
	{RolePublic, ActionCreate}: signupSchema,

	{RoleSelf, ActionRetrieve}: selfSchema,
	{RoleSelf, ActionUpdate}:   selfSchema,

	{RoleAdmin, ActionList}:     adminListSchema,
	{RoleAdmin, ActionRetrieve}: adminDetailSchema,
	{RoleAdmin, ActionCreate}:   adminDetailSchema,
	{RoleAdmin, ActionUpdate}:   adminDetailSchema,
}

// UserSchemaFor returns the schema registered for the given role and action.
// ok is false when the combination is not allowed at all.
func UserSchemaFor(role Role, action Action) (UserSchema, bool) {
	schema, ok := userSchemas[schemaKey{role, action}]
	return schema, ok
}

// Render returns the readable fields of u as a JSON-ready map.
func (s UserSchema) Render(u User) map[string]any {
	all := map[string]any{
		FieldID:          u.ID,
		FieldUsername:    u.Username,
		FieldEmail:       u.Email,
		FieldFirstName:   u.FirstName,
		FieldLastName:    u.LastName,
		FieldIsActive:    u.IsActive,
		FieldIsStaff:     u.IsStaff,
		FieldIsSuperuser: u.IsSuperuser,
		FieldDateCreated: u.DateCreated,
	}

	out := make(map[string]any, len(s.Readable))
	for _, field := range s.Readable {
		out[field] = all[field]
	}

	return out
}

// RenderList renders every user with [UserSchema.Render].
func (s UserSchema) RenderList(users []User) []map[string]any {
	out := make([]map[string]any, 0, len(users))
	for _, u := range users {
		out = append(out, s.Render(u))
	}

	return out
}

// Filter drops every field of in that the schema does not accept.
func (s UserSchema) Filter(in UserInput) UserInput {
	var out UserInput
	for _, field := range s.Writable {
		switch field {
		case FieldUsername:
			out.Username = in.Username
		case FieldPassword:
			out.Password = in.Password
		case FieldEmail:
			out.Email = in.Email
		case FieldFirstName:
			out.FirstName = in.FirstName
		case FieldLastName:
			out.LastName = in.LastName
		case FieldIsActive:
			out.IsActive = in.IsActive
		case FieldIsStaff:
			out.IsStaff = in.IsStaff
		case FieldIsSuperuser:
			out.IsSuperuser = in.IsSuperuser
		}
	}

	return out
}

// CanRead reports whether field is rendered by the schema.
func (s UserSchema) CanRead(field string) bool {
	return slices.Contains(s.Readable, field)
}

// CanWrite reports whether field is accepted by the schema.
func (s UserSchema) CanWrite(field string) bool {
	return slices.Contains(s.Writable, field)
}

func compose(base []string, extra ...[]string) []string {
	out := make([]string, 0, len(base)+8)
	out = append(out, base...)
	for _, fields := range extra {
		for _, f := range fields {
			if !slices.Contains(out, f) {
				out = append(out, f)
			}
		}
	}

	return out
}
