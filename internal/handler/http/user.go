package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/biz-records/internal/utils"
	"github.com/MKhiriev/biz-records/models"
)

// Fields a full replacement (PUT) must carry, per schema.
var (
	selfReplaceRequired  = []string{models.FieldPassword}
	adminReplaceRequired = []string{models.FieldUsername, models.FieldPassword}
)

// schemaFor selects the user schema before any body is decoded. Every
// (role, action) pair used by the routes is registered, so a miss is a
// programming error.
func schemaFor(role models.Role, action models.Action) models.UserSchema {
	schema, ok := models.UserSchemaFor(role, action)
	if !ok {
		panic(fmt.Sprintf("no user schema for %s/%s", role, action))
	}
	return schema
}

// caller returns the authenticated user stored by the auth middleware.
func caller(r *http.Request) (models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrUnauthenticated
	}
	return user, nil
}

// signup handles POST /user/create: public self-registration.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	schema := schemaFor(models.RolePublic, models.ActionCreate)

	var input models.UserInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), schema.Filter(input))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, schema.Render(user), http.StatusCreated)
}

// login handles POST /user/token: exchanges credentials for a token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token.String()}, http.StatusOK)
}

// logout handles DELETE /user/token: revokes the caller's token key.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.Logout(r.Context(), user.ID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, schemaFor(models.RoleSelf, models.ActionRetrieve).Render(user), http.StatusOK)
}

func (h *Handler) replaceMe(w http.ResponseWriter, r *http.Request) {
	h.changeMe(w, r, selfReplaceRequired...)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	h.changeMe(w, r)
}

func (h *Handler) changeMe(w http.ResponseWriter, r *http.Request, required ...string) {
	schema := schemaFor(models.RoleSelf, models.ActionUpdate)

	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.UserInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), user.ID, schema.Filter(input), required...)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, schema.Render(updated), http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	schema := schemaFor(models.RoleAdmin, models.ActionList)

	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, schema.RenderList(users), http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	schema := schemaFor(models.RoleAdmin, models.ActionCreate)

	var input models.UserInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), schema.Filter(input))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, schema.Render(user), http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	schema := schemaFor(models.RoleAdmin, models.ActionRetrieve)

	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, schema.Render(user), http.StatusOK)
}

func (h *Handler) replaceUser(w http.ResponseWriter, r *http.Request) {
	h.changeUser(w, r, adminReplaceRequired...)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	h.changeUser(w, r)
}

func (h *Handler) changeUser(w http.ResponseWriter, r *http.Request, required ...string) {
	schema := schemaFor(models.RoleAdmin, models.ActionUpdate)

	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.UserInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, schema.Filter(input), required...)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, schema.Render(user), http.StatusOK)
}

// deleteUser handles DELETE /user/manage/{id}. A user who still created
// databases or projects cannot be deleted and gets a 500 with a message.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
