package http

import (
	"net/http"

	"github.com/MKhiriev/biz-records/internal/service"
	"github.com/MKhiriev/biz-records/internal/utils"
	"github.com/MKhiriev/biz-records/models"
)

// ── clients ──────────────────────────────────────────────────────────────────

// listClients renders clients newest first, name and creation date only.
func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.services.ClientService.ListClients(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ClientViews(clients), http.StatusOK)
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var input models.ClientInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	client, err := h.services.ClientService.CreateClient(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, client.View(), http.StatusCreated)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	client, err := h.services.ClientService.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, client.View(), http.StatusOK)
}

func (h *Handler) replaceClient(w http.ResponseWriter, r *http.Request) {
	h.changeClient(w, r, service.ClientRequiredFields()...)
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	h.changeClient(w, r)
}

func (h *Handler) changeClient(w http.ResponseWriter, r *http.Request, required ...string) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.ClientInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	client, err := h.services.ClientService.UpdateClient(r.Context(), id, input, required...)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, client.View(), http.StatusOK)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ClientService.DeleteClient(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ── databases ────────────────────────────────────────────────────────────────

func (h *Handler) listDatabases(w http.ResponseWriter, r *http.Request) {
	databases, err := h.services.DatabaseService.ListDatabases(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, databases, http.StatusOK)
}

// createDatabase attributes the new database to the caller; a created_by
// in the body is ignored.
func (h *Handler) createDatabase(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.DatabaseInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	database, err := h.services.DatabaseService.CreateDatabase(r.Context(), input, user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, database, http.StatusCreated)
}

func (h *Handler) getDatabase(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	database, err := h.services.DatabaseService.GetDatabase(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, database, http.StatusOK)
}

func (h *Handler) replaceDatabase(w http.ResponseWriter, r *http.Request) {
	h.changeDatabase(w, r, service.DatabaseRequiredFields()...)
}

func (h *Handler) updateDatabase(w http.ResponseWriter, r *http.Request) {
	h.changeDatabase(w, r)
}

func (h *Handler) changeDatabase(w http.ResponseWriter, r *http.Request, required ...string) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.DatabaseInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	database, err := h.services.DatabaseService.UpdateDatabase(r.Context(), id, input, required...)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, database, http.StatusOK)
}

func (h *Handler) deleteDatabase(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.DatabaseService.DeleteDatabase(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ── projects ─────────────────────────────────────────────────────────────────

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.ListProjects(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.ProjectInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.services.ProjectService.CreateProject(r.Context(), input, user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, project, http.StatusCreated)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.services.ProjectService.GetProject(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) replaceProject(w http.ResponseWriter, r *http.Request) {
	h.changeProject(w, r, service.ProjectRequiredFields()...)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	h.changeProject(w, r)
}

func (h *Handler) changeProject(w http.ResponseWriter, r *http.Request, required ...string) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.ProjectInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.services.ProjectService.UpdateProject(r.Context(), id, input, required...)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, project, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.ProjectService.DeleteProject(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
