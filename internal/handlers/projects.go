package handlers

import (
	"net/http"

	"devdiary/internal/contextutil"
	"devdiary/internal/service"
)

// ProjectHandler handles project requests.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ProjectRequest is the body of project create and update requests.
type ProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projects, err := h.projectService.List(ctx, contextutil.SessionFromContext(ctx))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list projects")
		return
	}
	writeJSON(ctx, w, http.StatusOK, projects)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req ProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in := service.ProjectInput{Description: req.Description}
	if req.Name != nil {
		in.Name = *req.Name
	}
	project, err := h.projectService.Create(ctx, contextutil.SessionFromContext(ctx), in)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create project")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req ProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	project, err := h.projectService.Update(ctx, contextutil.SessionFromContext(ctx), id, service.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update project")
		return
	}
	writeJSON(ctx, w, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.projectService.Delete(ctx, contextutil.SessionFromContext(ctx), id); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete project")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
