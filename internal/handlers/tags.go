package handlers

import (
	"net/http"

	"devdiary/internal/contextutil"
	"devdiary/internal/service"
)

// TagHandler handles tag requests.
type TagHandler struct {
	tagService service.TagService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// TagRequest is the body of a tag create request.
type TagRequest struct {
	Name string `json:"name"`
}

func (h *TagHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tags, err := h.tagService.List(ctx, contextutil.SessionFromContext(ctx))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list tags")
		return
	}
	writeJSON(ctx, w, http.StatusOK, tags)
}

// Create returns the existing tag when the name is taken, so repeated calls are safe.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req TagRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	tag, err := h.tagService.Create(ctx, contextutil.SessionFromContext(ctx), req.Name)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create tag")
		return
	}
	writeJSON(ctx, w, http.StatusOK, tag)
}

func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.tagService.Delete(ctx, contextutil.SessionFromContext(ctx), id); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete tag")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
