package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"devdiary/internal/contextutil"
	"devdiary/internal/journal"
	"devdiary/internal/service"
	"devdiary/internal/storage"
)

// EntryHandler handles journal entry requests.
type EntryHandler struct {
	entryService service.EntryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(entryService service.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

// EntryRequest is the body of an entry create request.
type EntryRequest struct {
	ProjectID    *int64               `json:"project_id"`
	Date         string               `json:"date"`
	Title        *string              `json:"title"`
	Body         *string              `json:"body"`
	LookingAhead *string              `json:"looking_ahead"`
	Mood         *int                 `json:"mood"`
	FocusScore   *int                 `json:"focus_score"`
	Tags         []string             `json:"tags"`
	Attachments  []storage.Attachment `json:"attachments"`
}

// EntryPatchRequest is the body of an entry update request.
// Omitted fields are left unchanged; project_id 0 clears the project.
type EntryPatchRequest struct {
	ProjectID    *int64                `json:"project_id"`
	Date         *string               `json:"date"`
	Title        *string               `json:"title"`
	Body         *string               `json:"body"`
	LookingAhead *string               `json:"looking_ahead"`
	Mood         *int                  `json:"mood"`
	FocusScore   *int                  `json:"focus_score"`
	Tags         *[]string             `json:"tags"`
	Attachments  *[]storage.Attachment `json:"attachments"`
}

// filterFromQuery reads entry filters from query parameters.
func filterFromQuery(q url.Values) (journal.Filter, bool) {
	f := journal.Filter{
		Tag:      strings.TrimSpace(q.Get("tag")),
		Search:   strings.TrimSpace(q.Get("search")),
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
	}
	if raw := q.Get("project_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return journal.Filter{}, false
		}
		f.ProjectID = &id
	}
	return f, true
}

// List returns entries matching the query filters.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	f, ok := filterFromQuery(r.URL.Query())
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid project_id")
		return
	}
	entries, err := h.entryService.List(ctx, contextutil.SessionFromContext(ctx), f)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list entries")
		return
	}
	writeJSON(ctx, w, http.StatusOK, entries)
}

// Get returns one entry.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	entry, err := h.entryService.Get(ctx, contextutil.SessionFromContext(ctx), id)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load entry")
		return
	}
	writeJSON(ctx, w, http.StatusOK, entry)
}

// Create stores a new entry.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req EntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	entry, err := h.entryService.Create(ctx, contextutil.SessionFromContext(ctx), service.EntryInput{
		ProjectID:    req.ProjectID,
		Date:         req.Date,
		Title:        req.Title,
		Body:         req.Body,
		LookingAhead: req.LookingAhead,
		Mood:         req.Mood,
		FocusScore:   req.FocusScore,
		Tags:         req.Tags,
		Attachments:  req.Attachments,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create entry")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, entry)
}

// Update changes the provided fields of an entry.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req EntryPatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	entry, err := h.entryService.Update(ctx, contextutil.SessionFromContext(ctx), id, service.EntryPatch{
		ProjectID:    req.ProjectID,
		Date:         req.Date,
		Title:        req.Title,
		Body:         req.Body,
		LookingAhead: req.LookingAhead,
		Mood:         req.Mood,
		FocusScore:   req.FocusScore,
		Tags:         req.Tags,
		Attachments:  req.Attachments,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update entry")
		return
	}
	writeJSON(ctx, w, http.StatusOK, entry)
}

// Delete removes an entry.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.entryService.Delete(ctx, contextutil.SessionFromContext(ctx), id); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
