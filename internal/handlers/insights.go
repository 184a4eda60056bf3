package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"devdiary/internal/contextutil"
	"devdiary/internal/service"
)

// CalendarHandler serves the month calendar view.
type CalendarHandler struct {
	calendarService service.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(calendarService service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// ServeHTTP returns per-day counts and average moods for /calendar/{year}/{month}.
func (h *CalendarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year")
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month")
		return
	}
	f, ok := filterFromQuery(r.URL.Query())
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid project_id")
		return
	}

	result, err := h.calendarService.Month(ctx, contextutil.SessionFromContext(ctx), year, month, f)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load calendar")
		return
	}
	writeJSON(ctx, w, http.StatusOK, result)
}

// InsightsHandler serves journal statistics.
type InsightsHandler struct {
	insightsService service.InsightsService
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

func (h *InsightsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	summary, err := h.insightsService.Summary(ctx, contextutil.SessionFromContext(ctx))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load summary")
		return
	}
	writeJSON(ctx, w, http.StatusOK, summary)
}

// MoodTrend returns the most recent moods. The days query parameter defaults to 30.
func (h *InsightsHandler) MoodTrend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	days := service.DefaultTrendDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid days")
			return
		}
		days = n
	}

	points, err := h.insightsService.MoodTrend(ctx, contextutil.SessionFromContext(ctx), days)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load mood trend")
		return
	}
	writeJSON(ctx, w, http.StatusOK, points)
}
