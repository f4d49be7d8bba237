package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/zapponejosh/kalender-jawa/internal/calendar"
	"github.com/zapponejosh/kalender-jawa/internal/config"
	"github.com/zapponejosh/kalender-jawa/internal/database"
	"github.com/zapponejosh/kalender-jawa/internal/export"
	"github.com/zapponejosh/kalender-jawa/internal/i18n"
	"github.com/zapponejosh/kalender-jawa/internal/logger"
)

// Store is the persistence the handlers need. *database.DB implements it.
type Store interface {
	Health(ctx context.Context) error
	CreateSavedDate(ctx context.Context, s *database.SavedDate) error
	GetSavedDate(ctx context.Context, id int64) (*database.SavedDate, error)
	ListSavedDates(ctx context.Context, limit, offset int) (*database.SavedDatePage, error)
	ListSavedDatesByWeton(ctx context.Context, dayName, pasaran string) ([]database.SavedDate, error)
	UpdateSavedDateNotes(ctx context.Context, id int64, notes *string) error
	DeleteSavedDate(ctx context.Context, id int64) error
}

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	store  Store
	conv   *calendar.Converter
	cfg    *config.Config
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store Store, conv *calendar.Converter, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		store:  store,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.store.Health(ctx); err != nil {
		logger.FromContext(ctx, h.logger).Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	stepping := config.SteppingBlock
	if h.conv.Iterative() {
		stepping = config.SteppingIterative
	}

	WriteSuccess(w, map[string]string{
		"status":   "healthy",
		"stepping": stepping,
	})
}

// =============================================================================
// Conversion
// =============================================================================

// ConvertToday handles GET /api/v1/convert/today
func (h *Handlers) ConvertToday(w http.ResponseWriter, r *http.Request) {
	result := h.conv.Today()
	logger.Conversion(r.Context(), h.logger, "today", result.Gregorian.Date, result.Formatted)
	WriteSuccess(w, result)
}

// ConvertDate handles GET /api/v1/convert/{YYYY-MM-DD}
func (h *Handlers) ConvertDate(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	result, err := h.conv.Convert(dateStr)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	logger.Conversion(r.Context(), h.logger, "forward", dateStr, result.Formatted)
	WriteSuccess(w, result)
}

// ConvertRange handles GET /api/v1/convert/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) ConvertRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := calendar.ParseDateString(startStr)
	if err != nil {
		WriteDomainError(w, fmt.Errorf("start: %w", err))
		return
	}
	end, err := calendar.ParseDateString(endStr)
	if err != nil {
		WriteDomainError(w, fmt.Errorf("end: %w", err))
		return
	}

	if days := calendar.DaysFromAnchor(end) - calendar.DaysFromAnchor(start) + 1; days > h.cfg.MaxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", h.cfg.MaxRangeDays))
		return
	}

	results, err := h.conv.Range(start, end)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"start": startStr,
		"end":   endStr,
		"days":  results,
	})
}

// ConvertReverse handles POST /api/v1/convert/reverse
// with body {"date": 1, "month": "Sura", "year": 1955}.
func (h *Handlers) ConvertReverse(w http.ResponseWriter, r *http.Request) {
	var in calendar.JavaneseInput
	if err := decodeJSON(r, &in); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	result, err := h.conv.FromJavanese(in)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	input := fmt.Sprintf("%d %s %d", in.Date, in.Month, in.Year)
	logger.Conversion(r.Context(), h.logger, "reverse", input, result.Gregorian.Date)
	WriteSuccess(w, result)
}

// =============================================================================
// Month calendar
// =============================================================================

// monthResponse is a month view with localized headings.
type monthResponse struct {
	*calendar.MonthView
	Lang   string            `json:"lang"`
	Title  string            `json:"title"`
	Labels map[string]string `json:"labels"`
}

// GetMonth handles GET /api/v1/calendar/{YYYY-MM}
func (h *Handlers) GetMonth(w http.ResponseWriter, r *http.Request) {
	view, ok := h.monthView(w, r)
	if !ok {
		return
	}

	tag := h.language(r)
	WriteSuccess(w, monthResponse{
		MonthView: view,
		Lang:      tag.String(),
		Title:     i18n.GregorianMonthName(tag, view.Month) + " " + strconv.Itoa(view.Year),
		Labels:    i18n.Labels(tag),
	})
}

// GetMonthPDF handles GET /api/v1/calendar/{YYYY-MM}/pdf
func (h *Handlers) GetMonthPDF(w http.ResponseWriter, r *http.Request) {
	view, ok := h.monthView(w, r)
	if !ok {
		return
	}

	// Render fully before writing so failures can still be JSON
	var buf bytes.Buffer
	if err := export.WriteMonthPDF(view, h.language(r), &buf); err != nil {
		logger.FromContext(r.Context(), h.logger).Error("failed to render month pdf",
			slog.String("month", chi.URLParam(r, "month")),
			slog.Any("error", err))
		WriteInternalError(w, "Failed to render PDF")
		return
	}

	filename := fmt.Sprintf("kalender-%04d-%02d.pdf", view.Year, int(view.Month))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (h *Handlers) monthView(w http.ResponseWriter, r *http.Request) (*calendar.MonthView, bool) {
	year, month, err := calendar.ParseMonthString(chi.URLParam(r, "month"))
	if err != nil {
		WriteDomainError(w, err)
		return nil, false
	}

	view, err := h.conv.MonthGrid(year, month)
	if err != nil {
		WriteDomainError(w, err)
		return nil, false
	}
	return view, true
}

// =============================================================================
// Reference data
// =============================================================================

// GetConstants handles GET /api/v1/constants
func (h *Handlers) GetConstants(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, calendar.Constants())
}

// GetLabels handles GET /api/v1/labels?lang=
func (h *Handlers) GetLabels(w http.ResponseWriter, r *http.Request) {
	tag := h.language(r)
	WriteSuccess(w, map[string]interface{}{
		"lang":   tag.String(),
		"labels": i18n.Labels(tag),
	})
}

// language picks the response language from ?lang=, then
// Accept-Language, then the configured default.
func (h *Handlers) language(r *http.Request) language.Tag {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return i18n.Match(lang)
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return i18n.Match(accept)
	}
	return i18n.Match(h.cfg.DefaultLang)
}

// =============================================================================
// Saved dates
// =============================================================================

// ListSaved handles GET /api/v1/saved?limit=&offset=
func (h *Handlers) ListSaved(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := queryInt(r, "limit", database.DefaultPageSize)
	offset := queryInt(r, "offset", 0)

	page, err := h.store.ListSavedDates(ctx, limit, offset)
	if err != nil {
		logger.FromContext(ctx, h.logger).Error("failed to list saved dates", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve saved dates")
		return
	}

	WriteSuccess(w, page)
}

// createSavedRequest is the body of POST /api/v1/saved.
type createSavedRequest struct {
	Label string `json:"label"`
	Date  string `json:"date"` // YYYY-MM-DD
	Notes string `json:"notes,omitempty"`
}

// CreateSaved handles POST /api/v1/saved
func (h *Handlers) CreateSaved(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createSavedRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	req.Label = strings.TrimSpace(req.Label)
	if req.Label == "" {
		WriteBadRequest(w, "label is required")
		return
	}

	result, err := h.conv.Convert(req.Date)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	saved := NewSavedDate(req.Label, result, req.Notes)
	if err := h.store.CreateSavedDate(ctx, saved); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			WriteError(w, http.StatusConflict, "A saved date with this label already exists for that day", CodeDuplicate)
			return
		}
		logger.FromContext(ctx, h.logger).Error("failed to create saved date", slog.Any("error", err))
		WriteInternalError(w, "Failed to save date")
		return
	}

	WriteCreated(w, saved)
}

// NewSavedDate fills a saved-date row from a conversion result.
func NewSavedDate(label string, result *calendar.Result, notes string) *database.SavedDate {
	return &database.SavedDate{
		Label:         label,
		GregorianDate: result.Gregorian.Date,
		Javanese:      result.Formatted,
		DayName:       result.Gregorian.DayName,
		Pasaran:       result.Cycles.Pasaran,
		Wuku:          result.Cycles.Wuku,
		Notes:         database.NullString(notes),
	}
}

// GetSaved handles GET /api/v1/saved/{id}
func (h *Handlers) GetSaved(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	saved, err := h.store.GetSavedDate(r.Context(), id)
	if err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Saved date not found")
			return
		}
		logger.FromContext(r.Context(), h.logger).Error("failed to get saved date", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve saved date")
		return
	}

	WriteSuccess(w, saved)
}

// UpdateSaved handles PATCH /api/v1/saved/{id} with body {"notes": "..."}.
// An empty or missing notes field clears the notes.
func (h *Handlers) UpdateSaved(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Notes string `json:"notes"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.store.UpdateSavedDateNotes(ctx, id, database.NullString(req.Notes)); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Saved date not found")
			return
		}
		logger.FromContext(ctx, h.logger).Error("failed to update saved date", slog.Any("error", err))
		WriteInternalError(w, "Failed to update saved date")
		return
	}

	saved, err := h.store.GetSavedDate(ctx, id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteSuccess(w, saved)
}

// DeleteSaved handles DELETE /api/v1/saved/{id}
func (h *Handlers) DeleteSaved(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteSavedDate(r.Context(), id); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Saved date not found")
			return
		}
		logger.FromContext(r.Context(), h.logger).Error("failed to delete saved date", slog.Any("error", err))
		WriteInternalError(w, "Failed to delete saved date")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Saved date deleted"})
}

// ListSavedByWeton handles GET /api/v1/saved/weton?day=Selasa&pasaran=Pon
// Either parameter may be omitted; names are matched case-insensitively.
func (h *Handlers) ListSavedByWeton(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var dayName, pasaran string
	if v := q.Get("day"); v != "" {
		name, ok := calendar.LookupDayName(v)
		if !ok {
			WriteBadRequest(w, fmt.Sprintf("Unknown day name: %s", v))
			return
		}
		dayName = name
	}
	if v := q.Get("pasaran"); v != "" {
		p, ok := calendar.LookupPasaran(v)
		if !ok {
			WriteBadRequest(w, fmt.Sprintf("Unknown pasaran: %s", v))
			return
		}
		pasaran = p.String()
	}
	if dayName == "" && pasaran == "" {
		WriteBadRequest(w, "At least one of day or pasaran is required")
		return
	}

	saved, err := h.store.ListSavedDatesByWeton(ctx, dayName, pasaran)
	if err != nil {
		logger.FromContext(ctx, h.logger).Error("failed to list saved dates by weton", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve saved dates")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"day":     dayName,
		"pasaran": pasaran,
		"items":   saved,
	})
}

// =============================================================================
// Helpers
// =============================================================================

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}

// pathID parses the {id} URL parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		WriteBadRequest(w, "Invalid saved date ID")
		return 0, false
	}
	return id, true
}

// queryInt reads a non-negative integer query parameter, falling back to
// def when it is missing or malformed.
func queryInt(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}
