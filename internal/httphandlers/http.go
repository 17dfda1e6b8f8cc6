package httphandlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"zaazu/internal/manager"
	"zaazu/internal/service"
	"zaazu/internal/types"
	"zaazu/logger"
)

type ApiHandler struct {
	mn         manager.Manager
	content    service.ContentService
	events     service.EventService
	thumbnails service.ThumbnailService
	validate   *validator.Validate
}

func NewApiHandler(
	mn manager.Manager,
	content service.ContentService,
	events service.EventService,
	thumbnails service.ThumbnailService) *ApiHandler {
	return &ApiHandler{
		mn:         mn,
		content:    content,
		events:     events,
		thumbnails: thumbnails,
		validate:   validator.New(),
	}
}

func (h *ApiHandler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.mn.ValidateToken(r.Header.Get("X-Access-Key")); err != nil {
			unauthorized(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func decodeBody[T any](r *http.Request, validate *validator.Validate) (*T, error) {
	var out T
	if err := json.NewDecoder(r.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "invalid request body")
	}
	if err := validate.Struct(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadThumbnail accepts multipart form data {file, type, id} and stores
// the image under thumbnails/<type>/<id>.<ext>.
func (h *ApiHandler) UploadThumbnail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		badRequest(w, errors.Wrap(err, "failed to parse upload"))
		return
	}

	section := r.FormValue("type")
	if !service.ValidThumbnailSection(section) {
		badRequest(w, errors.Errorf("invalid type: %q, expected videos, jogos or atividades", section))
		return
	}

	id := r.FormValue("id")
	if id == "" {
		badRequest(w, errors.New("id is required"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, errors.New("file is required"))
		return
	}
	defer file.Close()

	url, err := h.thumbnails.Save(r.Context(), service.SaveThumbnailParams{
		Section:  section,
		ID:       id,
		FileName: header.Filename,
		Size:     header.Size,
		Content:  file,
	})
	if err != nil {
		serverError(w, errors.Wrap(err, "failed to store thumbnail"))
		return
	}

	logger.Info("thumbnail stored",
		zap.String("section", section),
		zap.String("id", id),
		zap.Int64("size", header.Size))
	writeJSON(w, http.StatusOK, types.ThumbnailResponse{Success: true, URL: url})
}

func (h *ApiHandler) CreateLogEvent(w http.ResponseWriter, r *http.Request) {
	params, err := decodeBody[types.CreateLogEventParams](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}

	event, err := h.events.Record(r.Context(), *params)
	if err != nil {
		serverError(w, err)
		return
	}
	ok(w, "event recorded", event)
}

// DescribeLogsAPI answers GET on the logs path with a static description
// of the expected payload.
func (h *ApiHandler) DescribeLogsAPI(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":   "Zaazu logging API",
		"method": "POST",
		"fields": map[string]string{
			"action":     "required",
			"details":    "required",
			"user":       "required",
			"userId":     "optional",
			"sessionId":  "optional",
			"deviceInfo": "optional",
		},
	})
}

func (h *ApiHandler) ListRecentLogEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.Recent(r.Context(), 0)
	if err != nil {
		serverError(w, err)
		return
	}
	ok(w, "recent events", events)
}

func (h *ApiHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.mn.Status(r.Context())
	if err != nil {
		serverError(w, err)
		return
	}
	ok(w, "server status", status)
}
