package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	versionlifecycle "enablehub/contexts/content-hub/version-lifecycle-service"
	hubdomainerrors "enablehub/contexts/content-hub/version-lifecycle-service/domain/errors"
	hubhttp "enablehub/contexts/content-hub/version-lifecycle-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "enablehub/internal/platform/httpserver/docs"
)

type Server struct {
	mux    *http.ServeMux
	logger *slog.Logger
	addr   string
	hub    versionlifecycle.Module
}

func New(hub versionlifecycle.Module, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:    http.NewServeMux(),
		logger: logger,
		addr:   addr,
		hub:    hub,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for httptest-driven tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /hub/assets", s.handleCreateAsset)
	s.mux.HandleFunc("GET /hub/assets", s.handleListAssets)
	s.mux.HandleFunc("GET /hub/assets/{asset_id}", s.handleGetAsset)
	s.mux.HandleFunc("POST /hub/assets/{asset_id}/versions", s.handleCreateVersion)
	s.mux.HandleFunc("GET /hub/assets/{asset_id}/versions", s.handleListVersions)
	s.mux.HandleFunc("POST /hub/versions/{version_id}/publish", s.handlePublishVersion)
	s.mux.HandleFunc("POST /hub/versions/{version_id}/schedule", s.handleScheduleVersion)
	s.mux.HandleFunc("POST /hub/versions/{version_id}/expire", s.handleExpireVersion)
	s.mux.HandleFunc("POST /hub/versions/{version_id}/archive", s.handleArchiveVersion)
	s.mux.HandleFunc("POST /hub/versions/{version_id}/download", s.handleDownloadVersion)
}

func (s *Server) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeHubError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req hubhttp.CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeHubError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.hub.Handler.CreateAssetHandler(r.Context(), userID, r.Header.Get("Idempotency-Key"), req)
	if err != nil {
		writeHubDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.hub.Handler.ListAssetsHandler(r.Context(), query.Get("owner_id"), query.Get("asset_type"))
	if err != nil {
		writeHubDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	resp, err := s.hub.Handler.GetAssetHandler(r.Context(), r.PathValue("asset_id"))
	if err != nil {
		writeHubDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateVersion(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeHubError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req hubhttp.CreateVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeHubError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.hub.Handler.CreateVersionHandler(
		r.Context(),
		userID,
		r.Header.Get("Idempotency-Key"),
		r.PathValue("asset_id"),
		req,
	)
	if err != nil {
		writeHubDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListVersions(w http.ResponseWriter, r *http.Request) {
	resp, err := s.hub.Handler.ListVersionsHandler(r.Context(), r.PathValue("asset_id"))
	if err != nil {
		writeHubDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePublishVersion(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeHubError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	req := hubhttp.PublishVersionRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeHubError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
			return
		}
	}

	resp, err := s.hub.Handler.PublishVersionHandler(r.Context(), userID, r.PathValue("version_id"), req)
	if err != nil {
		writeHubDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleScheduleVersion(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeHubError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req hubhttp.ScheduleVersionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeHubError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.hub.Handler.ScheduleVersionHandler(r.Context(), userID, r.PathValue("version_id"), req)
	if err != nil {
		writeHubDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleExpireVersion(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeHubError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.hub.Handler.ExpireVersionHandler(r.Context(), userID, r.PathValue("version_id"))
	if err != nil {
		writeHubDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleArchiveVersion(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeHubError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	req := hubhttp.ArchiveVersionRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeHubError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
			return
		}
	}

	resp, err := s.hub.Handler.ArchiveVersionHandler(r.Context(), userID, r.PathValue("version_id"), req)
	if err != nil {
		writeHubDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDownloadVersion(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeHubError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	result, err := s.hub.Handler.DownloadVersionHandler(
		r.Context(),
		userID,
		r.Header.Get("X-User-Role"),
		r.PathValue("version_id"),
	)
	if err != nil {
		writeHubDomainError(w, err)
		return
	}
	if !result.Allowed {
		writeHubError(w, http.StatusForbidden, string(result.Reason), "download is not permitted for this version")
		return
	}
	writeJSON(w, http.StatusOK, hubhttp.DownloadVersionResponse{
		DownloadURL: result.DownloadURL,
		ExpiresAt:   result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

func writeHubDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, hubdomainerrors.ErrAssetNotFound):
		writeHubError(w, http.StatusNotFound, "asset_not_found", err.Error())
	case errors.Is(err, hubdomainerrors.ErrVersionNotFound):
		writeHubError(w, http.StatusNotFound, "version_not_found", err.Error())
	case errors.Is(err, hubdomainerrors.ErrIllegalTransition):
		writeHubError(w, http.StatusConflict, "illegal_transition", err.Error())
	case errors.Is(err, hubdomainerrors.ErrScheduleConflict):
		writeHubError(w, http.StatusConflict, "schedule_conflict", err.Error())
	case errors.Is(err, hubdomainerrors.ErrIdempotencyKeyConflict):
		writeHubError(w, http.StatusConflict, "idempotency_conflict", err.Error())
	case errors.Is(err, hubdomainerrors.ErrIdempotencyKeyRequired):
		writeHubError(w, http.StatusBadRequest, "idempotency_key_required", err.Error())
	case errors.Is(err, hubdomainerrors.ErrInvalidAssetInput),
		errors.Is(err, hubdomainerrors.ErrInvalidVersionInput),
		errors.Is(err, hubdomainerrors.ErrInvalidAssetMetadata):
		writeHubError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, hubdomainerrors.ErrUnknownVersionStatus):
		writeHubError(w, http.StatusConflict, "unknown_version_status", err.Error())
	default:
		writeHubError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeHubError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, hubhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
