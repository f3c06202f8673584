package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	versionlifecycle "enablehub/contexts/content-hub/version-lifecycle-service"
	"enablehub/internal/platform/httpserver"
)

func newTestServer(t *testing.T) (http.Handler, versionlifecycle.Module) {
	t.Helper()
	module := versionlifecycle.NewInMemoryModule(nil, nil)
	server := httpserver.New(module, nil, ":0")
	return server.Handler(), module
}

func doJSON(t *testing.T, handler http.Handler, method string, path string, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response body: %v (%s)", err, recorder.Body.String())
	}
	return payload
}

func createAssetViaHTTP(t *testing.T, handler http.Handler) string {
	t.Helper()
	recorder := doJSON(t, handler, http.MethodPost, "/hub/assets",
		`{"title":"Launch Deck","asset_type":"presentation","source_type":"upload"}`,
		map[string]string{"X-User-Id": "owner-1", "Idempotency-Key": "idem-asset"},
	)
	if recorder.Code != http.StatusOK {
		t.Fatalf("create asset: expected 200, got %d (%s)", recorder.Code, recorder.Body.String())
	}
	payload := decodeBody(t, recorder)
	asset := payload["asset"].(map[string]any)
	return asset["asset_id"].(string)
}

func createVersionViaHTTP(t *testing.T, handler http.Handler, assetID string, idemKey string) string {
	t.Helper()
	recorder := doJSON(t, handler, http.MethodPost, "/hub/assets/"+assetID+"/versions",
		`{"storage_key":"s3://bucket/`+idemKey+`"}`,
		map[string]string{"X-User-Id": "owner-1", "Idempotency-Key": idemKey},
	)
	if recorder.Code != http.StatusOK {
		t.Fatalf("create version: expected 200, got %d (%s)", recorder.Code, recorder.Body.String())
	}
	payload := decodeBody(t, recorder)
	version := payload["version"].(map[string]any)
	return version["version_id"].(string)
}

func TestCreateAssetRequiresUserHeader(t *testing.T) {
	handler, _ := newTestServer(t)
	recorder := doJSON(t, handler, http.MethodPost, "/hub/assets",
		`{"title":"Deck","asset_type":"presentation","source_type":"upload"}`,
		map[string]string{"Idempotency-Key": "idem"},
	)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", recorder.Code)
	}
}

func TestCreateAssetRejectsMalformedJSON(t *testing.T) {
	handler, _ := newTestServer(t)
	recorder := doJSON(t, handler, http.MethodPost, "/hub/assets",
		`{"title": `,
		map[string]string{"X-User-Id": "owner-1", "Idempotency-Key": "idem"},
	)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestGetAssetNotFoundMapsTo404(t *testing.T) {
	handler, _ := newTestServer(t)
	recorder := doJSON(t, handler, http.MethodGet, "/hub/assets/missing", "", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	payload := decodeBody(t, recorder)
	if payload["code"] != "asset_not_found" {
		t.Fatalf("expected asset_not_found code, got %v", payload["code"])
	}
}

func TestPublishLifecycleOverHTTP(t *testing.T) {
	handler, _ := newTestServer(t)
	assetID := createAssetViaHTTP(t, handler)
	versionID := createVersionViaHTTP(t, handler, assetID, "idem-v1")

	recorder := doJSON(t, handler, http.MethodPost, "/hub/versions/"+versionID+"/publish",
		`{"change_log":"first release"}`,
		map[string]string{"X-User-Id": "owner-1"},
	)
	if recorder.Code != http.StatusOK {
		t.Fatalf("publish: expected 200, got %d (%s)", recorder.Code, recorder.Body.String())
	}

	// Publishing again is a state conflict.
	recorder = doJSON(t, handler, http.MethodPost, "/hub/versions/"+versionID+"/publish",
		`{}`,
		map[string]string{"X-User-Id": "owner-1"},
	)
	if recorder.Code != http.StatusConflict {
		t.Fatalf("double publish: expected 409, got %d", recorder.Code)
	}
	payload := decodeBody(t, recorder)
	if payload["code"] != "illegal_transition" {
		t.Fatalf("expected illegal_transition code, got %v", payload["code"])
	}

	recorder = doJSON(t, handler, http.MethodGet, "/hub/assets/"+assetID, "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("get asset: expected 200, got %d", recorder.Code)
	}
	payload = decodeBody(t, recorder)
	item := payload["item"].(map[string]any)
	if item["current_published_version_id"] != versionID {
		t.Fatalf("expected pointer at %s, got %v", versionID, item["current_published_version_id"])
	}
}

func TestScheduleConflictMapsTo409(t *testing.T) {
	handler, _ := newTestServer(t)
	assetID := createAssetViaHTTP(t, handler)
	first := createVersionViaHTTP(t, handler, assetID, "idem-v1")
	second := createVersionViaHTTP(t, handler, assetID, "idem-v2")

	recorder := doJSON(t, handler, http.MethodPost, "/hub/versions/"+first+"/schedule",
		`{"publish_at":"2030-01-01T09:00:00Z"}`,
		map[string]string{"X-User-Id": "owner-1"},
	)
	if recorder.Code != http.StatusOK {
		t.Fatalf("schedule: expected 200, got %d (%s)", recorder.Code, recorder.Body.String())
	}

	recorder = doJSON(t, handler, http.MethodPost, "/hub/versions/"+second+"/schedule",
		`{"publish_at":"2030-02-01T09:00:00Z"}`,
		map[string]string{"X-User-Id": "owner-1"},
	)
	if recorder.Code != http.StatusConflict {
		t.Fatalf("conflicting schedule: expected 409, got %d", recorder.Code)
	}
	payload := decodeBody(t, recorder)
	if payload["code"] != "schedule_conflict" {
		t.Fatalf("expected schedule_conflict code, got %v", payload["code"])
	}
}

func TestScheduleMalformedTimestampMapsTo400(t *testing.T) {
	handler, _ := newTestServer(t)
	assetID := createAssetViaHTTP(t, handler)
	versionID := createVersionViaHTTP(t, handler, assetID, "idem-v1")

	recorder := doJSON(t, handler, http.MethodPost, "/hub/versions/"+versionID+"/schedule",
		`{"publish_at":"tomorrow"}`,
		map[string]string{"X-User-Id": "owner-1"},
	)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestDownloadDenyMapsTo403WithReason(t *testing.T) {
	handler, _ := newTestServer(t)
	assetID := createAssetViaHTTP(t, handler)
	versionID := createVersionViaHTTP(t, handler, assetID, "idem-v1")

	recorder := doJSON(t, handler, http.MethodPost, "/hub/versions/"+versionID+"/download", "",
		map[string]string{"X-User-Id": "user-x", "X-User-Role": "contributor"},
	)
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (%s)", recorder.Code, recorder.Body.String())
	}
	payload := decodeBody(t, recorder)
	if payload["code"] != "draft_owner_only" {
		t.Fatalf("expected draft_owner_only code, got %v", payload["code"])
	}
}

func TestDownloadAllowReturnsSignedURL(t *testing.T) {
	handler, _ := newTestServer(t)
	assetID := createAssetViaHTTP(t, handler)
	versionID := createVersionViaHTTP(t, handler, assetID, "idem-v1")

	recorder := doJSON(t, handler, http.MethodPost, "/hub/versions/"+versionID+"/download", "",
		map[string]string{"X-User-Id": "owner-1", "X-User-Role": "viewer"},
	)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", recorder.Code, recorder.Body.String())
	}
	payload := decodeBody(t, recorder)
	url, _ := payload["download_url"].(string)
	if !strings.Contains(url, "/downloads/") || !strings.Contains(url, "token=") {
		t.Fatalf("expected signed download url, got %q", url)
	}
	if payload["expires_at"] == "" {
		t.Fatalf("expected expiry on download response")
	}
}

func TestUnknownRoleMapsTo400(t *testing.T) {
	handler, _ := newTestServer(t)
	assetID := createAssetViaHTTP(t, handler)
	versionID := createVersionViaHTTP(t, handler, assetID, "idem-v1")

	recorder := doJSON(t, handler, http.MethodPost, "/hub/versions/"+versionID+"/download", "",
		map[string]string{"X-User-Id": "user-x", "X-User-Role": "superuser"},
	)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}
