package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsforge/secretsync/internal/app"
	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/internal/service"
	"github.com/opsforge/secretsync/internal/store"
	"github.com/opsforge/secretsync/internal/utils"
	"github.com/opsforge/secretsync/models"
)

const testSecret = "shared-secret"

type mockSyncService struct {
	pullTriggers []string
	pullStatus   models.SyncStatus
	pullErr      error
}

func (m *mockSyncService) PullRefresh(ctx context.Context, trigger string) (models.SyncStatus, error) {
	m.pullTriggers = append(m.pullTriggers, trigger)
	return m.pullStatus, m.pullErr
}

func (m *mockSyncService) PushFile(ctx context.Context, path string) (models.SyncStatus, error) {
	return models.SyncStatus{}, nil
}

type mockStatusStore struct {
	status *models.SyncStatus
	getErr error
}

func (m *mockStatusStore) Get(ctx context.Context) (models.SyncStatus, error) {
	if m.getErr != nil {
		return models.SyncStatus{}, m.getErr
	}
	if m.status == nil {
		return models.SyncStatus{}, store.ErrSyncStatusNotFound
	}
	return *m.status, nil
}

func (m *mockStatusStore) Set(ctx context.Context, status models.SyncStatus) error {
	m.status = &status
	return nil
}

type handlerFixture struct {
	server   *httptest.Server
	sync     *mockSyncService
	statuses *mockStatusStore
}

func newHandlerFixture(t *testing.T, webhookSecret string) *handlerFixture {
	t.Helper()

	fixture := &handlerFixture{
		sync: &mockSyncService{
			pullStatus: models.SyncStatus{
				DeviceID:        "laptop-01",
				LastSyncAt:      time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
				LastSyncOutcome: models.SyncOutcomeSuccess,
			},
		},
		statuses: &mockStatusStore{},
	}

	handler := NewHandler(
		"laptop-01",
		webhookSecret,
		models.NewAppBuildInfo("v1.2.3", "2026-08-31", "abc1234"),
		&service.Services{SyncService: fixture.sync},
		fixture.statuses,
		logger.Nop(),
	)

	fixture.server = httptest.NewServer(handler.Init())
	t.Cleanup(fixture.server.Close)
	return fixture
}

func (f *handlerFixture) postSigned(t *testing.T, path, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, f.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signatureHeader, utils.SignBody([]byte(body), testSecret))

	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth_SucceedsBeforeAnySync(t *testing.T) {
	fixture := newHandlerFixture(t, testSecret)

	resp, err := http.Get(fixture.server.URL + "/health")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	health := decodeBody[models.HealthResponse](t, resp)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "laptop-01", health.DeviceID)
}

func TestStatus_NotFoundBeforeAnySync(t *testing.T) {
	fixture := newHandlerFixture(t, testSecret)

	resp, err := http.Get(fixture.server.URL + "/status")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody[models.ErrorResponse](t, resp)
	assert.Equal(t, app.MsgNoSyncYet, body.Error)
}

func TestStatus_ReturnsLastRecordedOutcome(t *testing.T) {
	fixture := newHandlerFixture(t, testSecret)
	fixture.statuses.status = &models.SyncStatus{
		DeviceID:        "laptop-01",
		LastSyncAt:      time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
		LastSyncOutcome: models.SyncOutcomeFailure,
		LastError:       "vault unreachable",
	}

	resp, err := http.Get(fixture.server.URL + "/status")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[models.SyncStatus](t, resp)
	assert.Equal(t, models.SyncOutcomeFailure, body.LastSyncOutcome)
	assert.Equal(t, "vault unreachable", body.LastError)
}

func TestVersion_ReportsBuildInfo(t *testing.T) {
	fixture := newHandlerFixture(t, testSecret)

	resp, err := http.Get(fixture.server.URL + "/version")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "v1.2.3", body["version"])
	assert.Equal(t, "abc1234", body["commit"])
}

func TestSync_RejectsMissingSignature(t *testing.T) {
	fixture := newHandlerFixture(t, testSecret)

	resp, err := http.Post(fixture.server.URL+"/sync", "application/json",
		strings.NewReader(`{"source":"operator"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody[models.ErrorResponse](t, resp)
	assert.Equal(t, app.MsgInvalidSignature, body.Error)

	// the rejected request must not have triggered a sync
	assert.Empty(t, fixture.sync.pullTriggers)
}

func TestSync_RejectsTamperedBody(t *testing.T) {
	fixture := newHandlerFixture(t, testSecret)

	req, err := http.NewRequest(http.MethodPost, fixture.server.URL+"/sync",
		strings.NewReader(`{"source":"attacker"}`))
	require.NoError(t, err)
	req.Header.Set(signatureHeader, utils.SignBody([]byte(`{"source":"operator"}`), testSecret))

	resp, err := fixture.server.Client().Do(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, fixture.sync.pullTriggers)
}

func TestSync_ManualEventTriggersPull(t *testing.T) {
	fixture := newHandlerFixture(t, testSecret)

	resp := fixture.postSigned(t, "/sync", `{"source":"operator"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[models.SyncResponse](t, resp)
	assert.Equal(t, models.SyncOutcomeSuccess, body.Outcome)
	assert.Equal(t, []string{"manual"}, fixture.sync.pullTriggers)
}

func TestSync_PeerPushEventTriggersPull(t *testing.T) {
	fixture := newHandlerFixture(t, testSecret)

	resp := fixture.postSigned(t, "/sync",
		`{"source":"desktop-02","changed_file":".env","timestamp":"2026-08-31T10:00:00Z"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"push"}, fixture.sync.pullTriggers)
}

func TestSync_UnrecognizedPayloadIsAcknowledgedWithoutPull(t *testing.T) {
	fixture := newHandlerFixture(t, testSecret)

	resp := fixture.postSigned(t, "/sync", `{"unexpected":"shape"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[models.ErrorResponse](t, resp)
	assert.Equal(t, app.MsgUnrecognizedSyncPayload, body.Error)
	assert.Empty(t, fixture.sync.pullTriggers)
}

func TestSync_PullFailureReturnsServerError(t *testing.T) {
	fixture := newHandlerFixture(t, testSecret)
	fixture.sync.pullErr = fmt.Errorf("%w: vault unreachable", service.ErrSyncFailed)
	fixture.sync.pullStatus = models.SyncStatus{
		DeviceID:        "laptop-01",
		LastSyncOutcome: models.SyncOutcomeFailure,
		LastError:       "vault unreachable",
	}

	resp := fixture.postSigned(t, "/sync", `{"source":"operator"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody[models.SyncResponse](t, resp)
	assert.Equal(t, models.SyncOutcomeFailure, body.Outcome)
	assert.Equal(t, "vault unreachable", body.Error)
}

func TestBuildWebhook_BuildEventTriggersPull(t *testing.T) {
	fixture := newHandlerFixture(t, testSecret)

	resp := fixture.postSigned(t, "/webhook/build",
		`{"action":"requested","workflow":"deploy","repository":"opsforge/app"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"build"}, fixture.sync.pullTriggers)
}

func TestBuildWebhook_NonBuildPayloadIsIgnored(t *testing.T) {
	fixture := newHandlerFixture(t, testSecret)

	resp := fixture.postSigned(t, "/webhook/build", `{"source":"operator"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[models.ErrorResponse](t, resp)
	assert.Equal(t, app.MsgNotABuildEvent, body.Error)
	assert.Empty(t, fixture.sync.pullTriggers)
}

func TestSync_NoSecretConfiguredSkipsVerification(t *testing.T) {
	fixture := newHandlerFixture(t, "")

	resp, err := http.Post(fixture.server.URL+"/sync", "application/json",
		strings.NewReader(`{"source":"operator"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"manual"}, fixture.sync.pullTriggers)
}

func TestUnknownRoute_ReturnsJSONNotFound(t *testing.T) {
	fixture := newHandlerFixture(t, testSecret)

	resp, err := http.Get(fixture.server.URL + "/nope")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody[models.ErrorResponse](t, resp)
	assert.Equal(t, app.MsgUnknownRoute, body.Error)
	assert.Equal(t, "laptop-01", body.DeviceID)
}
