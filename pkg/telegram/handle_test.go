package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, factory ClientFactory) (*chi.Mux, *AccountService) {
	t.Helper()
	service, _ := newTestService(t, factory)
	handle := NewHandle(service)
	r := chi.NewRouter()
	r.Route("/api/telegram", handle.RegisterRoutes)
	return r, service
}

func postJSON(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleStartLogin(t *testing.T) {
	r, _ := newTestRouter(t, codeGatedFactory(42, "+15551234567", "123456"))

	w := postJSON(t, r, "/api/telegram/login/start", `{"phone_number":"+15551234567"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result LoginStartResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, StatusCodeRequired, result.Status)
	assert.NotEqual(t, uuid.Nil, result.LoginID)
}

func TestHandleStartLoginEmptyPhone(t *testing.T) {
	r, _ := newTestRouter(t, &fakeClientFactory{})

	w := postJSON(t, r, "/api/telegram/login/start", `{"phone_number":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleStartLoginBadBody(t *testing.T) {
	r, _ := newTestRouter(t, &fakeClientFactory{})

	w := postJSON(t, r, "/api/telegram/login/start", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSubmitCode(t *testing.T) {
	r, service := newTestRouter(t, codeGatedFactory(42, "+15551234567", "123456"))

	result, err := service.StartLogin(context.Background(), "+15551234567", "")
	require.NoError(t, err)

	w := postJSON(t, r, "/api/telegram/login/submit-code",
		`{"login_id":"`+result.LoginID.String()+`","code":"123456"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var info AccountInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "42", info.UserID)
}

func TestHandleSubmitCodeUnknownID(t *testing.T) {
	r, _ := newTestRouter(t, &fakeClientFactory{})

	w := postJSON(t, r, "/api/telegram/login/submit-code",
		`{"login_id":"`+uuid.NewString()+`","code":"123456"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleSubmitCodeRejected(t *testing.T) {
	r, service := newTestRouter(t, codeGatedFactory(42, "+15551234567", "123456"))

	result, err := service.StartLogin(context.Background(), "+15551234567", "")
	require.NoError(t, err)

	w := postJSON(t, r, "/api/telegram/login/submit-code",
		`{"login_id":"`+result.LoginID.String()+`","code":"999999"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandleListAccounts(t *testing.T) {
	r, service := newTestRouter(t, codeGatedFactory(42, "+15551234567", "123456"))

	result, err := service.StartLogin(context.Background(), "+15551234567", "")
	require.NoError(t, err)
	_, err = service.CompleteLogin(context.Background(), result.LoginID, "123456")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/telegram/accounts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var accounts []AccountInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accounts))
	require.Len(t, accounts, 1)
	assert.Equal(t, "42", accounts[0].UserID)
}
