package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testServerInfo implements jsonapi.ServerInformation for testing
type testServerInfo struct{}

func (t testServerInfo) GetBaseURL() string { return "http://localhost:8080" }
func (t testServerInfo) GetPrefix() string  { return "/rest/" }

type TestModel struct {
	Id   uint32 `json:"-"`
	Name string `json:"name"`
}

func (m TestModel) GetName() string {
	return "tests"
}

func (m TestModel) GetID() string {
	return strconv.Itoa(int(m.Id))
}

func (m *TestModel) SetID(id string) error {
	if id == "" {
		return nil
	}
	v, err := strconv.Atoi(id)
	if err != nil {
		return err
	}
	m.Id = uint32(v)
	return nil
}

func setTenantHeaders(req *http.Request, tenantId uuid.UUID) {
	req.Header.Set(TenantIdHeader, tenantId.String())
	req.Header.Set(RegionHeader, "GMS")
	req.Header.Set(MajorVersionHeader, "83")
	req.Header.Set(MinorVersionHeader, "1")
}

func TestHandlerDependency(t *testing.T) {
	logger := logrus.New()
	ctx := context.Background()

	hd := HandlerDependency{l: logger, ctx: ctx}
	assert.Equal(t, logger, hd.Logger())
	assert.Equal(t, ctx, hd.Context())
}

func TestHandlerContext_ServerInformation(t *testing.T) {
	si := &testServerInfo{}
	hc := HandlerContext{si: si}
	assert.Equal(t, si, hc.ServerInformation())
}

func TestParseInput_Success(t *testing.T) {
	hd := &HandlerDependency{l: logrus.New(), ctx: context.Background()}
	hc := &HandlerContext{si: &testServerInfo{}}

	var received TestModel
	testHandler := func(d *HandlerDependency, c *HandlerContext, model TestModel) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			received = model
			w.WriteHeader(http.StatusOK)
		}
	}

	body := `{"data": {"type": "tests", "id": "7", "attributes": {"name": "test name"}}}`
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	w := httptest.NewRecorder()

	ParseInput[TestModel](hd, hc, testHandler)(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test name", received.Name)
	assert.Equal(t, uint32(7), received.Id)
}

func TestParseInput_Invalid(t *testing.T) {
	hd := &HandlerDependency{l: logrus.New(), ctx: context.Background()}
	hc := &HandlerContext{si: &testServerInfo{}}

	called := false
	testHandler := func(d *HandlerDependency, c *HandlerContext, model TestModel) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			called = true
		}
	}

	for _, body := range []string{`{"invalid": json}`, `{"data": {"type": "others", "attributes": {"name": "x"}}}`} {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
		w := httptest.NewRecorder()

		ParseInput[TestModel](hd, hc, testHandler)(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.False(t, called)
}

func TestRegisterHandler_ResolvesTenant(t *testing.T) {
	tenantId := uuid.New()

	var resolved tenant.Model
	handler := RegisterHandler(logrus.New())(&testServerInfo{})("test", func(d *HandlerDependency, c *HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			resolved = tenant.MustFromContext(d.Context())
			w.WriteHeader(http.StatusOK)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	setTenantHeaders(req, tenantId)
	w := httptest.NewRecorder()
	handler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, tenantId, resolved.Id())
	assert.Equal(t, "GMS", resolved.Region())
	assert.Equal(t, uint16(83), resolved.MajorVersion())
	assert.Equal(t, uint16(1), resolved.MinorVersion())
}

func TestRegisterHandler_RejectsMissingTenant(t *testing.T) {
	called := false
	handler := RegisterHandler(logrus.New())(&testServerInfo{})("test", func(d *HandlerDependency, c *HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			called = true
		}
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

func TestRegisterInputHandler(t *testing.T) {
	var received TestModel
	handler := RegisterInputHandler[TestModel](logrus.New())(&testServerInfo{})("test", func(d *HandlerDependency, c *HandlerContext, model TestModel) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			received = model
			w.WriteHeader(http.StatusOK)
		}
	})

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"data": {"type": "tests", "attributes": {"name": "input"}}}`))
	setTenantHeaders(req, uuid.New())
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "input", received.Name)
}

func TestParseTenant(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(h http.Header)
	}{
		{"missing tenant id", func(h http.Header) { h.Del(TenantIdHeader) }},
		{"malformed tenant id", func(h http.Header) { h.Set(TenantIdHeader, "not-a-uuid") }},
		{"missing region", func(h http.Header) { h.Del(RegionHeader) }},
		{"malformed major version", func(h http.Header) { h.Set(MajorVersionHeader, "x") }},
		{"missing minor version", func(h http.Header) { h.Del(MinorVersionHeader) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			setTenantHeaders(req, uuid.New())
			tt.mutate(req.Header)
			_, err := ParseTenant(req.Header)
			assert.Error(t, err)
		})
	}
}

func TestParsePlayerId(t *testing.T) {
	tests := []struct {
		value  string
		status int
	}{
		{"12", http.StatusOK},
		{"0", http.StatusBadRequest},
		{"-1", http.StatusBadRequest},
		{"abc", http.StatusBadRequest},
		{"4294967296", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var parsed uint32
			handler := ParsePlayerId(logrus.New(), func(playerId uint32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					parsed = playerId
					w.WriteHeader(http.StatusOK)
				}
			})

			req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/players/"+tt.value, nil), map[string]string{"playerId": tt.value})
			w := httptest.NewRecorder()
			handler(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, uint32(12), parsed)
			}
		})
	}
}

func TestWriteErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErrorResponse(w, http.StatusNotFound, "player not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":{"status":404,"title":"Not Found","detail":"player not found"}}`, w.Body.String())
}
