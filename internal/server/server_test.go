package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-console/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "clinic.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := config.ServerConfig{
		Addr:      ":0",
		JWTSecret: "test-secret",
		RateLimit: 1000,
		RateBurst: 1000,
	}
	return New(cfg, store, zerolog.Nop())
}

func doJSON(t *testing.T, srv *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	return w
}

func dataField(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func authToken(t *testing.T, srv *Server) string {
	t.Helper()
	w := doJSON(t, srv, "POST", "/auth/token", "", map[string]string{"username": "admin"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	dataField(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestCollectionsRequireAuth(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "GET", "/pacientes/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, srv, "GET", "/pacientes/", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPatientCRUDRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	token := authToken(t, srv)

	w := doJSON(t, srv, "POST", "/pacientes/add", token, map[string]string{
		"nombre": "Ana López",
		"dui":    "01234567-8",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	dataField(t, w, &created)
	id, _ := created["id_paciente"].(string)
	require.NotEmpty(t, id, "server assigns the identifier")

	w = doJSON(t, srv, "GET", "/pacientes/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []map[string]interface{}
	dataField(t, w, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "Ana López", listed[0]["nombre"])

	// Partial update merges over the stored document.
	w = doJSON(t, srv, "PUT", "/pacientes/update/"+id, token, map[string]string{
		"telefono": "7777-1234",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated map[string]interface{}
	dataField(t, w, &updated)
	assert.Equal(t, "Ana López", updated["nombre"])
	assert.Equal(t, "7777-1234", updated["telefono"])

	w = doJSON(t, srv, "DELETE", "/pacientes/delete/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, "GET", "/pacientes/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCannotReassignID(t *testing.T) {
	srv := newTestServer(t)
	token := authToken(t, srv)

	w := doJSON(t, srv, "POST", "/citas/add", token, map[string]string{
		"paciente_id": "p1", "medico_id": "m1", "estado": "programada",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]interface{}
	dataField(t, w, &created)
	id := created["id_cita"].(string)

	w = doJSON(t, srv, "PUT", "/citas/update/"+id, token, map[string]string{
		"id_cita": "hijacked", "estado": "completada",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated map[string]interface{}
	dataField(t, w, &updated)
	assert.Equal(t, id, updated["id_cita"])
	assert.Equal(t, "completada", updated["estado"])
}

func TestUsuariosIsReadOnly(t *testing.T) {
	srv := newTestServer(t)
	token := authToken(t, srv)
	require.NoError(t, srv.SeedUsers(context.Background()))

	w := doJSON(t, srv, "GET", "/usuarios/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var users []map[string]interface{}
	dataField(t, w, &users)
	assert.Len(t, users, 2)

	w = doJSON(t, srv, "POST", "/usuarios/add", token, map[string]string{"nombre": "Eve"})
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "usuarios is read-only", errorMessage(t, w))

	w = doJSON(t, srv, "DELETE", "/usuarios/delete/u1", token, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestSeedUsersIsIdempotent(t *testing.T) {
	srv := newTestServer(t)
	require.NoError(t, srv.SeedUsers(context.Background()))
	require.NoError(t, srv.SeedUsers(context.Background()))

	count, err := srv.store.Count(context.Background(), "usuarios")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPaymentMethodsGetNumericIDs(t *testing.T) {
	srv := newTestServer(t)
	token := authToken(t, srv)

	w := doJSON(t, srv, "POST", "/metodos_pago/add", token, map[string]string{"nombre": "Efectivo"})
	require.Equal(t, http.StatusCreated, w.Code)
	var first map[string]interface{}
	dataField(t, w, &first)
	assert.Equal(t, float64(1), first["id_metodo_pago"])

	w = doJSON(t, srv, "POST", "/metodos_pago/add", token, map[string]string{"nombre": "Tarjeta"})
	require.Equal(t, http.StatusCreated, w.Code)
	var second map[string]interface{}
	dataField(t, w, &second)
	assert.Equal(t, float64(2), second["id_metodo_pago"])

	w = doJSON(t, srv, "DELETE", "/metodos_pago/delete/2", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestScheduleTimesValidatedServerSide(t *testing.T) {
	srv := newTestServer(t)
	token := authToken(t, srv)

	w := doJSON(t, srv, "POST", "/horarios/add", token, map[string]interface{}{
		"medico_id": "m1", "dia_semana": 2, "hora_inicio": "12:00", "hora_fin": "08:00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "start time must be before end time", errorMessage(t, w))

	w = doJSON(t, srv, "POST", "/horarios/add", token, map[string]interface{}{
		"medico_id": "m1", "dia_semana": 2, "hora_inicio": "08:00", "hora_fin": "12:00",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestPaymentValidationAndDateAssignment(t *testing.T) {
	srv := newTestServer(t)
	token := authToken(t, srv)

	w := doJSON(t, srv, "POST", "/pagos/add", token, map[string]interface{}{
		"factura_id": "f1", "monto": 0, "metodo_pago_id": 1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "amount must be greater than 0", errorMessage(t, w))

	w = doJSON(t, srv, "POST", "/pagos/add", token, map[string]interface{}{
		"factura_id": "f1", "monto": 10.5, "metodo_pago_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]interface{}
	dataField(t, w, &created)
	assert.NotEmpty(t, created["fecha_pago"], "payment date is assigned on create")
}

func TestDeleteMissingDocumentIs404(t *testing.T) {
	srv := newTestServer(t)
	token := authToken(t, srv)

	w := doJSON(t, srv, "DELETE", "/pacientes/delete/nope", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthzIsOpen(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, "GET", "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
