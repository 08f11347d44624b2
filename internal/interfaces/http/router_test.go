package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Propostas-api/internal/application/analytics"
	"github.com/jhoicas/Propostas-api/internal/application/auth"
	"github.com/jhoicas/Propostas-api/internal/application/catalog"
	"github.com/jhoicas/Propostas-api/internal/application/proposal"
	"github.com/jhoicas/Propostas-api/internal/infrastructure/localstore"
	"github.com/jhoicas/Propostas-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Propostas-api/internal/interfaces/http"
	"github.com/jhoicas/Propostas-api/pkg/logger"
)

// newAPI arma la API completa sobre un almacenamiento en archivos temporal.
func newAPI(t *testing.T) *fiber.App {
	t.Helper()
	kv, err := localstore.NewFileKV(t.TempDir())
	require.NoError(t, err)
	log := logger.Nop()
	proposals := localstore.NewProposalStore(kv, log)
	consultants := localstore.NewConsultantStore(kv, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProposalUC: proposal.NewUseCase(proposals, consultants, pdf.NewMarotoPDFGenerator(),
			proposal.Options{ValidityDays: 30, CompanyName: "Preâmbulo Tech"}, log),
		CatalogUC:    catalog.NewUseCase(),
		ConsultantUC: auth.NewConsultantUseCase(consultants, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}),
		DashboardUC:  analytics.NewDashboardUseCase(proposals),
		JWTSecret:    testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := call(t, app, http.MethodPut, "/api/consultant", "", map[string]string{
		"name": "Ana Souza", "email": "ana@preambulo.com.br", "phone": "11 99999-0000",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := decode(t, resp)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// ── Rutas públicas ───────────────────────────────────────────────────────────

func TestQuotes_CotizacionSinEstado(t *testing.T) {
	app := newAPI(t)
	resp := call(t, app, http.MethodPost, "/api/quotes", "", map[string]any{
		"product":   "OFFICE_ADV",
		"usage":     map[string]any{"users": "3", "monitoringCredits": 501},
		"discounts": map[string]any{"monthly": map[string]any{"type": "PERCENT", "value": 10}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode(t, resp)
	pricing := out["pricing"].(map[string]any)
	assert.Equal(t, "ONE", pricing["tier"])
	assert.IsType(t, float64(0), pricing["monthlyFinal"])
	assert.Greater(t, pricing["monthlyFinal"].(float64), float64(0))
	assert.NotEmpty(t, out["validUntil"])
}

func TestQuotes_ProductoInvalido(t *testing.T) {
	resp := call(t, newAPI(t), http.MethodPost, "/api/quotes", "", map[string]any{"product": "SAP"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode(t, resp)["code"])
}

func TestQuotes_CuerpoInvalido(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := newAPI(t).Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode(t, resp)["code"])
}

func TestPlans_Catalogo(t *testing.T) {
	app := newAPI(t)
	resp := call(t, app, http.MethodGet, "/api/plans/cpj_3c_plus", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode(t, resp)
	assert.Equal(t, "CPJ_3C_PLUS", out["product"])
	assert.Len(t, out["plans"], 3)

	resp = call(t, app, http.MethodGet, "/api/plans/SAP", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConsultant_PerfilInexistenteYValidacion(t *testing.T) {
	app := newAPI(t)
	resp := call(t, app, http.MethodGet, "/api/consultant", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, app, http.MethodPut, "/api/consultant", "", map[string]string{"name": "Ana"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode(t, resp)["code"])
}

// ── Rutas protegidas ─────────────────────────────────────────────────────────

func TestDraft_RequiereToken(t *testing.T) {
	resp := call(t, newAPI(t), http.MethodGet, "/api/draft", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestFlujoCompleto_EditarGuardarListarPDFEliminar(t *testing.T) {
	app := newAPI(t)
	token := login(t, app)

	resp := call(t, app, http.MethodPut, "/api/draft/product", token, map[string]string{"product": "CPJ_3C_PLUS"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPut, "/api/draft/client", token, map[string]string{"name": "Escritório Silva"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPut, "/api/draft/usage", token, map[string]any{"users": 12, "nfe": "abc"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	draft := decode(t, resp)
	form := draft["form"].(map[string]any)
	assert.Equal(t, float64(12), form["usage"].(map[string]any)["users"])
	assert.Equal(t, float64(0), form["usage"].(map[string]any)["nfe"])
	assert.Equal(t, "PRO", draft["pricing"].(map[string]any)["tier"])

	resp = call(t, app, http.MethodPut, "/api/draft/extras", token, []map[string]any{
		{"description": "Treinamento extra", "quantity": 1, "unitPrice": "300", "billing": "SETUP"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPut, "/api/draft/terms", token, map[string]any{"monthlyStartDate": "10/04/2026"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/draft/save", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	saved := decode(t, resp)
	id := saved["id"].(string)
	assert.Equal(t, "Escritório Silva", saved["clientName"])
	assert.Equal(t, "CPJ_3C_PLUS", saved["erp"])

	resp = call(t, app, http.MethodGet, "/api/proposals", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0]["id"])

	resp = call(t, app, http.MethodGet, "/api/proposals/"+id+"/pdf", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	b, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))

	resp = call(t, app, http.MethodGet, "/api/dashboard/performance?period=today", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), decode(t, resp)["totalProposals"])

	resp = call(t, app, http.MethodDelete, "/api/proposals/"+id, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodGet, "/api/proposals/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestReopen_GuardarReemplaza(t *testing.T) {
	app := newAPI(t)
	token := login(t, app)

	resp := call(t, app, http.MethodPost, "/api/draft/save", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decode(t, resp)["id"].(string)

	resp = call(t, app, http.MethodPost, "/api/draft/reset", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/proposals/"+id+"/reopen", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, id, decode(t, resp)["editingId"])

	resp = call(t, app, http.MethodPost, "/api/draft/save", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, id, decode(t, resp)["id"])

	resp = call(t, app, http.MethodGet, "/api/proposals", token, nil)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	assert.Len(t, list, 1)
}

func TestDashboard_PeriodoInvalido(t *testing.T) {
	app := newAPI(t)
	token := login(t, app)
	resp := call(t, app, http.MethodGet, "/api/dashboard/performance?period=year", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
