package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Propostas-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Propostas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testEmail     = "ana@preambulo.com.br"
	testName      = "Ana Souza"
	testIssuer    = "propostas-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con AuthMiddleware y un
// handler que devuelve los datos del consultor cargados en locals.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"email": apphttp.GetConsultantEmail(c),
			"name":  apphttp.GetConsultantName(c),
		})
	})
	return app
}

func bearer(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testEmail, testName, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeConsultor(t *testing.T) {
	resp := doRequest(t, buildTestApp(), bearer(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testEmail, body["email"])
	assert.Equal(t, testName, body["name"])
}

func TestAuthMiddleware_Rechazos(t *testing.T) {
	expired, err := pkgjwt.Generate(testJWTSecret, testEmail, testName, testIssuer, -1)
	require.NoError(t, err)
	other, err := pkgjwt.Generate("otro-secret-completamente-distinto", testEmail, testName, testIssuer, testExpMin)
	require.NoError(t, err)

	cases := map[string]string{
		"sin header":       "",
		"sin Bearer":       "Token abc",
		"token vacío":      "Bearer   ",
		"token malformado": "Bearer token.invalido.aqui",
		"token expirado":   "Bearer " + expired,
		"otro secret":      "Bearer " + other,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			resp := doRequest(t, buildTestApp(), header)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), "UNAUTHORIZED")
		})
	}
}

func TestAuthMiddleware_BearerSinDistinguirMayusculas(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testEmail, testName, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, buildTestApp(), "bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
