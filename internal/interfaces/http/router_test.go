package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trazabilidad-api/internal/application/auth"
	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/application/report"
	apprisk "github.com/jhoicas/Trazabilidad-api/internal/application/risk"
	"github.com/jhoicas/Trazabilidad-api/internal/application/trace"
	"github.com/jhoicas/Trazabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/risk"
	"github.com/jhoicas/Trazabilidad-api/internal/infrastructure/memory"
	"github.com/jhoicas/Trazabilidad-api/internal/infrastructure/observability"
	"github.com/jhoicas/Trazabilidad-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Trazabilidad-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Trazabilidad-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno completo en memoria
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app      *fiber.App
	parts    *memory.PartStore
	stations *memory.StationStore
	users    *memory.UserStore
	metrics  *observability.Metrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	parts := memory.NewPartStore()
	stations := memory.NewStationStore()
	events := memory.NewEventStore()
	users := memory.NewUserStore()
	engine := risk.NewDefaultEngine()
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(users, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		UserUC:       usecase.NewUserUseCase(users),
		PartUC:       usecase.NewPartUseCase(parts),
		StationUC:    usecase.NewStationUseCase(stations),
		ProductionUC: usecase.NewProductionUseCase(nil),
		EventUC:      trace.NewEventUseCase(memory.NewTxRunner(events, parts), parts, stations, events),
		RiskSvc:      apprisk.NewService(engine, parts, events, nil, metrics),
		PartReport:   report.NewPDFUseCase(parts, stations, events, engine, pdf.NewMarotoReportGenerator()),
		JWTSecret:    testJWTSecret,
		Metrics:      metrics,
	})
	return &testEnv{app: app, parts: parts, stations: stations, users: users, metrics: metrics}
}

// userToken crea un usuario con el rol indicado y devuelve su header Authorization.
func (e *testEnv) userToken(t *testing.T, role string) string {
	t.Helper()
	u, err := usecase.NewUser("", role+"@planta.test", "secreto123", role)
	require.NoError(t, err)
	require.NoError(t, e.users.Create(context.Background(), u))
	tok, err := pkgjwt.Generate(testJWTSecret, u.ID, u.Role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func (e *testEnv) station(t *testing.T, name string) string {
	t.Helper()
	id := uuid.New().String()
	require.NoError(t, e.stations.Create(context.Background(), &entity.Station{ID: id, Name: name, Type: "ENSAMBLE"}))
	return id
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
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
		req.Header.Set("Authorization", token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_RegistroYLogin(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Ana", "email": "ana@planta.test", "password": "secreto123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	user := decode[dto.UserResponse](t, resp)
	assert.Equal(t, entity.RoleOperator, user.Role, "rol por defecto")

	resp = env.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email": "ana@planta.test", "password": "secreto123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "ana@planta.test", "password": "otra-clave",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "ana@planta.test", "password": "secreto123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, resp)
	assert.NotEmpty(t, login.Token)
}

func TestRouter_RegistroValidaBody(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email": "no-es-email", "password": "123",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestRouter_UsuarioDesactivado_Retorna403(t *testing.T) {
	env := newTestEnv(t)
	tok := env.userToken(t, entity.RoleSupervisor)

	u, err := env.users.GetByEmail(context.Background(), "supervisor@planta.test")
	require.NoError(t, err)
	u.Active = false
	require.NoError(t, env.users.Update(context.Background(), u))

	resp := env.do(t, http.MethodGet, "/api/risk/anomalies", tok, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "USER_INACTIVE", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Piezas, eventos y riesgo
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_PermisosPorRol(t *testing.T) {
	env := newTestEnv(t)
	op := env.userToken(t, entity.RoleOperator)

	resp := env.do(t, http.MethodPost, "/api/parts", op, fiber.Map{"serial": "SN-1", "type": "EJE"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	part := decode[dto.PartResponse](t, resp)

	resp = env.do(t, http.MethodGet, "/api/parts", op, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "operador no lista piezas")

	resp = env.do(t, http.MethodGet, "/api/parts/"+part.ID, op, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "cualquier rol consulta una pieza")

	resp = env.do(t, http.MethodDelete, "/api/parts/"+part.ID, op, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/users", op, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/parts", op, fiber.Map{"serial": "SN-1", "type": "EJE"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "serial duplicado")
}

func TestRouter_EventoConResultadoYRiesgoDeLaPieza(t *testing.T) {
	env := newTestEnv(t)
	op := env.userToken(t, entity.RoleOperator)
	sup := env.userToken(t, entity.RoleSupervisor)
	stationID := env.station(t, "TORNO 1")

	resp := env.do(t, http.MethodPost, "/api/parts", op, fiber.Map{"serial": "SN-9", "type": "EJE"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	part := decode[dto.PartResponse](t, resp)

	resp = env.do(t, http.MethodPost, "/api/trace-events", op, fiber.Map{
		"part_id": part.ID, "station_id": stationID, "outcome": "scrap",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ev := decode[dto.EventResponse](t, resp)
	assert.Equal(t, entity.OutcomeScrap, ev.Outcome)
	require.NotNil(t, ev.ExitTime)

	stored, err := env.parts.GetByID(context.Background(), part.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OutcomeScrap, stored.Status, "la pieza toma el resultado del evento")

	resp = env.do(t, http.MethodGet, "/api/trace-events/part/"+part.ID, sup, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	history := decode[[]dto.EventResponse](t, resp)
	assert.Len(t, history, 1)

	resp = env.do(t, http.MethodGet, "/api/risk/parts/"+part.ID, sup, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	a := decode[dto.RiskAssessmentResponse](t, resp)
	assert.Equal(t, part.ID, a.PartID)
	assert.Contains(t, a.Reasons, risk.ReasonScrap)
	assert.Equal(t, 1, a.Details.ScrapCount)

	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.AssessmentsTotal.WithLabelValues(apprisk.SourcePart, a.Level)))
}

func TestRouter_EventoPiezaInexistente_Retorna404(t *testing.T) {
	env := newTestEnv(t)
	op := env.userToken(t, entity.RoleOperator)
	stationID := env.station(t, "PRENSA")

	resp := env.do(t, http.MethodPost, "/api/trace-events", op, fiber.Map{
		"part_id": uuid.New().String(), "station_id": stationID,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestRouter_CerrarEventoDosVeces_Retorna409(t *testing.T) {
	env := newTestEnv(t)
	op := env.userToken(t, entity.RoleOperator)
	stationID := env.station(t, "PINTURA")

	resp := env.do(t, http.MethodPost, "/api/parts", op, fiber.Map{"serial": "SN-2", "type": "EJE"})
	part := decode[dto.PartResponse](t, resp)

	resp = env.do(t, http.MethodPost, "/api/trace-events", op, fiber.Map{"part_id": part.ID, "station_id": stationID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ev := decode[dto.EventResponse](t, resp)
	assert.Nil(t, ev.ExitTime, "sin resultado el evento queda abierto")

	resp = env.do(t, http.MethodPatch, "/api/trace-events/"+ev.ID+"/close", op, fiber.Map{"outcome": "OK"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPatch, "/api/trace-events/"+ev.ID+"/close", op, fiber.Map{"outcome": "OK"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRouter_RiesgoManual(t *testing.T) {
	env := newTestEnv(t)
	op := env.userToken(t, entity.RoleOperator)

	resp := env.do(t, http.MethodPost, "/api/risk/score", op, fiber.Map{
		"total_seconds": 650, "rework_count": 1, "station_name": "INSPECCION FINAL",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	a := decode[dto.RiskAssessmentResponse](t, resp)
	assert.InDelta(t, 0.4, a.Score, 1e-9)
	assert.Equal(t, string(risk.LevelMedium), a.Level)
	assert.Empty(t, a.PartID)

	resp = env.do(t, http.MethodPost, "/api/risk/score", op, fiber.Map{"total_seconds": -5})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestRouter_AnomaliasSinEventos(t *testing.T) {
	env := newTestEnv(t)
	sup := env.userToken(t, entity.RoleSupervisor)

	resp := env.do(t, http.MethodGet, "/api/risk/anomalies", sup, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[map[string]any](t, resp)
	assert.Equal(t, []any{}, out["anomalies"], "lista vacía, nunca null")
}

func TestRouter_ReportePDF(t *testing.T) {
	env := newTestEnv(t)
	admin := env.userToken(t, entity.RoleAdmin)

	resp := env.do(t, http.MethodPost, "/api/parts", admin, fiber.Map{"serial": "SN-PDF", "type": "EJE"})
	part := decode[dto.PartResponse](t, resp)

	resp = env.do(t, http.MethodGet, "/api/parts/"+part.ID+"/report", admin, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "trazabilidad_SN-PDF.pdf")

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}
