package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/floodguard/sos_dispatch_system/internal/config"
	"github.com/floodguard/sos_dispatch_system/internal/models"
	"github.com/floodguard/sos_dispatch_system/internal/service"
)

// newTestHandler builds a Handler with a mocked service behind a test router.
func newTestHandler(t *testing.T) (*Handler, *service.MockSosService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := service.NewMockSosService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys:          []string{"test-api-key"},
		DefaultLatitude:  14.080778,
		DefaultLongitude: 121.175306,
	}

	handler := NewHandler(mockService, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func respondingReport(id uuid.UUID) *models.SosReport {
	return &models.SosReport{
		ID:             id,
		Location:       &models.Location{Latitude: 14.1, Longitude: 121.2},
		UrgencyScore:   9,
		Status:         models.StatusResponding,
		RescueUnits:    []string{"u1"},
		VolunteerUnits: []string{},
		CreatedAt:      time.Date(2024, 7, 26, 10, 0, 0, 0, time.UTC),
	}
}

func TestCreateReport_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := CreateReportRequest{
		Latitude:     14.1,
		Longitude:    121.2,
		UrgencyScore: 7,
		FormAnswers:  map[string]any{"dangerLevel": "high"},
	}

	mockService.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, report *models.SosReport) error {
			report.ID = uuid.New()
			report.Status = models.StatusPending
			report.RescueUnits = []string{}
			report.VolunteerUnits = []string{}
			return nil
		}).Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/sos", bytes.NewReader(body), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Empty(t, resp.RescueUnits)
}

func TestCreateReport_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Times(0)

	// Latitude out of range.
	body := []byte(`{"latitude": 214.0, "longitude": 121.2, "urgency_score": 5}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/sos", bytes.NewReader(body), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTriage_UrgencyDefault(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	report := respondingReport(uuid.New())

	mockService.EXPECT().
		RankReports(gomock.Any(), service.RankByUrgency, nil).
		Return(&service.TriageList{
			Active:   []service.RankedReport{{Report: report}},
			Resolved: []service.RankedReport{},
		}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp TriageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "urgency", resp.Policy)
	require.Len(t, resp.Active, 1)
	assert.Equal(t, report.ID, resp.Active[0].ID)
	assert.Nil(t, resp.Active[0].DistanceKm)
}

func TestListTriage_NearestWithOperatorLocation(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	report := respondingReport(uuid.New())
	distance := 1.23

	mockService.EXPECT().
		RankReports(gomock.Any(), service.RankByNearest, &models.Location{Latitude: 14.0, Longitude: 121.0}).
		Return(&service.TriageList{
			Active:   []service.RankedReport{{Report: report, DistanceKm: &distance}},
			Resolved: []service.RankedReport{},
		}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos?sort=nearest&lat=14.0&lng=121.0", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp TriageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Active, 1)
	require.NotNil(t, resp.Active[0].DistanceKm)
	assert.Equal(t, distance, *resp.Active[0].DistanceKm)
}

func TestListTriage_MalformedOperatorLocationFallsBack(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	// A malformed coordinate degrades to the configured fallback, not a 400.
	mockService.EXPECT().
		RankReports(gomock.Any(), service.RankByNearest, nil).
		Return(&service.TriageList{Active: []service.RankedReport{}, Resolved: []service.RankedReport{}}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos?sort=nearest&lat=abc&lng=121.0", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListTriage_UnknownPolicy(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().RankReports(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos?sort=oldest", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReport_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().
		GetReport(gomock.Any(), reportID).
		Return(nil, fmt.Errorf("service: could not get report: %w", service.ErrReportNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos/"+reportID.String(), nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetReport_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetReport(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos/not-a-uuid", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignUnits_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	report := respondingReport(reportID)

	mockService.EXPECT().
		AssignUnits(gomock.Any(), reportID, []string{"u1"}, []string{"v1"}).
		Return(&service.DispatchResult{Report: report, NewlyAssigned: 2, AlreadyAssigned: 0}, nil).
		Times(1)

	body, _ := json.Marshal(AssignUnitsRequest{RescuerIDs: []string{"u1"}, VolunteerIDs: []string{"v1"}})
	w := makeRequest(router, http.MethodPost, "/api/v1/sos/"+reportID.String()+"/units", bytes.NewReader(body), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DispatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.NewlyAssigned)
	assert.Equal(t, 0, resp.AlreadyAssigned)
	assert.Equal(t, "2 unit(s) dispatched", resp.Message)
	assert.Equal(t, models.StatusResponding, resp.Report.Status)
}

func TestAssignUnits_NoSelection(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().
		AssignUnits(gomock.Any(), reportID, gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: assign units: %w", service.ErrNoSelection)).
		Times(1)

	body := []byte(`{"rescuer_ids": [], "volunteer_ids": []}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/sos/"+reportID.String()+"/units", bytes.NewReader(body), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignUnits_AlreadyResolved(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().
		AssignUnits(gomock.Any(), reportID, gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: assign units: %w", service.ErrInvalidState)).
		Times(1)

	body := []byte(`{"rescuer_ids": ["u1"]}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/sos/"+reportID.String()+"/units", bytes.NewReader(body), authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAssignUnits_StoreUnavailable(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().
		AssignUnits(gomock.Any(), reportID, gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: connection refused", service.ErrStoreUnavailable)).
		Times(1)

	body := []byte(`{"rescuer_ids": ["u1"]}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/sos/"+reportID.String()+"/units", bytes.NewReader(body), authHeader())

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRemoveUnit_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	report := respondingReport(reportID)
	report.RescueUnits = []string{}
	report.Status = models.StatusPending

	mockService.EXPECT().
		RemoveUnit(gomock.Any(), reportID, "u1", service.UnitRescuer).
		Return(report, nil).Times(1)

	w := makeRequest(router, http.MethodDelete, "/api/v1/sos/"+reportID.String()+"/units/u1?kind=rescuer", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Empty(t, resp.RescueUnits)
}

func TestRemoveUnit_MissingKind(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().RemoveUnit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodDelete, "/api/v1/sos/"+reportID.String()+"/units/u1", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveUnit_InvalidKind(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().RemoveUnit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodDelete, "/api/v1/sos/"+reportID.String()+"/units/u1?kind=driver", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveReport_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()
	report := respondingReport(reportID)
	resolvedAt := time.Date(2024, 7, 26, 12, 0, 0, 0, time.UTC)
	report.Status = models.StatusResolved
	report.ResolvedAt = &resolvedAt

	mockService.EXPECT().
		Resolve(gomock.Any(), reportID).
		Return(report, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/"+reportID.String()+"/resolve", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusResolved, resp.Status)
	require.NotNil(t, resp.ResolvedAt)
	assert.True(t, resp.ResolvedAt.Equal(resolvedAt))
}

func TestResolveReport_AlreadyResolved(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reportID := uuid.New()

	mockService.EXPECT().
		Resolve(gomock.Any(), reportID).
		Return(nil, fmt.Errorf("service: resolve report: %w", service.ErrInvalidState)).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sos/"+reportID.String()+"/resolve", nil, authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetHistory_ResolvedView(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	report := respondingReport(uuid.New())
	resolvedAt := time.Date(2024, 7, 26, 12, 0, 0, 0, time.UTC)
	report.Status = models.StatusResolved
	report.ResolvedAt = &resolvedAt

	mockService.EXPECT().
		History(gomock.Any(), service.HistoryResolved).
		Return([]*models.SosReport{report}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos/history?view=resolved", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, models.StatusResolved, resp[0].Status)
}

func TestGetHistory_DefaultsToAll(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		History(gomock.Any(), service.HistoryAll).
		Return([]*models.SosReport{}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos/history", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetHistory_UnknownView(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().History(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos/history?view=archived", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRescuers_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	rescuers := []*models.Rescuer{
		{ID: uuid.New(), DisplayName: "Maria Santos"},
	}

	mockService.EXPECT().ListRescuers(gomock.Any()).Return(rescuers, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/personnel/rescuers", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*RescuerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Maria Santos", resp[0].DisplayName)
}

func TestListVolunteers_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	volunteers := []*models.VolunteerProfile{
		{ID: uuid.New(), DisplayName: "Ana Cruz", Skills: []string{"first aid"}, Status: "available"},
	}

	mockService.EXPECT().ListVolunteers(gomock.Any()).Return(volunteers, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/personnel/volunteers", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []*VolunteerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Ana Cruz", resp[0].DisplayName)
}

func TestAuth_MissingAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().History(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos/history", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().History(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos/history", nil, map[string]string{"X-API-Key": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_BearerTokenAccepted(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		History(gomock.Any(), service.HistoryAll).
		Return([]*models.SosReport{}, nil).Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/sos/history", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthCheck_NoAuthRequired(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
