package gui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/espsim/edgeplan/internal/config"
	"github.com/espsim/edgeplan/internal/dataset"
	"github.com/espsim/edgeplan/internal/planner"
	"github.com/espsim/edgeplan/sim"
	"github.com/gin-gonic/gin"
)

func servePlanner(t *testing.T, run bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.PlannerGeneralConfig = config.GeneralConfig{
		Name:             "gui-test",
		EdgeServerCount:  2,
		Strategies:       []string{"topk"},
		KMeansIterations: 50,
	}

	p := planner.New(dataset.NewSyntheticSource(10, 17, 2))
	if err := p.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if run {
		if err := p.Run(); err != nil {
			t.Fatalf("run failed: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	SetUp(p.Serve(ctx))
}

func TestReportRoute(t *testing.T) {
	servePlanner(t, true)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/report", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("got status %d, wanted 200", recorder.Code)
	}

	var report sim.Report
	if err := json.Unmarshal(recorder.Body.Bytes(), &report); err != nil {
		t.Fatalf("response is not a report: %v", err)
	}
	if report.Winner != "topk" || len(report.Outcomes) != 1 {
		t.Fatalf("report arrived as %+v", report)
	}
}

func TestReportRouteBeforeRun(t *testing.T) {
	servePlanner(t, false)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/report", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusServiceUnavailable {
		t.Fatalf("got status %d before any run, wanted 503", recorder.Code)
	}
}

func TestHealthRoute(t *testing.T) {
	servePlanner(t, false)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("got status %d, wanted 200", recorder.Code)
	}
}
