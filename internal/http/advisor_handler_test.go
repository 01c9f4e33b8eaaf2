package http

import (
	"errors"
	"net/http"
	"reflect"
	"testing"

	"career-compass/internal/llm"
)

func TestAssessment_ReturnsRecommendations(t *testing.T) {
	mock := &llm.MockClient{Response: "1. Data Analyst"}
	r, _ := setupRouter(newMockUserRepo(), mock)

	rec := performRequest(r, http.MethodPost, "/api/assessment", map[string]any{
		"skills":          []string{"Python", "SQL"},
		"interests":       []string{"data"},
		"experienceLevel": "beginner",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if !body.Success || body.Recommendations != "1. Data Analyst" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAssessment_FallbackWhenUpstreamFails(t *testing.T) {
	mock := &llm.MockClient{Err: errors.New("upstream unreachable")}
	r, _ := setupRouter(newMockUserRepo(), mock)

	rec := performRequest(r, http.MethodPost, "/api/assessment", map[string]any{
		"skills":          []string{"Python", "SQL"},
		"interests":       []string{"data"},
		"experienceLevel": "beginner",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if !body.Success || body.Recommendations == "" {
		t.Fatalf("expected fallback recommendations, got %+v", body)
	}
}

func TestResources_EmptyCareerRejectedBeforeUpstream(t *testing.T) {
	mock := &llm.MockClient{Response: "should not be called"}
	r, _ := setupRouter(newMockUserRepo(), mock)

	rec := performRequest(r, http.MethodPost, "/api/resources", map[string]string{
		"career": "",
	}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if mock.Calls != 0 {
		t.Fatalf("expected no upstream call, got %d", mock.Calls)
	}
}

func TestResources_Success(t *testing.T) {
	mock := &llm.MockClient{Response: "1. Online Course"}
	r, _ := setupRouter(newMockUserRepo(), mock)

	rec := performRequest(r, http.MethodPost, "/api/resources", map[string]string{
		"career": "Data Scientist",
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if !body.Success || body.Resources != "1. Online Course" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestCareerCategories_StableAcrossCalls(t *testing.T) {
	r, _ := setupRouter(newMockUserRepo(), nil)

	first := decodeEnvelope(t, performRequest(r, http.MethodGet, "/api/career-categories", nil, ""))
	second := decodeEnvelope(t, performRequest(r, http.MethodGet, "/api/career-categories", nil, ""))

	if !first.Success || !second.Success {
		t.Fatalf("expected success envelopes")
	}
	if !reflect.DeepEqual(first.Categories, second.Categories) {
		t.Fatalf("expected identical categories on every call")
	}
	for _, key := range []string{"technology", "healthcare", "business", "creative"} {
		if _, ok := first.Categories[key]; !ok {
			t.Fatalf("expected category %q", key)
		}
	}
}

func TestHealth_ReportsDegradedDependencies(t *testing.T) {
	r, _ := setupRouter(nil, nil)

	rec := performRequest(r, http.MethodGet, "/api/health", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if !body.Success {
		t.Fatalf("expected success envelope, got %+v", body)
	}
	if body.Database != "unavailable" {
		t.Fatalf("expected database unavailable, got %q", body.Database)
	}
	if body.AIService != "not_configured" {
		t.Fatalf("expected ai not_configured, got %q", body.AIService)
	}
}

func TestHealth_ReportsConfiguredAI(t *testing.T) {
	r, _ := setupRouter(newMockUserRepo(), &llm.MockClient{Response: "ok"})

	body := decodeEnvelope(t, performRequest(r, http.MethodGet, "/api/health", nil, ""))
	if body.AIService != "configured" {
		t.Fatalf("expected ai configured, got %q", body.AIService)
	}
}
