package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"career-compass/internal/llm"
)

func TestAdvisorServiceRecommendCareers_JoinsInputsIntoPrompt(t *testing.T) {
	mock := &llm.MockClient{Response: "1. Data Analyst"}
	svc := NewAdvisorService(zap.NewNop(), mock)

	got := svc.RecommendCareers(context.Background(), []string{"Python", "SQL"}, []string{"data"}, "beginner")
	if got != "1. Data Analyst" {
		t.Fatalf("expected llm response, got %q", got)
	}
	if !strings.Contains(mock.LastPrompt, "Skills: Python, SQL") {
		t.Fatalf("expected joined skills in prompt, got %q", mock.LastPrompt)
	}
	if !strings.Contains(mock.LastPrompt, "Interests: data") {
		t.Fatalf("expected interests in prompt, got %q", mock.LastPrompt)
	}
	if !strings.Contains(mock.LastPrompt, "Experience Level: beginner") {
		t.Fatalf("expected experience level in prompt, got %q", mock.LastPrompt)
	}
}

func TestAdvisorServiceRecommendCareers_DefaultsExperienceLevel(t *testing.T) {
	mock := &llm.MockClient{Response: "ok"}
	svc := NewAdvisorService(zap.NewNop(), mock)

	svc.RecommendCareers(context.Background(), nil, nil, "")
	if !strings.Contains(mock.LastPrompt, "Experience Level: beginner") {
		t.Fatalf("expected beginner default, got %q", mock.LastPrompt)
	}
}

func TestAdvisorServiceRecommendCareers_FallbackOnError(t *testing.T) {
	mock := &llm.MockClient{Err: errors.New("quota exceeded")}
	svc := NewAdvisorService(zap.NewNop(), mock)

	got := svc.RecommendCareers(context.Background(), []string{"Python"}, []string{"data"}, "beginner")
	if got != recommendationsFallback {
		t.Fatalf("expected fallback text, got %q", got)
	}
}

func TestAdvisorServiceRecommendCareers_NilClientShortCircuits(t *testing.T) {
	svc := NewAdvisorService(zap.NewNop(), nil)

	got := svc.RecommendCareers(context.Background(), []string{"Python"}, nil, "beginner")
	if got != recommendationsFallback {
		t.Fatalf("expected fallback text, got %q", got)
	}
}

func TestAdvisorServiceLearningResources_Success(t *testing.T) {
	mock := &llm.MockClient{Response: "1. Online Course"}
	svc := NewAdvisorService(zap.NewNop(), mock)

	got := svc.LearningResources(context.Background(), "Data Scientist")
	if got != "1. Online Course" {
		t.Fatalf("expected llm response, got %q", got)
	}
	if !strings.Contains(mock.LastPrompt, "Career path: Data Scientist") {
		t.Fatalf("expected career path in prompt, got %q", mock.LastPrompt)
	}
}

func TestAdvisorServiceLearningResources_FallbackOnError(t *testing.T) {
	mock := &llm.MockClient{Err: errors.New("timeout")}
	svc := NewAdvisorService(zap.NewNop(), mock)

	got := svc.LearningResources(context.Background(), "Nurse")
	if got != resourcesFallback {
		t.Fatalf("expected fallback text, got %q", got)
	}
}

func TestCareerCategories_FixedCatalog(t *testing.T) {
	first := CareerCategories()
	second := CareerCategories()

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical catalog on every call")
	}
	for _, key := range []string{"technology", "healthcare", "business", "creative"} {
		if len(first[key]) != 4 {
			t.Fatalf("expected 4 careers under %q, got %d", key, len(first[key]))
		}
	}
	if len(first) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(first))
	}
}
