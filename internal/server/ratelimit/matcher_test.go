package ratelimit

import (
	"testing"
	"time"
)

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	cfg := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	if cfg == nil {
		t.Fatal("Expected health endpoint to match")
	}
	if cfg.Limit != 0 {
		t.Errorf("Expected health endpoint to be unlimited, got limit %d", cfg.Limit)
	}
}

func TestMatchEndpoint_ExactMatch(t *testing.T) {
	cfg := MatchEndpoint("/auth/login", "POST", DefaultEndpointConfigs())
	if cfg == nil {
		t.Fatal("Expected /auth/login to match")
	}
	if cfg.Window != time.Minute {
		t.Errorf("Expected minute window, got %v", cfg.Window)
	}
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	for _, path := range []string{"/generate/resume", "/generate/career-insights", "/generate/interview-questions"} {
		cfg := MatchEndpoint(path, "POST", configs)
		if cfg == nil {
			t.Fatalf("Expected %s to match the generation tier", path)
		}
		if cfg.Window != time.Hour {
			t.Errorf("Expected hour window for %s, got %v", path, cfg.Window)
		}
	}
}

func TestMatchEndpoint_MethodMismatch(t *testing.T) {
	cfg := MatchEndpoint("/generate/resume", "GET", DefaultEndpointConfigs())
	if cfg != nil {
		t.Error("Expected no match for GET on a POST-only tier")
	}
}

func TestMatchEndpoint_NoMatch(t *testing.T) {
	cfg := MatchEndpoint("/interviews", "GET", DefaultEndpointConfigs())
	if cfg != nil {
		t.Error("Expected read endpoint to fall through to the default limit")
	}
}
