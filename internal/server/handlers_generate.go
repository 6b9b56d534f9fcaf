package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/careerpilot/internal/db"
	"github.com/jonathan/careerpilot/internal/prompts"
	"github.com/jonathan/careerpilot/internal/schemas"
	"github.com/jonathan/careerpilot/internal/server/middleware"
	"github.com/jonathan/careerpilot/internal/types"
)

// Max output tokens per generation route.
const (
	resumeMaxTokens    = 2000
	insightsMaxTokens  = 2000
	questionsMaxTokens = 1500
)

// handleGenerateResume generates an ATS-optimized resume draft from the
// user's profile, validates the model output against the resume schema
// and stores it as a saved resume.
func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if s.generator == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "generation is not configured")
		return
	}

	var req types.GenerateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	user, err := s.userService.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	template, err := prompts.Get("generation.json", "resume")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load prompt")
		return
	}
	prompt := prompts.Format(template, map[string]string{
		"Name":       user.Name,
		"Email":      user.Email,
		"Phone":      "",
		"Location":   user.Location,
		"TargetRole": req.TargetRole,
		"Industry":   req.Industry,
		"Experience": req.Experience,
		"Skills":     strings.Join(user.Skills, ", "),
	})

	content, err := s.generator.GenerateJSON(r.Context(), prompt, resumeMaxTokens)
	if err != nil {
		log.Printf("[generate] resume generation failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "generation failed")
		return
	}

	if err := schemas.ValidateGeneratedResume(content); err != nil {
		log.Printf("[generate] resume output failed validation: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "generated resume is malformed")
		return
	}

	id, err := s.store.CreateResume(r.Context(), db.Resume{
		UserID:       userID,
		Title:        req.Title,
		TargetRole:   req.TargetRole,
		Industry:     req.Industry,
		Content:      content,
		ATSOptimized: true,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to store resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":      id.String(),
		"content": json.RawMessage(content),
	})
}

// handleGenerateInsights generates personalized career insights for the
// user's profile and stores them.
func (s *Server) handleGenerateInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if s.generator == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "generation is not configured")
		return
	}

	var req types.GenerateInsightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.userService.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	targetRole := req.TargetRole
	if targetRole == "" {
		targetRole = user.TargetRole
	}

	template, err := prompts.Get("generation.json", "career_insights")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load prompt")
		return
	}
	prompt := prompts.Format(template, map[string]string{
		"Profile":    user.ProfessionalSummary,
		"Location":   user.Location,
		"TargetRole": targetRole,
	})

	content, err := s.generator.Generate(r.Context(), prompt, insightsMaxTokens)
	if err != nil {
		log.Printf("[generate] insights generation failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "generation failed")
		return
	}

	id, err := s.store.CreateInsight(r.Context(), db.CareerInsight{
		UserID:      userID,
		InsightType: "career",
		Title:       "Career insights for " + targetRole,
		Content:     content,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to store insight")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":      id.String(),
		"content": content,
	})
}

// handleGenerateQuestions generates alternate interview questions for a
// role and experience level. The scored mock interviews always use the
// fixed banks; these are practice material only.
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.GetUserID(r); err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if s.generator == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "generation is not configured")
		return
	}

	var req types.GenerateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	template, err := prompts.Get("generation.json", "interview_questions")
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load prompt")
		return
	}
	prompt := prompts.Format(template, map[string]string{
		"InterviewType":   req.Type,
		"TargetRole":      req.TargetRole,
		"ExperienceLevel": req.ExperienceLevel,
	})

	content, err := s.generator.GenerateJSON(r.Context(), prompt, questionsMaxTokens)
	if err != nil {
		log.Printf("[generate] question generation failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "generation failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"questions": json.RawMessage(content),
	})
}

// handleListInsights returns the authenticated user's stored insights,
// newest first.
func (s *Server) handleListInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	insights, err := s.store.ListInsightsByUser(r.Context(), userID, 20)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list insights")
		return
	}
	if insights == nil {
		insights = []db.CareerInsight{}
	}

	s.jsonResponse(w, http.StatusOK, insights)
}
