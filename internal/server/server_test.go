package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careerpilot/internal/db"
	"github.com/jonathan/careerpilot/internal/types"
)

// mockStore is an in-memory Store implementation for handler tests.
type mockStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*db.User
	sessions []db.InterviewSession
	activity []db.ActivityEvent
	resumes  map[uuid.UUID]*db.Resume
	jobs     []db.JobListing
	saved    map[uuid.UUID]map[uuid.UUID]bool
	insights []db.CareerInsight

	failAppendSession  bool
	failAppendActivity bool
}

func newMockStore() *mockStore {
	return &mockStore{
		users:   make(map[uuid.UUID]*db.User),
		resumes: make(map[uuid.UUID]*db.Resume),
		saved:   make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (m *mockStore) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	now := time.Now()
	m.users[id] = &db.User{
		ID: id, Name: name, Email: email, PasswordHash: passwordHash,
		Skills: db.StringArray{}, CreatedAt: now, UpdatedAt: now,
	}
	return id, nil
}

func (m *mockStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (m *mockStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	u, _ := m.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (m *mockStore) UpdateUserProfile(_ context.Context, userID uuid.UUID, upd db.UserProfileUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return &ErrUserNotFound{UserID: userID}
	}
	u.Name = upd.Name
	u.Headline = upd.Headline
	u.Location = upd.Location
	u.Bio = upd.Bio
	u.ProfessionalSummary = upd.ProfessionalSummary
	u.TargetRole = upd.TargetRole
	u.Industry = upd.Industry
	u.Skills = upd.Skills
	u.UpdatedAt = time.Now()
	return nil
}

func (m *mockStore) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return &ErrUserNotFound{UserID: userID}
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *mockStore) AppendSession(_ context.Context, session db.InterviewSession) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAppendSession {
		return uuid.Nil, assert.AnError
	}
	session.ID = uuid.New()
	m.sessions = append(m.sessions, session)
	return session.ID, nil
}

func (m *mockStore) GetSession(_ context.Context, sessionID uuid.UUID) (*db.InterviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.sessions {
		if m.sessions[i].ID == sessionID {
			copied := m.sessions[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockStore) ListSessionsByUser(_ context.Context, userID uuid.UUID, limit int) ([]db.InterviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.InterviewSession
	for i := len(m.sessions) - 1; i >= 0 && len(out) < limit; i-- {
		if m.sessions[i].UserID == userID {
			out = append(out, m.sessions[i])
		}
	}
	return out, nil
}

func (m *mockStore) AppendActivity(_ context.Context, event db.ActivityEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAppendActivity {
		return assert.AnError
	}
	event.ID = uuid.New()
	m.activity = append(m.activity, event)
	return nil
}

func (m *mockStore) ListActivityByUser(_ context.Context, userID uuid.UUID, limit int) ([]db.ActivityEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.ActivityEvent
	for i := len(m.activity) - 1; i >= 0 && len(out) < limit; i-- {
		if m.activity[i].UserID == userID {
			out = append(out, m.activity[i])
		}
	}
	return out, nil
}

func (m *mockStore) CreateResume(_ context.Context, resume db.Resume) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	resume.ID = uuid.New()
	resume.CreatedAt = time.Now()
	resume.UpdatedAt = resume.CreatedAt
	m.resumes[resume.ID] = &resume
	return resume.ID, nil
}

func (m *mockStore) GetResume(_ context.Context, resumeID uuid.UUID) (*db.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[resumeID]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (m *mockStore) ListResumesByUser(_ context.Context, userID uuid.UUID) ([]db.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.Resume
	for _, r := range m.resumes {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockStore) DeleteResume(_ context.Context, userID, resumeID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.resumes[resumeID]
	if !ok || r.UserID != userID {
		return assert.AnError
	}
	delete(m.resumes, resumeID)
	return nil
}

func (m *mockStore) ListJobListings(_ context.Context, _ db.ListJobListingsOptions) ([]db.JobListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]db.JobListing(nil), m.jobs...), nil
}

func (m *mockStore) SaveJob(_ context.Context, userID, jobID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved[userID] == nil {
		m.saved[userID] = make(map[uuid.UUID]bool)
	}
	m.saved[userID][jobID] = true
	return nil
}

func (m *mockStore) UnsaveJob(_ context.Context, userID, jobID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.saved[userID], jobID)
	return nil
}

func (m *mockStore) ListSavedJobs(_ context.Context, userID uuid.UUID) ([]db.JobListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.JobListing
	for _, j := range m.jobs {
		if m.saved[userID][j.ID] {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockStore) CreateInsight(_ context.Context, insight db.CareerInsight) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	insight.ID = uuid.New()
	insight.CreatedAt = time.Now()
	m.insights = append(m.insights, insight)
	return insight.ID, nil
}

func (m *mockStore) ListInsightsByUser(_ context.Context, userID uuid.UUID, limit int) ([]db.CareerInsight, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.CareerInsight
	for i := len(m.insights) - 1; i >= 0 && len(out) < limit; i-- {
		if m.insights[i].UserID == userID {
			out = append(out, m.insights[i])
		}
	}
	return out, nil
}

// stubGenerator is a deterministic TextGenerator for tests.
type stubGenerator struct {
	text string
	err  error
}

func (g *stubGenerator) Generate(_ context.Context, _ string, _ int) (string, error) {
	return g.text, g.err
}

func (g *stubGenerator) GenerateJSON(_ context.Context, _ string, _ int) (string, error) {
	return g.text, g.err
}

func (g *stubGenerator) Close() error { return nil }

// newTestServer builds a Server around the mock store with test config.
func newTestServer(t *testing.T, store Store, generator *stubGenerator) *Server {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "1")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("PASSWORD_PEPPER", "")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	var s *Server
	var err error
	if generator != nil {
		s, err = newServer(store, generator)
	} else {
		s, err = newServer(store, nil)
	}
	require.NoError(t, err)
	return s
}

// registerTestUser registers a user through the API and returns its ID and token.
func registerTestUser(t *testing.T, handler http.Handler, email string) (uuid.UUID, string) {
	t.Helper()
	body, _ := json.Marshal(types.CreateUserRequest{
		Name:     "Test User",
		Email:    email,
		Password: "Secret#123",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.User.ID, resp.Token
}

func authedRequest(method, target, token string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, newMockStore(), nil)
	handler := s.Handler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t, newMockStore(), nil)
	handler := s.Handler()

	userID, token := registerTestUser(t, handler, "priya@example.com")
	assert.NotEqual(t, uuid.Nil, userID)
	assert.NotEmpty(t, token)

	// Duplicate registration conflicts
	body, _ := json.Marshal(types.CreateUserRequest{
		Name: "Test User", Email: "priya@example.com", Password: "Secret#123",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login with the right password
	body, _ = json.Marshal(types.LoginRequest{Email: "priya@example.com", Password: "Secret#123"})
	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Login with a wrong password
	body, _ = json.Marshal(types.LoginRequest{Email: "priya@example.com", Password: "Wrong#123"})
	req = httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	s := newTestServer(t, newMockStore(), nil)
	handler := s.Handler()

	body, _ := json.Marshal(types.CreateUserRequest{
		Name: "Test User", Email: "weak@example.com", Password: "alllowercase1",
	})
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "uppercase")
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	s := newTestServer(t, newMockStore(), nil)
	handler := s.Handler()

	targets := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users/me"},
		{http.MethodPost, "/interviews"},
		{http.MethodGet, "/activity"},
		{http.MethodGet, "/resumes"},
		{http.MethodGet, "/insights"},
	}

	for _, tgt := range targets {
		req := httptest.NewRequest(tgt.method, tgt.path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tgt.method, tgt.path)
	}
}

func TestGetAndUpdateProfile(t *testing.T) {
	s := newTestServer(t, newMockStore(), nil)
	handler := s.Handler()
	_, token := registerTestUser(t, handler, "profile@example.com")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(http.MethodGet, "/users/me", token, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var user types.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "profile@example.com", user.Email)

	body, _ := json.Marshal(map[string]any{
		"target_role": "Backend Engineer",
		"skills":      []string{"Go", "PostgreSQL"},
	})
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(http.MethodPut, "/users/me", token, body))
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "Backend Engineer", user.TargetRole)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, user.Skills)
	// Untouched fields survive a partial update
	assert.Equal(t, "Test User", user.Name)
}

func TestUpdatePasswordFlow(t *testing.T) {
	s := newTestServer(t, newMockStore(), nil)
	handler := s.Handler()
	_, token := registerTestUser(t, handler, "pw@example.com")

	// Wrong current password
	body, _ := json.Marshal(types.UpdatePasswordRequest{
		CurrentPassword: "Wrong#123", NewPassword: "Fresh#456",
	})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(http.MethodPut, "/auth/password", token, body))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Correct current password
	body, _ = json.Marshal(types.UpdatePasswordRequest{
		CurrentPassword: "Secret#123", NewPassword: "Fresh#456",
	})
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(http.MethodPut, "/auth/password", token, body))
	assert.Equal(t, http.StatusOK, w.Code)

	// New password works for login
	body, _ = json.Marshal(types.LoginRequest{Email: "pw@example.com", Password: "Fresh#456"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResumeCRUD(t *testing.T) {
	s := newTestServer(t, newMockStore(), nil)
	handler := s.Handler()
	_, token := registerTestUser(t, handler, "resumes@example.com")

	body, _ := json.Marshal(map[string]any{
		"title":   "My Resume",
		"content": "plain text resume",
	})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(http.MethodPost, "/resumes", token, body))
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	resumeID := created["id"]
	require.NotEmpty(t, resumeID)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(http.MethodGet, "/resumes/"+resumeID, token, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(http.MethodDelete, "/resumes/"+resumeID, token, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(http.MethodGet, "/resumes/"+resumeID, token, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResumeOwnershipEnforced(t *testing.T) {
	s := newTestServer(t, newMockStore(), nil)
	handler := s.Handler()
	_, tokenA := registerTestUser(t, handler, "owner@example.com")
	_, tokenB := registerTestUser(t, handler, "other@example.com")

	body, _ := json.Marshal(map[string]any{"title": "Private", "content": "text"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(http.MethodPost, "/resumes", tokenA, body))
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(http.MethodGet, "/resumes/"+created["id"], tokenB, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveAndUnsaveJob(t *testing.T) {
	store := newMockStore()
	jobID := uuid.New()
	store.jobs = []db.JobListing{{ID: jobID, Title: "SDE-2", Company: "Acme", Location: "Remote"}}

	s := newTestServer(t, store, nil)
	handler := s.Handler()
	_, token := registerTestUser(t, handler, "jobs@example.com")

	// Open listing endpoint
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(http.MethodPost, "/jobs/"+jobID.String()+"/save", token, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(http.MethodGet, "/jobs/saved", token, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var saved []db.JobListing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	require.Len(t, saved, 1)
	assert.Equal(t, "SDE-2", saved[0].Title)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(http.MethodDelete, "/jobs/"+jobID.String()+"/save", token, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, authedRequest(http.MethodGet, "/jobs/saved", token, nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.Empty(t, saved)
}
