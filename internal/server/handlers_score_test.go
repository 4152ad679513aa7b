package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/server/middleware"
	"github.com/jonathan/resume-tailor/internal/server/ratelimit"
	"github.com/jonathan/resume-tailor/internal/types"
)

// newScoreTestServer builds a server with only the pieces the stateless
// scoring route touches, wrapped in real auth middleware.
func newScoreTestServer(limiter ratelimit.Limiter) (http.Handler, string) {
	jwtSvc := NewJWTService(testJWTConfig())
	s := &Server{
		rateLimiter: limiter,
		jwtService:  jwtSvc,
	}

	token, _ := jwtSvc.GenerateToken(uuid.New())

	auth := middleware.Auth(jwtSvc.AsTokenValidator())
	return auth(http.HandlerFunc(s.handleScore)), token
}

func scoreBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(types.ScoreRequest{
		Resume: &types.StructuredResume{
			Contact: types.Contact{Name: "Jane Doe", Email: "jane@example.com"},
			Summary: "Python and AWS developer with cloud experience",
			Experience: []types.ExperienceItem{
				{
					Company: "Acme",
					Role:    "Engineer",
					Bullets: []string{"Deployed Docker containers, reducing costs by 20%"},
				},
			},
			Education: []types.EducationItem{
				{School: "State University", Degree: "Bachelor of Science"},
			},
			Skills: types.NewSkills([]string{"Python", "AWS", "Docker"}),
		},
		JobDescription: "We need a Python developer with AWS and Docker experience, Bachelor's required",
	})
	require.NoError(t, err)
	return body
}

func TestHandleScore(t *testing.T) {
	handler, token := newScoreTestServer(ratelimit.NewMemoryLimiter(nil))

	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader(scoreBody(t)))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result types.ScoreResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.Greater(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
	assert.Contains(t, result.Keywords.Matched, "python")
	assert.Equal(t, 40, result.Breakdown.Keywords.Max)
	assert.Equal(t, 25, result.Breakdown.Experience.Max)

	// Rate limit headers accompany successful responses
	assert.Equal(t, "100", w.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
}

func TestHandleScore_Unauthorized(t *testing.T) {
	handler, _ := newScoreTestServer(ratelimit.NewMemoryLimiter(nil))

	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader(scoreBody(t)))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleScore_InvalidBody(t *testing.T) {
	handler, token := newScoreTestServer(ratelimit.NewMemoryLimiter(nil))

	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader([]byte("not json")))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleScore_MissingJobDescription(t *testing.T) {
	handler, token := newScoreTestServer(ratelimit.NewMemoryLimiter(nil))

	body, _ := json.Marshal(map[string]any{
		"resume": map[string]any{"contact": map[string]string{"name": "Jane"}},
	})
	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation error")
}

func TestHandleScore_RateLimited(t *testing.T) {
	limiter := ratelimit.NewMemoryLimiter(&ratelimit.Config{
		Enabled: true,
		Limit:   2,
		Window:  time.Hour,
	})
	defer limiter.Stop()

	handler, token := newScoreTestServer(limiter)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader(scoreBody(t)))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/score", bytes.NewReader(scoreBody(t)))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
}
