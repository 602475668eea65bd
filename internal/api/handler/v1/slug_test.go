package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parisbureaux/bureaux-api/internal/domain"
)

type stubSlugService struct {
	result domain.SlugVerification
	err    error

	gotSlug      string
	gotExcludeID uint
}

func (s *stubSlugService) Verify(_ context.Context, slug string, excludeOfficeID uint) (domain.SlugVerification, error) {
	s.gotSlug = slug
	s.gotExcludeID = excludeOfficeID

	return s.result, s.err
}

func slugRouter(svc SlugService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/slug/verify", NewSlugHandler(svc).HandleVerifySlug)

	return router
}

func TestHandleVerifySlug_Available(t *testing.T) {
	svc := &stubSlugService{result: domain.SlugVerification{
		Available:   true,
		Suggestions: []string{},
	}}
	router := slugRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/slug/verify", strings.NewReader(`{"slug":"bureau-opera"}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"available":true,"suggestions":[]}`, w.Body.String())
	assert.Equal(t, "bureau-opera", svc.gotSlug)
	assert.Equal(t, uint(0), svc.gotExcludeID)
}

func TestHandleVerifySlug_Taken(t *testing.T) {
	svc := &stubSlugService{result: domain.SlugVerification{
		Available:   false,
		Existing:    &domain.Office{ID: 7, Slug: "bureau-opera", Title: "Bureau Opéra"},
		Suggestions: []string{"bureau-opera-1234", "bureau-opera-42", "bureau-opera-nouveau"},
	}}
	router := slugRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/slug/verify", strings.NewReader(`{"slug":"bureau-opera","officeId":3}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"available": false,
		"existingOffice": {"id": 7, "slug": "bureau-opera", "title": "Bureau Opéra"},
		"suggestions": ["bureau-opera-1234", "bureau-opera-42", "bureau-opera-nouveau"]
	}`, w.Body.String())
	assert.Equal(t, uint(3), svc.gotExcludeID)
}

func TestHandleVerifySlug_MissingSlug(t *testing.T) {
	router := slugRouter(&stubSlugService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/slug/verify", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Validation failed")
	assert.Contains(t, w.Body.String(), "slug: cannot be blank")
}

func TestHandleVerifySlug_ServiceError(t *testing.T) {
	router := slugRouter(&stubSlugService{err: errors.New("boom")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/slug/verify", strings.NewReader(`{"slug":"bureau-opera"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
