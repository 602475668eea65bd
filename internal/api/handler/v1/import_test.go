package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parisbureaux/bureaux-api/internal/domain"
	"github.com/parisbureaux/bureaux-api/internal/service"
)

type stubImportService struct {
	result domain.ImportResult
	err    error

	parsedRows []domain.OfficeImport
	parseErr   error

	template    *bytes.Buffer
	templateErr error

	gotRows []domain.OfficeImport
}

func (s *stubImportService) ImportOffices(_ context.Context, rows []domain.OfficeImport) (domain.ImportResult, error) {
	s.gotRows = rows

	return s.result, s.err
}

func (s *stubImportService) ParseWorkbook(_ io.Reader) ([]domain.OfficeImport, error) {
	return s.parsedRows, s.parseErr
}

func (s *stubImportService) GenerateTemplate() (*bytes.Buffer, error) {
	return s.template, s.templateErr
}

func importRouter(svc ImportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewImportHandler(svc)
	router.POST("/api/v1/offices/import", handler.HandleImportOffices)
	router.POST("/api/v1/offices/import/xlsx", handler.HandleImportOfficesWorkbook)
	router.GET("/api/v1/offices/import/template", handler.HandleImportTemplate)

	return router
}

func validImportBody(slugs ...string) string {
	offices := make([]map[string]interface{}, len(slugs))
	for i, slug := range slugs {
		offices[i] = map[string]interface{}{
			"title":      "Bureau " + slug,
			"slug":       slug,
			"arr":        2,
			"priceCents": 150000,
			"nbPosts":    4,
			"lat":        48.86,
			"lng":        2.34,
		}
	}

	body, _ := json.Marshal(map[string]interface{}{"offices": offices})

	return string(body)
}

func TestHandleImportOffices_Success(t *testing.T) {
	svc := &stubImportService{result: domain.ImportResult{
		Total:   2,
		Created: 1,
		Skipped: 1,
		Errors:  []domain.ImportError{{Row: 2, Error: `duplicate slug "b": an office with this slug already exists`}},
	}}
	router := importRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offices/import", strings.NewReader(validImportBody("a", "b")))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Results domain.ImportResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, 2, got.Results.Total)
	assert.Equal(t, 1, got.Results.Created)
	require.Len(t, got.Results.Errors, 1)
	assert.Equal(t, 2, got.Results.Errors[0].Row)

	require.Len(t, svc.gotRows, 2)
	assert.Equal(t, "a", svc.gotRows[0].Slug)
}

func TestHandleImportOffices_ValidationFailure(t *testing.T) {
	svc := &stubImportService{}
	router := importRouter(svc)

	body := `{"offices":[{"title":"","slug":"x","arr":2,"lat":48.86,"lng":2.34}]}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offices/import", strings.NewReader(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var got struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Validation failed", got.Error)
	require.Len(t, got.Details, 1)
	assert.Contains(t, got.Details[0], "offices[0].title:")
	assert.Nil(t, svc.gotRows)
}

func TestHandleImportOffices_EmptyBatch(t *testing.T) {
	router := importRouter(&stubImportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offices/import", strings.NewReader(`{"offices":[]}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "offices: cannot be blank")
}

func workbookUpload(t *testing.T, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "import.xlsx")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestHandleImportOfficesWorkbook_Success(t *testing.T) {
	svc := &stubImportService{
		parsedRows: []domain.OfficeImport{
			{Title: "Bureau Opera", Slug: "bureau-opera", Arr: 2, NbPosts: 4, Lat: 48.87, Lng: 2.33},
		},
		result: domain.ImportResult{Total: 1, Created: 1, Errors: []domain.ImportError{}},
	}
	router := importRouter(svc)

	buf, contentType := workbookUpload(t, "workbook-bytes")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offices/import/xlsx", buf)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.gotRows, 1)
	assert.Equal(t, "bureau-opera", svc.gotRows[0].Slug)
}

func TestHandleImportOfficesWorkbook_ParseProblems(t *testing.T) {
	svc := &stubImportService{parseErr: &service.WorkbookError{
		Details: []string{`row 2: arr must be an integer, got "deux"`},
	}}
	router := importRouter(svc)

	buf, contentType := workbookUpload(t, "not a real workbook")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offices/import/xlsx", buf)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "arr must be an integer")
}

func TestHandleImportOfficesWorkbook_MissingFile(t *testing.T) {
	router := importRouter(&stubImportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offices/import/xlsx", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleImportTemplate(t *testing.T) {
	svc := &stubImportService{template: bytes.NewBufferString("xlsx-bytes")}
	router := importRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offices/import/template", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, workbookContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "modele-import-bureaux.xlsx")
	assert.Equal(t, "xlsx-bytes", w.Body.String())
}
