package jobapplication_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rikumates/internal/jobapplication"
	"rikumates/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

type fakeJobApplicationService struct {
	createFn  func(ctx context.Context, userID, companyID string, req jobapplication.CreateJobApplicationRequest) (jobapplication.JobApplicationResponse, error)
	listFn    func(ctx context.Context, userID, companyID string) ([]jobapplication.JobApplicationResponse, error)
	getByIDFn func(ctx context.Context, userID, id string) (jobapplication.JobApplicationResponse, error)
	updateFn  func(ctx context.Context, userID, id string, req jobapplication.UpdateJobApplicationRequest) (jobapplication.JobApplicationResponse, error)
	deleteFn  func(ctx context.Context, userID, id string) (jobapplication.JobApplicationResponse, error)
}

func (f *fakeJobApplicationService) Create(ctx context.Context, userID, companyID string, req jobapplication.CreateJobApplicationRequest) (jobapplication.JobApplicationResponse, error) {
	return f.createFn(ctx, userID, companyID, req)
}
func (f *fakeJobApplicationService) List(ctx context.Context, userID, companyID string) ([]jobapplication.JobApplicationResponse, error) {
	return f.listFn(ctx, userID, companyID)
}
func (f *fakeJobApplicationService) GetByID(ctx context.Context, userID, id string) (jobapplication.JobApplicationResponse, error) {
	return f.getByIDFn(ctx, userID, id)
}
func (f *fakeJobApplicationService) Update(ctx context.Context, userID, id string, req jobapplication.UpdateJobApplicationRequest) (jobapplication.JobApplicationResponse, error) {
	return f.updateFn(ctx, userID, id, req)
}
func (f *fakeJobApplicationService) Delete(ctx context.Context, userID, id string) (jobapplication.JobApplicationResponse, error) {
	return f.deleteFn(ctx, userID, id)
}

func TestJobApplicationHandler_Create(t *testing.T) {
	t.Run("success takes company_id from the body", func(t *testing.T) {
		userID := uuid.New().String()
		companyID := uuid.New().String()
		svc := &fakeJobApplicationService{
			createFn: func(ctx context.Context, uid, cid string, req jobapplication.CreateJobApplicationRequest) (jobapplication.JobApplicationResponse, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, companyID, cid)
				assert.Equal(t, "書類選考", req.Status)
				return jobapplication.JobApplicationResponse{
					ID:        uuid.New().String(),
					UserID:    uid,
					CompanyID: cid,
					Status:    req.Status,
				}, nil
			},
		}

		h := jobapplication.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"company_id":"` + companyID + `","status":"書類選考"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/job_applications", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id_validated", userID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var env dataEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var got jobapplication.JobApplicationResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, companyID, got.CompanyID)
	})

	t.Run("negative missing company_id never reaches the service", func(t *testing.T) {
		svc := &fakeJobApplicationService{
			createFn: func(ctx context.Context, uid, cid string, req jobapplication.CreateJobApplicationRequest) (jobapplication.JobApplicationResponse, error) {
				t.Fatal("service should not be called")
				return jobapplication.JobApplicationResponse{}, nil
			},
		}

		h := jobapplication.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/job_applications", strings.NewReader(`{"status":"書類選考"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id_validated", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env errorEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "Company Id is required", env.Error)
	})
}

func TestJobApplicationHandler_CreateForCompany(t *testing.T) {
	t.Run("success takes company_id from the path", func(t *testing.T) {
		userID := uuid.New().String()
		companyID := uuid.New().String()
		svc := &fakeJobApplicationService{
			createFn: func(ctx context.Context, uid, cid string, req jobapplication.CreateJobApplicationRequest) (jobapplication.JobApplicationResponse, error) {
				assert.Equal(t, companyID, cid)
				return jobapplication.JobApplicationResponse{
					ID:        uuid.New().String(),
					UserID:    uid,
					CompanyID: cid,
					Status:    req.Status,
				}, nil
			},
		}

		h := jobapplication.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/companies/"+companyID+"/job_applications", strings.NewReader(`{"status":"一次面接"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "company_id", Value: companyID}}
		c.Set("user_id_validated", userID)

		h.CreateForCompany(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestJobApplicationHandler_ListByCompany(t *testing.T) {
	t.Run("success scopes to the path company", func(t *testing.T) {
		userID := uuid.New().String()
		companyID := uuid.New().String()
		svc := &fakeJobApplicationService{
			listFn: func(ctx context.Context, uid, cid string) ([]jobapplication.JobApplicationResponse, error) {
				assert.Equal(t, userID, uid)
				assert.Equal(t, companyID, cid)
				return []jobapplication.JobApplicationResponse{
					{ID: uuid.New().String(), CompanyID: cid, Status: "一次面接"},
				}, nil
			},
		}

		h := jobapplication.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/companies/"+companyID+"/job_applications", nil)
		c.Params = gin.Params{{Key: "company_id", Value: companyID}}
		c.Set("user_id_validated", userID)

		h.ListByCompany(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env dataEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var rows []jobapplication.JobApplicationResponse
		assert.NoError(t, json.Unmarshal(env.Data, &rows))
		assert.Len(t, rows, 1)
	})
}
