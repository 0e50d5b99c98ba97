package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal/internal/dtos"
	"jobportal/internal/models"
)

// JobStore is what the handler needs from the jobs repository adapter.
type JobStore interface {
	ListAll(ctx context.Context) ([]models.Job, error)
	ListAvailable(ctx context.Context) ([]models.Job, error)
	ListByOwner(ctx context.Context, email string) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, req *dtos.JobCreationRequest) (*dtos.InsertResult, error)
	Upsert(ctx context.Context, id string, req *dtos.JobUpdateRequest) (*dtos.UpdateResult, error)
	IncrementApplicants(ctx context.Context, id string) (*dtos.UpdateResult, error)
	Delete(ctx context.Context, id string) (*dtos.DeleteResult, error)
}

type JobHandler struct {
	JobService JobStore
}

func NewJobHandler(j JobStore) *JobHandler {
	return &JobHandler{JobService: j}
}

// ListJobs is the GET /jobs endpoint.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListAvailableJobs is the GET /jobs/available endpoint: only jobs
// whose deadline is today or later.
func (h *JobHandler) ListAvailableJobs(c *gin.Context) {
	jobs, err := h.JobService.ListAvailable(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// ListJobsByOwner is the GET /jobs/user/:email endpoint (guarded).
func (h *JobHandler) ListJobsByOwner(c *gin.Context) {
	jobs, err := h.JobService.ListByOwner(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is the GET /jobs/details/:id endpoint. A missing job is not an
// error; the body is just null.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.JobService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob is the POST /jobs endpoint (guarded).
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	result, err := h.JobService.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateJob is the PUT /jobs/:id endpoint: merges the sent fields into
// the job, inserting it if the id matches nothing.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	result, err := h.JobService.Upsert(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// IncreaseApplicants is the PATCH /jobs/increase/:id endpoint, called
// by the front end right after a successful application submission.
func (h *JobHandler) IncreaseApplicants(c *gin.Context) {
	result, err := h.JobService.IncrementApplicants(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteJob is the DELETE /jobs/:id endpoint.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	result, err := h.JobService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
