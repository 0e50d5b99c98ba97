package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal/internal/dtos"
	"jobportal/internal/models"
)

// ApplicationStore is what the handler needs from the applications
// repository adapter.
type ApplicationStore interface {
	ListByCandidate(ctx context.Context, email string) ([]models.Application, error)
	ListForJob(ctx context.Context, jobID, ownerEmail string) ([]models.Application, error)
	Submit(ctx context.Context, req *dtos.ApplicationRequest) (*dtos.InsertResult, error)
	UpdateStatus(ctx context.Context, id, status string) (*dtos.UpdateResult, error)
	Delete(ctx context.Context, id string) (*dtos.DeleteResult, error)
}

type ApplicationHandler struct {
	ApplicationService ApplicationStore
}

func NewApplicationHandler(a ApplicationStore) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: a}
}

// ListByCandidate is the GET /application?email= endpoint (guarded).
func (h *ApplicationHandler) ListByCandidate(c *gin.Context) {
	applications, err := h.ApplicationService.ListByCandidate(c.Request.Context(), c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ListForJob is the GET /application/jobs/:id?email= endpoint: the
// applications a recruiter received for one job.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	applications, err := h.ApplicationService.ListForJob(c.Request.Context(), c.Param("id"), c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// Submit is the POST /application endpoint. A second submission for the
// same candidate and job comes back as a 400 conflict.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	result, err := h.ApplicationService.Submit(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateStatus is the PATCH /application/:id endpoint, used by the
// recruiter to move an application along.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	result, err := h.ApplicationService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteApplication is the DELETE /application/:id endpoint.
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	result, err := h.ApplicationService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
