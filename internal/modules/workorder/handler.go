package workorder

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"fenix/internal/domain"
	"fenix/internal/pkg/response"
	"fenix/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the intake-side endpoints used by employees.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/work-orders")
	{
		g.GET("/next-code", h.NextCode)
		g.POST("", h.Submit)
		g.GET("/:code", h.FindByCode)
		g.GET("/:code/sheet.pdf", h.Sheet)
	}
}

// RegisterAdminRoutes mounts the management endpoints.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/work-orders")
	{
		g.GET("", h.List)
		g.GET("/by-employee", h.GroupedByEmployee)
		g.GET("/upcoming", h.Upcoming)
		g.PATCH("/:code/status", h.UpdateStatus)
		g.POST("/:code/notified", h.MarkNotified)
	}
}

func (h *Handler) NextCode(c *gin.Context) {
	code := h.service.PredictNextCode(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"predicted_code": code})
}

func (h *Handler) Submit(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	var req SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid work order data", details)
		return
	}

	files, err := h.collectAttachments(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.service.Submit(c.Request.Context(), req, employeeID, files)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoEmployee):
			response.Error(c, http.StatusUnauthorized, "MISSING_EMPLOYEE", "No employee identity: sign in again")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			c.Error(err) //nolint:errcheck
			response.Error(c, http.StatusInternalServerError, "REGISTER_FAILED", "Could not register the work order")
		}
		return
	}

	payload := gin.H{
		"status":              "registered",
		"result":              result,
		"predicted_next_code": h.service.PredictNextCode(c.Request.Context()),
	}
	if result.Partial() {
		payload["status"] = "registered_with_errors"
		if result.StorageUnavailable {
			payload["message"] = "Work order registered, but file storage is not configured; contact the administrator"
		} else {
			payload["message"] = fmt.Sprintf("Work order registered, but %d attachment(s) failed to upload", len(result.FailedUploads))
		}
	}
	response.Success(c, http.StatusCreated, payload)
}

// collectAttachments reads the multipart file parts plus the parallel
// last_modified values (unix millis) the client sends for duplicate
// detection.
func (h *Handler) collectAttachments(c *gin.Context) ([]Attachment, error) {
	if c.ContentType() != "multipart/form-data" {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("invalid multipart form")
	}

	headers := form.File["files"]
	lastModified := form.Value["last_modified"]

	files := make([]Attachment, 0, len(headers))
	for i, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("cannot read file %q", fh.Filename)
		}
		// closed by the server when the request body is released

		var lm int64
		if i < len(lastModified) {
			lm, _ = strconv.ParseInt(lastModified[i], 10, 64)
		}
		files = append(files, Attachment{
			Name:         fh.Filename,
			Size:         fh.Size,
			ContentType:  fh.Header.Get("Content-Type"),
			LastModified: lm,
			Data:         f,
		})
	}
	return files, nil
}

func (h *Handler) FindByCode(c *gin.Context) {
	view, err := h.service.FindByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Sheet(c *gin.Context) {
	view, err := h.service.FindByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.writeLookupError(c, err)
		return
	}

	pdf, err := RenderSheet(view)
	if err != nil {
		c.Error(err) //nolint:errcheck
		response.Error(c, http.StatusInternalServerError, "RENDER_FAILED", "Could not render the work-order sheet")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", "orden_"+view.Code+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) List(c *gin.Context) {
	orders, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not list work orders")
		return
	}
	response.Success(c, http.StatusOK, orders)
}

func (h *Handler) GroupedByEmployee(c *gin.Context) {
	groups, err := h.service.GroupedByEmployee(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not group work orders")
		return
	}
	response.Success(c, http.StatusOK, groups)
}

func (h *Handler) Upcoming(c *gin.Context) {
	due, err := h.service.UpcomingDeliveries(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not load upcoming deliveries")
		return
	}
	response.Success(c, http.StatusOK, due)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w, err := h.service.UpdateStatus(c.Request.Context(), c.Param("code"), domain.WorkOrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No work order with that code")
		default:
			c.Error(err) //nolint:errcheck
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not update the work order")
		}
		return
	}
	response.Success(c, http.StatusOK, w)
}

func (h *Handler) MarkNotified(c *gin.Context) {
	if err := h.service.MarkNotified(c.Request.Context(), c.Param("code")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No work order with that code")
			return
		}
		c.Error(err) //nolint:errcheck
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not update the work order")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notified": true})
}

func (h *Handler) writeLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No work order with that code")
	default:
		c.Error(err) //nolint:errcheck
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not look up the work order")
	}
}
