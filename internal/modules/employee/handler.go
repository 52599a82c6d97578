package employee

import (
	"errors"
	"net/http"

	"fenix/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes mounts employee management under an admin-only group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/employees", h.List)
	rg.POST("/employees", h.Create)
	rg.DELETE("/employees/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	employee, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrDuplicateDNI):
			response.Error(c, http.StatusConflict, "DUPLICATE_DNI", "An employee with that DNI already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Could not create the employee")
		}
		return
	}

	response.Success(c, http.StatusCreated, employee)
}

func (h *Handler) List(c *gin.Context) {
	employees, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not list employees")
		return
	}
	response.Success(c, http.StatusOK, employees)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Employee not found")
		default:
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Could not delete the employee")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
