package invoice

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"fenix/internal/domain"
	"fenix/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service     *Service
	pointOfSale string
}

func NewHandler(service *Service, pointOfSale string) *Handler {
	return &Handler{service: service, pointOfSale: pointOfSale}
}

// RegisterAdminRoutes mounts invoicing under an admin-only group.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/invoices", h.List)
	rg.POST("/invoices", h.Create)
	rg.GET("/invoices/:id", h.Get)
	rg.GET("/invoices/:id/pdf", h.PDF)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Could not create the invoice")
		return
	}

	response.Success(c, http.StatusCreated, inv)
}

func (h *Handler) List(c *gin.Context) {
	invoices, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Could not list invoices")
		return
	}
	response.Success(c, http.StatusOK, invoices)
}

func (h *Handler) Get(c *gin.Context) {
	inv, ok := h.lookup(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, inv)
}

func (h *Handler) PDF(c *gin.Context) {
	inv, ok := h.lookup(c)
	if !ok {
		return
	}

	data, err := RenderPDF(inv, h.pointOfSale)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "RENDER_FAILED", "Could not render the invoice")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", "factura_"+inv.Number+".pdf"))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) lookup(c *gin.Context) (*domain.Invoice, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid invoice id")
		return nil, false
	}

	inv, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
			return nil, false
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Could not fetch the invoice")
		return nil, false
	}
	return inv, true
}
