package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	customerEntity "github.com/iquintero24/Firmeza-project/src/customers/domain/entity"
	productEntity "github.com/iquintero24/Firmeza-project/src/products/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/sales/application/request"
	"github.com/iquintero24/Firmeza-project/src/sales/application/usecase"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/sales/infrastructure/metrics"
)

// SaleController maneja las peticiones HTTP del workflow de ventas
type SaleController struct {
	createSaleUC     *usecase.CreateSaleUseCase
	updateSaleUC     *usecase.UpdateSaleUseCase
	deleteSaleUC     *usecase.DeleteSaleUseCase
	getSaleUC        *usecase.GetSaleUseCase
	listSalesUC      *usecase.ListSalesUseCase
	listByCustomerUC *usecase.ListSalesByCustomerUseCase
}

// NewSaleController crea una nueva instancia del controlador
func NewSaleController(
	createSaleUC *usecase.CreateSaleUseCase,
	updateSaleUC *usecase.UpdateSaleUseCase,
	deleteSaleUC *usecase.DeleteSaleUseCase,
	getSaleUC *usecase.GetSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	listByCustomerUC *usecase.ListSalesByCustomerUseCase,
) *SaleController {
	return &SaleController{
		createSaleUC:     createSaleUC,
		updateSaleUC:     updateSaleUC,
		deleteSaleUC:     deleteSaleUC,
		getSaleUC:        getSaleUC,
		listSalesUC:      listSalesUC,
		listByCustomerUC: listByCustomerUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.GET("", c.ListSales)
		sales.GET("/:sale_id", c.GetSale)
		sales.POST("", c.CreateSale)
		sales.PUT("/:sale_id", c.UpdateSale)
		sales.DELETE("/:sale_id", c.DeleteSale)
	}
	router.GET("/customers/:customer_id/sales", c.ListSalesByCustomer)

	log.Println("Rutas Sale disponibles:")
	log.Println("  GET    /api/v1/sales")
	log.Println("  GET    /api/v1/sales/:sale_id")
	log.Println("  POST   /api/v1/sales")
	log.Println("  PUT    /api/v1/sales/:sale_id")
	log.Println("  DELETE /api/v1/sales/:sale_id")
	log.Println("  GET    /api/v1/customers/:customer_id/sales")
}

// CreateSale maneja el registro de una venta
func (c *SaleController) CreateSale(ctx *gin.Context) {
	var req request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.createSaleUC.Execute(ctx.Request.Context(), req)
	if err != nil {
		c.respondSaleError(ctx, err, "creating")
		return
	}

	metrics.SalesCreated.Inc()
	amount, _ := resp.Total.Float64()
	metrics.SaleAmount.Observe(amount)

	ctx.JSON(http.StatusCreated, resp)
}

// UpdateSale maneja la edición de una venta
func (c *SaleController) UpdateSale(ctx *gin.Context) {
	id, err := parseSaleIDParam(ctx, "sale_id")
	if err != nil {
		return
	}

	var req request.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.updateSaleUC.Execute(ctx.Request.Context(), id, req)
	if err != nil {
		c.respondSaleError(ctx, err, "updating")
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DeleteSale maneja la anulación de una venta
func (c *SaleController) DeleteSale(ctx *gin.Context) {
	id, err := parseSaleIDParam(ctx, "sale_id")
	if err != nil {
		return
	}

	deleted, err := c.deleteSaleUC.Execute(ctx.Request.Context(), id)
	if err != nil {
		log.Printf("Error deleting sale: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting sale"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}

	metrics.SalesDeleted.Inc()
	ctx.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}

// GetSale maneja la obtención de una venta con sus detalles
func (c *SaleController) GetSale(ctx *gin.Context) {
	id, err := parseSaleIDParam(ctx, "sale_id")
	if err != nil {
		return
	}

	resp, err := c.getSaleUC.Execute(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		log.Printf("Error getting sale: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting sale"})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListSales maneja el listado de todas las ventas
func (c *SaleController) ListSales(ctx *gin.Context) {
	resp, err := c.listSalesUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing sales"})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListSalesByCustomer maneja el historial de ventas de un cliente
func (c *SaleController) ListSalesByCustomer(ctx *gin.Context) {
	customerID, err := parseSaleIDParam(ctx, "customer_id")
	if err != nil {
		return
	}

	resp, err := c.listByCustomerUC.Execute(ctx.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, customerEntity.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		log.Printf("Error listing sales by customer: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing sales"})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// respondSaleError mapea los errores del workflow a códigos HTTP.
// 404 para referencias inexistentes, 409 para stock insuficiente,
// 422 para totales que no cuadran, 400 para líneas inválidas.
func (c *SaleController) respondSaleError(ctx *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, customerEntity.ErrCustomerNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
	case errors.Is(err, productEntity.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, entity.ErrSaleNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
	case errors.Is(err, productEntity.ErrInsufficientStock):
		metrics.SalesRejected.WithLabelValues("insufficient_stock").Inc()
		ctx.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock"})
	case errors.Is(err, entity.ErrTotalsMismatch):
		metrics.SalesRejected.WithLabelValues("totals_mismatch").Inc()
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Declared totals do not match computed totals"})
	case errors.Is(err, entity.ErrSaleMustHaveItems),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrInvalidAppliedPrice),
		errors.Is(err, productEntity.ErrInvalidQuantity):
		metrics.SalesRejected.WithLabelValues("invalid_line").Inc()
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Error %s sale: %v", action, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error " + action + " sale"})
	}
}

// parseSaleIDParam parsea un parámetro de path numérico y responde 400 si es inválido
func parseSaleIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, err
	}
	return id, nil
}
