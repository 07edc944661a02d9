package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/iquintero24/Firmeza-project/src/customers/application/request"
	"github.com/iquintero24/Firmeza-project/src/customers/application/usecase"
	"github.com/iquintero24/Firmeza-project/src/customers/domain/entity"

	"github.com/gin-gonic/gin"
)

// CustomerController maneja las peticiones HTTP para clientes
type CustomerController struct {
	createCustomerUC *usecase.CreateCustomerUseCase
	updateCustomerUC *usecase.UpdateCustomerUseCase
	deleteCustomerUC *usecase.DeleteCustomerUseCase
	getCustomerUC    *usecase.GetCustomerUseCase
	listCustomersUC  *usecase.ListCustomersUseCase
}

// NewCustomerController crea una nueva instancia del controlador
func NewCustomerController(
	createCustomerUC *usecase.CreateCustomerUseCase,
	updateCustomerUC *usecase.UpdateCustomerUseCase,
	deleteCustomerUC *usecase.DeleteCustomerUseCase,
	getCustomerUC *usecase.GetCustomerUseCase,
	listCustomersUC *usecase.ListCustomersUseCase,
) *CustomerController {
	return &CustomerController{
		createCustomerUC: createCustomerUC,
		updateCustomerUC: updateCustomerUC,
		deleteCustomerUC: deleteCustomerUC,
		getCustomerUC:    getCustomerUC,
		listCustomersUC:  listCustomersUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CustomerController) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers")
	{
		customers.GET("", c.ListCustomers)
		customers.GET("/:customer_id", c.GetCustomer)
		customers.POST("", c.CreateCustomer)
		customers.PUT("/:customer_id", c.UpdateCustomer)
		customers.DELETE("/:customer_id", c.DeleteCustomer)
	}

	log.Println("Rutas Customer disponibles:")
	log.Println("  GET    /api/v1/customers")
	log.Println("  GET    /api/v1/customers/:customer_id")
	log.Println("  POST   /api/v1/customers")
	log.Println("  PUT    /api/v1/customers/:customer_id")
	log.Println("  DELETE /api/v1/customers/:customer_id")
}

// CreateCustomer maneja el registro de un cliente
func (c *CustomerController) CreateCustomer(ctx *gin.Context) {
	var req request.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.createCustomerUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrDuplicateCustomer) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "A customer with this document or email already exists"})
			return
		}
		if errors.Is(err, entity.ErrCustomerNameRequired) || errors.Is(err, entity.ErrDocumentRequired) || errors.Is(err, entity.ErrInvalidEmail) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating customer: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating customer"})
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// UpdateCustomer maneja la edición de un cliente
func (c *CustomerController) UpdateCustomer(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "customer_id")
	if err != nil {
		return
	}

	var req request.UpdateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.updateCustomerUC.Execute(ctx.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		if errors.Is(err, entity.ErrDuplicateCustomer) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Another customer already uses this document or email"})
			return
		}
		if errors.Is(err, entity.ErrCustomerNameRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error updating customer: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating customer"})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DeleteCustomer maneja la eliminación de un cliente
func (c *CustomerController) DeleteCustomer(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "customer_id")
	if err != nil {
		return
	}

	deleted, err := c.deleteCustomerUC.Execute(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrCustomerHasSales) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Cannot delete customer because they have associated sales"})
			return
		}
		log.Printf("Error deleting customer: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting customer"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// GetCustomer maneja la obtención de un cliente
func (c *CustomerController) GetCustomer(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "customer_id")
	if err != nil {
		return
	}

	resp, err := c.getCustomerUC.Execute(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		log.Printf("Error getting customer: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting customer"})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListCustomers maneja el listado de clientes
func (c *CustomerController) ListCustomers(ctx *gin.Context) {
	resp, err := c.listCustomersUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing customers: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing customers"})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, err
	}
	return id, nil
}
