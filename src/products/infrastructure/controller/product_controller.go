package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/iquintero24/Firmeza-project/src/products/application/request"
	"github.com/iquintero24/Firmeza-project/src/products/application/usecase"
	"github.com/iquintero24/Firmeza-project/src/products/domain/entity"
	sharedCriteria "github.com/iquintero24/Firmeza-project/src/shared/infrastructure/criteria"

	"github.com/gin-gonic/gin"
)

// ProductController maneja las peticiones HTTP para productos
type ProductController struct {
	createProductUC *usecase.CreateProductUseCase
	updateProductUC *usecase.UpdateProductUseCase
	deleteProductUC *usecase.DeleteProductUseCase
	getProductUC    *usecase.GetProductUseCase
	listProductsUC  *usecase.ListProductsUseCase
	criteriaHelper  *sharedCriteria.ControllerHelper
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(
	createProductUC *usecase.CreateProductUseCase,
	updateProductUC *usecase.UpdateProductUseCase,
	deleteProductUC *usecase.DeleteProductUseCase,
	getProductUC *usecase.GetProductUseCase,
	listProductsUC *usecase.ListProductsUseCase,
) *ProductController {
	return &ProductController{
		createProductUC: createProductUC,
		updateProductUC: updateProductUC,
		deleteProductUC: deleteProductUC,
		getProductUC:    getProductUC,
		listProductsUC:  listProductsUC,
		criteriaHelper:  sharedCriteria.NewControllerHelper(),
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.GET("/:product_id", c.GetProduct)
		products.POST("", c.CreateProduct)
		products.PUT("/:product_id", c.UpdateProduct)
		products.DELETE("/:product_id", c.DeleteProduct)
	}

	log.Println("Rutas Product disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  GET    /api/v1/products/:product_id")
	log.Println("  POST   /api/v1/products")
	log.Println("  PUT    /api/v1/products/:product_id")
	log.Println("  DELETE /api/v1/products/:product_id")
}

// CreateProduct maneja la creación de un producto
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req request.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.createProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, entity.ErrProductNameRequired) || errors.Is(err, entity.ErrInvalidPrice) || errors.Is(err, entity.ErrNegativeStock) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating product"})
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// UpdateProduct maneja la edición de un producto
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "product_id")
	if err != nil {
		return
	}

	var req request.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.updateProductUC.Execute(ctx.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if errors.Is(err, entity.ErrProductNameRequired) || errors.Is(err, entity.ErrInvalidPrice) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error updating product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating product"})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DeleteProduct maneja la eliminación de un producto
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "product_id")
	if err != nil {
		return
	}

	deleted, err := c.deleteProductUC.Execute(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrProductHasSales) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Product has associated sales and cannot be deleted"})
			return
		}
		log.Printf("Error deleting product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting product"})
		return
	}

	if !deleted {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// GetProduct maneja la obtención de un producto
func (c *ProductController) GetProduct(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "product_id")
	if err != nil {
		return
	}

	resp, err := c.getProductUC.Execute(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("Error getting product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting product"})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListProducts maneja el listado de productos con búsqueda por nombre
func (c *ProductController) ListProducts(ctx *gin.Context) {
	criteria := c.criteriaHelper.BuildListCriteria(ctx, "name", "name")

	resp, err := c.listProductsUC.Execute(ctx.Request.Context(), criteria)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing products"})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// parseIDParam parsea un parámetro de path numérico y responde 400 si es inválido
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, err
	}
	return id, nil
}
