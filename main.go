package main

import (
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	apiConfig "github.com/iquintero24/Firmeza-project/src/api/config"
	customerUseCase "github.com/iquintero24/Firmeza-project/src/customers/application/usecase"
	customerPort "github.com/iquintero24/Firmeza-project/src/customers/domain/port"
	customerController "github.com/iquintero24/Firmeza-project/src/customers/infrastructure/controller"
	customerPersistence "github.com/iquintero24/Firmeza-project/src/customers/infrastructure/persistence"
	productUseCase "github.com/iquintero24/Firmeza-project/src/products/application/usecase"
	productPort "github.com/iquintero24/Firmeza-project/src/products/domain/port"
	productController "github.com/iquintero24/Firmeza-project/src/products/infrastructure/controller"
	productPersistence "github.com/iquintero24/Firmeza-project/src/products/infrastructure/persistence"
	saleUseCase "github.com/iquintero24/Firmeza-project/src/sales/application/usecase"
	saleController "github.com/iquintero24/Firmeza-project/src/sales/infrastructure/controller"
	"github.com/iquintero24/Firmeza-project/src/sales/infrastructure/dispatch"
	saleMail "github.com/iquintero24/Firmeza-project/src/sales/infrastructure/mail"
	saleGen "github.com/iquintero24/Firmeza-project/src/sales/infrastructure/pdf"
	salePersistence "github.com/iquintero24/Firmeza-project/src/sales/infrastructure/persistence"
	sharedConfig "github.com/iquintero24/Firmeza-project/src/shared/infrastructure/config"
)

func main() {
	log.Println("🚀 Firmeza Sales Service - Iniciando...")

	// Cargar .env si existe (en producción las variables vienen del entorno)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := sharedConfig.Load()
	if err != nil {
		log.Fatalf("❌ Error loading configuration: %v", err)
	}

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if cfg.PrometheusEnabled {
		log.Println("Registering /metrics endpoint")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Configurar GZIP y otros middlewares compartidos
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Conectar a la base de datos
	log.Printf("Intentando conectar a %s", cfg.DBName)
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("❌ Error al conectar a la base de datos: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("❌ Error al verificar la conexión a la base de datos: %v", err)
	}
	log.Printf("✅ Conexión a %s establecida con éxito", cfg.DBName)

	// Los recibos generados se sirven como archivos estáticos
	router.Static(cfg.ReceiptBaseURL, cfg.ReceiptDir)

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = "1.0.0"
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulos de dominio
	reserveStockUC, releaseStockUC, productRepo := setupProductModule(v1, db)
	customerRepo := setupCustomerModule(v1, db)
	dispatcher := setupSaleModule(v1, db, cfg, customerRepo, productRepo, reserveStockUC, releaseStockUC)

	// Drenar la cola de recibos pendientes al apagar
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdown
		log.Println("🛑 Shutting down, draining receipt queue...")
		if dispatcher != nil {
			dispatcher.Close()
		}
		os.Exit(0)
	}()

	// Iniciar el servidor
	log.Printf("✅ Servidor Firmeza iniciado en http://localhost:%s", cfg.Port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", cfg.Port)
	router.Run(":" + cfg.Port)
}

// setupProductModule configura el módulo Product y retorna los casos de uso
// de stock que el workflow de ventas necesita
func setupProductModule(router *gin.RouterGroup, db *sql.DB) (*productUseCase.ReserveStockUseCase, *productUseCase.ReleaseStockUseCase, productPort.ProductRepository) {
	log.Println("Configurando módulo Product...")

	productRepo := productPersistence.NewProductPostgresRepository(db)

	createProductUC := productUseCase.NewCreateProductUseCase(productRepo)
	updateProductUC := productUseCase.NewUpdateProductUseCase(productRepo)
	deleteProductUC := productUseCase.NewDeleteProductUseCase(productRepo)
	getProductUC := productUseCase.NewGetProductUseCase(productRepo)
	listProductsUC := productUseCase.NewListProductsUseCase(productRepo)
	reserveStockUC := productUseCase.NewReserveStockUseCase(productRepo)
	releaseStockUC := productUseCase.NewReleaseStockUseCase(productRepo)

	productCtrl := productController.NewProductController(createProductUC, updateProductUC, deleteProductUC, getProductUC, listProductsUC)
	productCtrl.RegisterRoutes(router)

	log.Println("Módulo Product configurado exitosamente")
	return reserveStockUC, releaseStockUC, productRepo
}

// setupCustomerModule configura el módulo Customer
func setupCustomerModule(router *gin.RouterGroup, db *sql.DB) customerPort.CustomerRepository {
	log.Println("Configurando módulo Customer...")

	customerRepo := customerPersistence.NewCustomerPostgresRepository(db)

	// El credential store externo es opcional; sin él los clientes se
	// crean sin cuenta de acceso
	createCustomerUC := customerUseCase.NewCreateCustomerUseCase(customerRepo, nil)
	updateCustomerUC := customerUseCase.NewUpdateCustomerUseCase(customerRepo)
	deleteCustomerUC := customerUseCase.NewDeleteCustomerUseCase(customerRepo, nil)
	getCustomerUC := customerUseCase.NewGetCustomerUseCase(customerRepo)
	listCustomersUC := customerUseCase.NewListCustomersUseCase(customerRepo)

	customerCtrl := customerController.NewCustomerController(createCustomerUC, updateCustomerUC, deleteCustomerUC, getCustomerUC, listCustomersUC)
	customerCtrl.RegisterRoutes(router)

	log.Println("Módulo Customer configurado exitosamente")
	return customerRepo
}

// setupSaleModule configura el módulo Sale con su pipeline de recibos
func setupSaleModule(
	router *gin.RouterGroup,
	db *sql.DB,
	cfg *sharedConfig.Config,
	customerRepo customerPort.CustomerRepository,
	productRepo productPort.ProductRepository,
	reserveStockUC *productUseCase.ReserveStockUseCase,
	releaseStockUC *productUseCase.ReleaseStockUseCase,
) *dispatch.AsyncReceiptDispatcher {
	log.Println("Configurando módulo Sale...")

	saleRepo := salePersistence.NewSalePostgresRepository(db)

	// Pipeline de recibos: PDF en disco + email vía SendGrid
	renderer, err := saleGen.NewReceiptPDFGenerator(cfg.ReceiptDir, cfg.ReceiptBaseURL)
	if err != nil {
		log.Fatalf("❌ Error preparing receipt generator: %v", err)
	}
	mailer := saleMail.NewSendGridReceiptMailer(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.ReceiptDir)
	dispatcher := dispatch.NewAsyncReceiptDispatcher(renderer, mailer, saleRepo)

	taxRate := decimal.NewFromFloat(cfg.TaxRate)

	createSaleUC := saleUseCase.NewCreateSaleUseCase(saleRepo, customerRepo, productRepo, reserveStockUC, releaseStockUC, dispatcher, taxRate)
	updateSaleUC := saleUseCase.NewUpdateSaleUseCase(saleRepo, customerRepo, productRepo, reserveStockUC, releaseStockUC, dispatcher, taxRate)
	deleteSaleUC := saleUseCase.NewDeleteSaleUseCase(saleRepo, releaseStockUC, reserveStockUC)
	getSaleUC := saleUseCase.NewGetSaleUseCase(saleRepo)
	listSalesUC := saleUseCase.NewListSalesUseCase(saleRepo)
	listByCustomerUC := saleUseCase.NewListSalesByCustomerUseCase(saleRepo, customerRepo)

	saleCtrl := saleController.NewSaleController(createSaleUC, updateSaleUC, deleteSaleUC, getSaleUC, listSalesUC, listByCustomerUC)
	saleCtrl.RegisterRoutes(router)

	dailyReportUC := saleUseCase.NewDailyReportUseCase(db)
	reportCtrl := saleController.NewReportController(dailyReportUC)
	reportCtrl.RegisterRoutes(router)

	log.Println("Módulo Sale configurado exitosamente")
	return dispatcher
}
