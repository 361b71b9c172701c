package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/njorogedev/bistro-api/broadcast"
	"github.com/njorogedev/bistro-api/config"
	"github.com/njorogedev/bistro-api/controllers"
	"github.com/njorogedev/bistro-api/initializers"
	"github.com/njorogedev/bistro-api/payments"
	"github.com/njorogedev/bistro-api/routes"
	"github.com/njorogedev/bistro-api/services"
	"github.com/njorogedev/bistro-api/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	db, err := initializers.ConnectToDB(cfg.DBDSN)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatal("Failed to sync database: ", err)
	}

	notifier, err := broadcast.Connect(cfg.RabbitMQURL)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ: ", err)
	}
	defer notifier.Close()

	gateway := payments.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	orderService := services.NewOrderService(store.NewOrderStore(db), gateway, notifier)
	reportService := services.NewReportService(store.NewOrderStore(db))
	managerService := services.NewManagerService(store.NewManagerStore(db))
	menuService := services.NewMenuService(cfg.MenuFile, store.NewMenuStore(db))

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.OrderRoutes(server, controllers.NewOrderController(orderService))
	routes.DashboardRoutes(server, controllers.NewDashboardController(reportService))
	routes.ManagerRoutes(server, controllers.NewManagerController(managerService))
	routes.MenuRoutes(server, controllers.NewMenuController(menuService))

	server.Run(":" + cfg.Port)
}
