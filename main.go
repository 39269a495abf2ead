package main

import (
	"fmt"
	"log"

	"github.com/jculp24/thrsty/configs"
	"github.com/jculp24/thrsty/middlewares"
	"github.com/jculp24/thrsty/routes"
	"github.com/jculp24/thrsty/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.OpenDB(cfg)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedVendors(db); err != nil {
		log.Fatalf("seed vendors failed: %v", err)
	}
	if err := configs.SeedVendorAdmin(db); err != nil {
		log.Fatalf("seed vendor admin failed: %v", err)
	}

	// live notification hub
	hub := ws.NewNotificationHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
