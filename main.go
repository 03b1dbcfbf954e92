package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/naomichiang/POS-system-Cursor/api"
	"github.com/naomichiang/POS-system-Cursor/configs"
	"github.com/naomichiang/POS-system-Cursor/middlewares"
	"github.com/naomichiang/POS-system-Cursor/routes"
	"github.com/naomichiang/POS-system-Cursor/store"
)

func main() {
	cfg := configs.LoadConfig()

	// local receipt log
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	// stores + upstream clients
	orders := store.NewOrderStore(cfg.ServiceChargeRate)
	tables := store.NewTableSyncStore(cfg.WSURL, cfg.TerminalID)
	client := api.NewClient(cfg.APIBase, cfg.TerminalID)

	// subscribe to backend table updates; without WS_URL this is a no-op
	// and the terminal runs on local optimistic updates only
	tables.ConnectWS()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, client, configs.DB(), orders, tables)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("POS terminal running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
