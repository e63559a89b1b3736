package main

import (
	"github.com/GoAbroadHQ/portal_service/config"
	"github.com/GoAbroadHQ/portal_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
