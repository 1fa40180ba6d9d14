package main

import (
	"fmt"
	"log/slog"
	"os"

	"hungngan-chat-backend/config"
	"hungngan-chat-backend/dao"
	"hungngan-chat-backend/router"
)

func main() {
	if err := config.Load(); err != nil {
		slog.Error("Failed to load config", "err", err)
		os.Exit(1)
	}

	if err := dao.InitDB(); err != nil {
		slog.Error("Failed to init database", "err", err)
		os.Exit(1)
	}

	r := router.Register()
	addr := fmt.Sprintf("%s:%s", config.Cfg.Server.Host, config.Cfg.Server.Port)
	if err := r.Run(addr); err != nil {
		slog.Error("Server exited", "err", err)
		os.Exit(1)
	}
}
