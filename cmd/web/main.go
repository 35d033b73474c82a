package main

import (
	"homevest_backend/internal/app"
	"homevest_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err.Error())
	}
}
