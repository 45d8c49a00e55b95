package main

import (
	"fmt"

	"github.com/denmor86/profit-gainer/internal/app"
	"github.com/denmor86/profit-gainer/internal/config"
	"github.com/denmor86/profit-gainer/internal/logger"
	"github.com/denmor86/profit-gainer/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// подключение к БД и применение миграций
	database, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		panic(fmt.Sprintf("can't create database: %s ", err.Error()))
	}
	defer database.Close()
	if err := database.Initialize(); err != nil {
		panic(fmt.Sprintf("can't initialize database: %s ", err.Error()))
	}
	// запуск сервера
	app.Run(config, storage.NewStorage(database))
}
