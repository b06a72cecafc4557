package main

import (
	"log"

	"tdr-menu-api/config"
	httpapi "tdr-menu-api/internal/api/http"
	"tdr-menu-api/internal/service"
	"tdr-menu-api/internal/storage"
)

func main() {
	settings := config.Load()

	store, err := storage.NewStore(settings.DataDir, settings.DataFile, settings.Debug)
	if err != nil {
		log.Fatal("Invalid data file configuration: ", err)
	}

	if settings.KafkaBroker != "" {
		store.SetPublisher(storage.NewKafkaPublisher(config.NewKafkaWriter(settings)))
	}

	var cache *storage.ResponseCache
	if settings.RedisHost != "" {
		cache = storage.NewResponseCache(config.MustInitRedis(settings), settings.CacheTTL)
	}

	menuSvc := service.NewMenuService(store)
	catalogSvc := service.NewCatalogService(store, cache)
	statsSvc := service.NewStatsService(store, cache)

	handler := httpapi.NewHandler(menuSvc, catalogSvc, statsSvc)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+settings.Port, router)
}
