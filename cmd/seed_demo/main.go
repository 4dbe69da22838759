// seed_demo puebla el entorno de demostración: el catálogo de productos del
// centro comercial en PostgreSQL y el guardia GUARD-DEMO-001 en el almacén local.
//
// Uso: go run ./cmd/seed_demo
// Lee la misma configuración que cmd/api (DATABASE_URL, STORE_DATA_DIR, etc.).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Quickcart-api/internal/domain/entity"
	"github.com/jhoicas/Quickcart-api/internal/infrastructure/localstore"
	"github.com/jhoicas/Quickcart-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Quickcart-api/pkg/config"
	"github.com/jhoicas/Quickcart-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	store, err := localstore.New(cfg.Store.DataDir, log.Component("localstore"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	if err := store.Guards().SeedDemoGuard(); err != nil {
		log.Fatal().Err(err).Msg("sembrar guardia de demostración")
	}

	productRepo := postgres.NewProductRepository(pool)
	products := demoProducts()
	for i := range products {
		p := &products[i]
		if err := productRepo.Save(p); err != nil {
			log.Fatal().Err(err).Str("product", p.Name).Msg("sembrar producto")
		}
		log.Info().Str("id", p.ID).Str("name", p.Name).Msg("producto sembrado")
	}

	log.Info().Int("products", len(products)).Msg("semilla de demostración completada")
}

// demoProducts catálogo de demostración de las tiendas del centro comercial.
func demoProducts() []entity.Product {
	return []entity.Product{
		{ID: "prod-001", Barcode: "8901234567890", Name: "Premium Basmati Rice", Price: decimal.NewFromInt(299), Tax: decimal.NewFromFloat(14.95), Category: "Groceries", ShopID: "shop-001", ShopName: "Fresh Mart"},
		{ID: "prod-002", Barcode: "8901234567891", Name: "Organic Green Tea", Price: decimal.NewFromInt(450), Tax: decimal.NewFromFloat(22.5), Category: "Beverages", ShopID: "shop-002", ShopName: "Health Store"},
		{ID: "prod-003", Barcode: "8901234567892", Name: "Wireless Earbuds Pro", Price: decimal.NewFromInt(2999), Tax: decimal.NewFromFloat(539.82), Category: "Electronics", ShopID: "shop-003", ShopName: "TechZone"},
		{ID: "prod-004", Barcode: "8901234567893", Name: "Cotton T-Shirt", Price: decimal.NewFromInt(799), Tax: decimal.NewFromFloat(39.95), Category: "Apparel", ShopID: "shop-004", ShopName: "Fashion Hub"},
		{ID: "prod-005", Barcode: "8901234567894", Name: "Dark Chocolate Bar", Price: decimal.NewFromInt(180), Tax: decimal.NewFromInt(9), Category: "Confectionery", ShopID: "shop-001", ShopName: "Fresh Mart"},
	}
}
