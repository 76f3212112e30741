package main

import (
	"context"
	"fmt"
	"os"

	"products-api/internal/config"
	"products-api/internal/database"
	"products-api/internal/model"
	"products-api/internal/repository"
	"products-api/internal/service"
)

// Sample catalogue inserted into an empty products table.
var sampleProducts = []model.ProductInput{
	{Name: "Desk Lamp", Price: "24.99", Description: "Adjustable LED desk lamp", Category: "home"},
	{Name: "Notebook", Price: "4.50", Description: "A5 dotted notebook, 120 pages", Category: "stationery"},
	{Name: "Mechanical Keyboard", Price: "89.00", Description: "Tenkeyless, brown switches", Category: "electronics"},
	{Name: "Water Bottle", Price: "12", Description: "Insulated steel bottle, 750ml", Category: "outdoors"},
	{Name: "Headphones", Price: "59.95", Description: "Over-ear wireless headphones", Category: "electronics",
		Image: "https://picsum.photos/seed/headphones/400/300"},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		return fmt.Errorf("failed to query current database: %w", err)
	}
	fmt.Printf("Connected to database: %s\n", dbName)

	if err := database.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	svc := service.NewProductService(repository.NewProductRepository(pool, logger), logger)

	existing, err := svc.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Printf("Table already has %d products, skipping seed\n", len(existing))
		return nil
	}

	for i := range sampleProducts {
		p, err := svc.Create(ctx, &sampleProducts[i])
		if err != nil {
			return fmt.Errorf("failed to seed %q: %w", sampleProducts[i].Name, err)
		}
		fmt.Printf("  - %d %s (%s)\n", p.ID, p.Name, p.Price)
	}

	fmt.Printf("Seeded %d products\n", len(sampleProducts))
	return nil
}
