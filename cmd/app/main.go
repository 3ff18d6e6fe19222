package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/config"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/database/inmemory"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/database/postgres"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/seed"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/storage"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/token"
	"github.com/wichananm65/ecommerce-backend/internal/interface/http/router"
	"github.com/wichananm65/ecommerce-backend/internal/usecase"
)

func main() {
	cmd := &cli.Command{
		Name:   "ecommerce",
		Usage:  "Storefront API server",
		Flags:  serveFlags(),
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Flags:  serveFlags(),
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "Create database tables",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withDB(ctx, func(db *sql.DB) error {
						return postgres.Migrate(ctx, db)
					})
				},
			},
			{
				Name:  "seed",
				Usage: "Insert the sample product catalogue",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withDB(ctx, func(db *sql.DB) error {
						return seedProducts(ctx, postgres.NewSet(db))
					})
				},
			},
			{
				Name:  "create-admin",
				Usage: "Create a staff account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "display name"},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withDB(ctx, func(db *sql.DB) error {
						users := usecase.NewUserService(postgres.NewUserRepository(db))
						u, err := users.CreateAdmin(ctx, usecase.RegisterInput{
							Name:     c.String("name"),
							Email:    c.String("email"),
							Password: c.String("password"),
						})
						if err != nil {
							return err
						}
						log.Printf("created admin %s (id %d)", u.Username, u.ID)
						return nil
					})
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "memory", Usage: "use the in-memory store with sample products"},
	}
}

func serve(ctx context.Context, c *cli.Command) error {
	inMemory := c.Bool("memory")
	cfg, err := loadConfig(inMemory)
	if err != nil {
		return err
	}

	var repos repository.Set
	if inMemory {
		repos = inmemory.NewStore().Set()
		if err := seedProducts(ctx, repos); err != nil {
			return err
		}
	} else {
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
		repos = postgres.NewSet(db)
	}

	images, err := storage.New(cfg.CloudinaryURL, cfg.UploadDir)
	if err != nil {
		return err
	}
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	app := router.New(cfg, issuer, repos, images)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.Addr)
	return app.Listen(cfg.Addr)
}

func loadConfig(inMemory bool) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(inMemory); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func withDB(ctx context.Context, fn func(db *sql.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}

func seedProducts(ctx context.Context, repos repository.Set) error {
	products := usecase.NewProductService(repos.Products, repos.Reviews, nil, 1)
	n, err := products.Seed(ctx, seed.Products(nil))
	if err != nil {
		return err
	}
	log.Printf("seeded %d products", n)
	return nil
}
