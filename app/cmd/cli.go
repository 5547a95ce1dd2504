package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Rakhulsr/go-catalog/app/configs"
	"github.com/Rakhulsr/go-catalog/app/db/seeders"
	"github.com/Rakhulsr/go-catalog/app/models/migrations"
	"github.com/Rakhulsr/go-catalog/app/routes"
	"github.com/urfave/cli/v3"
)

func NewCommand(env configs.ENV, logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Product catalog API and frontend",
		Action: func(ctx context.Context, c *cli.Command) error {
			return runAPI(ctx, env, logger)
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the JSON API server",
				Action: func(ctx context.Context, c *cli.Command) error {
					return runAPI(ctx, env, logger)
				},
			},
			{
				Name:  "web",
				Usage: "Run the server-rendered frontend",
				Action: func(ctx context.Context, c *cli.Command) error {
					keys, err := configs.LoadSessionKeys(env)
					if err != nil {
						return fmt.Errorf("web frontend needs session keys (run generate-keys): %w", err)
					}
					return Serve(ctx, env.WebPort, routes.NewWebRouter(env, keys, logger), logger)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env, logger)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					logger.Info("Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Insert reference product types and colors",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "products",
						Usage: "also create this many fake products",
						Value: 0,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env, logger)
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(ctx, db, int(c.Int("products")), logger); err != nil {
						return err
					}
					logger.Info("Seeding complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "also write the keys to this file",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateSessionKeys(os.Stdout, c.String("out")); err != nil {
						return err
					}
					logger.Info("Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
		},
	}
}

func RunCli(env configs.ENV, logger *slog.Logger) {
	if err := NewCommand(env, logger).Run(context.Background(), os.Args); err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func runAPI(ctx context.Context, env configs.ENV, logger *slog.Logger) error {
	db, err := configs.OpenConnection(env, logger)
	if err != nil {
		return fmt.Errorf("DB connection failed: %w", err)
	}
	logger.Info("Database connected")

	return Serve(ctx, env.Port, routes.NewAPIRouter(db, env, logger), logger)
}
