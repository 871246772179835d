package main

import (
	"fmt"
	"os"
	"os/signal"
	"storefront/config"
	"storefront/pkg/database"
	"storefront/pkg/log"
	"storefront/pkg/rocketmq"
	"storefront/pkg/server"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	// .env 可选，已存在的环境变量优先
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.L.Warn("load .env", zap.Error(err))
	}
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "storefront and admin back-office API",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, InitServer(cfg))
				},
			},
			{
				Name:  "migrate",
				Usage: "create tables and seed shipping locations",
				Action: func(ctx *cli.Context) error {
					db := database.NewDB(cfg)
					return database.Migrate(ctx.Context, db, cfg.Shop)
				},
			},
			{
				Name:  "escalate",
				Usage: "consume order.placed events and flag orders still awaiting confirmation",
				Action: func(ctx *cli.Context) error {
					events := InitEscalation(cfg)
					sigCtx, stop := signal.NotifyContext(ctx.Context, syscall.SIGINT, syscall.SIGTERM)
					defer stop()
					return rocketmq.Subscribe(sigCtx, cfg.RocketMQ, cfg.RocketMQ.OrderTopic, events.HandlePlaced)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
