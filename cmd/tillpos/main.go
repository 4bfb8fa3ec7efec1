package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/talkincode/tillpos/config"
	"github.com/talkincode/tillpos/internal/app"
	"github.com/talkincode/tillpos/internal/catalog"
	"github.com/talkincode/tillpos/internal/console"
	"github.com/talkincode/tillpos/internal/ledger"
	"github.com/talkincode/tillpos/internal/receipt"
	"github.com/talkincode/tillpos/internal/register"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("c", "tillpos.yml", "configuration file")
	initDb     = flag.Bool("initdb", false, "drop and recreate all tables before starting")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		log.Fatalf("init application: %v", err)
	}
	defer application.Release()

	if *initDb {
		application.InitDb()
	}

	db := application.DB()
	menu := console.NewMenu(os.Stdin, os.Stdout,
		catalog.NewRepository(db),
		ledger.NewRepository(db),
		register.NewService(db),
		receipt.NewGenerator(cfg.ReceiptPath()),
	)
	if err := menu.Run(context.Background()); err != nil {
		zap.L().Error("menu loop failed", zap.Error(err))
		application.Release()
		os.Exit(1)
	}
}
