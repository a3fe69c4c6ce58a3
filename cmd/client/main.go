package main

import (
	"context"
	"log"

	"github.com/ndmitriev/memora/internal/client/cli"
	"github.com/ndmitriev/memora/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}
	app.Run(context.Background())
}
