package main

import (
	"flag"
	"os"
	"strconv"

	"gstscan-backend/lib/serviceutil"
	"gstscan-backend/lib/telemetry"
	"gstscan-backend/services/gstscan"
	"gstscan-backend/services/gstscan/server"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	cfg, err := gstscan.LoadConfig()
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	telemetry.InitSlog(*verbose || cfg.Debug)

	err = telemetry.SetupFromEnv(ctx, "gst-server")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	defer telemetry.Shutdown(ctx)
	telemetry.InstrumentPerfStats(ctx)

	svc, err := gstscan.New(cfg)
	if err != nil {
		serviceutil.Fatal("init scraper", err)
	}

	port := 5000
	if raw := os.Getenv("PORT"); raw != "" {
		port, err = strconv.Atoi(raw)
		if err != nil {
			serviceutil.Fatal("parse PORT", err)
		}
	}

	go serviceutil.StartHttpServer(port, server.New(svc).Router())
	<-ctx.Done()
}
