package main

import (
	"log"
	"log/slog"

	Ad "github.com/marisol/aquanet/display"
	Ao "github.com/marisol/aquanet/obvy"
	As "github.com/marisol/aquanet/server"
)

const defaultAddr = ":8090"

func main() {
	// Tracing is optional: without OTel env config the shutdown
	// func still comes back usable
	shutdown, err := Ao.InitOTelHNY()
	if err != nil {
		slog.Error("Could not configure tracing, continuing without", slog.Any("Error", err))
	} else {
		defer shutdown()
	}

	// Scenario stanzas come from the file named in AQUANET_CONFIG
	configFile := As.FillEnvVar("AQUANET_CONFIG")
	if configFile == "ENOENT" {
		log.Fatal("AQUANET_CONFIG must name a scenario config file")
	}

	config, err := As.LoadConfigFileName(configFile)
	if err != nil {
		log.Fatal(err)
	}
	slog.Info("Aquanet initializing", slog.Int("scenarios", len(config)))

	addr := As.FillEnvVar("AQUANET_ADDR")
	if addr == "ENOENT" {
		addr = defaultAddr
	}

	if err := Ad.StartDataServ(config, addr); err != nil {
		slog.Error("Problem starting data serving", slog.Any("Error", err))
		panic("Failed to start data serving")
	}
}
