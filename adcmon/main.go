package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/itohio/adcmon/pkg/board"
	"github.com/itohio/adcmon/pkg/config"
	"github.com/itohio/adcmon/pkg/sampler"
)

func main() {
	var (
		configFlag  = flag.String("config", "adcmon.yaml", "Configuration file path")
		portFlag    = flag.String("p", "", "Serial port for the report (default stdout)")
		variantFlag = flag.String("variant", "", "Loop variant: full or debug (overrides config)")
		backendFlag = flag.String("backend", "", "Board backend: mock or gpio (overrides config)")
		saveFlag    = flag.Bool("save", false, "Write the effective configuration to -config and exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *portFlag != "" {
		cfg.Serial.Port = *portFlag
	}
	if *variantFlag != "" {
		cfg.Variant = *variantFlag
	}
	if *backendFlag != "" {
		cfg.Backend = *backendFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if *saveFlag {
		if err := cfg.Save(*configFlag); err != nil {
			log.Fatalf("Failed to save configuration: %v", err)
		}
		log.Printf("Configuration written to %s", *configFlag)
		return
	}

	variant, err := sampler.ParseVariant(cfg.Variant)
	if err != nil {
		log.Fatalf("Invalid variant: %v", err)
	}

	b, err := board.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open %s board: %v", cfg.Backend, err)
	}

	// The loop never returns on its own; release the lines on Ctrl+C.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		if err := b.Close(); err != nil {
			log.Printf("Error closing board: %v", err)
		}
		os.Exit(0)
	}()

	if cfg.Serial.Port != "" {
		log.Printf("Reporting to %s at %d baud", cfg.Serial.Port, cfg.Serial.BaudRate)
	}
	log.Printf("Sampling with %s board, %s variant", cfg.Backend, variant)

	s := sampler.New(b, sampler.Options{
		Variant:   variant,
		Reference: cfg.ADC.Reference,
		Prompt:    cfg.Prompt,
	})
	if err := s.Run(); err != nil {
		b.Close()
		log.Fatalf("Sampler stopped: %v", err)
	}
}
