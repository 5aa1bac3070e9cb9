package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hsiuhsiu/toyrsa-go/internal/demo"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/entropy"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/logging"
	"github.com/hsiuhsiu/toyrsa-go/pkg/toyrsa/report"
)

func main() {
	var (
		bits       = flag.Int("bits", 0, "prime bit length (prompted when 0)")
		message    = flag.String("message", "", "plaintext integer (prompted when empty)")
		seed       = flag.String("seed", "", "phrase seeding a deterministic random source")
		configPath = flag.String("config", "", "JSON file with search limits")
		format     = flag.String("format", "text", "output format: text, json or cbor")
		timeout    = flag.Duration("timeout", time.Minute, "overall deadline; 0 disables it")
		verbose    = flag.Bool("v", false, "enable debug logging")
		version    = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(toyrsa.BuildVersion())
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := toyrsa.DefaultConfig()
	if *configPath != "" {
		loaded, err := toyrsa.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	out, err := report.ParseFormat(*format)
	if err != nil {
		log.Fatalf("%v", err)
	}

	src := entropy.Default()
	if *seed != "" {
		src = entropy.Seeded(entropy.SeedFromPhrase(*seed))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	prompter := demo.NewPrompter(os.Stdin, os.Stdout)
	if *bits == 0 {
		fmt.Println("RSA Encryption and Decryption")
		fmt.Println()
		if *bits, err = prompter.Bits(); err != nil {
			log.Fatalf("%v", err)
		}
	}

	msgFunc := prompter.Message
	if *message != "" {
		m, ok := new(big.Int).SetString(*message, 10)
		if !ok {
			log.Fatalf("message %q is not an integer", *message)
		}
		msgFunc = demo.FixedMessage(m)
	}

	session := &demo.Session{Config: cfg, Source: src, Logger: logger}
	run, err := session.Run(ctx, *bits, msgFunc)
	if err != nil {
		// A deadline hit during an attack still leaves a printable run.
		if !errors.Is(err, toyrsa.ErrTimeout) || run.Ciphertext == nil {
			log.Fatalf("run: %v", err)
		}
		logger.Warn(ctx, "session interrupted", "error", err)
	}

	if out == report.FormatText {
		fmt.Println()
	}
	if err := report.Encode(os.Stdout, out, run); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}
