// Command import loads one or more pitch CSV files into the database.
// It loads configuration from env/file, optionally wires a Prometheus
// Pushgateway backend, and runs the importer file by file, printing
// progress notifications as JSON lines.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"pitchstats/internal/config"
	"pitchstats/internal/importer"
	"pitchstats/internal/metrics"
	"pitchstats/internal/metrics/prompush"
	"pitchstats/internal/storage"
	"pitchstats/internal/storage/postgres"

	// register the sqlite backend with the factory
	_ "pitchstats/internal/storage/sqlite"
)

func main() {
	os.Exit(run())
}

// run keeps deferred cleanup (store close, metrics flush) ahead of the
// process exit code.
func run() int {
	var (
		driver    string
		dsn       string
		chunkSize int
		quiet     bool
	)
	flag.StringVar(&driver, "driver", "", "storage backend (sqlite, postgres); overrides config")
	flag.StringVar(&dsn, "dsn", "", "database DSN; overrides config")
	flag.IntVar(&chunkSize, "chunk-size", 0, "rows per insert transaction; overrides config")
	flag.BoolVar(&quiet, "quiet", false, "suppress progress JSON on stdout")
	flag.Parse()

	if flag.NArg() == 0 {
		fatalf("usage: import [flags] file.csv [file.csv ...]")
	}

	cfg, err := config.Load()
	if err != nil {
		fatalf("load config: %v", err)
	}
	if driver != "" {
		cfg.Driver = driver
	}
	if dsn != "" {
		cfg.DSN = dsn
	}
	if chunkSize > 0 {
		cfg.ChunkSize = chunkSize
	}

	if cfg.MetricsGateway != "" {
		be, err := prompush.NewBackend(cfg.MetricsJob, cfg.MetricsGateway)
		if err != nil {
			fatalf("metrics backend: %v", err)
		}
		metrics.SetBackend(be)
		defer func() {
			if err := metrics.Flush(); err != nil {
				log.Printf("flush metrics: %v", err)
			}
		}()
	}

	ctx := context.Background()
	log.Printf("storage: driver=%s dsn=%s", cfg.Driver, postgres.DSNRedacted(cfg.DSN))
	store, err := storage.Open(ctx, storage.Config{Driver: cfg.Driver, DSN: cfg.DSN})
	if err != nil {
		fatalf("open storage: %v", err)
	}
	defer store.Close()

	if err := store.Init(ctx); err != nil {
		log.Printf("init schema: %v", err)
		return 1
	}

	imp := importer.New(store, importer.Options{ChunkSize: cfg.ChunkSize})

	sink := importer.Discard
	if !quiet {
		enc := json.NewEncoder(os.Stdout)
		sink = importer.SinkFunc(func(n importer.Notification) {
			if err := enc.Encode(n); err != nil {
				log.Printf("encode notification: %v", err)
			}
		})
	}

	exitCode := 0
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("read %s: %v", path, err)
			exitCode = 1
			continue
		}
		res, err := imp.ImportFile(ctx, filepath.Base(path), data, sink)
		if err != nil {
			log.Printf("import %s: %v", path, err)
			exitCode = 1
			continue
		}
		if res.DuplicateOf != "" {
			log.Printf("%s: already imported (batch %s)", path, res.DuplicateOf)
		}
	}
	return exitCode
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
