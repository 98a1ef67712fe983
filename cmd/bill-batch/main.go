package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/utilibill/bills-tracker/internal/export"
	"github.com/utilibill/bills-tracker/internal/extract"
	"github.com/utilibill/bills-tracker/internal/ingest"
	"github.com/utilibill/bills-tracker/internal/parse"
	"github.com/utilibill/bills-tracker/internal/pipeline"
	"github.com/utilibill/bills-tracker/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir    = flag.String("dir", "", "directory to process bill documents from (required)")
		out    = flag.String("out", "", "output file path (defaults next to the input directory)")
		format = flag.String("format", "csv", "export format: csv or xlsx")
		dbPath = flag.String("db", ":memory:", "sqlite database path (default in-memory)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *format != "csv" && *format != "xlsx" {
		printError("Error: --format must be csv or xlsx\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "bills."+*format)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	ctx := context.Background()

	db, err := repository.OpenSQLite(*dbPath, logger)
	if err != nil {
		printError("Error: open database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()
	if err := repository.Migrate(ctx, db); err != nil {
		printError("Error: migrate database: %v\n", err)
		os.Exit(1)
	}

	bills := repository.NewBillRepository(db, repository.DialectSQLite)
	accounts := repository.NewAccountRepository(db, repository.DialectSQLite)
	proc := pipeline.NewProcessor(
		logger,
		extract.NewFileExtractor(logger),
		parse.NewAssembler(logger),
		bills,
		accounts,
	)

	paths, err := ingest.ListFiles(*dir, nil)
	if err != nil {
		printError("Error: scan directory: %v\n", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		printError("Error: no bill documents found under %s\n", *dir)
		os.Exit(1)
	}

	result, err := proc.ProcessBatch(ctx, paths)
	if err != nil {
		printError("Error: process batch: %v\n", err)
		os.Exit(1)
	}

	recs, err := bills.ListBills(ctx, nil, nil)
	if err != nil {
		printError("Error: list bills: %v\n", err)
		os.Exit(1)
	}

	switch *format {
	case "csv":
		f, err := os.Create(*out)
		if err != nil {
			printError("Error: create output: %v\n", err)
			os.Exit(1)
		}
		if err := export.WriteCSV(f, recs); err != nil {
			_ = f.Close()
			printError("Error: write csv: %v\n", err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			printError("Error: close output: %v\n", err)
			os.Exit(1)
		}
	case "xlsx":
		data, err := export.WriteXLSX(recs, logger)
		if err != nil {
			printError("Error: write xlsx: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			printError("Error: write output: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Processed %d of %d documents (%d failed)\n",
		len(result.Records), len(paths), len(result.Failed))
	if result.Account.AccountNumber != "" {
		fmt.Printf("Account: %s %s\n", result.Account.AccountNumber, result.Account.CustomerName)
	}
	fmt.Printf("Export written to %s\n", *out)
}
