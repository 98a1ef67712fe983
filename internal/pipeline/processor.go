package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/utilibill/bills-tracker/internal/entity"
	"github.com/utilibill/bills-tracker/internal/extract"
	"github.com/utilibill/bills-tracker/internal/parse"
	"github.com/utilibill/bills-tracker/internal/repository"
	"github.com/utilibill/bills-tracker/internal/schema"
)

// Processor coordinates text extraction then record assembly, and persists
// the result. Repositories are optional: with a nil Bills repo the processor
// is parse-only.
type Processor struct {
	Logger    *slog.Logger
	Extractor extract.TextExtractor
	Assembler *parse.Assembler
	Bills     *repository.BillRepository
	Accounts  *repository.AccountRepository
}

func NewProcessor(
	logger *slog.Logger,
	extractor extract.TextExtractor,
	assembler *parse.Assembler,
	bills *repository.BillRepository,
	accounts *repository.AccountRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if assembler == nil {
		assembler = parse.NewAssembler(logger)
	}
	return &Processor{
		Logger:    logger,
		Extractor: extractor,
		Assembler: assembler,
		Bills:     bills,
		Accounts:  accounts,
	}
}

// ProcessFile extracts text from path, assembles the record, runs the schema
// gate, and persists when a repository is configured. Only extraction
// failures are errors; fields that match nothing stay at their defaults.
func (p *Processor) ProcessFile(ctx context.Context, path string) (entity.BillRecord, error) {
	start := time.Now()
	res, err := p.Extractor.Extract(ctx, path)
	if err != nil {
		parseFailures.Inc()
		p.Logger.Error("processor.extract.failed", "path", path, "error", err)
		return entity.BillRecord{}, fmt.Errorf("extract %s: %w", path, err)
	}

	rec := p.Assembler.Assemble(res.Text, filepath.Base(path))
	if err := schema.ValidateBillRecord(rec); err != nil {
		// Non-fatal: the record is still usable, but flag it for review.
		p.Logger.Warn("processor.schema.mismatch", "path", path, "error", err)
	}

	if p.Bills != nil {
		rec, err = p.Bills.SaveBill(ctx, rec)
		if err != nil {
			return rec, err
		}
	}

	billsParsed.Inc()
	parseDuration.Observe(time.Since(start).Seconds())
	p.Logger.Info("processor.parse.ok",
		"path", path,
		"method", res.Method,
		"days", rec.Days,
		"amount_due", rec.AmountDue,
	)
	return rec, nil
}

// BatchResult summarizes one directory run.
type BatchResult struct {
	Records []entity.BillRecord
	Account entity.AccountInfo
	Failed  []string
}

// ProcessBatch runs every file through the processor. Account identity is
// extracted once per batch, from the first document that yields an account
// number; a failed document never aborts the rest.
func (p *Processor) ProcessBatch(ctx context.Context, paths []string) (BatchResult, error) {
	var out BatchResult
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		res, err := p.Extractor.Extract(ctx, path)
		if err != nil {
			parseFailures.Inc()
			p.Logger.Error("processor.extract.failed", "path", path, "error", err)
			out.Failed = append(out.Failed, path)
			continue
		}

		rec := p.Assembler.Assemble(res.Text, filepath.Base(path))
		if err := schema.ValidateBillRecord(rec); err != nil {
			p.Logger.Warn("processor.schema.mismatch", "path", path, "error", err)
		}
		if p.Bills != nil {
			if rec, err = p.Bills.SaveBill(ctx, rec); err != nil {
				p.Logger.Error("processor.save.failed", "path", path, "error", err)
				out.Failed = append(out.Failed, path)
				continue
			}
		}
		billsParsed.Inc()
		out.Records = append(out.Records, rec)

		if out.Account.AccountNumber == "" {
			if info := parse.ExtractAccountInfo(res.Text); info.AccountNumber != "" {
				out.Account = info
				if p.Accounts != nil {
					if err := p.Accounts.SaveAccount(ctx, info); err != nil {
						p.Logger.Warn("processor.account.save_failed", "error", err)
					}
				}
			}
		}
	}
	p.Logger.Info("processor.batch.ok",
		"processed", len(out.Records),
		"failed", len(out.Failed),
		"account", out.Account.AccountNumber != "",
	)
	return out, nil
}
