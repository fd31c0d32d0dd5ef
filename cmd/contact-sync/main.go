package main

import (
	"context"
	"flag"
	"time"

	"contact_sync_backend/internal/contacts"
	"contact_sync_backend/internal/directory"
	"contact_sync_backend/internal/sourcefeed"
	"contact_sync_backend/platform/config"
	"contact_sync_backend/platform/logger"

	"github.com/google/uuid"
)

func main() {
	filePath := flag.String("file", "", "path to the source CSV export")
	start := flag.Int("start", 1, "1-based record number to start from")
	count := flag.Int("count", 0, "number of records to process (0 = all remaining)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	runID := uuid.NewString()
	log := logger.New(cfg.Env).WithRunID(runID)

	if *filePath == "" {
		log.Error("missing required -file flag")
		panic("missing required -file flag")
	}

	log.Info("starting contact sync", "file", *filePath, "start", *start, "count", *count)

	feed, err := sourcefeed.Load(*filePath)
	if err != nil {
		log.Error("failed to load source feed", "error", err)
		panic("failed to load source feed: " + err.Error())
	}

	records, err := feed.Slice(*start, *count)
	if err != nil {
		log.Error("invalid record selection", "error", err)
		panic("invalid record selection: " + err.Error())
	}

	ctx := context.WithValue(context.Background(), logger.RunIDKey, runID)

	directoryModule := directory.NewModule(cfg, log)
	contactsModule := contacts.NewModule(directoryModule.Directory(), cfg, runID, log)
	svc := contactsModule.Service()

	began := time.Now()
	var processed int
	var succeeded int

	for i, record := range records {
		recordNumber := *start + i
		recordCtx := context.WithValue(ctx, logger.RecordKey, recordNumber)
		recordLog := log.WithRecord(recordNumber)

		processed++
		if err := svc.ProcessRecord(recordCtx, record); err != nil {
			recordLog.Error("record processing failed", "error", err)
		} else {
			succeeded++
		}

		if i < len(records)-1 && cfg.GetRecordDelay() > 0 {
			time.Sleep(cfg.GetRecordDelay())
		}
	}

	log.Info("contact sync finished",
		"processed", processed,
		"succeeded", succeeded,
		"failed", processed-succeeded,
		"elapsed", time.Since(began).String(),
	)
}
