package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"

	"github.com/priyanshu/opportunity-board/internal/catalog"
	"github.com/priyanshu/opportunity-board/internal/ingest"
	"github.com/priyanshu/opportunity-board/internal/source"
)

func main() {
	fallback := flag.Bool("fallback", false, "render the built-in fallback dataset instead of the remote feed")
	flag.Parse()

	_ = godotenv.Load()
	ctx := context.Background()

	var src source.Tabular
	if *fallback {
		src = source.Static{}
	} else {
		reg, err := source.LoadRegistry("internal/source/config/sources.yaml")
		if err != nil {
			log.Fatal(err)
		}
		cfg, err := reg.ActiveSource()
		if err != nil {
			log.Fatal(err)
		}
		src, err = source.NewSheetsSource(ctx, cfg)
		if err != nil {
			log.Printf("Sheets source unavailable (%v); using fallback dataset", err)
			src = source.Static{}
		}
	}

	cat := catalog.New(src, ingest.NewNormalizer(), 30*time.Second)
	snap := cat.Refresh(ctx)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Kind", "Title", "Organization", "Deadline", "Fee", "Compensation", "Apply URL"})

	for _, rec := range snap.Records {
		t.AppendRow(table.Row{rec.Kind, rec.Title, rec.Organization, rec.ApplicationDeadline, rec.RegistrationFee, rec.CompensationRange, rec.ApplyURL})
	}
	t.Render()

	log.Printf("%d records (fallback=%v, refreshed %s)", len(snap.Records), snap.FromFallback, snap.RefreshedAt.Format(time.RFC3339))
}
