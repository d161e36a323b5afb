package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/cognicore/querylens/internal/export"
	"github.com/cognicore/querylens/pkg/querylens/store"
	"github.com/cognicore/querylens/pkg/querylens/store/sqlite"
)

func main() {
	var (
		csvPath  = flag.String("csv", "", "CSV query export (query,count)")
		htmlPath = flag.String("html", "", "HTML query export")
		dbPath   = flag.String("db", "queries.db", "SQLite store to import into")
	)
	flag.Parse()

	if *csvPath == "" && *htmlPath == "" {
		log.Fatal("--csv or --html required")
	}

	var pairs []store.QueryCount
	var err error
	if *csvPath != "" {
		pairs, err = export.LoadCSV(*csvPath)
	} else {
		var f *os.File
		f, err = os.Open(*htmlPath)
		if err != nil {
			log.Fatalf("open %s: %v", *htmlPath, err)
		}
		defer f.Close()
		pairs, err = export.ParseHTML(f)
	}
	if err != nil {
		log.Fatalf("parse export: %v", err)
	}

	ctx := context.Background()
	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	imported := 0
	for _, p := range pairs {
		if err := st.UpsertQueryCount(ctx, p.Query, p.Count); err != nil {
			log.Fatalf("upsert %q: %v", p.Query, err)
		}
		imported++
	}

	log.Printf("imported %d queries into %s", imported, *dbPath)
}
