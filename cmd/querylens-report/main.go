package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cognicore/querylens/internal/export"
	"github.com/cognicore/querylens/pkg/querylens"
	"github.com/cognicore/querylens/pkg/querylens/config"
	"github.com/cognicore/querylens/pkg/querylens/store"
	"github.com/cognicore/querylens/pkg/querylens/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "Optional: YAML config file")
		csvPath    = flag.String("csv", "", "CSV query export (query,count)")
		htmlPath   = flag.String("html", "", "HTML query export")
		dbPath     = flag.String("db", "", "SQLite query store")
		topicsK    = flag.Int("topics", 0, "Override: number of topics")
		seed       = flag.Uint64("seed", 0, "Override: random seed (0 keeps config value)")
		save       = flag.Bool("save", false, "Persist the report to the SQLite store (requires --db)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if *topicsK > 0 {
		cfg.Topics = *topicsK
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	engine, err := querylens.New(querylens.Options{Config: cfg})
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	ctx := context.Background()

	var st store.Store
	if *dbPath != "" {
		st, err = sqlite.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer st.Close()
	}

	pairs, err := loadPairs(ctx, *csvPath, *htmlPath, st)
	if err != nil {
		log.Fatal(err)
	}

	report, err := engine.Run(pairs)
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	if *save {
		if st == nil {
			log.Fatal("--save requires --db")
		}
		rec, err := report.Record()
		if err != nil {
			log.Fatalf("encode report: %v", err)
		}
		if err := st.SaveReport(ctx, rec); err != nil {
			log.Fatalf("save report: %v", err)
		}
		log.Printf("saved report %s", report.ID)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}

// loadPairs resolves the input: exactly one of --csv, --html, --db.
func loadPairs(ctx context.Context, csvPath, htmlPath string, st store.Store) ([]store.QueryCount, error) {
	switch {
	case csvPath != "":
		return export.LoadCSV(csvPath)
	case htmlPath != "":
		f, err := os.Open(htmlPath)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", htmlPath, err)
		}
		defer f.Close()
		return export.ParseHTML(f)
	case st != nil:
		return st.QueryCounts(ctx)
	default:
		return nil, fmt.Errorf("one of --csv, --html or --db is required")
	}
}
