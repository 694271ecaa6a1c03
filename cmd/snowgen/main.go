// Command snowgen generates the simulated snow-object dataset, writes it as
// a tab-separated file, and optionally evaluates its learnability, renders
// inspection plots, and records the run in sqlite.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/banshee-data/snowsim/internal/classify"
	"github.com/banshee-data/snowsim/internal/dataset"
	"github.com/banshee-data/snowsim/internal/simulate"
	"github.com/banshee-data/snowsim/internal/store"
	"github.com/banshee-data/snowsim/internal/viz"
)

func main() {
	var (
		trees  = flag.Int("trees", 4000, "number of tree rows to generate")
		hikers = flag.Int("hikers", 400, "number of hiker rows to generate")
		dogs   = flag.Int("dogs", 200, "number of dog rows to generate")
		seed   = flag.Uint64("seed", simulate.DefaultSeed, "RNG seed; all randomness derives from it")
		out    = flag.String("out", dataset.DefaultPath, "output file path (directory must exist)")

		evaluate   = flag.Bool("evaluate", true, "fit a classifier on the written file and report metrics")
		estimators = flag.Int("estimators", 1, "number of trees in the evaluation forest")
		testFrac   = flag.Float64("test-frac", 0.3, "fraction of rows held out for testing")
		splitSeed  = flag.Int64("split-seed", 1, "seed for the train/test shuffle and forest")

		plotDir    = flag.String("plot-dir", "", "directory for PNG histograms and scatter plots (empty disables)")
		reportPath = flag.String("report", "", "path for a single-file HTML report (empty disables)")

		dbPath        = flag.String("db", "", "sqlite database recording runs (empty disables)")
		migrationsDir = flag.String("migrations", "migrations", "directory of sqlite schema migrations")
	)
	flag.Parse()

	cfg := simulate.Config{Trees: *trees, Hikers: *hikers, Dogs: *dogs, Seed: *seed}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	sampler := simulate.NewSampler(cfg.Seed)
	treeCols, hikerCols, dogCols := sampler.SampleAll(cfg)
	ds := dataset.Assemble(treeCols, hikerCols, dogCols)

	if err := ds.WriteFile(*out); err != nil {
		log.Fatalf("write dataset: %v", err)
	}
	log.Printf("wrote %d rows to %s (trees=%d hikers=%d dogs=%d seed=%d)",
		ds.Len(), *out, cfg.Trees, cfg.Hikers, cfg.Dogs, cfg.Seed)

	for _, s := range ds.Summarise() {
		log.Printf("summary: %s %s mean=%.4f stddev=%.4f n=%d", s.Label, s.Column, s.Mean, s.Stddev, s.N)
	}

	var report *classify.Report
	if *evaluate && ds.Len() > 0 {
		evalCfg := classify.EvalConfig{
			TestFraction: *testFrac,
			NEstimators:  *estimators,
			Seed:         *splitSeed,
		}
		var err error
		// Evaluate from the file, not the in-memory table: the written file
		// is the product being validated.
		report, err = classify.EvaluateFile(*out, evalCfg)
		if err != nil {
			log.Fatalf("evaluate: %v", err)
		}
		printReport(report)
	}

	if *plotDir != "" {
		if err := writePlots(ds, *plotDir); err != nil {
			log.Fatalf("plots: %v", err)
		}
		log.Printf("wrote plots to %s", *plotDir)
	}

	if *reportPath != "" {
		if err := viz.HTMLReport(ds, *reportPath); err != nil {
			log.Fatalf("html report: %v", err)
		}
		log.Printf("wrote report to %s", *reportPath)
	}

	if *dbPath != "" {
		if err := recordRun(*dbPath, *migrationsDir, cfg, *out, report); err != nil {
			log.Fatalf("record run: %v", err)
		}
	}
}

func printReport(r *classify.Report) {
	log.Printf("evaluation features: %v", r.Features)
	for _, split := range []struct {
		name string
		rep  classify.SplitReport
	}{{"train", r.Train}, {"test", r.Test}} {
		log.Printf("%s: rows=%d accuracy=%.4f", split.name, split.rep.Rows, split.rep.Accuracy)
		for _, cm := range split.rep.PerClass {
			log.Printf("%s %s: precision=%.4f recall=%.4f f1=%.4f",
				split.name, cm.Class, cm.Precision, cm.Recall, cm.F1)
		}
		fmt.Printf("%s confusion matrix (rows=actual, cols=predicted):\n%s", split.name, split.rep.Confusion)
		fmt.Printf("%s normalized:\n", split.name)
		for i, row := range split.rep.Confusion.Normalized() {
			fmt.Printf("%10s", r.Classes[i])
			for _, v := range row {
				fmt.Printf("%10.2f", v)
			}
			fmt.Println()
		}
	}
}

func writePlots(ds *dataset.Dataset, dir string) error {
	for _, column := range []string{"size", "roughness", "motion"} {
		path := filepath.Join(dir, column+"_hist.png")
		if err := viz.Histogram(ds, column, path, viz.HistogramOptions{}); err != nil {
			return err
		}
	}
	return viz.Scatter(ds, "motion", "size", filepath.Join(dir, "size_vs_motion.png"), viz.ScatterOptions{})
}

func recordRun(dbPath, migrationsDir string, cfg simulate.Config, out string, report *classify.Report) error {
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.MigrateUp(migrationsDir); err != nil {
		return err
	}

	run := &store.Run{
		Seed:          cfg.Seed,
		Trees:         cfg.Trees,
		Hikers:        cfg.Hikers,
		Dogs:          cfg.Dogs,
		OutputPath:    out,
		TrainAccuracy: -1,
		TestAccuracy:  -1,
	}
	if report != nil {
		run.TrainAccuracy = report.Train.Accuracy
		run.TestAccuracy = report.Test.Accuracy
	}
	if err := db.InsertRun(run); err != nil {
		return err
	}
	log.Printf("recorded run %s in %s", run.RunID, dbPath)
	return nil
}
