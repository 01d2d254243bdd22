// Package main provides the entry point for the Re:Tag recruitment helper.
package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2/app"

	"retag/internal/calc"
	"retag/internal/capture"
	"retag/internal/config"
	"retag/internal/detect"
	"retag/internal/ocr"
	"retag/internal/operator"
	"retag/internal/scanner"
	"retag/internal/version"
	"retag/pkg/geometry"
	"retag/ui/mainwindow"
)

const appTitle = "Re:Tag"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.String())

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// A broken catalog degrades to an empty pool: the app runs, the results
	// panel stays empty until the catalog is fixed and the app restarted.
	catalog, err := operator.Load(cfg.CatalogPath, cfg.AvatarDir)
	if err != nil {
		log.Printf("Failed to load operator catalog: %v", err)
		catalog = operator.Empty()
	} else {
		log.Printf("Loaded %d operators", catalog.Size())
	}

	engine, err := ocr.NewEngine(cfg.TessdataPath)
	if err != nil {
		log.Fatalf("Failed to initialize OCR engine: %v", err)
	}
	defer engine.Close()

	source, err := capture.NewScreenSource(cfg.CaptureDisplay, geometry.RectInt{
		X: cfg.CaptureX, Y: cfg.CaptureY, Width: cfg.CaptureW, Height: cfg.CaptureH,
	})
	if err != nil {
		log.Fatalf("Failed to open capture source: %v", err)
	}

	pipeline := detect.NewPipeline(engine, cfg)
	scan := scanner.New(source, pipeline, time.Duration(cfg.CaptureIntervalMs)*time.Millisecond)
	calculator := calc.New(catalog)

	fyneApp := app.NewWithID("io.retag")
	win := mainwindow.New(fyneApp, scan, calculator)
	win.ShowAndRun()
}
