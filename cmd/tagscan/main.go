// Command tagscan runs the tag detection pipeline over a saved screenshot
// and prints the detected tags and recruitment results. Useful for tuning
// thresholds against captured frames without the live UI.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"strings"

	"retag/internal/calc"
	"retag/internal/config"
	"retag/internal/detect"
	"retag/internal/ocr"
	"retag/internal/operator"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configDir := flag.String("config", ".", "directory containing retag.yaml")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: tagscan [-config dir] <screenshot.png>\n")
		os.Exit(2)
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	frame, err := loadImage(flag.Arg(0))
	if err != nil {
		log.Fatalf("load screenshot: %v", err)
	}

	engine, err := ocr.NewEngine(cfg.TessdataPath)
	if err != nil {
		log.Fatalf("initialize OCR: %v", err)
	}
	defer engine.Close()

	pipeline := detect.NewPipeline(engine, cfg)
	tags, err := pipeline.Detect(frame)
	if err != nil {
		log.Fatalf("detection failed: %v", err)
	}

	fmt.Printf("%d tags detected\n", len(tags))
	for _, t := range tags {
		state := "off"
		if t.Selected {
			state = "ON"
		}
		fmt.Printf("  %-16s [%s] @ (%d,%d) %dx%d\n",
			t.Kind, state, t.Region.X, t.Region.Y, t.Region.Width, t.Region.Height)
	}

	catalog, err := operator.Load(cfg.CatalogPath, cfg.AvatarDir)
	if err != nil {
		log.Printf("catalog unavailable, skipping evaluation: %v", err)
		return
	}

	results := calc.New(catalog).Evaluate(tags)
	fmt.Printf("\n%d combinations with obtainable operators\n", len(results))
	for _, r := range results {
		kinds := make([]string, len(r.Tags))
		for i, k := range r.Tags {
			kinds[i] = k.String()
		}
		names := make([]string, len(r.Operators))
		for i, op := range r.Operators {
			names[i] = fmt.Sprintf("%s (%s)", op.Name, op.Rarity)
		}
		fmt.Printf("  %s -> %s\n", strings.Join(kinds, " + "), strings.Join(names, ", "))
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
