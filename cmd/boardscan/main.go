// Command boardscan runs the stone detection pipeline on a board
// photograph and prints the recovered grid.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	gobanparser "goban-parser"
	"goban-parser/internal/imageio"
	"goban-parser/internal/viz"
)

func main() {
	input := flag.String("i", "", "Path to board photograph")
	paramsFile := flag.String("params", "", "JSON file with parameter overrides")
	debugDir := flag.String("debug", "", "Directory for debug images (mask, stones, grid)")
	verbose := flag.Bool("v", false, "Print per-stage diagnostics")
	flag.Parse()

	if *input == "" {
		fmt.Println("Usage: boardscan -i <image> [-params <file>] [-debug <dir>] [-v]")
		os.Exit(1)
	}

	params := gobanparser.DefaultParams()
	if *paramsFile != "" {
		if err := loadParams(*paramsFile, &params); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load params: %v\n", err)
			os.Exit(1)
		}
	}
	params.Verbose = *verbose

	if *debugDir != "" {
		sink, err := viz.NewImageSink(*debugDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create debug sink: %v\n", err)
			os.Exit(1)
		}
		params = params.WithDebugSink(sink)
	}

	img, err := imageio.Load(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Scanning %s (%dx%d) ===\n",
		*input, img.Bounds().Dx(), img.Bounds().Dy())

	board, err := gobanparser.ParseImageWithParams(img, params)
	if err != nil {
		if errors.Is(err, gobanparser.ErrNoBoard) {
			fmt.Printf("No board: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
		os.Exit(1)
	}

	printBoard(board)
}

// loadParams merges overrides from a JSON file into params; fields
// absent from the file keep their defaults.
func loadParams(path string, params *gobanparser.Params) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, params); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func printBoard(board gobanparser.BoardMap) {
	points := make([]gobanparser.LatticePoint, 0, len(board))
	for lp := range board {
		points = append(points, lp)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Row != points[j].Row {
			return points[i].Row < points[j].Row
		}
		return points[i].Col < points[j].Col
	})

	fmt.Printf("%d black stones:\n", len(board))
	for _, lp := range points {
		c := board[lp]
		fmt.Printf("  (%+3d,%+3d)  pixel (%d, %d)\n", lp.Col, lp.Row, c.X, c.Y)
	}
}
