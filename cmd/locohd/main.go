// Command locohd compares two labeled coordinate files and prints one
// LoCoHD score per anchor.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nozzle/locohd"
	"github.com/nozzle/locohd/weight"
)

func main() {
	// Parse command-line flags
	inputA := flag.String("a", "", "First structure CSV file (required)")
	inputB := flag.String("b", "", "Second structure CSV file (required)")
	outputFile := flag.String("output", "scores.csv", "Output CSV file")
	weightName := flag.String("weight", "uniform", "Weight function shape (uniform, hyper_exp, dagum, kumaraswamy)")
	weightParams := flag.String("params", "3,10", "Comma-separated weight function parameters")
	categories := flag.String("categories", "", "Comma-separated category list (default: derived from inputs)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto)")
	verbose := flag.Bool("verbose", false, "Verbose output")
	flag.Parse()

	if *inputA == "" || *inputB == "" {
		fmt.Fprintln(os.Stderr, "Error: -a and -b flags are required")
		flag.Usage()
		os.Exit(1)
	}

	labelsA, coordsA, err := loadStructure(*inputA)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *inputA, err)
		os.Exit(1)
	}
	labelsB, coordsB, err := loadStructure(*inputB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *inputB, err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Loaded %d and %d points\n", len(labelsA), len(labelsB))
	}

	params, err := parseParams(*weightParams)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -params: %v\n", err)
		os.Exit(1)
	}
	wf, err := weight.New(*weightName, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building weight function: %v\n", err)
		os.Exit(1)
	}

	cats := splitList(*categories)
	if len(cats) == 0 {
		cats = deriveCategories(labelsA, labelsB)
	}

	lchd, err := locohd.New(cats, wf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	lchd.NumWorkers = *workers

	scores, err := lchd.FromCoords(labelsA, labelsB, coordsA, coordsB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := saveScores(*outputFile, scores); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving output: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Saved %d scores to %s\n", len(scores), *outputFile)
	}
}

// loadStructure loads rows of "label,x1,x2,..." from a CSV file.
func loadStructure(filename string) ([]string, [][]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty file")
	}

	labels := make([]string, len(records))
	coords := make([][]float64, len(records))
	for i, record := range records {
		if len(record) < 2 {
			return nil, nil, fmt.Errorf("row %d: need a label and at least one coordinate", i)
		}
		labels[i] = record[0]
		coords[i] = make([]float64, len(record)-1)
		for j, val := range record[1:] {
			f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d, col %d: %v", i, j+1, err)
			}
			coords[i][j] = f
		}
	}
	return labels, coords, nil
}

// saveScores writes one score per line.
func saveScores(filename string, scores []float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for _, score := range scores {
		if err := writer.Write([]string{strconv.FormatFloat(score, 'f', 6, 64)}); err != nil {
			return err
		}
	}
	return nil
}

func parseParams(s string) ([]float64, error) {
	parts := splitList(s)
	params := make([]float64, len(parts))
	for i, part := range parts {
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		params[i] = f
	}
	return params, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// deriveCategories collects the unique labels of both inputs in first-seen
// order.
func deriveCategories(labelsA, labelsB []string) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, label := range append(append([]string(nil), labelsA...), labelsB...) {
		if !seen[label] {
			seen[label] = true
			cats = append(cats, label)
		}
	}
	return cats
}
