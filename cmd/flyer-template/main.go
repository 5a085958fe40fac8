package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"

	flyertemplate "github.com/league-infrastructure/flyer-template"
	"github.com/league-infrastructure/flyer-template/source"
)

type templateIndex struct {
	Templates []string `json:"templates"`
	Count     int      `json:"count"`
}

func main() {
	colorPtr := flag.String("color", "#6fe600", "Placeholder hex color")
	tolerancePtr := flag.Int("tolerance", 20, "Color tolerance 0-255")
	dilatePtr := flag.Int("dilate", 5, "Edge dilation kernel size in pixels")
	offsetPtr := flag.Int("offset", 5, "Background sample offset from region edge")
	labelFontPtr := flag.String("label-font", "", "TrueType font path for reference labels")
	langPtr := flag.String("lang", "", "OCR language(s), '+' separated (e.g. eng+fra)")
	dpiPtr := flag.Int("dpi", 600, "Render resolution for PDF sources")
	outputPtr := flag.String("o", "", "Output directory (default: alongside the source)")
	var replace bool
	flag.BoolVar(&replace, "r", false, "Replace existing regions file instead of preserving roles")
	flag.BoolVar(&replace, "replace", false, "Alias for -r")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [flags] SOURCE\n\nSOURCE is a flyer mockup (PDF or image) or a directory of them.\n\nFlags:\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	src := flag.Arg(0)

	configure := func(a *flyertemplate.Analyzer) *flyertemplate.Analyzer {
		a = a.PlaceholderColor(*colorPtr).
			Tolerance(*tolerancePtr).
			EdgeDilation(*dilatePtr).
			SampleOffset(*offsetPtr).
			DPI(*dpiPtr)
		if *labelFontPtr != "" {
			a = a.LabelFont(*labelFontPtr)
		}
		if *langPtr != "" {
			a = a.OCRLanguage(*langPtr)
		}
		if replace {
			a = a.Replace()
		}
		return a
	}

	info, err := os.Stat(src)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if info.IsDir() {
		importDirectory(src, *outputPtr, configure)
		return
	}

	result := importOne(src, *outputPtr, configure)
	fmt.Printf("  -> %s\n", result.TemplatePath)
	fmt.Printf("  -> %s\n", result.ReferencePath)
	fmt.Printf("  -> %s\n", result.RegionsPath)
}

func importOne(src, outDir string, configure func(*flyertemplate.Analyzer) *flyertemplate.Analyzer) *flyertemplate.Result {
	a := configure(flyertemplate.Open(src))
	if outDir != "" {
		a = a.OutputDir(outDir)
	}

	result, warnings, err := a.Analyze()
	if err != nil {
		log.Fatalf("Error: %s: %v", src, err)
	}
	if len(warnings) > 0 {
		fmt.Println(flyertemplate.FormatWarnings(warnings))
	}
	return result
}

// importDirectory analyzes every supported file under dir, preserving
// the directory structure in the output, then writes an index.json
// listing the created template directories.
func importDirectory(dir, outDir string, configure func(*flyertemplate.Analyzer) *flyertemplate.Analyzer) {
	files := findMockups(dir)
	if len(files) == 0 {
		log.Fatalf("No mockup files found in %s", dir)
	}

	fmt.Printf("Found %d file(s) to import:\n", len(files))
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f)
		fmt.Printf("  %s\n", rel)
	}
	fmt.Println()

	var templates []string
	for _, f := range files {
		rel, _ := filepath.Rel(dir, f)

		fileOut := filepath.Dir(f)
		if outDir != "" {
			fileOut = filepath.Join(outDir, filepath.Dir(rel))
		}

		fmt.Printf("Importing: %s\n", rel)
		result := importOne(f, fileOut, configure)
		fmt.Printf("  -> %s\n", result.TemplatePath)
		fmt.Printf("  -> %s\n", result.ReferencePath)
		fmt.Printf("  -> %s\n", result.RegionsPath)
		fmt.Println()

		root := dir
		if outDir != "" {
			root = outDir
		}
		entry, err := filepath.Rel(root, result.Dir)
		if err != nil {
			entry = result.Dir
		}
		templates = append(templates, filepath.ToSlash(entry))
	}

	indexDir := dir
	if outDir != "" {
		indexDir = outDir
	}
	indexPath := filepath.Join(indexDir, "index.json")
	data, err := json.MarshalIndent(templateIndex{Templates: templates, Count: len(templates)}, "", "  ")
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if err := os.WriteFile(indexPath, data, 0o644); err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Printf("Created index: %s\n", indexPath)
}

// findMockups returns all analyzable files under dir, sorted by path.
func findMockups(dir string) []string {
	var files []string
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if source.Detect(path) != source.Unknown {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files
}
