package flyertemplate

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/league-infrastructure/flyer-template/background"
	"github.com/league-infrastructure/flyer-template/classify"
	"github.com/league-infrastructure/flyer-template/compose"
	"github.com/league-infrastructure/flyer-template/merge"
	"github.com/league-infrastructure/flyer-template/model"
	"github.com/league-infrastructure/flyer-template/ocr"
	"github.com/league-infrastructure/flyer-template/pdffont"
	"github.com/league-infrastructure/flyer-template/segment"
	"github.com/league-infrastructure/flyer-template/source"
)

// ErrInvalidPlaceholderColor is returned by Analyze when the
// configured placeholder color cannot be parsed.
var ErrInvalidPlaceholderColor = errors.New("invalid placeholder color")

// Output file names inside each template project directory.
const (
	SourceFileName    = "src.png"
	TemplateFileName  = "template.png"
	ReferenceFileName = "reference.png"
	RegionsFileName   = "regions.yaml"
)

// Analyzer provides a fluent interface for analyzing one flyer mockup.
// Each configuration method returns a new Analyzer instance, making
// chains safe to fork and reuse.
type Analyzer struct {
	// Source
	sourcePath string

	// Configuration
	options analyzeOptions

	// Accumulated error (fail-fast)
	err error
}

// Result describes a completed analysis: the persisted metadata plus
// the paths of every file written to the project directory.
type Result struct {
	Metadata *model.TemplateMetadata

	// Dir is the project directory, <output>/<source stem>/.
	Dir string

	SourcePath    string
	TemplatePath  string
	ReferencePath string
	RegionsPath   string

	// RolesPreserved is true when region roles were carried over from
	// a previous regions file instead of freshly classified.
	RolesPreserved bool
}

// clone creates a copy of the Analyzer with a deep copy of options.
func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{
		sourcePath: a.sourcePath,
		options:    a.options.clone(),
		err:        a.err,
	}
}

// PlaceholderColor sets the hex color marking placeholder regions in
// the mockup. The default is "#6fe600".
func (a *Analyzer) PlaceholderColor(hex string) *Analyzer {
	n := a.clone()
	n.options.placeholderColor = hex
	return n
}

// Tolerance sets the per-channel color tolerance (0-255) used when
// matching placeholder pixels. The default is 20.
func (a *Analyzer) Tolerance(tolerance int) *Analyzer {
	n := a.clone()
	if tolerance < 0 || tolerance > 255 {
		n.err = fmt.Errorf("tolerance %d out of range 0-255", tolerance)
		return n
	}
	n.options.tolerance = tolerance
	return n
}

// EdgeDilation sets the side length in pixels of the square kernel
// used to grow region footprints before repainting. The default is 5.
func (a *Analyzer) EdgeDilation(px int) *Analyzer {
	n := a.clone()
	n.options.edgeDilation = px
	return n
}

// SampleOffset sets the gap in pixels between a region edge and the
// background sample strip. The default is 5.
func (a *Analyzer) SampleOffset(px int) *Analyzer {
	n := a.clone()
	n.options.sampleOffset = px
	return n
}

// LabelFont sets an explicit TrueType font file for reference labels.
// Without it, common system fonts are tried and an embedded face is
// the fallback.
func (a *Analyzer) LabelFont(path string) *Analyzer {
	n := a.clone()
	n.options.labelFontPath = path
	return n
}

// OCRLanguage sets the recognition language(s) for region text,
// "+"-separated (e.g. "eng+fra").
func (a *Analyzer) OCRLanguage(lang string) *Analyzer {
	n := a.clone()
	n.options.ocrLanguage = lang
	return n
}

// DPI sets the raster resolution for PDF sources. The default is 600.
func (a *Analyzer) DPI(dpi int) *Analyzer {
	n := a.clone()
	if dpi < 1 {
		n.err = fmt.Errorf("dpi %d must be positive", dpi)
		return n
	}
	n.options.dpi = dpi
	return n
}

// OutputDir sets the directory the project directory is created in.
// It defaults to the source file's directory.
func (a *Analyzer) OutputDir(dir string) *Analyzer {
	n := a.clone()
	n.options.outputDir = dir
	return n
}

// Replace discards any existing regions file instead of preserving its
// curated roles.
func (a *Analyzer) Replace() *Analyzer {
	n := a.clone()
	n.options.replace = true
	return n
}

// Analyze runs the full pipeline: region detection, background
// estimation, text recognition, template and reference rendering, role
// classification, role preservation, and font attribution, then writes
// the four project files. Warnings report non-fatal degradations; the
// returned Result is complete whenever err is nil.
func (a *Analyzer) Analyze() (*Result, []Warning, error) {
	if a.err != nil {
		return nil, nil, a.err
	}
	if a.sourcePath == "" {
		return nil, nil, fmt.Errorf("no source file specified")
	}

	placeholder, err := model.ParseHex(a.options.placeholderColor)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidPlaceholderColor, a.options.placeholderColor)
	}

	src, err := source.Open(a.sourcePath, a.options.dpi)
	if err != nil {
		return nil, nil, err
	}
	defer src.Close()

	img, err := src.Render()
	if err != nil {
		return nil, nil, err
	}

	segmenter := segment.NewWithConfig(segment.Config{Tolerance: a.options.tolerance}, nil)
	regions, err := segmenter.Detect(img, placeholder)
	if err != nil {
		return nil, nil, err
	}

	bgConfig := background.DefaultConfig()
	bgConfig.Offset = a.options.sampleOffset
	estimator := background.NewWithConfig(bgConfig)
	for i := range regions {
		regions[i].BackgroundColor = estimator.Estimate(img, regions[i].Box)
	}

	var warnings []Warning
	warnings = append(warnings, a.recognizeText(img, regions)...)

	compositor, err := compose.NewWithConfig(compose.Config{
		EdgeDilation:    a.options.edgeDilation,
		LabelFontPath:   a.options.labelFontPath,
		FontSearchPaths: a.options.fontSearchPaths,
	})
	if err != nil {
		return nil, warnings, err
	}
	template := compositor.RenderTemplate(img, regions)
	reference := compositor.RenderReference(template, regions, placeholder)

	classify.Apply(regions)

	result := &Result{Dir: a.projectDir()}
	result.SourcePath = filepath.Join(result.Dir, SourceFileName)
	result.TemplatePath = filepath.Join(result.Dir, TemplateFileName)
	result.ReferencePath = filepath.Join(result.Dir, ReferenceFileName)
	result.RegionsPath = filepath.Join(result.Dir, RegionsFileName)

	if !a.options.replace {
		preserved, ws := preserveRoles(result.RegionsPath, regions)
		result.RolesPreserved = preserved
		warnings = append(warnings, ws...)
	}

	if src.Vector() {
		warnings = append(warnings, a.attributeFonts(regions)...)
	}

	b := img.Bounds()
	meta := model.NewTemplateMetadata(SourceFileName, placeholder.Hex(), b.Dx(), b.Dy())
	meta.Regions = regions
	result.Metadata = meta

	if err := os.MkdirAll(result.Dir, 0o755); err != nil {
		return nil, warnings, fmt.Errorf("create project directory: %w", err)
	}
	if err := writePNG(result.SourcePath, img); err != nil {
		return nil, warnings, err
	}
	if err := writePNG(result.TemplatePath, template); err != nil {
		return nil, warnings, err
	}
	if err := writePNG(result.ReferencePath, reference); err != nil {
		return nil, warnings, err
	}
	if err := writeRegions(result.RegionsPath, meta); err != nil {
		return nil, warnings, err
	}

	return result, warnings, nil
}

// projectDir derives <output>/<source stem>.
func (a *Analyzer) projectDir() string {
	outDir := a.options.outputDir
	if outDir == "" {
		outDir = filepath.Dir(a.sourcePath)
	}
	stem := strings.TrimSuffix(filepath.Base(a.sourcePath), filepath.Ext(a.sourcePath))
	return filepath.Join(outDir, stem)
}

// recognizeText fills region names from OCR. Recognition is best
// effort: an unavailable engine or a failing region degrades to an
// empty name and a warning.
func (a *Analyzer) recognizeText(img image.Image, regions []model.Region) []Warning {
	client, err := ocr.New()
	if err != nil {
		return []Warning{warningf(WarningOCR, "text recognition unavailable: %v", err)}
	}
	defer client.Close()

	if a.options.ocrLanguage != "" {
		if err := client.SetLanguage(a.options.ocrLanguage); err != nil {
			return []Warning{warningf(WarningOCR, "set language %q: %v", a.options.ocrLanguage, err)}
		}
	}

	var warnings []Warning
	for i := range regions {
		text, err := client.RecognizeRegion(img, regions[i].Box)
		if err != nil {
			warnings = append(warnings, warningf(WarningOCR, "region %d: %v", regions[i].ID, err))
			continue
		}
		regions[i].Name = text
	}
	return warnings
}

// preserveRoles merges curated roles from an existing regions file.
func preserveRoles(regionsPath string, regions []model.Region) (bool, []Warning) {
	prior, err := merge.LoadPrior(regionsPath)
	if err != nil {
		return false, []Warning{warningf(WarningMerge, "could not load existing regions file: %v", err)}
	}
	if prior == nil {
		return false, nil
	}
	preserved, reason := merge.PreserveRoles(prior, regions)
	if !preserved {
		return false, []Warning{warningf(WarningMerge, "%s, using auto-detected roles", reason)}
	}
	return true, nil
}

// attributeFonts recovers per-region fonts from the PDF text layer,
// falling back to embedded font names with height-estimated sizes when
// the document has no usable spans.
func (a *Analyzer) attributeFonts(regions []model.Region) []Warning {
	attrConfig := pdffont.DefaultConfig()
	attrConfig.DPI = a.options.dpi
	attributor := pdffont.NewWithConfig(attrConfig)

	var warnings []Warning
	resolved := 0
	page, err := pdffont.NewFileSpanSource(a.sourcePath).FirstPage()
	if err != nil {
		warnings = append(warnings, warningf(WarningFont, "could not read text layer: %v", err))
	} else {
		resolved = attributor.Apply(page, regions)
	}
	if resolved > 0 {
		return warnings
	}

	// No text layer at all: take a font name from the embedded
	// FontDescriptors and estimate sizes from region heights.
	chosen := "Helvetica"
	embedded, err := pdffont.EmbeddedFonts(a.sourcePath)
	if err != nil {
		warnings = append(warnings, warningf(WarningFont, "could not scan embedded fonts: %v", err))
	} else if len(embedded) > 0 {
		chosen = embedded[0]
	}
	for i := range regions {
		regions[i].Font = pdffont.NormalizeFontName(chosen)
		regions[i].FontSize = pdffont.EstimateSize(regions[i].Height, a.options.dpi)
	}
	return warnings
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func writeRegions(path string, meta *model.TemplateMetadata) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal regions: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
