package flyertemplate

// analyzeOptions holds configuration for one analysis run.
type analyzeOptions struct {
	// Detection
	placeholderColor string
	tolerance        int

	// Rendering
	edgeDilation    int
	labelFontPath   string
	fontSearchPaths []string

	// Background sampling
	sampleOffset int

	// Source handling
	dpi int

	// Output
	outputDir string
	replace   bool

	// OCR
	ocrLanguage string
}

// defaultOptions returns the options of the standard mockup workflow.
func defaultOptions() analyzeOptions {
	return analyzeOptions{
		placeholderColor: "#6fe600",
		tolerance:        20,
		edgeDilation:     5,
		sampleOffset:     5,
		dpi:              600,
		ocrLanguage:      "",
	}
}

// clone creates a deep copy of analyzeOptions.
func (o analyzeOptions) clone() analyzeOptions {
	newOpts := o
	if o.fontSearchPaths != nil {
		newOpts.fontSearchPaths = make([]string, len(o.fontSearchPaths))
		copy(newOpts.fontSearchPaths, o.fontSearchPaths)
	}
	return newOpts
}
