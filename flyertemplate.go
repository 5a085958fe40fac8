// Package flyertemplate provides a fluent API for turning flyer
// mockups into reusable templates.
//
// A mockup marks its variable areas with a known placeholder color.
// Analysis detects those regions, infers the background behind each
// one, recognizes the text printed inside, assigns semantic roles, and
// writes a project directory holding the cleaned template image, an
// annotated reference image, and a regions.yaml description.
//
// Basic usage:
//
//	result, warnings, err := flyertemplate.Open("flyer.pdf").
//	    OutputDir("templates").
//	    Analyze()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", flyertemplate.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := flyertemplate.Open("flyer.png").
//	    PlaceholderColor("#ff00ff").
//	    Tolerance(30).
//	    Replace().
//	    Analyze()
//
// The lower-level segment, background, classify, compose, merge, and
// pdffont packages are also available for advanced use.
package flyertemplate

// Open prepares an Analyzer for the mockup at path (a PDF or a raster
// image) with default options.
//
// Example:
//
//	result, warnings, err := flyertemplate.Open("flyer.pdf").Analyze()
func Open(path string) *Analyzer {
	return &Analyzer{
		sourcePath: path,
		options:    defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for scripts and
// tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustAnalyze wraps a call to Analyze and panics on error, discarding
// warnings.
//
// Example:
//
//	result := flyertemplate.MustAnalyze(flyertemplate.Open("flyer.pdf").Analyze())
func MustAnalyze(result *Result, _ []Warning, err error) *Result {
	if err != nil {
		panic(err)
	}
	return result
}
