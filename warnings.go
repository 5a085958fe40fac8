package flyertemplate

import (
	"fmt"
	"strings"
)

// WarningType categorizes non-fatal issues reported by Analyze.
type WarningType string

const (
	// WarningOCR marks text recognition problems; affected regions get
	// empty names.
	WarningOCR WarningType = "ocr"

	// WarningMerge marks an abandoned or unreadable prior regions
	// file; roles come from fresh classification instead.
	WarningMerge WarningType = "merge"

	// WarningFont marks PDF font attribution problems; affected
	// regions carry estimated or missing font info.
	WarningFont WarningType = "font"
)

// Warning describes a non-fatal issue encountered during analysis.
// The result is still usable; the warning explains what degraded.
type Warning struct {
	Type    WarningType
	Message string
}

func warningf(t WarningType, format string, args ...any) Warning {
	return Warning{Type: t, Message: fmt.Sprintf(format, args...)}
}

// FormatWarnings renders warnings as a single human-readable string,
// one warning per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = fmt.Sprintf("[%s] %s", w.Type, w.Message)
	}
	return strings.Join(lines, "\n")
}
