package pdffont

import (
	"fmt"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// EmbeddedFonts scans the document's object table for FontDescriptor
// entries and returns their normalized font names, deduplicated in
// object-number order. The list is empty for documents that embed no
// fonts.
func EmbeddedFonts(path string) ([]string, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	objNrs := make([]int, 0, len(ctx.XRefTable.Table))
	for nr := range ctx.XRefTable.Table {
		objNrs = append(objNrs, nr)
	}
	sort.Ints(objNrs)

	seen := make(map[string]bool)
	var names []string
	for _, nr := range objNrs {
		entry := ctx.XRefTable.Table[nr]
		if entry == nil || entry.Free || entry.Object == nil {
			continue
		}
		dict, ok := entry.Object.(types.Dict)
		if !ok {
			continue
		}
		if typ, ok := dict["Type"].(types.Name); !ok || typ != "FontDescriptor" {
			continue
		}
		fontName, ok := dict["FontName"].(types.Name)
		if !ok {
			continue
		}
		name := NormalizeFontName(fontName.Value())
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, nil
}
