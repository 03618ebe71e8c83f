package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/leapstack-labs/metalcalc/pkg/element"
)

// generateElementDocs generates the periodic table reference.
func generateElementDocs(outDir string) error {
	log.Printf("Generating element docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	table := element.Default()

	w := NewMarkdownWriter()
	w.Frontmatter("Elements", "Periodic table data used by metalcalc")
	w.GeneratedMarker()

	w.Header(1, "Elements")
	w.Paragraph(fmt.Sprintf("metalcalc knows %d elements. Atomic masses are standard atomic weights in kg/kmol; "+
		"for elements without a stable isotope the mass number of the longest-lived isotope is used.", table.Len()))

	headers := []string{"Z", "Symbol", "Name", "Period", "Group", "Class", "Atomic mass"}
	var rows [][]string
	for _, e := range table.All() {
		group := "-"
		if e.Group > 0 {
			group = strconv.Itoa(e.Group)
		}
		rows = append(rows, []string{
			strconv.Itoa(e.Number),
			InlineCode(e.Symbol),
			e.Name,
			strconv.Itoa(e.Period),
			group,
			e.Class.String(),
			strconv.FormatFloat(e.AtomicMass, 'f', -1, 64),
		})
	}
	w.Table(headers, rows)

	if err := os.WriteFile(filepath.Join(outDir, "elements.md"), w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated elements.md (%d elements)", table.Len())
	return nil
}
