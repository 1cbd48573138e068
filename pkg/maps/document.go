package maps

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

// ReadRegions decodes a whole maps document. Lines that fail the grammar are
// skipped without error; output order is input order restricted to matching
// lines. The only error source is the reader itself.
func ReadRegions(r io.Reader) (Regions, error) {
	var regions Regions
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if region, ok := ParseLine(scanner.Text()); ok {
			regions = append(regions, region)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan maps: %w", err)
	}
	return regions, nil
}

// WriteRegions renders the full document text in the given order. Pure; any
// file writing is layered on top by the caller.
func WriteRegions(regions Regions) string {
	return strings.Join(lo.Map(regions, func(r Region, _ int) string {
		return FormatLine(r)
	}), "")
}
