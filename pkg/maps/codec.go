// Package maps converts between the textual /proc/<pid>/maps format and
// structured Region values. The codec is a syntax-level transform: it does
// not check that ranges are ordered, aligned or non-overlapping, and it never
// resolves pseudo-pathnames like [heap] or [stack].
package maps

import (
	"fmt"
	"regexp"
	"strconv"
)

// lineRegexp matches one maps record. The four permission slots are fixed
// position; the pathname is everything after the whitespace run following the
// inode, kept verbatim to end of line.
var lineRegexp = regexp.MustCompile(
	`^\s*([0-9a-fA-F]+)-([0-9a-fA-F]+)\s+([r-])([w-])([x-])([sp])\s+([0-9a-fA-F]+)\s+([0-9a-fA-F]+:[0-9a-fA-F]+)\s+([0-9]+)(?:\s+(.*))?$`)

// ParseLine decodes a single maps line. The second return value is false when
// the line does not match the grammar; that includes the empty string, so
// blank lines can be skipped transparently. Numeric fields wider than 64 bits
// do not match.
func ParseLine(line string) (Region, bool) {
	m := lineRegexp.FindStringSubmatch(line)
	if m == nil {
		return Region{}, false
	}
	start, err := strconv.ParseUint(m[1], 16, 64)
	if err != nil {
		return Region{}, false
	}
	end, err := strconv.ParseUint(m[2], 16, 64)
	if err != nil {
		return Region{}, false
	}
	offset, err := strconv.ParseUint(m[7], 16, 64)
	if err != nil {
		return Region{}, false
	}
	return Region{
		StartAddr: start,
		EndAddr:   end,
		Read:      m[3] == "r",
		Write:     m[4] == "w",
		Execute:   m[5] == "x",
		Shared:    m[6] == "s",
		Offset:    offset,
		Device:    m[8],
		Inode:     m[9],
		Pathname:  m[10],
	}, true
}

// FormatLine renders one newline-terminated maps line. Hex fields come out
// lowercase, the offset zero-padded to 8 digits, and the structural portion
// padded to a minimum of 72 columns before the pathname. An empty pathname
// leaves trailing whitespace before the newline, same as the kernel output.
func FormatLine(r Region) string {
	head := fmt.Sprintf("%x-%x %s %08x %s %s",
		r.StartAddr, r.EndAddr, r.Perms(), r.Offset, r.Device, r.Inode)
	return fmt.Sprintf("%-72s %s\n", head, r.Pathname)
}
