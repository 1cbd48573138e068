package maps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
	"golang.org/x/sys/unix"
)

// Region is one mapped virtual-memory range from a maps document. Device and
// Inode are carried as the literal strings from the source line; neither is
// interpreted here.
type Region struct {
	StartAddr uint64
	EndAddr   uint64
	Read      bool
	Write     bool
	Execute   bool
	Shared    bool
	Offset    uint64
	Device    string
	Inode     string
	Pathname  string
}

func (r Region) Size() uint64 { return r.EndAddr - r.StartAddr }

func (r Region) Contains(addr uint64) bool {
	return r.StartAddr <= addr && addr < r.EndAddr
}

// Perms renders the 4-character permission block, e.g. "r-xp".
func (r Region) Perms() string {
	b := []byte{'-', '-', '-', 'p'}
	if r.Read {
		b[0] = 'r'
	}
	if r.Write {
		b[1] = 'w'
	}
	if r.Execute {
		b[2] = 'x'
	}
	if r.Shared {
		b[3] = 's'
	}
	return string(b)
}

// Dev decodes the major:minor hex pair into a device number. The stored
// Device string stays untouched; this is a view for callers that want to
// stat-compare backing files.
func (r Region) Dev() (uint64, bool) {
	major, minor, ok := strings.Cut(r.Device, ":")
	if !ok {
		return 0, false
	}
	maj, err := strconv.ParseUint(major, 16, 32)
	if err != nil {
		return 0, false
	}
	min, err := strconv.ParseUint(minor, 16, 32)
	if err != nil {
		return 0, false
	}
	return unix.Mkdev(uint32(maj), uint32(min)), true
}

func (r Region) String() string {
	return fmt.Sprintf("0x%016x-0x%016x %s 0x%08x %s %s %s",
		r.StartAddr,
		r.EndAddr,
		r.Perms(),
		r.Offset,
		r.Device,
		r.Inode,
		r.Pathname)
}

// Regions is an ordered maps document.
type Regions []Region

func (rs Regions) Executable() Regions {
	return lo.Filter(rs, func(r Region, _ int) bool { return r.Execute })
}

// Sort orders regions by start address in place.
func (rs Regions) Sort() {
	slices.SortFunc(rs, func(a, b Region) bool { return a.StartAddr < b.StartAddr })
}

// FindAddr returns the first region containing addr, in document order.
func (rs Regions) FindAddr(addr uint64) (Region, bool) {
	for _, r := range rs {
		if r.Contains(addr) {
			return r, true
		}
	}
	return Region{}, false
}
