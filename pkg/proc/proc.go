package proc

import (
	"errors"
	"os"
	"path"
	"strconv"
)

// MountEnv is the environment override for the procfs mount point. It is
// consulted only by DefaultMount, at the call site, never deep inside the
// codec.
const MountEnv = "PROCFS_MOUNT"

const defaultMount = "/proc"

func DefaultMount() string {
	if m := os.Getenv(MountEnv); m != "" {
		return m
	}
	return defaultMount
}

// Source locates one maps document. Path, when set, is used verbatim and wins
// over Pid. Mount overrides the procfs mount point for pid lookups; empty
// means DefaultMount. Useful in containers where the host procfs is mounted
// somewhere else.
type Source struct {
	Pid   int
	Path  string
	Mount string
}

var ErrNoSource = errors.New("proc: pid or path required")

// MapsPath resolves the file to read. No I/O happens here; a Source with
// neither Path nor Pid fails before anything is opened.
func (s Source) MapsPath() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	if s.Pid <= 0 {
		return "", ErrNoSource
	}
	mount := s.Mount
	if mount == "" {
		mount = DefaultMount()
	}
	return path.Join(mount, strconv.Itoa(s.Pid), "maps"), nil
}

// NewSource builds a Source from a target string: purely numeric means a
// process id, anything else is taken as a literal file path.
func NewSource(target, mount string) Source {
	if pid, err := strconv.Atoi(target); err == nil && pid > 0 {
		return Source{Pid: pid, Mount: mount}
	}
	return Source{Path: target, Mount: mount}
}
