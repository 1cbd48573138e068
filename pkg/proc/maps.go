package proc

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"procmaps/pkg/maps"
)

// ReadMaps resolves src, opens the file and decodes every well-formed line.
// Malformed lines are skipped by the codec; only resolution and I/O failures
// surface here.
func ReadMaps(src Source) (maps.Regions, error) {
	mapfile, err := src.MapsPath()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(mapfile)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", mapfile, err)
	}
	defer f.Close()

	regions, err := maps.ReadRegions(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", mapfile, err)
	}
	glog.V(3).Infof("Parsed %d regions from %s", len(regions), mapfile)
	return regions, nil
}

func WriteMapsTo(w io.Writer, regions maps.Regions) error {
	if _, err := io.WriteString(w, maps.WriteRegions(regions)); err != nil {
		return fmt.Errorf("write maps: %w", err)
	}
	return nil
}

// WriteMapsFile renders regions and writes the document to a new file at
// path, replacing any existing content.
func WriteMapsFile(path string, regions maps.Regions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteMapsTo(f, regions); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
