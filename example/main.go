package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/samber/lo"

	"procmaps/pkg/maps"
	"procmaps/pkg/proc"
)

func main() {
	var target string
	var mount string
	var execOnly bool
	var sorted bool
	flag.StringVar(&target, "target", "self", "Target process ID, or a path to a maps file")
	flag.StringVar(&mount, "mount", proc.DefaultMount(), "Procfs mount point")
	flag.BoolVar(&execOnly, "x", false, "Only print executable regions")
	flag.BoolVar(&sorted, "sorted", false, "Sort regions by start address")
	flag.Parse()

	src := proc.NewSource(target, mount)
	if target == "self" {
		src = proc.Source{Pid: os.Getpid(), Mount: mount}
	}

	regions, err := proc.ReadMaps(src)
	if err != nil {
		glog.Errorf("Failed to read maps: %v", err)
		os.Exit(1)
	}
	glog.V(1).Infof("Read %d regions from target %q", len(regions), target)

	if execOnly {
		regions = regions.Executable()
	}
	if sorted {
		regions.Sort()
	}

	if err := proc.WriteMapsTo(os.Stdout, regions); err != nil {
		glog.Errorf("Failed to write maps: %v", err)
		os.Exit(1)
	}

	total := lo.SumBy(regions, func(r maps.Region) uint64 { return r.Size() })
	fmt.Fprintf(os.Stderr, "%d regions, %d bytes mapped\n", len(regions), total)
}
