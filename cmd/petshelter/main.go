// Package main is the entry point for the petshelter command.
package main

import (
	"os"
	"runtime/debug"

	"github.com/alexander-akhmetov/petshelter/internal/cli"
)

// Set via ldflags on release builds; filled from build info otherwise.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			commit, date = vcsInfo(info.Settings)
		}
	}
	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// vcsInfo extracts a short commit hash and the build timestamp from the
// VCS settings embedded by the Go toolchain.
func vcsInfo(settings []debug.BuildSetting) (string, string) {
	var revision, stamp string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			stamp = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	commit := "unknown"
	if len(revision) >= 7 {
		commit = revision[:7]
		if dirty {
			commit += "-dirty"
		}
	}

	date := "unknown"
	if stamp != "" {
		date = stamp
	}
	return commit, date
}
