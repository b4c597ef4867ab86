package main

import (
	"os"
	"path/filepath"
	"runtime"
)

// cliConfig holds the parsed command-line configuration, built up by
// parseFlags before a Runtime/Context pair is constructed.
type cliConfig struct {
	checkOnly bool
	inline    []string
	imports   []string
	fork      bool
	trace     bool
	memLimit  uint

	programFile string
	args        []string
}

// pathListSeparator mirrors PLORTHPATH's separator: `:` on POSIX, `;` on
// Windows, following the same convention as $PATH.
func pathListSeparator() string {
	if runtime.GOOS == "windows" {
		return ";"
	}
	return ":"
}

// modulePaths builds the module search path list: PLORTHPATH's entries,
// in order, followed by the built-in default (the directory containing
// the program file being run, if any, else the working directory).
func modulePaths(programFile string) []string {
	var paths []string
	if v := os.Getenv("PLORTHPATH"); v != "" {
		for _, p := range splitPathList(v) {
			if p != "" {
				paths = append(paths, p)
			}
		}
	}
	if programFile != "" {
		paths = append(paths, filepath.Dir(programFile))
	} else {
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, wd)
		}
	}
	return paths
}

func splitPathList(v string) []string {
	var out []string
	start := 0
	sep := pathListSeparator()[0]
	for i := 0; i < len(v); i++ {
		if v[i] == sep {
			out = append(out, v[start:i])
			start = i + 1
		}
	}
	out = append(out, v[start:])
	return out
}
