// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fonts resolves named font schemes for the reference document.
// Two builtin schemes cover the Computer Modern family; additional schemes
// load from a directory of YAML files, one scheme per file, where the
// filename stem is the scheme name.
//
// Implements: prd005-fonts (R1-R3); docs/ARCHITECTURE § Font Schemes.
package fonts

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resume-press/pkg/types"
)

// DefaultScheme is used when no --font-scheme flag is given.
const DefaultScheme = "cmu"

// Builtin returns the schemes compiled into the binary.
func Builtin() map[string]types.FontScheme {
	return map[string]types.FontScheme{
		"cmu": {
			Name:  "cmu",
			Serif: "CMU Serif",
			Sans:  "CMU Sans Serif",
			Mono:  "CMU Typewriter Text",
		},
		"latin-modern": {
			Name:  "latin-modern",
			Serif: "Latin Modern Roman",
			Sans:  "Latin Modern Sans",
			Mono:  "Latin Modern Mono",
		},
	}
}

// LoadDir reads scheme files from dir. A missing directory is not an error;
// LoadDir returns an empty map. Files that are not YAML, fail to parse, or
// leave a font slot empty produce a warning on stderr and are skipped.
func LoadDir(dir string) (map[string]types.FontScheme, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]types.FontScheme{}, nil
		}
		return nil, fmt.Errorf("reading schemes directory %s: %w", dir, err)
	}

	schemes := make(map[string]types.FontScheme)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read scheme %s: %v\n", name, err)
			continue
		}

		var scheme types.FontScheme
		if err := yaml.Unmarshal(data, &scheme); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not parse scheme %s: %v\n", name, err)
			continue
		}
		scheme.Name = strings.TrimSuffix(name, ext)
		if scheme.Serif == "" || scheme.Sans == "" || scheme.Mono == "" {
			fmt.Fprintf(os.Stderr, "warning: scheme %s leaves a font slot empty, skipping\n", name)
			continue
		}
		schemes[scheme.Name] = scheme
	}

	return schemes, nil
}

// Resolve looks up a scheme by name across the builtins and, when dir is
// non-empty, the scheme directory. Directory entries shadow builtins of the
// same name. An unknown name errors with the full list of known schemes.
func Resolve(name, dir string) (types.FontScheme, error) {
	all := Builtin()
	if dir != "" {
		loaded, err := LoadDir(dir)
		if err != nil {
			return types.FontScheme{}, err
		}
		for k, v := range loaded {
			all[k] = v
		}
	}

	scheme, ok := all[name]
	if !ok {
		return types.FontScheme{}, fmt.Errorf(
			"unknown font scheme %q (known: %s)", name, strings.Join(Names(all), ", "),
		)
	}
	return scheme, nil
}

// Names returns the scheme names in sorted order.
func Names(schemes map[string]types.FontScheme) []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatTable writes the schemes as an aligned table, sorted by name.
func FormatTable(schemes map[string]types.FontScheme, w io.Writer) {
	if len(schemes) == 0 {
		fmt.Fprintln(w, "No font schemes available.")
		return
	}

	fmt.Fprintf(w, "%-16s  %-24s  %-24s  %s\n", "Name", "Serif", "Sans", "Mono")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, name := range Names(schemes) {
		s := schemes[name]
		fmt.Fprintf(w, "%-16s  %-24s  %-24s  %s\n", name, s.Serif, s.Sans, s.Mono)
	}
}

// FormatJSON writes the schemes as a JSON array, sorted by name.
func FormatJSON(schemes map[string]types.FontScheme, w io.Writer) error {
	list := make([]types.FontScheme, 0, len(schemes))
	for _, name := range Names(schemes) {
		list = append(list, schemes[name])
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
