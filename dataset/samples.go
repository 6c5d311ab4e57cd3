package dataset

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// ErrUnknownSample is returned by Sample for a name with no embedded file.
var ErrUnknownSample = errors.New("dataset: unknown sample")

//go:embed samples/*.yaml
var samples embed.FS

// Names lists the embedded sample names in ascending order.
func Names() []string {
	entries, _ := fs.ReadDir(samples, "samples")
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(out)

	return out
}

// Sample parses the embedded sample called name.
func Sample(name string) (*Dataset, error) {
	data, err := samples.ReadFile(path.Join("samples", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownSample, name, strings.Join(Names(), ", "))
	}

	return Parse(data)
}
