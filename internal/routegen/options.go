package routegen

import (
	"fmt"

	"github.com/yejune/autoroute/internal/pagetree"
)

// Options controls the generated route table
type Options struct {
	// ImportPrefix is prepended to page paths in import specifiers
	ImportPrefix string
	// DynamicImport emits lazily loaded components instead of static imports
	DynamicImport bool
	// ChunkNamePrefix is prepended to chunk names of dynamic imports
	ChunkNamePrefix string
	// Nested emits top level paths without a leading slash
	Nested bool
	// Extensions are the page file extensions, including the dot
	Extensions []string
}

// DefaultOptions returns the options used for keys missing from a page configuration
func DefaultOptions() Options {
	return Options{
		ImportPrefix:  "@/pages/",
		DynamicImport: true,
		Extensions:    []string{".vue"},
	}
}

// ParseOptions reads generator options from the extra options of a page configuration.
// Unknown keys are ignored.
func ParseOptions(raw map[string]any) (Options, error) {
	opts := DefaultOptions()
	for key, value := range raw {
		var err error
		switch key {
		case "importPrefix":
			opts.ImportPrefix, err = asString(key, value)
		case "dynamicImport":
			opts.DynamicImport, err = asBool(key, value)
		case "chunkNamePrefix":
			opts.ChunkNamePrefix, err = asString(key, value)
		case "nested":
			opts.Nested, err = asBool(key, value)
		case "extensions":
			opts.Extensions, err = pagetree.ParseExtensions(value)
		}
		if err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

func asString(key string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("option %q must be a string, got %T", key, value)
	}
	return s, nil
}

func asBool(key string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("option %q must be a boolean, got %T", key, value)
	}
	return b, nil
}
