package autoroute

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yejune/autoroute/internal/jsident"
)

// DefaultPageName is used for the output file of a single configuration without a pageName
const DefaultPageName = "index"

// PageConfig describes one page directory and the route module generated from it
type PageConfig struct {
	// Pages is the page directory, passed through to the Synthesizer
	Pages string `yaml:"pages"`
	// PageName names the output file and, with several configurations, its export binding
	PageName string `yaml:"pageName"`
	// Options holds any additional synthesis options, passed through unchanged
	Options map[string]any `yaml:",inline"`
}

// name returns the page name, falling back to DefaultPageName
func (c PageConfig) name() string {
	if c.PageName == "" {
		return DefaultPageName
	}
	return c.PageName
}

type optionsKind int

const (
	kindInvalid optionsKind = iota
	kindSingle
	kindMultiple
)

// Options is either a single PageConfig or an ordered sequence of them.
// The zero value is neither and is reported as a shape error when the plugin runs.
type Options struct {
	kind    optionsKind
	configs []PageConfig
}

// Single returns Options holding one configuration
func Single(config PageConfig) Options {
	return Options{kind: kindSingle, configs: []PageConfig{config}}
}

// Multiple returns Options holding an ordered sequence of configurations
func Multiple(configs ...PageConfig) Options {
	cp := make([]PageConfig, len(configs))
	copy(cp, configs)
	return Options{kind: kindMultiple, configs: cp}
}

// IsMultiple reports whether the options hold a sequence of configurations
func (o Options) IsMultiple() bool {
	return o.kind == kindMultiple
}

// Configs returns a copy of the configurations in order
func (o Options) Configs() []PageConfig {
	cp := make([]PageConfig, len(o.configs))
	copy(cp, o.configs)
	return cp
}

// Validate checks every configuration for the required fields.
// A single configuration may omit PageName; in a sequence every PageName must be a
// unique JavaScript identifier other than "index", since it becomes an import binding
// in the index module.
// The shape itself is not checked here.
func (o Options) Validate() error {
	switch o.kind {
	case kindSingle:
		if o.configs[0].Pages == "" {
			return configRequired("pages", -1)
		}
	case kindMultiple:
		seen := make(map[string]int, len(o.configs))
		for i, c := range o.configs {
			if c.Pages == "" {
				return configRequired("pages", i)
			}
			if c.PageName == "" {
				return configRequired("pageName", i)
			}
			switch first, dup := seen[c.PageName]; {
			case c.PageName == DefaultPageName:
				return configInvalid("pageName", i, "`index` is reserved for the aggregate module")
			case !jsident.Valid(c.PageName):
				return configInvalid("pageName", i, fmt.Sprintf("%q is not a valid JavaScript identifier", c.PageName))
			case dup:
				return configInvalid("pageName", i, fmt.Sprintf("%q is already used by configuration %d", c.PageName, first))
			}
			seen[c.PageName] = i
		}
	}
	return nil
}

// LoadOptions reads options from a YAML or JSON file. A mapping document yields a single
// configuration and a sequence yields several; any other document yields the zero Options.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options %s: %w", path, err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes options from YAML or JSON bytes, see LoadOptions
func ParseOptions(data []byte) (Options, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Options{}, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		var c PageConfig
		if err := root.Decode(&c); err != nil {
			return Options{}, fmt.Errorf("decode page config: %w", err)
		}
		return Single(c), nil
	case yaml.SequenceNode:
		var cs []PageConfig
		if err := root.Decode(&cs); err != nil {
			return Options{}, fmt.Errorf("decode page configs: %w", err)
		}
		return Multiple(cs...), nil
	default:
		return Options{}, nil
	}
}
