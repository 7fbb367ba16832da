package autoroute

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// DefaultEventName is the name the plugin registers its compilation callback under
const DefaultEventName = "autoroute"

// Compilation is the per-build handle passed to the compilation callback.
// Errors reported here are surfaced by the host as build diagnostics.
type Compilation interface {
	ReportError(err error)
}

// Hooks is the host's lifecycle hook registry
type Hooks interface {
	// OnCompilation registers fn to be called once at the start of every build
	OnCompilation(name string, fn func(Compilation))
}

// Plugin generates route modules for its page configurations at the start of every build
type Plugin struct {
	options Options
	synth   Synthesizer
	config  config
	mu      sync.Mutex
}

type config struct {
	OutputDir string
	FS        billy.Filesystem
	Extension string
	EventName string
	Logger    *slog.Logger
}

// validate fills defaults for anything left unset
func (c *config) validate() {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.FS == nil {
		c.FS = osfs.New(c.OutputDir)
	}
	c.Extension = strings.TrimPrefix(c.Extension, ".")
	if c.Extension == "" {
		c.Extension = "js"
	}
	if c.EventName == "" {
		c.EventName = DefaultEventName
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

// Option configures a Plugin
type Option func(*config)

// WithOutputDir sets the directory generated modules are written to. Defaults to the
// working directory.
func WithOutputDir(dir string) Option {
	return func(c *config) { c.OutputDir = dir }
}

// WithFilesystem writes generated modules to fs instead of the output directory on disk
func WithFilesystem(fs billy.Filesystem) Option {
	return func(c *config) { c.FS = fs }
}

// WithExtension sets the extension of generated modules. Defaults to "js".
func WithExtension(ext string) Option {
	return func(c *config) { c.Extension = ext }
}

// WithEventName sets the name the compilation callback is registered under
func WithEventName(name string) Option {
	return func(c *config) { c.EventName = name }
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.Logger = logger }
}

// New creates a Plugin. Missing `pages`, or a missing `pageName` when several
// configurations are given, fails here before any build runs.
func New(options Options, synth Synthesizer, opts ...Option) (*Plugin, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	if synth == nil {
		return nil, configRequired("synthesizer", -1)
	}

	p := &Plugin{
		options: Options{kind: options.kind, configs: options.Configs()},
		synth:   synth,
	}
	for _, opt := range opts {
		opt(&p.config)
	}
	p.config.validate()
	return p, nil
}

// Apply registers the plugin's compilation callback with the host
func (p *Plugin) Apply(hooks Hooks) {
	hooks.OnCompilation(p.config.EventName, p.Run)
}

// Run generates every page module and, for several configurations, the index module.
// Errors go to c and never escape Run.
func (p *Plugin) Run(c Compilation) {
	p.mu.Lock()
	defer p.mu.Unlock()

	report := func(err error) {
		p.config.Logger.Error("Route generation failed", "error", err)
		c.ReportError(err)
	}

	switch p.options.kind {
	case kindSingle:
		if err := p.generatePage(p.options.configs[0]); err != nil {
			report(err)
		}
	case kindMultiple:
		if len(p.options.configs) == 0 {
			p.config.Logger.Debug("No page configurations, skipping index generation")
			return
		}
		for _, pc := range p.options.configs {
			if err := p.generatePage(pc); err != nil {
				report(err)
			}
		}
		if err := p.generateIndex(p.options.configs); err != nil {
			report(err)
		}
	default:
		report(shapeInvalid())
	}
}
