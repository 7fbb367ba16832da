package autoroute

import (
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/yejune/autoroute/internal/jsruntime"
	"github.com/yejune/autoroute/internal/routegen"
	"github.com/yejune/autoroute/internal/scriptsynth"
)

// Synthesizer turns a page configuration into generated route source.
// Implementations can be the bundled route generator, a JavaScript generator,
// or anything else that produces module source for a page directory.
type Synthesizer interface {
	// Synthesize is called once per configuration on every compilation.
	// config is the full record, including Pages, PageName and Options.
	Synthesize(config PageConfig) (string, error)
}

// SynthesizerFunc adapts a function to the Synthesizer interface
type SynthesizerFunc func(pc PageConfig) (string, error)

func (f SynthesizerFunc) Synthesize(pc PageConfig) (string, error) {
	return f(pc)
}

// RouteGenerator returns the built-in Synthesizer, which scans the page directory for
// single file components and emits a route table module
func RouteGenerator() Synthesizer {
	return SynthesizerFunc(func(pc PageConfig) (string, error) {
		opts, err := routegen.ParseOptions(pc.Options)
		if err != nil {
			return "", err
		}
		return routegen.Generate(osfs.New(pc.Pages), opts)
	})
}

// ScriptSynthesizer runs a bundled JavaScript generator in pooled JS runtimes.
// Close releases the runtimes.
type ScriptSynthesizer struct {
	pool  *jsruntime.Pool
	synth *scriptsynth.Synthesizer
}

// ScriptGenerator bundles the JavaScript module at entry and runs its exported
// generateRoutes function for every configuration. poolSize bounds the number of
// JS runtimes kept alive; zero uses the default.
func ScriptGenerator(entry string, poolSize int) (*ScriptSynthesizer, error) {
	pool := jsruntime.NewPool(jsruntime.PoolConfig{PoolSize: poolSize})
	s, err := scriptsynth.New(entry, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &ScriptSynthesizer{pool: pool, synth: s}, nil
}

func (s *ScriptSynthesizer) Synthesize(pc PageConfig) (string, error) {
	return s.synth.Synthesize(osfs.New(pc.Pages), scriptsynth.Input{
		Pages:    pc.Pages,
		PageName: pc.PageName,
		Options:  pc.Options,
	})
}

// Close destroys the idle runtimes. Synthesize fails after Close.
func (s *ScriptSynthesizer) Close() error {
	s.pool.Close()
	return nil
}
