package autoroute

import (
	esbuildApi "github.com/evanw/esbuild/pkg/api"
)

// buildCompilation collects errors reported during one esbuild OnStart callback
type buildCompilation struct {
	errors []esbuildApi.Message
}

func (c *buildCompilation) ReportError(err error) {
	c.errors = append(c.errors, esbuildApi.Message{
		Text:   err.Error(),
		Detail: err,
	})
}

type esbuildHooks struct {
	build esbuildApi.PluginBuild
}

func (h esbuildHooks) OnCompilation(_ string, fn func(Compilation)) {
	h.build.OnStart(func() (esbuildApi.OnStartResult, error) {
		c := &buildCompilation{}
		fn(c)
		return esbuildApi.OnStartResult{Errors: c.errors}, nil
	})
}

// ESBuild returns an esbuild plugin that runs the generator at the start of every build.
// Reported errors become esbuild build errors.
func (p *Plugin) ESBuild() esbuildApi.Plugin {
	return esbuildApi.Plugin{
		Name: p.config.EventName,
		Setup: func(build esbuildApi.PluginBuild) {
			p.Apply(esbuildHooks{build: build})
		},
	}
}
