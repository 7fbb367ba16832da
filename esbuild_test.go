package autoroute

import (
	"errors"
	"testing"

	esbuildApi "github.com/evanw/esbuild/pkg/api"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWith(plugin esbuildApi.Plugin) esbuildApi.BuildResult {
	return esbuildApi.Build(esbuildApi.BuildOptions{
		Stdin: &esbuildApi.StdinOptions{
			Contents: "export default 1",
			Loader:   esbuildApi.LoaderJS,
		},
		Write:   false,
		Plugins: []esbuildApi.Plugin{plugin},
	})
}

func TestESBuildGeneratesOnStart(t *testing.T) {
	fs := memfs.New()
	p, err := New(Multiple(
		PageConfig{Pages: "P1", PageName: "foo"},
		PageConfig{Pages: "P2", PageName: "bar"},
	), constSynth("export default {}"), WithFilesystem(fs), WithLogger(discardLogger()))
	require.NoError(t, err)

	result := buildWith(p.ESBuild())
	require.Empty(t, result.Errors)

	assert.Equal(t, "export default {}", readFile(t, fs, "foo.js"))
	assert.Equal(t, "import foo from './foo';\nimport bar from './bar';\nexport{foo,bar}", readFile(t, fs, "index.js"))
}

func TestESBuildReportsErrors(t *testing.T) {
	synth := SynthesizerFunc(func(PageConfig) (string, error) {
		return "", errors.New("cannot read pages")
	})
	p, err := New(Single(PageConfig{Pages: "P"}), synth,
		WithFilesystem(memfs.New()), WithLogger(discardLogger()))
	require.NoError(t, err)

	result := buildWith(p.ESBuild())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Text, "cannot read pages")
	assert.Equal(t, DefaultEventName, result.Errors[0].PluginName)
}

func TestESBuildRunsOnEveryRebuild(t *testing.T) {
	calls := 0
	synth := SynthesizerFunc(func(PageConfig) (string, error) {
		calls++
		return "export default []", nil
	})
	p, err := New(Single(PageConfig{Pages: "P"}), synth,
		WithFilesystem(memfs.New()), WithLogger(discardLogger()))
	require.NoError(t, err)

	ctx, ctxErr := esbuildApi.Context(esbuildApi.BuildOptions{
		Stdin:   &esbuildApi.StdinOptions{Contents: "export default 1"},
		Write:   false,
		Plugins: []esbuildApi.Plugin{p.ESBuild()},
	})
	require.Nil(t, ctxErr)
	defer ctx.Dispose()

	require.Empty(t, ctx.Rebuild().Errors)
	require.Empty(t, ctx.Rebuild().Errors)
	assert.Equal(t, 2, calls)
}
