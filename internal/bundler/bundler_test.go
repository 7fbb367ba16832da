package bundler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBundleGenerator(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lib", "format.ts"), `export const line = (f: string): string => "// " + f`)
	writeFile(t, filepath.Join(dir, "generator.ts"), `
import { line } from "./lib/format"
export function generateRoutes(config: { files: string[] }): string {
	return config.files.map(line).join("\n")
}
`)

	js, err := BundleGenerator(filepath.Join(dir, "generator.ts"), "__gen")
	require.NoError(t, err)
	assert.Contains(t, js, "var __gen")
	assert.Contains(t, js, "generateRoutes")
	assert.NotContains(t, js, "import ")
	assert.True(t, len(js) > len(consolePolyfill))
	assert.Equal(t, consolePolyfill, js[:len(consolePolyfill)])
}

func TestBundleGeneratorError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "generator.js"), `import { missing } from "./nope"; export const x = missing`)

	_, err := BundleGenerator(filepath.Join(dir, "generator.js"), "__gen")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestBundleGeneratorMissingEntry(t *testing.T) {
	_, err := BundleGenerator(filepath.Join(t.TempDir(), "missing.js"), "__gen")
	assert.Error(t, err)
}
