// Package scriptsynth synthesizes route modules by running a JavaScript generator.
//
// The generator is an ES module exporting
//
//	generateRoutes(config) -> string
//
// config is the page configuration as JSON, with a files array holding the
// slash separated page paths found under the page directory.
package scriptsynth

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"

	"github.com/yejune/autoroute/internal/bundler"
	"github.com/yejune/autoroute/internal/jsruntime"
	"github.com/yejune/autoroute/internal/pagetree"
)

// Input is the page configuration handed to the generator
type Input struct {
	Pages    string
	PageName string
	Options  map[string]any
}

// Executor runs a script and returns its completion value
type Executor interface {
	Execute(code string) (string, error)
}

// Synthesizer runs a bundled generator script
type Synthesizer struct {
	bundle string
	exec   Executor
}

// New bundles the generator at entry. The bundle is built once; every Synthesize call
// evaluates it afresh in a runtime taken from exec.
func New(entry string, exec Executor) (*Synthesizer, error) {
	bundle, err := bundler.BundleGenerator(entry, jsruntime.GlobalName)
	if err != nil {
		return nil, err
	}
	return &Synthesizer{bundle: bundle, exec: exec}, nil
}

// Synthesize scans pages for page files and calls the generator
func (s *Synthesizer) Synthesize(pages billy.Filesystem, in Input) (string, error) {
	exts, err := extensions(in.Options)
	if err != nil {
		return "", err
	}
	files, err := pagetree.Scan(pages, exts)
	if err != nil {
		return "", err
	}

	config := make(map[string]any, len(in.Options)+3)
	for k, v := range in.Options {
		config[k] = v
	}
	config["pages"] = in.Pages
	config["pageName"] = in.PageName
	fileList := make([]any, len(files))
	for i, f := range files {
		fileList[i] = f
	}
	config["files"] = fileList

	code := s.bundle + ";\n" + Call(config)
	out, err := s.exec.Execute(code)
	if err != nil {
		return "", fmt.Errorf("run route generator: %w", err)
	}
	return out, nil
}

// Call returns the script expression invoking the bundled generator with config
func Call(config map[string]any) string {
	arg := oj.JSON(config, &ojg.Options{Sort: true})
	return fmt.Sprintf(`(function(){
var mod = globalThis.%[1]s;
var fn = mod && (mod.generateRoutes || (mod.default && mod.default.generateRoutes));
if (typeof fn !== "function") { throw new Error("route generator must export generateRoutes"); }
var out = fn(%[2]s);
if (typeof out !== "string") { throw new Error("generateRoutes must return a string"); }
return out;
})()`, jsruntime.GlobalName, arg)
}

func extensions(options map[string]any) ([]string, error) {
	raw, ok := options["extensions"]
	if !ok {
		return nil, nil
	}
	return pagetree.ParseExtensions(raw)
}
