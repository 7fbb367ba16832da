// Package bundler bundles JavaScript route generators with esbuild so they can run
// inside an embedded JS runtime.
package bundler

import (
	"fmt"
	"strings"

	esbuildApi "github.com/evanw/esbuild/pkg/api"
)

// consolePolyfill swallows logging, since embedded runtimes have no console
var consolePolyfill = `var console={log:function(){},info:function(){},warn:function(){},error:function(){}};`

// BundleGenerator bundles the module at entry into a script that assigns the module's
// exports to the global named globalName
func BundleGenerator(entry, globalName string) (string, error) {
	opts := esbuildApi.BuildOptions{
		EntryPoints: []string{entry},
		Bundle:      true,
		Write:       false,
		Outdir:      "/",
		Format:      esbuildApi.FormatIIFE,
		GlobalName:  globalName,
		Platform:    esbuildApi.PlatformNeutral,
		Target:      esbuildApi.ES2017,
		// neutral platform resolves no main fields by default
		MainFields:    []string{"module", "main"},
		LegalComments: esbuildApi.LegalCommentsNone,
		Banner: map[string]string{
			"js": consolePolyfill,
		},
	}
	return build(opts)
}

func build(buildOptions esbuildApi.BuildOptions) (string, error) {
	result := esbuildApi.Build(buildOptions)
	if len(result.Errors) > 0 {
		fileLocation := "unknown"
		lineText := "unknown"
		if result.Errors[0].Location != nil {
			fileLocation = result.Errors[0].Location.File
			lineText = result.Errors[0].Location.LineText
		}
		return "", fmt.Errorf("bundle generator: %s in %s at %s", result.Errors[0].Text, fileLocation, lineText)
	}

	for _, file := range result.OutputFiles {
		if strings.HasSuffix(file.Path, ".js") {
			return string(file.Contents), nil
		}
	}
	return "", fmt.Errorf("bundle generator: esbuild produced no JavaScript output")
}
