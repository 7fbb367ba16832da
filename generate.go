package autoroute

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5/util"
)

// outputPath returns the output file for a page name, relative to the output filesystem
func (p *Plugin) outputPath(pageName string) string {
	return pageName + "." + p.config.Extension
}

// generatePage synthesizes one configuration and writes its module unless unchanged
func (p *Plugin) generatePage(pc PageConfig) error {
	name := pc.name()
	code, err := p.synth.Synthesize(pc)
	if err != nil {
		return synthesisFailed(name, err)
	}
	return p.writeIfChanged(p.outputPath(name), code)
}

// generateIndex writes the aggregate module re-exporting every page module found on disk
func (p *Plugin) generateIndex(configs []PageConfig) error {
	var imports, exports []string
	for _, c := range configs {
		path := p.outputPath(c.PageName)
		ok, err := p.exists(path)
		if err != nil {
			return err
		}
		if !ok {
			p.config.Logger.Debug("Page module missing, leaving it out of the index", "page", c.PageName, "path", path)
			continue
		}
		imports = append(imports, fmt.Sprintf("import %s from './%s';", c.PageName, c.PageName))
		exports = append(exports, c.PageName)
	}
	return p.writeIfChanged(p.outputPath(DefaultPageName), indexSource(imports, exports))
}

func indexSource(imports, exports []string) string {
	var b strings.Builder
	if len(imports) > 0 {
		b.WriteString(strings.Join(imports, "\n"))
		b.WriteString("\n")
	}
	b.WriteString("export{")
	b.WriteString(strings.Join(exports, ","))
	b.WriteString("}")
	return b.String()
}

// shouldWrite reports false when path already holds code, ignoring surrounding whitespace
func (p *Plugin) shouldWrite(path, code string) (bool, error) {
	ok, err := p.exists(path)
	if err != nil || !ok {
		return true, err
	}
	current, err := util.ReadFile(p.config.FS, path)
	if err != nil {
		return false, fileSystemFailed("read", path, err)
	}
	return strings.TrimSpace(string(current)) != strings.TrimSpace(code), nil
}

func (p *Plugin) writeIfChanged(path, code string) error {
	write, err := p.shouldWrite(path, code)
	if err != nil {
		return err
	}
	if !write {
		p.config.Logger.Debug("Generated module unchanged, skipping write", "path", path)
		return nil
	}
	if err := util.WriteFile(p.config.FS, path, []byte(code), 0o644); err != nil {
		return fileSystemFailed("write", path, err)
	}
	p.config.Logger.Info("Wrote generated module", "path", path)
	return nil
}

func (p *Plugin) exists(path string) (bool, error) {
	_, err := p.config.FS.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fileSystemFailed("stat", path, err)
}
