package routegen

import (
	"fmt"
	"strings"
)

func render(routes []*route, opts Options) string {
	var b strings.Builder

	var all []*route
	collect(routes, &all)
	for _, rt := range all {
		if opts.DynamicImport {
			fmt.Fprintf(&b, "function %s() {\n  return import(/* webpackChunkName: %s */ %s)\n}\n\n",
				rt.ident, jsDoubleQuoted(rt.chunk), jsQuoted(rt.specifier))
		} else {
			fmt.Fprintf(&b, "import %s from %s\n", rt.ident, jsQuoted(rt.specifier))
		}
	}
	if !opts.DynamicImport && len(all) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("export default ")
	writeRoutes(&b, routes, 0)
	b.WriteString("\n")
	return b.String()
}

func collect(routes []*route, out *[]*route) {
	for _, rt := range routes {
		*out = append(*out, rt)
		collect(rt.children, out)
	}
}

func writeRoutes(b *strings.Builder, routes []*route, depth int) {
	if len(routes) == 0 {
		b.WriteString("[]")
		return
	}
	indent := strings.Repeat("  ", depth)
	b.WriteString("[\n")
	for _, rt := range routes {
		fmt.Fprintf(b, "%s  {\n", indent)
		if rt.name != "" {
			fmt.Fprintf(b, "%s    name: %s,\n", indent, jsQuoted(rt.name))
		}
		fmt.Fprintf(b, "%s    path: %s,\n", indent, jsQuoted(rt.path))
		fmt.Fprintf(b, "%s    component: %s,\n", indent, rt.ident)
		if len(rt.children) > 0 {
			fmt.Fprintf(b, "%s    children: ", indent)
			writeRoutes(b, rt.children, depth+2)
			b.WriteString(",\n")
		}
		fmt.Fprintf(b, "%s  },\n", indent)
	}
	fmt.Fprintf(b, "%s]", indent)
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)

func jsQuoted(s string) string {
	return "'" + quoteReplacer.Replace(s) + "'"
}

func jsDoubleQuoted(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, "*/", `*\/`).Replace(s) + `"`
}
