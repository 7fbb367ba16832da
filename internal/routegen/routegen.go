// Package routegen builds a route table module from a directory of page components.
//
// File names map to routes the way file based routers usually do it:
//
//	index.vue          -> /
//	about.vue          -> /about
//	users/_id.vue      -> /users/:id
//	users.vue + users/ -> /users with the files under users/ as children
package routegen

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/yejune/autoroute/internal/jsident"
	"github.com/yejune/autoroute/internal/pagetree"
)

type route struct {
	name      string
	path      string
	ident     string
	chunk     string
	specifier string
	children  []*route
}

type entry struct {
	file     string
	children map[string]*entry
}

func newEntry() *entry {
	return &entry{children: make(map[string]*entry)}
}

// Generate scans fs for pages and returns the route table module source
func Generate(fs billy.Filesystem, opts Options) (string, error) {
	files, err := pagetree.Scan(fs, opts.Extensions)
	if err != nil {
		return "", err
	}
	return render(resolveFiles(files, opts), opts), nil
}

// resolveFiles turns slash separated page paths into a route tree
func resolveFiles(files []string, opts Options) []*route {
	root := newEntry()
	for _, file := range files {
		segments := strings.Split(strings.TrimSuffix(file, path.Ext(file)), "/")
		n := root
		for _, s := range segments[:len(segments)-1] {
			n = n.child(s)
		}
		n.child(segments[len(segments)-1]).file = file
	}

	r := &resolver{opts: opts, idents: make(map[string]int)}
	return r.resolve(root, nil, nil, false)
}

func (e *entry) child(key string) *entry {
	c, ok := e.children[key]
	if !ok {
		c = newEntry()
		e.children[key] = c
	}
	return c
}

type resolver struct {
	opts   Options
	idents map[string]int
}

func (r *resolver) resolve(e *entry, nameSegs, pathSegs []string, child bool) []*route {
	var routes []*route
	for _, key := range sortedKeys(e.children) {
		c := e.children[key]
		names := appendSeg(nameSegs, key)
		paths := appendSeg(pathSegs, key)

		if c.file == "" {
			routes = append(routes, r.resolve(c, names, paths, child)...)
			continue
		}

		rt := &route{
			name:      routeName(names),
			path:      routePath(paths, child, r.opts.Nested),
			specifier: r.opts.ImportPrefix + c.file,
		}
		rt.chunk = r.opts.ChunkNamePrefix + strings.ReplaceAll(strings.TrimSuffix(c.file, path.Ext(c.file)), "/", "-")
		rt.ident = r.ident(rt.name)
		if len(c.children) > 0 {
			rt.children = r.resolve(c, names, nil, true)
			for _, ch := range rt.children {
				if ch.path == "" {
					rt.name = ""
					break
				}
			}
		}
		routes = append(routes, rt)
	}
	return routes
}

func (r *resolver) ident(name string) string {
	var b strings.Builder
	for i, c := range name {
		switch {
		case c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			b.WriteRune(c)
		case c >= '0' && c <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(c)
		default:
			b.WriteByte('_')
		}
	}
	id := b.String()
	if jsident.IsReserved(id) {
		id = "_" + id
	}
	r.idents[id]++
	if n := r.idents[id]; n > 1 {
		id = fmt.Sprintf("%s_%d", id, n)
	}
	return id
}

func appendSeg(segs []string, seg string) []string {
	out := make([]string, len(segs), len(segs)+1)
	copy(out, segs)
	return append(out, seg)
}

func isDynamic(seg string) bool {
	return strings.HasPrefix(seg, "_")
}

// sortedKeys orders index first, then static segments, then dynamic ones
func sortedKeys(m map[string]*entry) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	rank := func(k string) int {
		switch {
		case k == "index":
			return 0
		case isDynamic(k):
			return 2
		default:
			return 1
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	return keys
}

func routeName(segs []string) string {
	parts := make([]string, 0, len(segs))
	for i, s := range segs {
		if s == "index" && i == len(segs)-1 {
			continue
		}
		parts = append(parts, strings.TrimPrefix(s, "_"))
	}
	if len(parts) == 0 {
		return "index"
	}
	return strings.Join(parts, "-")
}

func routePath(segs []string, child, nested bool) string {
	parts := make([]string, 0, len(segs))
	for i, s := range segs {
		switch {
		case s == "index" && i == len(segs)-1:
		case isDynamic(s):
			parts = append(parts, ":"+strings.TrimPrefix(s, "_"))
		default:
			parts = append(parts, s)
		}
	}
	p := strings.Join(parts, "/")
	if child || nested {
		return p
	}
	return "/" + p
}
