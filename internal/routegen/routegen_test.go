package routegen

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagesFS(t *testing.T, files ...string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for _, f := range files {
		require.NoError(t, util.WriteFile(fs, f, []byte("<template><div/></template>"), 0o644))
	}
	return fs
}

func TestGenerateNestedRoutes(t *testing.T) {
	fs := pagesFS(t, "index.vue", "about.vue", "users.vue", "users/index.vue", "users/_id.vue")

	code, err := Generate(fs, DefaultOptions())
	require.NoError(t, err)

	expected := `function index() {
  return import(/* webpackChunkName: "index" */ '@/pages/index.vue')
}

function about() {
  return import(/* webpackChunkName: "about" */ '@/pages/about.vue')
}

function users() {
  return import(/* webpackChunkName: "users" */ '@/pages/users.vue')
}

function users_2() {
  return import(/* webpackChunkName: "users-index" */ '@/pages/users/index.vue')
}

function users_id() {
  return import(/* webpackChunkName: "users-_id" */ '@/pages/users/_id.vue')
}

export default [
  {
    name: 'index',
    path: '/',
    component: index,
  },
  {
    name: 'about',
    path: '/about',
    component: about,
  },
  {
    path: '/users',
    component: users,
    children: [
      {
        name: 'users',
        path: '',
        component: users_2,
      },
      {
        name: 'users-id',
        path: ':id',
        component: users_id,
      },
    ],
  },
]
`
	assert.Equal(t, expected, code)
}

func TestGenerateStaticImports(t *testing.T) {
	fs := pagesFS(t, "index.vue", "posts/_slug.vue")
	opts := DefaultOptions()
	opts.DynamicImport = false
	opts.ImportPrefix = "~/views/"

	code, err := Generate(fs, opts)
	require.NoError(t, err)

	expected := `import index from '~/views/index.vue'
import posts_slug from '~/views/posts/_slug.vue'

export default [
  {
    name: 'index',
    path: '/',
    component: index,
  },
  {
    name: 'posts-slug',
    path: '/posts/:slug',
    component: posts_slug,
  },
]
`
	assert.Equal(t, expected, code)
}

func TestGenerateEmptyDirectory(t *testing.T) {
	code, err := Generate(memfs.New(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "export default []\n", code)
}

func TestResolvePaths(t *testing.T) {
	tests := []struct {
		name   string
		files  []string
		nested bool
		paths  []string
		names  []string
	}{
		{
			name:  "static before dynamic",
			files: []string{"_id.vue", "about.vue", "index.vue"},
			paths: []string{"/", "/about", "/:id"},
			names: []string{"index", "about", "id"},
		},
		{
			name:  "flattened directories",
			files: []string{"a/b/c.vue", "a/index.vue"},
			paths: []string{"/a", "/a/b/c"},
			names: []string{"a", "a-b-c"},
		},
		{
			name:   "nested top level",
			files:  []string{"index.vue", "settings.vue"},
			nested: true,
			paths:  []string{"", "settings"},
			names:  []string{"index", "settings"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Nested = tt.nested
			routes := resolveFiles(tt.files, opts)

			var paths, names []string
			for _, rt := range routes {
				paths = append(paths, rt.path)
				names = append(names, rt.name)
			}
			assert.Equal(t, tt.paths, paths)
			assert.Equal(t, tt.names, names)
		})
	}
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions(map[string]any{
		"importPrefix":    "@/views/",
		"dynamicImport":   false,
		"chunkNamePrefix": "page-",
		"nested":          true,
		"extensions":      []any{"vue", ".tsx"},
		"unknown":         42,
	})
	require.NoError(t, err)
	assert.Equal(t, Options{
		ImportPrefix:    "@/views/",
		DynamicImport:   false,
		ChunkNamePrefix: "page-",
		Nested:          true,
		Extensions:      []string{".vue", ".tsx"},
	}, opts)

	_, err = ParseOptions(map[string]any{"nested": "yes"})
	assert.Error(t, err)

	_, err = ParseOptions(map[string]any{"extensions": []any{1}})
	assert.Error(t, err)
}

func TestGenerateReservedWordPages(t *testing.T) {
	fs := pagesFS(t, "new.vue", "delete.vue", "default.vue", "posts/new.vue")
	opts := DefaultOptions()
	opts.DynamicImport = false

	code, err := Generate(fs, opts)
	require.NoError(t, err)

	assert.Contains(t, code, "import _default from '@/pages/default.vue'\n")
	assert.Contains(t, code, "import _delete from '@/pages/delete.vue'\n")
	assert.Contains(t, code, "import _new from '@/pages/new.vue'\n")
	assert.Contains(t, code, "import posts_new from '@/pages/posts/new.vue'\n")
	assert.Contains(t, code, "    name: 'new',\n    path: '/new',\n    component: _new,\n")
	assert.NotContains(t, code, "import new ")
	assert.NotContains(t, code, "component: default,")
}
