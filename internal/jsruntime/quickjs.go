//go:build use_quickjs

package jsruntime

import (
	"github.com/buke/quickjs-go"
)

func init() {
	defaultRuntimeType = RuntimeQuickJS
}

// newRuntime creates the default runtime for this build
func newRuntime() JSRuntime {
	return NewQuickJSRuntime()
}

// QuickJSRuntime wraps QuickJS for pooled usage
type QuickJSRuntime struct {
	runtime *quickjs.Runtime
	context *quickjs.Context
}

// NewQuickJSRuntime creates a new QuickJS runtime
func NewQuickJSRuntime() *QuickJSRuntime {
	rt := quickjs.NewRuntime()
	ctx := rt.NewContext()
	return &QuickJSRuntime{
		runtime: rt,
		context: ctx,
	}
}

// Execute runs JavaScript code and returns the result
func (q *QuickJSRuntime) Execute(code string) (string, error) {
	res := q.context.Eval(code)
	defer res.Free()

	if res.IsException() {
		return "", res.Error()
	}
	if res.IsUndefined() || res.IsNull() {
		return "", nil
	}
	return res.String(), nil
}

// Reset clears the generator bundle's global so the next script starts clean
func (q *QuickJSRuntime) Reset() {
	res := q.context.Eval(`globalThis.` + GlobalName + ` = undefined;`)
	res.Free()
}

// Destroy permanently destroys the runtime
func (q *QuickJSRuntime) Destroy() {
	if q.context != nil {
		q.context.Close()
		q.context = nil
	}
	if q.runtime != nil {
		q.runtime.Close()
		q.runtime = nil
	}
}
