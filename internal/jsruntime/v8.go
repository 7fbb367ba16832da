//go:build !use_quickjs

package jsruntime

import (
	"errors"
	"fmt"

	v8 "rogchap.com/v8go"
)

func init() {
	defaultRuntimeType = RuntimeV8
}

// newRuntime creates the default runtime for this build
func newRuntime() JSRuntime {
	return NewV8Runtime()
}

// V8Runtime wraps V8 for pooled usage
type V8Runtime struct {
	isolate *v8.Isolate
	context *v8.Context
}

// NewV8Runtime creates a new V8 runtime
func NewV8Runtime() *V8Runtime {
	isolate := v8.NewIsolate()
	context := v8.NewContext(isolate)
	return &V8Runtime{
		isolate: isolate,
		context: context,
	}
}

// Execute runs JavaScript code and returns the result
func (v *V8Runtime) Execute(code string) (string, error) {
	val, err := v.context.RunScript(code, "generator.js")
	if err != nil {
		var jsErr *v8.JSError
		if errors.As(err, &jsErr) {
			return "", fmt.Errorf("%s\n%s", jsErr.Message, jsErr.StackTrace)
		}
		return "", err
	}
	if val == nil || val.IsUndefined() || val.IsNull() {
		return "", nil
	}
	return val.String(), nil
}

// Reset clears the generator bundle's global so the next script starts clean
func (v *V8Runtime) Reset() {
	v.context.RunScript(`globalThis.`+GlobalName+` = undefined;`, "reset.js")
}

// Destroy permanently destroys the runtime
func (v *V8Runtime) Destroy() {
	if v.context != nil {
		v.context.Close()
		v.context = nil
	}
	if v.isolate != nil {
		v.isolate.Dispose()
		v.isolate = nil
	}
}
