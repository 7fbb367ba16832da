// Package jsruntime runs JavaScript generators in pooled engines.
// V8 is used by default; build with the use_quickjs tag to use QuickJS instead.
package jsruntime

import (
	"errors"
	"sync"
)

// RuntimeType represents the type of JavaScript runtime
type RuntimeType string

const (
	RuntimeQuickJS RuntimeType = "quickjs"
	RuntimeV8      RuntimeType = "v8"
)

// GlobalName is the global a generator bundle assigns its exports to.
// Runtimes clear it when they go back to the pool.
const GlobalName = "__autoroute"

// DefaultPoolSize is used when PoolConfig.PoolSize is not positive
const DefaultPoolSize = 2

// ErrPoolClosed is returned by Execute after Close
var ErrPoolClosed = errors.New("jsruntime: pool closed")

// defaultRuntimeType is set by init() in the build-specific files
var defaultRuntimeType RuntimeType

// JSRuntime is the interface for JavaScript execution
type JSRuntime interface {
	// Execute runs JavaScript code and returns the completion value as a string
	Execute(code string) (string, error)
	// Reset clears script globals before the runtime goes back to the pool
	Reset()
	// Destroy permanently destroys the runtime
	Destroy()
}

// Pool keeps up to PoolSize idle runtimes for reuse
type Pool struct {
	runtimeType RuntimeType
	idle        chan JSRuntime
	created     int
	closed      bool
	mu          sync.Mutex
}

// PoolConfig configures the runtime pool
type PoolConfig struct {
	PoolSize int
}

// DefaultRuntimeType returns the runtime type for this build
func DefaultRuntimeType() RuntimeType {
	return defaultRuntimeType
}

// NewPool creates a new runtime pool. Runtimes are created lazily.
func NewPool(config PoolConfig) *Pool {
	if config.PoolSize <= 0 {
		config.PoolSize = DefaultPoolSize
	}
	return &Pool{
		runtimeType: defaultRuntimeType,
		idle:        make(chan JSRuntime, config.PoolSize),
	}
}

// Get retrieves an idle runtime or creates a new one
func (p *Pool) Get() (JSRuntime, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, ErrPoolClosed
	}
	select {
	case rt := <-p.idle:
		return rt, nil
	default:
	}
	p.created++
	return newRuntime(), nil
}

// Put returns a runtime to the pool, destroying it when the pool is full or closed
func (p *Pool) Put(rt JSRuntime) {
	rt.Reset()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		rt.Destroy()
		return
	}
	select {
	case p.idle <- rt:
	default:
		rt.Destroy()
	}
}

// Execute gets a runtime, executes code, and returns the runtime to the pool
func (p *Pool) Execute(code string) (string, error) {
	rt, err := p.Get()
	if err != nil {
		return "", err
	}
	defer p.Put(rt)
	return rt.Execute(code)
}

// Stats returns pool statistics
func (p *Pool) Stats() map[string]interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return map[string]interface{}{
		"runtime_type":  p.runtimeType,
		"total_created": p.created,
		"idle":          len(p.idle),
		"max_pool_size": cap(p.idle),
		"closed":        p.closed,
	}
}

// Close destroys idle runtimes and makes further Execute calls fail
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for {
		select {
		case rt := <-p.idle:
			rt.Destroy()
		default:
			return
		}
	}
}
