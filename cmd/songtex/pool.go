package main

import (
	"runtime"
	"sync"

	songtex "github.com/jvesely/go-songtex"
)

// Compiler is the interface for the per-song compilation service.
type Compiler interface {
	Compile(song songtex.Song) (string, error)
}

// Compile-time interface implementation check.
var _ Compiler = (*songtex.Compiler)(nil)

// Pool abstracts compiler pool operations for testability.
type Pool interface {
	Acquire() Compiler
	Release(Compiler)
	Size() int
}

// CompilerPool hands out compiler instances to batch workers, one per
// worker so tuning changes never race. Instances are created lazily on
// first acquire.
type CompilerPool struct {
	size    int
	opts    []songtex.Option
	sem     chan Compiler
	mu      sync.Mutex
	created int
}

// Compile-time check that CompilerPool implements Pool.
var _ Pool = (*CompilerPool)(nil)

// NewCompilerPool creates a pool with capacity for n compilers built
// with opts.
func NewCompilerPool(n int, opts ...songtex.Option) *CompilerPool {
	if n < 1 {
		n = 1
	}
	return &CompilerPool{
		size: n,
		opts: opts,
		sem:  make(chan Compiler, n),
	}
}

// Acquire gets a compiler from the pool, creating one if needed.
// Blocks if all compilers are in use.
func (p *CompilerPool) Acquire() Compiler {
	select {
	case c := <-p.sem:
		return c
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()
		return songtex.New(p.opts...)
	}
	p.mu.Unlock()

	return <-p.sem
}

// Release returns a compiler to the pool.
func (p *CompilerPool) Release(c Compiler) {
	p.sem <- c
}

// Size returns the pool capacity.
func (p *CompilerPool) Size() int {
	return p.size
}

// resolvePoolSize determines the worker count.
// Priority: explicit flag > GOMAXPROCS-based calculation.
func resolvePoolSize(flagWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}

	available := runtime.GOMAXPROCS(0)
	n := available / 2

	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
