package registry

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/getsentry/scopeprof/internal/errorutil"
	"github.com/getsentry/scopeprof/internal/nodetree"
	"github.com/getsentry/scopeprof/internal/report"
	"github.com/getsentry/scopeprof/internal/timeutil"
)

var (
	ErrEmptyStack       = fmt.Errorf("%w: exit without a matching enter", errorutil.ErrContractViolation)
	ErrUnbalancedExit   = fmt.Errorf("%w: exit does not match the innermost open scope", errorutil.ErrContractViolation)
	ErrForeignGoroutine = fmt.Errorf("%w: scope exited on another goroutine", errorutil.ErrContractViolation)
	ErrDoubleExit       = fmt.Errorf("%w: scope exited twice", errorutil.ErrContractViolation)
	ErrStaleScope       = fmt.Errorf("%w: scope outlived a registry reset", errorutil.ErrContractViolation)
)

type (
	// Registry aggregates scope timings into a call tree.
	//
	// The tree is shared by every goroutine and guarded by mu. Each goroutine
	// has its own call stack, so scopes entered concurrently on different
	// goroutines never interleave. A node is identified by its label and its
	// enclosing node: the same label under two parents gives two nodes.
	Registry struct {
		mu    sync.Mutex
		tree  *nodetree.Tree
		runID string

		// generation changes on every Reset. Written under mu.
		generation atomic.Uint64
		stacks     sync.Map // map[uint64]*callStack, keyed by goroutine ID

		clock       timeutil.Clock
		logger      zerolog.Logger
		onViolation func(error)
	}

	// Handle ties an Exit to its Enter.
	Handle struct {
		gid        uint64
		node       nodetree.NodeID
		depth      int
		generation uint64
		name       string
	}
)

func New(opts ...Option) *Registry {
	r := &Registry{
		tree:   nodetree.New(),
		runID:  uuid.NewString(),
		clock:  timeutil.System,
		logger: zerolog.Nop(),
	}
	r.onViolation = r.reportViolation
	for _, o := range opts {
		if o != nil {
			o(r)
		}
	}
	return r
}

// Enter opens a scope named name on the calling goroutine. It always pushes
// exactly one frame, whether the node is new or already known.
func (r *Registry) Enter(name string) Handle {
	gid := goroutineID()
	st := r.stack(gid)

	r.mu.Lock()
	gen := r.generation.Load()
	if st.generation != gen {
		if st.depth() > 0 {
			r.mu.Unlock()
			r.violate(fmt.Errorf("registry: %w (entering %q)", ErrStaleScope, name))
		}
		// Reset dropped this goroutine's empty stack after we loaded it.
		st = &callStack{generation: gen}
		r.stacks.Store(gid, st)
	}
	parent := st.parent()
	id, created := r.tree.Resolve(parent, name)
	r.mu.Unlock()

	if created {
		r.logger.Debug().
			Str("scope", name).
			Int32("node", int32(id)).
			Int32("parent", int32(parent)).
			Msg("scope node created")
	}

	depth := st.push(frame{node: id, start: r.clock.Now()})
	return Handle{gid: gid, node: id, depth: depth, generation: gen, name: name}
}

// Exit closes the scope opened by the Enter that returned h. It must be
// called on the same goroutine, after every scope entered since h was closed.
func (r *Registry) Exit(h Handle) {
	end := r.clock.Now()
	gid := goroutineID()
	if gid != h.gid {
		r.violate(fmt.Errorf("registry: %w (scope %q entered on goroutine %d, exited on %d)", ErrForeignGoroutine, h.name, h.gid, gid))
	}

	st, ok := r.loadStack(gid)
	if !ok || st.generation != h.generation {
		if r.generation.Load() != h.generation {
			r.violate(fmt.Errorf("registry: %w (scope %q)", ErrStaleScope, h.name))
		}
		r.violate(fmt.Errorf("registry: %w (scope %q)", ErrEmptyStack, h.name))
	}
	top, ok := st.top()
	if !ok {
		r.violate(fmt.Errorf("registry: %w (scope %q)", ErrEmptyStack, h.name))
	}
	if st.depth() != h.depth || top.node != h.node {
		r.violate(fmt.Errorf("registry: %w (scope %q at depth %d, stack depth %d)", ErrUnbalancedExit, h.name, h.depth, st.depth()))
	}
	elapsed, err := timeutil.Elapsed(top.start, end)
	if err != nil {
		r.violate(fmt.Errorf("registry: %w: scope %q: %w", errorutil.ErrContractViolation, h.name, err))
	}

	st.pop()
	if st.depth() == 0 {
		r.stacks.Delete(gid)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.generation.Load() != h.generation {
		r.violate(fmt.Errorf("registry: %w (scope %q)", ErrStaleScope, h.name))
	}
	r.tree.Record(h.node, elapsed)
}

// Summary returns every node in depth-first order, siblings in first-seen
// order. Scopes still open contribute only their completed invocations.
func (r *Registry) Summary() report.Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	rep := report.Report{
		ID:         r.runID,
		CapturedAt: r.clock.Now(),
		Entries:    make([]report.Entry, 0, r.tree.Len()),
	}
	r.tree.Walk(func(depth int, n *nodetree.Node) {
		rep.Entries = append(rep.Entries, report.Entry{
			Depth:   depth,
			Name:    n.Name,
			Count:   n.Count,
			Elapsed: n.Elapsed,
		})
	})
	return rep
}

// Reset drops every node and every call stack. It must not be called while
// scopes are open; exiting a scope entered before the reset is a violation.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tree.Reset()
	r.runID = uuid.NewString()
	r.generation.Add(1)
	r.stacks.Range(func(k, _ interface{}) bool {
		r.stacks.Delete(k)
		return true
	})
}

// Depth returns the number of scopes open on the calling goroutine.
func (r *Registry) Depth() int {
	st, ok := r.loadStack(goroutineID())
	if !ok {
		return 0
	}
	return st.depth()
}

// Open returns the number of scopes open across all goroutines. Counts of
// other goroutines may already be stale when it returns.
func (r *Registry) Open() int {
	n := 0
	r.stacks.Range(func(_, v interface{}) bool {
		n += int(v.(*callStack).open.Load())
		return true
	})
	return n
}

func (r *Registry) stack(gid uint64) *callStack {
	if st, ok := r.loadStack(gid); ok {
		return st
	}
	st := &callStack{generation: r.generation.Load()}
	r.stacks.Store(gid, st)
	return st
}

func (r *Registry) loadStack(gid uint64) (*callStack, bool) {
	v, ok := r.stacks.Load(gid)
	if !ok {
		return nil, false
	}
	return v.(*callStack), true
}

// violate reports err and panics with it. It never returns.
func (r *Registry) violate(err error) {
	r.onViolation(err)
	panic(err)
}

func (r *Registry) reportViolation(err error) {
	r.logger.Error().Err(err).Msg("scope contract violation")
	sentry.CurrentHub().CaptureException(err)
}
