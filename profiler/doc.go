/*
Package profiler records how long instrumented scopes take and how often they
run, and prints the resulting call tree.

Mark a scope with one line:

	func parse(src []byte) {
		defer profiler.Scope("parse").Exit()
		...
	}

or wrap a block:

	profiler.Do("load", func() { ... })

Scopes nest: a scope entered while another is open on the same goroutine
becomes its child. Entering the same label under the same parent again adds to
the existing node; the same label under another parent is a separate node.
Each goroutine keeps its own call path, while the tree is shared by the
process.

At the end of the program, print the tree:

	profiler.Summary()

# Configuration

Summary reads its format and colors from the environment (see
internal/envutil): SCOPEPROF_FORMAT selects text, json or speedscope output,
SCOPEPROF_COLOR toggles colors and SCOPEPROF_ENABLED=false turns scopes into
no-ops at runtime.

# Disabling

Build with

	go build -tags noprofile

to compile every function of this package to an empty body.

# Contract violations

Exiting a scope twice, out of order, on another goroutine or after Reset
panics with an error wrapping ErrContractViolation. The violation is logged
and captured by sentry before the panic.
*/
package profiler
