package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/getsentry/scopeprof/internal/envutil"
	"github.com/getsentry/scopeprof/profiler"
)

type demoOptions struct {
	unit    time.Duration
	workers int
	format  string
}

func newDemoCmd(config envutil.Config) *cobra.Command {
	opts := demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an instrumented workload and print its call tree",
		Long: `demo calls foo, bar and foo again, each made of nested scopes that sleep
for multiples of --unit, then prints the aggregated call tree. With --workers,
the workload also runs on that many goroutines at once.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, opts)
		},
	}
	cmd.Flags().DurationVar(&opts.unit, "unit", 10*time.Millisecond, "base sleep duration of the workload")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "goroutines running the workload concurrently")
	cmd.Flags().StringVar(&opts.format, "format", config.Format, "summary format (text|json|speedscope)")
	return cmd
}

func runDemo(cmd *cobra.Command, opts demoOptions) error {
	if opts.unit < 0 {
		return fmt.Errorf("--unit must not be negative, got %v", opts.unit)
	}
	if opts.workers < 0 {
		return fmt.Errorf("--workers must not be negative, got %d", opts.workers)
	}
	format, err := profiler.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	w := workload{unit: opts.unit}
	w.run()

	var g errgroup.Group
	for i := 0; i < opts.workers; i++ {
		g.Go(func() error {
			defer profiler.Scope("worker").Exit()
			w.run()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return profiler.WriteSummary(cmd.OutOrStdout(), format)
}

type workload struct {
	unit time.Duration
}

func (w workload) run() {
	w.foo()
	w.bar()
	w.foo()
}

func (w workload) foo() {
	defer profiler.Scope("foo").Exit()
	time.Sleep(2 * w.unit)
	func() {
		defer profiler.Scope("foo-inner").Exit()
		time.Sleep(2 * w.unit)
		profiler.Do("foo-inner-inner", func() { time.Sleep(w.unit) })
		profiler.Do("foo-inner-inner-inner", func() { time.Sleep(w.unit) })
	}()
	func() {
		defer profiler.Scope("foo-double").Exit()
		time.Sleep(2 * w.unit)
		profiler.Do("foo-double-inner", func() { time.Sleep(w.unit) })
	}()
}

func (w workload) bar() {
	defer profiler.Scope("bar").Exit()
	time.Sleep(2 * w.unit)
	profiler.Do("bar-inner", func() { time.Sleep(2 * w.unit) })
}
