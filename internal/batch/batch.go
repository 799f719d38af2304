// Package batch runs many independent inputs through a session
// orchestrator. Each input is still traced synchronously; only separate
// inputs run side by side.
package batch

import (
	"bufio"
	"context"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/sortstep/internal/session"
)

// Processor turns one raw input into a result.
type Processor interface {
	Process(raw string) *session.Result
}

// Runner fans inputs out over a bounded number of workers.
type Runner struct {
	proc    Processor
	workers int
}

// New returns a Runner. workers <= 0 uses GOMAXPROCS.
func New(proc Processor, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{proc: proc, workers: workers}
}

// Run processes every input and returns results in input order. Invalid
// inputs produce failed results, not errors; the only error is ctx's.
func (r *Runner) Run(ctx context.Context, inputs []string) ([]*session.Result, error) {
	results := make([]*session.Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, raw := range inputs {
		i, raw := i, raw
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.proc.Process(raw)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary counts outcomes across a batch.
type Summary struct {
	Total    int
	OK       int
	Failed   int
	Steps    int
	Shifts   int
	Messages map[string]int
}

// Summarize tallies results. Messages counts failures per user message.
func Summarize(results []*session.Result) Summary {
	s := Summary{Total: len(results), Messages: map[string]int{}}
	for _, res := range results {
		if res == nil {
			continue
		}
		if !res.OK() {
			s.Failed++
			s.Messages[res.Message]++
			continue
		}
		s.OK++
		if res.Stats != nil {
			s.Steps += res.Stats.Steps
			s.Shifts += res.Stats.Shifts
		}
	}
	return s
}

// ReadInputs reads one raw input per line. Blank lines and lines starting
// with '#' are skipped.
func ReadInputs(r io.Reader) ([]string, error) {
	var inputs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return inputs, nil
}
