package runner

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/selimozcann/ReflectHunter/internal/model"
	"github.com/selimozcann/ReflectHunter/internal/scanner"
)

// Config holds settings for the runner.
type Config struct {
	Threads   int
	RateLimit int // requests per second across the whole batch, 0 = unlimited
}

// Runner dispatches concurrent scans with at most Threads in flight.
type Runner struct {
	cfg     Config
	scanner *scanner.Scanner
	log     zerolog.Logger
}

// New creates a new Runner.
func New(cfg Config, sc *scanner.Scanner, log zerolog.Logger) *Runner {
	return &Runner{cfg: cfg, scanner: sc, log: log}
}

// Run scans every target and returns exactly one Outcome per target, index
// for index. Targets are admitted in input order; completion order is up to
// the network. A failed scan fills its own slot and never disturbs the rest
// of the batch. Run returns only after every worker has drained.
func (r *Runner) Run(ctx context.Context, targets []string) []model.Outcome {
	out := make([]model.Outcome, len(targets))
	mu := &sync.Mutex{}

	var limiter *rate.Limiter
	if r.cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(r.cfg.RateLimit), 1)
	}

	type job struct {
		idx    int
		target string
	}

	r.log.Debug().Int("targets", len(targets)).Int("threads", r.cfg.Threads).Int("rate_limit", r.cfg.RateLimit).Msg("dispatch start")

	jobs := make(chan job)
	wg := sync.WaitGroup{}
	for i := 0; i < r.cfg.Threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for jb := range jobs {
				if limiter != nil {
					if err := limiter.Wait(ctx); err != nil {
						return
					}
				}
				res := r.scanner.Scan(ctx, jb.target)
				mu.Lock()
				out[jb.idx] = res
				mu.Unlock()
			}
		}()
	}

	go func() {
		for i, t := range targets {
			if ctx.Err() != nil {
				break
			}
			jobs <- job{idx: i, target: t}
		}
		close(jobs)
	}()

	wg.Wait()
	r.log.Debug().Int("outcomes", len(out)).Msg("dispatch done")
	return out
}
