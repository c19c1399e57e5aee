// Package scheduler runs named background jobs on cron patterns.
//
// Every job carries its own guard: while a run is in progress, further
// fires of the same job, scheduled or manual, are skipped. Scheduled runs
// use a context detached from shutdown and are never cancelled; Run waits
// for them before returning.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

var (
	ErrUnknownJob = errors.New("unknown job")
	ErrJobRunning = errors.New("job already running")
)

// JobFunc performs one run of a job for the moment it was fired at.
type JobFunc func(ctx context.Context, at time.Time) error

type job struct {
	name string
	spec string
	run  JobFunc
	mu   sync.Mutex
}

// Scheduler owns the cron loop and the registered jobs.
type Scheduler struct {
	log  *slog.Logger
	cron *cron.Cron
	loc  *time.Location

	mu   sync.RWMutex
	jobs map[string]*job
}

// New creates a scheduler firing in loc.
func New(log *slog.Logger, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	log = log.With("component", "scheduler")
	cl := cronLogger{log: log}
	return &Scheduler{
		log:  log,
		loc:  loc,
		jobs: make(map[string]*job),
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl)),
		),
	}
}

// Register adds a job fired on spec, a standard five-field cron pattern or
// a descriptor such as "@every 1h".
func (s *Scheduler) Register(name, spec string, fn JobFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[name]; ok {
		return fmt.Errorf("register %s: already registered", name)
	}

	j := &job{name: name, spec: spec, run: fn}
	if _, err := s.cron.AddFunc(spec, func() {
		_ = s.execute(context.Background(), j, time.Now().In(s.loc), "schedule")
	}); err != nil {
		return fmt.Errorf("register %s: invalid spec %q: %w", name, spec, err)
	}
	s.jobs[name] = j
	return nil
}

// Trigger runs a job now and waits for it. Returns ErrJobRunning when a run
// of the same job is in progress.
func (s *Scheduler) Trigger(ctx context.Context, name string, at time.Time) error {
	s.mu.RLock()
	j, ok := s.jobs[name]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownJob)
	}
	return s.execute(ctx, j, at.In(s.loc), "manual")
}

// Jobs returns the registered job names with their patterns.
func (s *Scheduler) Jobs() []JobInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]JobInfo, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, JobInfo{Name: j.name, Spec: j.spec})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out
}

// JobInfo describes a registered job.
type JobInfo struct {
	Name string `json:"name"`
	Spec string `json:"spec"`
}

// Run starts the cron loop and blocks until ctx is done. It then stops
// firing and waits for running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	s.log.InfoContext(ctx, "scheduler started", slog.Int("jobs", len(s.Jobs())), slog.String("location", s.loc.String()))

	<-ctx.Done()

	s.log.Info("scheduler stopping")
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
	return nil
}

func (s *Scheduler) execute(ctx context.Context, j *job, at time.Time, trigger string) (err error) {
	log := s.log.With(slog.String("job", j.name), slog.String("trigger", trigger))

	if !j.mu.TryLock() {
		log.WarnContext(ctx, "job still running, fire skipped")
		return fmt.Errorf("%s: %w", j.name, ErrJobRunning)
	}
	defer j.mu.Unlock()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", j.name, r)
		}
		if err != nil {
			log.ErrorContext(ctx, "job failed", slog.String("error", err.Error()), slog.Duration("duration", time.Since(start)))
			return
		}
		log.InfoContext(ctx, "job finished", slog.Duration("duration", time.Since(start)))
	}()

	log.InfoContext(ctx, "job started", slog.Time("at", at))
	return j.run(ctx, at)
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
