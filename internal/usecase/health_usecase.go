package usecase

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// HealthCheckFunc checks one dependency; nil means healthy.
type HealthCheckFunc func(ctx context.Context) error

type healthUsecase struct {
	checks  map[string]HealthCheckFunc
	timeout time.Duration
}

// NewHealthUsecase reports overall status plus one entry per named check.
func NewHealthUsecase(checks map[string]HealthCheckFunc) HealthUsecase {
	return &healthUsecase{checks: checks, timeout: 2 * time.Second}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	names := make([]string, 0, len(u.checks))
	for name := range u.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]string, len(names))
	var g errgroup.Group
	for i, name := range names {
		i, check := i, u.checks[name]
		g.Go(func() error {
			if err := check(ctx); err != nil {
				results[i] = "down"
				return nil
			}
			results[i] = "ok"
			return nil
		})
	}
	_ = g.Wait()

	out := map[string]string{"status": "ok"}
	for i, name := range names {
		out[name] = results[i]
		if results[i] != "ok" {
			out["status"] = "degraded"
		}
	}
	return out
}
