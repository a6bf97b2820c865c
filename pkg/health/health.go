// Package health runs startup and shutdown checks for the game: assets,
// the running level and memory use. Results are aggregated into a single
// status that callers log.
package health

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/opd-ai/go-spacefighter/pkg/logging"
)

// Status values
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Check is one named probe
type Check interface {
	Name() string
	Check(ctx context.Context) error
}

// Status is the aggregated result of every registered check
type Status struct {
	Status string                     `json:"status"`
	Checks map[string]ComponentStatus `json:"checks"`
}

// ComponentStatus is the result of a single check
type ComponentStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Healthy reports whether every check passed
func (s Status) Healthy() bool {
	return s.Status == StatusHealthy
}

// Checker holds registered checks by name
type Checker struct {
	checks map[string]Check
	mu     sync.RWMutex
}

// NewChecker creates an empty checker
func NewChecker() *Checker {
	return &Checker{
		checks: make(map[string]Check),
	}
}

// AddCheck registers check, replacing any check with the same name
func (c *Checker) AddCheck(check Check) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[check.Name()] = check
}

// RemoveCheck unregisters the check called name
func (c *Checker) RemoveCheck(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.checks, name)
}

// Run executes every check. The status is healthy only when all pass.
func (c *Checker) Run(ctx context.Context) Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status := Status{
		Status: StatusHealthy,
		Checks: make(map[string]ComponentStatus, len(c.checks)),
	}

	for name, check := range c.checks {
		if err := check.Check(ctx); err != nil {
			status.Status = StatusUnhealthy
			status.Checks[name] = ComponentStatus{Status: StatusUnhealthy, Message: err.Error()}
			continue
		}
		status.Checks[name] = ComponentStatus{Status: StatusHealthy}
	}

	return status
}

// Report runs every check and logs the result, one line per failing check.
// It returns an error joining the failures.
func (c *Checker) Report(ctx context.Context, logger *logging.Logger) error {
	status := c.Run(ctx)

	names := make([]string, 0, len(status.Checks))
	for name := range status.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		component := status.Checks[name]
		if component.Status == StatusHealthy {
			continue
		}
		logger.Warn(ctx, "Health check failed", "check", name, "message", component.Message)
		errs = append(errs, fmt.Errorf("%s: %s", name, component.Message))
	}

	logger.Info(ctx, "Health checks complete", "status", status.Status, "checks", len(names))
	return errors.Join(errs...)
}

// LevelCheck fails when the level is not being played
type LevelCheck struct {
	running func() bool
}

// NewLevelCheck creates a check around running
func NewLevelCheck(running func() bool) *LevelCheck {
	return &LevelCheck{running: running}
}

// Name implements Check
func (l *LevelCheck) Name() string {
	return "level"
}

// Check implements Check
func (l *LevelCheck) Check(ctx context.Context) error {
	if !l.running() {
		return fmt.Errorf("level is not running")
	}
	return nil
}

// MemoryCheck fails when heap usage exceeds a limit
type MemoryCheck struct {
	maxMemoryMB    int64
	getMemoryUsage func() int64
}

// NewMemoryCheck creates a memory check. A nil getMemoryUsage reads the
// runtime heap size.
func NewMemoryCheck(maxMemoryMB int64, getMemoryUsage func() int64) *MemoryCheck {
	if getMemoryUsage == nil {
		getMemoryUsage = heapMB
	}
	return &MemoryCheck{
		maxMemoryMB:    maxMemoryMB,
		getMemoryUsage: getMemoryUsage,
	}
}

// Name implements Check
func (m *MemoryCheck) Name() string {
	return "memory"
}

// Check implements Check
func (m *MemoryCheck) Check(ctx context.Context) error {
	currentMB := m.getMemoryUsage()
	if currentMB > m.maxMemoryMB {
		return fmt.Errorf("memory usage %dMB exceeds limit %dMB", currentMB, m.maxMemoryMB)
	}
	return nil
}

func heapMB() int64 {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	return int64(stats.HeapAlloc / (1024 * 1024))
}
