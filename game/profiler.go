package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrProfileCooldown is returned when a capture was taken too recently
	ErrProfileCooldown = errors.New("profile capture on cooldown")

	// ErrProfiling is returned while a capture is still running
	ErrProfiling = errors.New("profile capture already running")
)

// Profiler captures a CPU profile and an execution trace when frames spike
type Profiler struct {
	mu              sync.Mutex
	wg              sync.WaitGroup
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
	log             *zap.Logger
}

// NewProfiler creates a new profiler writing into dir
func NewProfiler(dir string, log *zap.Logger) *Profiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Profiler{
		captureCooldown: 10 * time.Second, // Don't capture more than once every 10 seconds
		profilesDir:     dir,
		captureDuration: 5 * time.Second,
		log:             log,
	}
}

// SetCaptureDuration changes how long each capture runs
func (p *Profiler) SetCaptureDuration(d time.Duration) {
	p.mu.Lock()
	p.captureDuration = d
	p.mu.Unlock()
}

// CaptureProfile starts a capture in the background. It returns an error
// wrapping ErrProfileCooldown or ErrProfiling when a capture cannot start.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.lastCaptureTime.IsZero() && time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("%w (last capture %v ago)", ErrProfileCooldown, time.Since(p.lastCaptureTime).Round(time.Millisecond))
	}
	if p.isProfiling {
		return ErrProfiling
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	timestamp := time.Now().Format("20060102-150405")
	baseName := fmt.Sprintf("frame-spike-%s-%s", timestamp, reason)
	duration := p.captureDuration

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName, duration); err != nil {
				p.log.Warn("cpu profile", zap.Error(err))
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName, duration); err != nil {
				p.log.Warn("trace", zap.Error(err))
			}
		}()
		wg.Wait()

		p.summarize(baseName)
	}()

	return nil
}

// Wait blocks until any running capture finishes
func (p *Profiler) Wait() {
	p.wg.Wait()
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) captureCPUProfile(baseName string, duration time.Duration) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(duration)
	pprof.StopCPUProfile()

	p.log.Info("cpu profile saved", zap.String("path", profilePath))
	return nil
}

func (p *Profiler) captureTrace(baseName string, duration time.Duration) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(duration)
	trace.Stop()

	p.log.Info("trace saved", zap.String("path", tracePath))
	return nil
}

// summarize logs where the capture went and the heap state at the end of it
func (p *Profiler) summarize(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(profilePath)
	if err != nil {
		p.log.Warn("could not stat profile", zap.Error(err))
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.log.Info("profile captured",
		zap.String("profile", profilePath),
		zap.Int64("bytes", info.Size()),
		zap.String("view", "go tool pprof -http=:8080 "+profilePath),
		zap.Uint64("heap_alloc_kb", m.HeapAlloc/1024),
		zap.Uint32("num_gc", m.NumGC),
		zap.Uint64("heap_objects", m.HeapObjects))
}
