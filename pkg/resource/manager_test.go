// pkg/resource/manager_test.go
package resource

import (
	"errors"
	"sync"
	"testing"

	"github.com/opd-ai/go-spacefighter/pkg/entity"
)

type stubTexture struct{ path string }

func (t *stubTexture) Width() float32  { return 16 }
func (t *stubTexture) Height() float32 { return 16 }

type stubSound struct{ path string }

func (s *stubSound) SetVolume(float64) {}
func (s *stubSound) Play()             {}

var errNotFound = errors.New("not found")

// stubLoader serves any path not listed in missing
type stubLoader struct {
	mu      sync.Mutex
	missing map[string]bool
	calls   map[string]int
}

func newStubLoader(missing ...string) *stubLoader {
	l := &stubLoader{missing: make(map[string]bool), calls: make(map[string]int)}
	for _, path := range missing {
		l.missing[path] = true
	}
	return l
}

func (l *stubLoader) record(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls[path]++
	return !l.missing[path]
}

func (l *stubLoader) LoadTexture(path string) (entity.Texture, error) {
	if !l.record(path) {
		return nil, errNotFound
	}
	return &stubTexture{path: path}, nil
}

func (l *stubLoader) LoadAudio(path string) (entity.AudioSample, error) {
	if !l.record(path) {
		return nil, errNotFound
	}
	return &stubSound{path: path}, nil
}

func TestManager_LoadTexture_Caches(t *testing.T) {
	loader := newStubLoader()
	manager := NewManager(loader, nil)

	first, err := manager.LoadTexture("ship.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := manager.LoadTexture("ship.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if first != second {
		t.Error("Expected the cached texture to be returned")
	}
	if loader.calls["ship.png"] != 1 {
		t.Errorf("Expected one backend load, got %d", loader.calls["ship.png"])
	}
}

func TestManager_LoadAudio_Caches(t *testing.T) {
	loader := newStubLoader()
	manager := NewManager(loader, nil)

	first, _ := manager.LoadAudio("laser.wav")
	second, _ := manager.LoadAudio("laser.wav")

	if first == nil || first != second {
		t.Error("Expected the cached sound to be returned")
	}
	if loader.calls["laser.wav"] != 1 {
		t.Errorf("Expected one backend load, got %d", loader.calls["laser.wav"])
	}
}

func TestManager_MissingAsset(t *testing.T) {
	loader := newStubLoader("missing.png", "missing.wav")
	manager := NewManager(loader, nil)

	texture, err := manager.LoadTexture("missing.png")
	if texture != nil {
		t.Error("Expected no texture")
	}
	if !errors.Is(err, errNotFound) {
		t.Errorf("Expected wrapped errNotFound, got %v", err)
	}

	if _, err := manager.LoadAudio("missing.wav"); !errors.Is(err, errNotFound) {
		t.Errorf("Expected wrapped errNotFound, got %v", err)
	}

	// failures are not cached
	manager.LoadTexture("missing.png")
	if loader.calls["missing.png"] != 2 {
		t.Errorf("Expected failed load to be retried, got %d calls", loader.calls["missing.png"])
	}

	stats := manager.Stats()
	if stats.Failures != 3 || stats.Textures != 0 || stats.Sounds != 0 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestManager_NoLoader(t *testing.T) {
	manager := NewManager(nil, nil)

	if _, err := manager.LoadTexture("ship.png"); !errors.Is(err, ErrNoLoader) {
		t.Errorf("Expected ErrNoLoader, got %v", err)
	}
	if _, err := manager.LoadAudio("laser.wav"); !errors.Is(err, ErrNoLoader) {
		t.Errorf("Expected ErrNoLoader, got %v", err)
	}
}

func TestManager_ConcurrentLoads(t *testing.T) {
	manager := NewManager(newStubLoader(), nil)

	var wg sync.WaitGroup
	results := make([]entity.Texture, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = manager.LoadTexture("shared.png")
		}(i)
	}
	wg.Wait()

	for i, texture := range results {
		if texture != results[0] {
			t.Fatalf("result %d differs from the cached texture", i)
		}
	}
	if stats := manager.Stats(); stats.Textures != 1 {
		t.Errorf("Expected 1 cached texture, got %d", stats.Textures)
	}
}
