// pkg/resource/manager.go
package resource

import (
	"context"
	"errors"
	"sync"

	"github.com/opd-ai/go-spacefighter/pkg/entity"
	"github.com/opd-ai/go-spacefighter/pkg/logging"
)

// ErrNoLoader is returned when a Manager has no backend to load from
var ErrNoLoader = errors.New("no asset loader configured")

// Loader reads assets from a backing store. Implementations decide what a
// texture or sound actually is; the Manager only caches them.
type Loader interface {
	LoadTexture(path string) (entity.Texture, error)
	LoadAudio(path string) (entity.AudioSample, error)
}

// Manager caches assets by path on top of a Loader. Successful loads are
// shared; failed loads are retried on the next request. Manager is safe for
// concurrent use.
type Manager struct {
	loader Loader
	logger *logging.Logger

	mu       sync.RWMutex
	textures map[string]entity.Texture
	sounds   map[string]entity.AudioSample
	failures int
}

// NewManager creates a manager backed by loader
func NewManager(loader Loader, logger *logging.Logger) *Manager {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Manager{
		loader:   loader,
		logger:   logger,
		textures: make(map[string]entity.Texture),
		sounds:   make(map[string]entity.AudioSample),
	}
}

// LoadTexture returns the texture at path, loading it on first use
func (m *Manager) LoadTexture(path string) (entity.Texture, error) {
	m.mu.RLock()
	texture, ok := m.textures[path]
	m.mu.RUnlock()
	if ok {
		return texture, nil
	}

	if m.loader == nil {
		return nil, m.fail("texture", path, ErrNoLoader)
	}
	texture, err := m.loader.LoadTexture(path)
	if err != nil {
		return nil, m.fail("texture", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// another caller may have won the race; keep the first copy
	if cached, ok := m.textures[path]; ok {
		return cached, nil
	}
	m.textures[path] = texture
	m.logger.Debug(context.Background(), "Texture loaded", "path", path)
	return texture, nil
}

// LoadAudio returns the sound at path, loading it on first use
func (m *Manager) LoadAudio(path string) (entity.AudioSample, error) {
	m.mu.RLock()
	sound, ok := m.sounds[path]
	m.mu.RUnlock()
	if ok {
		return sound, nil
	}

	if m.loader == nil {
		return nil, m.fail("audio", path, ErrNoLoader)
	}
	sound, err := m.loader.LoadAudio(path)
	if err != nil {
		return nil, m.fail("audio", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.sounds[path]; ok {
		return cached, nil
	}
	m.sounds[path] = sound
	m.logger.Debug(context.Background(), "Audio loaded", "path", path)
	return sound, nil
}

func (m *Manager) fail(kind, path string, err error) error {
	m.mu.Lock()
	m.failures++
	m.mu.Unlock()

	m.logger.Warn(context.Background(), "Asset load failed",
		"kind", kind,
		"path", path,
		"error", err.Error(),
	)
	return logging.WrapError(err, "load %s %q", kind, path)
}

// Stats returns current cache statistics
func (m *Manager) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Stats{
		Textures: len(m.textures),
		Sounds:   len(m.sounds),
		Failures: m.failures,
	}
}

// Stats contains asset cache statistics
type Stats struct {
	Textures int `json:"textures"`
	Sounds   int `json:"sounds"`
	Failures int `json:"failures"`
}

var _ entity.ResourceManager = (*Manager)(nil)
