package entity

import (
	"errors"

	"github.com/opd-ai/go-spacefighter/pkg/config"
	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

var errAssetMissing = errors.New("asset missing")

type fakeTexture struct {
	name          string
	width, height float32
}

func (t *fakeTexture) Width() float32  { return t.width }
func (t *fakeTexture) Height() float32 { return t.height }

type fakeSound struct {
	volume float64
	plays  int
}

func (s *fakeSound) SetVolume(volume float64) { s.volume = volume }
func (s *fakeSound) Play()                    { s.plays++ }

type fakeResources struct {
	textures     map[string]Texture
	sounds       map[string]AudioSample
	textureLoads int
}

func newFakeResources(assets config.AssetConfig) *fakeResources {
	return &fakeResources{
		textures: map[string]Texture{
			assets.PlayerTexture: &fakeTexture{name: "ship", width: 64, height: 48},
			assets.LifeTexture:   &fakeTexture{name: "life", width: 32, height: 32},
		},
		sounds: map[string]AudioSample{
			assets.LaserSound: &fakeSound{volume: 1},
		},
	}
}

func (r *fakeResources) LoadTexture(path string) (Texture, error) {
	r.textureLoads++
	if t, ok := r.textures[path]; ok {
		return t, nil
	}
	return nil, errAssetMissing
}

func (r *fakeResources) LoadAudio(path string) (AudioSample, error) {
	if s, ok := r.sounds[path]; ok {
		return s, nil
	}
	return nil, errAssetMissing
}

type fakeLevel struct {
	resources   ResourceManager
	explosions  []*GameObject
	projectiles []*Projectile
}

func (l *fakeLevel) SpawnExplosion(source *GameObject)      { l.explosions = append(l.explosions, source) }
func (l *fakeLevel) SpawnProjectile(projectile *Projectile) { l.projectiles = append(l.projectiles, projectile) }
func (l *fakeLevel) ResourceManager() ResourceManager       { return l.resources }

type keyInput map[Key]bool

func (k keyInput) IsKeyDown(key Key) bool { return k[key] }

type drawCall struct {
	texture  Texture
	position physics.Vector2D
	opts     DrawOptions
}

type recordingBatch struct {
	calls []drawCall
}

func (b *recordingBatch) Draw(texture Texture, position physics.Vector2D, opts DrawOptions) {
	b.calls = append(b.calls, drawCall{texture: texture, position: position, opts: opts})
}

func testConfig() *config.GameConfig {
	cfg := config.DefaultConfig()
	cfg.Screen.Width = 800
	cfg.Screen.Height = 600
	cfg.Player.MaxHitPoints = 10
	return cfg
}

// newTestPlayer returns an initialized player at (400, 300) inside a fake level
func newTestPlayer() (*PlayerShip, *fakeLevel, *fakeResources) {
	cfg := testConfig()
	resources := newFakeResources(cfg.Assets)
	level := &fakeLevel{resources: resources}

	player := NewPlayerShip(cfg, nil)
	player.Initialize(level, physics.Vector2D{X: 400, Y: 300}, resources)
	return player, level, resources
}
