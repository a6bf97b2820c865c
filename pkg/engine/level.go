// pkg/engine/level.go
package engine

import (
	"context"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/opd-ai/go-spacefighter/pkg/config"
	"github.com/opd-ai/go-spacefighter/pkg/entity"
	"github.com/opd-ai/go-spacefighter/pkg/event"
	"github.com/opd-ai/go-spacefighter/pkg/logging"
	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

// LevelStatus is the lifecycle state of a level
type LevelStatus int

const (
	LevelStatusWaiting LevelStatus = iota
	LevelStatusActive
	LevelStatusEnded
)

// maxDeltaTime caps a single step so a stalled frame cannot tunnel objects
const maxDeltaTime = 0.1

// Level owns everything on screen: the player, drifting enemies, projectiles
// and explosions. It is stepped from a single goroutine.
type Level struct {
	Config      *config.GameConfig
	Player      *entity.PlayerShip
	Enemies     []*entity.EnemyShip
	Projectiles []*entity.Projectile
	Explosions  []*entity.Explosion
	EventBus    *event.Bus
	Status      LevelStatus
	CurrentTick uint64
	ElapsedTime float64 // seconds

	resources  entity.ResourceManager
	logger     *logging.Logger
	rng        *rand.Rand
	spawnTimer float64

	enemyTexture      entity.Texture
	projectileTexture entity.Texture
	explosionTexture  entity.Texture
}

// NewLevel creates a level and its player ship. Call Start before stepping it.
func NewLevel(cfg *config.GameConfig, resources entity.ResourceManager, logger *logging.Logger) *Level {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	level := &Level{
		Config:    cfg,
		EventBus:  event.NewEventBus(),
		resources: resources,
		logger:    logger,
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}

	level.Player = entity.NewPlayerShip(cfg, logger)
	level.Player.SetEventBus(level.EventBus)
	level.registerEventHandlers()

	return level
}

// SetRandomSource replaces the generator used for enemy placement
func (l *Level) SetRandomSource(rng *rand.Rand) {
	l.rng = rng
}

// Start loads level content, places the player and begins play
func (l *Level) Start() {
	l.loadContent()
	l.Player.Initialize(l, l.Player.SpawnPoint(), l.resources)

	l.Enemies = nil
	l.Projectiles = nil
	l.Explosions = nil
	l.spawnTimer = 0
	l.CurrentTick = 0
	l.ElapsedTime = 0
	l.Status = LevelStatusActive

	l.logger.Info(context.Background(), "Level started",
		"lives", l.Player.Lives(),
		"width", l.Config.Screen.Width,
		"height", l.Config.Screen.Height,
	)
	l.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameStarted,
		Source:    l,
	})
}

// Stop ends play without a game over
func (l *Level) Stop() {
	l.endLevel()
}

func (l *Level) loadContent() {
	if l.resources == nil {
		return
	}
	l.enemyTexture = l.optionalTexture(l.Config.Assets.EnemyTexture)
	l.projectileTexture = l.optionalTexture(l.Config.Assets.ProjectileTexture)
	l.explosionTexture = l.optionalTexture(l.Config.Assets.ExplosionTexture)
}

func (l *Level) optionalTexture(path string) entity.Texture {
	texture, err := l.resources.LoadTexture(path)
	if err != nil {
		return nil
	}
	return texture
}

// ResourceManager returns the manager the level loads content from
func (l *Level) ResourceManager() entity.ResourceManager {
	return l.resources
}

// ScreenSize returns the screen dimensions in pixels
func (l *Level) ScreenSize() physics.Vector2D {
	return physics.Vector2D{X: float64(l.Config.Screen.Width), Y: float64(l.Config.Screen.Height)}
}

// Bounds returns the full screen rectangle
func (l *Level) Bounds() physics.Rect {
	size := l.ScreenSize()
	return physics.NewRectFromBounds(0, 0, size.X, size.Y)
}

// IsOver reports whether the level has ended
func (l *Level) IsOver() bool {
	return l.Status == LevelStatusEnded
}

// SpawnExplosion leaves an explosion where source was
func (l *Level) SpawnExplosion(source *entity.GameObject) {
	explosion := entity.NewExplosion(source, entity.DefaultExplosionDuration)
	explosion.Texture = l.explosionTexture
	l.Explosions = append(l.Explosions, explosion)

	l.EventBus.Publish(event.NewEntityEvent(event.ExplosionSpawned, l,
		uint64(explosion.SourceID), explosion.Position.X, explosion.Position.Y))
}

// SpawnProjectile adds a fired projectile to the level
func (l *Level) SpawnProjectile(projectile *entity.Projectile) {
	projectile.SetCurrentLevel(l)
	l.Projectiles = append(l.Projectiles, projectile)

	l.EventBus.Publish(event.NewEntityEvent(event.ProjectileFired, l,
		uint64(projectile.OwnerID), projectile.Position.X, projectile.Position.Y))
}

// SpawnEnemy adds an enemy at position
func (l *Level) SpawnEnemy(position physics.Vector2D) *entity.EnemyShip {
	enemy := entity.NewEnemyShip(l.Config.Enemies, position)
	enemy.Texture = l.enemyTexture
	enemy.SetCurrentLevel(l)
	l.Enemies = append(l.Enemies, enemy)

	l.EventBus.Publish(event.NewEntityEvent(event.EnemySpawned, l,
		uint64(enemy.ID), position.X, position.Y))
	return enemy
}

// HandleInput forwards the frame's input to the player
func (l *Level) HandleInput(input entity.InputState) {
	if l.Status != LevelStatusActive {
		return
	}
	l.Player.HandleInput(input)
}

// Update advances the level by deltaTime seconds
func (l *Level) Update(deltaTime float64) {
	if l.Status != LevelStatusActive {
		return
	}
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}

	l.ElapsedTime += deltaTime
	l.updateEntities(deltaTime)
	l.detectCollisions()
	l.cleanupInactiveEntities()
	l.CurrentTick++
}

// updateEntities moves every object and spawns due enemies
func (l *Level) updateEntities(deltaTime float64) {
	l.Player.Update(deltaTime)
	l.spawnEnemies(deltaTime)

	bounds := l.Bounds()
	for _, enemy := range l.Enemies {
		enemy.Update(deltaTime, bounds)
	}
	for _, projectile := range l.Projectiles {
		projectile.Update(deltaTime, bounds)
	}
	for _, explosion := range l.Explosions {
		explosion.Update(deltaTime)
	}
}

// spawnEnemies drops a new enemy above the screen every spawn interval
func (l *Level) spawnEnemies(deltaTime float64) {
	interval := l.Config.Enemies.SpawnIntervalSeconds
	if interval <= 0 {
		return
	}

	l.spawnTimer += deltaTime
	for l.spawnTimer >= interval {
		l.spawnTimer -= interval
		l.SpawnEnemy(l.randomSpawnPoint())
	}
}

func (l *Level) randomSpawnPoint() physics.Vector2D {
	radius := l.Config.Enemies.Radius
	width := l.ScreenSize().X - 2*radius
	x := radius
	if width > 0 {
		x += l.rng.Float64() * width
	}
	return physics.Vector2D{X: x, Y: -radius}
}

func (l *Level) detectCollisions() {
	l.processProjectileEnemyCollisions()
	l.processEnemyPlayerCollisions()
}

// processProjectileEnemyCollisions damages enemies hit by player fire
func (l *Level) processProjectileEnemyCollisions() {
	for _, projectile := range l.Projectiles {
		if !projectile.IsActive() {
			continue
		}
		for _, enemy := range l.Enemies {
			if !l.canProjectileHitEnemy(projectile, enemy) {
				continue
			}
			if projectile.GetCollider().Collides(enemy.GetCollider()) {
				l.processEnemyDamage(enemy, projectile)
				break
			}
		}
	}
}

func (l *Level) canProjectileHitEnemy(projectile *entity.Projectile, enemy *entity.EnemyShip) bool {
	return enemy.IsActive() && projectile.OwnerID != enemy.ID
}

func (l *Level) processEnemyDamage(enemy *entity.EnemyShip, projectile *entity.Projectile) {
	projectile.Deactivate()
	enemy.Hit(projectile.Damage)

	l.EventBus.Publish(event.NewCollisionEvent(l, uint64(enemy.ID), uint64(projectile.ID)))
	if !enemy.IsActive() {
		l.EventBus.Publish(event.NewEntityEvent(event.EnemyDestroyed, l,
			uint64(enemy.ID), enemy.Position.X, enemy.Position.Y))
	}
}

// processEnemyPlayerCollisions rams the player with any overlapping enemy.
// The enemy is destroyed; the player takes the enemy's collision damage.
func (l *Level) processEnemyPlayerCollisions() {
	for _, enemy := range l.Enemies {
		if !l.Player.IsActive() {
			return
		}
		if !enemy.IsActive() || !enemy.GetCollider().Collides(l.Player.GetCollider()) {
			continue
		}

		l.EventBus.Publish(event.NewCollisionEvent(l, uint64(enemy.ID), uint64(l.Player.ID)))
		enemy.Hit(enemy.HitPoints)
		l.EventBus.Publish(event.NewEntityEvent(event.EnemyDestroyed, l,
			uint64(enemy.ID), enemy.Position.X, enemy.Position.Y))
		l.Player.Hit(enemy.CollisionDamage)
	}
}

// cleanupInactiveEntities drops objects that left play this frame
func (l *Level) cleanupInactiveEntities() {
	l.Enemies = keepActive(l.Enemies)
	l.Projectiles = keepActive(l.Projectiles)
	l.Explosions = keepActive(l.Explosions)
}

func keepActive[T interface{ IsActive() bool }](objects []T) []T {
	kept := objects[:0]
	for _, o := range objects {
		if o.IsActive() {
			kept = append(kept, o)
		}
	}
	clear(objects[len(kept):])
	return kept
}

// Draw submits the frame back to front; the player and its life icons last
func (l *Level) Draw(batch entity.SpriteBatch) {
	for _, enemy := range l.Enemies {
		enemy.Draw(batch)
	}
	if l.projectileTexture != nil {
		origin := entity.TextureCenter(l.projectileTexture)
		for _, projectile := range l.Projectiles {
			if projectile.IsActive() {
				batch.Draw(l.projectileTexture, projectile.Position, entity.DrawOptions{
					Color:  color.White,
					Origin: origin,
				})
			}
		}
	}
	for _, explosion := range l.Explosions {
		explosion.Draw(batch)
	}
	l.Player.Draw(batch)
}

func (l *Level) registerEventHandlers() {
	l.EventBus.Subscribe(event.GameOver, l.handleGameOverEvent)
}

// handleGameOverEvent ends the level once the player is out of lives
func (l *Level) handleGameOverEvent(e event.Event) {
	if _, ok := e.(*event.PlayerEvent); !ok {
		return
	}
	l.logger.Info(context.Background(), "Game over",
		"tick", l.CurrentTick,
		"elapsed_seconds", l.ElapsedTime,
	)
	l.endLevel()
}

func (l *Level) endLevel() {
	if l.Status == LevelStatusEnded {
		return
	}
	l.Status = LevelStatusEnded
	l.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameEnded,
		Source:    l,
	})
}

var _ entity.Level = (*Level)(nil)
