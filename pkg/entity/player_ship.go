package entity

import (
	"context"
	"image/color"

	"github.com/opd-ai/go-spacefighter/pkg/config"
	"github.com/opd-ai/go-spacefighter/pkg/event"
	"github.com/opd-ai/go-spacefighter/pkg/logging"
	"github.com/opd-ai/go-spacefighter/pkg/physics"
)

// PlayerShip is the keyboard-controlled ship. It tracks a lives counter
// and keeps one life icon per remaining life.
type PlayerShip struct {
	Ship

	velocity         physics.Vector2D
	desiredDirection physics.Vector2D
	responsiveness   float64
	confinedToScreen bool

	lives     int
	texture   Texture
	lifeIcons []Texture

	screen    physics.Vector2D
	settings  config.PlayerConfig
	weapon    config.WeaponConfig
	assets    config.AssetConfig
	resources ResourceManager

	bus    *event.Bus
	logger *logging.Logger
}

// NewPlayerShip creates an inactive player ship armed with the configured
// blaster. Call Initialize before the first frame.
func NewPlayerShip(cfg *config.GameConfig, logger *logging.Logger) *PlayerShip {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	p := &PlayerShip{
		Ship: Ship{
			GameObject: GameObject{
				ID:     GenerateID(),
				Radius: cfg.Player.CollisionRadius,
				State:  StateInactive,
			},
			HitPoints:    cfg.Player.MaxHitPoints,
			MaxHitPoints: cfg.Player.MaxHitPoints,
			Speed:        cfg.Player.Speed,
		},
		responsiveness: physics.Clamp(0, 1, cfg.Player.Responsiveness),
		lives:          cfg.Player.StartingLives,
		screen:         physics.Vector2D{X: float64(cfg.Screen.Width), Y: float64(cfg.Screen.Height)},
		settings:       cfg.Player,
		weapon:         cfg.Weapon,
		assets:         cfg.Assets,
		logger:         logger,
	}
	p.lifeIcons = make([]Texture, p.lives)
	p.AttachWeapon(NewBlaster(cfg.Weapon, TriggerPrimary))

	return p
}

// SetEventBus routes lives transitions to bus; nil disables publishing
func (p *PlayerShip) SetEventBus(bus *event.Bus) {
	p.bus = bus
}

// LoadContent acquires the ship texture, laser sound and life icons from
// resources. Any asset may be missing; the ship then plays without it.
func (p *PlayerShip) LoadContent(resources ResourceManager) {
	p.ConfineToScreen()
	p.SetResponsiveness(p.settings.Responsiveness)
	p.resources = resources
	p.texture = nil

	if resources != nil {
		p.loadTexture()
		p.loadFireSound()
	}

	p.SetPosition(p.SpawnPoint())
	p.rebuildLifeIcons()
}

func (p *PlayerShip) loadTexture() {
	texture, err := p.resources.LoadTexture(p.assets.PlayerTexture)
	if err != nil {
		p.logger.Warn(context.Background(), "player texture unavailable",
			"path", p.assets.PlayerTexture,
			"error", err.Error(),
		)
		return
	}
	p.texture = texture
}

func (p *PlayerShip) loadFireSound() {
	sound, err := p.resources.LoadAudio(p.assets.LaserSound)
	if err != nil {
		p.logger.Warn(context.Background(), "laser sound unavailable",
			"path", p.assets.LaserSound,
			"error", err.Error(),
		)
		return
	}
	sound.SetVolume(p.weapon.SoundVolume)
	if w := p.GetWeapon(p.weapon.Name); w != nil {
		w.SetFireSound(sound)
	}
}

func (p *PlayerShip) loadLifeIcon() Texture {
	if p.resources == nil {
		return nil
	}
	icon, err := p.resources.LoadTexture(p.assets.LifeTexture)
	if err != nil {
		return nil
	}
	return icon
}

func (p *PlayerShip) rebuildLifeIcons() {
	p.lifeIcons = make([]Texture, 0, p.lives)
	for i := 0; i < p.lives; i++ {
		p.lifeIcons = append(p.lifeIcons, p.loadLifeIcon())
	}
}

// Initialize resets the ship to the start of a game: full hit points,
// starting lives, freshly loaded content, placed at startPosition.
func (p *PlayerShip) Initialize(level Level, startPosition physics.Vector2D, resources ResourceManager) {
	p.SetCurrentLevel(level)
	p.HitPoints = p.MaxHitPoints
	p.lives = p.settings.StartingLives
	p.velocity = physics.Zero
	p.desiredDirection = physics.Zero

	p.LoadContent(resources)
	p.SetPosition(startPosition)
	p.Activate()
}

// HandleInput turns the arrow keys into a desired direction and fires the
// primary weapon while space is held. Inactive ships ignore input.
func (p *PlayerShip) HandleInput(input InputState) {
	if !p.IsActive() || input == nil {
		return
	}

	var direction physics.Vector2D
	if input.IsKeyDown(KeyDown) {
		direction.Y++
	}
	if input.IsKeyDown(KeyUp) {
		direction.Y--
	}
	if input.IsKeyDown(KeyRight) {
		direction.X++
	}
	if input.IsKeyDown(KeyLeft) {
		direction.X--
	}

	if direction.X != 0 && direction.Y != 0 {
		direction = direction.Scale(physics.NormalizePiOver4)
	}

	triggers := TriggerNone
	if input.IsKeyDown(KeySpace) {
		triggers |= TriggerPrimary
	}

	p.SetDesiredDirection(direction)
	if triggers != TriggerNone {
		p.FireWeapons(triggers)
	}
}

// Update eases velocity toward the desired direction, moves the ship and
// keeps it on screen when confined.
func (p *PlayerShip) Update(deltaTime float64) {
	if !p.IsActive() {
		return
	}

	p.velocity = physics.BlendVelocity(p.velocity, p.desiredDirection, p.Speed, deltaTime, p.responsiveness)
	p.TranslatePosition(p.velocity)

	if p.confinedToScreen {
		result := physics.Confine(p.Position, p.HalfDimensions(), p.PlayArea())
		p.Position = result.Position
		if result.ClampedX {
			p.velocity.X = 0
		}
		if result.ClampedY {
			p.velocity.Y = 0
		}
	}

	p.Ship.Update(deltaTime)
}

// Draw submits the ship sprite centered on its position followed by one
// scaled icon per remaining life along the top-left of the screen.
func (p *PlayerShip) Draw(batch SpriteBatch) {
	if !p.IsActive() || batch == nil {
		return
	}

	if p.texture != nil {
		batch.Draw(p.texture, p.Position, DrawOptions{
			Color:  color.White,
			Origin: TextureCenter(p.texture),
		})
	}

	scale := physics.Vector2D{X: p.settings.LifeIconScale, Y: p.settings.LifeIconScale}
	for i := 0; i < p.lives && i < len(p.lifeIcons); i++ {
		icon := p.lifeIcons[i]
		if icon == nil {
			continue
		}
		position := physics.Vector2D{
			X: p.settings.LifeIconMargin + float64(i)*p.settings.LifeIconSpacing,
			Y: p.settings.LifeIconMargin,
		}
		batch.Draw(icon, position, DrawOptions{Color: color.White, Scale: scale})
	}
}

// Hit applies damage. A lethal hit costs one life; the ship then either
// respawns at screen center or, out of lives, explodes and stays inactive.
func (p *PlayerShip) Hit(damage float64) {
	if !p.IsActive() {
		return
	}

	p.HitPoints -= damage
	if p.HitPoints > 0 {
		return
	}

	p.dropLife()
	if p.lives <= 0 {
		p.Deactivate()
		p.publish(event.PlayerDestroyed)
		p.gameOver()
		if level := p.CurrentLevel(); level != nil {
			level.SpawnExplosion(&p.GameObject)
		}
		return
	}

	p.respawn(p.ScreenCenter())
}

// respawn restores hit points and content without touching lives
func (p *PlayerShip) respawn(position physics.Vector2D) {
	resources := p.resources
	if level := p.CurrentLevel(); level != nil && level.ResourceManager() != nil {
		resources = level.ResourceManager()
	}

	p.HitPoints = p.MaxHitPoints
	p.velocity = physics.Zero
	p.desiredDirection = physics.Zero
	p.LoadContent(resources)
	p.SetPosition(position)
	p.Activate()

	p.logger.Info(context.Background(), "player respawned",
		"lives", p.lives,
		"x", position.X,
		"y", position.Y,
	)
	p.publish(event.PlayerRespawned)
}

// AddLife grants an extra life and its icon
func (p *PlayerShip) AddLife() {
	p.lives++
	p.lifeIcons = append(p.lifeIcons, p.loadLifeIcon())
	p.publish(event.LifeGained)
}

// RemoveLife takes a life away; the ship deactivates when none remain
func (p *PlayerShip) RemoveLife() {
	if p.lives > 0 {
		p.dropLife()
	}
	if p.lives == 0 {
		p.Deactivate()
	}
}

func (p *PlayerShip) dropLife() {
	p.lives--
	if n := len(p.lifeIcons); n > 0 {
		p.lifeIcons = p.lifeIcons[:n-1]
	}
	p.publish(event.LifeLost)
}

// OnCollisionWithEnemy costs a life outright regardless of hit points
func (p *PlayerShip) OnCollisionWithEnemy() {
	if p.lives == 0 {
		return
	}
	p.RemoveLife()
	if p.lives == 0 {
		p.gameOver()
	}
}

func (p *PlayerShip) gameOver() {
	p.logger.Info(context.Background(), "game over", "ship_id", p.ID)
	p.publish(event.GameOver)
}

func (p *PlayerShip) publish(eventType event.Type) {
	p.bus.Publish(event.NewPlayerEvent(eventType, p, p.lives, p.HitPoints, p.Position.X, p.Position.Y))
}

// SetResponsiveness sets how quickly velocity follows input, clamped to [0, 1]
func (p *PlayerShip) SetResponsiveness(responsiveness float64) {
	p.responsiveness = physics.Clamp(0, 1, responsiveness)
}

// Responsiveness returns the velocity interpolation rate
func (p *PlayerShip) Responsiveness() float64 {
	return p.responsiveness
}

// SetDesiredDirection sets the direction the ship accelerates toward
func (p *PlayerShip) SetDesiredDirection(direction physics.Vector2D) {
	p.desiredDirection = direction
}

// DesiredDirection returns the direction set by the last input
func (p *PlayerShip) DesiredDirection() physics.Vector2D {
	return p.desiredDirection
}

// ConfineToScreen keeps the ship inside the padded screen rectangle
func (p *PlayerShip) ConfineToScreen() {
	p.confinedToScreen = true
}

// SetConfinedToScreen toggles screen confinement
func (p *PlayerShip) SetConfinedToScreen(confined bool) {
	p.confinedToScreen = confined
}

// IsConfinedToScreen reports whether screen confinement is on
func (p *PlayerShip) IsConfinedToScreen() bool {
	return p.confinedToScreen
}

// Velocity returns the per-frame displacement applied by the last Update
func (p *PlayerShip) Velocity() physics.Vector2D {
	return p.velocity
}

// Lives returns the remaining lives
func (p *PlayerShip) Lives() int {
	return p.lives
}

// LifeIcons returns the life icon textures; entries are nil when the icon
// asset was unavailable. The slice must not be modified.
func (p *PlayerShip) LifeIcons() []Texture {
	return p.lifeIcons
}

// Texture returns the ship texture, or nil
func (p *PlayerShip) Texture() Texture {
	return p.texture
}

// HalfDimensions returns half the sprite size, or zero without a texture
func (p *PlayerShip) HalfDimensions() physics.Vector2D {
	return TextureCenter(p.texture)
}

// ScreenCenter returns the middle of the screen
func (p *PlayerShip) ScreenCenter() physics.Vector2D {
	return p.screen.Scale(0.5)
}

// SpawnPoint returns where LoadContent places the ship
func (p *PlayerShip) SpawnPoint() physics.Vector2D {
	return p.ScreenCenter().Add(physics.UnitY.Scale(p.settings.SpawnOffsetY))
}

// PlayArea returns the screen rectangle shrunk by the configured padding
func (p *PlayerShip) PlayArea() physics.Rect {
	return physics.NewRectFromBounds(0, 0, p.screen.X, p.screen.Y).Inset(p.settings.ScreenPadding)
}
