package player

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelcraft/internal/config"
	"voxelcraft/internal/physics"
	"voxelcraft/internal/world"
)

// Player is the physics-driven actor colliding against the voxel grid. It is
// created once per world and updated once per fixed timestep by the game
// loop.
type Player struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	OnGround bool
	IsFlying bool

	World *world.VoxelWorld

	cfg  config.Settings
	wish mgl32.Vec3 // desired movement direction, consumed each tick
}

// New creates a player standing at the given position.
func New(w *world.VoxelWorld, cfg config.Settings, pos mgl32.Vec3) *Player {
	return &Player{Position: pos, World: w, cfg: cfg}
}

// Bounds returns the player's collision half-width and height.
func (p *Player) Bounds() (halfWidth, height float32) {
	return physics.PlayerHalfWidth, physics.PlayerHeight
}

// Move sets the desired movement direction for subsequent ticks. The X/Z
// components steer horizontal movement; Y only applies while flying.
func (p *Player) Move(dir mgl32.Vec3) {
	p.wish = dir
}

// SetFlying toggles flight mode. Entering flight cancels vertical velocity.
func (p *Player) SetFlying(flying bool) {
	p.IsFlying = flying
	if flying {
		p.Velocity[1] = 0
		p.OnGround = false
	}
}

// Eye returns the camera anchor position.
func (p *Player) Eye() mgl32.Vec3 {
	return mgl32.Vec3{p.Position.X(), p.Position.Y() + 1.62, p.Position.Z()}
}
