package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcraft/internal/physics"
	"voxelcraft/internal/profiling"
	"voxelcraft/internal/world"
)

// Update advances the player by one fixed timestep: gravity, velocity
// integration, per-axis collision resolution (X, then Y, then Z), ground
// detection and world-bounds clamping. It never fails; every input is
// clamped or defaulted.
func (p *Player) Update(dt float32) {
	defer profiling.Track("player.Update")()

	p.applyWish()

	// Flight fully disables gravity rather than countering it.
	if !p.IsFlying {
		p.Velocity[1] -= p.cfg.Gravity * dt
		if p.Velocity[1] < -p.cfg.TerminalVelocity {
			p.Velocity[1] = -p.cfg.TerminalVelocity
		}
	}

	newPos := p.Position.Add(p.Velocity.Mul(dt))
	hw, h := p.Bounds()
	band := p.cfg.UngeneratedSolidY

	// X axis.
	testX := mgl32.Vec3{newPos.X(), p.Position.Y(), p.Position.Z()}
	if !physics.Collides(testX, hw, h, p.World, band) {
		p.Position[0] = newPos.X()
	} else {
		p.Velocity[0] = 0
	}

	// Y axis. The sweep works from the pre-move height so a fast fall cannot
	// skip over a one-block floor between the old and new positions.
	landed := false
	switch {
	case p.Velocity.Y() < 0:
		ground := physics.FindGroundLevel(p.Position.X(), p.Position.Z(), p.Position.Y(), hw, p.World, band)
		if float64(newPos.Y()) <= float64(ground) && !math.IsInf(float64(ground), -1) {
			p.Position[1] = ground
			p.Velocity[1] = 0
			landed = true
		} else {
			p.Position[1] = newPos.Y()
		}
	case p.Velocity.Y() > 0:
		ceiling := physics.FindCeilingLevel(p.Position.X(), p.Position.Z(), p.Position.Y()+h, hw, p.World, band)
		if float64(newPos.Y())+float64(h) >= float64(ceiling) {
			p.Position[1] = ceiling - h
			p.Velocity[1] = 0
		} else {
			p.Position[1] = newPos.Y()
		}
	}

	// Z axis.
	testZ := mgl32.Vec3{p.Position.X(), p.Position.Y(), newPos.Z()}
	if !physics.Collides(testZ, hw, h, p.World, band) {
		p.Position[2] = newPos.Z()
	} else {
		p.Velocity[2] = 0
	}

	// Ground probe independent of the velocity sweep, so a stationary player
	// on flat ground keeps its flag.
	if p.IsFlying {
		p.OnGround = false
	} else {
		p.OnGround = landed || physics.OnGround(p.Position, hw, h, p.World, band)
	}

	p.clampToWorldBounds()
}

// applyWish converts the pending movement direction into velocity. Horizontal
// speed is set directly; vertical input only applies while flying.
func (p *Player) applyWish() {
	speed := p.cfg.WalkSpeed
	if p.IsFlying {
		speed = p.cfg.FlySpeed
	}

	horiz := mgl32.Vec3{p.wish.X(), 0, p.wish.Z()}
	if l := horiz.Len(); l > 1 {
		horiz = horiz.Mul(1 / l)
	}
	p.Velocity[0] = horiz.X() * speed
	p.Velocity[2] = horiz.Z() * speed

	if p.IsFlying {
		vy := p.wish.Y()
		if vy > 1 {
			vy = 1
		} else if vy < -1 {
			vy = -1
		}
		p.Velocity[1] = vy * speed
	}
}

// Jump gives the player upward velocity when standing on ground.
func (p *Player) Jump() {
	if p.OnGround && !p.IsFlying {
		p.Velocity[1] = p.cfg.JumpVelocity
		p.OnGround = false
	}
}

// clampToWorldBounds hard-clamps the position to the configured world extent
// and the vertical world range, regardless of flight mode.
func (p *Player) clampToWorldBounds() {
	ext := p.cfg.WorldExtent
	if p.Position[0] > ext {
		p.Position[0] = ext
	} else if p.Position[0] < -ext {
		p.Position[0] = -ext
	}
	if p.Position[2] > ext {
		p.Position[2] = ext
	} else if p.Position[2] < -ext {
		p.Position[2] = -ext
	}
	if p.Position[1] < 0 {
		p.Position[1] = 0
	} else if p.Position[1] > world.ChunkHeight {
		p.Position[1] = world.ChunkHeight
	}
}
