package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelcraft/internal/config"
	"voxelcraft/internal/meshing"
	"voxelcraft/internal/player"
	"voxelcraft/internal/profiling"
	"voxelcraft/internal/world"
)

// Session ties the world, the player and the mesh pipeline together. A single
// logical update thread drives both mesh regeneration and player physics once
// per tick; mesh generation itself fans out over the worker pool.
type Session struct {
	World  *world.VoxelWorld
	Player *player.Player

	cfg      config.Settings
	mesher   meshing.Mesher
	pool     *meshing.Pool
	inFlight map[world.ChunkPos]bool
}

// NewSession creates a world from the configured seed and spawns the player
// on the terrain surface at the origin.
func NewSession(cfg config.Settings) *Session {
	w := world.NewVoxelWorld(cfg.Seed)

	var m meshing.Mesher = meshing.FaceMesher{}
	if cfg.GreedyMeshing {
		m = meshing.GreedyMesher{}
	}

	spawnY := float32(w.Generator().HeightAt(0, 0) + 1)
	p := player.New(w, cfg, mgl32.Vec3{0.5, spawnY, 0.5})

	return &Session{
		World:    w,
		Player:   p,
		cfg:      cfg,
		mesher:   m,
		pool:     meshing.NewPool(m, cfg.MeshWorkers, cfg.MeshQueueSize),
		inFlight: make(map[world.ChunkPos]bool),
	}
}

// GenerateTerrain populates the configured radius around the origin.
func (s *Session) GenerateTerrain() {
	defer profiling.Track("game.GenerateTerrain")()
	s.World.GenerateArea(world.ChunkPos{}, s.cfg.WorldRadius)
}

// Update advances one tick: player physics, then the mesh pipeline (apply
// finished meshes, queue newly dirty chunks).
func (s *Session) Update(dt float32) {
	s.Player.Update(dt)
	s.PumpMeshes()
}

// PumpMeshes drains finished mesh results and submits dirty chunks that are
// not already in flight. Stale results are dropped by the pool; their chunks
// stay dirty and get resubmitted here.
func (s *Session) PumpMeshes() {
	defer profiling.Track("game.PumpMeshes")()
	for {
		select {
		case r := <-s.pool.Results():
			delete(s.inFlight, r.Chunk.Pos)
			s.pool.Apply(r)
			continue
		default:
		}
		break
	}
	for _, c := range s.World.DirtyChunks() {
		if s.inFlight[c.Pos] {
			continue
		}
		if s.pool.Submit(s.World, c) {
			s.inFlight[c.Pos] = true
		}
	}
}

// MeshAllSync regenerates every dirty chunk on the calling goroutine. Used at
// startup and by tools that want deterministic completion.
func (s *Session) MeshAllSync() {
	for _, c := range s.World.DirtyChunks() {
		c.SetGeometry(s.mesher.Generate(s.World, c))
	}
}

// RegenerateAll forces every loaded chunk dirty and remeshes synchronously.
// Run once a loading batch completes, so boundary faces meshed against
// missing neighbors are corrected with the full neighbor set known.
func (s *Session) RegenerateAll() {
	s.World.MarkAllDirty()
	s.MeshAllSync()
}

// VertexCount sums the vertices of all chunk geometries.
func (s *Session) VertexCount() int {
	total := 0
	for _, c := range s.World.Store().All() {
		total += c.Geometry().VertexCount()
	}
	return total
}

// Dispose shuts down the mesh pool and releases the world.
func (s *Session) Dispose() {
	s.pool.Shutdown()
	s.World.Dispose()
}
