package main

import (
	"flag"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"

	"voxelcraft/internal/config"
	"voxelcraft/internal/game"
	"voxelcraft/internal/persistence"
	"voxelcraft/internal/profiling"
)

// Headless driver: generates a world, runs the mesh pipeline and a short
// physics session, and reports vertex/profiling stats. The renderer is an
// external consumer of the chunk geometries; nothing here touches the GPU.
func main() {
	var (
		configPath = flag.String("config", "", "path to YAML settings file")
		seed       = flag.Int64("seed", 0, "world seed (overrides config)")
		radius     = flag.Int("radius", 0, "generation radius in chunks (overrides config)")
		ticks      = flag.Int("ticks", 200, "physics ticks to simulate")
		savePath   = flag.String("save", "", "save chunks to this SQLite file on exit")
		loadPath   = flag.String("load", "", "load chunks from this SQLite file before generating")
		greedy     = flag.Bool("greedy", false, "use the greedy mesher")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *radius != 0 {
		cfg.WorldRadius = *radius
	}
	if *greedy {
		cfg.GreedyMeshing = true
	}
	cfg.Normalize()

	sess := game.NewSession(cfg)
	closer.Bind(func() {
		sess.Dispose()
	})

	if *loadPath != "" {
		st, err := persistence.Open(*loadPath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		n, err := st.LoadWorld(sess.World)
		st.Close()
		if err != nil {
			log.Fatalf("load chunks: %v", err)
		}
		log.Printf("loaded %d chunks from %s", n, *loadPath)
	}

	sess.GenerateTerrain()
	sess.MeshAllSync()
	initial := sess.VertexCount()
	log.Printf("initial mesh pass: %d chunks, %d vertices", sess.World.Store().Len(), initial)

	// Second pass with the full neighbor set known; boundary faces assumed
	// solid while neighbors were missing get corrected here.
	sess.RegenerateAll()
	log.Printf("post-load regeneration: %d vertices (was %d)", sess.VertexCount(), initial)

	const dt = 1.0 / 20.0
	sess.Player.Move(mgl32.Vec3{1, 0, 0})
	for i := 0; i < *ticks; i++ {
		profiling.ResetFrame()
		if i == *ticks/2 {
			sess.Player.SetFlying(true)
			sess.Player.Move(mgl32.Vec3{1, 1, 0})
		}
		sess.Update(dt)
	}
	pos := sess.Player.Position
	log.Printf("player after %d ticks: (%.2f, %.2f, %.2f) onGround=%v flying=%v",
		*ticks, pos.X(), pos.Y(), pos.Z(), sess.Player.OnGround, sess.Player.IsFlying)
	log.Printf("frame profile: %s", profiling.TopN(8))

	if *savePath != "" {
		st, err := persistence.Open(*savePath)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		n, err := st.SaveWorld(sess.World)
		st.Close()
		if err != nil {
			log.Fatalf("save chunks: %v", err)
		}
		log.Printf("saved %d chunks to %s", n, *savePath)
	}

	closer.Close()
}
