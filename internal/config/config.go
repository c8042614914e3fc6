package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Settings holds the engine configuration. Zero-config callers should start
// from Default; Load overlays a YAML file on top of the defaults.
type Settings struct {
	Seed int64 `yaml:"seed"`

	// WorldRadius is the generation radius in chunks around the origin.
	WorldRadius int `yaml:"world_radius"`
	// WorldExtent bounds player X/Z positions, in blocks from the origin.
	WorldExtent float32 `yaml:"world_extent"`

	// UngeneratedSolidY is the terrain height band for unloaded cells: a
	// collision query into an unloaded chunk treats cells at or below this
	// height as solid (never fall through ungenerated terrain) and cells
	// above it as passable (free flight over unloaded sky).
	UngeneratedSolidY int `yaml:"ungenerated_solid_y"`

	Gravity          float32 `yaml:"gravity"`
	TerminalVelocity float32 `yaml:"terminal_velocity"` // downward speed cap, positive
	WalkSpeed        float32 `yaml:"walk_speed"`
	FlySpeed         float32 `yaml:"fly_speed"`
	JumpVelocity     float32 `yaml:"jump_velocity"`

	MeshWorkers   int  `yaml:"mesh_workers"`
	MeshQueueSize int  `yaml:"mesh_queue_size"`
	GreedyMeshing bool `yaml:"greedy_meshing"`
}

// Default returns the baseline settings.
func Default() Settings {
	return Settings{
		Seed:              1,
		WorldRadius:       4,
		WorldExtent:       1024,
		UngeneratedSolidY: 96,
		Gravity:           32.0,
		TerminalVelocity:  78.4,
		WalkSpeed:         4.3,
		FlySpeed:          10.9,
		JumpVelocity:      9.4,
		MeshWorkers:       runtime.NumCPU(),
		MeshQueueSize:     256,
		GreedyMeshing:     false,
	}
}

// Load reads a YAML settings file over the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("config %s: %w", path, err)
	}
	s.Normalize()
	return s, nil
}

// Normalize clamps settings to workable ranges.
func (s *Settings) Normalize() {
	if s.WorldRadius < 1 {
		s.WorldRadius = 1
	}
	if s.WorldRadius > 64 {
		s.WorldRadius = 64
	}
	if s.WorldExtent < 16 {
		s.WorldExtent = 16
	}
	if s.Gravity < 0 {
		s.Gravity = 0
	}
	if s.TerminalVelocity < 1 {
		s.TerminalVelocity = 1
	}
	if s.MeshWorkers < 1 {
		s.MeshWorkers = 1
	}
	if s.MeshQueueSize < 16 {
		s.MeshQueueSize = 16
	}
	if s.UngeneratedSolidY < 0 {
		s.UngeneratedSolidY = 0
	}
}
