package persistence

import (
	"database/sql"
	"fmt"

	"github.com/klauspost/compress/zstd"
	_ "modernc.org/sqlite"

	"voxelcraft/internal/world"
)

const chunkVolume = world.ChunkSizeX * world.ChunkHeight * world.ChunkSizeZ

// Store persists chunk block arrays in a SQLite file, one row per chunk,
// RLE-encoded and zstd-compressed. Geometry is never saved; restored chunks
// come back dirty and are remeshed on the next pass.
type Store struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// Open creates or opens a store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("persistence: open %s: %w", path, err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS chunks (
		seed INTEGER NOT NULL,
		cx   INTEGER NOT NULL,
		cz   INTEGER NOT NULL,
		data BLOB NOT NULL,
		PRIMARY KEY (seed, cx, cz)
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("persistence: init schema: %w", err)
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		db.Close()
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, enc: enc, dec: dec}, nil
}

// SaveWorld writes every generated chunk of the world.
func (s *Store) SaveWorld(w *world.VoxelWorld) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("persistence: begin save: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO chunks (seed, cx, cz, data) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	defer stmt.Close()

	saved := 0
	for _, c := range w.Store().All() {
		if !c.TerrainGenerated() {
			continue
		}
		payload := s.enc.EncodeAll(EncodeRLE(c.CopyBlocks()), nil)
		if _, err := stmt.Exec(w.Seed(), c.Pos.X, c.Pos.Z, payload); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("persistence: save chunk (%d, %d): %w", c.Pos.X, c.Pos.Z, err)
		}
		saved++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("persistence: commit save: %w", err)
	}
	return saved, nil
}

// LoadWorld restores all chunks stored for the world's seed, skipping
// positions that are already loaded. Restored chunks are marked generated
// and dirty.
func (s *Store) LoadWorld(w *world.VoxelWorld) (int, error) {
	rows, err := s.db.Query(`SELECT cx, cz, data FROM chunks WHERE seed = ?`, w.Seed())
	if err != nil {
		return 0, fmt.Errorf("persistence: load: %w", err)
	}
	defer rows.Close()

	loaded := 0
	for rows.Next() {
		var cx, cz int
		var payload []byte
		if err := rows.Scan(&cx, &cz, &payload); err != nil {
			return loaded, err
		}
		pos := world.ChunkPos{X: cx, Z: cz}
		if w.Store().Has(pos) {
			continue
		}
		raw, err := s.dec.DecodeAll(payload, nil)
		if err != nil {
			return loaded, fmt.Errorf("persistence: decompress chunk (%d, %d): %w", cx, cz, err)
		}
		blocks, err := DecodeRLE(raw, chunkVolume)
		if err != nil {
			return loaded, fmt.Errorf("persistence: chunk (%d, %d): %w", cx, cz, err)
		}
		c := world.NewChunk(pos)
		c.SetBlocks(blocks)
		c.FinishGeneration()
		w.Store().Add(pos, c)
		loaded++
	}
	return loaded, rows.Err()
}

// Close releases the database and codec resources.
func (s *Store) Close() error {
	s.enc.Close()
	s.dec.Close()
	return s.db.Close()
}
