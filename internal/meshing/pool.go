package meshing

import (
	"context"
	"sync"

	"voxelcraft/internal/world"
)

// job is a queued mesh generation request. The block snapshot is taken on the
// submitting goroutine, so workers never read live chunk data.
type job struct {
	chunk    *world.Chunk
	view     *chunkView
	revision uint64
}

// Result is a finished mesh for a chunk, tagged with the chunk revision the
// snapshot was taken at.
type Result struct {
	Chunk    *world.Chunk
	Revision uint64
	Geometry *world.Geometry
}

// Pool runs mesh generation across worker goroutines. Chunk meshing is
// embarrassingly parallel across chunks; superseded results are discarded at
// apply time (last writer wins), so no cancellation machinery is needed.
type Pool struct {
	mesher  Mesher
	jobs    chan job
	results chan Result
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewPool starts a pool of workers feeding a buffered result channel.
func NewPool(m Mesher, workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		mesher:  m,
		jobs:    make(chan job, queueSize),
		results: make(chan Result, queueSize),
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// Submit snapshots the chunk and queues it for meshing. Returns false when
// the queue is full.
func (p *Pool) Submit(w *world.VoxelWorld, c *world.Chunk) bool {
	j := job{chunk: c, view: newChunkView(w, c), revision: c.Revision()}
	select {
	case p.jobs <- j:
		return true
	default:
		return false
	}
}

// Results delivers finished meshes. Pass each one to Apply on the update
// thread.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Apply installs a finished mesh on its chunk unless the chunk was edited
// after the snapshot was taken, in which case the stale geometry is dropped
// and the chunk stays dirty for the next pass.
func (p *Pool) Apply(r Result) bool {
	if r.Chunk.Revision() != r.Revision {
		r.Geometry.Release()
		return false
	}
	r.Chunk.SetGeometry(r.Geometry)
	return true
}

// Pending returns the number of queued jobs.
func (p *Pool) Pending() int {
	return len(p.jobs)
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case j := <-p.jobs:
			res := Result{
				Chunk:    j.chunk,
				Revision: j.revision,
				Geometry: p.mesher.generateView(j.view),
			}
			select {
			case p.results <- res:
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}
