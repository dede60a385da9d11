package renderer

import "time"

// Stats summarizes one rendered frame
type Stats struct {
	Width, Height int
	Blocks        int
	Samples       int
	TotalPixels   int
	TotalRays     int64
	RenderTime    time.Duration

	// Workers maps worker ID to its per-worker totals. Serial renders
	// report a single worker 0.
	Workers map[int]*WorkerStats
}

// WorkerStats accumulates the work done by one render worker
type WorkerStats struct {
	Blocks int
	Pixels int
	Busy   time.Duration
}

func newStats(width, height, blocks, samples int) *Stats {
	return &Stats{
		Width:   width,
		Height:  height,
		Blocks:  blocks,
		Samples: samples,
		Workers: make(map[int]*WorkerStats),
	}
}

func (s *Stats) record(res blockResult) {
	s.TotalPixels += res.pixels
	s.TotalRays += int64(res.pixels) * int64(s.Samples)

	w := s.Workers[res.workerID]
	if w == nil {
		w = &WorkerStats{}
		s.Workers[res.workerID] = w
	}
	w.Blocks++
	w.Pixels += res.pixels
	w.Busy += res.elapsed
}

// RaysPerSecond reports the primary-ray throughput of the frame
func (s *Stats) RaysPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.TotalRays) / s.RenderTime.Seconds()
}
