package app

import (
	"math"
	"sync/atomic"
	"time"
)

// Stats counts what a session did. Counters are atomic so a snapshot can
// be taken from another goroutine while the loop runs.
type Stats struct {
	keys     atomic.Uint64
	commands atomic.Uint64
	rejected atomic.Uint64
	saves    atomic.Uint64

	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64

	startTime time.Time
}

// NewStats creates a zeroed Stats starting now.
func NewStats() *Stats {
	s := &Stats{startTime: time.Now()}
	s.frameMinNs.Store(math.MaxInt64)
	return s
}

// RecordKey records one key event.
func (s *Stats) RecordKey() { s.keys.Add(1) }

// RecordCommand records one executed command.
func (s *Stats) RecordCommand() { s.commands.Add(1) }

// RecordRejected records an insert refused for lack of capacity.
func (s *Stats) RecordRejected() { s.rejected.Add(1) }

// RecordSave records a successful save.
func (s *Stats) RecordSave() { s.saves.Add(1) }

// RecordFrame records the time taken to compute and present a frame.
func (s *Stats) RecordFrame(d time.Duration) {
	ns := d.Nanoseconds()
	s.frameCount.Add(1)
	s.frameTotalNs.Add(ns)

	for {
		old := s.frameMinNs.Load()
		if ns >= old || s.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := s.frameMaxNs.Load()
		if ns <= old || s.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// Snapshot returns the current counts.
func (s *Stats) Snapshot() StatsSnapshot {
	frames := s.frameCount.Load()

	var avg time.Duration
	if frames > 0 {
		avg = time.Duration(s.frameTotalNs.Load() / int64(frames))
	}
	minNs := s.frameMinNs.Load()
	if minNs == math.MaxInt64 {
		minNs = 0
	}

	return StatsSnapshot{
		Uptime:   time.Since(s.startTime),
		Keys:     s.keys.Load(),
		Commands: s.commands.Load(),
		Rejected: s.rejected.Load(),
		Saves:    s.saves.Load(),
		Frames:   frames,
		AvgFrame: avg,
		MinFrame: time.Duration(minNs),
		MaxFrame: time.Duration(s.frameMaxNs.Load()),
	}
}

// StatsSnapshot is a point-in-time view of Stats.
type StatsSnapshot struct {
	Uptime   time.Duration
	Keys     uint64
	Commands uint64
	Rejected uint64
	Saves    uint64
	Frames   uint64
	AvgFrame time.Duration
	MinFrame time.Duration
	MaxFrame time.Duration
}

// Fields returns the snapshot as log fields.
func (s StatsSnapshot) Fields() map[string]any {
	return map[string]any{
		"uptime":   s.Uptime.Round(time.Millisecond),
		"keys":     s.Keys,
		"commands": s.Commands,
		"rejected": s.Rejected,
		"saves":    s.Saves,
		"frames":   s.Frames,
		"avgFrame": s.AvgFrame,
		"maxFrame": s.MaxFrame,
	}
}
