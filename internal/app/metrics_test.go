package app

import (
	"errors"
	"testing"
	"time"
)

func TestMetrics_Frames(t *testing.T) {
	m := NewMetrics()
	m.RecordFrame(2 * time.Millisecond)
	m.RecordFrame(4 * time.Millisecond)

	s := m.Snapshot()
	if s.FrameCount != 2 {
		t.Errorf("FrameCount = %d, expected 2", s.FrameCount)
	}
	if s.AvgFrameTime != 3*time.Millisecond {
		t.Errorf("AvgFrameTime = %v, expected 3ms", s.AvgFrameTime)
	}
	if s.MaxFrameTime != 4*time.Millisecond {
		t.Errorf("MaxFrameTime = %v, expected 4ms", s.MaxFrameTime)
	}
	if fps := s.AvgFPS(); fps < 333 || fps > 334 {
		t.Errorf("AvgFPS = %f, expected ~333", fps)
	}
}

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()
	m.RecordKey(true)
	m.RecordKey(false)
	m.RecordEdit()
	m.RecordSave(nil)
	m.RecordSave(errors.New("disk full"))
	m.RecordResize()

	s := m.Snapshot()
	if s.KeyCount != 2 || s.UnboundKeys != 1 {
		t.Errorf("keys = %d/%d, expected 2/1", s.KeyCount, s.UnboundKeys)
	}
	if s.EditCount != 1 {
		t.Errorf("EditCount = %d, expected 1", s.EditCount)
	}
	if s.SaveCount != 1 || s.SaveFailures != 1 {
		t.Errorf("saves = %d/%d, expected 1/1", s.SaveCount, s.SaveFailures)
	}
	if s.ResizeCount != 1 {
		t.Errorf("ResizeCount = %d, expected 1", s.ResizeCount)
	}
}

func TestMetrics_EmptySnapshot(t *testing.T) {
	s := NewMetrics().Snapshot()
	if s.AvgFrameTime != 0 || s.AvgFPS() != 0 {
		t.Error("empty metrics should report zero averages")
	}
}
