package core

import (
	"testing"
	"time"
)

func TestFixedStepFiresImmediatelyThenAtRate(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(100, 0)
	if !fs.ShouldStepAt(start) {
		t.Fatal("first call must fire")
	}
	if fs.ShouldStepAt(start.Add(50 * time.Millisecond)) {
		t.Fatal("fired before a full step elapsed")
	}
	if !fs.ShouldStepAt(start.Add(100 * time.Millisecond)) {
		t.Fatal("did not fire after a full step")
	}
}

func TestFixedStepReset(t *testing.T) {
	fs := NewFixedStep(4)
	now := time.Unix(5, 0)
	fs.ShouldStepAt(now)
	if fs.ShouldStepAt(now.Add(10 * time.Millisecond)) {
		t.Fatal("unexpected step")
	}
	fs.Reset()
	if !fs.ShouldStepAt(now.Add(20 * time.Millisecond)) {
		t.Fatal("Reset must prime the next step")
	}
}
