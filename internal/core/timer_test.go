package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first tick should be due immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("second tick due without time passing")
	}
	if got := fs.Remaining(); got != 100*time.Millisecond {
		t.Fatalf("Remaining = %v, expected 100ms", got)
	}

	clock = clock.Add(60 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("tick due after 60ms at 10 TPS")
	}
	clock = clock.Add(40 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("tick not due after 100ms at 10 TPS")
	}
}

func TestFixedStepUnpaced(t *testing.T) {
	fs := NewFixedStep(0)
	for i := 0; i < 5; i++ {
		if !fs.ShouldStep() {
			t.Fatal("unpaced stepper refused a tick")
		}
	}
	if fs.Remaining() != 0 {
		t.Fatalf("Remaining = %v, expected 0", fs.Remaining())
	}
}
