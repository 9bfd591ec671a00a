package bridge

import (
	"errors"
	"testing"
)

func TestRequirementTotal(t *testing.T) {
	for _, op := range AllOps() {
		r := op.Requirement()
		if r != MainThread && r != AnyThread {
			t.Errorf("op %v has requirement %v outside the known set", op, r)
		}
		if op.String() == "unknown" {
			t.Errorf("op %d has no name", int(op))
		}
	}
}

func TestRequirementClasses(t *testing.T) {
	main := []Op{OpShowPrintDialog, OpCaptureImage, OpPickFile, OpShareFile}
	any := []Op{OpReadPickedFile, OpStoreSecret, OpLoadSecret, OpDeleteSecret}

	for _, op := range main {
		if op.Requirement() != MainThread {
			t.Errorf("%v: want main-thread, got %v", op, op.Requirement())
		}
	}
	for _, op := range any {
		if op.Requirement() != AnyThread {
			t.Errorf("%v: want any-thread, got %v", op, op.Requirement())
		}
	}
	if len(main)+len(any) != len(AllOps()) {
		t.Fatalf("class lists cover %d ops, registry has %d", len(main)+len(any), len(AllOps()))
	}
}

func TestUnknownOpRestrictive(t *testing.T) {
	if Op(999).Requirement() != MainThread {
		t.Error("unknown op must default to the restrictive requirement")
	}
}

func TestGuardRejectsOffMainUIOps(t *testing.T) {
	offMain := NewGuardWithProbe(func() bool { return false })
	onMain := NewGuardWithProbe(func() bool { return true })

	for _, op := range AllOps() {
		err := offMain.Check(op)
		switch op.Requirement() {
		case MainThread:
			if !errors.Is(err, ErrMainThreadRequired) {
				t.Errorf("%v off main: want ErrMainThreadRequired, got %v", op, err)
			}
		case AnyThread:
			if err != nil {
				t.Errorf("%v off main: want nil, got %v", op, err)
			}
		}
		if err := onMain.Check(op); err != nil {
			t.Errorf("%v on main: want nil, got %v", op, err)
		}
	}
}
