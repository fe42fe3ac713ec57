package symcalc_test

import (
	"errors"
	"testing"

	symcalc "github.com/njchilds90/symcalc"
)

func TestArena_AllocSequential(t *testing.T) {
	t.Parallel()
	a := symcalc.NewArenaSize(8)
	h1 := must(t)(a.Int(1))
	h2 := must(t)(a.Int(2))
	if h1 == h2 {
		t.Fatal("distinct allocations must get distinct handles")
	}
	if a.Len() != 2 {
		t.Errorf("Len: want 2, got %d", a.Len())
	}
}

func TestArena_FreeThenAtFails(t *testing.T) {
	t.Parallel()
	a := symcalc.NewArena()
	h := must(t)(a.Int(7))
	if err := a.Free(h); err != nil {
		t.Fatal(err)
	}
	if _, err := a.At(h); !errors.Is(err, symcalc.ErrInvalidIndex) {
		t.Errorf("At after Free: want ErrInvalidIndex, got %v", err)
	}
}

func TestArena_DoubleFreeFails(t *testing.T) {
	t.Parallel()
	a := symcalc.NewArena()
	h := must(t)(a.Int(7))
	if err := a.Free(h); err != nil {
		t.Fatal(err)
	}
	if err := a.Free(h); !errors.Is(err, symcalc.ErrInvalidIndex) {
		t.Errorf("double Free: want ErrInvalidIndex, got %v", err)
	}
}

func TestArena_LIFOReuse(t *testing.T) {
	t.Parallel()
	a := symcalc.NewArenaSize(8)
	h1 := must(t)(a.Int(1))
	h2 := must(t)(a.Int(2))
	if err := a.Free(h1); err != nil {
		t.Fatal(err)
	}
	if err := a.Free(h2); err != nil {
		t.Fatal(err)
	}
	r1 := must(t)(a.Int(3))
	r2 := must(t)(a.Int(4))
	if r1 != h2 || r2 != h1 {
		t.Errorf("want most-recently-freed slot first: got %d,%d from freed %d,%d", r1, r2, h1, h2)
	}
}

func TestArena_Exhaustion(t *testing.T) {
	t.Parallel()
	a := symcalc.NewArenaSize(2)
	must(t)(a.Int(1))
	must(t)(a.Int(2))
	if _, err := a.Int(3); !errors.Is(err, symcalc.ErrOutOfMemory) {
		t.Errorf("want ErrOutOfMemory, got %v", err)
	}
}

func TestArena_FreeMakesRoom(t *testing.T) {
	t.Parallel()
	a := symcalc.NewArenaSize(2)
	h := must(t)(a.Int(1))
	must(t)(a.Int(2))
	if err := a.Free(h); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Int(3); err != nil {
		t.Errorf("alloc after Free should succeed, got %v", err)
	}
}

func TestArena_Clear(t *testing.T) {
	t.Parallel()
	a := symcalc.NewArenaSize(4)
	h := must(t)(a.Symbol("x"))
	must(t)(a.Int(2))
	a.Clear()
	if a.Len() != 0 {
		t.Errorf("Len after Clear: want 0, got %d", a.Len())
	}
	if _, err := a.At(h); !errors.Is(err, symcalc.ErrInvalidIndex) {
		t.Errorf("stale handle after Clear: want ErrInvalidIndex, got %v", err)
	}
	// The arena stays usable at full capacity.
	for i := 0; i < 4; i++ {
		must(t)(a.Int(int64(i)))
	}
}

func TestArena_AtOutOfRange(t *testing.T) {
	t.Parallel()
	a := symcalc.NewArena()
	for _, h := range []symcalc.Handle{symcalc.InvalidHandle, -5, 0, 99} {
		if _, err := a.At(h); !errors.Is(err, symcalc.ErrInvalidIndex) {
			t.Errorf("At(%d): want ErrInvalidIndex, got %v", h, err)
		}
	}
}

func TestArena_CallValidatesFunctionKind(t *testing.T) {
	t.Parallel()
	a := symcalc.NewArena()
	x := must(t)(a.Symbol("x"))
	if _, err := a.Call(symcalc.FuncKind(99), x); err == nil {
		t.Error("Call with unknown function kind should fail")
	}
}

func TestArena_CapReportsLimit(t *testing.T) {
	t.Parallel()
	a := symcalc.NewArenaSize(17)
	if a.Cap() != 17 {
		t.Errorf("Cap: want 17, got %d", a.Cap())
	}
}
