package irqwrap

import (
	"testing"

	"quickfeather-go/errcode"
	"quickfeather-go/hw"
)

// event log shared by the fakes so ordering across them is observable.
type recorder struct{ events []string }

type fakeClearer struct {
	rec  *recorder
	irqs []hw.IRQ
}

func (f *fakeClearer) ClearPending(irq hw.IRQ) {
	f.irqs = append(f.irqs, irq)
	f.rec.events = append(f.rec.events, "clear")
}

type slotEntry struct {
	h   hw.Handler
	arg any
}

type fakeVectors struct {
	slots    map[hw.IRQ]*slotEntry
	replaced int
}

func newFakeVectors() *fakeVectors { return &fakeVectors{slots: map[hw.IRQ]*slotEntry{}} }

func (v *fakeVectors) connect(irq hw.IRQ, h hw.Handler, arg any) {
	v.slots[irq] = &slotEntry{h: h, arg: arg}
}

func (v *fakeVectors) Replace(irq hw.IRQ, h hw.Handler) {
	v.replaced++
	e, ok := v.slots[irq]
	if !ok {
		e = &slotEntry{}
		v.slots[irq] = e
	}
	e.h = h
}

func (v *fakeVectors) Handler(irq hw.IRQ) (hw.Handler, bool) {
	e, ok := v.slots[irq]
	if !ok || e.h == nil {
		return nil, false
	}
	return e.h, true
}

func (v *fakeVectors) fire(irq hw.IRQ) {
	e := v.slots[irq]
	e.h(e.arg)
}

const testIRQ hw.IRQ = 3

func TestWrapperRunsOriginalThenClearsOnce(t *testing.T) {
	rec := &recorder{}
	clr := &fakeClearer{rec: rec}
	var gotArg any
	orig := func(arg any) {
		gotArg = arg
		rec.events = append(rec.events, "orig")
	}

	h := WrapAndAck(Chain{IRQ: testIRQ, Original: orig, Clearer: clr})
	ctx := &struct{ n int }{n: 7}
	h(ctx)

	if gotArg != ctx {
		t.Fatalf("original saw %v, want %v", gotArg, ctx)
	}
	if len(rec.events) != 2 || rec.events[0] != "orig" || rec.events[1] != "clear" {
		t.Fatalf("events = %v", rec.events)
	}
	if len(clr.irqs) != 1 || clr.irqs[0] != testIRQ {
		t.Fatalf("clears = %v", clr.irqs)
	}
}

func TestWrapperClearsEvenIfOriginalPanics(t *testing.T) {
	rec := &recorder{}
	clr := &fakeClearer{rec: rec}
	h := WrapAndAck(Chain{IRQ: testIRQ, Original: func(any) { panic("fault") }, Clearer: clr})

	func() {
		defer func() { _ = recover() }()
		h(nil)
	}()
	if len(clr.irqs) != 1 {
		t.Fatalf("clears = %d, want 1", len(clr.irqs))
	}
}

func TestInterceptorAdoptsInstalledHandler(t *testing.T) {
	rec := &recorder{}
	clr := &fakeClearer{rec: rec}
	v := newFakeVectors()
	count := 0
	v.connect(testIRQ, func(arg any) {
		count++
		rec.events = append(rec.events, "orig")
	}, "dev")

	ic := &Interceptor{Vectors: v, Clearer: clr, IRQ: testIRQ}
	if rc := ic.Init(); rc != 0 {
		t.Fatalf("Init rc=%d", rc)
	}
	if !ic.Installed() || ic.Wrapper() == nil {
		t.Fatal("wrapper not installed")
	}

	v.fire(testIRQ)
	if count != 1 || len(clr.irqs) != 1 {
		t.Fatalf("count=%d clears=%d", count, len(clr.irqs))
	}
	if rec.events[0] != "orig" || rec.events[1] != "clear" {
		t.Fatalf("events = %v", rec.events)
	}
}

func TestInterceptorInitTwiceDoesNotDoubleWrap(t *testing.T) {
	clr := &fakeClearer{rec: &recorder{}}
	v := newFakeVectors()
	count := 0
	v.connect(testIRQ, func(any) { count++ }, nil)

	ic := &Interceptor{Vectors: v, Clearer: clr, IRQ: testIRQ}
	ic.Init()
	ic.Init()

	v.fire(testIRQ)
	if count != 1 {
		t.Fatalf("original ran %d times", count)
	}
	if len(clr.irqs) != 1 {
		t.Fatalf("clears = %d, want 1", len(clr.irqs))
	}
	if v.replaced != 2 {
		t.Fatalf("replaced = %d", v.replaced)
	}
}

func TestInterceptorExplicitOriginal(t *testing.T) {
	clr := &fakeClearer{rec: &recorder{}}
	v := newFakeVectors()
	stale := 0
	driver := 0
	v.connect(testIRQ, func(any) { stale++ }, nil)

	ic := &Interceptor{Vectors: v, Clearer: clr, IRQ: testIRQ, Original: func(any) { driver++ }}
	ic.Init()
	v.fire(testIRQ)
	if stale != 0 || driver != 1 {
		t.Fatalf("stale=%d driver=%d", stale, driver)
	}
}

func TestInterceptorWithoutHandlerLeavesSlot(t *testing.T) {
	v := newFakeVectors()
	ic := &Interceptor{Vectors: v, Clearer: &fakeClearer{rec: &recorder{}}, IRQ: testIRQ}
	rc := ic.Init()
	if errcode.FromStatus(rc) != errcode.NoHandler {
		t.Fatalf("rc=%d (%s)", rc, errcode.FromStatus(rc))
	}
	if v.replaced != 0 || ic.Installed() {
		t.Fatal("slot was modified")
	}
}
