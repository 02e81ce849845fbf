package errcode

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatalf("Of(nil) != OK")
	}
	if Of(NoHandler) != NoHandler {
		t.Fatalf("Of(Code) mismatch")
	}
	wrapped := &E{C: TableSealed, Op: "add", Msg: "after run"}
	if Of(wrapped) != TableSealed {
		t.Fatalf("Of(*E) mismatch")
	}
	if wrapped.Error() != "table_sealed: after run" {
		t.Fatalf("E.Error()=%q", wrapped.Error())
	}
	if Of(errors.New("boom")) != Error {
		t.Fatalf("Of(foreign) should be Error")
	}
}

func TestStatusRoundTrip(t *testing.T) {
	if Status(OK) != 0 {
		t.Fatalf("OK must map to 0")
	}
	seen := map[int]Code{}
	for _, c := range []Code{Unsupported, InvalidLevel, InvalidPriority, NilRoutine,
		TableSealed, AlreadyRan, UnknownIRQ, NoHandler, UnknownPad} {
		rc := Status(c)
		if rc >= 0 {
			t.Fatalf("%s maps to non-negative %d", c, rc)
		}
		if prev, dup := seen[rc]; dup {
			t.Fatalf("%s and %s share status %d", c, prev, rc)
		}
		seen[rc] = c
		if FromStatus(rc) != c {
			t.Fatalf("FromStatus(%d)=%s want %s", rc, FromStatus(rc), c)
		}
	}
	if FromStatus(42) != Error {
		t.Fatalf("unknown status should map to Error")
	}
}
