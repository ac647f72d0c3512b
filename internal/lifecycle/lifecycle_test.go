package lifecycle

import "testing"

func TestCanTransition(t *testing.T) {
	if !CanTransition(StatusPending, StatusAvailable) {
		t.Fatal("expected pending -> available to be allowed")
	}
	if !CanTransition(StatusPending, StatusRejected) {
		t.Fatal("expected pending -> rejected to be allowed")
	}
	if !CanTransition(StatusAvailable, StatusSold) {
		t.Fatal("expected available -> sold to be allowed")
	}
	if !CanTransition(StatusSold, StatusAvailable) {
		t.Fatal("expected sold -> available to be allowed")
	}
	if !CanTransition(StatusRejected, StatusPending) {
		t.Fatal("expected rejected -> pending to be allowed")
	}
	if CanTransition(StatusSold, StatusPending) {
		t.Fatal("unexpected sold -> pending allowed")
	}
	if CanTransition(StatusRejected, StatusAvailable) {
		t.Fatal("unexpected rejected -> available allowed")
	}
	if CanTransition(StatusPending, StatusSold) {
		t.Fatal("unexpected pending -> sold allowed")
	}
}

func TestSameStatusIsNoOp(t *testing.T) {
	for _, s := range []string{StatusAvailable, StatusPending, StatusSold, StatusRejected} {
		if !CanTransition(s, s) {
			t.Fatalf("expected %s -> %s to be allowed", s, s)
		}
	}
	if CanTransition("archived", "archived") {
		t.Fatal("unknown status should not transition")
	}
}

func TestAdminOnly(t *testing.T) {
	if !AdminOnly(StatusPending) || !AdminOnly(StatusRejected) {
		t.Fatal("expected pending and rejected to be admin gated")
	}
	if AdminOnly(StatusAvailable) || AdminOnly(StatusSold) {
		t.Fatal("available and sold should not be admin gated")
	}
}
