package appointment

import (
	"testing"

	"github.com/BruksfildServices01/studio-scheduler/internal/httperr"
)

func TestCanTransition_LegalEdges(t *testing.T) {
	legal := []struct {
		from Status
		to   Status
	}{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusDeclined},
		{StatusPending, StatusCancelled},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
	}

	for _, edge := range legal {
		if err := CanTransition(edge.from, edge.to); err != nil {
			t.Errorf("expected %s -> %s to be legal, got %v", edge.from, edge.to, err)
		}
	}
}

func TestCanTransition_IllegalEdges(t *testing.T) {
	illegal := []struct {
		from Status
		to   Status
	}{
		{StatusPending, StatusCompleted},
		{StatusConfirmed, StatusConfirmed},
		{StatusConfirmed, StatusDeclined},
		{StatusDeclined, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
	}

	for _, edge := range illegal {
		err := CanTransition(edge.from, edge.to)
		if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
			t.Errorf("expected %s -> %s to be rejected, got %v", edge.from, edge.to, err)
		}
	}
}

func TestValidateTransition_DeclineRequiresReason(t *testing.T) {
	err := ValidateTransition(StatusPending, StatusDeclined, "   ")
	if !httperr.IsBusiness(err, httperr.CodeMissingDeclineReason) {
		t.Fatalf("expected missing_decline_reason, got %v", err)
	}

	if err := ValidateTransition(StatusPending, StatusDeclined, "agenda cheia"); err != nil {
		t.Fatalf("expected decline with reason to pass, got %v", err)
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []Status{StatusDeclined, StatusCancelled, StatusCompleted} {
		if !IsTerminal(s) {
			t.Errorf("expected %s to be terminal", s)
		}
	}
	for _, s := range []Status{StatusPending, StatusConfirmed} {
		if IsTerminal(s) {
			t.Errorf("did not expect %s to be terminal", s)
		}
	}
}

func TestIsValid(t *testing.T) {
	if IsValid(Status("archived")) {
		t.Fatal("archived is not a known status")
	}
	if !IsValid(StatusPending) {
		t.Fatal("pending is a known status")
	}
}

func TestNewCancellationToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token := NewCancellationToken()
		if len(token) != 64 {
			t.Fatalf("expected 64 chars, got %d", len(token))
		}
		if seen[token] {
			t.Fatal("token repeated")
		}
		seen[token] = true
	}
}
