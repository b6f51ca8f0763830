package problem

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestDescriptor_Chain(t *testing.T) {
	root := NewError(0, "  connection reset  ")
	mid := WrapError(502, " upstream failed ", root)
	top := WrapError(404, " Not found ", mid)

	t.Run("nil while exposure is off", func(t *testing.T) {
		d := FromError(400, top)
		if chain := d.Chain(); chain != nil {
			t.Errorf("Chain() = %v, want nil", chain)
		}
	})

	t.Run("nil for a literal source", func(t *testing.T) {
		d := New(400, "Bad input").SetIncludeStackTrace(true)
		if chain := d.Chain(); chain != nil {
			t.Errorf("Chain() = %v, want nil", chain)
		}
	})

	t.Run("walks top-level down to the root cause", func(t *testing.T) {
		d := FromError(400, top).SetIncludeStackTrace(true)

		chain := d.Chain()
		if len(chain) != 3 {
			t.Fatalf("len(Chain()) = %d, want 3", len(chain))
		}

		wantCodes := []int{404, 502, 0}
		wantMessages := []string{"Not found", "upstream failed", "connection reset"}
		for i, entry := range chain {
			if entry.Code != wantCodes[i] {
				t.Errorf("chain[%d].Code = %d, want %d", i, entry.Code, wantCodes[i])
			}
			if entry.Message != wantMessages[i] {
				t.Errorf("chain[%d].Message = %q, want %q", i, entry.Message, wantMessages[i])
			}
			if len(entry.Trace) == 0 {
				t.Errorf("chain[%d].Trace is empty, want captured frames", i)
			}
		}
	})

	t.Run("single link", func(t *testing.T) {
		d := FromError(400, NewError(404, "gone")).SetIncludeStackTrace(true)
		if chain := d.Chain(); len(chain) != 1 {
			t.Fatalf("len(Chain()) = %d, want 1", len(chain))
		}
	})
}

func TestLogProblem(t *testing.T) {
	logger := zaptest.NewLogger(t)

	// Exercised for both variants; LogProblem must not alter resolution.
	d := FromError(400, WrapError(404, " Not found ", NewError(0, "root"))).SetIncludeStackTrace(true)
	LogProblem(logger, d)
	if d.Errors() != "Not found" {
		t.Errorf("Errors() after logging = %q, want %q", d.Errors(), "Not found")
	}

	LogProblem(logger, New(503, "try later"))
}
