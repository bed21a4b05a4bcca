package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModuleForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		got *testing.T,
		mode Mode,
	) {
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
		if got != nil {
			t.Fatal("production has no test")
		}
		if mode.String() != "production" {
			t.Fatal()
		}
	})
}
