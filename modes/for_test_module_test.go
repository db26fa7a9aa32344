package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		t *testing.T,
		mode Mode,
	) {
		if mode != ModeTest {
			t.Fatal()
		}
		if mode.ContextName() != "test" {
			t.Fatalf("got %s", mode.ContextName())
		}
	})
}
