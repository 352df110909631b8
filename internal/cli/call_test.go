package cli

import "testing"

func TestCallCmd_Flags(t *testing.T) {
	names := []string{
		"config", "operand-a", "operand-b", "label", "capacity",
		"lib-dir", "lib", "symbol", "interactive", "verbose",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			if callCmd.Flags().Lookup(name) == nil {
				t.Errorf("missing flag --%s", name)
			}
		})
	}
}

func TestBuildCalls(t *testing.T) {
	t.Run("no variants", func(t *testing.T) {
		if calls := buildCalls(nil); len(calls) != 0 {
			t.Errorf("buildCalls(nil) = %v, want empty", calls)
		}
	})

	t.Run("one call per variant, flag values applied", func(t *testing.T) {
		orig := cFlags
		defer func() { cFlags = orig }()
		cFlags.a, cFlags.b = 5, 6
		cFlags.label = "Ada"
		cFlags.capacity = 128

		calls := buildCalls([]string{"source", "dyload"})
		if len(calls) != 2 {
			t.Fatalf("len = %d, want 2", len(calls))
		}
		for i, variant := range []string{"source", "dyload"} {
			c := calls[i]
			if c.Variant != variant || c.A != 5 || c.B != 6 || c.Label != "Ada" || c.Capacity != 128 {
				t.Errorf("calls[%d] = %+v", i, c)
			}
		}
	})
}
