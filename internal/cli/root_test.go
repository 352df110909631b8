package cli

import "testing"

func TestRootCmd(t *testing.T) {
	t.Run("use", func(t *testing.T) {
		if rootCmd.Use != "clink" {
			t.Errorf("Use = %q, want 'clink'", rootCmd.Use)
		}
	})

	t.Run("has call command", func(t *testing.T) {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == "call" {
				found = true
				break
			}
		}
		if !found {
			t.Error("missing 'call' subcommand")
		}
	})

	t.Run("has list command", func(t *testing.T) {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == "list" {
				found = true
				break
			}
		}
		if !found {
			t.Error("missing 'list' subcommand")
		}
	})
}
