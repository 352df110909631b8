package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clink",
	Short: "One C add function, four ways to bind it",
	Long: `clink calls the same C-compatible add function through four linkage
paths: C source compiled into the binary, a prebuilt shared library, a
prebuilt static archive, and a shared object loaded at run time.

Each call hands the callee a labeled buffer and prints the greeting the
callee writes back along with the numeric sum. The prebuilt libraries
must exist under csrc/build; see csrc/README.md.`,
}

func Execute() error {
	return rootCmd.Execute()
}
