package cli

import (
	"github.com/spf13/cobra"

	"github.com/qntx/clink/internal/native"
	"github.com/qntx/clink/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the add variants and how each is bound",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	for _, a := range native.Variants() {
		ui.Label(a.Name(), describe(a.Linkage()))
	}
	ui.Label(string(native.LinkageRuntime), describe(native.LinkageRuntime))
	return nil
}

func describe(l native.Linkage) string {
	switch l {
	case native.LinkageSource:
		return "C compiled from inline source"
	case native.LinkageDylib:
		return "prebuilt shared library, linked at build time"
	case native.LinkageStatic:
		return "prebuilt static archive, linked at build time"
	case native.LinkageRuntime:
		return "shared object loaded at run time"
	default:
		return string(l)
	}
}
