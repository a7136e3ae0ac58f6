// Command docstruct analyzes the column layout and heading structure of PDF
// files, or of page fragments stored as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "docstruct",
		Short:         "Analyze the column layout and heading structure of documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	f.register(root)

	root.AddCommand(analyzeCmd(&f))
	root.AddCommand(outlineCmd(&f))
	return root
}
