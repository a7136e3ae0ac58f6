package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/docstruct/export"
)

func outlineCmd(f *flags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "outline <file>",
		Short: "Print the heading hierarchy of a PDF or JSON page file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			switch format {
			case "json", "markdown", "md", "html":
			default:
				return fmt.Errorf("unknown format %q: want markdown, html or json", format)
			}

			a, err := f.analysis(cmd, args[0])
			if err != nil {
				return err
			}
			structure, err := a.Outline()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "html":
				s, err := export.OutlineHTML(structure)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			case "json":
				return export.OutlineJSON(out, structure)
			default:
				fmt.Fprint(out, export.OutlineMarkdown(structure))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "markdown", "output format: markdown|html|json")
	return cmd
}
