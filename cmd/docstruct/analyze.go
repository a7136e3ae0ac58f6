package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/docstruct/export"
	"github.com/tsawler/docstruct/layout"
)

func analyzeCmd(f *flags) *cobra.Command {
	var format string
	var pageHeadings bool

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a PDF or JSON page file and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			switch format {
			case "json", "markdown", "md", "html":
			default:
				return fmt.Errorf("unknown format %q: want json, markdown or html", format)
			}

			a, err := f.analysis(cmd, args[0])
			if err != nil {
				return err
			}
			report, err := a.Report()
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), report, format, export.MarkdownOptions{PageHeadings: pageHeadings})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json|markdown|html")
	cmd.Flags().BoolVar(&pageHeadings, "page-headings", false, "start each page with a \"## Page N\" line in markdown and html output")
	return cmd
}

func writeReport(w io.Writer, report *layout.Report, format string, opts export.MarkdownOptions) error {
	switch format {
	case "markdown", "md":
		_, err := io.WriteString(w, export.Markdown(report, opts))
		return err
	case "html":
		s, err := export.HTML(report, opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	default:
		return export.JSON(w, report)
	}
}
