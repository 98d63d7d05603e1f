package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/pdfmultitool/internal/svcctx"
	"github.com/jackzampolin/pdfmultitool/internal/transform"
)

var (
	splitReverse bool
	splitDryRun  bool
)

var splitCmd = &cobra.Command{
	Use:   "split INPUT DIR",
	Short: "Split a document into one file per page",
	Long: `Write every page of INPUT to its own file in DIR, named
{name}_001.pdf, {name}_002.pdf, ... DIR must already exist.

Examples:
  pdfmultitool split scan.pdf pages/
  pdfmultitool split scan.pdf pages/ --reverse --dry-run`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		paths, err := svcctx.TransformerFrom(ctx).Split(transform.SplitRequest{
			Input:     args[0],
			OutputDir: args[1],
			Reverse:   splitReverse,
			DryRun:    splitDryRun,
		})
		if err != nil {
			return err
		}
		return svcctx.PrinterFrom(ctx).Print(struct {
			Outputs []string `json:"outputs" yaml:"outputs"`
			DryRun  bool     `json:"dry_run" yaml:"dry_run"`
		}{paths, splitDryRun})
	},
}

func init() {
	splitCmd.Flags().BoolVar(&splitReverse, "reverse", false, "number the pages from the last one")
	splitCmd.Flags().BoolVar(&splitDryRun, "dry-run", false, "list the files that would be written")

	rootCmd.AddCommand(splitCmd)
}
