package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/pdfmultitool/internal/pages"
	"github.com/jackzampolin/pdfmultitool/internal/svcctx"
	"github.com/jackzampolin/pdfmultitool/internal/transform"
)

var (
	appendPrepend       bool
	appendReverseFirst  bool
	appendReverseSecond bool
)

var appendCmd = &cobra.Command{
	Use:   "append FIRST SECOND DEST",
	Short: "Append (or prepend) one document to another",
	Long: `Write FIRST followed by SECOND to DEST. With --prepend, SECOND comes first.

Examples:
  pdfmultitool append report.pdf annex.pdf full.pdf
  pdfmultitool append report.pdf cover.pdf full.pdf --prepend`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		mode := pages.Append
		if appendPrepend {
			mode = pages.Prepend
		}
		res, err := svcctx.TransformerFrom(ctx).Concatenate(transform.ConcatRequest{
			PairRequest: transform.PairRequest{
				First:         args[0],
				Second:        args[1],
				Output:        args[2],
				ReverseFirst:  appendReverseFirst,
				ReverseSecond: appendReverseSecond,
			},
			Mode: mode,
		})
		if err != nil {
			return err
		}
		return svcctx.PrinterFrom(ctx).Print(res)
	},
}

func init() {
	appendCmd.Flags().BoolVar(&appendPrepend, "prepend", false, "place SECOND before FIRST")
	appendCmd.Flags().BoolVar(&appendReverseFirst, "reverse-first", false, "reverse the pages of FIRST")
	appendCmd.Flags().BoolVar(&appendReverseSecond, "reverse-second", false, "reverse the pages of SECOND")

	rootCmd.AddCommand(appendCmd)
}
