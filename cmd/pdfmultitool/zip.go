package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/pdfmultitool/internal/svcctx"
	"github.com/jackzampolin/pdfmultitool/internal/transform"
)

var (
	zipReverseFirst  bool
	zipReverseSecond bool
)

var zipCmd = &cobra.Command{
	Use:     "zip FIRST SECOND DEST",
	Aliases: []string{"interleave"},
	Short:   "Interleave the pages of two documents",
	Long: `Interleave the pages of two documents: first, second, first, second, ...

Pairing stops at the shorter document; its trailing pages are dropped.
Use it to join the front and back sides of a duplex scan.

Examples:
  pdfmultitool zip odd.pdf even.pdf book.pdf
  pdfmultitool zip front.pdf back.pdf book.pdf --reverse-second`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		res, err := svcctx.TransformerFrom(ctx).Interleave(transform.PairRequest{
			First:         args[0],
			Second:        args[1],
			Output:        args[2],
			ReverseFirst:  zipReverseFirst,
			ReverseSecond: zipReverseSecond,
		})
		if err != nil {
			return err
		}
		return svcctx.PrinterFrom(ctx).Print(res)
	},
}

func init() {
	zipCmd.Flags().BoolVar(&zipReverseFirst, "reverse-first", false, "read the first document back to front")
	zipCmd.Flags().BoolVar(&zipReverseSecond, "reverse-second", false, "read the second document back to front")

	rootCmd.AddCommand(zipCmd)
}
