package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/pdfmultitool/internal/filelist"
	"github.com/jackzampolin/pdfmultitool/internal/svcctx"
	"github.com/jackzampolin/pdfmultitool/internal/transform"
)

var (
	mergeReverse bool
	mergeSort    bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge INPUT... DEST",
	Short: "Merge any number of documents into one",
	Long: `Concatenate every INPUT in order and write the result to DEST.
With --reverse the documents are taken last to first; the pages inside each
document keep their order. With --sort the inputs are first ordered by their
numeric suffix (part-2.pdf before part-10.pdf).

Examples:
  pdfmultitool merge ch1.pdf ch2.pdf ch3.pdf book.pdf
  pdfmultitool merge --sort part-*.pdf book.pdf`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		last := len(args) - 1

		list := filelist.New()
		for _, in := range args[:last] {
			list.Add(in)
		}
		if mergeSort {
			list.SortByNumber()
		}
		svcctx.LoggerFrom(ctx).Debug("merge order", "files", list.Labels())

		res, err := svcctx.TransformerFrom(ctx).MergeAll(transform.MergeRequest{
			Inputs:  list.Paths(),
			Output:  args[last],
			Reverse: mergeReverse,
		})
		if err != nil {
			return err
		}
		return svcctx.PrinterFrom(ctx).Print(res)
	},
}

func init() {
	mergeCmd.Flags().BoolVar(&mergeReverse, "reverse", false, "merge the documents in reverse order")
	mergeCmd.Flags().BoolVar(&mergeSort, "sort", false, "order inputs by their numeric suffix")

	rootCmd.AddCommand(mergeCmd)
}
