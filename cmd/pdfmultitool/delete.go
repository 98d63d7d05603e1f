package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/pdfmultitool/internal/pages"
	"github.com/jackzampolin/pdfmultitool/internal/svcctx"
	"github.com/jackzampolin/pdfmultitool/internal/transform"
)

var deletePages string

var deleteCmd = &cobra.Command{
	Use:   "delete INPUT DEST",
	Short: "Delete selected pages",
	Long: `Write INPUT without the selected pages to DEST. Pages past the end of
the document are ignored. Deleting every page writes an empty document.

Examples:
  pdfmultitool delete scan.pdf clean.pdf --pages 1
  pdfmultitool delete scan.pdf clean.pdf --pages 2,5-7`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		sel, err := pages.ParseSelection(deletePages)
		if err != nil {
			return err
		}
		res, err := svcctx.TransformerFrom(ctx).DeletePages(transform.DeleteRequest{
			Input:  args[0],
			Output: args[1],
			Pages:  sel,
		})
		if err != nil {
			return err
		}
		return svcctx.PrinterFrom(ctx).Print(res)
	},
}

func init() {
	deleteCmd.Flags().StringVarP(&deletePages, "pages", "p", "", `pages to delete, e.g. "1,3-5" or "all"`)
	deleteCmd.MarkFlagRequired("pages")

	rootCmd.AddCommand(deleteCmd)
}
