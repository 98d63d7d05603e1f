package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/pdfmultitool/internal/pages"
	"github.com/jackzampolin/pdfmultitool/internal/svcctx"
	"github.com/jackzampolin/pdfmultitool/internal/transform"
)

var (
	rotateAngle int
	rotatePages string
)

var rotateCmd = &cobra.Command{
	Use:   "rotate INPUT DEST",
	Short: "Rotate selected pages",
	Long: `Turn the selected pages of INPUT clockwise by --angle degrees, on top of
their current orientation, and write the result to DEST. Negative angles turn
counter-clockwise.

Examples:
  pdfmultitool rotate scan.pdf fixed.pdf --angle 180
  pdfmultitool rotate scan.pdf fixed.pdf --angle -90 --pages 2,4`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if rotateAngle%90 != 0 {
			return fmt.Errorf("angle must be a multiple of 90, got %d", rotateAngle)
		}
		sel, err := pages.ParseSelection(rotatePages)
		if err != nil {
			return err
		}
		res, err := svcctx.TransformerFrom(ctx).RotatePages(transform.RotateRequest{
			Input:  args[0],
			Output: args[1],
			Angle:  rotateAngle,
			Pages:  sel,
		})
		if err != nil {
			return err
		}
		return svcctx.PrinterFrom(ctx).Print(res)
	},
}

func init() {
	rotateCmd.Flags().IntVar(&rotateAngle, "angle", 90, "clockwise rotation in degrees, a multiple of 90")
	rotateCmd.Flags().StringVarP(&rotatePages, "pages", "p", "all", `pages to rotate, e.g. "1,3-5" or "all"`)

	rootCmd.AddCommand(rotateCmd)
}
