package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/pdfmultitool/internal/recipe"
	"github.com/jackzampolin/pdfmultitool/internal/svcctx"
)

var runWatchConfig bool

var runCmd = &cobra.Command{
	Use:   "run RECIPE",
	Short: "Run a YAML recipe of page operations",
	Long: `Run every step of a YAML recipe in order, stopping at the first failure.
Relative paths in the recipe are resolved against the recipe's directory.

Example recipe:

  name: duplex scan
  steps:
    - op: interleave
      first: front.pdf
      second: back.pdf
      reverse_second: true
      output: book.pdf
    - op: delete
      input: book.pdf
      pages: "1"
      output: book.pdf
    - op: split
      input: book.pdf
      output_dir: pages

Operations: interleave, append (mode: append|prepend), merge, split, delete, rotate.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rec, err := recipe.Load(args[0])
		if err != nil {
			return err
		}

		if runWatchConfig {
			// Lets the log level be raised while a long batch is running.
			svcctx.ConfigFrom(ctx).WatchConfig()
		}

		runner := recipe.NewRunner(svcctx.TransformerFrom(ctx), svcctx.LoggerFrom(ctx))
		results, err := runner.Run(ctx, rec)
		if err != nil {
			// Report what completed before the failure.
			if len(results) > 0 {
				svcctx.PrinterFrom(ctx).Print(results)
			}
			return err
		}
		return svcctx.PrinterFrom(ctx).Print(results)
	},
}

func init() {
	runCmd.Flags().BoolVar(&runWatchConfig, "watch-config", false, "reload the config file while the recipe runs")

	rootCmd.AddCommand(runCmd)
}
