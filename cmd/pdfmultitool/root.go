package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/pdfmultitool/internal/config"
	"github.com/jackzampolin/pdfmultitool/internal/home"
	"github.com/jackzampolin/pdfmultitool/internal/logging"
	"github.com/jackzampolin/pdfmultitool/internal/output"
	"github.com/jackzampolin/pdfmultitool/internal/pdf"
	"github.com/jackzampolin/pdfmultitool/internal/svcctx"
	"github.com/jackzampolin/pdfmultitool/internal/transform"
	"github.com/jackzampolin/pdfmultitool/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	logLevel     string

	appLogger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pdfmultitool",
	Short: "Page-level PDF operations: zip, append, merge, split, delete, rotate",
	Long: `pdfmultitool rearranges the pages of PDF documents without re-rendering them.

Operations:
  - zip two documents page by page (recto/verso scans)
  - append or prepend one document to another
  - merge any number of documents
  - split a document into one file per page
  - delete or rotate selected pages
  - run a YAML recipe of the above as one batch

Page selections are 1-based: "all", "3", "1,3-5".`,
	Version:      version.GitRelease,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupServices(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appLogger != nil {
			return appLogger.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.pdfmultitool/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "pdfmultitool home directory (default: ~/.pdfmultitool)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "", "output format: yaml or json (default from config)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)",
	)

	rootCmd.AddCommand(versionCmd)
}

// setupServices loads configuration and attaches every service the commands
// use to the command context.
func setupServices(cmd *cobra.Command) error {
	h, err := home.New(homeDir)
	if err != nil {
		return err
	}

	cfgMgr, err := config.NewManager(cfgFile, h.Path())
	if err != nil {
		return err
	}
	cfg := cfgMgr.Get()

	opts := logging.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
		Console:    cmd.ErrOrStderr(),
	}
	if logLevel != "" {
		opts.Level = logLevel
	}
	if cfg.Log.File != "" {
		opts.File = h.LogPath(cfg.Log.File)
	}
	logger, err := logging.New(opts)
	if err != nil {
		return err
	}
	appLogger = logger

	// A level given on the command line wins over later config edits.
	cfgMgr.OnChange(func(c *config.Config) {
		if logLevel != "" {
			return
		}
		if err := logger.SetLevel(c.Log.Level); err != nil {
			logger.Warn("ignoring invalid log level from config", "error", err)
			return
		}
		logger.Info("log level changed", "level", c.Log.Level)
	})

	format := cfg.Output
	if outputFormat != "" {
		format = outputFormat
	}
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	codec, err := pdf.NewCodec(pdf.Options{Validation: cfg.PDF.Validation})
	if err != nil {
		return fmt.Errorf("invalid pdf config: %w", err)
	}

	log := logger.Logger
	if file := cfgMgr.File(); file != "" {
		log.Debug("loaded config", "file", file)
	}

	cmd.SetContext(svcctx.WithServices(cmd.Context(), &svcctx.Services{
		Config:      cfgMgr,
		Logger:      log,
		Home:        h,
		Codec:       codec,
		Transformer: transform.New[pdf.Page, *pdf.Document](codec, log),
		Printer:     output.NewPrinter(cmd.OutOrStdout(), f),
	}))
	return nil
}
