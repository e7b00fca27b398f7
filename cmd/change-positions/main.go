package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vbb-change-positions/internal/common/config"
	"github.com/vbb-change-positions/internal/common/db"
	"github.com/vbb-change-positions/internal/common/discord"
	"github.com/vbb-change-positions/internal/common/logger"
	"github.com/vbb-change-positions/internal/directory"
	"github.com/vbb-change-positions/internal/directory/cache"
	"github.com/vbb-change-positions/internal/directory/colors"
	"github.com/vbb-change-positions/internal/directory/offline"
	"github.com/vbb-change-positions/internal/directory/vbbrest"
	"github.com/vbb-change-positions/internal/positions/builder"
	"github.com/vbb-change-positions/internal/positions/writer"
	"github.com/vbb-change-positions/internal/wizard"
)

var version = "1.0.0"

type options struct {
	offlineFile string
	dryRun      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		showError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "change-positions [datafile]",
		Short: "Record where to change between platforms at VBB interchanges",
		Long: `Asks for the lines, tracks and platform positions of one change at an
interchange station and appends the result to an NDJSON data file.

The departure station only selects which lines are offered for the
departing side. Records always name the arrival station as the hub, the
reverse record included, so record changes between two different hub
stations as two separate runs.

Arguments:
    datafile        NDJSON data file path (default: './data.ndjson').`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args, opts)
		},
	}
	cmd.SetVersionTemplate("vbb-change-positions v{{.Version}}\n")
	cmd.Flags().StringVar(&opts.offlineFile, "offline", "", "use a local stations JSON file instead of the VBB API")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the entries without appending them")

	return cmd
}

func run(parent context.Context, args []string, opts options) error {
	// .env is optional for a CLI
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if len(args) == 1 {
		cfg.DataFile = args[0]
	}
	if opts.offlineFile != "" {
		cfg.Directory.StationsFile = opts.offlineFile
	}

	loggerConfig := logger.DefaultLoggerConfig()
	loggerConfig.Level = logger.ParseLogLevel(cfg.Logging.Level)
	loggerConfig.FilePath = cfg.Logging.FilePath
	loggerConfig.File = cfg.Logging.FilePath != ""

	runID := uuid.NewString()
	log := logger.NewFromConfig(loggerConfig).With("run_id", runID)
	log.Info("Change positions wizard starting",
		"version", version,
		"datafile", cfg.DataFile,
		"offline", cfg.Directory.StationsFile != "",
		"dry_run", opts.dryRun)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dir, err := newDirectory(cfg.Directory, log)
	if err != nil {
		return err
	}

	aliases := builder.DefaultAliases()
	if cfg.Lines.AliasesFile != "" {
		if aliases, err = builder.LoadAliases(cfg.Lines.AliasesFile); err != nil {
			return err
		}
	}

	file := writer.NewNDJSONFile(cfg.DataFile, log)
	var mirrors []writer.Sink

	// connect before prompting so a broken database doesn't cost the answers
	if cfg.Database.Enabled && !opts.dryRun {
		database, err := db.New(ctx, cfg.Database.ConnectionString(), log)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		mirrors = append(mirrors, writer.NewPostgres(database, runID))
	}
	sinks := writer.Sinks(file, mirrors...)

	w := wizard.New(wizard.NewTerminal(), dir, colors.Default(), aliases, log)
	entries, err := w.Run(ctx)
	if err != nil {
		log.Warn("Wizard ended without entries", "error", err)
		return err
	}

	ndjson, err := writer.Encode(entries)
	if err != nil {
		return err
	}

	if !opts.dryRun {
		if err := sinks.Write(ctx, entries); err != nil {
			log.Error("Failed to store entries", "error", err)
			return err
		}
		fmt.Println("Appended to " + file.Path())

		if cfg.Notify.DiscordURL != "" {
			if err := discord.NewClient(cfg.Notify.DiscordURL).SendEntries(ctx, runID, entries); err != nil {
				log.Warn("Discord notification failed", "error", err)
			}
		}
	}

	_, err = os.Stdout.Write(ndjson)
	return err
}

func newDirectory(cfg config.DirectoryConfig, log logger.Logger) (directory.Directory, error) {
	var dir directory.Directory
	if cfg.StationsFile != "" {
		d, err := offline.Load(cfg.StationsFile)
		if err != nil {
			return nil, err
		}
		log.Info("Using offline station directory", "path", cfg.StationsFile, "stations", d.Len())
		dir = d
	} else {
		dir = vbbrest.New(cfg.APIURL, cfg.APITimeout, log)
	}

	if cfg.CacheSize > 0 {
		dir = cache.New(dir, cfg.CacheSize, cfg.CacheTTL, log)
	}
	return dir, nil
}

func showError(err error) {
	if os.Getenv("DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
	}
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000"))
	fmt.Fprintln(os.Stderr, red.Render(err.Error()))
}
