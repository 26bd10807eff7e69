package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pfrederiksen/mba-calendar/internal/calendar"
	"github.com/pfrederiksen/mba-calendar/internal/config"
	"github.com/pfrederiksen/mba-calendar/internal/feed"
	"github.com/pfrederiksen/mba-calendar/internal/league"
	"github.com/pfrederiksen/mba-calendar/internal/logger"
	"github.com/pfrederiksen/mba-calendar/internal/match"
	"github.com/pfrederiksen/mba-calendar/internal/scraper"
	"github.com/pfrederiksen/mba-calendar/internal/server"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitNoGames = 2
)

const (
	envConfig = "MBA_CALENDAR_CONFIG"
	envListen = "MBA_CALENDAR_LISTEN"
)

// options holds the flags shared by all commands
type options struct {
	configPath string
	logLevel   string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mba-calendar",
		Short: "Serve MBA league schedules as iCalendar feeds",
		Long: `A tool that scrapes MBA league schedule pages and turns one team's
matches into an iCalendar feed, either over HTTP or as a file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv(envConfig), "Path to a YAML config file (or env: "+envConfig+")")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: DEBUG, INFO, WARN or ERROR (overrides config)")

	cmd.AddCommand(
		newServeCmd(opts),
		newExportCmd(opts),
		newMatchesCmd(opts),
		newLeaguesCmd(opts),
	)

	return cmd
}

// load reads and validates the configuration and installs the logger
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	level, _ := logger.ParseLevel(cfg.LogLevel)
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))

	return cfg, nil
}

// newService wires the configured collaborators into a feed.Service
func newService(cfg *config.Config) (*feed.Service, error) {
	table, err := league.NewTable(cfg.Leagues)
	if err != nil {
		return nil, fmt.Errorf("building league table: %w", err)
	}
	builder, err := calendar.NewBuilder(cfg.Calendar())
	if err != nil {
		return nil, fmt.Errorf("creating calendar builder: %w", err)
	}
	client := scraper.NewWithOptions(cfg.Source.BaseURL, cfg.Source.UserAgent, cfg.Source.Timeout)

	return feed.NewService(table, client, cfg.Locators, builder), nil
}

func newServeCmd(opts *options) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP calendar feed server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}

			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			if level, _ := logger.ParseLevel(cfg.LogLevel); level != logger.LevelDebug {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(svc).Run(ctx, cfg.Listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", os.Getenv(envListen), "Listen address (or env: "+envListen+"; overrides config)")

	return cmd
}

// scheduleFlags selects the schedule page a command reads
type scheduleFlags struct {
	league   string
	team     string
	htmlPath string
}

func (f *scheduleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.league, "league", "l", "", "League name (e.g., halloffame) or competition id")
	cmd.Flags().StringVarP(&f.team, "team", "t", "", "Team name, matched exactly (required)")
	cmd.Flags().StringVar(&f.htmlPath, "html", "", "Read a saved schedule page instead of fetching")
	cmd.MarkFlagRequired("team")
}

func (f *scheduleFlags) validate() error {
	if f.league == "" && f.htmlPath == "" {
		return fmt.Errorf("--league is required unless --html is given")
	}
	return nil
}

// matches returns the team's matches from the saved page or the live schedule
func (f *scheduleFlags) matches(ctx context.Context, svc *feed.Service) ([]match.Record, error) {
	if f.htmlPath != "" {
		page, err := os.ReadFile(f.htmlPath)
		if err != nil {
			return nil, fmt.Errorf("reading schedule page: %w", err)
		}
		return svc.Extract(page, f.team)
	}
	return svc.Matches(ctx, f.league, f.team)
}

// calendar builds the team's feed from the saved page or the live schedule
func (f *scheduleFlags) calendar(ctx context.Context, svc *feed.Service) (*calendar.Feed, error) {
	if f.htmlPath != "" {
		page, err := os.ReadFile(f.htmlPath)
		if err != nil {
			return nil, fmt.Errorf("reading schedule page: %w", err)
		}
		return svc.CalendarFromPage(page, f.team)
	}
	return svc.Calendar(ctx, f.league, f.team)
}

func newExportCmd(opts *options) *cobra.Command {
	var (
		sched  scheduleFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a team's calendar as an .ics file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sched.validate(); err != nil {
				return err
			}
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			cal, err := sched.calendar(cmd.Context(), svc)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return cal.SerializeTo(cmd.OutOrStdout())
			}

			if err := writeFile(output, cal); err != nil {
				return err
			}

			logger.Info("Calendar exported", logger.Fields{
				"team":   sched.team,
				"events": len(cal.Events),
				"output": output,
			})
			return nil
		},
	}

	sched.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

// writeFile writes the serialized calendar to path
func writeFile(path string, cal *calendar.Feed) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := cal.SerializeTo(file); err != nil {
		file.Close()
		return fmt.Errorf("writing calendar: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}

func newMatchesCmd(opts *options) *cobra.Command {
	var (
		sched   scheduleFlags
		format  string
		order   string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Print a team's matches as extracted from the schedule page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sched.validate(); err != nil {
				return err
			}
			outFormat, err := parseFormat(format)
			if err != nil {
				return err
			}
			sortOrder, err := parseSortOrder(order)
			if err != nil {
				return err
			}

			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			svc, err := newService(cfg)
			if err != nil {
				return err
			}

			records, err := sched.matches(cmd.Context(), svc)
			if err != nil {
				return err
			}

			loc, err := time.LoadLocation(cfg.Feed.TimeZone)
			if err != nil {
				return fmt.Errorf("loading time zone: %w", err)
			}
			sortMatches(records, sortOrder, loc)

			result := &OutputResult{
				GeneratedAt: time.Now().UTC(),
				League:      sched.league,
				Team:        sched.team,
				Matches:     records,
				MatchCount:  len(records),
			}
			return WriteOutput(cmd.OutOrStdout(), result, outFormat, verbose)
		},
	}

	sched.register(cmd)
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&order, "sort", string(SortByPage), "Sort order: page, date or venue")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Show scores and event descriptions")

	return cmd
}

func newLeaguesCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "leagues",
		Short: "List the configured leagues",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := parseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			table, err := league.NewTable(cfg.Leagues)
			if err != nil {
				return err
			}
			return WriteLeagues(cmd.OutOrStdout(), table.Leagues(), outFormat)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")

	return cmd
}

func parseFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
	return format, nil
}

// ExitCode maps a command error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, match.ErrNoGames):
		return ExitNoGames
	default:
		return ExitError
	}
}

// run executes the root command with args and returns the exit status
func run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}

// Execute runs the CLI
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
