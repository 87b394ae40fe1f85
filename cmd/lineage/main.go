package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/lineage"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath   string
		baseURL      string
		familyID     string
		rootID       string
		showDeceased bool
		width        int
		height       int
		logLevel     string
		debug        bool
		script       string
		exitAfter    bool
	)

	cmd := &cobra.Command{
		Use:   "lineage",
		Short: "Interactive family tree viewer",
		Long: `lineage fetches a family tree from a genealogy backend and draws it on a
pannable, zoomable canvas. Drag to pan, scroll or pinch to zoom, click a person
to center them, and press D to toggle deceased people.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := lineage.LoadConfig(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("base-url") {
				cfg.BaseURL = baseURL
			}
			if flags.Changed("family") {
				cfg.FamilyID = familyID
			}
			if flags.Changed("root") {
				cfg.RootID = rootID
			}
			if flags.Changed("show-deceased") {
				cfg.ShowDeceased = &showDeceased
			}
			if flags.Changed("width") {
				cfg.Window.Width = width
			}
			if flags.Changed("height") {
				cfg.Window.Height = height
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("debug") {
				cfg.Debug = debug
			}
			if flags.Changed("script") {
				cfg.Script = script
			}
			if flags.Changed("exit-after-script") {
				cfg.ExitAfterScript = exitAfter
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := lineage.NewLogger(os.Stderr, cfg.LogLevel)
			return lineage.Run(cfg, logger)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML config file")
	f.StringVar(&baseURL, "base-url", "", "backend origin, e.g. http://localhost:8000")
	f.StringVar(&familyID, "family", "", "family id (env FAMILY_ID)")
	f.StringVar(&rootID, "root", "", "root person id (env ROOT_ID)")
	f.BoolVar(&showDeceased, "show-deceased", lineage.DefaultShowDeceased, "include deceased people")
	f.IntVar(&width, "width", 0, "window width")
	f.IntVar(&height, "height", 0, "window height")
	f.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	f.BoolVar(&debug, "debug", false, "log per-pass draw statistics")
	f.StringVar(&script, "script", "", "JSON input script to run")
	f.BoolVar(&exitAfter, "exit-after-script", false, "close the window when the script finishes")

	return cmd
}
