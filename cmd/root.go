package cmd

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/ragchat/internal/app"
	"github.com/zhubert/ragchat/internal/clipboard"
	"github.com/zhubert/ragchat/internal/config"
	"github.com/zhubert/ragchat/internal/files"
	"github.com/zhubert/ragchat/internal/logger"
	"github.com/zhubert/ragchat/internal/widget"
)

var (
	configPath            string
	watchDir              string
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "ragchat [files...]",
	Short: "Chat with your documents from the terminal",
	Long: `ragchat is a terminal chat client for document question answering.
Files given as arguments, typed into the add-files dialog (ctrl+o), pasted
or dragged onto the terminal, or dropped into the --watch folder are added
to the knowledge base.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ~/.ragchat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVarP(&watchDir, "watch", "w", "", "Add files dropped into this folder")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("ragchat %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("ragchat %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	initial, err := resolveArgs(cmd, args)
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()
	logger.Info("ragchat %s starting, config %s, %d file(s) preselected", version, cfg.Path(), len(initial))

	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard disabled: %v", err)
	}

	m := app.New(cfg, version,
		app.WithInitialFiles(initial),
		app.WithWatchDir(files.ExpandHome(watchDir)),
	)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error: %v", err)
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

// resolveArgs turns file arguments into pending files. Arguments that
// cannot be used are reported on stderr; it is an error only when none
// of them resolve.
func resolveArgs(cmd *cobra.Command, args []string) ([]widget.PendingFile, error) {
	if len(args) == 0 {
		return nil, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("error getting working directory: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	found, err := files.Resolve(ctx, wd, args)
	if err != nil {
		if len(found) == 0 {
			return nil, fmt.Errorf("no usable files: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	return found, nil
}
