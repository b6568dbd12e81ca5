package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/ragchat/internal/config"
	"github.com/zhubert/ragchat/internal/logger"
)

var (
	skipConfirm bool
	resetConfig bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the debug log and, optionally, saved settings",
	Long: `Removes the ragchat debug log. With --reset-config the saved settings file
is removed too, so the next start uses defaults.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&resetConfig, "reset-config", false, "Also remove the config file")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfgFile := ""
	if resetConfig {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		cfgFile = cfg.Path()
	}
	// Release the log so it can be removed
	logPath := logger.Path()
	logger.Close()
	return runCleanWithReader(cmd.OutOrStdout(), os.Stdin, logPath, cfgFile)
}

// runCleanWithReader allows injecting a reader for testing. An empty
// cfgFile leaves the config alone.
func runCleanWithReader(out io.Writer, input io.Reader, logPath, cfgFile string) error {
	if logPath == "" {
		logPath = logger.DefaultLogPath
	}

	var targets []string
	if fileExists(logPath) {
		targets = append(targets, logPath)
	}
	if cfgFile != "" && fileExists(cfgFile) {
		targets = append(targets, cfgFile)
	}

	if len(targets) == 0 {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will remove:")
	for _, t := range targets {
		fmt.Fprintf(out, "  - %s\n", t)
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(out, input, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	removed := 0
	if ok, err := logger.ClearLog(logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error removing log: %v\n", err)
	} else if ok {
		removed++
	}

	if cfgFile != "" {
		if err := os.Remove(cfgFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("error removing config: %w", err)
		} else if err == nil {
			removed++
		}
	}

	fmt.Fprintf(out, "Removed %d file(s).\n", removed)
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// confirm prompts the user for y/n confirmation
func confirm(out io.Writer, input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
