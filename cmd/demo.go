package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhubert/ragchat/internal/demo"
	"github.com/zhubert/ragchat/internal/demo/scenarios"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
	demoFrames     bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay scripted ragchat sessions",
	Long: `Replay scripted ragchat sessions on a virtual clock.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and print its transcript
  cast      - Generate an asciinema cast file`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available demo scenarios:")
		fmt.Fprintln(out)
		for _, s := range scenarios.All() {
			fmt.Fprintf(out, "  %-15s %s\n", s.Name, s.Description)
		}
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Run a scenario and print its transcript (all scenarios if none given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDemoRun,
}

var demoCastCmd = &cobra.Command{
	Use:   "cast <scenario>",
	Short: "Generate an asciinema cast file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoCast,
}

func init() {
	for _, cmd := range []*cobra.Command{demoRunCmd, demoCastCmd} {
		cmd.Flags().IntVarP(&demoWidth, "width", "W", 0, "Terminal width (scenario default if 0)")
		cmd.Flags().IntVarP(&demoHeight, "height", "H", 0, "Terminal height (scenario default if 0)")
		cmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")
	}
	demoRunCmd.Flags().BoolVar(&demoFrames, "frames", false, "Print captured frames after the transcript")
	demoCastCmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Output file (default <scenario>.cast)")

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	demoCmd.AddCommand(demoCastCmd)
	rootCmd.AddCommand(demoCmd)
}

func getScenario(name string) (*demo.Scenario, error) {
	scenario := scenarios.Get(name)
	if scenario == nil {
		return nil, fmt.Errorf("unknown scenario %q\nRun 'ragchat demo list' to see available scenarios", name)
	}

	// Override dimensions if specified
	if demoWidth > 0 {
		scenario.Width = demoWidth
	}
	if demoHeight > 0 {
		scenario.Height = demoHeight
	}

	return scenario, nil
}

func executeScenario(scenario *demo.Scenario) (*demo.Executor, []demo.Frame, error) {
	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = demoCaptureAll

	executor := demo.NewExecutor(execCfg)
	frames, err := executor.Run(scenario)
	if err != nil {
		return nil, nil, fmt.Errorf("error running scenario %s: %w", scenario.Name, err)
	}
	return executor, frames, nil
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	var selected []*demo.Scenario
	if len(args) == 0 {
		selected = scenarios.All()
	} else {
		scenario, err := getScenario(args[0])
		if err != nil {
			return err
		}
		selected = []*demo.Scenario{scenario}
	}

	out := cmd.OutOrStdout()
	for i, scenario := range selected {
		if i > 0 {
			fmt.Fprintln(out)
		}
		executor, frames, err := executeScenario(scenario)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "== %s: %s\n", scenario.Name, scenario.Description)
		if err := demo.WriteTranscript(out, executor.Transcript()); err != nil {
			return err
		}
		if demoFrames {
			printFrames(out, frames)
		}
	}
	return nil
}

func printFrames(out io.Writer, frames []demo.Frame) {
	fmt.Fprintf(out, "\nCaptured %d frames\n", len(frames))
	for i, f := range frames {
		fmt.Fprintf(out, "\n=== Frame %d (at %v, delay %v) ===\n", i, f.At, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(out, "Annotation: %s\n", f.Annotation)
		}
		fmt.Fprintln(out, f.Content)
	}
}

func runDemoCast(cmd *cobra.Command, args []string) error {
	scenarioName := args[0]
	scenario, err := getScenario(scenarioName)
	if err != nil {
		return err
	}

	_, frames, err := executeScenario(scenario)
	if err != nil {
		return err
	}

	outputFile := demoOutput
	if outputFile == "" {
		outputFile = scenarioName + ".cast"
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	if err := demo.GenerateASCIICast(f, frames, scenario.Width, scenario.Height, "ragchat "+scenario.Name); err != nil {
		return fmt.Errorf("error generating cast file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d frames)\n", outputFile, len(frames))
	fmt.Fprintf(cmd.OutOrStdout(), "Play with: asciinema play %s\n", outputFile)
	return nil
}
