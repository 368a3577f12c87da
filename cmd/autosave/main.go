package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tavo0132/nexo-backend-api/internal/autosave"
	"github.com/tavo0132/nexo-backend-api/internal/common/config"
	"github.com/tavo0132/nexo-backend-api/internal/common/git"
	"github.com/tavo0132/nexo-backend-api/internal/common/logger"
	"github.com/tavo0132/nexo-backend-api/internal/common/output"
)

var (
	skipPush bool
	verbose  bool
	quiet    bool
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "autosave [message]",
	Short: "Capture and publish working-tree changes",
	Long: `Capture pending changes in the project working tree as a single commit
and push it to the configured remote.

With no message argument, a timestamped auto-save message is generated.
A clean working tree is a successful no-op: autosave never creates empty
commits and can be run repeatedly.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure logging based on flags
		if verbose {
			logger.SetVerbose(true)
		}
		if quiet {
			logger.SetQuiet(true)
		}
		if noColor {
			output.NoColor()
		}
	},
	Run: runSave,
}

func init() {
	rootCmd.Flags().BoolVar(&skipPush, "skip-push", false, "Commit locally without pushing to the remote")

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSave(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading config: %v", err)
		os.Exit(1)
	}

	if cfg.Log.File {
		if err := logger.Default().EnableFileLogging(); err != nil {
			logger.Warn("file logging disabled: %v", err)
		} else {
			defer logger.Default().Close()
		}
	}

	workDir, err := os.Getwd()
	if err != nil {
		logger.Error("resolving working directory: %v", err)
		os.Exit(1)
	}

	project, err := config.LoadProject(workDir)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	cfg = cfg.Merge(project)

	var message string
	if len(args) == 1 {
		message = args[0]
	}

	runCfg := autosave.RunConfig{
		CommitMessage: message,
		SkipPush:      skipPush,
		Verbose:       verbose,
		Remote:        cfg.Remote,
		Branch:        cfg.Branch,
		Marker:        cfg.Marker,
	}

	runner := git.NewGitRunner(workDir)
	summary, err := autosave.Run(runCfg, runner)
	if err != nil {
		logger.Error("%v", err)
		if hint := autosave.RemediationHint(err); hint != "" {
			logger.Error("Suggestion: %s", hint)
		}
		if errors.Is(err, autosave.ErrCommitFailed) {
			// A missing identity is the most common commit failure
			if _, _, userErr := cfg.GetGitUser(); userErr != nil {
				logger.Error("%v", userErr)
			}
		}
		os.Exit(1)
	}

	autosave.Render(summary)
}
