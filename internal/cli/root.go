// Package cli wires the cobra command line to the rename engine and maps run
// outcomes to process exit codes.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/namexif/internal/config"
)

// Process exit classes.
const (
	// ExitOK: nothing to do, or every rename applied cleanly.
	ExitOK = 0

	// ExitErrors: at least one per-file image or rename error.
	ExitErrors = 1

	// ExitFatal: source enumeration failure, unresolved conflicts, or bad
	// configuration.
	ExitFatal = 2
)

// exitCode is set by the run command for non-fatal outcomes.
var exitCode = ExitOK

var rootCmd = &cobra.Command{
	Use:   "namexif [flags] [SOURCE]",
	Short: "Rename image files after their EXIF capture date",
	Long: `namexif renames JPEG and TIFF files so their filenames are derived from the
embedded EXIF capture date, formatted with a strftime template.

SOURCE is a file or directory (default: current directory). The whole batch is
planned and checked for naming conflicts before anything is renamed; a batch
with conflicts is never applied, not even partially.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRename,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("timezone", "z", "", "Timezone the capture dates are interpreted in (default: local)")
	flags.StringP("format", "f", config.DefaultNameFormat, "strftime template for target filenames")
	flags.BoolP("dry-run", "n", false, "Plan and display only, never rename")
	flags.BoolP("assume-yes", "y", false, "Do not prompt for confirmation")
	flags.StringP("log-level", "l", "info", "Log verbosity level")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	exitCode = ExitOK
	if err := rootCmd.Execute(); err != nil {
		PrintError(err.Error())
		return ExitFatal
	}
	return exitCode
}
