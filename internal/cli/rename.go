package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/namexif/internal/config"
	"github.com/danieljhkim/namexif/internal/engine"
	"github.com/danieljhkim/namexif/internal/fsops"
	"github.com/danieljhkim/namexif/internal/imagefile"
	"github.com/danieljhkim/namexif/internal/logging"
	"github.com/danieljhkim/namexif/internal/planner"
)

// planReporter prints planned renames on stdout, one elided line per rename.
type planReporter struct{}

func (planReporter) PlannedRename(source, target string) {
	fmt.Println(FormatRename(source, target))
}

func runRename(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logging.New(settings.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	loc, err := settings.Location()
	if err != nil {
		return err
	}

	source := "."
	if len(args) > 0 {
		source = args[0]
	}

	fs := fsops.NewRealFS()
	pl := planner.New(fs, imagefile.NewExtractor(), log)
	eng := engine.New(fs, pl, newTerminalConfirmer(os.Stdin, os.Stdout), planReporter{}, log)

	result, err := eng.Run(&engine.RunRequest{
		Source:     source,
		Location:   loc,
		NameFormat: settings.NameFormat,
		DryRun:     settings.DryRun,
		AssumeYes:  settings.AssumeYes,
	})
	if err != nil {
		return err
	}

	switch {
	case result.Renamed == 0 && result.Errors == 0:
		log.Info("nothing to do")
	case result.Errors == 0:
		log.Info(fmt.Sprintf("%d renamed file%s", result.Renamed, plural(result.Renamed)))
	default:
		log.Info(fmt.Sprintf("%d renamed file%s, %d error%s",
			result.Renamed, plural(result.Renamed),
			result.Errors, plural(result.Errors)))
		exitCode = ExitErrors
	}
	return nil
}

func plural(n int) string {
	if n >= 2 {
		return "s"
	}
	return ""
}
