package cli

import (
	"strings"

	"github.com/saish1609/timetrack/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands,
// plus the configured user every call is scoped to.
type App struct {
	Timer    service.TimerService
	Entries  service.EntryService
	Tasks    service.TaskService
	Projects service.ProjectService
	Reports  service.ReportService

	// User scopes every operation.
	User string

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "timetrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "timetrack",
		Short:         "Track time against tasks and projects",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Accept snake_case spellings of any flag.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newPauseCmd(app),
		newSwitchCmd(app),
		newStatusCmd(app),
		newTodayCmd(app),
		newWatchCmd(app),
		newTaskCmd(app),
		newProjectCmd(app),
		newEntryCmd(app),
		newReportCmd(app),
		newExportCmd(app),
	)

	return root
}
