// Package commands is the CLI surface over the task core: thin cobra
// commands that call the services and render their results. No domain
// logic lives here.
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/taskwell/taskwell/internal/config"
	"github.com/taskwell/taskwell/internal/db"
	"github.com/taskwell/taskwell/internal/models"
	"github.com/taskwell/taskwell/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taskwell",
	Short: "A personal task manager",
	Long: `taskwell manages your personal tasks: projects, tags, subtasks,
comments, a trash with timed recovery, and statistics and calendar views
computed from your task history.`,
}

// app bundles the open store and the services for one command invocation.
type app struct {
	cfg       config.Config
	gdb       *gorm.DB
	owner     *models.User
	tasks     *db.TaskService
	lifecycle *db.LifecycleService
	tags      *db.TagService
	projects  *db.ProjectService
	subtasks  *db.SubtaskService
	comments  *db.CommentService
	queries   *db.QueryService
	activity  *db.ActivityService
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	gdb, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	users := db.NewUserService(gdb)
	owner, err := users.Ensure(cfg.Username)
	if err != nil {
		db.Close(gdb)
		return nil, err
	}

	lifecycle := db.NewLifecycleService(gdb)
	lifecycle.Retention = time.Duration(cfg.RetentionDays) * 24 * time.Hour

	return &app{
		cfg:       cfg,
		gdb:       gdb,
		owner:     owner,
		tasks:     db.NewTaskService(gdb),
		lifecycle: lifecycle,
		tags:      db.NewTagService(gdb),
		projects:  db.NewProjectService(gdb),
		subtasks:  db.NewSubtaskService(gdb),
		comments:  db.NewCommentService(gdb),
		queries:   db.NewQueryService(gdb),
		activity:  db.NewActivityService(gdb),
	}, nil
}

// withApp wraps a command function with store setup and teardown.
func withApp(fn func(*app, *cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		if err != nil {
			fail(err)
		}
		defer db.Close(a.gdb)
		fn(a, cmd, args)
	}
}

// fail prints a styled error and exits.
func fail(err error) {
	fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("Error: "+err.Error()))
	os.Exit(1)
}

// resolveTask expands one id-prefix argument, optionally against the
// trash.
func (a *app) resolveTask(arg string, includeTrashed bool) (uuid.UUID, error) {
	return a.queries.ResolveTaskID(a.owner.ID, arg, includeTrashed)
}

// SetVersion sets the version information.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskwell %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(trashCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(subtaskCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(upcomingCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(versionCmd)
}
