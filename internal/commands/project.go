package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskwell/taskwell/internal/tui"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		desc, _ := cmd.Flags().GetString("desc")
		color, _ := cmd.Flags().GetString("color")
		project, err := a.projects.Create(a.owner.ID, args[0], desc, color)
		if err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Created project ") + project.Name)
	}),
}

var projectListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List projects",
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		projects, err := a.projects.List(a.owner.ID)
		if err != nil {
			fail(err)
		}
		if len(projects) == 0 {
			fmt.Println(tui.MutedStyle.Render("No projects yet."))
			return
		}
		for _, project := range projects {
			line := fmt.Sprintf("%s %s",
				tui.MutedStyle.Render(shortID(project.ID)), project.Name)
			if project.Description != "" {
				line += tui.MutedStyle.Render(" — " + project.Description)
			}
			fmt.Println(line)
		}
	}),
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a project, unassigning its tasks",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		project, err := findProjectByName(a, args[0])
		if err != nil {
			fail(err)
		}
		if err := a.projects.Delete(a.owner.ID, project.ID); err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Deleted project ") + project.Name)
	}),
}

var projectSetCmd = &cobra.Command{
	Use:   "set [task-id] [project-name]",
	Short: "Assign a task to a project ('none' to clear)",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		id, err := a.resolveTask(args[0], false)
		if err != nil {
			fail(err)
		}
		if args[1] == "none" {
			if err := a.projects.SetProject(a.owner.ID, id, nil); err != nil {
				fail(err)
			}
			fmt.Println(tui.SuccessStyle.Render("✓ Cleared project"))
			return
		}
		project, err := findProjectByName(a, args[1])
		if err != nil {
			fail(err)
		}
		if err := a.projects.SetProject(a.owner.ID, id, &project.ID); err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render("✓ Assigned to ") + project.Name)
	}),
}

var projectAssignCmd = &cobra.Command{
	Use:   "assign [project-name] [task-id...]",
	Short: "Assign several tasks to a project as one unit",
	Long:  "Assign every listed task to the project. All-or-nothing: if any id is invalid, nothing is assigned.",
	Args:  cobra.MinimumNArgs(2),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		project, err := findProjectByName(a, args[0])
		if err != nil {
			fail(err)
		}
		ids := resolveTasks(a, args[1:], false)
		if err := a.projects.AssignTasks(a.owner.ID, ids, project.ID); err != nil {
			fail(err)
		}
		fmt.Println(tui.SuccessStyle.Render(fmt.Sprintf("✓ Assigned %d task(s) to %s", len(ids), project.Name)))
	}),
}

func init() {
	projectCreateCmd.Flags().StringP("desc", "d", "", "Project description")
	projectCreateCmd.Flags().String("color", "", "Hex color, e.g. #667eea")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectSetCmd)
	projectCmd.AddCommand(projectAssignCmd)
}
