package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"planner/internal/bootstrap"
	"planner/internal/config"
	"planner/internal/content"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "planner",
		Short:         "30-day couples connection planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.ResolveConfigPath(), "config file path")

	root.AddCommand(newStatusCmd(&configPath))
	root.AddCommand(newShowCmd(&configPath))
	root.AddCommand(newReflectionsCmd(&configPath))
	return root
}

func loadApp(configPath string) (*bootstrap.App, error) {
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return bootstrap.New(cfg)
}

func newStatusCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show completion progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, app.Session.ProgressLabel())
			done := app.Session.State().Completed.Sorted()
			if len(done) > 0 {
				days := make([]string, len(done))
				for i, d := range done {
					days[i] = strconv.Itoa(d)
				}
				_, _ = fmt.Fprintf(out, "completed: %s\n", strings.Join(days, ", "))
			}
			if !app.Persistent {
				_, _ = fmt.Fprintln(out, "storage unavailable: progress is not being saved")
			}
			return nil
		},
	}
}

func newShowCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show [day]",
		Short: "Print a day's prompts and reflection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			day := 1
			if len(args) == 1 {
				day, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid day %q", args[0])
				}
			}
			d, err := app.Content.Day(day)
			if err != nil {
				return err
			}
			week, _ := app.Content.LookupWeek(day)
			writeDay(cmd.OutOrStdout(), week, d, app.Session.IsCompleted(day), app.Session.Reflection(day))
			return nil
		},
	}
}

func newReflectionsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reflections",
		Short: "Print every written reflection by week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			written := 0
			for _, w := range app.Content.Weeks() {
				header := false
				for _, d := range w.Days {
					text := app.Session.Reflection(d.Day)
					if text == "" {
						continue
					}
					if !header {
						_, _ = fmt.Fprintf(out, "## %s: %s\n\n", w.Week, w.Theme)
						header = true
					}
					_, _ = fmt.Fprintf(out, "### Day %d: %s\n\n%s\n\n", d.Day, d.Title, text)
					written++
				}
			}
			if written == 0 {
				_, _ = fmt.Fprintln(out, "no reflections yet")
			}
			return nil
		},
	}
}

func writeDay(out io.Writer, w content.Week, d content.Day, done bool, reflection string) {
	state := "not completed"
	if done {
		state = "completed"
	}
	_, _ = fmt.Fprintf(out, "%s: %s\n", w.Week, w.Theme)
	_, _ = fmt.Fprintf(out, "Day %d (%s): %s\n", d.Day, state, d.Title)
	_, _ = fmt.Fprintf(out, "%s\n", d.Prompt)
	for _, sub := range d.SubPrompts {
		_, _ = fmt.Fprintf(out, "  - %s\n", sub)
	}
	if reflection != "" {
		_, _ = fmt.Fprintf(out, "\nReflection:\n%s\n", reflection)
	}
}
