// Command form-tabs renders a form schema as a tabbed terminal form.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/b/form-tabs/pkg/config"
	"github.com/b/form-tabs/pkg/form"
	"github.com/b/form-tabs/pkg/formtab"
	"github.com/b/form-tabs/pkg/logging"
	"github.com/b/form-tabs/pkg/schema"
)

var (
	// version is set via -ldflags at build time.
	version = "dev"

	configPath string
	debug      bool
	verbosity  int
	activeKey  string
	values     []string
	width      int

	logger   = logr.Discard()
	closeLog = func() error { return nil }
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "form-tabs",
		Short:        "Tabbed terminal forms from declarative schemas",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, closeFn, err := logging.New(logging.Options{Debug: debug, Verbosity: verbosity})
			if err != nil {
				return err
			}
			logger, closeLog = log.WithName("form-tabs"), closeFn
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeLog()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "Path to config.yaml")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write a debug log to the state directory")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0, "Debug log verbosity")

	rootCmd.AddCommand(
		newRunCmd(),
		newRenderCmd(),
		newTabsCmd(),
		newLintCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <schema>",
		Short: "Edit a form interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			// Force ANSI256 color mode to avoid partial 24-bit escape code issues
			lipgloss.SetColorProfile(termenv.ANSI256)

			m, err := newApp(args[0], configPath, cfg, activeKey, logger)
			if err != nil {
				return err
			}
			if err := m.form.SetValues(parseValues(values)); err != nil {
				return err
			}
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
			stop, err := config.Watch(func(path string) { p.Send(fileChangedMsg{path: path}) }, watchable(args[0], configPath)...)
			if err != nil {
				logger.Error(err, "file watching disabled")
			} else {
				defer stop()
			}
			final, err := p.Run()
			if err != nil {
				return err
			}
			if a, ok := final.(*app); ok && a.submitted {
				printValues(a.form)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&activeKey, "active", "", "Tab to open first")
	cmd.Flags().StringArrayVar(&values, "set", nil, "Initial value as address=value (repeatable)")
	return cmd
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <schema>",
		Short: "Validate a form and print one frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			fd := int(os.Stdout.Fd())
			if !term.IsTerminal(fd) {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			w := width
			if w <= 0 {
				if tw, _, err := term.GetSize(fd); err == nil && tw > 0 {
					w = tw
				} else {
					w = 80
				}
			}

			m, err := newApp(args[0], configPath, cfg, activeKey, logger)
			if err != nil {
				return err
			}
			if err := m.form.SetValues(parseValues(values)); err != nil {
				return err
			}
			m.form.Validate()
			fmt.Fprintln(cmd.OutOrStdout(), m.frame(w))
			return nil
		},
	}
	cmd.Flags().StringVar(&activeKey, "active", "", "Tab to show")
	cmd.Flags().StringArrayVar(&values, "set", nil, "Value as address=value (repeatable)")
	cmd.Flags().IntVar(&width, "width", 0, "Output width (default: terminal width)")
	return cmd
}

func newTabsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabs <schema>",
		Short: "List tabs and their validation errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schema.Load(args[0])
			if err != nil {
				return err
			}
			f := form.New(s, form.WithLogger(logger))
			if err := f.SetValues(parseValues(values)); err != nil {
				return err
			}
			f.Validate()
			writeTabs(cmd.OutOrStdout(), f)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&values, "set", nil, "Value as address=value (repeatable)")
	return cmd
}

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <schema>",
		Short: "Check a schema for unknown components and misplaced tab panes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := schema.Load(args[0])
			if err != nil {
				return err
			}
			issues := schema.Lint(s)
			for _, issue := range issues {
				fmt.Fprintln(cmd.OutOrStdout(), issue)
			}
			if len(issues) > 0 {
				return fmt.Errorf("%d issue(s) found", len(issues))
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to --config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeDefaultConfig(configPath, force); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}

// writeDefaultConfig saves the default config to path, creating its
// directory. An existing file is kept unless force is set.
func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return config.SaveConfig(path, config.Default())
}

// parseValues turns address=value pairs into a map; pairs without "=" are
// ignored.
func parseValues(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// watchable lists the files to watch that exist.
func watchable(files ...string) []string {
	var out []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			out = append(out, f)
		}
	}
	return out
}

// writeTabs prints one row per tab with the number of messages beneath it.
func writeTabs(w io.Writer, f *form.Form) {
	addr := findFormTab(f.Schema)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tLABEL\tMESSAGES")
	for _, tab := range formtab.ParseTabs(f.Field(addr).Schema) {
		pattern := addr.Concat(tab.Name).String() + ".*"
		n := len(f.Feedback.QueryMessages(form.Query{Address: pattern}))
		fmt.Fprintf(tw, "%s\t%s\t%d\n", tab.Key(), tab.Label(), n)
	}
	tw.Flush()
}

func printValues(f *form.Form) {
	vals := f.Values()
	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s=%s\n", k, vals[k])
	}
}
