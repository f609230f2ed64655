package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
	"github.com/custodia-labs/eat-cli/internal/logger"
)

var (
	watchOut       string
	watchOpenMensa bool
	watchOnce      bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Publish menus dropped into a directory",
	Long: `Parses and publishes every publication in a directory, then keeps
watching it for new or changed files.

File names select the parser:
  <source>_<anything>.txt              text sources, week from KW<nn>_<yyyy>
  studentenwerk_<location>_<any>.html  Studentenwerk pages

Files that match no source are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "output directory (default from config)")
	watchCmd.Flags().BoolVar(&watchOpenMensa, "openmensa", false, "also write OpenMensa feeds")
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "process the existing files and exit")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	app, err := newApp(Options{OutputDir: watchOut, OpenMensa: watchOpenMensa})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	handle := func(path string) {
		published, err := publishFile(ctx, app, path)
		if err != nil {
			logger.Warn("Skipping %s: %v", path, err)
			return
		}
		if published != "" {
			cmd.Printf("Published %s from %s\n", published, filepath.Base(path))
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			handle(filepath.Join(dir, e.Name()))
		}
	}

	if watchOnce {
		return nil
	}
	cmd.Printf("Watching %s (Ctrl+C to stop)\n", dir)
	return watchDir(ctx, dir, handle)
}

// watchDir calls handle for every file created or written in dir until
// ctx is done.
func watchDir(ctx context.Context, dir string, handle func(path string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
				handle(ev.Name)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// routeFile derives source and location from a file name.
func routeFile(path string) (string, inputFlags, bool) {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return "", inputFlags{}, false
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))

	parts := strings.Split(name, "_")
	source := parts[0]
	if !slices.Contains(domain.Sources(), source) {
		return "", inputFlags{}, false
	}

	var flags inputFlags
	if source == domain.SourceStudentenwerk {
		if len(parts) < 2 || parts[1] == "" {
			return "", inputFlags{}, false
		}
		flags.location = parts[1]
	}
	return source, flags, true
}

// publishFile parses and publishes one file. It returns the published
// location, or "" when the file matches no source.
func publishFile(ctx context.Context, app *App, path string) (string, error) {
	source, flags, ok := routeFile(path)
	if !ok {
		logger.Debug("Ignoring %s", path)
		return "", nil
	}

	raw, err := readDocument(source, path, flags)
	if err != nil {
		return "", err
	}
	result, err := app.Menu.Parse(ctx, raw)
	if err != nil {
		return "", err
	}
	if err := app.Menu.Publish(ctx, result); err != nil {
		return "", err
	}
	return result.Location, nil
}
