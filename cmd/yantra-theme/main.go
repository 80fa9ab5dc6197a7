// yantra-theme — command-line access to the theme preference
//
// Reads and changes the same stored preference the desktop shell uses when
// both point at one config, prints the resolved document markers and exports
// backups or a printable palette sheet.
//
// Usage:
//   yantra-theme [-config path] get
//   yantra-theme set light|dark|system
//   yantra-theme toggle
//   yantra-theme markers
//   yantra-theme export backup.json
//   yantra-theme import backup.json
//   yantra-theme palette palette.pdf

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/yantradaan/yantra-daan/internal/console"
	"github.com/yantradaan/yantra-daan/internal/export"
	"github.com/yantradaan/yantra-daan/internal/logging"
	"github.com/yantradaan/yantra-daan/internal/model"
	"github.com/yantradaan/yantra-daan/internal/persist"
	"github.com/yantradaan/yantra-daan/internal/system"
	"github.com/yantradaan/yantra-daan/internal/theme"
)

const usage = `usage: yantra-theme [-config path] <command> [args]

commands:
  get                     show the active theme
  set light|dark|system   store a preference
  toggle                  switch between light and dark
  markers                 print the html and body attributes
  export <file>           write a backup of config and preferences
  import <file>           restore a backup
  palette <file.pdf>      write the palette sheet
`

var errUsage = errors.New("bad usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 on success, 1 on failure and 2 on
// bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("yantra-theme", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := fs.String("config", persist.DefaultConfigPath(), "path to config.json")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	config, err := persist.LoadAppConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "yantra-theme: %v\n", err)
		return 1
	}
	logger, err := logging.New(config.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "yantra-theme: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	c := newCLI(*configPath, config, stdout, logger)
	defer c.close()

	if err := c.dispatch(fs.Arg(0), fs.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fs.Usage()
			return 2
		}
		fmt.Fprintf(stderr, "yantra-theme: %v\n", err)
		return 1
	}
	return 0
}

type cli struct {
	configPath string
	config     model.AppConfig
	out        io.Writer
	logger     *zap.Logger

	store    *persist.FileStore
	doc      *theme.Document
	renderer *console.Renderer
	manager  *theme.Manager
}

func newCLI(configPath string, config model.AppConfig, out io.Writer, logger *zap.Logger) *cli {
	c := &cli{
		configPath: configPath,
		config:     config,
		out:        out,
		logger:     logger,
		store:      persist.NewFileStore(persist.PreferencesPath(configPath, config), logger),
		doc:        theme.NewDocument(nil, nil),
		renderer:   console.NewRenderer(out),
	}
	opts := append(config.ManagerOptions(), theme.WithLogger(logger))
	c.manager = theme.New(c.store, system.Detect(config.Signal, logger),
		theme.Targets(c.doc, c.renderer), opts...)
	return c
}

func (c *cli) close() {
	c.manager.Close()
}

func (c *cli) dispatch(cmd string, args []string) error {
	switch cmd {
	case "get":
		return c.status()
	case "set":
		if len(args) != 1 {
			return errUsage
		}
		p, err := theme.ParsePreference(args[0])
		if err != nil {
			return err
		}
		if err := c.manager.SetPreference(p); err != nil {
			return err
		}
		return c.status()
	case "toggle":
		c.manager.Toggle()
		return c.status()
	case "markers":
		root, body := c.doc.Attrs()
		_, err := fmt.Fprintf(c.out, "<html %s>\n<body %s>\n", root, body)
		return err
	case "export":
		if len(args) != 1 {
			return errUsage
		}
		return c.exportData(args[0])
	case "import":
		if len(args) != 1 {
			return errUsage
		}
		return c.importData(args[0])
	case "palette":
		if len(args) != 1 {
			return errUsage
		}
		if err := export.ExportPalettePDF(args[0], c.manager.Resolved()); err != nil {
			return err
		}
		_, err := fmt.Fprintf(c.out, "palette written to %s\n", args[0])
		return err
	default:
		return errUsage
	}
}

func (c *cli) status() error {
	_, err := fmt.Fprintln(c.out, c.renderer.Status(c.manager.State(), c.manager.StorageKey(), c.doc))
	return err
}

func (c *cli) exportData(path string) error {
	prefs, err := c.store.All()
	if err != nil {
		return err
	}
	if err := persist.ExportAllData(path, c.config, prefs); err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.out, "backup written to %s\n", path)
	return err
}

func (c *cli) importData(path string) error {
	backup, err := persist.ImportAllData(path)
	if err != nil {
		return err
	}
	if err := persist.SaveAppConfig(c.configPath, backup.Config); err != nil {
		return fmt.Errorf("save imported config: %w", err)
	}
	if err := c.store.Replace(backup.Preferences); err != nil {
		return err
	}
	c.logger.Info("backup imported", zap.String("path", path), zap.String("created_at", backup.CreatedAt))
	_, err = fmt.Fprintf(c.out, "imported backup created at %s\n", backup.CreatedAt)
	return err
}
