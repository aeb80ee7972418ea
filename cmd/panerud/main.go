// Command panerud is the paneru window-manager daemon: it wires the
// configuration loader, the platform layer, the core engine and the IPC
// server together, installs signal handling, and drives the event loop
// until quit (spec.md §6, SPEC_FULL.md §4.14).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/paneru/wm/config"
	"github.com/paneru/wm/engine"
	"github.com/paneru/wm/ipc"
	"github.com/paneru/wm/service"
	"github.com/paneru/wm/wmerr"
	"github.com/paneru/wm/wmlog"
)

func main() {
	os.Exit(run())
}

func run() int {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "paneru: resolve home directory: %v\n", err)
		return 1
	}

	configPath := flag.String("config", config.Path(home), "path to config.toml")
	socketPath := flag.String("socket", "/tmp/paneru.sock", "Unix socket path for the IPC server")
	logPath := flag.String("log", filepath.Join(home, "Library", "Logs", "paneru.log"), "log file path")
	attached := flag.Bool("attached", false, "also log to stderr (for a foreground run)")
	debug := flag.Bool("debug", false, "enable debug-level logging")
	installService := flag.Bool("install-service", false, "install the launchd agent and exit")
	uninstallService := flag.Bool("uninstall-service", false, "remove the launchd agent and exit")
	flag.Parse()

	if *installService {
		exe, err := os.Executable()
		if err != nil {
			fmt.Fprintf(os.Stderr, "paneru: resolve executable path: %v\n", err)
			return 1
		}
		if err := service.Install(home, service.Options{ExecPath: exe, LogPath: *logPath, ErrorLogPath: *logPath}); err != nil {
			fmt.Fprintf(os.Stderr, "paneru: %v\n", err)
			return 1
		}
		return 0
	}
	if *uninstallService {
		if err := service.Uninstall(home); err != nil {
			fmt.Fprintf(os.Stderr, "paneru: %v\n", err)
			return 1
		}
		return 0
	}

	log := wmlog.New(wmlog.Options{Path: *logPath, Attached: *attached, Debug: *debug})

	cfg := config.Load(*configPath, home)
	rules := rulesFromConfig(cfg)

	api := newPlatform()
	eng := engine.New(api, rules, log)
	eng.Model.Focus.FollowMouse = cfg.FocusFollowsMouse
	eng.Model.Focus.FollowFocus = cfg.MouseFollowsFocus

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := eng.Bootstrap(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "paneru: startup failed: %v\n", err)
		if wmerr.Is(err, wmerr.KindPermissionDenied) {
			fmt.Fprintln(os.Stderr, "paneru: grant Accessibility access in System Settings and retry")
			return 2
		}
		return 1
	}

	ipcSrv := &ipc.Server{
		Path: *socketPath,
		Log:  log,
		Handle: func(argv []string) error {
			if len(argv) == 0 {
				return fmt.Errorf("paneru: empty command")
			}
			if _, _, err := engine.ParseCommand(argv); err != nil {
				return err
			}
			eng.DispatchAsync(argv[0], argv[1:])
			return nil
		},
	}
	go func() {
		if err := ipcSrv.Serve(); err != nil {
			log.Error("ipc server stopped", "error", err)
		}
	}()
	defer ipcSrv.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		for sig := range sigCh {
			if sig == syscall.SIGHUP {
				reloaded := config.Load(*configPath, home)
				eng.Model.Focus.FollowMouse = reloaded.FocusFollowsMouse
				eng.Model.Focus.FollowFocus = reloaded.MouseFollowsFocus
				eng.Model.Rules = rulesFromConfig(reloaded)
				log.Info("reloaded configuration")
				continue
			}
			cancel()
			return
		}
	}()

	runErr := eng.Run(ctx)

	if runErr != nil {
		log.Error("engine stopped", "error", runErr)
		return 1
	}
	return 0
}

func rulesFromConfig(cfg config.Config) []engine.PlacementRule {
	out := make([]engine.PlacementRule, 0, len(cfg.Rule))
	for _, r := range cfg.Rule {
		out = append(out, engine.PlacementRule{
			TitleContains: r.Title,
			BundleID:      r.BundleID,
			Floating:      r.Floating,
			Index:         r.Index,
		})
	}
	return out
}
