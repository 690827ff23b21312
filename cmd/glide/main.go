package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/1broseidon/glide/internal/animation"
	"github.com/1broseidon/glide/internal/config"
	"github.com/1broseidon/glide/internal/hotkeys"
	"github.com/1broseidon/glide/internal/ipc"
	"github.com/1broseidon/glide/internal/mcp"
	"github.com/1broseidon/glide/internal/platform"
	"github.com/1broseidon/glide/internal/wm"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		if len(os.Args) > 2 {
			fmt.Fprintln(os.Stderr, "daemon takes no arguments")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Usage: glide daemon")
			os.Exit(2)
		}
		runDaemon()
	case "place":
		os.Exit(runPlace(os.Args[2:]))
	case "move":
		os.Exit(runMove(os.Args[2:]))
	case "styles":
		os.Exit(runStyles(os.Args[2:]))
	case "monitors":
		os.Exit(runMonitors(os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "defaults":
		os.Exit(runDefaults(os.Args[2:]))
	case "page":
		os.Exit(runPage(os.Args[2:]))
	case "reload":
		os.Exit(runReload(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: glide <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Start the glide daemon (foreground)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  place <placement>   Animate the focused window into a layout slot")
	fmt.Fprintln(w, "  move <index>        Animate the focused window onto another monitor")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  styles              List easing styles and durations")
	fmt.Fprintln(w, "  monitors            List connected monitors")
	fmt.Fprintln(w, "  status              Show daemon status")
	fmt.Fprintln(w, "  defaults            Show or set the default style and padding")
	fmt.Fprintln(w, "  page                Print the HTML control page")
	fmt.Fprintln(w, "  reload              Reload the daemon's config file")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'glide <command> --help' for command-specific options.")
}

func runDaemon() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded (style: %s, padding: %s)", cfg.DefaultStyle, cfg.Padding)

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer backend.Disconnect()

	engineLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	engine := animation.NewEngine(backend, engineLogger)
	manager := wm.NewManager(backend, engine, wm.Defaults{
		Style:   cfg.Style(),
		Padding: cfg.PaddingLevel(),
	})

	server, err := ipc.NewServer(cfg, manager)
	if err != nil {
		log.Fatalf("Failed to create IPC server: %v", err)
	}
	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start IPC server: %v", err)
	}
	defer server.Stop()

	if len(cfg.Hotkeys) > 0 {
		handler := hotkeys.NewHandler(backend, manager)
		if err := handler.RegisterBindings(cfg.Hotkeys); err != nil {
			log.Fatalf("Failed to register hotkeys: %v", err)
		}
		log.Printf("Registered %d hotkey bindings", len(cfg.Hotkeys))
		go backend.EventLoop()
	}

	log.Println("glide daemon started successfully")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("Received signal %v, shutting down", sig)
}

func runPlace(args []string) int {
	fs := flag.NewFlagSet("place", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glide place [--style S] <placement>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Animate the focused window into a named layout slot.")
		fmt.Fprintln(os.Stderr, "Placements: left right top bottom topLeft topRight bottomLeft")
		fmt.Fprintln(os.Stderr, "            bottomRight center maximize leftTwoThirds rightTwoThirds")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	style := fs.String("style", "", "Easing style for this call (default: daemon's default)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "place takes exactly one placement argument")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	data, err := client.Place(fs.Arg(0), *style)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("placed: %s (style: %s)\n", data.Placement, data.Style)
	return 0
}

func runMove(args []string) int {
	fs := flag.NewFlagSet("move", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glide move [--style S] <monitor-index>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Animate the focused window onto another monitor (1-based index).")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	style := fs.String("style", "", "Easing style for this call (default: daemon's default)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "move takes exactly one monitor index argument")
		fs.Usage()
		return 2
	}

	var index int
	if _, err := fmt.Sscanf(fs.Arg(0), "%d", &index); err != nil {
		fmt.Fprintf(os.Stderr, "invalid monitor index: %q\n", fs.Arg(0))
		return 2
	}

	client := ipc.NewClient()
	data, err := client.MoveToScreen(index, *style)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("moved to monitor %d (style: %s)\n", data.Index, data.Style)
	return 0
}

func runStyles(args []string) int {
	fs := flag.NewFlagSet("styles", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glide styles")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List the available easing styles and their fixed durations.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "styles takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	data, err := client.ListStyles()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Plain name-per-line output when piped, annotated when on a terminal.
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	for _, s := range data.Styles {
		if !interactive {
			fmt.Println(s.Name)
			continue
		}
		marker := " "
		if s.Name == data.DefaultStyle {
			marker = "*"
		}
		fmt.Printf("%s %-14s %4dms\n", marker, s.Name, s.DurationMS)
	}
	return 0
}

func runMonitors(args []string) int {
	fs := flag.NewFlagSet("monitors", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glide monitors")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List connected monitors and their usable work areas.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "monitors takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	data, err := client.GetMonitors()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, m := range data.Monitors {
		fmt.Printf("%d: %s %0.fx%0.f+%0.f+%0.f (usable %0.fx%0.f)\n",
			m.ID, m.Name, m.Width, m.Height, m.X, m.Y, m.UsableWidth, m.UsableHeight)
	}
	return 0
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glide status")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show daemon status via IPC.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "status takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	status, err := client.GetStatus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("daemon_running:    %v\n", status.DaemonRunning)
	fmt.Printf("uptime_seconds:    %d\n", status.UptimeSeconds)
	fmt.Printf("active_animations: %d\n", status.ActiveAnimations)
	fmt.Printf("default_style:     %s\n", status.DefaultStyle)
	fmt.Printf("padding:           %s\n", status.Padding)
	return 0
}

func runDefaults(args []string) int {
	fs := flag.NewFlagSet("defaults", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glide defaults [--style S] [--padding P]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show the current defaults, or set and persist new ones.")
		fmt.Fprintln(os.Stderr, "Padding levels: none small medium large")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	style := fs.String("style", "", "Default easing style to persist")
	padding := fs.String("padding", "", "Default padding level to persist")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "defaults takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	if *style == "" && *padding == "" {
		status, err := client.GetStatus()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("default_style: %s\n", status.DefaultStyle)
		fmt.Printf("padding:       %s\n", status.Padding)
		return 0
	}

	if err := client.SetDefaults(*style, *padding); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runPage(args []string) int {
	fs := flag.NewFlagSet("page", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glide page")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the daemon's HTML control page to stdout.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "page takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	html, err := client.ControlPage()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Print(html)
	return 0
}

func runReload(args []string) int {
	fs := flag.NewFlagSet("reload", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: glide reload")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Reload the daemon's configuration file.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client := ipc.NewClient()
	if err := client.Reload(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runMCP(args []string) int {
	if len(args) == 0 || args[0] != "serve" {
		fmt.Fprintln(os.Stderr, "Usage: glide mcp serve")
		return 2
	}

	server := mcp.NewServer()
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
