package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/1broseidon/nudge/internal/config"
	"github.com/1broseidon/nudge/internal/ipc"
	"github.com/1broseidon/nudge/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		if len(os.Args) > 2 && (os.Args[2] == "help" || os.Args[2] == "-h" || os.Args[2] == "--help") {
			fmt.Fprintln(os.Stdout, "Usage: nudge daemon")
			os.Exit(0)
		}
		if len(os.Args) > 2 {
			fmt.Fprintln(os.Stderr, "daemon takes no arguments")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Usage: nudge daemon")
			os.Exit(2)
		}
		runDaemon()
	case "run":
		os.Exit(runOp(os.Args[2:]))
	case "resize", "shrink", "focus", "focus-screen", "cycle":
		os.Exit(runDirectionVerb(os.Args[1], os.Args[2:]))
	case "throw":
		os.Exit(runThrowVerb(os.Args[2:]))
	case "center", "maximize", "compact":
		os.Exit(runToggleVerb(os.Args[1], os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "windows":
		os.Exit(runWindows(os.Args[2:]))
	case "screens":
		os.Exit(runScreens(os.Args[2:]))
	case "reload":
		os.Exit(runReload(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "tui":
		os.Exit(runTUI(os.Args[2:]))
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
	fmt.Fprintln(w, "Usage: nudge <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Start the nudge daemon (foreground)")
	fmt.Fprintln(w, "  run <op>            Run one operation against the focused window")
	fmt.Fprintln(w, "  status              Show daemon status")
	fmt.Fprintln(w, "  windows [--json]    List managed windows, front first")
	fmt.Fprintln(w, "  screens [--json]    Show the screen layout with roles")
	fmt.Fprintln(w, "  reload              Reload daemon configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  resize <dir>        Step one edge of the focused window")
	fmt.Fprintln(w, "  shrink <dir>        Shrink toward minimum / restore or grow")
	fmt.Fprintln(w, "  cycle <side>        Half/third width cycle on a screen side")
	fmt.Fprintln(w, "  center              Center toggle")
	fmt.Fprintln(w, "  maximize            Maximize cycle")
	fmt.Fprintln(w, "  compact             Compact dock toggle")
	fmt.Fprintln(w, "  throw <role>        Move to the screen holding a role")
	fmt.Fprintln(w, "  focus <dir>         Directional focus on the current screen")
	fmt.Fprintln(w, "  focus-screen <dir>  Jump focus to the neighbor screen")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config init         Write the default configuration file")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  tui                 Open the interactive dashboard")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Directions are left, right, up, down; sides are left, right; roles")
	fmt.Fprintln(w, "are bottom, center, top, left, right.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'nudge <command> --help' for command-specific options.")
}

func runOp(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: nudge run <op>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Run one named operation via the daemon, e.g. 'nudge run cycle-left'.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "run requires exactly one operation name")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	if err := client.RunOp(fs.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// runDirectionVerb handles the one-shot verbs that take a direction or
// side argument, composing the op name the dispatcher understands.
func runDirectionVerb(verb string, args []string) int {
	if len(args) == 1 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintf(os.Stdout, "Usage: nudge %s <direction>\n", verb)
		return 0
	}
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "%s requires exactly one direction argument\n", verb)
		return 2
	}

	client := ipc.NewClient()
	if err := client.RunOp(verb + "-" + args[0]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runThrowVerb(args []string) int {
	if len(args) == 1 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: nudge throw <role>")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Roles: bottom, center, top, left, right.")
		return 0
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "throw requires exactly one role argument")
		return 2
	}

	client := ipc.NewClient()
	if err := client.RunOp("throw-" + args[0]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runToggleVerb(verb string, args []string) int {
	if len(args) == 1 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintf(os.Stdout, "Usage: nudge %s\n", verb)
		return 0
	}
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "%s takes no arguments\n", verb)
		return 2
	}

	client := ipc.NewClient()
	if err := client.RunOp(verb); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: nudge status")
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
	fmt.Printf("daemon_running: %v\n", status.DaemonRunning)
	fmt.Printf("screen_count:   %d\n", status.ScreenCount)
	fmt.Printf("window_count:   %d\n", status.WindowCount)
	fmt.Printf("hotkey_count:   %d\n", status.HotkeyCount)
	fmt.Printf("uptime_seconds: %d\n", status.UptimeSeconds)
	return 0
}

func runWindows(args []string) int {
	fs := flag.NewFlagSet("windows", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "Output as JSON")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: nudge windows [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List managed windows in front-to-back stacking order.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client := ipc.NewClient()
	data, err := client.GetWindows()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *asJSON {
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(string(out))
		return 0
	}

	for _, w := range data.Windows {
		marker := " "
		if w.Focused {
			marker = "*"
		}
		state := ""
		if w.Minimized {
			state = " minimized"
		}
		fmt.Printf("%s %-10d %-20s %dx%d at %d,%d%s\n",
			marker, w.ID, w.App, w.Width, w.Height, w.X, w.Y, state)
	}
	return 0
}

func runScreens(args []string) int {
	fs := flag.NewFlagSet("screens", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "Output as JSON")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: nudge screens [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show the screen layout with classified spatial roles.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client := ipc.NewClient()
	data, err := client.GetScreens()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *asJSON {
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(string(out))
		return 0
	}

	for _, s := range data.Screens {
		marker := " "
		if s.Primary {
			marker = "*"
		}
		role := s.Role
		if role == "" {
			role = "-"
		}
		fmt.Printf("%s %-12s %-8s %dx%d at %d,%d\n",
			marker, s.Name, role, s.Width, s.Height, s.X, s.Y)
	}
	return 0
}

func runReload(args []string) int {
	fs := flag.NewFlagSet("reload", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: nudge reload")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Ask the running daemon to reload its configuration.")
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
	fmt.Println("config reloaded")
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  nudge config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  nudge config print [--path PATH] [--defaults]")
		fmt.Fprintln(os.Stderr, "  nudge config init [--path PATH]")
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/nudge/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		var err error
		if *path == "" {
			_, err = config.Load()
		} else {
			_, err = config.LoadFromPath(*path)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/nudge/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		var cfg *config.Config
		var err error
		if *printDefaults {
			cfg = config.Default()
		} else if *path == "" {
			cfg, err = config.Load()
		} else {
			cfg, err = config.LoadFromPath(*path)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		out, err := config.Print(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(out)
		return 0

	case "init":
		fs := flag.NewFlagSet("init", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/nudge/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		target := *path
		if target == "" {
			var err error
			target, err = config.DefaultConfigPath()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
		}

		if _, err := os.Stat(target); err == nil {
			overwrite := false
			form := huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("%s already exists. Overwrite with defaults?", target)).
					Value(&overwrite),
			))
			if err := form.Run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			if !overwrite {
				fmt.Println("aborted")
				return 0
			}
		}

		if err := config.WriteDefault(target); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("wrote %s\n", target)
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		return 2
	}
}

func runTUI(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: nudge tui")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Open the interactive dashboard. Requires a TTY; the daemon should")
		fmt.Fprintln(os.Stdout, "be running for live data and key-fired operations.")
		return 0
	}

	if err := tui.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
