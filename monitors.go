package main

import (
	"fmt"
	"io"
	"os"

	lib "github.com/awused/monitor-wallpaper/lib"
	"github.com/urfave/cli/v2"
)

func monitorsCommand() *cli.Command {
	cmd := &cli.Command{}
	cmd.Name = "monitors"
	cmd.Usage = "List the monitors known to Windows and their wallpapers"
	cmd.Description = "The monitor under the cursor is marked with *. " +
		"If nothing is marked, set --mode current will not change anything"
	cmd.Before = beforeFunc(false)

	cmd.Action = monitorsAction

	return cmd
}

func monitorsAction(c *cli.Context) error {
	monitors, err := lib.GetMonitors(lib.NewPlatform())
	if err != nil {
		return err
	}

	printMonitors(os.Stdout, monitors)
	return nil
}

func printMonitors(w io.Writer, monitors []*lib.Monitor) {
	if len(monitors) == 0 {
		fmt.Fprintln(w, "No monitors detected.")
		return
	}

	for _, m := range monitors {
		marker := " "
		if m.UnderCursor {
			marker = "*"
		}

		if !m.Attached {
			fmt.Fprintf(w, "%s %d: %s (detached)\n", marker, m.Index, m.Path)
			continue
		}

		fmt.Fprintf(w, "%s %d: %s %dx%d%+d%+d\n",
			marker, m.Index, m.Path,
			m.Rect.Width(), m.Rect.Height(), m.Rect.Left, m.Rect.Top)
		if m.Wallpaper != "" {
			fmt.Fprintf(w, "    %s\n", m.Wallpaper)
		}
	}
}
