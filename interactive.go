package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	lib "github.com/awused/monitor-wallpaper/lib"
	prompt "github.com/c-bata/go-prompt"
	"github.com/urfave/cli/v2"
)

func interactiveCommand() *cli.Command {
	cmd := &cli.Command{}
	cmd.Name = "interactive"
	cmd.Usage = "Repeatedly set wallpapers from a prompt, useful for checking " +
		"which monitor is picked up under the cursor"
	cmd.Before = beforeFunc(false)

	cmd.Action = interactiveAction

	return cmd
}

func interactiveAction(c *cli.Context) error {
	// Large buffered channel so it doesn't block signals if it's busy
	sigs := make(chan os.Signal, 100)
	promptChan := make(chan struct{}, 1)
	inputChan := make(chan string)
	signal.Notify(sigs, syscall.SIGINT)
	defer signal.Stop(sigs)

	go func() {
		promptUntilDone(inputChan)
		promptChan <- struct{}{}
	}()

	waitForPrompt(sigs, inputChan, promptChan)
	return nil
}

// Turns interrupts into exit commands until the prompt has finished.
func waitForPrompt(
	sigs <-chan os.Signal, inputChan chan<- string, promptChan <-chan struct{}) {
	for {
		select {
		case <-promptChan:
			return
		case <-sigs:
			// Nothing reads inputChan once the prompt is done
			select {
			case inputChan <- "exit":
			case <-promptChan:
				return
			}
		}
	}
}

func completer(d prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{
		{Text: "exit", Description: "Exit the program"},
		{Text: "monitors", Description: "List monitors, the one under the cursor is marked"},
		{Text: lib.Every.String(), Description: "Set FILE on every monitor"},
		{Text: lib.Current.String(), Description: "Set FILE on the monitor under the cursor"},
	}
	return prompt.FilterHasPrefix(s, d.TextBeforeCursor(), true)
}

// Splits "current C:\some file.png" into the command and the rest of the line
func parseLine(line string) (string, string) {
	line = strings.TrimSpace(line)
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	// Paths pasted from Explorer come quoted
	arg = strings.Trim(arg, `"`)
	return strings.ToLower(cmd), arg
}

func runLine(platform lib.Platform, line string) string {
	cmd, arg := parseLine(line)

	switch cmd {
	case "":
		return ""
	case "monitors":
		monitors, err := lib.GetMonitors(platform)
		if err != nil {
			return err.Error()
		}
		var sb strings.Builder
		printMonitors(&sb, monitors)
		return strings.TrimRight(sb.String(), "\n")
	}

	mode, err := lib.ParseMode(cmd)
	if err != nil {
		return "Unknown command"
	}
	if arg == "" {
		return "Missing input file"
	}

	w, err := filepath.Abs(arg)
	if err != nil {
		return err.Error()
	}

	out, err := lib.SetWallpaper(platform, w, mode)
	if err != nil {
		return err.Error()
	}
	return out
}

func promptUntilDone(inputChan chan string) {
	platform := lib.NewPlatform()

	exit := prompt.OptionAddKeyBind(prompt.KeyBind{
		Key: prompt.ControlC,
		Fn: func(b *prompt.Buffer) {
			inputChan <- "exit"
		},
	})

	for {
		go func() {
			// prompt.Input is blocking, synchronous, and provides no way to abort it
			inputChan <- prompt.Input("> ", completer, exit)
		}()
		in := <-inputChan
		if strings.TrimSpace(strings.ToLower(in)) == "exit" {
			return
		}

		if out := runLine(platform, in); out != "" {
			fmt.Println(out)
		}
	}
}
