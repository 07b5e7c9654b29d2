package main

import (
	"errors"
	"fmt"
	"path/filepath"

	lib "github.com/awused/monitor-wallpaper/lib"
	"github.com/urfave/cli/v2"
)

const modeFlag = "mode"

func setCommand() *cli.Command {
	cmd := &cli.Command{}
	cmd.Name = "set"
	cmd.Usage = "Set FILE as the wallpaper on every monitor or on the monitor " +
		"under the cursor. Prints \"" + lib.Confirmation + "\" on success"
	cmd.ArgsUsage = "FILE [MODE]"
	cmd.Before = beforeFunc(false)
	cmd.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    modeFlag,
			Aliases: []string{"m"},
			Usage: "\"every\" for all monitors or \"current\" for the monitor " +
				"under the cursor. Defaults to the configured Mode, then every",
		},
	}

	cmd.Action = setAction

	return cmd
}

func setAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("Missing input file")
	}

	mode, err := selectMode(c.String(modeFlag), c.Args().Get(1))
	if err != nil {
		return err
	}

	w, err := filepath.Abs(c.Args().First())
	if err != nil {
		return err
	}

	out, err := lib.SetWallpaper(lib.NewPlatform(), w, mode)
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}

// The flag wins over the positional argument, which is accepted so hosts can
// call "set FILE current".
func selectMode(flag, positional string) (lib.Mode, error) {
	if flag != "" {
		return lib.ParseMode(flag)
	}
	if positional != "" {
		return lib.ParseMode(positional)
	}
	return lib.DefaultMode(), nil
}
