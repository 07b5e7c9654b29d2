package main

import (
	"errors"
	"fmt"
	"os"

	lib "github.com/awused/monitor-wallpaper/lib"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const configFlag = "config"

var closeLogger = func() {}

func main() {
	lib.AttachParentConsole()

	app := cli.NewApp()
	app.Name = "monitor-wallpaper"
	app.Usage = "Set the wallpaper on every monitor or only the one under the cursor"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    configFlag,
			Aliases: []string{"c"},
			Usage:   "Read the config from `FILE` instead of searching for monitor-wallpaper.toml",
		},
	}
	app.Commands = []*cli.Command{
		setCommand(),
		monitorsCommand(),
		randomCommand(),
		interactiveCommand(),
	}

	err := app.Run(os.Args)
	if err != nil {
		zap.S().Errorw("Command failed", "error", err)
	}
	closeLogger()

	if err != nil {
		// The host shows this to the user as is
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Only init when necessary
// Commands that don't need any config still work when none can be found, but
// a config that exists and is broken is always an error.
func beforeFunc(requireConfig bool) cli.BeforeFunc {
	return func(c *cli.Context) error {
		path := c.String(configFlag)

		conf, err := lib.Init(path)
		var ignored error
		if err != nil {
			if requireConfig || !errors.Is(err, lib.ErrNoConfig) {
				return err
			}
			conf, ignored = lib.UseDefaultConfig(), err
		}

		closeLog, err := lib.InitLogger(conf)
		if err != nil {
			return err
		}
		closeLogger = closeLog

		if ignored != nil {
			zap.S().Debugw("No config loaded, using defaults", "error", ignored)
		}
		return nil
	}
}
