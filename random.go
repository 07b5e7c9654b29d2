package main

import (
	"fmt"

	"github.com/awused/go-strpick/persistent"
	lib "github.com/awused/monitor-wallpaper/lib"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const unlocked = "unlocked"

// How many images to try before giving up on finding a readable one
const candidates = 5

func randomCommand() *cli.Command {
	cmd := &cli.Command{}
	cmd.Name = "random"
	cmd.Usage = "Set a random image from OriginalsDirectory as the wallpaper"
	cmd.Description = "Images are picked least recently used first, the " +
		"history is stored in DatabaseDir"
	cmd.Before = beforeFunc(true)
	cmd.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    modeFlag,
			Aliases: []string{"m"},
			Usage:   "\"every\" or \"current\". Defaults to the configured Mode, then every",
		},
		&cli.BoolFlag{
			Name:    unlocked,
			Aliases: []string{"u"},
			Usage:   "Checks to see if the screen is unlocked and aborts if it isn't",
		},
	}

	cmd.Action = randomAction

	return cmd
}

func randomAction(c *cli.Context) error {
	conf, err := lib.GetConfig()
	if err != nil {
		return err
	}
	if err = conf.ValidateOriginals(); err != nil {
		return err
	}

	mode, err := selectMode(c.String(modeFlag), "")
	if err != nil {
		return err
	}

	platform := lib.NewPlatform()

	if c.Bool(unlocked) {
		locked, err := platform.IsLocked()
		if err != nil {
			return err
		}
		if locked {
			// Silently exit, this isn't an error
			return nil
		}
	}

	picker, err := persistent.NewPicker(conf.DatabaseDir)
	if err != nil {
		return err
	}
	defer picker.Close()

	originals, err := lib.GetAllOriginals()
	if err != nil {
		return err
	}

	if err = picker.AddAll(originals); err != nil {
		return err
	}

	sz, err := picker.Size()
	if err != nil {
		return err
	}
	if sz == 0 {
		return lib.ErrNoImages
	}

	wallpaper, err := pickReadable(picker, sz)
	if err != nil {
		return err
	}

	out, err := lib.SetWallpaper(platform, wallpaper, mode)
	if err != nil {
		return err
	}

	// Forget files that have been removed from OriginalsDirectory
	if err = picker.CleanDB(); err != nil {
		zap.S().Warnw("Error cleaning picker database", "error", err)
	}

	fmt.Println(out)
	return nil
}

// The parts of persistent.Picker needed to choose a wallpaper
type nextPicker interface {
	Next() (string, error)
	SoftRemove(string) error
}

// Takes images one at a time so only the one that is applied is marked as
// used. Unreadable images are dropped from the picker, and from the database
// by the following CleanDB.
func pickReadable(picker nextPicker, size int) (string, error) {
	tries := candidates
	if size < tries {
		tries = size
	}

	for i := 0; i < tries; i++ {
		relPath, err := picker.Next()
		if err != nil {
			return "", err
		}

		absPath, err := lib.GetFullInputPath(relPath)
		if err != nil {
			return "", err
		}

		if err = lib.CheckImage(absPath); err != nil {
			zap.S().Warnw("Skipping unreadable image", "image", absPath, "error", err)
			if err = picker.SoftRemove(relPath); err != nil {
				return "", err
			}
			continue
		}
		return absPath, nil
	}

	return "", fmt.Errorf("None of %d candidate images could be read", tries)
}
