package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"manor/pkg/engine/input"
	"manor/pkg/game/config"
	"manor/pkg/game/gameplay"
	"manor/pkg/game/messages"
	"manor/pkg/game/renderer"
	"manor/pkg/game/renderer/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.Level())

	c, err := gameplay.NewRun(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("cannot start run")
	}

	renderer.SetRenderer(tui.New(os.Stdout, c.ShopEntries()))
	renderer.Init()

	in := input.NewReader(os.Stdin, os.Stdout)
	for {
		if !mainLoop(c, in, log) {
			break
		}
	}
}

// mainLoop draws one frame and processes one command. It returns false
// when the program should exit.
func mainLoop(c *gameplay.Controller, in *input.Reader, log *logrus.Logger) bool {
	g := c.Game()
	renderer.Clear()
	renderer.RenderFrame(g.Snapshot())

	if g.Status.Ended() {
		return false
	}

	raw, err := in.Read()
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, input.ErrInterrupted) {
			log.WithError(err).Error("cannot read input")
		}
		sayGoodbye()
		return false
	}

	intent := input.Translate(raw)
	if intent.Action == input.ActionQuit {
		sayGoodbye()
		return false
	}
	if err := gameplay.ProcessIntent(c, intent); err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"command": raw.Code,
			"device":  raw.Device.String(),
		}).Debug("intent rejected")
	}
	return true
}

func sayGoodbye() {
	fmt.Println(renderer.StyleText(messages.Get(messages.Goodbye), renderer.StyleSubtle))
}
