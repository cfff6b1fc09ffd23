package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

const (
	configKey   = "config"
	stepKey     = "step"
	headlessKey = "headless"
	scriptKey   = "script"
	tickKey     = "tick"
	logKey      = "log"
)

func main() {
	cmd := &cli.Command{
		Name:  "demo",
		Usage: "Several components sharing one piece of state",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  configKey,
				Usage: "YAML file with the initial profile",
			},
			&cli.IntFlag{
				Name:  stepKey,
				Usage: "Amount +/- changes the count by, overrides the config",
			},
			&cli.BoolFlag{
				Name:  headlessKey,
				Usage: "Run a scripted session and print every frame instead of opening the TUI",
			},
			&cli.StringFlag{
				Name:  scriptKey,
				Usage: "Keys the headless session presses, in order",
				Value: "+,+,n,-,t,r",
			},
			&cli.DurationFlag{
				Name:  tickKey,
				Usage: "Increment the count on this interval from outside the UI, 0 disables",
			},
			&cli.StringFlag{
				Name:  logKey,
				Usage: "File receiving change logs while the TUI runs",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd.String(configKey))
	if err != nil {
		return err
	}
	if step := int(cmd.Int(stepKey)); step != 0 {
		cfg.Step = step
	}

	if cmd.Bool(headlessKey) {
		return runHeadless(cfg, strings.Split(cmd.String(scriptKey), ","), os.Stdout)
	}
	return runTUI(cfg, cmd.Duration(tickKey), cmd.String(logKey))
}

func runTUI(cfg *config, tick time.Duration, logPath string) error {
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "demo ")
		if err != nil {
			return fmt.Errorf("can't open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	a, err := newApp(cfg, tick > 0)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(newModel(a, tick)).Run(); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}

func runHeadless(cfg *config, keys []string, w io.Writer) error {
	start := time.Now()
	log.Printf("Headless demo started")
	defer func() {
		log.Printf("Headless demo finished in %v", time.Since(start))
	}()

	a, err := newApp(cfg, false)
	if err != nil {
		return err
	}

	frame, err := a.frame()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "--- mount\n%s\n", frame)

	for _, key := range keys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if err := a.dispatch(key); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		if frame, err = a.frame(); err != nil {
			return err
		}
		fmt.Fprintf(w, "--- %s\n%s\n", key, frame)
	}

	for _, c := range a.rt.Instances() {
		log.Printf("%s (%016x) rendered %d times", c.Key(), c.ID(), c.Renders())
	}
	return nil
}
