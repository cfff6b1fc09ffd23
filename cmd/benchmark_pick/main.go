package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/sharedstate/component"
	"github.com/delaneyj/sharedstate/shared"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const repeatsKey = "repeats"

func main() {
	log.Print("Starting pick benchmark, please wait...")
	defer log.Print("Finished pick benchmark")

	cmd := &cli.Command{
		Name:  "benchmark_pick",
		Usage: "Compare re-render fan-out of Use and UsePick",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  repeatsKey,
				Usage: "Runs per config, the fastest one is reported",
				Value: 5,
			},
		},
		Action: benchmark,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type benchmarkTestConfig struct {
	name       string // friendly name for the test, should be unique
	components int    // components bound to the state
	updates    int64  // Set calls per run
	// fraction of updates that touch the picked field, the rest touch another one
	pickedFraction float64
}

type profile struct {
	Picked, Other int
}

type results struct {
	renders  int
	duration time.Duration
}

func benchmark(ctx context.Context, cmd *cli.Command) error {
	perfTestCfgs := []benchmarkTestConfig{
		{name: "single component", components: 1, updates: 100_000, pickedFraction: 0.5},
		{name: "small screen", components: 10, updates: 20_000, pickedFraction: 0.1},
		{name: "large screen", components: 500, updates: 1_000, pickedFraction: 0.1},
		{name: "unrelated updates", components: 100, updates: 5_000, pickedFraction: 0},
		{name: "every update matters", components: 100, updates: 5_000, pickedFraction: 1},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"binding", "test", "components", "updates", "picked%",
		"renders", "time", "updateRate",
	})

	testRepeats := int(cmd.Int(repeatsKey))
	for _, cfg := range perfTestCfgs {
		for _, binding := range []string{"Use", "UsePick"} {
			log.Printf("Running '%s' config with %s", cfg.name, binding)

			best := &results{duration: time.Hour}
			for i := 0; i < testRepeats; i++ {
				res, err := runOnce(cfg, binding == "UsePick")
				if err != nil {
					return fmt.Errorf("%s/%s: %w", cfg.name, binding, err)
				}
				if res.duration < best.duration {
					best = res
				}
			}

			updateRate := float64(cfg.updates) / (float64(best.duration) / float64(time.Millisecond))
			table.Append([]string{
				binding,
				cfg.name,
				fmt.Sprint(cfg.components),
				humanize.Comma(cfg.updates),
				fmt.Sprint(100 * cfg.pickedFraction),
				humanize.Comma(int64(best.renders)),
				fmt.Sprint(best.duration),
				humanize.Comma(int64(updateRate)),
			})
		}
	}
	table.Render()
	return nil
}

func runOnce(cfg benchmarkTestConfig, pick bool) (*results, error) {
	rt := component.New(component.WithOnError(func(from *component.Instance, err error) {
		log.Panic(err)
	}))
	s := shared.Create(profile{})

	instances := make([]*component.Instance, 0, cfg.components)
	for i := 0; i < cfg.components; i++ {
		c, err := rt.Mount(fmt.Sprintf("c%d", i), func(c *component.Instance) string {
			if pick {
				return fmt.Sprint(shared.UsePick(s, c, func(p profile) int { return p.Picked }))
			}
			return fmt.Sprint(s.Use(c).Picked)
		})
		if err != nil {
			return nil, err
		}
		instances = append(instances, c)
	}
	if err := rt.Flush(); err != nil {
		return nil, err
	}

	baseline := 0
	for _, c := range instances {
		baseline += c.Renders()
	}

	every := 0
	if cfg.pickedFraction > 0 {
		every = int(1 / cfg.pickedFraction)
	}

	start := time.Now()
	for i := int64(0); i < cfg.updates; i++ {
		touchPicked := every > 0 && i%int64(every) == 0
		s.SetFunc(func(p profile) profile {
			if touchPicked {
				p.Picked++
			} else {
				p.Other++
			}
			return p
		})
		if err := rt.Flush(); err != nil {
			return nil, err
		}
	}
	duration := time.Since(start)

	renders := -baseline
	for _, c := range instances {
		renders += c.Renders()
	}
	return &results{renders: renders, duration: duration}, nil
}
