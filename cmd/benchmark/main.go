package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/sharedstate/component"
	"github.com/delaneyj/sharedstate/shared"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	profileKey = "profile"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure how long a Set takes to reach its observers",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  itersKey,
				Usage: "Number of timed Set calls per row",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
		},
		Action: benchmark,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

var ww = []int{1, 10, 100, 1_000}

type point struct {
	X, Y int
}

type setup func(s *shared.State[point], rt *component.Runtime, w int) error

func benchmark(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("can't create profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("can't start profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Int(itersKey))
	log.Printf("warming up")

	rows := []struct {
		title string
		setup setup
	}{
		{"Observers", observers},
		{"Use", useComponents},
		{"UsePick, projection unchanged", pickComponents},
	}
	for _, row := range rows {
		if err := run(row.title, row.setup, iters); err != nil {
			return err
		}
	}
	return nil
}

func observers(s *shared.State[point], rt *component.Runtime, w int) error {
	for i := 0; i < w; i++ {
		s.Observe(func(prev, next point) {})
	}
	return nil
}

func useComponents(s *shared.State[point], rt *component.Runtime, w int) error {
	for i := 0; i < w; i++ {
		_, err := rt.Mount(fmt.Sprintf("use-%d", i), func(c *component.Instance) string {
			s.Use(c)
			return ""
		})
		if err != nil {
			return err
		}
	}
	return rt.Flush()
}

func pickComponents(s *shared.State[point], rt *component.Runtime, w int) error {
	for i := 0; i < w; i++ {
		_, err := rt.Mount(fmt.Sprintf("pick-%d", i), func(c *component.Instance) string {
			shared.UsePick(s, c, func(p point) int { return p.Y })
			return ""
		})
		if err != nil {
			return err
		}
	}
	return rt.Flush()
}

func run(title string, setup setup, iters int) error {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		rt := component.New(component.WithOnError(func(from *component.Instance, err error) {
			log.Panic(err)
		}))
		s := shared.Create(point{})
		if err := setup(s, rt, w); err != nil {
			return fmt.Errorf("can't set up %s with %d: %w", title, w, err)
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			s.SetFunc(func(p point) point {
				p.X++
				return p
			})
			if err := rt.Flush(); err != nil {
				return err
			}
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("set: %d subscribers", w),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	tbl.Render()
	return nil
}
