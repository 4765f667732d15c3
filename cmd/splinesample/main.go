// Command splinesample evaluates a spline described by a TOML file and prints
// samples of it, one per line.
//
// The configuration file looks like this:
//
//	scheme = "catmull-rom"
//	resolution = 16
//	closed = false
//	points = [
//		[0.0, 0.0, 0.0],
//		[1.0, 0.0, 0.0],
//		[1.0, 1.0, 0.0],
//		[0.0, 1.0, 0.0],
//	]
//
// By default, the curve is sampled at resolution evenly spaced parameters and
// every line has the form "t x y z tx ty tz". With -distance N, it is sampled
// at N points evenly spaced along the curve instead, and every line has the
// form "d x y z".
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/spline"
)

// config is the contents of a configuration file.
type config struct {
	spline.Options
	Points [][3]float64 `toml:"points"`
}

func load(path string) (config, error) {
	var cfg config
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			keys := make([]string, len(serr.Errors))
			for i, e := range serr.Errors {
				keys[i] = strings.Join(e.Key(), ".")
			}
			return cfg, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, fmt.Errorf("%s:%d:%d: %s", path, row, col, derr)
		}
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "splinesample:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("splinesample", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML file describing the spline")
		schemeName = fs.String("scheme", "", "Interpolation scheme, overriding the config (catmull-rom or bezier)")
		resolution = fs.Int("resolution", 0, "Number of samples, overriding the config")
		closed     = fs.Bool("closed", false, "Close the curve, overriding the config")
		distance   = fs.Int("distance", 0, "Print this many points evenly spaced by arc length")
		verbose    = fs.Bool("v", false, "Log debug output to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return errors.New("missing -config")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := load(*configPath)
	if err != nil {
		return err
	}
	var ferr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scheme":
			s, err := spline.ParseScheme(*schemeName)
			if err != nil {
				ferr = err
			}
			cfg.Scheme = s
		case "resolution":
			cfg.Resolution = *resolution
		case "closed":
			cfg.Closed = *closed
		}
	})
	if ferr != nil {
		return ferr
	}
	cfg.Logger = logger

	cp := spline.NewControlPoints()
	for _, p := range cfg.Points {
		cp.Append(spline.Pt(p[0], p[1], p[2]))
	}
	s, err := spline.New(cp, cfg.Options)
	if err != nil {
		return err
	}
	logger.Debug("loaded spline",
		slog.String("config", *configPath),
		slog.String("scheme", cfg.Scheme.String()),
		slog.Int("points", cp.Len()),
		slog.Bool("closed", cfg.Closed))

	w := bufio.NewWriter(stdout)
	if *distance != 0 {
		err = sampleByDistance(w, s, *distance)
	} else {
		err = sampleByParam(w, s)
	}
	if err != nil {
		return err
	}
	return w.Flush()
}

func sampleByParam(w io.Writer, s *spline.Spline) error {
	cache := s.Cache()
	if err := cache.Refresh(); err != nil {
		return err
	}
	pts := cache.Points()
	for i, p := range pts {
		t := float64(i) / float64(len(pts)-1)
		v, err := s.Tangent(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%g %g %g %g %g %g %g\n", t, p.X, p.Y, p.Z, v.X, v.Y, v.Z)
	}
	return nil
}

func sampleByDistance(w io.Writer, s *spline.Spline, n int) error {
	if n < 2 {
		return fmt.Errorf("-distance %d: need at least 2 points", n)
	}
	l, err := s.Length()
	if err != nil {
		return err
	}
	for i := range n {
		d := l * float64(i) / float64(n-1)
		p, err := s.PositionAtDistance(d)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%g %g %g %g\n", d, p.X, p.Y, p.Z)
	}
	return nil
}
