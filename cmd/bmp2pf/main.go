package main

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/playfield"
	"github.com/bodgit/playfield/layout"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

var (
	errMissing  = errors.New("--file and --out are required")
	errSymmetry = errors.New("--symmetrical and --asymmetrical are mutually exclusive")
	errMode     = errors.New("--mirrored and --repeated are mutually exclusive")
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "load options from YAML `FILE`",
		},
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "image `FILE` to parse",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "output `FILE` name",
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:    "buffer",
			Aliases: []string{"b"},
			Usage:   "add a buffer of empty rows to the output file",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "full-scale",
			Aliases: []string{"x"},
			Usage:   "input image has each bit as 4 pixels wide",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "symmetrical",
			Aliases: []string{"s"},
			Usage:   "generate symmetrical playfield (default)",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "asymmetrical",
			Aliases: []string{"a"},
			Usage:   "generate asymmetrical playfield",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "mirrored",
			Aliases: []string{"m"},
			Usage:   "PF registers in mirror mode (default when symmetrical)",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:    "repeated",
			Aliases: []string{"r"},
			Usage:   "PF registers in repeat mode (default when asymmetrical)",
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:    "kernel",
			Aliases: []string{"k"},
			Value:   1,
			Usage:   "number of scan lines per kernel loop",
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:  "collision-resolution",
			Usage: "number of scan lines per collision line, if more than --kernel",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:  "no-color",
			Usage: "do not add color info to output file",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:  "no-collision",
			Usage: "do not add collision info to output file",
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:  "separate-collision",
			Usage: "write collision info to a separate _collision file",
		}),
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    "prefix",
			EnvVars: []string{"BMP2PF_PREFIX"},
			Usage:   "prefix for each output section name",
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:  "colors",
			Usage: "reduce the image to at most `N` colors before parsing",
		}),
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}
}

func options(c *cli.Context) (playfield.Options, error) {
	opts := playfield.DefaultOptions()

	if c.String("file") == "" || c.String("out") == "" {
		return opts, errMissing
	}
	if c.Bool("symmetrical") && c.Bool("asymmetrical") {
		return opts, errSymmetry
	}
	if c.Bool("mirrored") && c.Bool("repeated") {
		return opts, errMode
	}

	if c.Bool("asymmetrical") {
		opts.Symmetry = layout.Asymmetrical
		opts.Mode = layout.Repeat
	}

	switch {
	case c.Bool("mirrored"):
		opts.Mode = layout.Mirror
	case c.Bool("repeated"):
		opts.Mode = layout.Repeat
	}

	opts.FullScale = c.Bool("full-scale")
	opts.KernelLines = c.Int("kernel")
	opts.CollisionResolution = c.Int("collision-resolution")
	opts.ExcludeColor = c.Bool("no-color")
	opts.ExcludeCollision = c.Bool("no-collision")
	opts.SeparateCollisionFile = c.Bool("separate-collision")
	opts.BufferLines = c.Int("buffer")
	opts.SectionPrefix = c.String("prefix")
	opts.Colors = c.Int("colors")

	return opts, opts.Validate()
}

func loadConfig(c *cli.Context) (altsrc.InputSourceContext, error) {
	if c.String("config") == "" {
		return &altsrc.MapInputSource{}, nil
	}
	return altsrc.NewYamlSourceFromFlagFunc("config")(c)
}

func generate(c *cli.Context) error {
	opts, err := options(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	output := c.String("out")
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return cli.Exit(err, 1)
	}

	if err := playfield.New(opts, logger).Generate(c.String("file"), output); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "bmp2pf"
	app.Usage = "Convert an image into Atari 2600 playfield data"
	app.Version = "1.0.0"

	app.Flags = flags()
	app.Before = altsrc.InitInputSourceWithContext(app.Flags, loadConfig)
	app.Action = generate

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
