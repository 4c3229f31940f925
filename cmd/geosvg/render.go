package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"geosvg/geom"
	"geosvg/internal/config"
	"geosvg/svg"
)

type renderOptions struct {
	wkt      string
	out      string
	logLevel string

	margin        float64
	radius        float64
	opacity       float64
	fill          string
	fillOpacity   float64
	stroke        string
	strokeWidth   float64
	strokeOpacity float64
}

func newRenderCmd(logger *log.Logger) *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Write an SVG document for a WKT, GeoJSON, KML or CSV file",
		Long: "Write an SVG document for a WKT, GeoJSON, KML or CSV file.\n" +
			"Use - to read WKT from standard input, or pass --wkt.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			o.overlay(cmd, &cfg)
			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			logger.SetLevel(level)
			return runRender(cmd, logger, cfg, o, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.wkt, "wkt", "", "WKT text to render instead of a file")
	f.StringVarP(&o.out, "output", "o", "", "write to this file instead of stdout")
	f.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	f.Float64Var(&o.margin, "margin", 0, "space added around the view box")
	f.Float64Var(&o.radius, "radius", 1, "point radius")
	f.Float64Var(&o.opacity, "opacity", 1, "overall opacity")
	f.StringVar(&o.fill, "fill", "", "fill color: name, #hex, 0xhex, rgb() or hsl()")
	f.Float64Var(&o.fillOpacity, "fill-opacity", 1, "fill opacity")
	f.StringVar(&o.stroke, "stroke", "", "stroke color: name, #hex, 0xhex, rgb() or hsl()")
	f.Float64Var(&o.strokeWidth, "stroke-width", 1, "stroke width")
	f.Float64Var(&o.strokeOpacity, "stroke-opacity", 1, "stroke opacity")
	return cmd
}

// overlay copies every flag the user set onto cfg.
func (o renderOptions) overlay(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	set := func(name string, dst **float64, v float64) {
		if f.Changed(name) {
			*dst = &v
		}
	}
	set("margin", &cfg.Margin, o.margin)
	set("radius", &cfg.Style.Radius, o.radius)
	set("opacity", &cfg.Style.Opacity, o.opacity)
	set("fill-opacity", &cfg.Style.FillOpacity, o.fillOpacity)
	set("stroke-width", &cfg.Style.StrokeWidth, o.strokeWidth)
	set("stroke-opacity", &cfg.Style.StrokeOpacity, o.strokeOpacity)
	if f.Changed("fill") {
		cfg.Style.Fill = o.fill
	}
	if f.Changed("stroke") {
		cfg.Style.Stroke = o.stroke
	}
	if f.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
}

func runRender(cmd *cobra.Command, logger *log.Logger, cfg config.Config, o renderOptions, args []string) error {
	d, err := readInput(cmd.InOrStdin(), o.wkt, args)
	if err != nil {
		return err
	}
	logger.Info("loaded", "input", d.Name, "shapes", len(d.Shapes), "counts", geom.Count(d.Shapes))

	doc, err := cfg.Document(document(d))
	if err != nil {
		return err
	}
	vb := doc.ViewBox()
	if vb.IsEmpty() {
		logger.Warn("nothing visible, view box is empty")
	}

	if o.out == "" {
		n, err := doc.WriteTo(cmd.OutOrStdout())
		if err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		logger.Debug("wrote", "bytes", n, "viewBox", vb.Attr())
		return nil
	}
	n, err := writeFile(o.out, doc)
	if err != nil {
		return err
	}
	logger.Info("wrote", "output", o.out, "bytes", n, "viewBox", vb.Attr())
	return nil
}

// writeFile writes the document to path. A failed close is reported
// like a failed write.
func writeFile(path string, doc io.WriterTo) (int64, error) {
	fh, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := doc.WriteTo(fh)
	if err != nil {
		fh.Close()
		return n, fmt.Errorf("write svg: %w", err)
	}
	if err := fh.Close(); err != nil {
		return n, fmt.Errorf("close %s: %w", path, err)
	}
	return n, nil
}

// readInput picks the data source: --wkt text, WKT on stdin for "-",
// or a file loaded by extension.
func readInput(stdin io.Reader, wkt string, args []string) (geom.Dataset, error) {
	switch {
	case wkt != "" && len(args) > 0:
		return geom.Dataset{}, errors.New("give either a file or --wkt, not both")
	case wkt != "":
		return parseWKTInput("<wkt>", wkt)
	case len(args) == 0:
		return geom.Dataset{}, errors.New("nothing to render: give a file or --wkt")
	case args[0] == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return geom.Dataset{}, fmt.Errorf("read stdin: %w", err)
		}
		return parseWKTInput("<stdin>", string(data))
	}
	return geom.Load(args[0])
}

func parseWKTInput(name, text string) (geom.Dataset, error) {
	g, err := geom.ParseWKT(strings.TrimSpace(text))
	if err != nil {
		return geom.Dataset{}, err
	}
	return geom.Dataset{Name: name, Shapes: geom.Collection{g}}, nil
}

// document places every shape of d in its own sibling node.
func document(d geom.Dataset) svg.Svg {
	doc := svg.New()
	for _, g := range d.Shapes {
		doc = doc.And(svg.FromGeometry(g))
	}
	return doc
}
