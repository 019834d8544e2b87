package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

type options struct {
	input   string
	svg     string
	samples []string
	png     string
	scale   float64
	imgcat  bool
	tree    bool
}

// Triangulate a point set and answer point location queries against it.
//
// Points are read as newline separated "x y" pairs from stdin, or from a file.
// Each output line is a triangle, given as three zero based point indices.
func main() {
	var opts options
	app := kingpin.New("delaunay", "Delaunay triangulation and point location.")
	app.Flag("input", "Read points from FILE instead of stdin.").Short('i').PlaceHolder("FILE").ExistingFileVar(&opts.input)
	app.Flag("svg", "Read points from the circles in an SVG file.").PlaceHolder("FILE").ExistingFileVar(&opts.svg)
	app.Flag("sample", "Print the triangle containing X,Y. May be repeated.").PlaceHolder("X,Y").StringsVar(&opts.samples)
	app.Flag("png", "Render the mesh and its hierarchy to a PNG file.").PlaceHolder("FILE").StringVar(&opts.png)
	app.Flag("scale", "Pixels per unit when rendering.").Default("1").Float64Var(&opts.scale)
	app.Flag("imgcat", "Render the mesh to the terminal.").BoolVar(&opts.imgcat)
	app.Flag("tree", "Print the bounding volume hierarchy.").BoolVar(&opts.tree)
	verbosity := app.Flag("verbose", "Log verbosity. Repeat for more.").Short('v').Counter()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// glog reads its settings from the standard flag set
	flag.Set("logtostderr", "true")
	flag.Set("v", strconv.Itoa(*verbosity))
	flag.CommandLine.Parse(nil)
	defer glog.Flush()

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		glog.Fatal(err)
	}
}

func run(opts options, stdin io.Reader, out io.Writer) error {
	coordinates, err := loadCoordinates(opts, stdin)
	if err != nil {
		return err
	}
	glog.Infof("Read %d points", len(coordinates)/2)

	indices, err := delaunay.BuildTriangulation(coordinates)
	if err != nil {
		return err
	}
	glog.Infof("Triangulated into %d triangles", len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		fmt.Fprintf(out, "%d %d %d\n", indices[i], indices[i+1], indices[i+2])
	}

	if len(opts.samples) == 0 && !opts.tree && opts.png == "" && !opts.imgcat {
		return nil
	}

	var bvh *delaunay.BVH
	if len(indices) == 0 {
		bvh = &delaunay.BVH{}
	} else if bvh, err = delaunay.NewBVHWithTriangulation(coordinates, indices); err != nil {
		return err
	}
	if index := bvh.Index(); index != nil && glog.V(1) {
		glog.Infof("Hierarchy has %d nodes, depth %d", index.Len(), index.Depth())
	}

	for _, sample := range opts.samples {
		x, y, err := parseSample(sample)
		if err != nil {
			return err
		}
		if err := printSample(out, bvh.Sample(x, y)); err != nil {
			return err
		}
	}

	if opts.tree && bvh.Index() != nil {
		fmt.Fprint(out, bvh.Index())
	}

	if opts.png != "" || opts.imgcat {
		return render(opts, coordinates, bvh.Index(), out)
	}
	return nil
}

func loadCoordinates(opts options, stdin io.Reader) ([]float64, error) {
	switch {
	case opts.svg != "":
		file, err := os.Open(opts.svg)
		if err != nil {
			return nil, errors.Wrap(err, "opening svg")
		}
		defer file.Close()
		return readSVGPoints(file)
	case opts.input != "":
		file, err := os.Open(opts.input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer file.Close()
		return readPoints(file)
	default:
		return readPoints(stdin)
	}
}

func printSample(out io.Writer, triangle []float64) error {
	if triangle == nil {
		_, err := fmt.Fprintln(out, "none")
		return err
	}
	values := make([]string, len(triangle))
	for i, v := range triangle {
		values[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	_, err := fmt.Fprintln(out, strings.Join(values, " "))
	return err
}

func render(opts options, coordinates []float64, index *advanced.BVH, out io.Writer) error {
	points := make([]advanced.Point, len(coordinates)/2)
	for i := range points {
		points[i] = advanced.Point{X: coordinates[2*i], Y: coordinates[2*i+1]}
	}
	var triangles []*advanced.Triangle
	if index != nil {
		triangles = index.Triangles()
	}

	if opts.png != "" {
		file, err := os.Create(opts.png)
		if err != nil {
			return errors.Wrap(err, "creating png")
		}
		if err := advanced.DrawMesh(file, points, triangles, index, opts.scale); err != nil {
			file.Close()
			return errors.Wrap(err, "rendering png")
		}
		if err := file.Close(); err != nil {
			return err
		}
		glog.V(1).Infof("Wrote %s", opts.png)
	}

	if opts.imgcat {
		return advanced.PrintMesh(out, points, triangles, index, opts.scale)
	}
	return nil
}
