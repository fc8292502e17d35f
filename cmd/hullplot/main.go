// Command hullplot reads 2D points from stdin, computes their convex
// hull, and renders input and hull to a PNG file.
//
// Input is one point per line as whitespace-separated "x y" coordinates.
//
//	hullplot --algorithm=chan --out=hull.png < points.txt
package main

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/npillmayer/arithm"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/npillmayer/hull"
	"github.com/npillmayer/hull/graham"
	"github.com/npillmayer/hull/increm"
	"github.com/npillmayer/hull/jarvis"
	"github.com/npillmayer/hull/tchan"
)

const padding = 20

var (
	algorithm = kingpin.Flag("algorithm", "Hull algorithm to run").Short('a').
			Default("graham").Enum("graham", "jarvis", "chan", "incremental")
	out   = kingpin.Flag("out", "Output PNG file").Short('o').Default("hull.png").String()
	scale = kingpin.Flag("scale", "Pixels per coordinate unit").Default("10").Float64()
)

func main() {
	kingpin.Parse()
	points, err := readPoints(os.Stdin)
	if err != nil {
		kingpin.Fatalf("reading points: %v", err)
	}
	if len(points) == 0 {
		kingpin.Fatalf("no points on stdin")
	}

	var h hull.Ring
	switch *algorithm {
	case "graham":
		h = graham.Scan(points, nil)
	case "jarvis":
		h = jarvis.March(points, nil)
	case "chan":
		h = tchan.Hull(points, nil)
	case "incremental":
		h = increm.Hull(points, nil)
	}
	fmt.Printf("%d points, hull has %d vertices\n", len(points), h.N())

	if err := draw(points, h, *scale, *out); err != nil {
		kingpin.Fatalf("rendering: %v", err)
	}
	fmt.Printf("wrote %s\n", *out)
}

func readPoints(in *os.File) ([]arithm.Pair, error) {
	var points []arithm.Pair
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			return nil, fmt.Errorf("malformed line %q", line)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, err
		}
		points = append(points, arithm.P(x, y))
	}
	return points, scanner.Err()
}

func draw(points []arithm.Pair, h hull.Ring, scale float64, path string) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X())
		minY = math.Min(minY, p.Y())
		maxX = math.Max(maxX, p.X())
		maxY = math.Max(maxY, p.Y())
	}

	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	if h.N() >= 2 {
		c.MoveTo(h[0].X(), h[0].Y())
		for _, p := range h[1:] {
			c.LineTo(p.X(), p.Y())
		}
		c.ClosePath()
		c.SetRGB(0.85, 0.93, 1)
		c.FillPreserve()
		c.SetRGB(0, 0.3, 0.8)
		c.SetLineWidth(2 / scale)
		c.Stroke()
	}

	c.SetRGB(0.8, 0.1, 0.1)
	for _, p := range points {
		c.DrawCircle(p.X(), p.Y(), 3/scale)
		c.Fill()
	}
	return c.SavePNG(path)
}
