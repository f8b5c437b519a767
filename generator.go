package main

import (
	"image/color"
	"math"
	"math/rand"
)

// CubeGenerator synthesizes frames of a wireframe cube that spins at a fixed
// angular speed while travelling between random points on the inset border
// of the frame.
type CubeGenerator struct {
	CubeSize    float64
	SpinSpeed   float64
	TravelSpeed float64
	Inset       float64
	StrokeWidth float64
	Primary     color.NRGBA
	Secondary   color.NRGBA
	rng         *rand.Rand
}

func NewCubeGenerator(seed int64) *CubeGenerator {
	return &CubeGenerator{
		CubeSize:    100,
		SpinSpeed:   0.02,
		TravelSpeed: 4,
		Inset:       100,
		StrokeWidth: 3,
		Primary:     color.NRGBA{A: 255},
		Secondary:   color.NRGBA{R: 179, G: 179, B: 179, A: 255},
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Generate returns exactly frameCount fully committed frames of the given size.
func (g *CubeGenerator) Generate(frameCount int, size Size) []Frame {
	if frameCount <= 0 {
		return nil
	}
	path := g.travelPath(frameCount, size)
	frames := make([]Frame, 0, frameCount)
	for i, center := range path {
		spin := g.SpinSpeed * float64(i)
		top := g.facePoints(center.movedBy(0, -g.CubeSize/2), spin)
		bottom := g.facePoints(center.movedBy(0, g.CubeSize/2), spin)
		frames = append(frames, sealed(size, g.cubeStrokes(top, bottom)))
	}
	return frames
}

// insetRect is the rectangle whose perimeter the cube travels on. A frame
// too small for the inset collapses it to the frame center.
func (g *CubeGenerator) insetRect(size Size) Rect {
	inset := g.Inset
	if 2*inset > size.Width || 2*inset > size.Height {
		inset = min(size.Width, size.Height) / 2
	}
	return Rect{X: inset, Y: inset, Width: size.Width - 2*inset, Height: size.Height - 2*inset}
}

// maxTargetAttempts bounds the redraws of a target that lies within one
// step; after that many the cube holds for a frame.
const maxTargetAttempts = 32

func (g *CubeGenerator) travelPath(count int, size Size) []Point {
	r := g.insetRect(size)
	cur := g.perimeterPoint(r)
	path := []Point{cur}
	if (r.Width <= 0 && r.Height <= 0) || g.TravelSpeed <= 0 {
		for len(path) < count {
			path = append(path, cur)
		}
		return path
	}
	misses := 0
	for len(path) < count {
		target := g.perimeterPoint(r)
		if cur.distance(target) <= g.TravelSpeed {
			// Too close to travel to; pick another target.
			misses++
			if misses < maxTargetAttempts {
				continue
			}
			path = append(path, cur)
		}
		misses = 0
		for cur.distance(target) > g.TravelSpeed && len(path) < count {
			d := cur.distance(target)
			cur = cur.movedBy((target.X-cur.X)/d*g.TravelSpeed, (target.Y-cur.Y)/d*g.TravelSpeed)
			path = append(path, cur)
		}
	}
	return path[:count]
}

func (g *CubeGenerator) perimeterPoint(r Rect) Point {
	perimeter := 2 * (r.Width + r.Height)
	if perimeter <= 0 {
		return Point{X: r.X, Y: r.Y}
	}
	t := g.rng.Float64() * perimeter
	switch {
	case t < r.Width:
		return Point{X: r.X + t, Y: r.Y}
	case t < r.Width+r.Height:
		return Point{X: r.X + r.Width, Y: r.Y + t - r.Width}
	case t < 2*r.Width+r.Height:
		return Point{X: r.X + r.Width - (t - r.Width - r.Height), Y: r.Y + r.Height}
	default:
		return Point{X: r.X, Y: r.Y + r.Height - (t - 2*r.Width - r.Height)}
	}
}

// facePoints returns the corners of a square face rotated by spin.
func (g *CubeGenerator) facePoints(center Point, spin float64) []Point {
	radius := g.CubeSize / math.Sqrt2
	sideAngle := 2 * math.Pi / squareSides
	points := make([]Point, squareSides)
	for i := range points {
		angle := spin + float64(i)*sideAngle
		points[i] = center.movedBy(radius*math.Cos(angle), -radius*math.Sin(angle))
	}
	return points
}

// cubeStrokes emits bottom, vertical and top edges in that order. Edges
// meeting the back bottom corner (smallest screen Y) use the secondary color.
func (g *CubeGenerator) cubeStrokes(top, bottom []Point) []Stroke {
	far := 0
	for i, p := range bottom {
		if p.Y < bottom[far].Y {
			far = i
		}
	}
	colorFor := func(secondary bool) color.NRGBA {
		if secondary {
			return g.Secondary
		}
		return g.Primary
	}
	edge := func(c color.NRGBA, a, b Point) Stroke {
		return NewFreehandStroke(c, g.StrokeWidth, []Point{a, b})
	}

	strokes := make([]Stroke, 0, 3*squareSides)
	for i := 0; i < squareSides; i++ {
		next := (i + 1) % squareSides
		strokes = append(strokes, edge(colorFor(i == far || next == far), bottom[i], bottom[next]))
	}
	for i := 0; i < squareSides; i++ {
		strokes = append(strokes, edge(colorFor(i == far), top[i], bottom[i]))
	}
	for i := 0; i < squareSides; i++ {
		strokes = append(strokes, edge(g.Primary, top[i], top[(i+1)%squareSides]))
	}
	return strokes
}
