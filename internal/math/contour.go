package math

// Point is a position on the plane.
type Point struct {
	X float64
	Y float64
}

// Line is an ordered polyline.
type Line []Point

// Middle returns the vertex in the middle of the line.
func (l Line) Middle() Point {
	return l[len(l)/2]
}

// Contour holds the iso-lines of a single level.
type Contour struct {
	Level float64
	Lines []Line
}

// Levels spreads n iso-values evenly inside the observed range of the field,
// excluding the extremes themselves. A constant field has no levels.
func Levels(f *Field, n int) []float64 {
	min, max := f.Min(), f.Max()
	if n <= 0 || max <= min {
		return nil
	}
	levels := make([]float64, n)
	d := (max - min) / float64(n+1)
	for k := range levels {
		levels[k] = min + float64(k+1)*d
	}
	return levels
}

// Contours extracts the iso-lines of the field at each level with marching squares.
// Crossings are linearly interpolated along the cell edges, segments sharing
// an edge crossing are joined into polylines. Levels without crossings are omitted.
func Contours(g Grid, f *Field, levels []float64) ([]Contour, error) {
	if err := g.Fits(f); err != nil {
		return nil, err
	}
	contours := make([]Contour, 0, len(levels))
	for _, level := range levels {
		m := marcher{grid: g, field: f, level: level}
		lines := m.lines()
		if len(lines) == 0 {
			continue
		}
		contours = append(contours, Contour{Level: level, Lines: lines})
	}
	return contours, nil
}

// cell edges
const (
	bottom = iota
	right
	top
	left
)

// cases lists the crossed edge pairs for each corner configuration.
// bit 0 is the bottom-left corner, then counter-clockwise.
// The saddles 5 and 10 are resolved in the marcher.
var cases = [16][][2]int{
	0:  nil,
	1:  {{left, bottom}},
	2:  {{bottom, right}},
	3:  {{left, right}},
	4:  {{right, top}},
	6:  {{bottom, top}},
	7:  {{left, top}},
	8:  {{left, top}},
	9:  {{bottom, top}},
	11: {{right, top}},
	12: {{left, right}},
	13: {{bottom, right}},
	14: {{left, bottom}},
	15: nil,
}

type marcher struct {
	grid  Grid
	field *Field
	level float64
}

func (m marcher) above(r, c int) bool {
	return m.field.At(r, c) > m.level
}

// edge returns a unique id for the given side of the cell at (r, c).
// Horizontal edges are even, vertical edges are odd.
func (m marcher) edge(r, c, side int) int {
	w := len(m.grid.X)
	switch side {
	case bottom:
		return 2 * (r*w + c)
	case top:
		return 2 * ((r+1)*w + c)
	case left:
		return 2*(r*w+c) + 1
	default:
		return 2*(r*w+c+1) + 1
	}
}

// crossing interpolates the position of the level on the given edge.
func (m marcher) crossing(id int) Point {
	w := len(m.grid.X)
	i := id / 2
	r, c := i/w, i%w
	if id%2 == 0 {
		a, b := m.field.At(r, c), m.field.At(r, c+1)
		t := (m.level - a) / (b - a)
		return Point{X: m.grid.X[c] + t*(m.grid.X[c+1]-m.grid.X[c]), Y: m.grid.Y[r]}
	}
	a, b := m.field.At(r, c), m.field.At(r+1, c)
	t := (m.level - a) / (b - a)
	return Point{X: m.grid.X[c], Y: m.grid.Y[r] + t*(m.grid.Y[r+1]-m.grid.Y[r])}
}

func (m marcher) segments() [][2]int {
	w, h := m.grid.Dims()
	segs := make([][2]int, 0)
	for r := 0; r < h-1; r++ {
		for c := 0; c < w-1; c++ {
			idx := 0
			if m.above(r, c) {
				idx |= 1
			}
			if m.above(r, c+1) {
				idx |= 2
			}
			if m.above(r+1, c+1) {
				idx |= 4
			}
			if m.above(r+1, c) {
				idx |= 8
			}
			var pairs [][2]int
			switch idx {
			case 5, 10:
				centre := (m.field.At(r, c)+m.field.At(r, c+1)+m.field.At(r+1, c+1)+m.field.At(r+1, c))/4 > m.level
				// cut off the corners that are not connected through the centre
				if (idx == 5) == centre {
					pairs = [][2]int{{bottom, right}, {left, top}}
				} else {
					pairs = [][2]int{{left, bottom}, {right, top}}
				}
			default:
				pairs = cases[idx]
			}
			for _, p := range pairs {
				segs = append(segs, [2]int{m.edge(r, c, p[0]), m.edge(r, c, p[1])})
			}
		}
	}
	return segs
}

func (m marcher) lines() []Line {
	segs := m.segments()
	if len(segs) == 0 {
		return nil
	}

	ends := make(map[int][]int)
	for i, s := range segs {
		ends[s[0]] = append(ends[s[0]], i)
		ends[s[1]] = append(ends[s[1]], i)
	}
	used := make([]bool, len(segs))

	walk := func(i, from int) Line {
		line := Line{m.crossing(from)}
		e := from
		for {
			used[i] = true
			if segs[i][0] == e {
				e = segs[i][1]
			} else {
				e = segs[i][0]
			}
			line = append(line, m.crossing(e))
			next := -1
			for _, j := range ends[e] {
				if !used[j] {
					next = j
					break
				}
			}
			if next < 0 {
				return line
			}
			i = next
		}
	}

	lines := make([]Line, 0)
	// open lines start on the domain boundary
	for i, s := range segs {
		if used[i] {
			continue
		}
		for _, e := range s {
			if len(ends[e]) == 1 {
				lines = append(lines, walk(i, e))
				break
			}
		}
	}
	// whatever is left forms closed loops
	for i, s := range segs {
		if !used[i] {
			lines = append(lines, walk(i, s[0]))
		}
	}
	return lines
}
