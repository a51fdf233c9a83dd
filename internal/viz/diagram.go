package viz

import (
	"bytes"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"
)

const (
	diagramWidth  = 1200
	diagramHeight = 800

	maxRelations   = 15
	maxObjects     = 20
	maxTransitions = 20

	entityNameLimit = 15
)

// parseRelations reads "A -- B" lines into entity pairs, names truncated to
// entityNameLimit runes. Self relations are dropped.
func parseRelations(answer string) [][2]string {
	var rels [][2]string
	for _, line := range strings.Split(answer, "\n") {
		if !strings.Contains(line, "--") {
			continue
		}
		parts := strings.SplitN(line, "--", 2)
		a := truncate(strings.TrimSpace(parts[0]), entityNameLimit)
		b := truncate(strings.TrimSpace(parts[1]), entityNameLimit)
		if a == "" || b == "" || a == b {
			continue
		}
		rels = append(rels, [2]string{a, b})
		if len(rels) == maxRelations {
			break
		}
	}
	return rels
}

// renderERDiagram lays the entities out force-directed and draws square
// nodes joined by dashed relationship edges.
func renderERDiagram(answer string) ([]byte, error) {
	rels := parseRelations(answer)
	if len(rels) == 0 {
		return nil, nil
	}

	g := simple.NewUndirectedGraph()
	ids := make(map[string]int64)
	names := make([]string, 0, len(rels)*2)
	idFor := func(name string) int64 {
		if id, ok := ids[name]; ok {
			return id
		}
		id := int64(len(names))
		ids[name] = id
		names = append(names, name)
		g.AddNode(simple.Node(id))
		return id
	}
	for _, rel := range rels {
		a, b := idFor(rel[0]), idFor(rel[1])
		g.SetEdge(simple.Edge{F: simple.Node(a), T: simple.Node(b)})
	}

	eades := layout.EadesR2{Repulsion: 1, Rate: 0.05, Updates: 30, Theta: 0.2, Src: rand.NewSource(1)}
	opt := layout.NewOptimizerR2(g, eades.Update)
	for opt.Update() {
	}

	// Map layout coordinates onto the canvas with a margin.
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for id := range names {
		v := opt.Coord2(int64(id))
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	pos := make([][2]float64, len(names))
	for id := range names {
		v := opt.Coord2(int64(id))
		pos[id] = [2]float64{
			scaleCoord(v.X, minX, maxX, diagramWidth),
			scaleCoord(v.Y, minY, maxY, diagramHeight),
		}
	}

	dc := gg.NewContext(diagramWidth, diagramHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.3, 0.3, 0.3)
	dc.SetLineWidth(1.5)
	dc.SetDash(6, 4)
	for _, rel := range rels {
		a, b := pos[ids[rel[0]]], pos[ids[rel[1]]]
		dc.DrawLine(a[0], a[1], b[0], b[1])
		dc.Stroke()
	}
	dc.SetDash()

	const box = 110.0
	for id, name := range names {
		x, y := pos[id][0], pos[id][1]
		dc.SetHexColor("#ffd700")
		dc.DrawRectangle(x-box/2, y-box/4, box, box/2)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(name, x, y, 0.5, 0.5)
	}

	return encodeContext(dc)
}

// renderObjectDiagram draws "Name: attributes" lines as labeled boxes in a
// four-per-row grid.
func renderObjectDiagram(answer string) ([]byte, error) {
	type object struct{ name, attrs string }
	var objects []object
	for _, line := range strings.Split(answer, "\n") {
		if !strings.Contains(line, ":") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}
		objects = append(objects, object{name: name, attrs: strings.TrimSpace(parts[1])})
		if len(objects) == maxObjects {
			break
		}
	}
	if len(objects) == 0 {
		return nil, nil
	}

	dc := gg.NewContext(diagramWidth, diagramHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	const (
		perRow = 4
		boxW   = 250.0
		boxH   = 120.0
		gutter = 40.0
	)
	for i, obj := range objects {
		x := gutter + float64(i%perRow)*(boxW+gutter)
		y := gutter + float64(i/perRow)*(boxH+gutter)

		dc.SetHexColor("#a0c8f0")
		dc.DrawRectangle(x, y, boxW, boxH)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(truncate(obj.name, 28), x+boxW/2, y+boxH/3, 0.5, 0.5)
		dc.DrawStringAnchored(truncate(obj.attrs, 32), x+boxW/2, y+2*boxH/3, 0.5, 0.5)
	}

	return encodeContext(dc)
}

type transition struct{ src, dst, label string }

// parseTransitions reads "Src -> Dst [label]" lines: the label is the
// bracket contents, source and destination come from the arrow.
func parseTransitions(answer string) []transition {
	var ts []transition
	for _, line := range strings.Split(answer, "\n") {
		if !strings.Contains(line, "->") || !strings.Contains(line, "[") {
			continue
		}
		open := strings.Index(line, "[")
		label := ""
		if close := strings.Index(line[open:], "]"); close > 0 {
			label = strings.TrimSpace(line[open+1 : open+close])
		}
		arrow := strings.SplitN(line[:open], "->", 2)
		if len(arrow) != 2 {
			continue
		}
		src := strings.TrimSpace(arrow[0])
		dst := strings.TrimSpace(arrow[1])
		if src == "" || dst == "" {
			continue
		}
		ts = append(ts, transition{src: src, dst: dst, label: label})
		if len(ts) == maxTransitions {
			break
		}
	}
	return ts
}

// renderStateDiagram places states on a circle and draws labeled directed
// transition edges between them.
func renderStateDiagram(answer string) ([]byte, error) {
	ts := parseTransitions(answer)
	if len(ts) == 0 {
		return nil, nil
	}

	var states []string
	index := make(map[string]int)
	add := func(name string) {
		if _, ok := index[name]; !ok {
			index[name] = len(states)
			states = append(states, name)
		}
	}
	for _, t := range ts {
		add(t.src)
		add(t.dst)
	}

	cx, cy := float64(diagramWidth)/2, float64(diagramHeight)/2
	radius := math.Min(cx, cy) - 120
	pos := make([][2]float64, len(states))
	for i := range states {
		angle := 2 * math.Pi * float64(i) / float64(len(states))
		pos[i] = [2]float64{cx + radius*math.Cos(angle), cy + radius*math.Sin(angle)}
	}

	dc := gg.NewContext(diagramWidth, diagramHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for _, t := range ts {
		if t.src == t.dst {
			continue
		}
		a, b := pos[index[t.src]], pos[index[t.dst]]
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.SetLineWidth(1.5)
		drawArrow(dc, a[0], a[1], b[0], b[1], 55)
		if t.label != "" {
			dc.SetRGB(0.5, 0.1, 0.1)
			dc.DrawStringAnchored(t.label, (a[0]+b[0])/2, (a[1]+b[1])/2-8, 0.5, 0.5)
		}
	}

	const box = 110.0
	for i, name := range states {
		x, y := pos[i][0], pos[i][1]
		dc.SetHexColor("#90EE90")
		dc.DrawRectangle(x-box/2, y-box/4, box, box/2)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(truncate(name, entityNameLimit), x, y, 0.5, 0.5)
	}

	return encodeContext(dc)
}

const maxPieSlices = 8

// renderPieChart draws the leading numeric tokens as wedges sized by share.
func renderPieChart(answer string) ([]byte, error) {
	vals := numericTokens(answer)
	if len(vals) < 2 {
		return nil, nil
	}
	if len(vals) > maxPieSlices {
		vals = vals[:maxPieSlices]
	}
	var total float64
	for _, v := range vals {
		total += math.Abs(v)
	}
	if total == 0 {
		return nil, nil
	}

	dc := gg.NewContext(960, 640)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	cx, cy, r := 480.0, 320.0, 240.0
	angle := -math.Pi / 2
	for _, v := range vals {
		span := 2 * math.Pi * math.Abs(v) / total
		c := randomColor()
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), 255)
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, r, angle, angle+span)
		dc.ClosePath()
		dc.Fill()

		mid := angle + span/2
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(trimFloat(v), cx+0.7*r*math.Cos(mid), cy+0.7*r*math.Sin(mid), 0.5, 0.5)
		angle += span
	}

	return encodeContext(dc)
}

// drawArrow strokes a line from (x1,y1) toward (x2,y2), stopping short by
// pad, with a filled head at the tip.
func drawArrow(dc *gg.Context, x1, y1, x2, y2, pad float64) {
	dx, dy := x2-x1, y2-y1
	dist := math.Hypot(dx, dy)
	if dist <= 2*pad {
		return
	}
	ux, uy := dx/dist, dy/dist
	sx, sy := x1+ux*pad, y1+uy*pad
	ex, ey := x2-ux*pad, y2-uy*pad

	dc.DrawLine(sx, sy, ex, ey)
	dc.Stroke()

	const head = 10.0
	px, py := -uy, ux
	dc.MoveTo(ex, ey)
	dc.LineTo(ex-ux*head+px*head/2, ey-uy*head+py*head/2)
	dc.LineTo(ex-ux*head-px*head/2, ey-uy*head-py*head/2)
	dc.ClosePath()
	dc.Fill()
}

func encodeContext(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scaleCoord(v, min, max float64, size int) float64 {
	const margin = 100.0
	span := max - min
	if span == 0 {
		return float64(size) / 2
	}
	return margin + (v-min)/span*(float64(size)-2*margin)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
