package viz

import (
	"strconv"
	"strings"

	"github.com/fogleman/gg"
)

const maxFlowSteps = 10

// parseFlowSteps reads numbered ("1.", "2.", "3.") and bulleted ("- ")
// lines, stripping the two-character prefix, capped at maxFlowSteps.
func parseFlowSteps(answer string) []string {
	var steps []string
	for _, line := range strings.Split(answer, "\n") {
		if !strings.HasPrefix(line, "1.") && !strings.HasPrefix(line, "2.") &&
			!strings.HasPrefix(line, "3.") && !strings.HasPrefix(line, "- ") {
			continue
		}
		step := strings.TrimSpace(line[2:])
		if step == "" {
			continue
		}
		steps = append(steps, step)
		if len(steps) == maxFlowSteps {
			break
		}
	}
	return steps
}

// renderFlowChart stacks the parsed steps as labeled boxes joined by
// downward arrows. Fewer than two steps render nothing.
func renderFlowChart(answer string) ([]byte, error) {
	steps := parseFlowSteps(answer)
	if len(steps) < 2 {
		return nil, nil
	}

	const (
		width  = 1200
		boxW   = 900.0
		boxH   = 54.0
		gap    = 36.0
		margin = 40.0
	)
	height := int(2*margin + float64(len(steps))*boxH + float64(len(steps)-1)*gap)

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	x := (float64(width) - boxW) / 2
	for i, step := range steps {
		y := margin + float64(i)*(boxH+gap)

		dc.SetRGBA(0.29, 0.53, 0.91, 0.3) // #4a86e8 at 30%
		dc.DrawRectangle(x, y, boxW, boxH)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(truncate(step, 110), float64(width)/2, y+boxH/2, 0.5, 0.5)

		if i < len(steps)-1 {
			dc.SetRGB(0, 0, 0)
			dc.SetLineWidth(2)
			drawArrow(dc, float64(width)/2, y+boxH, float64(width)/2, y+boxH+gap, 4)
		}
	}

	return encodeContext(dc)
}

// trimFloat formats a numeric label without trailing zeros.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
