package viz

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/omnifile/backend/internal/models"
)

const maxNumericTokens = 100

// Render turns the answer text into chart bytes for the chosen kind. PNG
// image bytes are returned for drawable kinds, CSV bytes for the table kind.
// Answers that don't yield enough parseable data render nothing; any parse
// or draw failure degrades to nothing plus a diagnostic, never an error.
func Render(answer string, kind models.ChartKind) (image []byte, table []byte, diag string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[viz] panic recovered rendering %s: %v", kind, r)
			image, table = nil, nil
			diag = fmt.Sprintf("visualization error: %v", r)
		}
	}()

	var err error
	switch kind {
	case models.ChartHistogram:
		image, err = renderHistogram(answer)
	case models.ChartContour:
		image, err = renderContour()
	case models.ChartERDiagram:
		image, err = renderERDiagram(answer)
	case models.ChartObjectDiagram:
		image, err = renderObjectDiagram(answer)
	case models.ChartStateDiagram:
		image, err = renderStateDiagram(answer)
	case models.ChartFlowChart:
		image, err = renderFlowChart(answer)
	case models.ChartBar:
		image, err = renderBarChart(answer)
	case models.ChartPie:
		image, err = renderPieChart(answer)
	case models.ChartLine:
		image, err = renderLineGraph(answer)
	case models.ChartTable:
		table, err = renderTable(answer)
	}
	if err != nil {
		return nil, nil, fmt.Sprintf("visualization error: %v", err)
	}
	return image, table, ""
}

var numberRe = regexp.MustCompile(`[-+]?\d*\.\d+|\d+`)

// numericTokens scans every line of the answer for decimal and integer
// tokens, flattened in order and capped at maxNumericTokens.
func numericTokens(answer string) []float64 {
	var out []float64
	for _, line := range strings.Split(answer, "\n") {
		for _, tok := range numberRe.FindAllString(line, -1) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				continue
			}
			out = append(out, v)
			if len(out) == maxNumericTokens {
				return out
			}
		}
	}
	return out
}

// randomColor picks a random opaque fill color, one per render.
func randomColor() color.RGBA {
	return color.RGBA{
		R: uint8(rand.Intn(256)),
		G: uint8(rand.Intn(256)),
		B: uint8(rand.Intn(256)),
		A: 255,
	}
}
