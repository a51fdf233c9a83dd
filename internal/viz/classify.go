// Package viz infers a chart kind from question keywords and renders charts
// by heuristically parsing numbers and labels out of the model's answer text.
package viz

import (
	"strings"

	"github.com/omnifile/backend/internal/models"
)

type classifierRule struct {
	Kind     models.ChartKind
	Keywords []string
}

// classifierTable is ordered: the first kind whose keyword matches wins.
var classifierTable = []classifierRule{
	{models.ChartHistogram, []string{"histogram", "distribution"}},
	{models.ChartContour, []string{"contour", "3d plot"}},
	{models.ChartERDiagram, []string{"er diagram", "entity relationship"}},
	{models.ChartObjectDiagram, []string{"object diagram", "class diagram"}},
	{models.ChartStateDiagram, []string{"state diagram", "state machine"}},
	{models.ChartFlowChart, []string{"flow chart", "process diagram"}},
	{models.ChartBar, []string{"bar chart", "bar graph"}},
	{models.ChartPie, []string{"pie chart"}},
	{models.ChartLine, []string{"line graph", "trend line"}},
	{models.ChartTable, []string{"table", "tabular data"}},
}

// Classify maps a question to a chart kind by case-insensitive substring
// matching. Questions matching no rule yield ChartNone.
func Classify(question string) models.ChartKind {
	q := strings.ToLower(question)
	for _, rule := range classifierTable {
		for _, kw := range rule.Keywords {
			if strings.Contains(q, kw) {
				return rule.Kind
			}
		}
	}
	return models.ChartNone
}
