package viz

import (
	"testing"

	"github.com/omnifile/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		question string
		want     models.ChartKind
	}{
		{"Show me a histogram of response times", models.ChartHistogram},
		{"What is the DISTRIBUTION of ages?", models.ChartHistogram},
		{"Draw a contour plot", models.ChartContour},
		{"Give me a 3d plot of the surface", models.ChartContour},
		{"Create an ER diagram of the schema", models.ChartERDiagram},
		{"Show the entity relationship model", models.ChartERDiagram},
		{"Draw an object diagram", models.ChartObjectDiagram},
		{"Sketch the class diagram", models.ChartObjectDiagram},
		{"Show the state diagram", models.ChartStateDiagram},
		{"Describe the state machine", models.ChartStateDiagram},
		{"Draw a flow chart of the process", models.ChartFlowChart},
		{"Show the process diagram", models.ChartFlowChart},
		{"Make a bar chart of sales", models.ChartBar},
		{"Plot a bar graph", models.ChartBar},
		{"Render a pie chart of market share", models.ChartPie},
		{"Show a line graph over time", models.ChartLine},
		{"Plot the trend line", models.ChartLine},
		{"Put the results in a table", models.ChartTable},
		{"Return tabular data", models.ChartTable},
		{"Summarize the document", models.ChartNone},
		{"", models.ChartNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.question), tc.question)
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// "pie chart" outranks "table" in rule order even though both match.
	assert.Equal(t, models.ChartPie, Classify("table the data as a pie chart"))
	// "distribution" outranks "bar chart".
	assert.Equal(t, models.ChartHistogram, Classify("bar chart of the distribution"))
}
