package models

// ChartKind identifies a visualization category inferred from question keywords.
type ChartKind string

const (
	ChartNone          ChartKind = ""
	ChartHistogram     ChartKind = "histogram"
	ChartContour       ChartKind = "contour"
	ChartERDiagram     ChartKind = "er_diagram"
	ChartObjectDiagram ChartKind = "object_diagram"
	ChartStateDiagram  ChartKind = "state_diagram"
	ChartFlowChart     ChartKind = "flow_chart"
	ChartBar           ChartKind = "bar_chart"
	ChartPie           ChartKind = "pie_chart"
	ChartLine          ChartKind = "line_graph"
	ChartTable         ChartKind = "table"
)
