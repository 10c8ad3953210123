package dashboard

// Metric is a KPI widget: a label, a headline value and the change
// versus the prior period.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta"`
}

// Metrics returns the KPI widgets shown at the top of the dashboard.
// The values are fixed display strings, not computed from the table.
func Metrics() []Metric {
	return []Metric{
		{Label: "New product launches", Value: "1.2M", Delta: "+25%"},
		{Label: "Average discount %", Value: "32%", Delta: "+9%"},
		{Label: "Replenishment rate", Value: "61.8%", Delta: "-1%"},
	}
}
