package data

// Column names the dashboard pipeline knows about. Region and Category
// are optional; the numeric measures are cleaned when present.
const (
	MonthCol      = "Month"
	YearCol       = "Year"
	ProductionCol = "Production"
	AvgPriceCol   = "AvgPrice"
	SelloutCol    = "Sellout"
	RegionCol     = "Region"
	CategoryCol   = "Category"
)

// NumericColumns lists the measures coerced to float64 before charting.
func NumericColumns() []string {
	return []string{ProductionCol, AvgPriceCol, SelloutCol}
}
