package tabular

import (
	"github.com/rocketlaunchr/dataframe-go"
)

// Records converts a dataframe to a row-major slice of column name to
// cell value maps, preserving row order. Useful for JSON responses.
func Records(df *dataframe.DataFrame) []map[string]interface{} {
	df.Lock()
	defer df.Unlock()

	records := make([]map[string]interface{}, 0, df.NRows(dataframe.Options{DontLock: true}))

	iterator := df.ValuesIterator(dataframe.ValuesOptions{InitialRow: 0, Step: 1, DontReadLock: true})
	for {
		row, vals, _ := iterator(dataframe.SeriesName)
		if row == nil {
			break
		}

		rec := make(map[string]interface{}, len(vals))
		for k, v := range vals {
			if name, ok := k.(string); ok {
				rec[name] = v
			}
		}
		records = append(records, rec)
	}

	return records
}
