package run

// Result holds the sampled stat series of a headless run.
type Result struct {
	Times   []float64
	Labels  []string
	Rows    [][]float64
	Metrics map[string]float64
}

// Series extracts one stat column by label, or nil if absent.
func (r *Result) Series(label string) []float64 {
	col := -1
	for i, l := range r.Labels {
		if l == label {
			col = i
			break
		}
	}
	if col < 0 {
		return nil
	}

	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		if col < len(row) {
			out[i] = row[col]
		}
	}
	return out
}
