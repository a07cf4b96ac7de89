package model

// Bin is one histogram interval with the count of values inside it.
// Bins are half-open [Lower, Upper) except the last, which is closed.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Histogram is the frequency distribution of one numeric column.
type Histogram struct {
	Dataset string `json:"dataset"`
	Column  string `json:"column"`
	Bins    []Bin  `json:"bins"`
}

// Total returns the sum of all bin counts.
func (h Histogram) Total() int {
	total := 0
	for _, b := range h.Bins {
		total += b.Count
	}
	return total
}
