package facts

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Size is a byte count scaled to the largest binary unit it exceeds.
type Size struct {
	Bytes  float64
	Value  float64
	Metric string
}

// SizeOf scales bytes to B, KB, MB, GB or TB (1024-based). A unit is chosen
// only when the value is strictly greater than one of it.
func SizeOf(bytes float64) Size {
	value, unit := bytes, 0
	for unit < len(sizeUnits)-1 && value/1024 > 1 {
		value /= 1024
		unit++
	}
	return Size{Bytes: bytes, Value: value, Metric: sizeUnits[unit]}
}

// In expresses s in the given metric.
func (s Size) In(metric string) float64 {
	v := s.Bytes
	for _, u := range sizeUnits {
		if u == metric {
			return v
		}
		v /= 1024
	}
	return s.Value
}

// SetSize writes the <prefix>_metric, _free, _used, _total and _percentage
// facts. All three quantities are expressed in the unit picked for total so
// that templates like "{memory_used}/{memory_total} {memory_metric}" read
// consistently.
func (t *Table) SetSize(prefix string, free, used, total uint64) {
	totalSize := SizeOf(float64(total))
	metric := totalSize.Metric

	percentage := 0.0
	if total > 0 {
		percentage = float64(used) / float64(total) * 100
	}

	t.Set(prefix+"_metric", metric)
	t.Set(prefix+"_free", fmt.Sprintf("%.2f", SizeOf(float64(free)).In(metric)))
	t.Set(prefix+"_used", fmt.Sprintf("%.2f", SizeOf(float64(used)).In(metric)))
	t.Set(prefix+"_total", fmt.Sprintf("%.2f", totalSize.Value))
	t.Set(prefix+"_percentage", fmt.Sprintf("%.2f", percentage))
}
