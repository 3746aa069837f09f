package engine

import (
	"sort"
	"time"

	"teampulse/internal/model"
)

// DailyAggregate is the per-calendar-day average of each answered
// dimension. A dimension missing from Values was not answered that day;
// the distinction from an explicit value matters everywhere downstream,
// so absence is map-key absence, never a zero.
type DailyAggregate struct {
	Day    time.Time
	Values map[model.Dimension]float64
}

// Get returns the day's average for a dimension, if answered.
func (d DailyAggregate) Get(dim model.Dimension) (float64, bool) {
	v, ok := d.Values[dim]
	return v, ok
}

// AggregateDaily groups numeric answers by UTC calendar day and averages
// each dimension. Days without any numeric answer are omitted, so the
// result is ordered ascending but not necessarily contiguous.
func AggregateDaily(answers []model.Answer) []DailyAggregate {
	type acc struct {
		sum float64
		n   int
	}
	days := make(map[time.Time]map[model.Dimension]*acc)

	for _, a := range answers {
		if !a.HasNumericValue() {
			continue
		}
		day := a.CreatedAt.UTC().Truncate(24 * time.Hour)
		dims := days[day]
		if dims == nil {
			dims = make(map[model.Dimension]*acc)
			days[day] = dims
		}
		cell := dims[a.Dimension]
		if cell == nil {
			cell = &acc{}
			dims[a.Dimension] = cell
		}
		cell.sum += float64(a.Value)
		cell.n++
	}

	out := make([]DailyAggregate, 0, len(days))
	for day, dims := range days {
		values := make(map[model.Dimension]float64, len(dims))
		for dim, cell := range dims {
			values[dim] = cell.sum / float64(cell.n)
		}
		out = append(out, DailyAggregate{Day: day, Values: values})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}
