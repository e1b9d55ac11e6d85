package analytics

import (
	"sort"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

// TopNLimit is how many entries the ranking views keep.
const TopNLimit = 5

// TopCategories ranks the in-scope records by category total, descending.
// The sort is stable, so ties keep the original encounter order.
func TopCategories(calls []entity.CallRecord, filter entity.FilterState) []entity.CategoryCount {
	return rankBy(calls, filter, entity.GroupByCategory)
}

// TopModules ranks the in-scope records by module total, descending.
func TopModules(calls []entity.CallRecord, filter entity.FilterState) []entity.CategoryCount {
	return rankBy(calls, filter, entity.GroupByModule)
}

func rankBy(calls []entity.CallRecord, filter entity.FilterState, dim entity.GroupBy) []entity.CategoryCount {
	inScope := FilterCalls(calls, filter, entity.NewGroupConfig())

	totals := make(map[string]int)
	var order []string
	for _, c := range inScope {
		name := c.GroupValue(dim)
		if _, ok := totals[name]; !ok {
			order = append(order, name)
		}
		totals[name] += c.Count
	}

	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})
	if len(order) > TopNLimit {
		order = order[:TopNLimit]
	}

	out := make([]entity.CategoryCount, 0, len(order))
	for _, name := range order {
		out = append(out, entity.CategoryCount{Name: name, Total: totals[name]})
	}
	return out
}
