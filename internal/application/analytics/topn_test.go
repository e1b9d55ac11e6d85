package analytics

import (
	"reflect"
	"testing"

	"github.com/caguiar/servicedesk-dashboard-go/internal/domain/entity"
)

func TestTopCategories(t *testing.T) {
	calls := []entity.CallRecord{
		{Index: 0, Date: "2024-01-05", Category: "帳號", Module: "登入", Count: 3},
		{Index: 1, Date: "2024-01-06", Category: "報表", Module: "匯出", Count: 5},
		{Index: 2, Date: "2024-01-07", Category: "帳號", Module: "登入", Count: 4},
		{Index: 3, Date: "2024-02-01", Category: "權限", Module: "登入", Count: 2},
	}

	got := TopCategories(calls, entity.NewFilterState())
	want := []entity.CategoryCount{
		{Name: "帳號", Total: 7},
		{Name: "報表", Total: 5},
		{Name: "權限", Total: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTopCategoriesLimit(t *testing.T) {
	var calls []entity.CallRecord
	for i, cat := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		calls = append(calls, entity.CallRecord{
			Index: i, Date: "2024-01-05", Category: cat, Count: 7 - i,
		})
	}

	got := TopCategories(calls, entity.NewFilterState())
	if len(got) != TopNLimit {
		t.Fatalf("got %d entries, want %d", len(got), TopNLimit)
	}
	if got[0].Name != "A" || got[TopNLimit-1].Name != "E" {
		t.Errorf("ranking = %v", got)
	}
}

func TestTopCategoriesTiesKeepEncounterOrder(t *testing.T) {
	calls := []entity.CallRecord{
		{Index: 0, Date: "2024-01-05", Category: "B", Count: 2},
		{Index: 1, Date: "2024-01-05", Category: "A", Count: 2},
	}

	got := TopCategories(calls, entity.NewFilterState())
	if got[0].Name != "B" {
		t.Errorf("tie should keep encounter order, got %v", got)
	}
}

func TestTopModules(t *testing.T) {
	calls := []entity.CallRecord{
		{Index: 0, Date: "2024-01-05", Category: "帳號", Module: "登入", Count: 1},
		{Index: 1, Date: "2024-01-06", Category: "帳號", Module: "匯出", Count: 4},
	}

	got := TopModules(calls, entity.NewFilterState())
	if len(got) != 2 || got[0].Name != "匯出" || got[0].Total != 4 {
		t.Errorf("got %v", got)
	}
}

func TestTopCategoriesScoped(t *testing.T) {
	calls := []entity.CallRecord{
		{Index: 0, Date: "2024-01-05", Category: "A", Count: 10},
		{Index: 1, Date: "2024-02-05", Category: "B", Count: 1},
	}

	filter := entity.FilterState{Year: "2024", Month: "2024-02"}
	got := TopCategories(calls, filter)
	if len(got) != 1 || got[0].Name != "B" {
		t.Errorf("got %v, want only B", got)
	}
}
