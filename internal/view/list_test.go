package view

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   string
	Name string
}

func fixedList(items []row) func(context.Context) ([]row, error) {
	return func(context.Context) ([]row, error) {
		return items, nil
	}
}

func rows(n int) []row {
	out := make([]row, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, row{ID: fmt.Sprintf("r%d", i), Name: fmt.Sprintf("Name %d", i)})
	}
	return out
}

func nameMatch() func(row, string) bool {
	return MatchAny(func(r row) string { return r.Name })
}

func TestCollectionRefetchReplacesItems(t *testing.T) {
	col := NewCollection(fixedList(rows(3)), "failed to load rows")
	col.Refetch(context.Background())

	assert.Len(t, col.Items(), 3)
	assert.Empty(t, col.Err())
	assert.False(t, col.Loading())
}

func TestCollectionFailedRefetchKeepsItems(t *testing.T) {
	items := rows(3)
	fail := false
	col := NewCollection(func(context.Context) ([]row, error) {
		if fail {
			return nil, errors.New("boom")
		}
		return items, nil
	}, "failed to load rows")

	ctx := context.Background()
	col.Refetch(ctx)
	require.Len(t, col.Items(), 3)

	fail = true
	col.Refetch(ctx)
	assert.Len(t, col.Items(), 3, "stale items survive a failed fetch")
	assert.Equal(t, "failed to load rows", col.Err())

	fail = false
	col.Refetch(ctx)
	assert.Empty(t, col.Err(), "error clears on the next successful fetch")
}

func TestVisiblePageSlicing(t *testing.T) {
	col := NewCollection(fixedList(rows(12)), "failed")
	col.Refetch(context.Background())
	list := NewListController(col, nameMatch())

	assert.Equal(t, 3, list.TotalPages())
	require.Len(t, list.Visible(), PageSize)
	assert.Equal(t, "r1", list.Visible()[0].ID)

	list.NextPage()
	assert.Equal(t, 2, list.Page())
	assert.Equal(t, "r6", list.Visible()[0].ID)

	list.NextPage()
	require.Len(t, list.Visible(), 2, "last page holds the remainder")
	assert.Equal(t, "r11", list.Visible()[0].ID)
}

func TestPaginationClampsAtBoundaries(t *testing.T) {
	col := NewCollection(fixedList(rows(7)), "failed")
	col.Refetch(context.Background())
	list := NewListController(col, nameMatch())

	list.PrevPage()
	assert.Equal(t, 1, list.Page(), "no wrap below the first page")

	list.NextPage()
	list.NextPage()
	list.NextPage()
	assert.Equal(t, 2, list.Page(), "no wrap past the last page")
}

func TestFilterPreservesOrder(t *testing.T) {
	items := []row{
		{ID: "r1", Name: "Ana"},
		{ID: "r2", Name: "Bruno"},
		{ID: "r3", Name: "Mariana"},
	}
	col := NewCollection(fixedList(items), "failed")
	col.Refetch(context.Background())
	list := NewListController(col, nameMatch())

	list.SetSearch("ana")
	filtered := list.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, "r1", filtered[0].ID)
	assert.Equal(t, "r3", filtered[1].ID)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	col := NewCollection(fixedList([]row{{ID: "r1", Name: "Ana López"}}), "failed")
	col.Refetch(context.Background())
	list := NewListController(col, nameMatch())

	list.SetSearch("ANA")
	assert.Len(t, list.Filtered(), 1)
}

func TestSearchResetsPage(t *testing.T) {
	col := NewCollection(fixedList(rows(12)), "failed")
	col.Refetch(context.Background())
	list := NewListController(col, nameMatch())

	list.NextPage()
	require.Equal(t, 2, list.Page())

	list.SetSearch("Name")
	assert.Equal(t, 1, list.Page())
}

func TestEmptyFilterHasNoPages(t *testing.T) {
	col := NewCollection(fixedList(rows(4)), "failed")
	col.Refetch(context.Background())
	list := NewListController(col, nameMatch())

	list.SetSearch("zzz")
	assert.Equal(t, 0, list.TotalPages())
	assert.Empty(t, list.Visible())
}

func TestMatchAnyChecksEveryField(t *testing.T) {
	match := MatchAny(
		func(r row) string { return r.Name },
		func(r row) string { return r.ID },
	)
	assert.True(t, match(row{ID: "r9", Name: "Ana"}, "r9"))
	assert.True(t, match(row{ID: "r9", Name: "Ana"}, "ana"))
	assert.False(t, match(row{ID: "r9", Name: "Ana"}, "bruno"))
}
