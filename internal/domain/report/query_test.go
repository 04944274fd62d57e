package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func named(name, client string) ProjectRecord {
	return ProjectRecord{ID: uuid.New(), Name: name, ClientName: client}
}

func TestFilterItems(t *testing.T) {
	projects := []ProjectRecord{
		{ID: uuid.New(), Status: "active", ContractAmount: 100},
		{ID: uuid.New(), Status: "completed", ContractAmount: 200},
		{ID: uuid.New(), Status: "active", ContractAmount: 300},
	}

	statusOf := func(p ProjectRecord) string { return p.Status }
	amountOf := func(p ProjectRecord) int64 { return p.ContractAmount }

	t.Run("exact match", func(t *testing.T) {
		out := FilterItems(projects, EqualsString(statusOf, "active"))
		assert.Len(t, out, 2)
	})

	t.Run("empty value means no constraint", func(t *testing.T) {
		out := FilterItems(projects, EqualsString(statusOf, ""))
		assert.Len(t, out, 3)
	})

	t.Run("conjunction across filters", func(t *testing.T) {
		min := int64(150)
		out := FilterItems(projects,
			EqualsString(statusOf, "active"),
			RangeInt64(amountOf, &min, nil))
		require.Len(t, out, 1)
		assert.Equal(t, int64(300), out[0].ContractAmount)
	})

	t.Run("inclusive range bounds", func(t *testing.T) {
		min, max := int64(100), int64(200)
		out := FilterItems(projects, RangeInt64(amountOf, &min, &max))
		assert.Len(t, out, 2)
	})

	t.Run("idempotent", func(t *testing.T) {
		pred := EqualsString(statusOf, "active")
		once := FilterItems(projects, pred)
		twice := FilterItems(once, pred)
		assert.Equal(t, once, twice)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := append([]ProjectRecord(nil), projects...)
		FilterItems(projects, EqualsString(statusOf, "completed"))
		assert.Equal(t, before, projects)
	})
}

func TestRangeDate(t *testing.T) {
	withDate := ProjectRecord{ID: uuid.New(), InvoiceDate: datePtr(2024, time.March, 10)}
	without := ProjectRecord{ID: uuid.New()}
	items := []ProjectRecord{withDate, without}

	invoiceOf := func(p ProjectRecord) *time.Time { return p.InvoiceDate }

	t.Run("unbounded matches everything", func(t *testing.T) {
		out := FilterItems(items, RangeDate(invoiceOf, nil, nil))
		assert.Len(t, out, 2)
	})

	t.Run("bounded excludes missing dates", func(t *testing.T) {
		from := date(2024, time.January, 1)
		out := FilterItems(items, RangeDate(invoiceOf, &from, nil))
		require.Len(t, out, 1)
		assert.Equal(t, withDate.ID, out[0].ID)
	})

	t.Run("inclusive on both bounds", func(t *testing.T) {
		from := date(2024, time.March, 10)
		to := date(2024, time.March, 10)
		out := FilterItems(items, RangeDate(invoiceOf, &from, &to))
		assert.Len(t, out, 1)
	})
}

func TestSearchItems(t *testing.T) {
	items := []ProjectRecord{
		named("XABCY", "山田電気"),
		named("倉庫改修", "田中商店"),
		named("abc-annex", "Sato Denki"),
	}
	nameOf := func(p ProjectRecord) string { return p.Name }
	clientOf := func(p ProjectRecord) string { return p.ClientName }

	t.Run("case insensitive substring", func(t *testing.T) {
		out := SearchItems(items, "abc", nameOf)
		assert.Len(t, out, 2)
	})

	t.Run("any field matches", func(t *testing.T) {
		out := SearchItems(items, "田中", nameOf, clientOf)
		require.Len(t, out, 1)
		assert.Equal(t, "倉庫改修", out[0].Name)
	})

	t.Run("empty term matches all", func(t *testing.T) {
		out := SearchItems(items, "", nameOf)
		assert.Len(t, out, 3)
	})
}

func TestSortItems(t *testing.T) {
	t.Run("ascending by amount", func(t *testing.T) {
		items := []ProjectRecord{
			{ID: uuid.New(), ContractAmount: 300},
			{ID: uuid.New(), ContractAmount: 100},
			{ID: uuid.New(), ContractAmount: 200},
		}
		out := SortItems(items, ByInt64(func(p ProjectRecord) int64 { return p.ContractAmount }), false)
		assert.Equal(t, int64(100), out[0].ContractAmount)
		assert.Equal(t, int64(300), out[2].ContractAmount)
		// input untouched
		assert.Equal(t, int64(300), items[0].ContractAmount)
	})

	t.Run("missing dates sort last in both directions", func(t *testing.T) {
		dated := ProjectRecord{ID: uuid.New(), InvoiceDate: datePtr(2024, time.March, 1)}
		later := ProjectRecord{ID: uuid.New(), InvoiceDate: datePtr(2024, time.June, 1)}
		missing := ProjectRecord{ID: uuid.New()}
		items := []ProjectRecord{missing, later, dated}
		key := ByDate(func(p ProjectRecord) *time.Time { return p.InvoiceDate })

		asc := SortItems(items, key, false)
		assert.Equal(t, dated.ID, asc[0].ID)
		assert.Equal(t, missing.ID, asc[2].ID)

		desc := SortItems(items, key, true)
		assert.Equal(t, later.ID, desc[0].ID)
		assert.Equal(t, missing.ID, desc[2].ID)
	})

	t.Run("string sort is case insensitive", func(t *testing.T) {
		items := []ProjectRecord{named("beta", ""), named("Alpha", ""), named("ALPINE", "")}
		out := SortItems(items, ByString(func(p ProjectRecord) string { return p.Name }), false)
		assert.Equal(t, "Alpha", out[0].Name)
		assert.Equal(t, "ALPINE", out[1].Name)
		assert.Equal(t, "beta", out[2].Name)
	})

	t.Run("filter then sort equals sort then filter", func(t *testing.T) {
		items := []ProjectRecord{
			{ID: uuid.New(), Status: "active", ContractAmount: 3},
			{ID: uuid.New(), Status: "completed", ContractAmount: 1},
			{ID: uuid.New(), Status: "active", ContractAmount: 2},
		}
		pred := EqualsString(func(p ProjectRecord) string { return p.Status }, "active")
		key := ByInt64(func(p ProjectRecord) int64 { return p.ContractAmount })

		a := SortItems(FilterItems(items, pred), key, false)
		b := FilterItems(SortItems(items, key, false), pred)
		assert.Equal(t, a, b)
	})
}

func TestSortState(t *testing.T) {
	s := SortState{}
	s = s.Toggle("name")
	assert.Equal(t, SortState{Key: "name", Descending: false}, s)
	s = s.Toggle("name")
	assert.True(t, s.Descending)
	s = s.Toggle("amount")
	assert.Equal(t, SortState{Key: "amount", Descending: false}, s)
}

func TestFullProjectCode(t *testing.T) {
	t.Run("derived prefix", func(t *testing.T) {
		p := ProjectRecord{Code: "102", Period: 25, StaffCode: "07"}
		assert.Equal(t, "02507-102", FullProjectCode(p, 3))
	})

	t.Run("raw code without period", func(t *testing.T) {
		p := ProjectRecord{Code: "A-1"}
		assert.Equal(t, "A-1", FullProjectCode(p, 3))
	})

	t.Run("raw code without staff code", func(t *testing.T) {
		p := ProjectRecord{Code: "A-1", Period: 3}
		assert.Equal(t, "A-1", FullProjectCode(p, 3))
	})

	t.Run("search matches the derived form", func(t *testing.T) {
		p := ProjectRecord{Code: "102", Period: 25, StaffCode: "07", Name: "配線工事"}
		out := SearchItems([]ProjectRecord{p}, "02507", ProjectSearchFields(3)...)
		assert.Len(t, out, 1)
	})
}
