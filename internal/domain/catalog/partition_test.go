//go:build unit

package catalog_test

import (
	"sort"
	"testing"

	"catalog-sync/internal/domain/catalog"
	"catalog-sync/internal/domain/settings"
	"catalog-sync/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizesOf(changes []catalog.SizeChange) []string {
	out := make([]string, len(changes))
	for i, c := range changes {
		out[i] = c.Size
	}
	return out
}

func TestPartitionSizes(t *testing.T) {
	testCases := []struct {
		name           string
		record         []catalog.SizeQuantity
		synced         []string
		deleteOutStock bool
		wantAdd        []string
		wantUpdate     []string
		wantDelete     []string
	}{
		{
			name:       "new size is added, existing size updated",
			record:     []catalog.SizeQuantity{builder.Size("A", 5), builder.Size("B", 0)},
			synced:     []string{"A"},
			wantAdd:    []string{"B"},
			wantUpdate: []string{"A"},
		},
		{
			name:       "snapshot-only size is deleted",
			record:     []catalog.SizeQuantity{builder.Size("A", 1)},
			synced:     []string{"A", "C"},
			wantUpdate: []string{"A"},
			wantDelete: []string{"C"},
		},
		{
			name:           "zero stock synced size is deleted under deleteOutStock",
			record:         []catalog.SizeQuantity{builder.Size("A", 0), builder.Size("B", 2)},
			synced:         []string{"A", "B"},
			deleteOutStock: true,
			wantUpdate:     []string{"B"},
			wantDelete:     []string{"A"},
		},
		{
			name:       "zero stock synced size is kept without deleteOutStock",
			record:     []catalog.SizeQuantity{builder.Size("A", 0)},
			synced:     []string{"A"},
			wantUpdate: []string{"A"},
		},
		{
			name:           "zero stock new size is never materialized under deleteOutStock",
			record:         []catalog.SizeQuantity{builder.Size("A", 1), builder.Size("B", 0)},
			synced:         []string{"A"},
			deleteOutStock: true,
			wantUpdate:     []string{"A"},
			wantDelete:     []string{"B"},
		},
		{
			name:    "no snapshot means everything is new",
			record:  []catalog.SizeQuantity{builder.Size("A", 1), builder.Size("B", 1)},
			wantAdd: []string{"A", "B"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := builder.NewStockBuilder().WithSizes(tc.record...).Build()
			var snap *catalog.Snapshot
			if tc.synced != nil {
				snap = builder.NewSnapshotBuilder().WithSyncedSizes(tc.synced...).Build()
			}

			plan := catalog.PartitionSizes(record, snap, nil, tc.deleteOutStock)

			assert.Empty(t, cmp.Diff(tc.wantAdd, sizesOf(plan.NeedAdd), cmpopts.EquateEmpty()))
			assert.Empty(t, cmp.Diff(tc.wantUpdate, sizesOf(plan.NeedUpdate), cmpopts.EquateEmpty()))
			assert.Empty(t, cmp.Diff(tc.wantDelete, sizesOf(plan.NeedDelete), cmpopts.EquateEmpty()))
			assertPartitionInvariant(t, record, tc.synced, plan)
		})
	}
}

func assertPartitionInvariant(t *testing.T, record catalog.StockRecord, synced []string, plan catalog.Plan) {
	t.Helper()

	seen := map[string]int{}
	for _, set := range [][]catalog.SizeChange{plan.NeedAdd, plan.NeedUpdate, plan.NeedDelete} {
		for _, c := range set {
			seen[c.Size]++
		}
	}
	for size, n := range seen {
		assert.Equalf(t, 1, n, "size %q routed to %d sets", size, n)
	}

	want := map[string]struct{}{}
	for _, s := range record.SizeNames() {
		want[s] = struct{}{}
	}
	for _, s := range synced {
		want[s] = struct{}{}
	}
	var wantList, gotList []string
	for s := range want {
		wantList = append(wantList, s)
	}
	for s := range seen {
		gotList = append(gotList, s)
	}
	sort.Strings(wantList)
	sort.Strings(gotList)
	assert.Equal(t, wantList, gotList)
}

func TestPartitionSizes_DeltaScenario(t *testing.T) {
	record := builder.NewStockBuilder().WithSizes(builder.Size("sizeA", 5), builder.Size("sizeB", 0)).Build()
	snap := builder.NewSnapshotBuilder().WithSyncedSizes("sizeA").Build()
	observed := map[string]int{builder.SyncedOption("sizeA").InventoryItemID: 3}

	plan := catalog.PartitionSizes(record, snap, nil, false)
	require.Equal(t, []string{"sizeB"}, sizesOf(plan.NeedAdd))
	require.Equal(t, []string{"sizeA"}, sizesOf(plan.NeedUpdate))

	// once sizeB is materialized it starts from a zero baseline
	created := []catalog.OptionMapping{{OriginalOption: "sizeB", InventoryItemID: "inv-B"}}
	createTargets := catalog.CreationTargets(created, record)
	require.Len(t, createTargets, 1)
	assert.Equal(t, 0, createTargets[0].Delta())

	updateTargets := catalog.UpdateTargets(snap.Options(), record, observed)
	require.Len(t, updateTargets, 1)
	assert.Equal(t, 2, updateTargets[0].Delta())

	assert.Empty(t, catalog.Deltas(createTargets))
	assert.Equal(t, []catalog.InventoryChange{
		{InventoryItemID: builder.SyncedOption("sizeA").InventoryItemID, Size: "sizeA", Delta: 2},
	}, catalog.Deltas(updateTargets))
}

func TestSizeChange_Renamed(t *testing.T) {
	record := builder.NewStockBuilder().WithSizes(builder.Size("40", 1), builder.Size("41", 1)).Build()
	snap := builder.NewSnapshotBuilder().WithSyncedSizes("40", "41").Build()

	t.Run("converged snapshot has no renames", func(t *testing.T) {
		plan := catalog.PartitionSizes(record, snap, nil, false)
		require.Len(t, plan.NeedUpdate, 2)
		assert.False(t, plan.NeedUpdate[0].Renamed())
		assert.False(t, plan.NeedUpdate[1].Renamed())
	})

	t.Run("a new attribute override renames the synced value", func(t *testing.T) {
		namer := settings.AttributeMapping{Options: []settings.OptionOverride{
			{RetailerOptionName: "40", DropshipperOptionName: "EU 40"},
		}}
		plan := catalog.PartitionSizes(record, snap, namer, false)
		require.Len(t, plan.NeedUpdate, 2)
		assert.True(t, plan.NeedUpdate[0].Renamed())
		assert.False(t, plan.NeedUpdate[1].Renamed())
	})
}
