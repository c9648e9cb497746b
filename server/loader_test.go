package aquanet_test

import (
	"testing"

	As "github.com/marisol/aquanet/server"
)

func TestLoadTableFile(t *testing.T) {
	t.Run("loads times and ordered columns", func(t *testing.T) {
		fn := writeFile(t, "table.json", `{
			"time": [0, 900, 1800],
			"columns": [
				{"id": "101", "values": [1, 2, 3]},
				{"id": "102", "values": [10, 20, 30]}
			]
		}`)
		tab, err := As.LoadTableFile(fn)
		assertNoError(t, err)
		assertInt(t, tab.Len(), 3)
		assertInt(t, tab.NumColumns(), 2)
		assertString(t, tab.IDs()[0], "101")
		assertString(t, tab.IDs()[1], "102")

		col, err := tab.Column("102")
		assertNoError(t, err)
		assertFloatSlice(t, col, []float64{10, 20, 30}, 0)
	})

	t.Run("rejects a non-increasing time axis", func(t *testing.T) {
		fn := writeFile(t, "table.json", `{
			"time": [0, 900, 900],
			"columns": [{"id": "101", "values": [1, 2, 3]}]
		}`)
		_, err := As.LoadTableFile(fn)
		assertGotError(t, err)
	})

	t.Run("rejects duplicate column identifiers", func(t *testing.T) {
		fn := writeFile(t, "table.json", `{
			"time": [0, 900],
			"columns": [
				{"id": "101", "values": [1, 2]},
				{"id": "101", "values": [3, 4]}
			]
		}`)
		_, err := As.LoadTableFile(fn)
		assertGotError(t, err)
	})

	t.Run("rejects a short column", func(t *testing.T) {
		fn := writeFile(t, "table.json", `{
			"time": [0, 900, 1800],
			"columns": [{"id": "101", "values": [1, 2]}]
		}`)
		_, err := As.LoadTableFile(fn)
		assertGotError(t, err)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := As.LoadTableFile("testdata/does-not-exist.json")
		assertGotError(t, err)
	})

	t.Run("malformed json is an error", func(t *testing.T) {
		fn := writeFile(t, "table.json", `["wrong", "shape"]`)
		_, err := As.LoadTableFile(fn)
		assertGotError(t, err)
	})
}

func TestLoadTopologyFile(t *testing.T) {
	t.Run("loads link topology", func(t *testing.T) {
		fn := writeFile(t, "topology.json", `[
			{"name": "p1", "start": "A", "end": "B", "length": 100},
			{"name": "p2", "start": "B", "end": "C", "length": 50}
		]`)
		links, err := As.LoadTopologyFile(fn)
		assertNoError(t, err)
		assertInt(t, len(links), 2)
		assertString(t, links[0].Name, "p1")
		assertString(t, links[0].StartNode, "A")
		assertString(t, links[0].EndNode, "B")
		assertFloat(t, links[0].Length, 100)
	})

	t.Run("rejects a non-positive length", func(t *testing.T) {
		fn := writeFile(t, "topology.json", `[
			{"name": "p1", "start": "A", "end": "B", "length": 0}
		]`)
		_, err := As.LoadTopologyFile(fn)
		assertGotError(t, err)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := As.LoadTopologyFile("testdata/does-not-exist.json")
		assertGotError(t, err)
	})
}
