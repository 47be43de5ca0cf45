package ds

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxSpec_Validate(t *testing.T) {
	assert.NoError(t, BoxSpec{SideLength: 400, Subdivisions: 4}.Validate())
	assert.NoError(t, BoxSpec{SideLength: 0.5, Subdivisions: 1}.Validate())

	for _, box := range []BoxSpec{
		{SideLength: 0, Subdivisions: 4},
		{SideLength: -400, Subdivisions: 4},
		{SideLength: math.NaN(), Subdivisions: 4},
		{SideLength: math.Inf(1), Subdivisions: 4},
		{SideLength: 400, Subdivisions: 0},
		{SideLength: 400, Subdivisions: -1},
	} {
		err := box.Validate()
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), "box %+v", box)
	}
}

func TestBoxSpec_CellLimit(t *testing.T) {
	assert.NoError(t, BoxSpec{SideLength: 1, Subdivisions: 128}.Validate())
	assert.Equal(t, DefaultMaxCells, BoxSpec{SideLength: 1, Subdivisions: 128}.Cells())

	for _, n := range []int{129, 2000, 2097152, math.MaxInt} {
		err := BoxSpec{SideLength: 1, Subdivisions: n}.Validate()
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), "N=%d", n)
	}

	assert.NoError(t, BoxSpec{SideLength: 1, Subdivisions: 200, MaxCells: 8_000_000}.Validate())
	assert.Error(t, BoxSpec{SideLength: 1, Subdivisions: 3, MaxCells: 26}.Validate())
}

func TestAxisInclusion_Admits(t *testing.T) {
	first := NewAxisInclusion(0)
	assert.True(t, first.Admits(0, 0, 100))
	assert.True(t, first.Admits(100, 0, 100))
	assert.False(t, first.Admits(100.0001, 0, 100))

	inner := NewAxisInclusion(2)
	assert.False(t, inner.Admits(200, 200, 300))
	assert.True(t, inner.Admits(200.0001, 200, 300))
	assert.True(t, inner.Admits(300, 200, 300))
}

func TestParseQueryKind(t *testing.T) {
	k, err := ParseQueryKind("fetch")
	require.NoError(t, err)
	assert.Equal(t, FetchAll, k)

	k, err = ParseQueryKind("COUNT")
	require.NoError(t, err)
	assert.Equal(t, CountOnly, k)

	_, err = ParseQueryKind("delete")
	assert.True(t, errors.Is(err, ErrUnknownQueryKind))
}

func TestQueryKind_JSON(t *testing.T) {
	out, err := json.Marshal(QueryRecord{Sequence: 3, Kind: CountOnly})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"kind":"count"`)
	assert.Contains(t, string(out), `"index":3`)
}

func TestQueryParams_Validate(t *testing.T) {
	assert.NoError(t, QueryParams{Snapshot: "48", Table: "SMDPL.Rockstar", IDColumn: "rockstarId"}.Validate())
	assert.Error(t, QueryParams{Snapshot: " ", Table: "t", IDColumn: "id"}.Validate())
	assert.Error(t, QueryParams{Snapshot: "48", IDColumn: "id"}.Validate())
	assert.Error(t, QueryParams{Snapshot: "48", Table: "t"}.Validate())
}

func TestGenerationRequest_CacheKey(t *testing.T) {
	req := GenerationRequest{
		Box:    BoxSpec{SideLength: 400, Subdivisions: 4},
		Params: QueryParams{Snapshot: "48", Table: "SMDPL.Rockstar", IDColumn: "rockstarId"},
		Format: "fixed",
	}
	assert.Equal(t, "fetch:400:4:48:SMDPL.Rockstar:rockstarId:fixed", req.CacheKey(FetchAll))
	assert.NotEqual(t, req.CacheKey(FetchAll), req.CacheKey(CountOnly))
}
