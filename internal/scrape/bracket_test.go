package scrape

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesIDsFromWeeklyBracket(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "weekly",
		"weekly": {
			"weeks": [
				{"series": [{"id": 1}, {"id": 2}]},
				{"series": [{"id": 3}]}
			]
		}
	}`)

	kind, ids, err := seriesIDsFromBracket(raw)
	require.NoError(t, err)
	assert.Equal(t, "weekly", kind)
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestSeriesIDsFromDoubleBracket(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "double",
		"winners": [
			{"seeds": [{"seriesId": 10}, {"seriesId": 11}]},
			{"seeds": [{"seriesId": 12}]}
		],
		"losers": [
			{"seeds": [{"seriesId": 20}]}
		]
	}`)

	kind, ids, err := seriesIDsFromBracket(raw)
	require.NoError(t, err)
	assert.Equal(t, "double", kind)
	assert.Equal(t, []int64{10, 11, 12, 20}, ids, "winners walk before losers")
}

func TestSeriesIDsFromSingleBracket(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "single",
		"winners": [{"seeds": [{"seriesId": 30}]}],
		"losers": [{"seeds": [{"seriesId": 99}]}]
	}`)

	kind, ids, err := seriesIDsFromBracket(raw)
	require.NoError(t, err)
	assert.Equal(t, "single", kind)
	assert.Equal(t, []int64{30}, ids, "single elimination ignores a losers section")
}

func TestSeriesIDsFromGroupBracket(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "group",
		"groups": [
			{"seeds": [{"id": 40}, {"id": 41}]},
			{"seeds": [{"id": 42}]}
		]
	}`)

	kind, ids, err := seriesIDsFromBracket(raw)
	require.NoError(t, err)
	assert.Equal(t, "group", kind)
	assert.Equal(t, []int64{40, 41, 42}, ids)
}

func TestSeriesIDsFromUnhandledBracket(t *testing.T) {
	kind, _, err := seriesIDsFromBracket(json.RawMessage(`{"type": "swiss"}`))
	require.Error(t, err)
	assert.Equal(t, "swiss", kind, "the type is still reported for logging")

	_, _, err = seriesIDsFromBracket(nil)
	require.Error(t, err)

	_, _, err = seriesIDsFromBracket(json.RawMessage(`{broken`))
	require.Error(t, err)
}
