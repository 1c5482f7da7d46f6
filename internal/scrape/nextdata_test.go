package scrape

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seriesPage = `<!DOCTYPE html>
<html>
<head><title>SEN vs FNC</title></head>
<body>
<div id="__next"></div>
<script id="__NEXT_DATA__" type="application/json">
{
	"props": {
		"pageProps": {
			"series": {"id": 555, "matches": [{"id": 9001}, {"id": 9002}]},
			"event": {
				"childEvents": [
					{"name": "Playoffs", "bracketJson": {"type": "single", "winners": []}}
				]
			}
		}
	}
}
</script>
</body>
</html>`

func TestExtractNextData(t *testing.T) {
	data, err := extractNextData([]byte(seriesPage))
	require.NoError(t, err)

	var header seriesHeader
	require.NoError(t, json.Unmarshal(data.Props.PageProps.Series, &header))
	require.Len(t, header.Matches, 2)
	assert.Equal(t, int64(9001), header.Matches[0].ID)

	event := data.Props.PageProps.Event
	require.NotNil(t, event)
	require.Len(t, event.ChildEvents, 1)
	assert.Equal(t, "Playoffs", event.ChildEvents[0].Name)

	kind, _, err := seriesIDsFromBracket(event.ChildEvents[0].BracketJSON)
	require.NoError(t, err)
	assert.Equal(t, "single", kind)
}

func TestExtractNextDataMissingScript(t *testing.T) {
	_, err := extractNextData([]byte(`<html><body><p>no payload</p></body></html>`))
	require.Error(t, err)
}

func TestExtractNextDataBadJSON(t *testing.T) {
	page := `<html><body><script id="__NEXT_DATA__">{broken</script></body></html>`
	_, err := extractNextData([]byte(page))
	require.Error(t, err)
}
