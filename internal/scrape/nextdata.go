package scrape

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// nextData is the payload of the __NEXT_DATA__ script tag on rib.gg pages.
type nextData struct {
	Props struct {
		PageProps struct {
			Series json.RawMessage `json:"series"`
			Event  *eventPayload   `json:"event"`
		} `json:"pageProps"`
	} `json:"props"`
}

type eventPayload struct {
	ChildEvents []childEvent `json:"childEvents"`
}

type childEvent struct {
	Name        string          `json:"name"`
	BracketJSON json.RawMessage `json:"bracketJson"`
}

// seriesHeader is the minimal view of a series payload the scraper needs:
// the match ids whose detail documents it must fetch.
type seriesHeader struct {
	Matches []struct {
		ID int64 `json:"id"`
	} `json:"matches"`
}

// extractNextData pulls the embedded JSON out of a page's
// `<script id="__NEXT_DATA__">` tag.
func extractNextData(html []byte) (*nextData, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	raw := strings.TrimSpace(doc.Find(`script#__NEXT_DATA__`).First().Text())
	if raw == "" {
		return nil, fmt.Errorf("page has no __NEXT_DATA__ payload")
	}

	var data nextData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to decode __NEXT_DATA__ payload: %w", err)
	}
	return &data, nil
}
