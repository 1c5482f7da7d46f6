package scrape

import (
	"encoding/json"
	"fmt"
)

// bracketJSON covers the four bracket layouts rib.gg serves. Which sections
// are populated depends on the type tag.
type bracketJSON struct {
	Type   string `json:"type"`
	Weekly *struct {
		Weeks []struct {
			Series []struct {
				ID int64 `json:"id"`
			} `json:"series"`
		} `json:"weeks"`
	} `json:"weekly"`
	Winners []bracketRound `json:"winners"`
	Losers  []bracketRound `json:"losers"`
	Groups  []struct {
		Seeds []struct {
			ID int64 `json:"id"`
		} `json:"seeds"`
	} `json:"groups"`
}

type bracketRound struct {
	Seeds []struct {
		SeriesID int64 `json:"seriesId"`
	} `json:"seeds"`
}

// seriesIDsFromBracket walks one event's bracket JSON and returns the bracket
// type and every series id it references, in document order.
func seriesIDsFromBracket(raw json.RawMessage) (string, []int64, error) {
	if len(raw) == 0 {
		return "", nil, fmt.Errorf("empty bracket")
	}

	var bracket bracketJSON
	if err := json.Unmarshal(raw, &bracket); err != nil {
		return "", nil, fmt.Errorf("failed to decode bracket: %w", err)
	}

	var ids []int64
	switch bracket.Type {
	case "weekly":
		if bracket.Weekly != nil {
			for _, week := range bracket.Weekly.Weeks {
				for _, series := range week.Series {
					ids = append(ids, series.ID)
				}
			}
		}
	case "double":
		for _, section := range [][]bracketRound{bracket.Winners, bracket.Losers} {
			for _, round := range section {
				for _, seed := range round.Seeds {
					ids = append(ids, seed.SeriesID)
				}
			}
		}
	case "single":
		for _, round := range bracket.Winners {
			for _, seed := range round.Seeds {
				ids = append(ids, seed.SeriesID)
			}
		}
	case "group":
		for _, group := range bracket.Groups {
			for _, seed := range group.Seeds {
				ids = append(ids, seed.ID)
			}
		}
	default:
		return bracket.Type, nil, fmt.Errorf("unhandled bracket type %q", bracket.Type)
	}

	return bracket.Type, ids, nil
}
