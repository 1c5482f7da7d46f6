// Package extract projects raw scraped documents onto typed entity records.
// Extraction is a projection with defaults: absent optional keys resolve to a
// declared default or NULL and never fail the document; a list item that does
// not decode, or that carries no primary identifier, is logged and dropped
// without touching its siblings.
package extract

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"valorant-pipeline/internal/constants"
	"valorant-pipeline/internal/domain"

	"github.com/rs/zerolog"
)

// Entities is the typed output of one document.
type Entities struct {
	Tournaments      []domain.Tournament
	Teams            []domain.Team
	Players          []domain.Player
	Matches          []domain.Match
	AvailableMaps    []domain.AvailableMap
	MatchMaps        []domain.MatchMap
	Rounds           []domain.Round
	Kills            []domain.Kill
	PickBans         []domain.PickBan
	MapStats         []domain.MapStat
	RoundPlayerStats []domain.RoundPlayerStat
	MapPlayerStats   []domain.MapPlayerStat
	XvYs             []domain.XvY
	MapEvents        []domain.MapEvent
}

type Extractor struct {
	logger zerolog.Logger
}

func NewExtractor(logger zerolog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extra extracts the entities of one series snapshot document.
func (e *Extractor) Extra(data []byte) (*Entities, error) {
	var doc extraDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse extra document: %w", err)
	}
	if doc.ParentEventID == nil {
		return nil, fmt.Errorf("extra document missing parentEventId")
	}

	out := &Entities{}

	tier := strOr(doc.EventTier, "")
	if tier == "" {
		tier = DeriveTier(strOr(doc.ParentEventName, ""))
	}
	out.Tournaments = append(out.Tournaments, domain.Tournament{
		EventID:        *doc.ParentEventID,
		EventType:      strOr(doc.EventType, constants.DefaultEventType),
		EventFormat:    strOr(doc.EventFormat, constants.DefaultEventFormat),
		EventTier:      tier,
		StartDate:      parseDate(doc.StartDate),
		EventName:      doc.ParentEventName,
		EventSlug:      doc.ParentEventSlug,
		ChildEvent:     doc.EventChildLabel,
		ChildEventSlug: doc.EventSlug,
	})

	for _, team := range []*teamObj{doc.Team1, doc.Team2} {
		if team == nil {
			continue
		}
		if team.ID == nil {
			e.logger.Warn().Msg("team without id, dropping")
			continue
		}
		out.Teams = append(out.Teams, domain.Team{
			TeamID:    *team.ID,
			TeamName:  team.Name,
			TeamShort: team.ShortName,
			Region:    team.VctRegion,
		})
	}

	division := strOr(doc.Division, constants.DefaultDivision)
	for i, raw := range doc.Matches {
		m, err := decodeItem[matchObj](raw)
		if err != nil {
			e.logger.Warn().Err(err).Int("index", i).Msg("malformed match entry, skipping")
			continue
		}
		if m.ID == nil {
			e.logger.Warn().Int("index", i).Msg("match entry without id, dropping")
			continue
		}
		matchID := *m.ID

		out.Matches = append(out.Matches, domain.Match{
			MatchID:          matchID,
			EventID:          doc.ParentEventID,
			EventStage:       m.EventStage,
			Bracket:          doc.Bracket,
			ExternalMatchRef: m.VlrID,
			Team1ID:          m.Team1ID,
			Team2ID:          m.Team2ID,
			EventRegionID:    doc.EventRegionID,
			Division:         &division,
			T1Score:          m.Team1Score,
			T2Score:          m.Team2Score,
			BestOf:           m.BestOf,
			PatchID:          m.PatchID,
		})

		if m.Map != nil && m.Map.ID != nil {
			out.AvailableMaps = append(out.AvailableMaps, domain.AvailableMap{
				ID:     *m.Map.ID,
				Name:   m.Map.Name,
				RiotID: m.Map.RiotID,
			})
		}

		e.extractPlayers(m.Players, out)
		e.extractRounds(m.Rounds, &matchID, out)
		e.extractKills(m.Kills, &matchID, out)
		e.extractMapStats(m.Stats, nil, out)
		e.extractXvYs(m.XvY, matchID, out)
		e.extractRoundPlayerStats(m.PlayerStatsOnRounds, matchID, out)
		e.extractMapPlayerStats(m.PlayerStatsOnMaps, matchID, out)
		e.extractMapEvents(m.EventsOnMaps, out)
	}

	for i, raw := range doc.PickBan {
		pb, err := decodeItem[pickBanObj](raw)
		if err != nil {
			e.logger.Warn().Err(err).Int("index", i).Msg("malformed pickban entry, skipping")
			continue
		}
		matchID := pb.MatchID
		if matchID == nil {
			matchID = doc.ID
		}
		if matchID == nil || pb.SeqNum == nil {
			e.logger.Warn().Int("index", i).Msg("pickban entry without key, dropping")
			continue
		}
		out.PickBans = append(out.PickBans, domain.PickBan{
			MatchID:     *matchID,
			SeqNum:      *pb.SeqNum,
			TeamID:      pb.TeamID,
			MapID:       pb.MapID,
			PickBanType: pb.Type,
			IsLeftover:  pb.IsLeftover,
			TeamSeqNum:  pb.TeamSeqNum,
		})
	}

	return out, nil
}

// Details extracts the entities of one per-match detail document.
func (e *Extractor) Details(data []byte) (*Entities, error) {
	var doc detailsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse details document: %w", err)
	}
	if doc.MatchID == nil {
		return nil, fmt.Errorf("details document missing matchId")
	}

	out := &Entities{}

	for i, raw := range doc.Maps {
		m, err := decodeItem[detailsMapObj](raw)
		if err != nil {
			e.logger.Warn().Err(err).Int("index", i).Msg("malformed map entry, skipping")
			continue
		}
		if m.ID == nil {
			e.logger.Warn().Int("index", i).Msg("map entry without id, dropping")
			continue
		}

		matchID := m.MatchID
		if matchID == nil {
			matchID = doc.MatchID
		}
		out.MatchMaps = append(out.MatchMaps, domain.MatchMap{
			MapID:          *m.ID,
			MatchID:        matchID,
			MapNum:         m.MapNum,
			LengthInMilli:  m.LengthMillis,
			AttackingFirst: m.AttackingFirstTeamNumber,
			Winner:         m.WinningTeamNumber,
			T1Score:        m.Team1Score,
			T2Score:        m.Team2Score,
			VodURL:         m.VodURL,
		})

		e.extractMapStats(m.PlayerStats, m.ID, out)
		e.extractRounds(m.Rounds, doc.MatchID, out)
	}

	return out, nil
}

func (e *Extractor) extractPlayers(items []json.RawMessage, out *Entities) {
	for i, raw := range items {
		pw, err := decodeItem[playerWrapperObj](raw)
		if err != nil {
			e.logger.Warn().Err(err).Int("index", i).Msg("malformed player entry, skipping")
			continue
		}
		if pw.Player == nil || pw.Player.ID == nil {
			e.logger.Warn().Int("index", i).Msg("player entry without id, dropping")
			continue
		}
		out.Players = append(out.Players, domain.Player{
			PlayerID:      *pw.Player.ID,
			IGN:           pw.Player.IGN,
			OldIGN:        pw.Player.OldIGN,
			CurrentTeamID: pw.Player.CurrentTeamID,
		})
	}
}

func (e *Extractor) extractRounds(items []json.RawMessage, matchID *int64, out *Entities) {
	for i, raw := range items {
		r, err := decodeItem[roundObj](raw)
		if err != nil {
			e.logger.Warn().Err(err).Int("index", i).Msg("malformed round entry, skipping")
			continue
		}
		if r.ID == nil {
			e.logger.Warn().Int("index", i).Msg("round entry without id, dropping")
			continue
		}
		rMatchID := r.MatchID
		if rMatchID == nil {
			rMatchID = matchID
		}
		out.Rounds = append(out.Rounds, domain.Round{
			RoundID:       *r.ID,
			MatchID:       rMatchID,
			RoundNum:      r.Number,
			WinCondition:  r.WinCondition,
			WinnerTeam:    r.WinningTeamNumber,
			Ceremony:      r.Ceremony,
			T1LoadoutTier: r.Team1LoadoutTier,
			T2LoadoutTier: r.Team2LoadoutTier,
			AttackingTeam: r.AttackingTeamNumber,
		})
	}
}

func (e *Extractor) extractKills(items []json.RawMessage, matchID *int64, out *Entities) {
	for i, raw := range items {
		k, err := decodeItem[killObj](raw)
		if err != nil {
			e.logger.Warn().Err(err).Int("index", i).Msg("malformed kill entry, skipping")
			continue
		}
		if k.ID == nil {
			e.logger.Warn().Int("index", i).Msg("kill entry without id, dropping")
			continue
		}
		kMatchID := k.MatchID
		if kMatchID == nil {
			kMatchID = matchID
		}
		out.Kills = append(out.Kills, domain.Kill{
			ID:                *k.ID,
			MatchID:           kMatchID,
			RoundID:           k.RoundID,
			KillerID:          k.KillerID,
			VictimID:          k.VictimID,
			RoundTimeMillis:   k.RoundTimeMillis,
			GameTimeMillis:    k.GameTimeMillis,
			VictimLocationX:   k.VictimLocationX,
			VictimLocationY:   k.VictimLocationY,
			DamageType:        k.DamageType,
			AbilityType:       k.AbilityType,
			WeaponID:          k.WeaponID,
			SecondaryFireMode: k.SecondaryFireMode,
			IsFirst:           k.First,
			TradedByKillID:    k.TradedByKillID,
			TradedForKillID:   k.TradedForKillID,
			Weapon:            k.Weapon,
			WeaponCategory:    k.WeaponCategory,
			KillerTeamNumber:  k.KillerTeamNumber,
			VictimTeamNumber:  k.VictimTeamNumber,
			Side:              k.Side,
			Assistants:        k.Assistants,
		})
	}
}

// extractMapStats handles both the stats[] section of an extra match entry
// (items carry their own mapId) and the playerStats[] section of a details
// map (enclosingMapID supplies it).
func (e *Extractor) extractMapStats(items []json.RawMessage, enclosingMapID *int64, out *Entities) {
	for i, raw := range items {
		st, err := decodeItem[mapStatObj](raw)
		if err != nil {
			e.logger.Warn().Err(err).Int("index", i).Msg("malformed map stat entry, skipping")
			continue
		}
		mapID := st.MapID
		if mapID == nil {
			mapID = enclosingMapID
		}
		if mapID == nil || st.PlayerID == nil {
			e.logger.Warn().Int("index", i).Msg("map stat entry without key, dropping")
			continue
		}
		out.MapStats = append(out.MapStats, domain.MapStat{
			MapID:            *mapID,
			PlayerID:         *st.PlayerID,
			Kills:            st.Kills,
			Deaths:           st.Deaths,
			Assists:          st.Assists,
			RibRating:        st.RibRating,
			RibRatingAttack:  st.RibRatingAttack,
			RibRatingDefense: st.RibRatingDefense,
		})
	}
}

func (e *Extractor) extractXvYs(items []json.RawMessage, matchID int64, out *Entities) {
	for i, raw := range items {
		x, err := decodeItem[xvyObj](raw)
		if err != nil {
			e.logger.Warn().Err(err).Int("index", i).Msg("malformed xvy entry, skipping")
			continue
		}
		if x.TeamID == nil {
			e.logger.Warn().Int("index", i).Msg("xvy entry without team id, dropping")
			continue
		}
		out.XvYs = append(out.XvYs, domain.XvY{
			MatchID:    matchID,
			TeamID:     *x.TeamID,
			TeamNumber: x.TeamNumber,
			Side:       strOr(x.Side, ""),
			Situation:  strOr(x.Situation, ""),
			Team1Count: x.Team1Count,
			Team2Count: x.Team2Count,
			Delta:      x.Delta,
			Wins:       x.Wins,
			Losses:     x.Losses,
		})
	}
}

func (e *Extractor) extractRoundPlayerStats(items []json.RawMessage, matchID int64, out *Entities) {
	for i, raw := range items {
		st, err := decodeItem[roundPlayerStatObj](raw)
		if err != nil {
			e.logger.Warn().Err(err).Int("index", i).Msg("malformed round stat entry, skipping")
			continue
		}
		if st.RoundID == nil || st.PlayerID == nil {
			e.logger.Warn().Int("index", i).Msg("round stat entry without key, dropping")
			continue
		}
		out.RoundPlayerStats = append(out.RoundPlayerStats, domain.RoundPlayerStat{
			MatchID:             matchID,
			RoundID:             *st.RoundID,
			PlayerID:            *st.PlayerID,
			RoundNumber:         st.RoundNumber,
			TeamNumber:          st.TeamNumber,
			Side:                st.Side,
			ACS:                 st.ACS,
			Kills:               st.Kills,
			FirstKills:          st.FirstKills,
			Deaths:              st.Deaths,
			FirstDeaths:         st.FirstDeaths,
			Assists:             st.Assists,
			Damage:              st.Damage,
			Headshots:           st.Headshots,
			Bodyshots:           st.Bodyshots,
			Legshots:            st.Legshots,
			Plants:              st.Plants,
			Defusals:            st.Defusals,
			Clutches:            st.Clutches,
			ClutchOpponents:     st.ClutchOpponents,
			ClutchOpportunities: st.ClutchOpportunities,
			Impact:              st.Impact,
			KastRounds:          st.KastRounds,
		})
	}
}

func (e *Extractor) extractMapPlayerStats(items []json.RawMessage, matchID int64, out *Entities) {
	for i, raw := range items {
		st, err := decodeItem[mapPlayerStatObj](raw)
		if err != nil {
			e.logger.Warn().Err(err).Int("index", i).Msg("malformed map player stat entry, skipping")
			continue
		}
		if st.PlayerID == nil {
			e.logger.Warn().Int("index", i).Msg("map player stat entry without player id, dropping")
			continue
		}
		out.MapPlayerStats = append(out.MapPlayerStats, domain.MapPlayerStat{
			MatchID:         matchID,
			PlayerID:        *st.PlayerID,
			Score:           st.Score,
			RoundsPlayed:    st.RoundsPlayed,
			Kills:           st.Kills,
			Deaths:          st.Deaths,
			Assists:         st.Assists,
			PlaytimeMillis:  st.PlaytimeMillis,
			Impact:          st.Impact,
			Rating:          st.Rating,
			AttackingRating: st.AttackingRating,
			DefendingRating: st.DefendingRating,
		})
	}
}

func (e *Extractor) extractMapEvents(items []json.RawMessage, out *Entities) {
	for i, raw := range items {
		ev, err := decodeItem[mapEventObj](raw)
		if err != nil {
			e.logger.Warn().Err(err).Int("index", i).Msg("malformed map event entry, skipping")
			continue
		}
		if ev.RoundID == nil || ev.KillID == nil {
			e.logger.Warn().Int("index", i).Msg("map event entry without key, dropping")
			continue
		}
		out.MapEvents = append(out.MapEvents, domain.MapEvent{
			RoundID:         *ev.RoundID,
			KillID:          *ev.KillID,
			RoundNumber:     ev.RoundNumber,
			RoundTimeMillis: ev.RoundTimeMillis,
			TradedByKillID:  ev.TradedByKillID,
			TradedForKillID: ev.TradedForKillID,
		})
	}
}

// DeriveTier classifies an event by name when the source carries no tier.
func DeriveTier(eventName string) string {
	name := strings.ToLower(eventName)
	switch {
	case strings.Contains(name, "champions"):
		return constants.TierChampions
	case strings.Contains(name, "masters"):
		return constants.TierMasters
	}
	for _, region := range []string{"americas", "pacific", "emea", "china"} {
		if strings.Contains(name, region) {
			return constants.TierRegional
		}
	}
	return constants.TierDefault
}

func decodeItem[T any](raw json.RawMessage) (*T, error) {
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func strOr(v *string, fallback string) string {
	if v != nil && *v != "" {
		return *v
	}
	return fallback
}

func parseDate(v *string) *time.Time {
	if v == nil || *v == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, *v); err == nil {
			return &t
		}
	}
	return nil
}
