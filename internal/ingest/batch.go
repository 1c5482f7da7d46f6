package ingest

import (
	"sort"

	"valorant-pipeline/internal/domain"
	"valorant-pipeline/internal/extract"
)

type pickBanKey struct {
	matchID int64
	seqNum  int64
}

type mapStatKey struct {
	mapID    int64
	playerID int64
}

type roundStatKey struct {
	matchID  int64
	roundID  int64
	playerID int64
}

type mapPlayerStatKey struct {
	matchID  int64
	playerID int64
}

type xvyKey struct {
	matchID   int64
	teamID    int64
	side      string
	situation string
}

type mapEventKey struct {
	roundID int64
	killID  int64
}

// Batch accumulates extracted entities across documents, deduplicated by
// natural key. When two documents disagree on the same key the later one
// wins, matching the upsert policy: newer snapshots are the more complete.
type Batch struct {
	tournaments      map[int64]domain.Tournament
	teams            map[int64]domain.Team
	players          map[int64]domain.Player
	matches          map[int64]domain.Match
	availableMaps    map[int64]domain.AvailableMap
	matchMaps        map[int64]domain.MatchMap
	rounds           map[int64]domain.Round
	kills            map[int64]domain.Kill
	pickBans         map[pickBanKey]domain.PickBan
	mapStats         map[mapStatKey]domain.MapStat
	roundPlayerStats map[roundStatKey]domain.RoundPlayerStat
	mapPlayerStats   map[mapPlayerStatKey]domain.MapPlayerStat
	xvys             map[xvyKey]domain.XvY
	mapEvents        map[mapEventKey]domain.MapEvent
}

func NewBatch() *Batch {
	return &Batch{
		tournaments:      make(map[int64]domain.Tournament),
		teams:            make(map[int64]domain.Team),
		players:          make(map[int64]domain.Player),
		matches:          make(map[int64]domain.Match),
		availableMaps:    make(map[int64]domain.AvailableMap),
		matchMaps:        make(map[int64]domain.MatchMap),
		rounds:           make(map[int64]domain.Round),
		kills:            make(map[int64]domain.Kill),
		pickBans:         make(map[pickBanKey]domain.PickBan),
		mapStats:         make(map[mapStatKey]domain.MapStat),
		roundPlayerStats: make(map[roundStatKey]domain.RoundPlayerStat),
		mapPlayerStats:   make(map[mapPlayerStatKey]domain.MapPlayerStat),
		xvys:             make(map[xvyKey]domain.XvY),
		mapEvents:        make(map[mapEventKey]domain.MapEvent),
	}
}

// Add merges one document's entities into the batch.
func (b *Batch) Add(e *extract.Entities) {
	for _, t := range e.Tournaments {
		b.tournaments[t.EventID] = t
	}
	for _, t := range e.Teams {
		b.teams[t.TeamID] = t
	}
	for _, p := range e.Players {
		b.players[p.PlayerID] = p
	}
	for _, m := range e.Matches {
		b.matches[m.MatchID] = m
	}
	for _, m := range e.AvailableMaps {
		b.availableMaps[m.ID] = m
	}
	for _, m := range e.MatchMaps {
		b.matchMaps[m.MapID] = m
	}
	for _, r := range e.Rounds {
		b.rounds[r.RoundID] = r
	}
	for _, k := range e.Kills {
		b.kills[k.ID] = k
	}
	for _, pb := range e.PickBans {
		b.pickBans[pickBanKey{pb.MatchID, pb.SeqNum}] = pb
	}
	for _, st := range e.MapStats {
		b.mapStats[mapStatKey{st.MapID, st.PlayerID}] = st
	}
	for _, st := range e.RoundPlayerStats {
		b.roundPlayerStats[roundStatKey{st.MatchID, st.RoundID, st.PlayerID}] = st
	}
	for _, st := range e.MapPlayerStats {
		b.mapPlayerStats[mapPlayerStatKey{st.MatchID, st.PlayerID}] = st
	}
	for _, x := range e.XvYs {
		b.xvys[xvyKey{x.MatchID, x.TeamID, x.Side, x.Situation}] = x
	}
	for _, ev := range e.MapEvents {
		b.mapEvents[mapEventKey{ev.RoundID, ev.KillID}] = ev
	}
}

// Accessors return entities in a deterministic key order so that runs over
// the same documents replay identically.

func (b *Batch) Tournaments() []domain.Tournament {
	return sortedByID(b.tournaments, func(t domain.Tournament) int64 { return t.EventID })
}

func (b *Batch) Teams() []domain.Team {
	return sortedByID(b.teams, func(t domain.Team) int64 { return t.TeamID })
}

func (b *Batch) Players() []domain.Player {
	return sortedByID(b.players, func(p domain.Player) int64 { return p.PlayerID })
}

func (b *Batch) Matches() []domain.Match {
	return sortedByID(b.matches, func(m domain.Match) int64 { return m.MatchID })
}

func (b *Batch) AvailableMaps() []domain.AvailableMap {
	return sortedByID(b.availableMaps, func(m domain.AvailableMap) int64 { return m.ID })
}

func (b *Batch) MatchMaps() []domain.MatchMap {
	return sortedByID(b.matchMaps, func(m domain.MatchMap) int64 { return m.MapID })
}

func (b *Batch) Rounds() []domain.Round {
	return sortedByID(b.rounds, func(r domain.Round) int64 { return r.RoundID })
}

func (b *Batch) Kills() []domain.Kill {
	return sortedByID(b.kills, func(k domain.Kill) int64 { return k.ID })
}

func (b *Batch) PickBans() []domain.PickBan {
	out := make([]domain.PickBan, 0, len(b.pickBans))
	for _, pb := range b.pickBans {
		out = append(out, pb)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchID != out[j].MatchID {
			return out[i].MatchID < out[j].MatchID
		}
		return out[i].SeqNum < out[j].SeqNum
	})
	return out
}

func (b *Batch) MapStats() []domain.MapStat {
	out := make([]domain.MapStat, 0, len(b.mapStats))
	for _, st := range b.mapStats {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MapID != out[j].MapID {
			return out[i].MapID < out[j].MapID
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

func (b *Batch) RoundPlayerStats() []domain.RoundPlayerStat {
	out := make([]domain.RoundPlayerStat, 0, len(b.roundPlayerStats))
	for _, st := range b.roundPlayerStats {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RoundID != out[j].RoundID {
			return out[i].RoundID < out[j].RoundID
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

func (b *Batch) MapPlayerStats() []domain.MapPlayerStat {
	out := make([]domain.MapPlayerStat, 0, len(b.mapPlayerStats))
	for _, st := range b.mapPlayerStats {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchID != out[j].MatchID {
			return out[i].MatchID < out[j].MatchID
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

func (b *Batch) XvYs() []domain.XvY {
	out := make([]domain.XvY, 0, len(b.xvys))
	for _, x := range b.xvys {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool {
		a, c := out[i], out[j]
		if a.MatchID != c.MatchID {
			return a.MatchID < c.MatchID
		}
		if a.TeamID != c.TeamID {
			return a.TeamID < c.TeamID
		}
		if a.Side != c.Side {
			return a.Side < c.Side
		}
		return a.Situation < c.Situation
	})
	return out
}

func (b *Batch) MapEvents() []domain.MapEvent {
	out := make([]domain.MapEvent, 0, len(b.mapEvents))
	for _, ev := range b.mapEvents {
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RoundID != out[j].RoundID {
			return out[i].RoundID < out[j].RoundID
		}
		return out[i].KillID < out[j].KillID
	})
	return out
}

func sortedByID[T any](m map[int64]T, id func(T) int64) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}
