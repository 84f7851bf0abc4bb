package systems

import (
	"encoding/json"
	"fmt"

	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const statsKey = "stats"

// RunStats are the totals kept across runs.
type RunStats struct {
	Runs       int     `json:"runs"`
	Kills      int     `json:"kills"`
	Deaths     int     `json:"deaths"`
	BestKills  int     `json:"bestKills"`
	TotalTicks uint64  `json:"totalTicks"`
	LastSecs   float64 `json:"lastSeconds"`
}

// StatsStore reads and writes run stats in the user's data directory.
type StatsStore struct {
	manager *gdata.Manager
}

// OpenStatsStore opens the data directory for appName.
func OpenStatsStore(appName string) (*StatsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("stats: open save data: %w", err)
	}
	return &StatsStore{manager: m}, nil
}

// Load returns the saved stats, or zero stats when nothing was saved yet.
func (s *StatsStore) Load() (RunStats, error) {
	var stats RunStats
	if s == nil || s.manager == nil {
		return stats, nil
	}
	data, err := s.manager.LoadItem(statsKey)
	if err != nil {
		return stats, fmt.Errorf("stats: load: %w", err)
	}
	if len(data) == 0 {
		return stats, nil
	}
	if err := json.Unmarshal(data, &stats); err != nil {
		return stats, fmt.Errorf("stats: decode: %w", err)
	}
	return stats, nil
}

func (s *StatsStore) Save(stats RunStats) error {
	if s == nil || s.manager == nil {
		return nil
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats: encode: %w", err)
	}
	if err := s.manager.SaveItem(statsKey, data); err != nil {
		return fmt.Errorf("stats: save: %w", err)
	}
	return nil
}

// Summary is what happened during one run.
type Summary struct {
	Ticks        uint64
	Seconds      float64
	Kills        int
	Deaths       int
	PlayersAlive int
	EnemiesAlive int
}

// Summarize reads the arena totals out of the world.
func Summarize(ecs *ecs.ECS) Summary {
	var s Summary
	if e, ok := components.Clock.First(ecs.World); ok {
		clock := components.Clock.Get(e)
		s.Ticks = clock.Tick
	}
	if e, ok := components.Arena.First(ecs.World); ok {
		arena := components.Arena.Get(e)
		s.Kills = arena.Kills
		s.Deaths = arena.Deaths
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			s.PlayersAlive++
		}
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			s.EnemiesAlive++
		}
	})
	return s
}

// Record folds one run into the totals.
func (r RunStats) Record(s Summary) RunStats {
	r.Runs++
	r.Kills += s.Kills
	r.Deaths += s.Deaths
	r.BestKills = max(r.BestKills, s.Kills)
	r.TotalTicks += s.Ticks
	r.LastSecs = s.Seconds
	return r
}

// RecordRun loads the totals, adds s and saves them back.
func RecordRun(store *StatsStore, s Summary) (RunStats, error) {
	stats, err := store.Load()
	if err != nil {
		logger.Warn("could not load run stats, starting fresh", zap.Error(err))
		stats = RunStats{}
	}
	stats = stats.Record(s)
	if err := store.Save(stats); err != nil {
		return stats, err
	}
	return stats, nil
}
