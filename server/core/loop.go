package core

import (
	"errors"
	"sync"
	"time"

	cfg "github.com/captainzonks/hopper/config"
	"github.com/leap-fish/necs/esync/srvsync"
	"go.uber.org/zap"
)

type GameLoop struct {
	server   *Server
	tickRate int
	reload   <-chan string
	log      *zap.Logger

	stopChan chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(server *Server, tickRate int, reload <-chan string, log *zap.Logger) *GameLoop {
	if tickRate <= 0 {
		tickRate = cfg.Sim.TickRate
	}
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		reload:   reload,
		log:      log,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	defer close(g.done)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.log.Info("game loop started", zap.Int("tick_rate", g.tickRate))

	for {
		select {
		case <-g.stopChan:
			g.log.Info("game loop stopped")
			return
		case path := <-g.reload:
			g.applyConfig(path)
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends Run after the current tick.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Done is closed once Run has returned.
func (g *GameLoop) Done() <-chan struct{} {
	return g.done
}

func (g *GameLoop) tick() {
	g.server.ProcessCommands()
	g.server.sim.Step(1 / float64(g.tickRate))

	if !g.server.networked {
		return
	}
	if err := srvsync.DoSync(); err != nil {
		g.log.Warn("sync error", zap.Error(err))
	}
}

// applyConfig re-reads the tuning file between ticks so systems never see a
// half-applied overlay.
func (g *GameLoop) applyConfig(path string) {
	if err := cfg.LoadFile(path); err != nil {
		if errors.Is(err, cfg.ErrNoConfig) {
			g.log.Warn("tuning file removed, keeping current values", zap.String("path", path))
			return
		}
		g.log.Error("tuning reload failed", zap.Error(err))
		return
	}
	g.log.Info("tuning reloaded", zap.String("path", path))
}
