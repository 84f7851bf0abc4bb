package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/captainzonks/hopper/assets"
	"github.com/captainzonks/hopper/config"
	"github.com/captainzonks/hopper/inventory"
	"github.com/captainzonks/hopper/server/core"
	"github.com/captainzonks/hopper/shared/protocol"
	"github.com/captainzonks/hopper/systems"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hopper:", err)
		os.Exit(1)
	}
}

func run() error {
	env, err := config.LoadServer()
	if err != nil {
		return err
	}

	port := flag.Uint("port", env.Port, "Spectator websocket port (0 runs headless)")
	tickRate := flag.Int("tickrate", env.TickRate, "Simulation ticks per second")
	configPath := flag.String("config", env.ConfigPath, "Tuning overlay YAML file")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	bot := flag.Bool("bot", false, "Add a bot-driven player")
	bots := flag.Int("bots", 0, "Number of bot-driven players")
	difficulty := flag.String("difficulty", "", "Bot difficulty: easy, normal or hard")
	seed := flag.Int64("seed", 42, "Seed for bot decisions")
	duration := flag.Duration("duration", 0, "Stop after this long (0 runs until interrupted)")
	save := flag.Bool("save", false, "Persist inventories and run stats in the user data directory")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			return err
		}
	}
	if env.LogLevel != "" {
		config.Logging.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		config.Logging.Format = env.LogFormat
	}
	if *difficulty != "" {
		d, err := config.ParseBotDifficulty(*difficulty)
		if err != nil {
			return err
		}
		config.Bot.Difficulty = d
	}

	log, err := newLogger(config.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	manager := assets.MustOpen(assets.Embedded(), log)
	defer manager.Close()

	var reload chan string
	if *watch && *configPath != "" {
		watcher, err := config.Watch(*configPath)
		if err != nil {
			return err
		}
		defer watcher.Close()
		reload = watcher.Events
		go func() {
			for err := range watcher.Errors {
				log.Warn("tuning watch error", zap.Error(err))
			}
		}()
	}

	var store inventory.Store
	var stats *systems.StatsStore
	if *save {
		if s, err := inventory.OpenGdataStore(env.SaveApp); err != nil {
			log.Warn("inventories will not be saved", zap.Error(err))
		} else {
			store = s
		}
		if s, err := systems.OpenStatsStore(env.SaveApp); err != nil {
			log.Warn("run stats will not be saved", zap.Error(err))
		} else {
			stats = s
		}
	}

	if *port > 0 {
		if err := protocol.RegisterComponents(); err != nil {
			return fmt.Errorf("register components: %w", err)
		}
	}

	sim, err := core.NewSimulation(manager, log)
	if err != nil {
		return err
	}
	botCount := *bots
	if *bot && botCount == 0 {
		botCount = 1
	}
	server := core.NewServer(sim, core.Options{
		TickRate: *tickRate,
		Port:     *port,
		Bots:     botCount,
		BotSeed:  *seed,
		Version:  *version,
		Store:    store,
		Reload:   reload,
		Log:      log,
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("shutting down", zap.String("signal", sig.String()))
		server.Stop()
	}()
	if *duration > 0 {
		time.AfterFunc(*duration, server.Stop)
	}

	log.Info("starting hopper",
		zap.Uint("port", *port),
		zap.Int("tick_rate", *tickRate),
		zap.Int("bots", botCount),
		zap.Stringer("difficulty", config.Bot.Difficulty))

	start := time.Now()
	if err := server.Start(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	server.Wait()

	summary := sim.Summary()
	summary.Seconds = time.Since(start).Seconds()
	log.Info("run finished",
		zap.Uint64("ticks", summary.Ticks),
		zap.Float64("seconds", summary.Seconds),
		zap.Int("kills", summary.Kills),
		zap.Int("deaths", summary.Deaths),
		zap.Int("players_alive", summary.PlayersAlive),
		zap.Int("enemies_alive", summary.EnemiesAlive))

	if stats != nil {
		totals, err := systems.RecordRun(stats, summary)
		if err != nil {
			log.Warn("run stats not saved", zap.Error(err))
		}
		log.Info("totals", zap.Int("runs", totals.Runs), zap.Int("best_kills", totals.BestKills))
	}
	return nil
}

func newLogger(c config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if c.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
