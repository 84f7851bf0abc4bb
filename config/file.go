package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned when a tuning file does not exist.
var ErrNoConfig = errors.New("config: no config file")

// File is the on-disk shape of a tuning overlay. Sections left out of the
// file keep their current values.
type File struct {
	Character  CharacterConfig  `yaml:"character"`
	Combat     CombatConfig     `yaml:"combat"`
	Movement   MovementConfig   `yaml:"movement"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Perception PerceptionConfig `yaml:"perception"`
	Sim        SimConfig        `yaml:"sim"`
	Logging    LoggingConfig    `yaml:"logging"`
	Bot        BotOverlay       `yaml:"bot"`
}

// BotOverlay selects the player bot difficulty by name.
type BotOverlay struct {
	Difficulty string `yaml:"difficulty"`
}

// LoadFile overlays the YAML file at path onto the current globals.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNoConfig, path)
	}
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// Apply overlays YAML data onto the current globals. Nothing is changed when
// the data does not parse.
func Apply(data []byte) error {
	f := File{
		Character:  Character,
		Combat:     Combat,
		Movement:   Movement,
		Enemy:      Enemy,
		Perception: Perception,
		Sim:        Sim,
		Logging:    Logging,
		Bot:        BotOverlay{Difficulty: Bot.Difficulty.String()},
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	difficulty, err := ParseBotDifficulty(f.Bot.Difficulty)
	if err != nil {
		return err
	}

	Character = f.Character
	Combat = f.Combat
	Movement = f.Movement
	Enemy = f.Enemy
	Perception = f.Perception
	Sim = f.Sim
	Logging = f.Logging
	Bot.Difficulty = difficulty
	return nil
}

// Watcher reports writes to a tuning file. It never touches the globals
// itself; the owner of the simulation loop calls LoadFile for each event.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching the directory containing path.
func Watch(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	watcher := &Watcher{
		watcher: w,
		path:    filepath.Clean(path),
		Events:  make(chan string, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now
			select {
			case w.Events <- w.path:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
