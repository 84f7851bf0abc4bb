package core

import (
	"errors"
	"sync"

	"github.com/captainzonks/hopper/components"
	"github.com/captainzonks/hopper/inventory"
	"github.com/captainzonks/hopper/shared/messages"
	"github.com/captainzonks/hopper/shared/netcomponents"
	"github.com/captainzonks/hopper/systems"
	"github.com/captainzonks/hopper/systems/factory"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Options configure a Server.
type Options struct {
	TickRate int
	// Port serves spectators over websocket. 0 runs headless.
	Port uint
	// Bots is the number of bot-driven players spawned at start.
	Bots    int
	BotSeed int64
	// Version is the client version joins must match. Empty accepts any.
	Version string
	// Store persists player inventories. Nil keeps them in memory.
	Store inventory.Store
	// Reload delivers tuning file paths to re-apply between ticks.
	Reload <-chan string
	Log    *zap.Logger
}

// Server hosts one simulation and the clients watching or playing it.
type Server struct {
	log       *zap.Logger
	sim       *Simulation
	loop      *GameLoop
	opts      Options
	transport *transports.WsServerTransport
	networked bool

	// Track which network client owns which player
	clients  map[*router.NetworkClient]*remoteClient
	commands []func()
	mu       sync.Mutex
}

type remoteClient struct {
	input  *RemoteInput
	entity donburi.Entity
	joined bool
}

// NewServer creates the simulation and spawns enemies and bots. Spectator
// sync is enabled when opts.Port is set; network components must already be
// registered.
func NewServer(sim *Simulation, opts Options) *Server {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		log:       log,
		sim:       sim,
		opts:      opts,
		networked: opts.Port > 0,
		clients:   make(map[*router.NetworkClient]*remoteClient),
	}
	s.loop = NewGameLoop(s, opts.TickRate, opts.Reload, log)

	if s.networked {
		// Set up the world for esync
		srvsync.UseEsync(sim.World())
		s.setupRouterCallbacks()
	}

	for _, e := range sim.SpawnEnemies() {
		s.track(e)
	}
	for i := 0; i < opts.Bots; i++ {
		player := sim.SpawnPlayer(factory.PlayerOptions{
			Name:   botName(i),
			Source: systems.NewPlayerBot(opts.BotSeed + int64(i)),
			Bot:    true,
			Store:  opts.Store,
		})
		s.track(player)
	}
	if s.networked {
		components.Arena.Each(sim.World(), func(e *donburi.Entry) {
			entity := e.Entity()
			if err := srvsync.NetworkSync(sim.World(), &entity, netcomponents.NetArena); err != nil {
				log.Warn("arena not synced", zap.Error(err))
			}
		})
	}
	return s
}

func botName(i int) string {
	return "bot-" + string(rune('a'+i%26))
}

// Start runs the game loop, and the spectator transport when networked. It
// blocks until Stop is called or the transport fails.
func (s *Server) Start() error {
	go s.loop.Run()
	if !s.networked {
		<-s.loop.Done()
		return nil
	}

	s.transport = transports.NewWsServerTransport(s.opts.Port, "", nil)
	errCh := make(chan error, 1)
	go func() { errCh <- s.transport.Start() }()
	select {
	case <-s.loop.Done():
		return nil
	case err := <-errCh:
		s.loop.Stop()
		return err
	}
}

// Stop halts the game loop. It is safe to call more than once.
func (s *Server) Stop() {
	s.loop.Stop()
}

// Wait blocks until the loop has stopped.
func (s *Server) Wait() {
	<-s.loop.Done()
}

func (s *Server) Simulation() *Simulation {
	return s.sim
}

// enqueue schedules fn to run on the game loop before the next tick.
func (s *Server) enqueue(fn func()) {
	s.mu.Lock()
	s.commands = append(s.commands, fn)
	s.mu.Unlock()
}

// ProcessCommands runs work queued by transport goroutines.
func (s *Server) ProcessCommands() {
	s.mu.Lock()
	commands := s.commands
	s.commands = nil
	s.mu.Unlock()

	for _, fn := range commands {
		fn()
	}
}

func (s *Server) track(e *donburi.Entry) {
	if !s.networked {
		return
	}
	entity := e.Entity()
	// Mark entity for network sync with interpolation for position
	err := srvsync.NetworkSync(s.sim.World(), &entity,
		srvsync.WithInterp(netcomponents.NetPosition),
		netcomponents.NetCharacter,
	)
	if err != nil {
		s.log.Warn("failed to set up network sync", zap.Error(err))
	}
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.onConnect(client)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.onJoin(client, req)
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.onPlayerInput(client, input)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		s.log.Warn("client error", zap.Error(err))
	})
}

func (s *Server) onConnect(client *router.NetworkClient) {
	s.log.Info("client connected", zap.String("client", client.Id()))
	s.mu.Lock()
	s.clients[client] = &remoteClient{input: &RemoteInput{}}
	s.mu.Unlock()
}

var errVersion = errors.New("core: client version mismatch")

func (s *Server) onJoin(client *router.NetworkClient, req messages.JoinRequest) {
	if s.opts.Version != "" && req.Version != s.opts.Version {
		s.log.Warn("join rejected", zap.String("client", client.Id()), zap.Error(errVersion),
			zap.String("version", req.Version))
		return
	}

	s.mu.Lock()
	rc, ok := s.clients[client]
	if !ok || rc.joined {
		s.mu.Unlock()
		return
	}
	rc.joined = true
	s.mu.Unlock()

	name := req.PlayerName
	if name == "" {
		name = client.Id()
	}
	s.enqueue(func() {
		player := s.sim.SpawnPlayer(factory.PlayerOptions{
			Name:   name,
			Source: rc.input,
			Store:  s.opts.Store,
		})
		s.track(player)

		s.mu.Lock()
		rc.entity = player.Entity()
		s.mu.Unlock()
	})
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		s.log.Info("client disconnected", zap.String("client", client.Id()), zap.Error(err))
	} else {
		s.log.Info("client disconnected", zap.String("client", client.Id()))
	}

	s.mu.Lock()
	rc, exists := s.clients[client]
	delete(s.clients, client)
	s.mu.Unlock()

	if !exists || !rc.joined {
		return
	}
	s.enqueue(func() {
		s.mu.Lock()
		entity := rc.entity
		s.mu.Unlock()
		w := s.sim.World()
		if w.Valid(entity) {
			systems.RemoveCharacter(s.sim.ECS, w.Entry(entity))
		}
	})
}

func (s *Server) onPlayerInput(client *router.NetworkClient, input messages.PlayerInput) {
	s.mu.Lock()
	rc, exists := s.clients[client]
	s.mu.Unlock()
	if !exists || !rc.joined {
		return
	}
	rc.input.Push(input)
}

// PlayerCount returns the number of joined network players
func (s *Server) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, rc := range s.clients {
		if rc.joined {
			n++
		}
	}
	return n
}
