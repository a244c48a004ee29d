package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/neon-rush/internal/config"
	"github.com/vovakirdan/neon-rush/internal/core"
	"github.com/vovakirdan/neon-rush/internal/progression"
	"github.com/vovakirdan/neon-rush/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.neonrush/host_key.
	HostKeyPath string

	// DBPath is the path to the progression database.
	DBPath string

	// ConfigPath is an optional custom game config path.
	ConfigPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.neonrush/progress.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for remote play.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	gameCfg config.GameConfig
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "neonrush-ssh",
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open progression database", "error", err)
		// Continue without storage
	}

	gameCfg, err := config.Load(cfg.ConfigPath)
	if err != nil {
		logger.Warn("could not load game config, using defaults", "error", err)
		gameCfg = config.DefaultGameConfig()
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		gameCfg: gameCfg,
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".neonrush", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	// Create the server
	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	// Create runtime config from PTY size
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}

	// Each session gets its own progression view loaded from the
	// shared store. Saves go back through the same store.
	prog := loadProgression(s.store)

	model := NewSessionModel(s.store, prog, s.gameCfg, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// loadProgression builds a progression state from the store, falling
// back to a fresh one when storage is unavailable.
func loadProgression(store *storage.Store) *progression.State {
	if store == nil {
		return progression.NewState()
	}
	snap, err := store.Load()
	if err != nil {
		return progression.NewState()
	}
	return progression.FromSnapshot(snap)
}

// SessionModel manages the full session flow: level picker -> run -> picker.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store    *storage.Store
	prog     *progression.State
	gameCfg  config.GameConfig
	config   core.RuntimeConfig
	picker   LevelSelectModel
	runModel *RunModel
	inRun    bool
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, prog *progression.State, gameCfg config.GameConfig, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:   store,
		prog:    prog,
		gameCfg: gameCfg,
		config:  cfg,
		picker:  NewLevelSelectModel(prog, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inRun && m.runModel != nil {
		return m.updateRun(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates when in the level picker.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	newPicker, cmd := m.picker.Update(msg)
	if pickerModel, ok := newPicker.(LevelSelectModel); ok {
		m.picker = pickerModel
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.picker.Selected(); selected != nil {
		m.config = m.picker.Config() // Possibly updated by resize

		// Fresh seed per attempt so replays differ
		rtCfg := m.config
		rtCfg.Seed = time.Now().UnixNano()

		runModel, err := NewRunModel(selected.Level, m.gameCfg, m.prog, m.store, rtCfg)
		if err != nil {
			// Locked or invalid selection; stay in the picker
			m.picker = NewLevelSelectModel(m.prog, m.config)
			return m, m.picker.Init()
		}
		m.runModel = &runModel
		m.inRun = true

		return m, m.runModel.Init()
	}

	return m, cmd
}

// updateRun handles updates when a run is active.
func (m SessionModel) updateRun(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	newModel, cmd := m.runModel.Update(msg)
	if runModel, ok := newModel.(RunModel); ok {
		m.runModel = &runModel
	}

	// Back to the picker after the run
	if m.runModel.BackToMenu() {
		m.inRun = false
		m.runModel = nil
		m.picker = NewLevelSelectModel(m.prog, m.config)
		return m, m.picker.Init()
	}

	if m.runModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inRun && m.runModel != nil {
		return m.runModel.View()
	}

	return m.picker.View()
}
