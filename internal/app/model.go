package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/yoursandeshshrestha/videoable/internal/api"
	"github.com/yoursandeshshrestha/videoable/internal/editstate"
	"github.com/yoursandeshshrestha/videoable/internal/player"
	"github.com/yoursandeshshrestha/videoable/internal/store"
	"github.com/yoursandeshshrestha/videoable/internal/timeline"
	"github.com/yoursandeshshrestha/videoable/internal/video"
)

// PanelFocus tracks which panel has keyboard focus.
type PanelFocus int

const (
	FocusPlayer PanelFocus = iota
	FocusChat
)

// Options configures a new Model.
type Options struct {
	Client  *api.Client
	Session api.Session
	// LocalPath is the uploaded file's path on this machine, if known. It
	// enables the ffprobe duration fallback.
	LocalPath string
	// Store is the recent-sessions cache; nil disables local caching.
	Store  *store.Store
	Logger *zap.Logger
	// TickInterval is the playback clock resolution.
	TickInterval time.Duration
}

// Model is the root bubbletea model for the videoable TUI.
type Model struct {
	client *api.Client
	store  *store.Store
	logger *zap.Logger

	// Session
	session   api.Session
	localPath string

	// Editor state, replaced wholesale on every transition.
	state    editstate.State
	resolver *timeline.Resolver
	spec     timeline.RenderSpec
	loaded   bool

	// Playback
	clock        *player.Clock
	tickInterval time.Duration
	activeText   string

	// Request ordering: seq is the last issued request number; a response
	// is applied only if it matches both the session and the sequence it
	// was issued for.
	seq     int
	sending bool

	// Chat input
	input        string
	focusedPanel PanelFocus

	// Export
	exporting   bool
	downloadURL string

	// Errors and status
	errorMessage   string
	errorTransient bool
	statusText     string

	// UI
	width  int
	height int
}

// New creates a Model for an opened session.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tick := opts.TickInterval
	if tick <= 0 {
		tick = player.TickInterval
	}
	return Model{
		client:       opts.Client,
		store:        opts.Store,
		logger:       logger,
		session:      opts.Session,
		localPath:    opts.LocalPath,
		resolver:     timeline.NewResolver(nil),
		spec:         timeline.RenderAttributes(editstate.DefaultStyle()),
		clock:        player.NewClock(0),
		tickInterval: tick,
		focusedPanel: FocusChat,
		statusText:   "Loading history...",
	}
}

// Init fetches the edit history and starts the playback tick loop.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		fetchHistoryCmd(m.client, m.session.ID, m.seq),
		tickCmd(m.tickInterval),
		recordOpenedCmd(m.store, m.session, m.client.BaseURL()),
		loadCachedHistoryCmd(m.store, m.session.ID, m.client.BaseURL()),
	}
	if m.localPath != "" {
		cmds = append(cmds, probeCmd(m.localPath))
	}
	return tea.Batch(cmds...)
}

// fetchHistoryCmd fetches the session's edit history.
func fetchHistoryCmd(client *api.Client, sessionID, seq int) tea.Cmd {
	return func() tea.Msg {
		history, err := client.History(context.Background(), sessionID)
		if err != nil {
			return HistoryErrorMsg{Seq: seq, SessionID: sessionID, Err: err}
		}
		return HistoryLoadedMsg{Seq: seq, SessionID: sessionID, History: history}
	}
}

// sendMessageCmd submits one chat turn.
func sendMessageCmd(client *api.Client, sessionID, seq int, message string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.SendMessage(context.Background(), sessionID, message)
		if err != nil {
			return TurnFailedMsg{Seq: seq, SessionID: sessionID, Err: err}
		}
		return TurnResolvedMsg{Seq: seq, SessionID: sessionID, Message: message, Response: resp}
	}
}

// exportCmd asks the server to burn in the current subtitles.
func exportCmd(client *api.Client, sessionID, seq int) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Export(context.Background(), sessionID)
		if err != nil {
			return ExportFailedMsg{Seq: seq, SessionID: sessionID, Err: err}
		}
		return ExportStartedMsg{Seq: seq, SessionID: sessionID, Response: resp}
	}
}

// probeCmd reads the local file's duration with ffprobe.
func probeCmd(path string) tea.Cmd {
	return func() tea.Msg {
		info, err := video.Probe(path)
		if err != nil {
			return ProbeDoneMsg{Err: err}
		}
		return ProbeDoneMsg{Duration: info.Duration}
	}
}

// tickCmd schedules the next playback tick.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// recordOpenedCmd remembers the session in the local store.
func recordOpenedCmd(s *store.Store, sess api.Session, serverURL string) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		// Best effort; the store is advisory.
		_ = s.RecordOpened(sess.ID, serverURL, sess.VideoFilename, time.Now())
		return nil
	}
}

// loadCachedHistoryCmd reads the local history cache so a transcript shows
// while the fresh fetch is in flight.
func loadCachedHistoryCmd(s *store.Store, sessionID int, serverURL string) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		edits, _, err := s.CachedHistory(sessionID, serverURL)
		if err != nil || len(edits) == 0 {
			return nil
		}
		return CachedHistoryMsg{SessionID: sessionID, Edits: edits}
	}
}

// cacheHistoryCmd stores fetched history in the local cache.
func cacheHistoryCmd(s *store.Store, serverURL string, history api.HistoryResponse) tea.Cmd {
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		_ = s.CacheHistory(history.SessionID, serverURL, history.Edits, time.Now())
		return nil
	}
}

// clearTransientErrorCmd fires after a delay to clear transient errors.
func clearTransientErrorCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return ClearTransientErrorMsg{}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		m.clock.Advance(msg.Time)
		m.syncOverlay()
		return m, tickCmd(m.tickInterval)

	case HistoryLoadedMsg:
		if m.stale(msg.SessionID, msg.Seq) {
			return m, nil
		}
		m.state = editstate.Reconstruct(msg.History.Edits)
		m.loaded = true
		m.installSnapshot()
		m.statusText = "Ready"
		m.logger.Info("history loaded",
			zap.Int("session", msg.SessionID),
			zap.Int("edits", msg.History.TotalEdits),
			zap.Int("dropped", m.state.Dropped))
		return m, cacheHistoryCmd(m.store, m.client.BaseURL(), msg.History)

	case CachedHistoryMsg:
		// Stale context only: ignored once the fresh history has landed or a
		// turn is already in flight.
		if msg.SessionID != m.session.ID || m.loaded || m.sending {
			return m, nil
		}
		m.state = editstate.Reconstruct(msg.Edits)
		m.installSnapshot()
		m.statusText = "Loading history (showing cached)..."
		return m, nil

	case HistoryErrorMsg:
		if m.stale(msg.SessionID, msg.Seq) {
			return m, nil
		}
		// Recoverable: no transcript or snapshot mutation, retry offered.
		m.errorMessage = "Failed to load history: " + msg.Err.Error()
		m.statusText = "History unavailable (r to retry)"
		m.logger.Warn("history fetch failed", zap.Error(msg.Err))
		return m, nil

	case TurnResolvedMsg:
		if m.stale(msg.SessionID, msg.Seq) {
			m.logger.Warn("discarding stale turn response", zap.Int("seq", msg.Seq))
			return m, nil
		}
		m.sending = false
		snap := editstate.Snapshot{
			Subtitles: msg.Response.Subtitles,
			Style:     msg.Response.Style,
		}
		m.state = editstate.ResolveTurn(m.state, msg.Response.Response, snap, time.Now())
		m.installSnapshot()
		m.statusText = "Ready"
		return m, nil

	case TurnFailedMsg:
		if m.stale(msg.SessionID, msg.Seq) {
			return m, nil
		}
		m.sending = false
		// The provisional user message stays; the snapshot is untouched.
		m.state = editstate.FailTurn(m.state, msg.Err.Error())
		m.errorMessage = msg.Err.Error()
		m.errorTransient = true
		m.statusText = "Ready"
		return m, clearTransientErrorCmd()

	case ProbeDoneMsg:
		if msg.Err != nil {
			// Not fatal; playback falls back to server metadata.
			m.logger.Debug("probe failed", zap.Error(msg.Err))
			return m, nil
		}
		m.clock.SetDuration(msg.Duration)
		return m, nil

	case ExportStartedMsg:
		if m.stale(msg.SessionID, msg.Seq) {
			return m, nil
		}
		m.exporting = false
		m.downloadURL = m.client.VideoURL(msg.Response.DownloadURL)
		m.statusText = "Export ready"
		return m, nil

	case ExportFailedMsg:
		if m.stale(msg.SessionID, msg.Seq) {
			return m, nil
		}
		m.exporting = false
		m.errorMessage = "Export failed: " + msg.Err.Error()
		m.errorTransient = true
		return m, clearTransientErrorCmd()

	case ClearTransientErrorMsg:
		if m.errorTransient {
			m.errorMessage = ""
			m.errorTransient = false
		}
		return m, nil
	}

	return m, nil
}

// stale reports whether a response belongs to a different session or an
// older request than the one currently awaited.
func (m Model) stale(sessionID, seq int) bool {
	return sessionID != m.session.ID || seq != m.seq
}

// installSnapshot points the resolver and render spec at the current
// snapshot and re-evaluates the overlay at the current playback time.
func (m *Model) installSnapshot() {
	if m.state.Current != nil {
		m.resolver.SetSubtitles(m.state.Current.Subtitles)
		m.spec = timeline.RenderAttributes(m.state.Current.Style)
	} else {
		m.resolver.SetSubtitles(nil)
		m.spec = timeline.RenderAttributes(editstate.DefaultStyle())
	}
	m.syncOverlay()
}

// syncOverlay resolves the active segment for the current playback time.
func (m *Model) syncOverlay() {
	seg, ok := m.resolver.Resolve(m.clock.Position())
	if !ok {
		m.activeText = ""
		return
	}
	m.activeText = seg.Text
}

// submit sends the chat input as a new turn.
func (m Model) submit() (tea.Model, tea.Cmd) {
	message := m.input
	if message == "" || m.sending || m.exporting {
		return m, nil
	}

	// One outstanding submission at a time keeps the append-after-append
	// ordering well-defined.
	m.seq++
	m.sending = true
	m.input = ""
	m.state = editstate.AppendPending(m.state, message, time.Now())
	m.statusText = "Thinking..."
	return m, sendMessageCmd(m.client, m.session.ID, m.seq, message)
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == KeyCtrlC {
		return m, tea.Quit
	}

	if m.focusedPanel == FocusChat {
		return m.handleChatKey(msg)
	}
	return m.handlePlayerKey(key)
}

// handleChatKey edits and submits the chat input.
func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyEnter:
		return m.submit()

	case KeyEsc, KeyTab:
		m.focusedPanel = FocusPlayer
		return m, nil

	case KeyBackspace:
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil

	default:
		if msg.Type == tea.KeyRunes {
			m.input += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			m.input += " "
		}
		return m, nil
	}
}

// handlePlayerKey controls playback and session actions.
func (m Model) handlePlayerKey(key string) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch key {
	case KeyQuit:
		return m, tea.Quit

	case KeyTab, KeyChatFocus:
		m.focusedPanel = FocusChat
		return m, nil

	case KeySpace:
		m.clock.Toggle(now)
		m.syncOverlay()
		return m, nil

	case KeyLeft, KeySeekBack:
		m.clock.SeekBy(-5, now)
		m.syncOverlay()
		return m, nil

	case KeyRight, KeySeekFwd:
		m.clock.SeekBy(5, now)
		m.syncOverlay()
		return m, nil

	case KeyExport:
		if m.exporting || m.sending || m.state.Current == nil {
			return m, nil
		}
		m.seq++
		m.exporting = true
		m.statusText = "Exporting..."
		return m, exportCmd(m.client, m.session.ID, m.seq)

	case KeyRetry:
		if m.loaded {
			return m, nil
		}
		m.seq++
		m.errorMessage = ""
		m.statusText = "Loading history..."
		return m, fetchHistoryCmd(m.client, m.session.ID, m.seq)
	}

	// Digit keys seek to a fraction of the video, like a timeline click.
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		m.clock.SeekFraction(float64(key[0]-'0')/10, now)
		m.syncOverlay()
		return m, nil
	}

	return m, nil
}
