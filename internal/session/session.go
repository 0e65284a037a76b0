// Package session owns the lifecycle of one play-through: credit debit,
// score, elapsed time, trophies, pause, faults and result reporting.
// It drives exactly one registry.Game at a time through two timers, the
// game's simulation clock and a one-second elapsed timer.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-hub/internal/catalog"
	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/ledger"
	"github.com/vovakirdan/arcade-hub/internal/logging"
	"github.com/vovakirdan/arcade-hub/internal/registry"
)

// ErrNoGame is returned by Restart when no game was ever started.
var ErrNoGame = errors.New("session: no game selected")

// Status is the session lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Timer is a cancellable repeating timer. Arm replaces any previous arming;
// after Disarm no further ticks may be delivered.
type Timer interface {
	Arm(interval time.Duration)
	Disarm()
}

// Second is the interval of the elapsed-time timer.
const Second = time.Second

// Options configure a Controller.
type Options struct {
	UserID   string
	Catalog  *catalog.Catalog
	Settings config.SessionConfig
	Ledger   ledger.CreditLedger
	Reporter ledger.Reporter

	Clock   Timer // Simulation ticks at the game's interval
	Seconds Timer // Elapsed time, once per second

	ScreenW, ScreenH int
	Seed             int64 // 0 picks a time-based seed per session

	Logger *log.Logger

	// Create builds a game by id. Defaults to registry.Create.
	Create func(id string) (registry.Game, error)
	// NewID returns session ids. Defaults to uuid.NewString.
	NewID func() string
}

// View is a read-only snapshot for the render surface.
type View struct {
	Status    Status
	Paused    bool
	Game      catalog.Definition
	SessionID string
	Score     int
	Elapsed   time.Duration
	Credits   int // Balance right after this session's debit
	Trophies  bool
	Notice    string
	Result    ledger.Result
}

// Controller is the single owner of the active game and its timers.
// It is not safe for concurrent use; the platform calls it from one loop.
type Controller struct {
	opts   Options
	logger *log.Logger

	def       catalog.Definition
	game      registry.Game
	status    Status
	paused    bool
	sessionID string

	score    int
	elapsed  time.Duration
	credits  int
	trophies bool
	notice   string
	noticeAt time.Duration
	faults   int
	result   ledger.Result
	plays    int64
}

// New creates an idle controller.
func New(opts Options) *Controller {
	if opts.Create == nil {
		opts.Create = registry.Create
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Settings.TrophyAfter <= 0 {
		opts.Settings = config.DefaultArcadeConfig().Session
	}
	if opts.Settings.MaxFaults <= 0 {
		opts.Settings.MaxFaults = 3
	}
	if opts.Settings.WinTrophyDivisor <= 0 {
		opts.Settings.WinTrophyDivisor = 5
	}
	if opts.Clock == nil {
		opts.Clock = nopTimer{}
	}
	if opts.Seconds == nil {
		opts.Seconds = nopTimer{}
	}
	if opts.ScreenW <= 0 || opts.ScreenH <= 0 {
		d := core.DefaultConfig()
		opts.ScreenW, opts.ScreenH = d.ScreenW, d.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Controller{
		opts:   opts,
		logger: logger.WithPrefix("session").With("user", opts.UserID),
	}
}

// Start debits a credit and begins a fresh session of gameID. It may be
// called from any status; a running game is abandoned without a report.
func (c *Controller) Start(ctx context.Context, gameID string) error {
	def, err := c.opts.Catalog.Get(gameID)
	if err != nil {
		return fmt.Errorf("session: start: %w", err)
	}
	game, err := c.opts.Create(gameID)
	if err != nil {
		return fmt.Errorf("session: start: %w", err)
	}

	ok, err := c.opts.Ledger.HasCredits(ctx, c.opts.UserID)
	if err != nil {
		return fmt.Errorf("session: check credits: %w", err)
	}
	if !ok {
		return ledger.ErrInsufficientCredits
	}
	if err := c.opts.Ledger.DebitCredit(ctx, c.opts.UserID); err != nil {
		if errors.Is(err, ledger.ErrInsufficientCredits) {
			return err
		}
		return fmt.Errorf("session: debit: %w", err)
	}
	credits, err := c.opts.Ledger.Credits(ctx, c.opts.UserID)
	if err != nil {
		c.logger.Warn("credit balance unavailable", "err", err)
	}

	c.stopTimers()
	c.discard()

	c.def = def
	c.game = game
	c.sessionID = c.opts.NewID()
	c.credits = credits
	c.plays++

	c.game.Reset(core.RuntimeConfig{
		ScreenW: c.opts.ScreenW,
		ScreenH: c.opts.ScreenH,
		Seed:    c.seed(),
		Tick:    def.Tick,
	})
	c.score = c.game.State().Score
	c.status = StatusRunning
	c.startTimers()

	c.logger.Info("session started", "game", def.ID, "session", c.sessionID, "credits", credits)
	return nil
}

// Restart starts the current game again, consuming another credit.
func (c *Controller) Restart(ctx context.Context) error {
	if c.def.ID == "" {
		return ErrNoGame
	}
	return c.Start(ctx, c.def.ID)
}

func (c *Controller) seed() int64 {
	if c.opts.Seed != 0 {
		return c.opts.Seed + c.plays - 1
	}
	return time.Now().UnixNano()
}

// Advance runs one simulation tick. It is a no-op unless the session is
// running and not paused.
func (c *Controller) Advance(ctx context.Context) core.StepResult {
	if !c.live() {
		return core.StepResult{}
	}
	res, err := c.safeAdvance()
	if err != nil {
		c.fault(ctx, "advance", err)
		return core.StepResult{State: core.GameState{Score: c.score}}
	}
	c.faults = 0
	c.score = res.State.Score
	if res.Terminal {
		c.finish(ctx, outcome(res.State))
	}
	return res
}

// Command forwards a decoded command to the game. Commands outside a
// running, unpaused session are ignored.
func (c *Controller) Command(ctx context.Context, cmd core.Command) {
	if !c.live() || cmd == core.CmdNone {
		return
	}
	if err := c.safeApply(cmd); err != nil {
		c.fault(ctx, "apply", err)
		return
	}
	c.faults = 0
	// Some commands resolve immediately (a maze step into a ghost).
	st := c.game.State()
	c.score = st.Score
	if st.GameOver {
		c.finish(ctx, outcome(st))
	}
}

// Pointer forwards a pointer position to pointer-driven games.
func (c *Controller) Pointer(x, y int) {
	if !c.live() {
		return
	}
	if p, ok := c.game.(registry.PointerTarget); ok {
		p.SetPointer(x, y)
	}
}

// Tick advances elapsed time by one second and evaluates the trophy threshold.
func (c *Controller) Tick(ctx context.Context) {
	if !c.live() {
		return
	}
	c.elapsed += Second
	if c.notice != "" && c.elapsed-c.noticeAt >= c.opts.Settings.NoticeFor {
		c.notice = ""
	}

	if c.trophies || c.elapsed < c.opts.Settings.TrophyAfter {
		return
	}
	c.trophies = true
	c.notice = fmt.Sprintf("+%d trophies for %s of play", c.opts.Settings.TrophyAmount, c.opts.Settings.TrophyAfter)
	c.noticeAt = c.elapsed
	c.report(ctx, c.opts.Settings.TrophyAmount, sourceID(c.def.ID, "time"))

	if c.opts.Settings.IsTimeCapped(c.def.ID) {
		c.finish(ctx, ledger.ResultTimeout)
	}
}

// TogglePause pauses or resumes a running session. Pausing disarms both timers.
func (c *Controller) TogglePause() {
	if c.status != StatusRunning {
		return
	}
	c.paused = !c.paused
	if c.paused {
		c.stopTimers()
		if r, ok := c.game.(registry.Releaser); ok {
			r.ReleaseAll()
		}
		return
	}
	c.startTimers()
}

// ExitToMenu discards the game and returns to Idle.
func (c *Controller) ExitToMenu() {
	c.stopTimers()
	c.discard()
	c.def = catalog.Definition{}
	c.status = StatusIdle
}

// Render projects the active game into dst.
func (c *Controller) Render(dst *core.Screen) {
	if c.game != nil {
		c.game.Render(dst)
	}
}

// Resize changes the screen size used by the next Start.
func (c *Controller) Resize(w, h int) {
	if w > 0 && h > 0 {
		c.opts.ScreenW, c.opts.ScreenH = w, h
	}
}

// Status returns the lifecycle state.
func (c *Controller) Status() Status { return c.status }

// Paused reports whether a running session is paused.
func (c *Controller) Paused() bool { return c.paused }

// Game returns the active definition; zero when idle.
func (c *Controller) Game() catalog.Definition { return c.def }

// View returns a snapshot for display.
func (c *Controller) View() View {
	return View{
		Status:    c.status,
		Paused:    c.paused,
		Game:      c.def,
		SessionID: c.sessionID,
		Score:     c.score,
		Elapsed:   c.elapsed,
		Credits:   c.credits,
		Trophies:  c.trophies,
		Notice:    c.notice,
		Result:    c.result,
	}
}

// Credits reads the live balance from the ledger.
func (c *Controller) Credits(ctx context.Context) (int, error) {
	return c.opts.Ledger.Credits(ctx, c.opts.UserID)
}

func (c *Controller) live() bool {
	return c.status == StatusRunning && !c.paused && c.game != nil
}

func (c *Controller) startTimers() {
	c.opts.Clock.Arm(c.def.Tick)
	c.opts.Seconds.Arm(Second)
}

func (c *Controller) stopTimers() {
	c.opts.Clock.Disarm()
	c.opts.Seconds.Disarm()
}

func (c *Controller) discard() {
	c.game = nil
	c.sessionID = ""
	c.paused = false
	c.score = 0
	c.elapsed = 0
	c.credits = 0
	c.trophies = false
	c.notice = ""
	c.noticeAt = 0
	c.faults = 0
	c.result = ""
}

// finish moves to Over and reports the outcome. Score and elapsed stay visible.
func (c *Controller) finish(ctx context.Context, result ledger.Result) {
	c.stopTimers()
	c.status = StatusOver
	c.paused = false
	c.result = result

	if result == ledger.ResultWin {
		amount := c.def.Reward / c.opts.Settings.WinTrophyDivisor
		if amount < 1 {
			amount = 1
		}
		c.report(ctx, amount, sourceID(c.def.ID, "win"))
	}

	res := ledger.SessionResult{
		SessionID: c.sessionID,
		UserID:    c.opts.UserID,
		GameID:    c.def.ID,
		Score:     c.score,
		Result:    result,
		Elapsed:   c.elapsed,
		EndedAt:   time.Now(),
	}
	if c.opts.Reporter != nil {
		if err := c.opts.Reporter.ReportSessionResult(ctx, res); err != nil {
			c.logger.Error("session result not reported", "game", c.def.ID, "session", c.sessionID, "err", err)
		}
	}
	c.logger.Info("session over", "game", c.def.ID, "session", c.sessionID,
		"result", result, "score", c.score, "elapsed", c.elapsed)
}

func (c *Controller) report(ctx context.Context, amount int, source string) {
	if c.opts.Reporter == nil {
		return
	}
	if err := c.opts.Reporter.ReportTrophies(ctx, c.opts.UserID, amount, source); err != nil {
		c.logger.Error("trophies not reported", "source", source, "amount", amount, "err", err)
	}
}

func (c *Controller) fault(ctx context.Context, op string, err error) {
	c.faults++
	c.logger.Error("simulation fault", "game", c.def.ID, "op", op, "faults", c.faults, "err", err)
	if c.faults >= c.opts.Settings.MaxFaults {
		c.finish(ctx, ledger.ResultFault)
	}
}

func outcome(st core.GameState) ledger.Result {
	if st.Won {
		return ledger.ResultWin
	}
	return ledger.ResultLose
}

func sourceID(gameID, kind string) string {
	return "game:" + gameID + ":" + kind
}

type nopTimer struct{}

func (nopTimer) Arm(time.Duration) {}
func (nopTimer) Disarm()           {}
