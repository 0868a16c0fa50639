package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/othello-backend/internal/apperror"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/othello"
	"github.com/rocketscienceinc/othello-backend/internal/statistics"
	"github.com/rocketscienceinc/othello-backend/internal/worker"
)

const (
	winPause     = time.Second
	tickInterval = 10 * time.Millisecond
)

var ErrInvalidPlayer = errors.New("invalid player")

type moveRequester interface {
	Submit(ctx context.Context, req worker.Request) error
	Responses() <-chan worker.Response
}

type statisticsSink interface {
	Record(ctx context.Context, key statistics.MatchupKey, outcome entity.Outcome) error
}

type Options struct {
	// Pacing is the minimum delay between a move and the next AI move request.
	Pacing time.Duration
	// PauseAtWin delays an automatic restart by one second.
	PauseAtWin     bool
	AutoRestart    bool
	TakeStatistics bool
	// MaxGames stops Run after this many finished games; zero means no limit.
	MaxGames int
}

// GameManager owns the authoritative game and drives it: it hands AI turns to the move worker,
// applies the answers, handles human moves, restarts and statistics. It must be used from a
// single goroutine; Run is that goroutine for headless sessions.
type GameManager struct {
	logger    *slog.Logger
	options   Options
	requester moveRequester
	stats     *statistics.Statistics
	sink      statisticsSink
	now       func() time.Time

	game  *entity.Game
	black entity.Seat
	white entity.Seat

	seq               uint64
	pending           bool
	canTakeStatistics bool
	nextMoveAt        time.Time
	scheduledRestart  time.Time
	finishedGames     int
}

// NewGameManager starts the first game right away. sink may be nil.
func NewGameManager(
	logger *slog.Logger,
	options Options,
	black, white entity.Seat,
	requester moveRequester,
	stats *statistics.Statistics,
	sink statisticsSink,
) *GameManager {
	manager := &GameManager{
		logger:    logger.With("component", "game_manager"),
		options:   options,
		requester: requester,
		stats:     stats,
		sink:      sink,
		now:       time.Now,
		black:     black,
		white:     white,
	}

	manager.Restart()

	return manager
}

// Game returns a copy of the current game.
func (that *GameManager) Game() entity.Game {
	return *that.game
}

func (that *GameManager) Statistics() *statistics.Statistics {
	return that.stats
}

func (that *GameManager) FinishedGames() int {
	return that.finishedGames
}

// LegalMoves lists the moves of the side to move, for highlighting.
func (that *GameManager) LegalMoves() []entity.Position {
	if that.game.IsFinished() {
		return nil
	}

	return othello.LegalMoves(that.game.Board, that.game.Turn)
}

func (that *GameManager) MatchupKey() statistics.MatchupKey {
	return statistics.NewMatchupKey(that.black, that.white)
}

// Restart begins a new game. A search still running for the previous game is left to finish;
// its response no longer matches the sequence tag and is dropped.
func (that *GameManager) Restart() {
	that.game = entity.NewGame(uuid.NewString())
	that.seq++
	that.pending = false
	that.canTakeStatistics = true
	that.nextMoveAt = that.now()

	that.logger.Info("Game started", "game", that.game.ID, "black", that.black.Descriptor(), "white", that.white.Descriptor())
}

// SetSeat changes who controls player. After the first move of a game the change disables
// statistics for that game.
func (that *GameManager) SetSeat(player entity.Player, seat entity.Seat) error {
	if seat.AI {
		if err := seat.Strategy.Validate(); err != nil {
			return fmt.Errorf("invalid seat: %w", err)
		}
	}

	switch player {
	case entity.PlayerBlack:
		that.black = seat
	case entity.PlayerWhite:
		that.white = seat
	default:
		return fmt.Errorf("%w: %s", ErrInvalidPlayer, player)
	}

	if !that.game.IsUntouched() {
		that.canTakeStatistics = false
	}

	if that.pending && that.game.Turn == player {
		// the outstanding search was asked for the old seat
		that.seq++
		that.pending = false
	}

	return nil
}

// MakeTurn plays a human move for the side to move.
func (that *GameManager) MakeTurn(ctx context.Context, pos entity.Position) (int, error) {
	if that.game.IsFinished() {
		return 0, apperror.ErrGameFinished
	}

	if that.seatOf(that.game.Turn).AI {
		return 0, apperror.ErrNotYourTurn
	}

	return that.applyMove(ctx, that.game.Turn, pos)
}

// HandleResponse applies the worker's answer if it belongs to the outstanding request.
func (that *GameManager) HandleResponse(ctx context.Context, resp worker.Response) error {
	if !that.pending || resp.Seq != that.seq {
		that.logger.Debug("Dropping stale move response", "seq", resp.Seq, "current", that.seq)
		return nil
	}

	that.pending = false

	if resp.Err != nil {
		return fmt.Errorf("move search failed: %w", resp.Err)
	}

	if _, err := that.applyMove(ctx, that.game.Turn, resp.Move); err != nil {
		return fmt.Errorf("failed to apply AI move: %w", err)
	}

	return nil
}

// Tick requests an AI move when one is due and performs scheduled restarts.
func (that *GameManager) Tick(ctx context.Context) error {
	now := that.now()

	if that.game.IsFinished() {
		if that.options.AutoRestart && !that.reachedMaxGames() && !now.Before(that.scheduledRestart) {
			that.Restart()
		}
		return nil
	}

	seat := that.seatOf(that.game.Turn)
	if !seat.AI || that.pending || now.Before(that.nextMoveAt) {
		return nil
	}

	that.seq++
	req := worker.Request{
		Seq:      that.seq,
		Board:    that.game.Board,
		Player:   that.game.Turn,
		Strategy: seat.Strategy,
	}

	if err := that.requester.Submit(ctx, req); err != nil {
		return fmt.Errorf("failed to request AI move: %w", err)
	}

	that.pending = true

	return nil
}

// Run drives the session until ctx is done or the session is over: MaxGames games played, or
// a game finished without AutoRestart.
func (that *GameManager) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		if that.sessionOver() {
			that.logSummary()
			return nil
		}

		var err error
		select {
		case <-ctx.Done():
			log.Info("Session interrupted", "finished_games", that.finishedGames)
			return nil
		case resp := <-that.requester.Responses():
			err = that.HandleResponse(ctx, resp)
		case <-ticker.C:
			err = that.Tick(ctx)
		}

		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

func (that *GameManager) applyMove(ctx context.Context, player entity.Player, pos entity.Position) (int, error) {
	flipped, err := othello.MakeTurn(that.game, player, pos)
	if err != nil {
		return 0, fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Debug("Move played", "game", that.game.ID, "player", player.String(), "move", pos.String(), "flipped", flipped)

	now := that.now()
	that.nextMoveAt = now.Add(that.options.Pacing)

	if that.game.IsFinished() {
		that.finishGame(ctx, now)
	}

	return flipped, nil
}

func (that *GameManager) finishGame(ctx context.Context, now time.Time) {
	black, white := that.game.Board.Score()
	that.logger.Info("Game finished",
		"game", that.game.ID,
		"outcome", that.game.Outcome.String(),
		"black", black,
		"white", white,
		"moves", that.game.Moves,
	)

	that.takeStatistics(ctx)
	that.finishedGames++

	that.scheduledRestart = now
	if that.options.PauseAtWin {
		that.scheduledRestart = now.Add(winPause)
	}
}

func (that *GameManager) takeStatistics(ctx context.Context) {
	if !that.options.TakeStatistics || !that.canTakeStatistics {
		return
	}
	that.canTakeStatistics = false

	key := that.MatchupKey()
	that.stats.RecordResult(key, that.game.Outcome)

	if that.sink == nil {
		return
	}

	if err := that.sink.Record(ctx, key, that.game.Outcome); err != nil {
		that.logger.Error("failed to store statistics", "matchup", key.String(), "error", err)
	}
}

func (that *GameManager) seatOf(player entity.Player) entity.Seat {
	if player == entity.PlayerWhite {
		return that.white
	}

	return that.black
}

func (that *GameManager) reachedMaxGames() bool {
	return that.options.MaxGames > 0 && that.finishedGames >= that.options.MaxGames
}

func (that *GameManager) sessionOver() bool {
	return that.game.IsFinished() && (!that.options.AutoRestart || that.reachedMaxGames())
}

func (that *GameManager) logSummary() {
	for _, key := range that.stats.Keys() {
		entry := that.stats.EntryFor(key)
		that.logger.Info("Session statistics",
			"matchup", key.String(),
			"wins_a", entry.WinsA,
			"wins_b", entry.WinsB,
			"ties", entry.Ties,
		)
	}
}
