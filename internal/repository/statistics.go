package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/othello-backend/internal/entity"
	"github.com/rocketscienceinc/othello-backend/internal/statistics"
)

var ErrStatisticsNotFound = errors.New("statistics not found")

const (
	fieldWinsA = "wins_a"
	fieldWinsB = "wins_b"
	fieldTies  = "ties"
)

// StatisticsRepository keeps matchup counters in Redis hashes, one hash per matchup.
type StatisticsRepository interface {
	Record(ctx context.Context, key statistics.MatchupKey, outcome entity.Outcome) error
	GetByKey(ctx context.Context, key statistics.MatchupKey) (statistics.Entry, error)
	DeleteByKey(ctx context.Context, key statistics.MatchupKey) error
}

type dbStatistics struct {
	client *redis.Client
}

type dbEntry struct {
	WinsA int `redis:"wins_a"`
	WinsB int `redis:"wins_b"`
	Ties  int `redis:"ties"`
}

func NewStatisticsRepository(client *redis.Client) StatisticsRepository {
	return &dbStatistics{
		client: client,
	}
}

func (that *dbStatistics) Record(ctx context.Context, key statistics.MatchupKey, outcome entity.Outcome) error {
	field, ok := outcomeField(outcome)
	if !ok {
		return nil
	}

	if err := that.client.HIncrBy(ctx, statisticsKey(key), field, 1).Err(); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *dbStatistics) GetByKey(ctx context.Context, key statistics.MatchupKey) (statistics.Entry, error) {
	response := that.client.HGetAll(ctx, statisticsKey(key))

	values, err := response.Result()
	if err != nil {
		return statistics.Entry{}, fmt.Errorf("failed to get statistics by key: %w", err)
	}

	if len(values) == 0 {
		return statistics.Entry{}, ErrStatisticsNotFound
	}

	var entry dbEntry
	if err = response.Scan(&entry); err != nil {
		return statistics.Entry{}, fmt.Errorf("failed to scan statistics: %w", err)
	}

	return statistics.Entry{WinsA: entry.WinsA, WinsB: entry.WinsB, Ties: entry.Ties}, nil
}

func (that *dbStatistics) DeleteByKey(ctx context.Context, key statistics.MatchupKey) error {
	deleted, err := that.client.Del(ctx, statisticsKey(key)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete statistics by key: %w", err)
	}

	if deleted == 0 {
		return ErrStatisticsNotFound
	}

	return nil
}

func statisticsKey(key statistics.MatchupKey) string {
	return "stats:" + key.Black + "|" + key.White
}

func outcomeField(outcome entity.Outcome) (string, bool) {
	switch {
	case outcome.Status == entity.StatusTie:
		return fieldTies, true
	case outcome.Status == entity.StatusWin && outcome.Winner == entity.PlayerBlack:
		return fieldWinsA, true
	case outcome.Status == entity.StatusWin && outcome.Winner == entity.PlayerWhite:
		return fieldWinsB, true
	default:
		return "", false
	}
}
