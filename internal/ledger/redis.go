package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const (
	historyKeep = 100
	scoresKeep  = 100
	streamMax   = 100000
)

// debitScript seeds an unseen user, then removes one credit if any are left.
// Returns the new balance or -1 when the balance is zero.
var debitScript = redis.NewScript(`
local v = redis.call('HGET', KEYS[1], ARGV[1])
if not v then v = tonumber(ARGV[2]) else v = tonumber(v) end
if v <= 0 then
  redis.call('HSET', KEYS[1], ARGV[1], v)
  return -1
end
redis.call('HSET', KEYS[1], ARGV[1], v - 1)
return v - 1
`)

// Redis is a Store backed by a Redis server. Credits live in a hash,
// trophy totals in a sorted set (the leaderboard), finished sessions in a
// stream plus a capped per-user list, and top scores in a sorted set per game.
type Redis struct {
	cli      *redis.Client
	prefix   string
	starting int
}

var _ Store = (*Redis)(nil)

// NewRedis connects to url (redis://host:port/db) and checks the connection.
func NewRedis(ctx context.Context, url, prefix string, starting int) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("ledger: redis parse url: %w", err)
	}
	cli := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := cli.Ping(pingCtx).Err(); err != nil {
		cli.Close()
		return nil, fmt.Errorf("ledger: redis ping: %w", err)
	}
	if prefix == "" {
		prefix = "arcade:"
	}
	return &Redis{cli: cli, prefix: prefix, starting: starting}, nil
}

func (r *Redis) key(parts ...string) string {
	k := r.prefix
	for i, p := range parts {
		if i > 0 {
			k += ":"
		}
		k += p
	}
	return k
}

func (r *Redis) seed(ctx context.Context, userID string) error {
	return r.cli.HSetNX(ctx, r.key("credits"), userID, r.starting).Err()
}

func (r *Redis) Credits(ctx context.Context, userID string) (int, error) {
	if err := r.seed(ctx, userID); err != nil {
		return 0, fmt.Errorf("ledger: seed credits: %w", err)
	}
	n, err := r.cli.HGet(ctx, r.key("credits"), userID).Int()
	if err != nil {
		return 0, fmt.Errorf("ledger: read credits: %w", err)
	}
	return n, nil
}

func (r *Redis) HasCredits(ctx context.Context, userID string) (bool, error) {
	n, err := r.Credits(ctx, userID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Redis) DebitCredit(ctx context.Context, userID string) error {
	left, err := debitScript.Run(ctx, r.cli, []string{r.key("credits")}, userID, r.starting).Int()
	if err != nil {
		return fmt.Errorf("ledger: debit: %w", err)
	}
	if left < 0 {
		return ErrInsufficientCredits
	}
	return nil
}

func (r *Redis) GrantCredits(ctx context.Context, userID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("ledger: grant: amount must be positive, got %d", amount)
	}
	if err := r.seed(ctx, userID); err != nil {
		return 0, fmt.Errorf("ledger: seed credits: %w", err)
	}
	n, err := r.cli.HIncrBy(ctx, r.key("credits"), userID, int64(amount)).Result()
	if err != nil {
		return 0, fmt.Errorf("ledger: grant: %w", err)
	}
	return int(n), nil
}

func (r *Redis) ReportTrophies(ctx context.Context, userID string, amount int, sourceID string) error {
	if amount <= 0 {
		return fmt.Errorf("ledger: trophies from %s: amount must be positive, got %d", sourceID, amount)
	}
	_, err := r.cli.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, r.key("trophies"), float64(amount), userID)
		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: r.key("trophy-events"),
			MaxLen: streamMax,
			Approx: true,
			Values: map[string]any{"user": userID, "amount": amount, "source": sourceID},
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("ledger: report trophies: %w", err)
	}
	return nil
}

func (r *Redis) ReportSessionResult(ctx context.Context, res SessionResult) error {
	if res.UserID == "" || res.GameID == "" {
		return errors.New("ledger: session result needs a user and a game")
	}
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("ledger: encode result: %w", err)
	}
	entry, err := json.Marshal(ScoreEntry{UserID: res.UserID, GameID: res.GameID, Score: res.Score, EndedAt: res.EndedAt})
	if err != nil {
		return fmt.Errorf("ledger: encode score: %w", err)
	}

	history := r.key("history", res.UserID)
	scores := r.key("scores", res.GameID)
	_, err = r.cli.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.XAdd(ctx, &redis.XAddArgs{
			Stream: r.key("results"),
			MaxLen: streamMax,
			Approx: true,
			Values: map[string]any{"data": string(data)},
		})
		pipe.LPush(ctx, history, data)
		pipe.LTrim(ctx, history, 0, historyKeep-1)
		pipe.ZAdd(ctx, scores, redis.Z{Score: float64(res.Score), Member: string(entry)})
		pipe.ZRemRangeByRank(ctx, scores, 0, -scoresKeep-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("ledger: report result: %w", err)
	}
	return nil
}

func (r *Redis) Trophies(ctx context.Context, userID string) (int, error) {
	n, err := r.cli.ZScore(ctx, r.key("trophies"), userID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("ledger: trophies: %w", err)
	}
	return int(n), nil
}

func (r *Redis) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	zs, err := r.cli.ZRevRangeWithScores(ctx, r.key("trophies"), 0, stop(limit)).Result()
	if err != nil {
		return nil, fmt.Errorf("ledger: leaderboard: %w", err)
	}
	out := make([]LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		id, _ := z.Member.(string)
		out = append(out, LeaderboardEntry{Rank: i + 1, UserID: id, Trophies: int(z.Score)})
	}
	return out, nil
}

func (r *Redis) History(ctx context.Context, userID string, limit int) ([]SessionResult, error) {
	raw, err := r.cli.LRange(ctx, r.key("history", userID), 0, stop(limit)).Result()
	if err != nil {
		return nil, fmt.Errorf("ledger: history: %w", err)
	}
	out := make([]SessionResult, 0, len(raw))
	for _, s := range raw {
		var res SessionResult
		if err := json.Unmarshal([]byte(s), &res); err != nil {
			return nil, fmt.Errorf("ledger: decode history: %w", err)
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *Redis) TopScores(ctx context.Context, gameID string, limit int) ([]ScoreEntry, error) {
	raw, err := r.cli.ZRevRange(ctx, r.key("scores", gameID), 0, stop(limit)).Result()
	if err != nil {
		return nil, fmt.Errorf("ledger: top scores: %w", err)
	}
	out := make([]ScoreEntry, 0, len(raw))
	for _, s := range raw {
		var e ScoreEntry
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			return nil, fmt.Errorf("ledger: decode score: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *Redis) Close() error { return r.cli.Close() }

// stop converts a limit into an inclusive range end; zero means everything.
func stop(limit int) int64 {
	if limit <= 0 {
		return -1
	}
	return int64(limit - 1)
}
