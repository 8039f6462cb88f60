package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"time"

	"PetStoreAPI/internal/model"

	"github.com/redis/go-redis/v9"
)

// Snapshot is the per-user checkout state that survives between
// requests: the voucher the user picked and the address built so far.
// The web client kept this in local storage; here it lives in redis.
type Snapshot struct {
	SelectedVoucherID *int64                 `json:"selectedvoucherid,omitempty"`
	Address           model.AddressSelection `json:"address"`
}

const snapshotTTL = 24 * time.Hour

type Store struct {
	rdb *redis.Client
}

func NewStore() *Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return &Store{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func key(userID int64) string {
	return "checkout:snapshot:" + strconv.FormatInt(userID, 10)
}

// Load returns the stored snapshot, or an empty one when nothing is saved.
func (s *Store) Load(ctx context.Context, userID int64) (Snapshot, error) {
	raw, err := s.rdb.Get(ctx, key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *Store) Save(ctx context.Context, userID int64, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(userID), raw, snapshotTTL).Err()
}

// Clear drops the snapshot, typically after a successful order.
func (s *Store) Clear(ctx context.Context, userID int64) error {
	return s.rdb.Del(ctx, key(userID)).Err()
}
