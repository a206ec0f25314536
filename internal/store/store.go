// Package store persists application state in an external key-value store.
//
// The whole state is three independent JSON-encoded records: the user list,
// the appointment list, and the current session. Collections are read in
// full and written back in full on every mutation. There is no locking,
// versioning, or compare-and-swap: concurrent writers produce a
// last-write-wins outcome. That is the documented persistence contract, not
// an accident, and the booking tests reproduce it.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"docspot-booking-api/internal/model"
)

const (
	usersKey        = "docspot:users"
	appointmentsKey = "docspot:appointments"
	sessionKey      = "docspot:session"
)

type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Users returns the full user collection. A missing key is an empty
// collection, not an error.
func (s *Store) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.load(ctx, usersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) SaveUsers(ctx context.Context, users []model.User) error {
	return s.save(ctx, usersKey, users)
}

// Appointments returns the full appointment collection.
func (s *Store) Appointments(ctx context.Context) ([]model.Appointment, error) {
	var apts []model.Appointment
	if err := s.load(ctx, appointmentsKey, &apts); err != nil {
		return nil, err
	}
	return apts, nil
}

func (s *Store) SaveAppointments(ctx context.Context, apts []model.Appointment) error {
	return s.save(ctx, appointmentsKey, apts)
}

// Session returns the current user, or (nil, nil) when nobody is logged in.
// Only one session exists at a time.
func (s *Store) Session(ctx context.Context) (*model.User, error) {
	data, err := s.rdb.Get(ctx, sessionKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", sessionKey, err)
	}
	var u model.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("store: unmarshal %s: %w", sessionKey, err)
	}
	return &u, nil
}

func (s *Store) SetSession(ctx context.Context, u model.User) error {
	return s.save(ctx, sessionKey, u)
}

func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.rdb.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("store: del %s: %w", sessionKey, err)
	}
	return nil
}

func (s *Store) load(ctx context.Context, key string, dst any) error {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("store: unmarshal %s: %w", key, err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	if err := s.rdb.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("store: set %s: %w", key, err)
	}
	return nil
}
