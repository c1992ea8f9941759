package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-engine/internal/types"
)

// Profile is a stored row of the profiles table
type Profile struct {
	UserID    uuid.UUID
	Snapshot  *types.ProfileSnapshot
	Style     *types.StyleConfig
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SaveSnapshot stores the snapshot of a user, keeping any stored style
func (db *DB) SaveSnapshot(ctx context.Context, userID uuid.UUID, snapshot *types.ProfileSnapshot) error {
	jsonBytes, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, snapshot)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET snapshot = $2, updated_at = NOW()`,
		userID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// GetSnapshot retrieves the snapshot of a user. Returns nil, nil when none is stored.
func (db *DB) GetSnapshot(ctx context.Context, userID uuid.UUID) (*types.ProfileSnapshot, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT snapshot FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	if content == nil {
		return nil, nil
	}

	var snapshot types.ProfileSnapshot
	if err := json.Unmarshal(content, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}

// SaveStyle stores the style config of a user, keeping any stored snapshot
func (db *DB) SaveStyle(ctx context.Context, userID uuid.UUID, style *types.StyleConfig) error {
	jsonBytes, err := json.Marshal(style)
	if err != nil {
		return fmt.Errorf("failed to marshal style: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, style)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET style = $2, updated_at = NOW()`,
		userID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save style: %w", err)
	}
	return nil
}

// GetStyle retrieves the style config of a user. Returns nil, nil when none is stored.
func (db *DB) GetStyle(ctx context.Context, userID uuid.UUID) (*types.StyleConfig, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT style FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get style: %w", err)
	}
	if content == nil {
		return nil, nil
	}

	var style types.StyleConfig
	if err := json.Unmarshal(content, &style); err != nil {
		return nil, fmt.Errorf("failed to unmarshal style: %w", err)
	}
	return &style, nil
}

// GetProfile retrieves the full row of a user
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	var (
		p               Profile
		snapshot, style []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, snapshot, style, created_at, updated_at FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &snapshot, &style, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if snapshot != nil {
		p.Snapshot = &types.ProfileSnapshot{}
		if err := json.Unmarshal(snapshot, p.Snapshot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}
	}
	if style != nil {
		p.Style = &types.StyleConfig{}
		if err := json.Unmarshal(style, p.Style); err != nil {
			return nil, fmt.Errorf("failed to unmarshal style: %w", err)
		}
	}
	return &p, nil
}

// DeleteProfile removes everything stored for a user
func (db *DB) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
