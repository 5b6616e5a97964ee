package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jobsync/jobsync/internal/types"
)

// Postgres is a Store backed by a PostgreSQL connection pool. Analysis and
// interview payloads are stored as JSONB; ordering uses the created_at
// column with the row ID as a tiebreaker.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// schema is applied on every startup; all statements are idempotent. Email
// uniqueness is case-insensitive, enforced by an expression index (a UNIQUE
// table constraint only accepts plain column names).
const schema = `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (lower(email));
		CREATE TABLE IF NOT EXISTS resume_analyses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			content JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS interview_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			content JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE TABLE IF NOT EXISTS progress_entries (
			id BIGSERIAL PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date TEXT NOT NULL,
			resume_score INT NOT NULL,
			interview_score INT NOT NULL,
			overall_score INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
`

// Migrate creates the schema if it does not exist yet.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (p *Postgres) RegisterUser(ctx context.Context, name, email, password string) (*types.User, error) {
	var user types.User
	err := p.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, email, created_at`,
		name, email, password,
	).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, &ErrEmailAlreadyExists{Email: email}
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return &user, nil
}

func (p *Postgres) Authenticate(ctx context.Context, email, password string) (*types.User, error) {
	var user types.User
	var stored string
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, email, password, created_at
		 FROM users WHERE lower(email) = lower($1)`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &stored, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrInvalidCredentials{}
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if stored != password {
		return nil, &ErrInvalidCredentials{}
	}
	return &user, nil
}

func (p *Postgres) GetUser(ctx context.Context, id uuid.UUID) (*types.User, error) {
	var user types.User
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, email, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrUserNotFound{ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (p *Postgres) SaveResumeAnalysis(ctx context.Context, userID uuid.UUID, result types.AnalysisResult) (*StoredAnalysis, error) {
	if userID == uuid.Nil {
		return nil, &ErrNotAuthenticated{}
	}
	content, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	stored := StoredAnalysis{UserID: userID, Result: result}
	err = p.pool.QueryRow(ctx,
		`INSERT INTO resume_analyses (user_id, content)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		userID, content,
	).Scan(&stored.ID, &stored.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return &stored, nil
}

func (p *Postgres) GetLatestResumeAnalysis(ctx context.Context, userID uuid.UUID) (*StoredAnalysis, error) {
	if userID == uuid.Nil {
		return nil, &ErrNotAuthenticated{}
	}
	var stored StoredAnalysis
	var content []byte
	err := p.pool.QueryRow(ctx,
		`SELECT id, user_id, content, created_at
		 FROM resume_analyses WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC LIMIT 1`,
		userID,
	).Scan(&stored.ID, &stored.UserID, &content, &stored.Timestamp)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest analysis: %w", err)
	}
	if err := json.Unmarshal(content, &stored.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &stored, nil
}

func (p *Postgres) SaveInterviewResult(ctx context.Context, userID uuid.UUID, result types.InterviewResult) (*StoredInterview, error) {
	if userID == uuid.Nil {
		return nil, &ErrNotAuthenticated{}
	}
	content, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal interview result: %w", err)
	}

	stored := StoredInterview{UserID: userID, Result: result}
	err = p.pool.QueryRow(ctx,
		`INSERT INTO interview_results (user_id, content)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		userID, content,
	).Scan(&stored.ID, &stored.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to save interview result: %w", err)
	}
	return &stored, nil
}

func (p *Postgres) GetAllInterviewResults(ctx context.Context, userID uuid.UUID) ([]StoredInterview, error) {
	if userID == uuid.Nil {
		return nil, &ErrNotAuthenticated{}
	}
	rows, err := p.pool.Query(ctx,
		`SELECT id, user_id, content, created_at
		 FROM interview_results WHERE user_id = $1
		 ORDER BY created_at ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interview results: %w", err)
	}
	defer rows.Close()

	var results []StoredInterview
	for rows.Next() {
		var stored StoredInterview
		var content []byte
		if err := rows.Scan(&stored.ID, &stored.UserID, &content, &stored.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan interview result: %w", err)
		}
		if err := json.Unmarshal(content, &stored.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal interview result: %w", err)
		}
		results = append(results, stored)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read interview results: %w", err)
	}
	return results, nil
}

func (p *Postgres) SaveProgressEntry(ctx context.Context, userID uuid.UUID, entry types.ProgressEntry) (*types.ProgressEntry, error) {
	if userID == uuid.Nil {
		return nil, &ErrNotAuthenticated{}
	}
	filled := fillProgressDefaults(entry, time.Now())
	err := p.pool.QueryRow(ctx,
		`INSERT INTO progress_entries (user_id, date, resume_score, interview_score, overall_score)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		userID, filled.Date, filled.ResumeScore, filled.InterviewScore, filled.OverallScore,
	).Scan(&filled.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to save progress entry: %w", err)
	}
	return &filled, nil
}

func (p *Postgres) GetUserProgress(ctx context.Context, userID uuid.UUID) ([]types.ProgressEntry, error) {
	if userID == uuid.Nil {
		return nil, &ErrNotAuthenticated{}
	}
	rows, err := p.pool.Query(ctx,
		`SELECT date, resume_score, interview_score, overall_score, created_at
		 FROM progress_entries WHERE user_id = $1
		 ORDER BY created_at ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress entries: %w", err)
	}
	defer rows.Close()

	var entries []types.ProgressEntry
	for rows.Next() {
		var e types.ProgressEntry
		if err := rows.Scan(&e.Date, &e.ResumeScore, &e.InterviewScore, &e.OverallScore, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan progress entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read progress entries: %w", err)
	}
	return entries, nil
}
