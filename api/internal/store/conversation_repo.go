package store

import (
	"context"
	"database/sql"
	"time"

	"breed-bot/api/internal/record"
)

var conversationsSchema = []string{`
create table if not exists conversations (
	id               bigserial primary key,
	created_at       timestamptz not null,
	user_id          text        not null,
	question         text        not null,
	answer           text        not null,
	thinking_process text        not null default '',
	response_ms      bigint      not null
)`,
	`create index if not exists conversations_created_at_idx on conversations (created_at)`,
	`create index if not exists conversations_user_id_idx on conversations (user_id)`,
}

// ConversationRepo is a record.Sink backed by Postgres.
type ConversationRepo struct{ DB *sql.DB }

var _ record.Sink = (*ConversationRepo)(nil)

func NewConversationRepo(db *sql.DB) *ConversationRepo { return &ConversationRepo{DB: db} }

// EnsureSchema creates the conversations table when missing.
func (r *ConversationRepo) EnsureSchema(ctx context.Context) error {
	for _, q := range conversationsSchema {
		if _, err := r.DB.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (r *ConversationRepo) Name() string { return "postgres" }

// Append inserts one record. Rows are never updated.
func (r *ConversationRepo) Append(ctx context.Context, rec record.Record) error {
	const q = `
insert into conversations(created_at, user_id, question, answer, thinking_process, response_ms)
values ($1,$2,$3,$4,$5,$6)`
	_, err := r.DB.ExecContext(ctx, q,
		rec.Time, rec.UserID, rec.Question, rec.Answer, rec.Reasoning, rec.ResponseTime.Milliseconds())
	return err
}

// Recent returns the latest records of a user, newest first.
func (r *ConversationRepo) Recent(ctx context.Context, userID string, limit int) ([]record.Record, error) {
	const q = `select created_at, user_id, question, answer, thinking_process, response_ms
	           from conversations
	           where user_id=$1
	           order by created_at desc
	           limit $2`
	rows, err := r.DB.QueryContext(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []record.Record
	for rows.Next() {
		var (
			rec record.Record
			ms  int64
		)
		if err := rows.Scan(&rec.Time, &rec.UserID, &rec.Question, &rec.Answer, &rec.Reasoning, &ms); err != nil {
			return nil, err
		}
		rec.ResponseTime = time.Duration(ms) * time.Millisecond
		out = append(out, rec)
	}
	return out, rows.Err()
}
