package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

const commitmentColumns = `
		caller, requester, request_handle, anchor::text AS anchor, quantity, payment::text AS payment,
		max_rarity, window_min_delay::text AS window_min_delay, window_max_window::text AS window_max_window,
		callback_gas_limit, num_words, state, random_words, created_at, fulfilled_at`

type CommitmentRepository struct {
	db *sqlx.DB
}

type commitmentRow struct {
	Caller           string         `db:"caller"`
	Requester        string         `db:"requester"`
	RequestHandle    sql.NullString `db:"request_handle"`
	Anchor           string         `db:"anchor"`
	Quantity         int64          `db:"quantity"`
	Payment          string         `db:"payment"`
	MaxRarity        int16          `db:"max_rarity"`
	WindowMinDelay   string         `db:"window_min_delay"`
	WindowMaxWindow  string         `db:"window_max_window"`
	CallbackGasLimit int64          `db:"callback_gas_limit"`
	NumWords         int64          `db:"num_words"`
	State            string         `db:"state"`
	RandomWords      string         `db:"random_words"`
	CreatedAt        time.Time      `db:"created_at"`
	FulfilledAt      sql.NullTime   `db:"fulfilled_at"`
}

func NewCommitmentRepository(db *sqlx.DB) *CommitmentRepository {
	return &CommitmentRepository{db: db}
}

func (r *CommitmentRepository) GetCommitment(ctx context.Context, key domain.CommitmentKey) (domain.Commitment, error) {
	query := `SELECT` + commitmentColumns + `
		FROM vrf_commitments
		WHERE caller = $1 AND requester = $2
		LIMIT 1
	`

	var row commitmentRow
	if err := r.db.GetContext(ctx, &row, query, addressKey(key.Caller), addressKey(key.Requester)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Commitment{}, vo.ErrCommitmentNotFound
		}
		return domain.Commitment{}, fmt.Errorf("repository: get commitment failed: %w", err)
	}

	return row.toDomain()
}

func (r *CommitmentRepository) GetCommitmentByHandle(ctx context.Context, handle string) (domain.Commitment, error) {
	query := `SELECT` + commitmentColumns + `
		FROM vrf_commitments
		WHERE request_handle = $1
		LIMIT 1
	`

	var row commitmentRow
	if err := r.db.GetContext(ctx, &row, query, handle); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Commitment{}, vo.ErrUnknownRequest
		}
		return domain.Commitment{}, fmt.Errorf("repository: get commitment by handle failed: %w", err)
	}

	return row.toDomain()
}

// CreateCommitment inserts the commitment, runs issue inside the same transaction and stores the
// handle it returns. The row is only committed if the oracle request was issued.
func (r *CommitmentRepository) CreateCommitment(ctx context.Context, commitment domain.Commitment, issue domain.RequestIssuer) (domain.Commitment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Commitment{}, fmt.Errorf("repository: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	const insert = `
		INSERT INTO vrf_commitments (
			caller, requester, anchor, quantity, payment, max_rarity,
			window_min_delay, window_max_window, callback_gas_limit, num_words, state, created_at
		)
		VALUES ($1, $2, $3::numeric, $4, $5::numeric, $6, $7::numeric, $8::numeric, $9, $10, $11, $12)
		ON CONFLICT (caller, requester) DO NOTHING
	`

	result, err := tx.ExecContext(ctx, insert,
		addressKey(commitment.Caller),
		addressKey(commitment.Requester),
		strconv.FormatUint(commitment.Anchor, 10),
		int64(commitment.Quantity),
		bigOrZero(commitment.Payment).String(),
		int16(commitment.Params.MaxRarity),
		strconv.FormatUint(commitment.Window.MinDelay, 10),
		strconv.FormatUint(commitment.Window.MaxWindow, 10),
		int64(commitment.CallbackGasLimit),
		int64(commitment.NumWords),
		string(domain.CommitmentRequested),
		commitment.CreatedAt,
	)
	if err != nil {
		return domain.Commitment{}, fmt.Errorf("repository: failed to insert commitment: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return domain.Commitment{}, fmt.Errorf("repository: failed to read insert result: %w", err)
	}
	if inserted == 0 {
		return domain.Commitment{}, vo.ErrAlreadyPending
	}

	handle, err := issue(ctx)
	if err != nil {
		return domain.Commitment{}, fmt.Errorf("repository: oracle request failed: %w", err)
	}

	const attach = `
		UPDATE vrf_commitments
		SET request_handle = $3
		WHERE caller = $1 AND requester = $2
	`

	if _, err := tx.ExecContext(ctx, attach, addressKey(commitment.Caller), addressKey(commitment.Requester), handle); err != nil {
		return domain.Commitment{}, fmt.Errorf("repository: failed to attach request handle: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Commitment{}, fmt.Errorf("repository: failed to commit transaction: %w", err)
	}

	commitment.RequestHandle = handle
	commitment.State = domain.CommitmentRequested
	return commitment, nil
}

// MarkFulfilled moves a requested commitment to state and reports whether this call made the change.
func (r *CommitmentRepository) MarkFulfilled(ctx context.Context, handle string, words []*big.Int, state domain.CommitmentState, at time.Time) (bool, error) {
	const query = `
		UPDATE vrf_commitments
		SET state = $2, random_words = $3, fulfilled_at = $4
		WHERE request_handle = $1 AND state = 'requested'
	`

	result, err := r.db.ExecContext(ctx, query, handle, string(state), encodeWords(words), at)
	if err != nil {
		return false, fmt.Errorf("repository: failed to mark commitment fulfilled: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("repository: failed to read update result: %w", err)
	}

	return affected == 1, nil
}

func (r *CommitmentRepository) ConsumeCommitment(ctx context.Context, key domain.CommitmentKey, revealedAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repository: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	const archive = `
		INSERT INTO vrf_commitment_archive (
			caller, requester, request_handle, anchor, quantity, payment, max_rarity,
			window_min_delay, window_max_window, callback_gas_limit, num_words, state, random_words,
			created_at, fulfilled_at, revealed_at
		)
		SELECT caller, requester, request_handle, anchor, quantity, payment, max_rarity,
			window_min_delay, window_max_window, callback_gas_limit, num_words, state, random_words,
			created_at, fulfilled_at, $3
		FROM vrf_commitments
		WHERE caller = $1 AND requester = $2
	`

	caller, requester := addressKey(key.Caller), addressKey(key.Requester)
	if _, err := tx.ExecContext(ctx, archive, caller, requester, revealedAt); err != nil {
		return fmt.Errorf("repository: failed to archive commitment: %w", err)
	}

	const remove = `DELETE FROM vrf_commitments WHERE caller = $1 AND requester = $2`

	result, err := tx.ExecContext(ctx, remove, caller, requester)
	if err != nil {
		return fmt.Errorf("repository: failed to delete commitment: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: failed to read delete result: %w", err)
	}
	if deleted == 0 {
		return vo.ErrCommitmentNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("repository: failed to commit transaction: %w", err)
	}

	return nil
}

// ListExpired returns requested commitments whose reveal window closed before position, oldest first.
func (r *CommitmentRepository) ListExpired(ctx context.Context, position uint64, limit int) ([]domain.Commitment, error) {
	query := `SELECT` + commitmentColumns + `
		FROM vrf_commitments
		WHERE state = 'requested'
			AND request_handle IS NOT NULL
			AND anchor + window_min_delay + window_max_window < $1::numeric
		ORDER BY anchor ASC
		LIMIT $2
	`

	var rows []commitmentRow
	if err := r.db.SelectContext(ctx, &rows, query, strconv.FormatUint(position, 10), limit); err != nil {
		return nil, fmt.Errorf("repository: list expired commitments failed: %w", err)
	}

	return rowsToDomain(rows)
}

// ListPending returns requested commitments that still wait for the oracle, oldest first.
func (r *CommitmentRepository) ListPending(ctx context.Context, limit int) ([]domain.Commitment, error) {
	query := `SELECT` + commitmentColumns + `
		FROM vrf_commitments
		WHERE state = 'requested' AND request_handle IS NOT NULL
		ORDER BY anchor ASC
		LIMIT $1
	`

	var rows []commitmentRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("repository: list pending commitments failed: %w", err)
	}

	return rowsToDomain(rows)
}

// WasRevealed reports whether handle belonged to a commitment that has been revealed and archived.
func (r *CommitmentRepository) WasRevealed(ctx context.Context, handle string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM vrf_commitment_archive WHERE request_handle = $1)`

	var revealed bool
	if err := r.db.GetContext(ctx, &revealed, query, handle); err != nil {
		return false, fmt.Errorf("repository: archived handle lookup failed: %w", err)
	}

	return revealed, nil
}

func rowsToDomain(rows []commitmentRow) ([]domain.Commitment, error) {
	commitments := make([]domain.Commitment, 0, len(rows))
	for _, row := range rows {
		commitment, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		commitments = append(commitments, commitment)
	}

	return commitments, nil
}

func (row commitmentRow) toDomain() (domain.Commitment, error) {
	anchor, err := strconv.ParseUint(row.Anchor, 10, 64)
	if err != nil {
		return domain.Commitment{}, fmt.Errorf("repository: invalid anchor %q: %w", row.Anchor, err)
	}

	minDelay, err := strconv.ParseUint(row.WindowMinDelay, 10, 64)
	if err != nil {
		return domain.Commitment{}, fmt.Errorf("repository: invalid window_min_delay %q: %w", row.WindowMinDelay, err)
	}

	maxWindow, err := strconv.ParseUint(row.WindowMaxWindow, 10, 64)
	if err != nil {
		return domain.Commitment{}, fmt.Errorf("repository: invalid window_max_window %q: %w", row.WindowMaxWindow, err)
	}

	payment, ok := new(big.Int).SetString(row.Payment, 10)
	if !ok {
		return domain.Commitment{}, fmt.Errorf("repository: invalid payment %q", row.Payment)
	}

	words, err := decodeWords(row.RandomWords)
	if err != nil {
		return domain.Commitment{}, err
	}

	commitment := domain.Commitment{
		Caller:           common.HexToAddress(row.Caller),
		Requester:        common.HexToAddress(row.Requester),
		RequestHandle:    row.RequestHandle.String,
		Anchor:           anchor,
		Quantity:         uint32(row.Quantity),
		Payment:          payment,
		Params:           domain.OutcomeParams{MaxRarity: uint8(row.MaxRarity)},
		Window:           domain.RevealWindow{MinDelay: minDelay, MaxWindow: maxWindow},
		CallbackGasLimit: uint32(row.CallbackGasLimit),
		NumWords:         uint32(row.NumWords),
		State:            domain.CommitmentState(row.State),
		RandomWords:      words,
		CreatedAt:        row.CreatedAt,
	}
	if row.FulfilledAt.Valid {
		commitment.FulfilledAt = row.FulfilledAt.Time
	}

	return commitment, nil
}

func addressKey(address common.Address) string {
	return strings.ToLower(address.Hex())
}

func encodeWords(words []*big.Int) string {
	encoded := make([]string, 0, len(words))
	for _, word := range words {
		encoded = append(encoded, hexutil.EncodeBig(word))
	}
	return strings.Join(encoded, ",")
}

func decodeWords(raw string) ([]*big.Int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	words := make([]*big.Int, 0, len(parts))
	for _, part := range parts {
		word, err := hexutil.DecodeBig(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("repository: invalid random word %q: %w", part, err)
		}
		words = append(words, word)
	}

	return words, nil
}

func bigOrZero(value *big.Int) *big.Int {
	if value == nil {
		return new(big.Int)
	}
	return value
}
