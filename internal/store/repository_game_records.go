package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/akarpov/memstats/internal/logger"
	"github.com/akarpov/memstats/models"
)

type gameRecordRepository struct {
	*DB
	logger *logger.Logger
}

func NewGameRecordRepository(db *DB, logger *logger.Logger) GameRecordRepository {
	return &gameRecordRepository{
		DB:     db,
		logger: logger,
	}
}

func (g *gameRecordRepository) Insert(ctx context.Context, record models.GameRecord) (int64, error) {
	log := logger.FromContext(ctx)

	// derived fields are never trusted from the caller
	record.ComputeDerived()
	if record.PlayerName == "" {
		record.PlayerName = models.DefaultPlayerName
	}
	if record.Source == "" {
		record.Source = models.SourceLocal
	}

	result, err := g.DB.ExecContext(ctx, insertGameRecord,
		record.ServerID,
		record.PlayerName,
		record.Difficulty,
		record.StartTime,
		record.EndTime,
		record.DurationSeconds,
		record.Moves,
		record.Matches,
		record.Errors,
		record.Completed,
		record.Source,
		record.Synthesized,
	)
	if err != nil {
		log.Err(err).
			Str("func", "gameRecordRepository.Insert").
			Str("player_name", record.PlayerName).
			Str("difficulty", record.Difficulty).
			Msg("failed to execute insert for game record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "gameRecordRepository.Insert").
			Msg("failed to get rows affected after insert")
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return 0, ErrRecordNotSaved
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "gameRecordRepository.Insert").
			Msg("failed to get last insert id")
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return id, nil
}

func (g *gameRecordRepository) AttachServerID(ctx context.Context, localID, serverID int64) error {
	log := logger.FromContext(ctx)

	_, err := g.DB.ExecContext(ctx, attachServerID, serverID, localID)
	if err != nil {
		log.Err(err).
			Str("func", "gameRecordRepository.AttachServerID").
			Int64("local_id", localID).
			Int64("server_id", serverID).
			Msg("failed to attach server id to local record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (g *gameRecordRepository) QueryByPlayer(ctx context.Context, playerName string, source models.Source) ([]models.GameRecord, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(gameRecordColumns...).
		From("game_records").
		Where(sq.Eq{"player_name": playerName}).
		OrderBy("start_time DESC")
	if source != "" {
		builder = builder.Where(sq.Eq{"source": string(source)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "gameRecordRepository.QueryByPlayer").
			Str("player_name", playerName).
			Msg("failed to build player query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return g.queryRecords(ctx, "gameRecordRepository.QueryByPlayer", query, args...)
}

func (g *gameRecordRepository) QueryLeaderboard(ctx context.Context, filter LeaderboardFilter) ([]models.GameRecord, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(gameRecordColumns...).
		From("game_records").
		Where(sq.Eq{"completed": true}).
		OrderBy("duration_seconds ASC", "errors ASC")
	if filter.Difficulty != "" {
		builder = builder.Where(sq.Eq{"difficulty": filter.Difficulty})
	}
	if filter.Source != "" {
		builder = builder.Where(sq.Eq{"source": string(filter.Source)})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "gameRecordRepository.QueryLeaderboard").
			Str("difficulty", filter.Difficulty).
			Msg("failed to build leaderboard query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return g.queryRecords(ctx, "gameRecordRepository.QueryLeaderboard", query, args...)
}

func (g *gameRecordRepository) ReplaceServerRows(ctx context.Context, difficulty string, records []models.GameRecord) error {
	log := logger.FromContext(ctx)

	tx, err := g.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "gameRecordRepository.ReplaceServerRows").
			Str("difficulty", difficulty).
			Msg("failed to begin replace transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if difficulty == "" {
		_, err = tx.ExecContext(ctx, deleteServerRowsAll)
	} else {
		_, err = tx.ExecContext(ctx, deleteServerRowsByDifficulty, difficulty)
	}
	if err != nil {
		log.Err(err).
			Str("func", "gameRecordRepository.ReplaceServerRows").
			Str("difficulty", difficulty).
			Msg("failed to delete server rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertGameRecord)
	if err != nil {
		log.Err(err).
			Str("func", "gameRecordRepository.ReplaceServerRows").
			Msg("failed to prepare replacement insert")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for _, record := range records {
		record.ComputeDerived()
		record.Source = models.SourceServer

		_, err = stmt.ExecContext(ctx,
			record.ServerID,
			record.PlayerName,
			record.Difficulty,
			record.StartTime,
			record.EndTime,
			record.DurationSeconds,
			record.Moves,
			record.Matches,
			record.Errors,
			record.Completed,
			record.Source,
			record.Synthesized,
		)
		if err != nil {
			log.Err(err).
				Str("func", "gameRecordRepository.ReplaceServerRows").
				Str("player_name", record.PlayerName).
				Int64("server_id", record.ServerID).
				Msg("failed to insert replacement row, rolling back")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "gameRecordRepository.ReplaceServerRows").
			Int("count", len(records)).
			Msg("failed to commit replace transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

func (g *gameRecordRepository) DeleteAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := g.DB.ExecContext(ctx, deleteAllRecords)
	if err != nil {
		log.Err(err).
			Str("func", "gameRecordRepository.DeleteAll").
			Msg("failed to clear game records")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (g *gameRecordRepository) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := g.DB.QueryRowContext(ctx, countRecords).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "gameRecordRepository.Count").
			Msg("failed to count game records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (g *gameRecordRepository) queryRecords(ctx context.Context, caller, query string, args ...any) ([]models.GameRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := g.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute game record query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.GameRecord

	for rows.Next() {
		var item models.GameRecord

		scanErr := rows.Scan(
			&item.ID,
			&item.ServerID,
			&item.PlayerName,
			&item.Difficulty,
			&item.StartTime,
			&item.EndTime,
			&item.DurationSeconds,
			&item.Moves,
			&item.Matches,
			&item.Errors,
			&item.Completed,
			&item.Source,
			&item.Synthesized,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan game record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}
