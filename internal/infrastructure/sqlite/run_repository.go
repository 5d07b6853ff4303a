package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/zjrosen/digitduel/internal/runs/domain"
)

// runRepository implements domain.RunRepository using SQLite.
type runRepository struct {
	db *sql.DB
}

// newRunRepository creates a new runRepository instance.
func newRunRepository(db *sql.DB) *runRepository {
	return &runRepository{db: db}
}

// Ensure runRepository implements domain.RunRepository.
var _ domain.RunRepository = (*runRepository)(nil)

const runColumns = `id, guid, digit_count, a, b, max_c, max_d, max_product, min_c, min_d, min_product, verified, created_at`

// Save persists a run to the database. For new runs (ID == 0) it inserts
// a row and sets the run ID; for existing runs it updates the row.
func (r *runRepository) Save(run *domain.Run) error {
	model := toRunModel(run)

	if run.ID() == 0 {
		result, err := r.db.Exec(
			`INSERT INTO runs (guid, digit_count, a, b, max_c, max_d, max_product, min_c, min_d, min_product, verified, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			model.GUID, model.DigitCount, model.A, model.B,
			model.MaxC, model.MaxD, model.MaxProduct,
			model.MinC, model.MinD, model.MinProduct,
			model.Verified, model.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		run.SetID(id)
		return nil
	}

	_, err := r.db.Exec(
		`UPDATE runs SET digit_count = ?, a = ?, b = ?, max_c = ?, max_d = ?, max_product = ?, min_c = ?, min_d = ?, min_product = ?, verified = ? WHERE id = ?`,
		model.DigitCount, model.A, model.B,
		model.MaxC, model.MaxD, model.MaxProduct,
		model.MinC, model.MinD, model.MinProduct,
		model.Verified, model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}
	return nil
}

// FindByGUID retrieves a run by its GUID. Returns RunNotFoundError if no
// matching run exists.
func (r *runRepository) FindByGUID(guid string) (*domain.Run, error) {
	var model RunModel
	err := r.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE guid = ?`,
		guid,
	).Scan(
		&model.ID, &model.GUID, &model.DigitCount, &model.A, &model.B,
		&model.MaxC, &model.MaxD, &model.MaxProduct,
		&model.MinC, &model.MinD, &model.MinProduct,
		&model.Verified, &model.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &domain.RunNotFoundError{GUID: guid}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find run by guid: %w", err)
	}
	return model.toDomain(), nil
}

// ListRecent retrieves up to limit runs, newest first.
func (r *runRepository) ListRecent(limit int) ([]*domain.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.Run
	for rows.Next() {
		var model RunModel
		if err := rows.Scan(
			&model.ID, &model.GUID, &model.DigitCount, &model.A, &model.B,
			&model.MaxC, &model.MaxD, &model.MaxProduct,
			&model.MinC, &model.MinD, &model.MinProduct,
			&model.Verified, &model.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}
