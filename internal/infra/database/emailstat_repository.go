package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/xavierca1/outreach-tracker/internal/entity"
)

type EmailStatRepository struct {
	DB *sql.DB
}

func NewEmailStatRepository(db *sql.DB) *EmailStatRepository {
	return &EmailStatRepository{DB: db}
}

const emailStatColumns = `
	id, person_id, company_id, attempt_number, sent_date, subject,
	open_count, click_count, resume_open_count, responded, created_at
`

func scanEmailStat(row interface{ Scan(...any) error }) (*entity.EmailStat, error) {
	var s entity.EmailStat
	err := row.Scan(
		&s.ID, &s.PersonID, &s.CompanyID, &s.AttemptNumber, &s.SentDate, &s.Subject,
		&s.OpenCount, &s.ClickCount, &s.ResumeOpenCount, &s.Responded, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *EmailStatRepository) queryStats(ctx context.Context, query string, args ...any) ([]*entity.EmailStat, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []*entity.EmailStat{}
	for rows.Next() {
		s, err := scanEmailStat(rows)
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *EmailStatRepository) FindAll(ctx context.Context) ([]*entity.EmailStat, error) {
	return r.queryStats(ctx, `SELECT `+emailStatColumns+` FROM email_stats ORDER BY created_at, id`)
}

func (r *EmailStatRepository) FindByPersonID(ctx context.Context, personID string) ([]*entity.EmailStat, error) {
	return r.queryStats(ctx,
		`SELECT `+emailStatColumns+` FROM email_stats WHERE person_id = $1 ORDER BY created_at, id`,
		personID,
	)
}

func (r *EmailStatRepository) FindByCompanyID(ctx context.Context, companyID string) ([]*entity.EmailStat, error) {
	return r.queryStats(ctx,
		`SELECT `+emailStatColumns+` FROM email_stats WHERE company_id = $1 ORDER BY created_at, id`,
		companyID,
	)
}

func (r *EmailStatRepository) FindByID(ctx context.Context, id string) (*entity.EmailStat, error) {
	s, err := scanEmailStat(r.DB.QueryRowContext(ctx,
		`SELECT `+emailStatColumns+` FROM email_stats WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrEmailStatNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *EmailStatRepository) Create(ctx context.Context, s *entity.EmailStat) error {
	s.ID = uuid.New().String()
	return r.insert(ctx, s)
}

func (r *EmailStatRepository) insert(ctx context.Context, s *entity.EmailStat) error {
	query := `
		INSERT INTO email_stats (` + emailStatColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.PersonID, s.CompanyID, s.AttemptNumber, s.SentDate, s.Subject,
		s.OpenCount, s.ClickCount, s.ResumeOpenCount, s.Responded, s.CreatedAt,
	)
	if err != nil {
		log.Printf("Erro crítico no banco: %v", err)
	}
	return err
}

func (r *EmailStatRepository) Update(ctx context.Context, id string, patch *entity.EmailStatPatch) (*entity.EmailStat, error) {
	s, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Apply(patch)

	query := `
		UPDATE email_stats SET
			open_count = $2, click_count = $3, resume_open_count = $4, responded = $5
		WHERE id = $1
	`

	_, err = r.DB.ExecContext(ctx, query,
		s.ID, s.OpenCount, s.ClickCount, s.ResumeOpenCount, s.Responded,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *EmailStatRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM email_stats WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *EmailStatRepository) Restore(ctx context.Context, s *entity.EmailStat) error {
	return r.insert(ctx, s)
}
