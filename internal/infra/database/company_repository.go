package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/xavierca1/outreach-tracker/internal/entity"
)

// CompanyRepository é a variante com Postgres. Mesmo contrato do
// repositório em memória; ligada quando DATABASE_URL está setado.
type CompanyRepository struct {
	DB *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

const companyColumns = `
	id, name, website, linkedin, crunchbase, company_size,
	total_emails, total_people, last_attempt,
	has_opened, open_count, has_clicked, click_count,
	resume_open_count, has_responded,
	decision, status, created_at, updated_at
`

func scanCompany(row interface{ Scan(...any) error }) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Website, &c.Linkedin, &c.Crunchbase, &c.CompanySize,
		&c.TotalEmails, &c.TotalPeople, &c.LastAttempt,
		&c.HasOpened, &c.OpenCount, &c.HasClicked, &c.ClickCount,
		&c.ResumeOpenCount, &c.HasResponded,
		&c.Decision, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at, id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	c, err := scanCompany(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CompanyRepository) Create(ctx context.Context, c *entity.Company) error {
	// ID sempre do servidor
	c.ID = uuid.New().String()
	return r.insert(ctx, c)
}

func (r *CompanyRepository) insert(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.Name, c.Website, c.Linkedin, c.Crunchbase, c.CompanySize,
		c.TotalEmails, c.TotalPeople, c.LastAttempt,
		c.HasOpened, c.OpenCount, c.HasClicked, c.ClickCount,
		c.ResumeOpenCount, c.HasResponded,
		c.Decision, c.Status, c.CreatedAt, c.UpdatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return errors.New("company already exists")
		}
		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

func (r *CompanyRepository) Update(ctx context.Context, id string, patch *entity.CompanyPatch) (*entity.Company, error) {
	// Carrega, aplica o patch em Go e grava a linha inteira. Mantém a
	// semântica de merge idêntica à do repositório em memória.
	c, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Apply(patch)

	query := `
		UPDATE companies SET
			name = $2, website = $3, linkedin = $4, crunchbase = $5,
			company_size = $6, total_emails = $7, total_people = $8,
			last_attempt = $9, has_opened = $10, open_count = $11,
			has_clicked = $12, click_count = $13, resume_open_count = $14,
			has_responded = $15, decision = $16, status = $17, updated_at = $18
		WHERE id = $1
	`

	_, err = r.DB.ExecContext(ctx, query,
		c.ID, c.Name, c.Website, c.Linkedin, c.Crunchbase,
		c.CompanySize, c.TotalEmails, c.TotalPeople,
		c.LastAttempt, c.HasOpened, c.OpenCount,
		c.HasClicked, c.ClickCount, c.ResumeOpenCount,
		c.HasResponded, c.Decision, c.Status, c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *CompanyRepository) Restore(ctx context.Context, c *entity.Company) error {
	return r.insert(ctx, c)
}
