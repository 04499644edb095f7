package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/xavierca1/outreach-tracker/internal/entity"
)

type PersonRepository struct {
	DB *sql.DB
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{DB: db}
}

const personColumns = `
	id, company_id, name, email, position, linkedin, city, country,
	attempts, last_email_date,
	opened, open_count, clicked, click_count,
	resume_opened, resume_open_count, responded,
	first_scheduled, first_date,
	second_scheduled, second_date,
	third_scheduled, third_date,
	created_at, updated_at
`

func scanPerson(row interface{ Scan(...any) error }) (*entity.Person, error) {
	var p entity.Person
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.Email, &p.Position, &p.Linkedin, &p.City, &p.Country,
		&p.Attempts, &p.LastEmailDate,
		&p.Opened, &p.OpenCount, &p.Clicked, &p.ClickCount,
		&p.ResumeOpened, &p.ResumeOpenCount, &p.Responded,
		&p.FirstEmail.Scheduled, &p.FirstEmail.Date,
		&p.SecondEmail.Scheduled, &p.SecondEmail.Date,
		&p.ThirdEmail.Scheduled, &p.ThirdEmail.Date,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PersonRepository) queryPeople(ctx context.Context, query string, args ...any) ([]*entity.Person, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := []*entity.Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

func (r *PersonRepository) FindAll(ctx context.Context) ([]*entity.Person, error) {
	return r.queryPeople(ctx, `SELECT `+personColumns+` FROM people ORDER BY created_at, id`)
}

func (r *PersonRepository) FindByCompanyID(ctx context.Context, companyID string) ([]*entity.Person, error) {
	return r.queryPeople(ctx,
		`SELECT `+personColumns+` FROM people WHERE company_id = $1 ORDER BY created_at, id`,
		companyID,
	)
}

func (r *PersonRepository) FindByID(ctx context.Context, id string) (*entity.Person, error) {
	p, err := scanPerson(r.DB.QueryRowContext(ctx,
		`SELECT `+personColumns+` FROM people WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PersonRepository) Create(ctx context.Context, p *entity.Person) error {
	p.ID = uuid.New().String()
	return r.insert(ctx, p)
}

func (r *PersonRepository) insert(ctx context.Context, p *entity.Person) error {
	query := `
		INSERT INTO people (` + personColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17,
		        $18, $19, $20, $21, $22, $23, $24, $25)
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.CompanyID, p.Name, p.Email, p.Position, p.Linkedin, p.City, p.Country,
		p.Attempts, p.LastEmailDate,
		p.Opened, p.OpenCount, p.Clicked, p.ClickCount,
		p.ResumeOpened, p.ResumeOpenCount, p.Responded,
		p.FirstEmail.Scheduled, p.FirstEmail.Date,
		p.SecondEmail.Scheduled, p.SecondEmail.Date,
		p.ThirdEmail.Scheduled, p.ThirdEmail.Date,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		log.Printf("Erro crítico no banco: %v", err)
	}
	return err
}

func (r *PersonRepository) Update(ctx context.Context, id string, patch *entity.PersonPatch) (*entity.Person, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.ApplyPatch(patch)

	query := `
		UPDATE people SET
			company_id = $2, name = $3, email = $4, position = $5,
			linkedin = $6, city = $7, country = $8,
			attempts = $9, last_email_date = $10,
			opened = $11, open_count = $12, clicked = $13, click_count = $14,
			resume_opened = $15, resume_open_count = $16, responded = $17,
			first_scheduled = $18, first_date = $19,
			second_scheduled = $20, second_date = $21,
			third_scheduled = $22, third_date = $23,
			updated_at = $24
		WHERE id = $1
	`

	_, err = r.DB.ExecContext(ctx, query,
		p.ID, p.CompanyID, p.Name, p.Email, p.Position,
		p.Linkedin, p.City, p.Country,
		p.Attempts, p.LastEmailDate,
		p.Opened, p.OpenCount, p.Clicked, p.ClickCount,
		p.ResumeOpened, p.ResumeOpenCount, p.Responded,
		p.FirstEmail.Scheduled, p.FirstEmail.Date,
		p.SecondEmail.Scheduled, p.SecondEmail.Date,
		p.ThirdEmail.Scheduled, p.ThirdEmail.Date,
		p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PersonRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PersonRepository) Restore(ctx context.Context, p *entity.Person) error {
	return r.insert(ctx, p)
}
