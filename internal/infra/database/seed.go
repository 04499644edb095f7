package database

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/outreach-tracker/internal/entity"
)

// Seed popula os repositórios em memória com o dataset de exemplo.
// Só roda no modo em memória: sem persistência real, o processo sobe
// sempre com os mesmos registros.
func Seed(
	companies *MemoryCompanyRepository,
	people *MemoryPersonRepository,
	stats *MemoryEmailStatRepository,
) {
	ctx := context.Background()
	now := time.Now()

	seedCompanies := []*entity.Company{
		{
			ID: "1", Name: "OpenAI", Website: "openai.com",
			Linkedin:    "https://linkedin.com/company/openai",
			CompanySize: "501-1,000",
			TotalEmails: 2, TotalPeople: 2, LastAttempt: "2024-07-31",
			HasOpened: true, OpenCount: 1,
			HasClicked: true, ClickCount: 1,
			Status: entity.CompanyStatusActive,
		},
		{
			ID: "2", Name: "Anthropic", Website: "anthropic.com",
			Linkedin:    "https://linkedin.com/company/anthropic",
			CompanySize: "201-500",
			TotalEmails: 1, TotalPeople: 1, LastAttempt: "2024-07-29",
			HasOpened: true, OpenCount: 1,
			Status: entity.CompanyStatusActive,
		},
		{
			ID: "3", Name: "Stripe", Website: "stripe.com",
			Linkedin:    "https://linkedin.com/company/stripe",
			Crunchbase:  "https://crunchbase.com/organization/stripe",
			CompanySize: "5,001-10,000",
			TotalEmails: 4, TotalPeople: 2, LastAttempt: "2024-07-25",
			HasOpened: true, OpenCount: 2,
			HasClicked: true, ClickCount: 1,
			ResumeOpenCount: 1, HasResponded: true,
			Status: entity.CompanyStatusActive,
		},
		{
			ID: "4", Name: "Figma", Website: "figma.com",
			Linkedin:    "https://linkedin.com/company/figma",
			CompanySize: "1,001-5,000",
			TotalEmails: 1, TotalPeople: 1, LastAttempt: "2024-08-01",
			Status: entity.CompanyStatusActive,
		},
	}

	seedPeople := []*entity.Person{
		{
			ID: "p1", CompanyID: "1", Name: "Alice Smith", Email: "alice@openai.com",
			Position: "Senior Engineering Manager",
			Linkedin: "https://linkedin.com/in/alice-smith",
			City:     "San Francisco", Country: "United States",
			Attempts: 2, LastEmailDate: "2024-07-31",
			Opened: true, OpenCount: 3,
			Clicked: true, ClickCount: 1,
			FirstEmail:  entity.ScheduleSlot{Scheduled: true, Date: "2024-07-24"},
			SecondEmail: entity.ScheduleSlot{Scheduled: true, Date: "2024-07-31"},
		},
		{
			ID: "p2", CompanyID: "1", Name: "Bob Johnson", Email: "bob@openai.com",
			Position: "Technical Recruiter",
			Linkedin: "https://linkedin.com/in/bob-johnson",
		},
		{
			ID: "p3", CompanyID: "2", Name: "Carol Davis", Email: "carol@anthropic.com",
			Position: "Head of Engineering",
			City:     "San Francisco", Country: "United States",
			Attempts: 1, LastEmailDate: "2024-07-29",
			Opened: true, OpenCount: 1,
			FirstEmail: entity.ScheduleSlot{Scheduled: true, Date: "2024-07-29"},
		},
		{
			ID: "p4", CompanyID: "3", Name: "David Wilson", Email: "david@stripe.com",
			Position: "Software Engineer",
			Attempts: 3, LastEmailDate: "2024-07-25",
			Opened: true, OpenCount: 5,
			Clicked: true, ClickCount: 2,
			ResumeOpened: true, ResumeOpenCount: 1,
			Responded:   true,
			FirstEmail:  entity.ScheduleSlot{Scheduled: true, Date: "2024-07-11"},
			SecondEmail: entity.ScheduleSlot{Scheduled: true, Date: "2024-07-18"},
			ThirdEmail:  entity.ScheduleSlot{Scheduled: true, Date: "2024-07-25"},
		},
		{
			ID: "p5", CompanyID: "3", Name: "Emma Brown", Email: "emma@stripe.com",
			Position: "Engineering Manager",
			Attempts: 1, LastEmailDate: "2024-07-20",
			Opened: true, OpenCount: 1,
			FirstEmail: entity.ScheduleSlot{Scheduled: true, Date: "2024-07-20"},
		},
		{
			ID: "p6", CompanyID: "4", Name: "Frank Miller", Email: "frank@figma.com",
			Position: "Design Engineering Lead",
			Attempts: 1, LastEmailDate: "2024-08-01",
		},
	}

	seedStats := []*entity.EmailStat{
		{ID: "s1", PersonID: "p1", CompanyID: "1", AttemptNumber: 1, SentDate: "2024-07-24",
			Subject: "Excited about OpenAI's engineering team", OpenCount: 2, ClickCount: 1},
		{ID: "s2", PersonID: "p1", CompanyID: "1", AttemptNumber: 2, SentDate: "2024-07-31",
			Subject: "Following up on my previous email", OpenCount: 1},
		{ID: "s3", PersonID: "p3", CompanyID: "2", AttemptNumber: 1, SentDate: "2024-07-29",
			Subject: "Backend engineer interested in Anthropic", OpenCount: 1},
		{ID: "s4", PersonID: "p4", CompanyID: "3", AttemptNumber: 1, SentDate: "2024-07-11",
			Subject: "Infrastructure engineer reaching out", OpenCount: 2, ClickCount: 1},
		{ID: "s5", PersonID: "p4", CompanyID: "3", AttemptNumber: 2, SentDate: "2024-07-18",
			Subject: "Following up on payments infrastructure", OpenCount: 2, ResumeOpenCount: 1},
		{ID: "s6", PersonID: "p4", CompanyID: "3", AttemptNumber: 3, SentDate: "2024-07-25",
			Subject: "One last note", OpenCount: 1, Responded: true},
		{ID: "s7", PersonID: "p5", CompanyID: "3", AttemptNumber: 1, SentDate: "2024-07-20",
			Subject: "Engineering roles at Stripe", OpenCount: 1},
		{ID: "s8", PersonID: "p6", CompanyID: "4", AttemptNumber: 1, SentDate: "2024-08-01",
			Subject: "Design systems engineer intro"},
	}

	// Restore mantém os ids fixos do seed (Create cunharia ids novos)
	for _, c := range seedCompanies {
		c.CreatedAt, c.UpdatedAt = now, now
		companies.Restore(ctx, c)
	}
	for _, p := range seedPeople {
		p.CreatedAt, p.UpdatedAt = now, now
		people.Restore(ctx, p)
	}
	for _, s := range seedStats {
		s.CreatedAt = now
		stats.Restore(ctx, s)
	}

	log.Printf("🌱 Seed carregado: %d empresas, %d pessoas, %d tentativas",
		len(seedCompanies), len(seedPeople), len(seedStats))
}
