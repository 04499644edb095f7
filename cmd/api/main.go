package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/outreach-tracker/internal/entity"
	"github.com/xavierca1/outreach-tracker/internal/infra/database"
	"github.com/xavierca1/outreach-tracker/internal/infra/http/handlers"
	"github.com/xavierca1/outreach-tracker/internal/infra/http/middleware"
	"github.com/xavierca1/outreach-tracker/internal/infra/mail"
	"github.com/xavierca1/outreach-tracker/internal/infra/queue"
	"github.com/xavierca1/outreach-tracker/internal/schedule"
	"github.com/xavierca1/outreach-tracker/internal/usecase"
)

func main() {
	godotenv.Load()

	// 1. Repositórios — Postgres quando DATABASE_URL existe, memória
	// com seed caso contrário.
	var (
		companyRepo entity.CompanyRepositoryInterface
		personRepo  entity.PersonRepositoryInterface
		statRepo    entity.EmailStatRepositoryInterface
		db          *sql.DB
	)

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		var err error
		db, err = database.NewDBConnection(dsn)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		companyRepo = database.NewCompanyRepository(db)
		personRepo = database.NewPersonRepository(db)
		statRepo = database.NewEmailStatRepository(db)
		log.Println("🐘 Usando Postgres")
	} else {
		memCompanies := database.NewMemoryCompanyRepository()
		memPeople := database.NewMemoryPersonRepository()
		memStats := database.NewMemoryEmailStatRepository()
		database.Seed(memCompanies, memPeople, memStats)

		companyRepo = memCompanies
		personRepo = memPeople
		statRepo = memStats
		log.Println("🧠 Usando repositórios em memória")
	}

	// 2. RabbitMQ (opcional) — producer de eventos e worker que os
	// consome de volta nos contadores.
	var (
		rabbitConn *amqp091.Connection
		producer   usecase.QueueProducerInterface
	)
	recordUC := usecase.NewRecordEngagementUseCase(personRepo, companyRepo, statRepo)

	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err := queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
			host, os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		rabbitConn = rabbitMQ.Conn
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		worker := queue.NewWorker(rabbitMQ.Ch, recordUC)
		go worker.Start(queue.QueueName)
	}

	// 3. SMTP (opcional)
	var mailSender usecase.EmailService
	if mailHost := os.Getenv("MAIL_HOST"); mailHost != "" {
		mailSender = mail.NewEmailSender(
			mailHost, 587,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"), os.Getenv("MAIL_FROM"),
		)
	}

	// 4. UseCases
	scheduler := schedule.NewScheduler(schedule.FixedHolidays{
		"2026-12-25": true,
		"2027-01-01": true,
	})

	sendAttemptUC := usecase.NewSendAttemptUseCase(
		personRepo, companyRepo, statRepo, mailSender, producer,
	)
	scheduleUC := usecase.NewScheduleOutreachUseCase(personRepo, companyRepo, scheduler)
	deleteCompanyUC := usecase.NewDeleteCompanyUseCase(companyRepo, personRepo, statRepo)
	createPersonUC := usecase.NewCreatePersonUseCase(personRepo, companyRepo)
	deletePersonUC := usecase.NewDeletePersonUseCase(personRepo, companyRepo, statRepo)

	// 5. Handlers
	companyHandler := handlers.NewCompanyHandler(companyRepo, personRepo, statRepo, deleteCompanyUC, scheduleUC)
	personHandler := handlers.NewPersonHandler(personRepo, createPersonUC, deletePersonUC, sendAttemptUC, scheduleUC)
	statHandler := handlers.NewEmailStatHandler(statRepo, personRepo)
	statsHandler := handlers.NewStatsHandler(companyRepo, personRepo, statRepo)
	eventHandler := handlers.NewEventHandler(recordUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/companies", func(r chi.Router) {
			r.Get("/", companyHandler.List)
			r.Post("/", companyHandler.Create)
			r.Get("/{id}", companyHandler.Get)
			r.Patch("/{id}", companyHandler.Patch)
			r.Delete("/{id}", companyHandler.Delete)
			r.Get("/{id}/campaigns", companyHandler.Campaigns)
			r.Get("/{id}/row", companyHandler.Row)
			r.Get("/{id}/schedule", companyHandler.ScheduleStatus)
			r.Post("/{id}/schedule", companyHandler.ScheduleAll)
		})

		r.Route("/people", func(r chi.Router) {
			r.Get("/", personHandler.List)
			r.Post("/", personHandler.Create)
			r.Get("/{id}", personHandler.Get)
			r.Patch("/{id}", personHandler.Patch)
			r.Delete("/{id}", personHandler.Delete)
			r.Post("/{id}/send", personHandler.Send)
			r.Get("/{id}/send", personHandler.SendState)
			r.Post("/{id}/schedule", personHandler.ScheduleSlot)
		})

		r.Route("/email-stats", func(r chi.Router) {
			r.Get("/", statHandler.List)
			r.Post("/", statHandler.Create)
			r.Get("/{id}", statHandler.Get)
		})

		r.Post("/events", eventHandler.Ingest)
		r.Get("/stats", statsHandler.Totals)
	})

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🔥 Outreach Tracker rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
