package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/observability"
	"github.com/spec-kit/helpdesk-service/internal/persistence"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

const seedPassword = "password123"

// seed populates an empty database with demo accounts, the default ticket
// categories, and one client and technician profile per non-admin user.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	technicianRepo := repository.NewTechnicianRepository(pool)

	hash, err := auth.HashPassword(seedPassword, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash seed password", zap.Error(err))
	}

	users := []*domain.User{
		{Name: "Admin Principal", Email: "admin@techhelpdesk.com", PasswordHash: hash, Role: domain.RoleAdmin},
		{Name: "Carlos Gomez", Email: "carlos@example.com", PasswordHash: hash, Role: domain.RoleClient},
		{Name: "Laura Martinez", Email: "laura@example.com", PasswordHash: hash, Role: domain.RoleClient},
		{Name: "Maria Lopez", Email: "maria@techhelpdesk.com", PasswordHash: hash, Role: domain.RoleTechnician},
		{Name: "Pedro Sanchez", Email: "pedro@techhelpdesk.com", PasswordHash: hash, Role: domain.RoleTechnician},
	}
	for _, u := range users {
		if err := userRepo.Create(ctx, u); err != nil {
			logger.Fatal("failed to create user", zap.String("email", u.Email), zap.Error(err))
		}
		logger.Info("user created", zap.String("email", u.Email), zap.String("role", string(u.Role)))
	}

	categories := []*domain.Category{
		{Name: "Request", Description: strPtr("General support requests")},
		{Name: "Hardware Incident", Description: strPtr("Hardware related problems")},
		{Name: "Software Incident", Description: strPtr("Software related problems")},
	}
	for _, cat := range categories {
		if err := categoryRepo.Create(ctx, cat); err != nil {
			logger.Fatal("failed to create category", zap.String("name", cat.Name), zap.Error(err))
		}
		logger.Info("category created", zap.String("name", cat.Name))
	}

	clients := []*domain.Client{
		{Name: "Carlos Gomez", Company: strPtr("Tech Solutions"), ContactEmail: "carlos@techsolutions.com", UserID: users[1].ID},
		{Name: "Laura Martinez", Company: strPtr("Digital Corp"), ContactEmail: "laura@digitalcorp.com", UserID: users[2].ID},
	}
	for _, cl := range clients {
		if err := clientRepo.Create(ctx, cl); err != nil {
			logger.Fatal("failed to create client", zap.String("name", cl.Name), zap.Error(err))
		}
		logger.Info("client created", zap.String("name", cl.Name))
	}

	technicians := []*domain.Technician{
		{Name: "Maria Lopez", Specialty: "Networks and Connectivity", Availability: true, UserID: users[3].ID},
		{Name: "Pedro Sanchez", Specialty: "Software Support", Availability: true, UserID: users[4].ID},
	}
	for _, t := range technicians {
		if err := technicianRepo.Create(ctx, t); err != nil {
			logger.Fatal("failed to create technician", zap.String("name", t.Name), zap.Error(err))
		}
		logger.Info("technician created", zap.String("name", t.Name))
	}

	logger.Info("seed completed",
		zap.Int("users", len(users)),
		zap.Int("categories", len(categories)),
		zap.Int("clients", len(clients)),
		zap.Int("technicians", len(technicians)))
}

func strPtr(s string) *string {
	return &s
}
