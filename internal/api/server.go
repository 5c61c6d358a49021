package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/kanbanlab/board_service/config"
	"github.com/kanbanlab/board_service/infra/queue"
	"github.com/kanbanlab/board_service/internal/api/rest/handlers"
	"github.com/kanbanlab/board_service/internal/domain"
	"github.com/kanbanlab/board_service/internal/helper"
	"github.com/kanbanlab/board_service/internal/repository"
	"github.com/kanbanlab/board_service/internal/services"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Content-Type, Accept, Authorization, X-User-ID",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := OpenDatabase(cfg.DatabaseDSN)
	if err != nil {
		zap.L().Fatal("database connection error", zap.Error(err))
	}
	zap.L().Info("database connected")

	// ---------- MIGRATION (guarded by advisory lock on postgres) ----------
	if err := MigrateWithLock(db); err != nil {
		zap.L().Fatal("migration error", zap.Error(err))
	}
	zap.L().Info("migration successful")

	// ---------- Infra ----------
	var producer *queue.Producer
	if cfg.KafkaBroker != "" {
		producer = queue.NewProducer(
			cfg.KafkaBroker,
			cfg.KafkaTopic,
			cfg.KafkaUsername,
			cfg.KafkaPassword,
		)
		zap.L().Info("kafka producer configured", zap.String("topic", cfg.KafkaTopic))
	}

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	boardRepo := repository.NewBoardRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	cardRepo := repository.NewCardRepository(db)
	userRepo := repository.NewUserRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	// ---------- Services ----------
	boardSvc := services.NewBoardService(boardRepo)
	columnSvc := services.NewColumnService(columnRepo, boardRepo)
	cardSvc := services.NewCardService(db, cardRepo, columnRepo, userRepo, historyRepo, producer)
	userSvc := services.NewUserService(userRepo, authHelper)

	// ---------- Handlers ----------
	handlers.NewBoardHandler(boardSvc, columnSvc).SetupRoutes(app)
	handlers.NewColumnHandler(columnSvc, cardSvc).SetupRoutes(app)
	handlers.NewCardHandler(cardSvc).SetupRoutes(app)
	handlers.NewUserHandler(userSvc, authHelper).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	zap.L().Info("listening", zap.String("addr", cfg.ServerPort))
	zap.L().Fatal("server stopped", zap.Error(app.Listen(cfg.ServerPort)))
}

// OpenDatabase picks the driver from the DSN: postgres URLs/keyword DSNs go
// to the postgres driver, anything else is treated as a sqlite file path.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

const migrateLockID int64 = 20260831

// MigrateWithLock serializes concurrent instances migrating the same
// postgres database. pg_advisory_lock is session-scoped, so lock, migrate
// and unlock must all run on the same pinned connection; through the pool
// the unlock would land on a different session and the lock would stay
// held until process exit.
func MigrateWithLock(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return Migrate(db)
	}
	return db.Connection(func(conn *gorm.DB) error {
		if err := conn.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
			return err
		}
		defer func() {
			_ = conn.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
		}()
		return Migrate(conn)
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Board{},
		&domain.Column{},
		&domain.Card{},
		&domain.User{},
		&domain.CardHistory{},
	)
}
