// Package app инициализирует все компоненты приложения.
// app.go — точка сборки: создаёт БД-пул, репозиторий, сервисы, обработчик,
// бота и HTTP-сервер.
package app

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"skillblog.ru/reputation-bot/internal/bot"
	"skillblog.ru/reputation-bot/internal/config"
	"skillblog.ru/reputation-bot/internal/db/postgres"
	"skillblog.ru/reputation-bot/internal/features/reputation"
	"skillblog.ru/reputation-bot/internal/server"
)

// App содержит все компоненты приложения.
type App struct {
	Bot    *bot.Bot
	Server *server.Server
	DB     *pgxpool.Pool
	BotAPI *tgbotapi.BotAPI
}

// New создаёт и инициализирует приложение.
// Порядок инициализации важен — компоненты зависят друг от друга.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// === 1. База данных ===
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	// Запускаем миграции
	if err := runMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ошибка миграций: %w", err)
	}

	// === 2. Telegram Bot API ===
	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ошибка создания Telegram API: %w", err)
	}
	botAPI.Debug = cfg.AppEnv == "development"
	log.Infof("Авторизован как @%s", botAPI.Self.UserName)

	// === 3. Репозиторий и сервис ===
	repo := reputation.NewRepository(pool)
	service := reputation.NewService(repo)

	// === 4. Конвейер обработки событий ===
	guard := reputation.NewGuard(botAPI, botAPI.Self.UserName)
	avatars := reputation.NewAvatarResolver(botAPI, cfg.TelegramBotToken)
	composer := reputation.NewComposer(cfg.LeaderboardURL)
	handler := reputation.NewHandler(service, guard, avatars, composer, botAPI)

	// === 5. Бот и HTTP-сервер ===
	b := bot.New(botAPI, cfg, handler)
	srv := server.New(service, pool, cfg.HTTPAddr)

	return &App{
		Bot:    b,
		Server: srv,
		DB:     pool,
		BotAPI: botAPI,
	}, nil
}

// runMigrations выполняет все SQL-миграции.
func runMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	if err := postgres.EnsureMigrationsTable(ctx, pool); err != nil {
		return err
	}

	// Выполняем миграции по порядку
	migrations := []struct {
		version int
		sql     string
	}{
		{1, migration001Reputations},
	}

	for _, m := range migrations {
		if err := postgres.ExecMigrationSQL(ctx, pool, m.version, m.sql); err != nil {
			return fmt.Errorf("миграция %d: %w", m.version, err)
		}
		log.Infof("Миграция %d применена", m.version)
	}

	return nil
}

// SQL-миграции встроены в код для упрощения деплоя.

var migration001Reputations = `
CREATE TABLE IF NOT EXISTS reputations (
    id BIGSERIAL PRIMARY KEY,
    telegram_id BIGINT UNIQUE NOT NULL,
    username VARCHAR(255) DEFAULT '',
    full_name VARCHAR(255) NOT NULL,
    avatar_url TEXT DEFAULT '',
    reputation INTEGER NOT NULL DEFAULT 0 CHECK (reputation >= 0),
    created_at TIMESTAMP DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_reputations_telegram_id ON reputations(telegram_id);
`
