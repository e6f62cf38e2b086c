package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"

	"classtrackerbot/internal/config"
	"classtrackerbot/internal/infrastructure/logger"
	"classtrackerbot/internal/ratelimit"
	"classtrackerbot/internal/repository"
	"classtrackerbot/internal/service"
	"classtrackerbot/internal/tg"
)

const rateLimitNamespace = "classtracker"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("не удалось загрузить конфигурацию: ", err)
	}
	logger.SetDebug(cfg.Debug)

	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("не удалось открыть базу данных: ", err)
	}

	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Fatal("некорректный REDIS__URL: ", err)
	}
	redisClient := redis.NewClient(redisOpts)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Error("redis недоступен, лимитер будет отклонять запросы: ", err)
	}
	cancelPing()

	limiter := ratelimit.New(redisClient, rateLimitNamespace, cfg.Redis.RateLimit, cfg.Redis.RateInterval())

	users := service.NewUserService(db)
	classes := service.NewClassService(db)
	practices := service.NewDailyPracticeLogService(db)

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatal("не удалось инициализировать бота telegram: ", err)
	}
	api.Debug = cfg.Debug

	if _, err := api.Request(tgbotapi.NewSetMyCommands(tg.Commands()...)); err != nil {
		logger.Fatal("не удалось зарегистрировать команды: ", err)
	}

	bot := tg.NewBot(api, cfg, limiter, users, classes, practices)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Infof("бот @%s запущен", api.Self.UserName)
	bot.Start(ctx)
	logger.Info("бот остановлен")
}
