package tg

import (
	"context"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"classtrackerbot/internal/config"
	"classtrackerbot/internal/infrastructure/logger"
	"classtrackerbot/internal/ratelimit"
	"classtrackerbot/internal/service"
)

const throttledText = "Вы отправляете слишком много запросов. Подождите несколько секунд."

// Telegram ограничивает ботов примерно 30 сообщениями в секунду.
const sendsPerSecond = 25

// BotAPI — используемая часть *tgbotapi.BotAPI. Выделена для тестов.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// RateLimiter — допуск входящих обновлений.
type RateLimiter interface {
	Observe(ctx context.Context, userID int64) (ratelimit.Decision, error)
}

// Bot — движок диалогов: превращает каждое входящее обновление ровно
// в один вызов обработчика, протягивая состояние диалога, сервисы и
// rate limiter.
type Bot struct {
	api BotAPI
	cfg *config.Config

	dialogues *DialogueCache
	routes    map[StateName]Route
	commands  map[string]Handler

	limiter   RateLimiter
	users     *service.UserService
	classes   *service.ClassService
	practices *service.DailyPracticeLogService

	sendLimiter *rate.Limiter
	wg          sync.WaitGroup
}

// NewBot собирает движок. Все зависимости передаются один раз здесь;
// обработчики глобального состояния не используют.
func NewBot(
	api BotAPI,
	cfg *config.Config,
	limiter RateLimiter,
	users *service.UserService,
	classes *service.ClassService,
	practices *service.DailyPracticeLogService,
) *Bot {
	app := &Bot{
		api:         api,
		cfg:         cfg,
		dialogues:   NewDialogueCache(),
		limiter:     limiter,
		users:       users,
		classes:     classes,
		practices:   practices,
		sendLimiter: rate.NewLimiter(rate.Limit(sendsPerSecond), sendsPerSecond),
	}
	app.routes = buildRoutes()
	app.commands = buildCommandRoutes()
	return app
}

// Start запускает long polling и обрабатывает обновления до отмены ctx.
// Каждое обновление уходит в свою горутину; завершение кооперативное —
// канал закрывается, начатые обработчики дорабатывают.
func (app *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := app.api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		app.api.StopReceivingUpdates()
	}()

	for update := range updates {
		app.wg.Add(1)
		go func(update tgbotapi.Update) {
			defer app.wg.Done()
			app.handleUpdate(ctx, update)
		}(update)
	}

	app.wg.Wait()
}

// handleUpdate — единая точка диспетчеризации. Приоритет:
// команда, затем текст по состоянию, затем callback по состоянию.
func (app *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("паника в обработчике обновления: ", r)
		}
	}()

	from := update.SentFrom()
	if from == nil {
		return
	}

	if !app.admit(ctx, update, from.ID) {
		return
	}

	switch {
	case update.Message != nil && update.Message.IsCommand():
		app.handleCommand(ctx, update)
	case update.Message != nil:
		app.handleMessage(ctx, update)
	case update.CallbackQuery != nil:
		app.handleCallback(ctx, update)
	}
}

// admit пропускает обновление через rate limiter. Недоступный Redis
// означает отказ: лимитер fail-closed.
func (app *Bot) admit(ctx context.Context, update tgbotapi.Update, userID int64) bool {
	if app.cfg.Debug {
		return true
	}

	decision, err := app.limiter.Observe(ctx, userID)
	if err != nil {
		logger.Error("rate limiter недоступен: ", err)
		return false
	}

	if decision.NotifyOnce {
		app.notifyThrottled(ctx, update, userID)
	}
	return decision.Admit
}

// notifyThrottled отправляет единственное за окно предупреждение:
// callback'ам — alert, сообщениям — обычный ответ.
func (app *Bot) notifyThrottled(ctx context.Context, update tgbotapi.Update, userID int64) {
	if update.CallbackQuery != nil {
		alert := tgbotapi.NewCallbackWithAlert(update.CallbackQuery.ID, throttledText)
		if _, err := app.api.Request(alert); err != nil {
			logger.Error("не удалось ответить на callback: ", err)
		}
		return
	}

	if err := app.send(ctx, tgbotapi.NewMessage(userID, throttledText)); err != nil {
		logger.Error("не удалось отправить предупреждение: ", err)
	}
}

func (app *Bot) handleCommand(ctx context.Context, update tgbotapi.Update) {
	command := update.Message.Command()
	if handler, ok := app.commands[command]; ok {
		if err := handler.Func(ctx, app, update); err != nil {
			logger.Error("ошибка обработки команды /", command, ": ", err)
		}
		return
	}

	// Нераспознанная команда обрабатывается как обычный текст
	app.handleMessage(ctx, update)
}

func (app *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	state := app.dialogues.Get(chatID)

	route, ok := app.routes[state.Name]
	if !ok {
		route = app.routes[StateIdle]
	}

	if handler, ok := route.MessageRoute[update.Message.Text]; ok {
		if err := handler.Func(ctx, app, update); err != nil {
			logger.Error("ошибка обработки сообщения: ", err)
		}
		return
	}

	if route.CatchAll {
		if err := route.CatchAllFunc.Func(ctx, app, update); err != nil {
			logger.Error("ошибка обработки текста диалога: ", err)
		}
		return
	}

	if err := app.reply(ctx, chatID, "Команда не найдена!"); err != nil {
		logger.Error("не удалось отправить ответ: ", err)
	}
}

func (app *Bot) handleCallback(ctx context.Context, update tgbotapi.Update) {
	q := update.CallbackQuery
	state := app.dialogues.Get(q.From.ID)

	route, ok := app.routes[state.Name]
	if !ok || route.CallBackRoute == nil {
		return
	}

	action, _, ok := strings.Cut(q.Data, ":")
	if !ok {
		return
	}

	handler, ok := route.CallBackRoute[action]
	if !ok {
		return
	}

	if err := handler(ctx, app, update); err != nil {
		logger.Error("ошибка обработки callback ", q.Data, ": ", err)
	}
}

// send отправляет через общий токен-бакет исходящих запросов.
func (app *Bot) send(ctx context.Context, c tgbotapi.Chattable) error {
	if err := app.sendLimiter.Wait(ctx); err != nil {
		return err
	}
	_, err := app.api.Send(c)
	return err
}

func (app *Bot) reply(ctx context.Context, chatID int64, text string) error {
	return app.send(ctx, tgbotapi.NewMessage(chatID, text))
}

// answerCallback гасит спиннер на клиенте до выполнения работы.
func (app *Bot) answerCallback(callbackID string) {
	if _, err := app.api.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		logger.Error("не удалось ответить на callback: ", err)
	}
}
