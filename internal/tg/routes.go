package tg

// buildRoutes собирает таблицу маршрутизации: (состояние диалога,
// вид обновления) -> обработчик. Callback'и принимает только Idle.
func buildRoutes() map[StateName]Route {
	return map[StateName]Route{
		StateIdle: {
			MessageRoute: map[string]Handler{
				LabelClasses:          {Func: classesMenuHandler, Description: "раздел Занятия"},
				LabelAddClass:         {Func: addClassStartHandler, Description: "начало добавления занятия"},
				LabelDeductClass:      {Func: listClassesForDeductionHandler, Description: "выбор занятия для списания"},
				LabelClassSettings:    {Func: classSettingsHandler, Description: "настройка занятий"},
				LabelListClasses:      {Func: listClassesHandler, Description: "список занятий"},
				LabelDeductionHistory: {Func: deductionHistoryMenuHandler, Description: "выбор занятия для истории"},
				LabelUpdateQuantity:   {Func: updateQuantityMenuHandler, Description: "выбор занятия для обновления"},
				LabelMainMenu:         {Func: mainMenuHandler, Description: "главное меню"},
				LabelPracticeLog:      {Func: practiceMenuHandler, Description: "раздел Дневник практик"},
				LabelAddPracticeEntry: {Func: addPracticeStartHandler, Description: "начало добавления записи"},
				LabelPracticeHistory:  {Func: practiceHistoryHandler, Description: "история практик"},
			},
			CallBackRoute: map[string]HandlerFunc{
				ActionDeductClass:      deductClassCallbackHandler,
				ActionUpdateQuantity:   updateQuantityCallbackHandler,
				ActionDeductionHistory: deductionHistoryCallbackHandler,
			},
		},
		StateAddingClassReceiveName: {
			CatchAll:     true,
			CatchAllFunc: Handler{Func: receiveClassNameHandler, Description: "прием названия занятия"},
		},
		StateAddingClassReceiveQuantity: {
			CatchAll:     true,
			CatchAllFunc: Handler{Func: receiveClassQuantityHandler, Description: "прием количества занятий"},
		},
		StateUpdatingClassReceiveQuantity: {
			CatchAll:     true,
			CatchAllFunc: Handler{Func: receiveUpdatedQuantityHandler, Description: "прием нового остатка"},
		},
		StateAddingDailyPracticeReceiveMinutes: {
			CatchAll:     true,
			CatchAllFunc: Handler{Func: receivePracticeMinutesHandler, Description: "прием минут практики"},
		},
	}
}

// buildCommandRoutes — slash-команды. Срабатывают в любом состоянии,
// до маршрутизации по диалогу.
func buildCommandRoutes() map[string]Handler {
	return map[string]Handler{
		"start":            {Func: startHandler, Description: "Перезапустить бота ♻️"},
		"main_menu":        {Func: mainMenuHandler, Description: "Перейти в главное меню 🏠"},
		"cancel_operation": {Func: cancelOperationHandler, Description: "Отменить операцию ❌"},
		"help":             {Func: helpHandler, Description: "Помощь ℹ️"},
	}
}
