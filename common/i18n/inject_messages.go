package i18n

// InjectMessages holds inject command translatable strings
type InjectMessages struct {
	Use   string
	Short string
	Long  string

	FlagCSV   string
	FlagPatch string

	ErrorFailedToLoadCSV string
	ErrorFailedToInject  string
	Injecting            string
	TranslationsLoaded   string
	InjectionCompleted   string
	MismatchSummary      string
	ScanProgressName     string
}

// English inject messages
var EnglishInjectMessages = InjectMessages{
	Use:   "inject [plugin URL/path]",
	Short: "Inject translated strings back into a plugin",
	Long: `Rewrite a TES3 plugin with translations taken from a CSV table.
Every byte that is not an injected string is preserved exactly.`,

	FlagCSV:   "path to the CSV file with translations",
	FlagPatch: "reserved; currently produces a full rewritten plugin",

	ErrorFailedToLoadCSV: "Failed to load translations: %v",
	ErrorFailedToInject:  "Failed to inject translations: %v",
	Injecting:            "Injecting translations from %s in %s to %s",
	TranslationsLoaded:   "Loaded %d translations from the CSV.",
	InjectionCompleted:   "Injection complete. %d strings injected into %d records.",
	MismatchSummary:      "%d translation(s) skipped because the plugin text changed.",
	ScanProgressName:     "rewriting",
}

// Russian inject messages
var RussianInjectMessages = InjectMessages{
	Use:   "inject [ссылка/путь к плагину]",
	Short: "Внедрить переведённые строки обратно в плагин",
	Long: `Переписывает плагин TES3, подставляя переводы из таблицы CSV.
Все байты, кроме внедрённых строк, сохраняются без изменений.`,

	FlagCSV:   "путь к CSV-файлу с переводами",
	FlagPatch: "зарезервировано; пока всегда создаётся полная копия плагина",

	ErrorFailedToLoadCSV: "Не удалось загрузить переводы: %v",
	ErrorFailedToInject:  "Не удалось внедрить переводы: %v",
	Injecting:            "Внедрение переводов из %s в %s, результат в %s",
	TranslationsLoaded:   "Загружено %d переводов из CSV.",
	InjectionCompleted:   "Внедрение завершено. %d строк внедрено в %d записей.",
	MismatchSummary:      "%d перевод(ов) пропущено: текст в плагине изменился.",
	ScanProgressName:     "перезапись",
}
