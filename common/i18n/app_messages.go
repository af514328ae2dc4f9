package i18n

// AppMessages holds application-level translatable strings
type AppMessages struct {
	AppDescription     string
	AppLongDescription string

	// Version command messages
	VersionTitle    string
	VersionLabel    string
	GoVersionLabel  string
	PlatformLabel   string
	VersionCmdShort string
	VersionCmdLong  string
}

// English app messages
var EnglishAppMessages = AppMessages{
	AppDescription: "TES3 plugin translation extractor and injector",
	AppLongDescription: `A localization tool for TES3 plugin files (.esm/.esp).

It extracts human-readable strings into a CSV for translation and
injects the edited strings back into a byte-preserving copy of the
original plugin.`,

	VersionTitle:    "esm-translator",
	VersionLabel:    "Version",
	GoVersionLabel:  "Go Version",
	PlatformLabel:   "Platform",
	VersionCmdShort: "Show version information",
	VersionCmdLong:  "Display version and build information",
}

// Russian app messages
var RussianAppMessages = AppMessages{
	AppDescription: "Инструмент извлечения и внедрения переводов для плагинов TES3",
	AppLongDescription: `Инструмент локализации плагинов TES3 (.esm/.esp).

Извлекает читаемые строки в CSV для перевода и внедряет
отредактированные строки обратно в копию исходного плагина с
сохранением всех остальных байтов.`,

	VersionTitle:    "esm-translator",
	VersionLabel:    "Версия",
	GoVersionLabel:  "Версия Go",
	PlatformLabel:   "Платформа",
	VersionCmdShort: "Показать информацию о версии",
	VersionCmdLong:  "Показать версию и информацию о сборке",
}
