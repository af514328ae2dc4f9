package i18n

// ExtractMessages holds extract command translatable strings
type ExtractMessages struct {
	Use   string
	Short string
	Long  string

	FlagTypes       string
	FlagInteractive string

	// Interactive type selection messages
	InteractiveSelection string
	NoTypesSelected      string
	SelectionCancelled   string

	ErrorFailedToExtract string
	Extracting           string
	ExtractionCompleted  string
	ScanProgressName     string
}

// English extract messages
var EnglishExtractMessages = ExtractMessages{
	Use:   "extract [plugin URL/path]",
	Short: "Extract translatable strings from a plugin into a CSV",
	Long: `Extract human-readable strings from a TES3 plugin file into a CSV
table with one row per string. The plugin itself is not modified.`,

	FlagTypes:       "comma separated list of record types to extract (e.g. BOOK,INFO,GMST)",
	FlagInteractive: "select record types interactively",

	InteractiveSelection: "Select record types to extract (space to select/deselect, enter to confirm):",
	NoTypesSelected:      "No record types selected.",
	SelectionCancelled:   "Selection cancelled: %v",

	ErrorFailedToExtract: "Failed to extract strings: %v",
	Extracting:           "Extracting from %s to %s",
	ExtractionCompleted:  "Extraction complete. Found %d strings in %d records.",
	ScanProgressName:     "scanning",
}

// Russian extract messages
var RussianExtractMessages = ExtractMessages{
	Use:   "extract [ссылка/путь к плагину]",
	Short: "Извлечь переводимые строки из плагина в CSV",
	Long: `Извлекает читаемые строки из плагина TES3 в таблицу CSV,
по одной строке таблицы на строку текста. Сам плагин не изменяется.`,

	FlagTypes:       "список типов записей через запятую (например BOOK,INFO,GMST)",
	FlagInteractive: "выбрать типы записей интерактивно",

	InteractiveSelection: "Выберите типы записей (пробел — выбрать/снять, Enter — подтвердить):",
	NoTypesSelected:      "Типы записей не выбраны.",
	SelectionCancelled:   "Выбор отменён: %v",

	ErrorFailedToExtract: "Не удалось извлечь строки: %v",
	Extracting:           "Извлечение из %s в %s",
	ExtractionCompleted:  "Извлечение завершено. Найдено %d строк в %d записях.",
	ScanProgressName:     "сканирование",
}
