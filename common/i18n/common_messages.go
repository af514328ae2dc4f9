package i18n

// CommonMessages holds common translatable strings
type CommonMessages struct {
	// Error messages
	ErrorFailedToOpen       string
	ErrorFailedToCreateFile string
	ErrorFailedToCreateDir  string
	ErrorFailedToWriteFile  string
	ErrorFailedToMarshal    string

	// Common flag descriptions
	FlagOut       string
	FlagJSON      string
	FlagUserAgent string
	ElapsedTime   string
}

// English common messages
var EnglishCommonMessages = CommonMessages{
	ErrorFailedToOpen:       "Failed to open input: %v",
	ErrorFailedToCreateFile: "Failed to create output file: %v",
	ErrorFailedToCreateDir:  "Failed to create output directory: %v",
	ErrorFailedToWriteFile:  "Failed to write file: %v",
	ErrorFailedToMarshal:    "Failed to marshal JSON: %v",

	FlagOut:       "output path",
	FlagJSON:      "output as JSON",
	FlagUserAgent: "User-Agent header for HTTP fetches",
	ElapsedTime:   "Elapsed time: %s",
}

// Russian common messages
var RussianCommonMessages = CommonMessages{
	ErrorFailedToOpen:       "Не удалось открыть входной файл: %v",
	ErrorFailedToCreateFile: "Не удалось создать выходной файл: %v",
	ErrorFailedToCreateDir:  "Не удалось создать выходной каталог: %v",
	ErrorFailedToWriteFile:  "Не удалось записать файл: %v",
	ErrorFailedToMarshal:    "Не удалось сериализовать JSON: %v",

	FlagOut:       "путь вывода",
	FlagJSON:      "вывод в формате JSON",
	FlagUserAgent: "заголовок User-Agent для HTTP-запросов",
	ElapsedTime:   "Затраченное время: %s",
}
