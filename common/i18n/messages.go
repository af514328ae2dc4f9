package i18n

import (
	"os"
	"strings"
)

// Language represents supported languages
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
)

// AllMessages holds all translatable strings grouped by module
type AllMessages struct {
	App     AppMessages
	Common  CommonMessages
	Extract ExtractMessages
	Inject  InjectMessages
	List    ListMessages
	Esm     EsmMessages
}

// CurrentLanguage holds the current language setting
var CurrentLanguage Language = English

// I18nMsg holds the current message set - Global variable for easy access
var I18nMsg = EnglishAllMessages

// English messages
var EnglishAllMessages = AllMessages{
	App:     EnglishAppMessages,
	Common:  EnglishCommonMessages,
	Extract: EnglishExtractMessages,
	Inject:  EnglishInjectMessages,
	List:    EnglishListMessages,
	Esm:     EnglishEsmMessages,
}

// Russian messages
var RussianAllMessages = AllMessages{
	App:     RussianAppMessages,
	Common:  RussianCommonMessages,
	Extract: RussianExtractMessages,
	Inject:  RussianInjectMessages,
	List:    RussianListMessages,
	Esm:     RussianEsmMessages,
}

// DetectLanguage detects the user's language preference based on environment variables
func DetectLanguage() Language {
	envVars := []string{"LANG", "LANGUAGE", "LC_ALL", "LC_MESSAGES"}

	for _, envVar := range envVars {
		if lang := os.Getenv(envVar); lang != "" {
			lang = strings.ToLower(lang)
			if strings.Contains(lang, "ru") ||
				strings.Contains(lang, "russian") {
				return Russian
			}
		}
	}

	return English
}

// SetLanguage sets the current language and updates messages
func SetLanguage(lang Language) {
	CurrentLanguage = lang
	switch lang {
	case Russian:
		I18nMsg = RussianAllMessages
	default:
		I18nMsg = EnglishAllMessages
	}
}

// InitLanguage initializes the language system
func InitLanguage() {
	detectedLang := DetectLanguage()
	SetLanguage(detectedLang)
}
