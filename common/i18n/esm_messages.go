package i18n

// EsmMessages holds core codec translatable strings
type EsmMessages struct {
	WarnTextMismatch string
}

// English esm messages
var EnglishEsmMessages = EsmMessages{
	WarnTextMismatch: "Warning: original text mismatch for %s. Plugin: %q, CSV: %q",
}

// Russian esm messages
var RussianEsmMessages = EsmMessages{
	WarnTextMismatch: "Предупреждение: исходный текст для %s не совпадает. Плагин: %q, CSV: %q",
}
