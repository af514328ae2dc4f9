package i18n

// ListMessages holds list command translatable strings
type ListMessages struct {
	Use   string
	Short string
	Long  string

	FlagSave string

	ErrorFailedToList string
	TotalRecords      string
	TranslatableMark  string
	ListSaved         string
}

// English list messages
var EnglishListMessages = ListMessages{
	Use:   "list [plugin URL/path]",
	Short: "List record types found in a plugin",
	Long:  `Show per-type record counts and whether each type carries translatable text.`,

	FlagSave: "save the listing to a file",

	ErrorFailedToList: "Failed to list records: %v",
	TotalRecords:      "Total records: %d",
	TranslatableMark:  "translatable",
	ListSaved:         "Record listing saved to %s\n",
}

// Russian list messages
var RussianListMessages = ListMessages{
	Use:   "list [ссылка/путь к плагину]",
	Short: "Показать типы записей в плагине",
	Long:  `Показывает количество записей каждого типа и наличие переводимого текста.`,

	FlagSave: "сохранить список в файл",

	ErrorFailedToList: "Не удалось получить список записей: %v",
	TotalRecords:      "Всего записей: %d",
	TranslatableMark:  "переводимый",
	ListSaved:         "Список записей сохранён в %s\n",
}
