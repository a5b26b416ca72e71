package cards

// majors maps English major arcana spellings to their Russian names. Both the
// "The X" and bare "X" spellings are present.
var majors = map[string]string{
	"The Fool":             "Шут",
	"Fool":                 "Шут",
	"The Magician":         "Маг",
	"Magician":             "Маг",
	"The High Priestess":   "Верховная Жрица",
	"High Priestess":       "Верховная Жрица",
	"The Empress":          "Императрица",
	"Empress":              "Императрица",
	"The Emperor":          "Император",
	"Emperor":              "Император",
	"The Hierophant":       "Иерофант",
	"Hierophant":           "Иерофант",
	"The Lovers":           "Влюблённые",
	"Lovers":               "Влюблённые",
	"The Chariot":          "Колесница",
	"Chariot":              "Колесница",
	"The Strength":         "Сила",
	"Strength":             "Сила",
	"The Hermit":           "Отшельник",
	"Hermit":               "Отшельник",
	"The Wheel Of Fortune": "Колесо Фортуны",
	"The Wheel of Fortune": "Колесо Фортуны",
	"Wheel Of Fortune":     "Колесо Фортуны",
	"Wheel of Fortune":     "Колесо Фортуны",
	"The Justice":          "Справедливость",
	"Justice":              "Справедливость",
	"The Hanged Man":       "Повешенный",
	"Hanged Man":           "Повешенный",
	"The Death":            "Смерть",
	"Death":                "Смерть",
	"The Temperance":       "Умеренность",
	"Temperance":           "Умеренность",
	"The Devil":            "Дьявол",
	"Devil":                "Дьявол",
	"The Tower":            "Башня",
	"Tower":                "Башня",
	"The Star":             "Звезда",
	"Star":                 "Звезда",
	"The Moon":             "Луна",
	"Moon":                 "Луна",
	"The Sun":              "Солнце",
	"Sun":                  "Солнце",
	"The Judgement":        "Суд",
	"Judgement":            "Суд",
	"The Judgment":         "Суд",
	"Judgment":             "Суд",
	"The World":            "Мир",
	"World":                "Мир",
}

// suits maps lowercase English suit names to the genitive Russian form used
// after a rank ("Двойка Кубков").
var suits = map[string]string{
	"cups":      "Кубков",
	"wands":     "Жезлов",
	"swords":    "Мечей",
	"pentacles": "Пентаклей",
}

// ranks maps rank numbers to Russian names. 11-14 are the court cards.
var ranks = map[int]string{
	1:  "Туз",
	2:  "Двойка",
	3:  "Тройка",
	4:  "Четвёрка",
	5:  "Пятёрка",
	6:  "Шестёрка",
	7:  "Семёрка",
	8:  "Восьмёрка",
	9:  "Девятка",
	10: "Десятка",
	11: "Паж",
	12: "Рыцарь",
	13: "Королева",
	14: "Король",
}

var rankWords = map[string]int{
	"ace":    1,
	"two":    2,
	"three":  3,
	"four":   4,
	"five":   5,
	"six":    6,
	"seven":  7,
	"eight":  8,
	"nine":   9,
	"ten":    10,
	"page":   11,
	"knight": 12,
	"queen":  13,
	"king":   14,
}
