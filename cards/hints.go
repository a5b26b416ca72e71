package cards

import "strings"

// placeholder is returned for any half of a name that has no table entry.
var placeholder = []string{"важный знак", "тенденция", "подсказка"}

var majorHints = map[string][]string{
	"Шут":             {"новый старт", "лёгкость", "шанс", "смелость попробовать"},
	"Маг":             {"инициатива", "влияние", "ресурс", "умение договориться"},
	"Верховная Жрица": {"интуиция", "тайна", "внутренний голос", "пауза"},
	"Императрица":     {"забота", "рост", "тепло", "притяжение"},
	"Император":       {"границы", "порядок", "ответственность", "правила"},
	"Иерофант":        {"традиция", "наставник", "доверие", "правила игры"},
	"Влюблённые":      {"выбор", "взаимность", "союз", "притяжение"},
	"Колесница":       {"движение вперёд", "воля", "контроль", "победа"},
	"Сила":            {"мягкая сила", "терпение", "смелость", "самообладание"},
	"Отшельник":       {"уединение", "поиск смысла", "тишина", "мудрость"},
	"Колесо Фортуны":  {"поворот", "смена цикла", "шанс", "случайность"},
	"Справедливость":  {"баланс", "честность", "договор", "последствия"},
	"Повешенный":      {"пауза", "другой взгляд", "ожидание", "отпускание"},
	"Смерть":          {"закрытие этапа", "обновление", "смена сценария", "перерождение"},
	"Умеренность":     {"мера", "гармония", "терпение", "исцеление"},
	"Дьявол":          {"соблазн", "зависимость", "привязка", "страсть"},
	"Башня":           {"встряска", "резкие перемены", "освобождение", "правда"},
	"Звезда":          {"надежда", "вдохновение", "исцеление", "вера"},
	"Луна":            {"туман", "сомнения", "страхи", "неясность"},
	"Солнце":          {"ясность", "радость", "успех", "простота"},
	"Суд":             {"пробуждение", "итог", "второй шанс", "призыв"},
	"Мир":             {"завершение", "целостность", "гармония", "новый уровень"},
}

var rankHints = map[string][]string{
	"туз":       {"начало", "шанс", "первый шаг"},
	"двойка":    {"выбор", "диалог", "баланс"},
	"тройка":    {"рост", "поддержка", "развитие"},
	"четвёрка":  {"пауза", "границы", "стабильность"},
	"пятёрка":   {"напряжение", "урок", "неудобный момент"},
	"шестёрка":  {"движение", "облегчение", "выход"},
	"семёрка":   {"проверка", "ожидание", "стратегия"},
	"восьмёрка": {"ускорение", "прогресс", "практика"},
	"девятка":   {"пик", "переживания", "почти итог"},
	"десятка":   {"результат", "финал", "закрытие цикла"},
	"паж":       {"весть", "интерес", "первый опыт"},
	"рыцарь":    {"действие", "движение", "напор"},
	"королева":  {"мудрость", "чувство меры", "влияние мягко"},
	"король":    {"контроль", "ответственность", "позиция"},
}

var suitHints = map[string][]string{
	"кубков":    {"чувства", "принятие", "тепло", "близость"},
	"мечей":     {"мысли", "правда", "разговор", "напряжение"},
	"жезлов":    {"движение", "желание", "энергия", "инициатива"},
	"пентаклей": {"деньги", "быт", "стабильность", "результат"},
}

// IsMajor reports whether label is one of the 22 major arcana names.
func IsMajor(label string) bool {
	_, ok := majorHints[label]
	return ok
}

// Hints returns the keywords for a card name. Majors get their curated list;
// anything else is split into rank and suit and gets rank keywords followed by
// suit keywords, without repeats. The result is never empty and callers may
// not modify it.
func Hints(label string) []string {
	if h, ok := majorHints[label]; ok {
		return h
	}

	rank, suit, ok := strings.Cut(strings.TrimSpace(label), " ")
	if !ok {
		return placeholder
	}
	rank = strings.ToLower(rank)
	suit = strings.ToLower(strings.TrimSpace(suit))

	rh, ok := rankHints[rank]
	if !ok {
		rh = placeholder
	}
	sh, ok := suitHints[suit]
	if !ok {
		sh = placeholder
	}

	out := make([]string, 0, len(rh)+len(sh))
	seen := make(map[string]bool, len(rh)+len(sh))
	for _, list := range [][]string{rh, sh} {
		for _, h := range list {
			if !seen[h] {
				seen[h] = true
				out = append(out, h)
			}
		}
	}
	return out
}
