// Package reading composes the text of a tarot reading.
package reading

import "fmt"

// Topic is what a reading is about. Quotas are counted per topic.
type Topic string

const (
	Love   Topic = "love"
	Money  Topic = "money"
	Advice Topic = "advice"
)

// Topics returns all topics in menu order.
func Topics() []Topic {
	return []Topic{Love, Money, Advice}
}

// ParseTopic validates a topic key.
func ParseTopic(s string) (Topic, error) {
	t := Topic(s)
	if _, ok := pools[t]; !ok {
		return "", fmt.Errorf("unknown topic %q", s)
	}
	return t, nil
}

// Title is the human name of the topic.
func (t Topic) Title() string {
	switch t {
	case Love:
		return "Любовь"
	case Money:
		return "Деньги/работа"
	case Advice:
		return "Совет дня"
	}
	return string(t)
}

// phrasePool holds the topic-scoped vocabulary.
type phrasePool struct {
	focus []string
	risk  []string
	step  []string
}

var pools = map[Topic]phrasePool{
	Love: {
		focus: []string{"чувства", "взаимность", "разговор", "границы", "неясность", "тепло"},
		risk:  []string{"догадки", "обиды", "ревность", "молчание", "перетягивание каната"},
		step: []string{
			"скажи одну честную фразу без намёков",
			"не соглашайся на полумеры",
			"спроси прямо, что между вами",
			"держи границы там, где тебе неприятно",
			"смотри на поступки, а не на слова",
		},
	},
	Money: {
		focus: []string{"деньги", "работа", "сроки", "договорённости", "рост", "стабильность"},
		risk:  []string{"спешка", "лишние траты", "распыление", "невыгодные условия", "перегруз"},
		step: []string{
			"проверь цифры и условия",
			"закрой один хвост, который тянется давно",
			"сделай план на 3 шага",
			"выбери один приоритет и держись его",
			"убери лишнее и оставь главное",
		},
	},
	Advice: {
		focus: []string{"настроение", "ресурс", "пауза", "темп", "ясность", "внутренний баланс"},
		risk:  []string{"усталость", "перегруз", "раздражение", "суета", "импульсивность"},
		step: []string{
			"сделай паузу на 10 минут без телефона",
			"закрой одно дело до конца",
			"убери одну мелочь вокруг себя",
			"выбери тишину вместо спора",
			"сделай один маленький, но точный шаг",
		},
	},
}

var intros = []string{
	"Смотри, что карта подсвечивает прямо сейчас.",
	"Это простая подсказка на сейчас, без лишнего шума.",
	"Карта показывает тенденцию, а не приговор.",
	"Сейчас важно увидеть главное и не усложнять.",
	"Это про то, где ты теряешь силы и как их вернуть.",
}

var links = []string{
	"Если говорить по-честному,",
	"Самое важное тут то, что",
	"По ощущениям выходит так:",
	"Суть в том, что",
	"Ключевой момент такой:",
}

var softClosings = []string{
	"Делай шаг спокойно, без спешки.",
	"Не решай на эмоциях, сначала выдохни.",
	"Смотри на факты и на поступки.",
	"Не тащи чужое на себе.",
	"Дай себе время, и картинка сложится.",
}
