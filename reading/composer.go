package reading

import (
	"fmt"
	"strings"
	"sync"

	"tarot-telegram-bot/cards"
)

const (
	conclusionHeader = "Вывод:"
	calmStep         = "Один спокойный шаг даст больше ясности, чем попытка всё контролировать сразу."
	anxiousStep      = "Если внутри тревожно, сделай паузу и вернись к решению позже, на свежую голову."
)

// Rand is the source of every random choice in a reading. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Narrative is a composed reading: a description block and a conclusion
// block, each three or four lines.
type Narrative struct {
	Topic       Topic
	Card        string
	Keywords    [2]string
	Description []string
	Conclusion  []string
}

// String joins the blocks with a blank line between them.
func (n Narrative) String() string {
	return strings.Join(n.Description, "\n") + "\n\n" + strings.Join(n.Conclusion, "\n")
}

// Composer builds readings from random draws.
type Composer struct {
	mu    sync.Mutex
	rng   Rand
	hints func(label string) []string
}

// Option configures a Composer.
type Option func(*Composer)

// WithHints replaces the keyword lookup.
func WithHints(fn func(label string) []string) Option {
	return func(c *Composer) {
		c.hints = fn
	}
}

// NewComposer creates a composer drawing from rng. The composer serializes
// access to rng, so it may be shared between goroutines.
func NewComposer(rng Rand, opts ...Option) *Composer {
	c := &Composer{
		rng:   rng,
		hints: cards.Hints,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose builds a reading for a card name. Unknown topics use the Advice
// vocabulary.
func (c *Composer) Compose(topic Topic, label string) Narrative {
	pool, ok := pools[topic]
	if !ok {
		pool = pools[Advice]
	}
	hints := c.hints(label)
	if len(hints) == 0 {
		hints = cards.Hints("")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	focus := c.pick(pool.focus)
	risk := c.pick(pool.risk)
	step := c.pick(pool.step)
	h1, h2 := c.pickTwo(hints)

	desc := []string{
		c.pick(intros),
		fmt.Sprintf("Твоя карта — %s. %s здесь про %s и %s.", label, c.pick(links), h1, h2),
		fmt.Sprintf("Это затрагивает %s, и лучше не уходить в %s.", focus, risk),
	}
	if c.coin() {
		desc = append(desc, c.pick(softClosings))
	}

	concl := []string{
		conclusionHeader,
		fmt.Sprintf("Сейчас самое полезное — %s.", step),
		calmStep,
	}
	if c.coin() {
		concl = append(concl, anxiousStep)
	}

	return Narrative{
		Topic:       topic,
		Card:        label,
		Keywords:    [2]string{h1, h2},
		Description: desc,
		Conclusion:  concl,
	}
}

func (c *Composer) pick(list []string) string {
	return list[c.rng.IntN(len(list))]
}

// pickTwo samples two entries without replacement. A single entry is used
// twice.
func (c *Composer) pickTwo(list []string) (string, string) {
	if len(list) < 2 {
		return list[0], list[0]
	}
	i := c.rng.IntN(len(list))
	j := c.rng.IntN(len(list) - 1)
	if j >= i {
		j++
	}
	return list[i], list[j]
}

func (c *Composer) coin() bool {
	return c.rng.IntN(2) == 1
}
