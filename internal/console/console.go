// internal/console/console.go
//
// Line-oriented console front end for a game.Session.
//
// Input, one command per line:
//   <word>          submit a guess
//   ? | /hint       ask for a hint
//   /status         attempts left, previous guesses, candidate count
//   /help           list commands
//   /quit           give up and reveal the answer
//
// The console owns all player-facing text. Engine errors are translated
// here; nothing below this package prints.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/wordle-ru/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-ru/internal/words"
)

const helpText = `Команды:
  <слово>   ваша догадка (5 русских букв)
  ? /hint   подсказка
  /status   состояние игры
  /quit     сдаться
Обозначения: + буква на месте, ^ буква есть в слове, - буквы нет`

// Console reads commands from in and writes responses to out.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
}

// New builds a Console. log receives a debug line per command.
func New(in io.Reader, out io.Writer, log zerolog.Logger) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, log: log}
}

// Run plays s until it ends, the player quits, input is exhausted or ctx is
// cancelled. The answer is revealed in every case except cancellation.
func (c *Console) Run(ctx context.Context, s *game.Session) error {
	c.printf("Угадайте слово! Попыток: %d. Введите /help для списка команд.\n", s.Remaining())

	for !s.IsOver() {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printf("Ваша догадка: ")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			c.printf("\n")
			c.reveal(s)
			return nil
		}
		line := strings.TrimSpace(c.in.Text())
		c.log.Debug().Str("input", line).Msg("console command")

		switch strings.ToLower(line) {
		case "":
			continue
		case "?", "/hint":
			c.hint(s)
		case "/status":
			c.status(s)
		case "/help":
			c.printf("%s\n", helpText)
		case "/quit", "/exit":
			c.reveal(s)
			return nil
		default:
			c.guess(s, line)
		}
	}

	if s.Won() {
		c.printf("Поздравляем! Вы угадали за %d %s.\n", s.Used(), attemptsWord(s.Used()))
		return nil
	}
	c.printf("Попытки закончились.\n")
	c.reveal(s)
	return nil
}

func (c *Console) guess(s *game.Session, line string) {
	p, err := s.SubmitGuess(line)
	switch {
	case errors.Is(err, words.ErrMalformed):
		c.printf("Нужно слово из %d русских букв.\n", words.Length)
	case errors.Is(err, game.ErrWordNotInDictionary):
		c.printf("Слова нет в словаре!\n")
	case err != nil:
		c.printf("Ошибка: %v\n", err)
	default:
		c.printf("%s  %s  (осталось попыток: %d)\n", words.Normalize(line), p, s.Remaining())
	}
}

func (c *Console) hint(s *game.Session) {
	w, err := s.RequestHint()
	if err != nil {
		c.printf("Подсказка недоступна: %v\n", err)
		return
	}
	c.printf("Подсказка: %s\n", w)
}

func (c *Console) status(s *game.Session) {
	c.printf("Осталось попыток: %d, использовано: %d.\n", s.Remaining(), s.Used())
	hist, pats := s.History(), s.Patterns()
	for i := range hist {
		c.printf("  %s  %s\n", hist[i], pats[i])
	}
	c.printf("Подходящих слов: %d.\n", len(s.Candidates()))
}

func (c *Console) reveal(s *game.Session) {
	c.printf("Загаданное слово: %s\n", s.Answer())
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// attemptsWord picks the Russian plural form of "попытка" for n.
func attemptsWord(n int) string {
	switch {
	case n%100 >= 11 && n%100 <= 14:
		return "попыток"
	case n%10 == 1:
		return "попытку"
	case n%10 >= 2 && n%10 <= 4:
		return "попытки"
	default:
		return "попыток"
	}
}
