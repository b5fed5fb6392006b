// Package console — текстовый ввод/вывод интерактивной сессии.
//
// Разбор ввода (selection.go) отделён от I/O и тестируется отдельно.
// Console повторяет вопрос до корректного ответа; единственный выход
// из цикла без ответа — закрытие ввода (ErrInputClosed).
package console

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed — ввод закончился (EOF) во время вопроса.
var ErrInputClosed = errors.New("input closed")

// Сообщения о неверном вводе.
const (
	msgNotANumber = "Введите число"
	msgSkipHint   = "Enter — пропустить"
)

// Console читает ответы оператора и печатает сообщения.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New создаёт Console.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Println печатает строку.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf печатает форматированный текст.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// JSON печатает значение как JSON с отступом в 2 пробела.
func (c *Console) JSON(v any) {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(c.out, "<invalid json: %v>\n", err)
	}
}

// RawJSON печатает готовое JSON-тело с отступом; невалидный JSON — как текст.
func (c *Console) RawJSON(raw []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
		c.Println(string(raw))
		return
	}
	c.Println(buf.String())
}

// Ask печатает prompt и читает одну строку без перевода строки.
func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm задаёт вопрос y/n.
func (c *Console) Confirm(prompt string) (bool, error) {
	answer, err := c.Ask(prompt)
	if err != nil {
		return false, err
	}
	return ParseYes(answer), nil
}

// Choice — нумерованный список для выбора.
type Choice struct {
	Title      string   // заголовок над списком
	Options    []string // подписи вариантов
	Prompt     string   // вопрос, например "Выберите организацию"
	OutOfRange string   // сообщение для номера вне диапазона
	Optional   bool     // пустой ввод — пропуск
}

// Choose печатает список и возвращает 0-based индекс выбранного варианта.
// Для Optional-выбора пустой ввод возвращает ErrSkipped.
func (c *Console) Choose(ch Choice) (int, error) {
	c.Printf("\n%s\n", ch.Title)
	for i, opt := range ch.Options {
		c.Printf("%d. %s\n", i+1, opt)
	}

	prompt := fmt.Sprintf("\n%s (1-%d): ", ch.Prompt, len(ch.Options))
	if ch.Optional {
		prompt = fmt.Sprintf("\n%s (1-%d, %s): ", ch.Prompt, len(ch.Options), msgSkipHint)
	}

	for {
		input, err := c.Ask(prompt)
		if err != nil {
			return 0, err
		}

		var idx int
		if ch.Optional {
			idx, err = ParseOptionalSelection(input, len(ch.Options))
		} else {
			idx, err = ParseSelection(input, len(ch.Options))
		}

		switch {
		case err == nil:
			return idx, nil
		case errors.Is(err, ErrSkipped):
			return 0, ErrSkipped
		case errors.Is(err, ErrOutOfRange):
			c.Println(ch.OutOfRange)
		default:
			c.Println(msgNotANumber)
		}
	}
}
