package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/studmoney/internal/model"
	"github.com/shopspring/decimal"
)

// ExpensePrompter asks for an expense field by field on a terminal.
type ExpensePrompter struct {
	reader *LineReader
	out    io.Writer
	today  model.Date
}

// NewExpensePrompter creates a prompter reading from in and writing prompts to out.
func NewExpensePrompter(in io.Reader, out io.Writer, now time.Time) *ExpensePrompter {
	return &ExpensePrompter{
		reader: NewLineReader(in),
		out:    out,
		today:  model.DateOf(now),
	}
}

func (p *ExpensePrompter) ask(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, FormatPrompt(prompt)); err != nil {
		return "", err
	}
	return p.reader.ReadLine(ctx)
}

// askUntil re-prompts until parse accepts the answer.
func (p *ExpensePrompter) askUntil(ctx context.Context, prompt string, parse func(string) error) (string, error) {
	for {
		answer, err := p.ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		if perr := parse(answer); perr != nil {
			fmt.Fprintln(p.out, FormatError(perr.Error()))
			continue
		}
		return answer, nil
	}
}

// PromptExpense collects a complete input. Fields already set in seed are
// not asked for again.
func (p *ExpensePrompter) PromptExpense(ctx context.Context, seed model.ExpenseInput) (model.ExpenseInput, error) {
	in := seed

	if strings.TrimSpace(in.Title) == "" {
		title, err := p.askUntil(ctx, "Title", func(s string) error {
			if s == "" {
				return fmt.Errorf("title is required")
			}
			return nil
		})
		if err != nil {
			return in, err
		}
		in.Title = title
	}

	if !in.Amount.IsPositive() {
		var amount decimal.Decimal
		_, err := p.askUntil(ctx, "Amount", func(s string) error {
			d, perr := model.ParseAmount(s)
			if perr != nil || !d.IsPositive() {
				return fmt.Errorf("enter a positive number")
			}
			amount = d
			return nil
		})
		if err != nil {
			return in, err
		}
		in.Amount = amount
	}

	if _, ok := model.ParseCategory(in.Category); !ok {
		fmt.Fprintln(p.out, CategoryMenu())
		var category model.Category
		_, err := p.askUntil(ctx, "Category", func(s string) error {
			c, perr := ChooseCategory(s)
			category = c
			return perr
		})
		if err != nil {
			return in, err
		}
		in.Category = string(category)
	}

	if in.Date == "" {
		answer, err := p.askUntil(ctx, fmt.Sprintf("Date [%s]", p.today), func(s string) error {
			if s == "" {
				return nil
			}
			_, perr := model.ParseDate(s)
			return perr
		})
		if err != nil {
			return in, err
		}
		in.Date = answer
		if in.Date == "" {
			in.Date = p.today.String()
		}
	}

	if in.Description == "" {
		desc, err := p.ask(ctx, "Description (optional)")
		if err != nil {
			return in, err
		}
		in.Description = desc
	}

	return in, nil
}

// CategoryMenu lists the categories with their menu numbers.
func CategoryMenu() string {
	var b strings.Builder
	for i, c := range model.Categories() {
		fmt.Fprintf(&b, "  %d. %s %s\n", i+1, c.Icon(), c)
	}
	return strings.TrimRight(b.String(), "\n")
}

// ChooseCategory accepts a menu number or a category name.
func ChooseCategory(answer string) (model.Category, error) {
	cats := model.Categories()
	if n, err := strconv.Atoi(strings.TrimSpace(answer)); err == nil {
		if n >= 1 && n <= len(cats) {
			return cats[n-1], nil
		}
		return model.CategoryUnknown, fmt.Errorf("choose a number between 1 and %d", len(cats))
	}
	if c, ok := model.ParseCategory(answer); ok {
		return c, nil
	}
	return model.CategoryUnknown, fmt.Errorf("unknown category %q", answer)
}
