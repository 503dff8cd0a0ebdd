package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	okText     = color.New(color.FgGreen, color.Bold).SprintFunc()
	errText    = color.New(color.FgRed, color.Bold).SprintFunc()
	warnText   = color.New(color.FgYellow).SprintFunc()
	titleText  = color.New(color.FgCyan, color.Bold).SprintFunc()
	bannerText = color.New(color.FgYellow).SprintFunc()
	headText   = color.New(color.BgBlue, color.Bold).SprintFunc()
)

// prompter reads console input with re-prompt-on-invalid loops. All
// reads are line based; EOF yields zero values so a closed stdin cannot
// spin forever.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(r), out: w}
}

func (p *prompter) line(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// text re-prompts until a non-empty line arrives.
func (p *prompter) text(prompt string) string {
	for {
		s, ok := p.line(prompt)
		if !ok {
			return ""
		}
		if s != "" {
			return s
		}
		fmt.Fprintln(p.out, errText("Input must not be empty. Please try again."))
	}
}

// optional returns the line as typed; empty means keep the current value.
func (p *prompter) optional(prompt string) string {
	s, _ := p.line(prompt)
	return s
}

// number re-prompts until a non-negative integer arrives.
func (p *prompter) number(prompt string) int {
	for {
		s, ok := p.line(prompt)
		if !ok {
			return 0
		}
		n, err := strconv.Atoi(s)
		if err == nil && n >= 0 {
			return n
		}
		fmt.Fprintln(p.out, errText("Please enter a valid number."))
	}
}

// amount re-prompts until a non-negative amount arrives.
func (p *prompter) amount(prompt string) float64 {
	for {
		s, ok := p.line(prompt)
		if !ok {
			return 0
		}
		v, err := strconv.ParseFloat(s, 64)
		if err == nil && v >= 0 {
			return v
		}
		fmt.Fprintln(p.out, errText("Please enter a valid amount."))
	}
}

func (p *prompter) confirm(prompt string) bool {
	s, _ := p.line(prompt + " (y/n): ")
	return strings.EqualFold(s, "y")
}

func (p *prompter) pause() {
	p.line("\nPress Enter to continue...")
}

func printMainHeader(w io.Writer) {
	fmt.Fprintln(w, bannerText(strings.Repeat("=", 50)))
	fmt.Fprintln(w, titleText(center("SMART PANDA RESTAURANT", 50)))
	fmt.Fprintln(w, bannerText(strings.Repeat("=", 50)))
}

func printSubHeader(w io.Writer, title string) {
	fmt.Fprintln(w, titleText(center(title, 50)))
	fmt.Fprintln(w, strings.Repeat("-", 50))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}

// formatCurrency renders an amount as $1,234.56. This is the only place
// monetary values are rounded to two decimals.
func formatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "$" + b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
