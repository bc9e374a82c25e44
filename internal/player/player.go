package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dod-quiz/internal/model"
	"dod-quiz/internal/session"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	question lipgloss.Style
	choice   lipgloss.Style
	correct  lipgloss.Style
	wrong    lipgloss.Style
	warn     lipgloss.Style
	hint     lipgloss.Style
}

// newStyles binds the styles to out so colors are only emitted on terminals.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		question: r.NewStyle().Bold(true),
		choice:   r.NewStyle().Foreground(lipgloss.Color("12")),
		correct:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		wrong:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		warn:     r.NewStyle().Foreground(lipgloss.Color("11")),
		hint:     r.NewStyle().Faint(true),
	}
}

type Session interface {
	Start(ctx context.Context) (model.Quiz, error)
	Fetch(ctx context.Context) (model.Quiz, error)
	Submit(ctx context.Context, answer string) (model.Quiz, error)
	Snapshot() session.State
}

// Player runs one quiz session over a line-oriented terminal.
type Player struct {
	session Session
	in      *bufio.Scanner
	out     io.Writer
	styles  styles
	manual  bool
}

func New(s Session, in io.Reader, out io.Writer, manual bool) *Player {
	return &Player{session: s, in: bufio.NewScanner(in), out: out, styles: newStyles(out), manual: manual}
}

// Run loops until the input ends, the user quits, or ctx is done.
func (p *Player) Run(ctx context.Context) error {
	if p.manual {
		p.printf("%s\n", p.styles.hint.Render("type n to load a quiz, q to quit"))
	} else if _, err := p.session.Start(ctx); err != nil {
		p.printError(err)
	} else {
		p.render()
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.printf("> ")
		if !p.in.Scan() {
			return p.in.Err()
		}

		line := strings.TrimSpace(p.in.Text())
		switch line {
		case "":
			continue
		case "q", "quit":
			return nil
		case "n", "new":
			if _, err := p.session.Fetch(ctx); err != nil {
				p.printError(err)
				continue
			}
			p.render()
		default:
			p.answer(ctx, line)
		}
	}
}

func (p *Player) answer(ctx context.Context, line string) {
	st := p.session.Snapshot()
	answer := line
	if st.Quiz != nil {
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(st.Quiz.Choices) {
			answer = st.Quiz.Choices[n-1]
		}
	}

	if _, err := p.session.Submit(ctx, answer); err != nil {
		p.printError(err)
		return
	}

	if p.session.Snapshot().Success {
		p.printf("%s\n\n", p.styles.correct.Render("correct!"))
	} else {
		p.printf("%s\n\n", p.styles.wrong.Render("wrong."))
	}
	p.render()
}

func (p *Player) render() {
	st := p.session.Snapshot()
	if st.Quiz == nil {
		return
	}
	q := st.Quiz
	p.printf("%s\n", p.styles.question.Render(q.Question))
	if q.ImageSrc != "" {
		p.printf("%s\n", p.styles.hint.Render(q.ImageSrc))
	}
	for i, choice := range q.Choices {
		p.printf("  %d) %s\n", i+1, p.styles.choice.Render(choice))
	}
}

func (p *Player) printError(err error) {
	msg := err.Error()
	switch {
	case errors.Is(err, session.ErrNoQuiz):
		msg = "no quiz loaded, type n to fetch one"
	case errors.Is(err, session.ErrBusy):
		msg = "still waiting for the server"
	}
	p.printf("%s\n", p.styles.warn.Render("error: "+msg))
}

func (p *Player) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}
