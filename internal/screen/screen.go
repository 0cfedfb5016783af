// Package screen is the terminal presentation layer of the wallet.
//
// It renders snapshots, runs the add and reduce dialogs over a line based
// protocol and forwards confirmed dialogs to the wallet service. It only
// reads snapshots and never touches the balance or history directly.
package screen

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mmynk/vecwallet/internal/calculator"
	"github.com/mmynk/vecwallet/internal/models"
	"github.com/mmynk/vecwallet/internal/service"
)

const helpText = `Commands:
  +, add [amount]      add cash (prompts when no amount is given); +5 works too
  -, reduce [amount]   reduce cash (prompts when no amount is given); -5 works too
  summary              totals of all recorded changes
  help                 show this help
  quit                 leave`

// Screen drives one terminal session.
type Screen struct {
	svc    *service.WalletService
	format Formatter
	out    io.Writer
	logger *slog.Logger

	// dialog is the operation waiting for an amount, if any.
	dialog *calculator.Operation
	err    error
}

// New creates a screen writing to out.
func New(svc *service.WalletService, format Formatter, out io.Writer, logger *slog.Logger) *Screen {
	return &Screen{
		svc:    svc,
		format: format,
		out:    out,
		logger: logger,
	}
}

// Run renders the wallet and processes commands read from in until the user
// quits, in reaches EOF or ctx is cancelled.
//
// Lines are read on a separate goroutine and handed over a channel; every
// service call happens on the goroutine that called Run.
func (s *Screen) Run(ctx context.Context, in io.Reader) error {
	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	readErr := make(chan error, 1)
	go readLines(in, lines, readErr, done)

	unsubscribe := s.svc.Subscribe(s.Render)
	defer unsubscribe()

	s.Render(s.svc.Snapshot())
	s.prompt()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Session cancelled", "reason", ctx.Err())
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				s.logger.Debug("Input closed")
				return s.err
			}
			if quit := s.Handle(line); quit {
				return s.err
			}
			if s.err != nil {
				return fmt.Errorf("failed to write output: %w", s.err)
			}
			s.prompt()
		}
	}
}

func readLines(in io.Reader, lines chan<- string, errc chan<- error, done <-chan struct{}) {
	defer close(lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-done:
			errc <- nil
			return
		}
	}
	errc <- scanner.Err()
}

// Handle processes one input line and reports whether the session should end.
func (s *Screen) Handle(line string) (quit bool) {
	if s.dialog != nil {
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "cancel":
			s.dialog = nil
			s.println("Cancelled")
			return false
		case "quit", "exit", "q":
			s.dialog = nil
			s.println("Cancelled")
			return true
		case "help", "?":
			// The dialog stays open.
			s.println(helpText)
			return false
		}
		op := *s.dialog
		s.dialog = nil
		s.confirm(op, line)
		return false
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	// A sign glued to the amount ("+5", "-5") is the short form of "+ 5".
	if f := fields[0]; len(f) > 1 && (f[0] == '+' || f[0] == '-') {
		fields = append([]string{f[:1], f[1:]}, fields[1:]...)
	}
	cmd, rest := strings.ToLower(fields[0]), strings.Join(fields[1:], " ")
	s.logger.Debug("Command received", "command", cmd)

	switch cmd {
	case "+", "add":
		s.open(calculator.OpAdd, rest)
	case "-", "reduce":
		s.open(calculator.OpReduce, rest)
	case "summary":
		s.printSummary()
	case "help", "?":
		s.println(helpText)
	case "quit", "exit", "q":
		return true
	default:
		s.printf("Unknown command %q, type help\n", cmd)
	}
	return false
}

// Render prints the balance and the history list for snap.
func (s *Screen) Render(snap models.Snapshot) {
	s.println(s.format.Balance(snap.Balance))
	if snap.IsEmpty() {
		s.println(NoRecordsText)
		return
	}
	for _, e := range snap.History {
		s.printf("%4d. %s\n", e.Seq, FormatEntry(e))
	}
}

func (s *Screen) open(op calculator.Operation, amount string) {
	if amount != "" {
		s.confirm(op, amount)
		return
	}
	s.dialog = &op
	if op == calculator.OpReduce {
		s.println("Reduce from cash")
	} else {
		s.println("Add to cash")
	}
}

func (s *Screen) confirm(op calculator.Operation, text string) {
	balance, amount, result := s.svc.Preview(op, text)
	s.printf("%s %s %s = %s\n", balance.String(), op.Symbol(), amount.String(), result.String())
	// The subscription renders the new state.
	s.svc.Confirm(op, text)
}

func (s *Screen) printSummary() {
	sum := s.svc.Summary()
	s.printf("Added:   %s (%d)\n", s.format.Money(sum.Added), sum.Additions)
	s.printf("Reduced: %s (%d)\n", s.format.Money(sum.Reduced), sum.Reductions)
	s.printf("Net:     %s\n", s.format.Money(sum.Net))
}

func (s *Screen) prompt() {
	switch {
	case s.dialog == nil:
		s.printf("> ")
	case *s.dialog == calculator.OpReduce:
		s.printf("Reduce amount (cancel to dismiss)> ")
	default:
		s.printf("Add amount (cancel to dismiss)> ")
	}
}

func (s *Screen) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.out, format, args...)
}

func (s *Screen) println(text string) {
	s.printf("%s\n", text)
}
