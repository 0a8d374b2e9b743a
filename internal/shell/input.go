package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
)

// tokenReader yields whitespace-delimited tokens, like reading with `>>`.
type tokenReader struct {
	scanner *bufio.Scanner
}

func newTokenReader(in io.Reader) *tokenReader {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &tokenReader{scanner: scanner}
}

// next returns io.EOF once the input is exhausted.
func (r *tokenReader) next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (s *Shell) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(s.out, label)
	return s.in.next(ctx)
}

// promptFloat re-prompts until the token parses as a non-negative number.
func (s *Shell) promptFloat(ctx context.Context, label string) (float64, error) {
	for {
		token, err := s.prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(token, 64)
		if err == nil && value >= 0 {
			return value, nil
		}
		s.failure.Fprintln(s.out, "Invalid number. Please enter a non-negative number.")
	}
}

// promptCount re-prompts until the token parses as a non-negative integer.
func (s *Shell) promptCount(ctx context.Context, label string) (int, error) {
	for {
		token, err := s.prompt(ctx, label)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(token)
		if err == nil && value >= 0 {
			return value, nil
		}
		s.failure.Fprintln(s.out, "Invalid number. Please enter a non-negative whole number.")
	}
}
