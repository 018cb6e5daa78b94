// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gaussjordan/loader"
)

// stdinPath selects standard input as the system source.
const stdinPath = "-"

const promptText = "Enter the file name containing the N x (N+1) matrix: "

// ErrNoInput is returned when no file name was given at the prompt.
var ErrNoInput = errors.New("no input file given")

// resolvePath returns the file argument, or asks for one.
// On a terminal the prompt uses readline (history, line editing); otherwise a
// single line is read from the command's input and the prompt goes to stderr.
func resolvePath(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && f == os.Stdin && isTerminal(f) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          promptText,
			InterruptPrompt: "^C",
			EOFPrompt:       "exit",
		})
		if err != nil {
			return "", fmt.Errorf("failed to initialize prompt: %w", err)
		}
		defer func() { _ = rl.Close() }()

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		if err != nil {
			return "", err
		}
		return nonEmpty(line)
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), promptText)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	return nonEmpty(line)
}

func nonEmpty(line string) (string, error) {
	path := strings.TrimSpace(line)
	if path == "" {
		return "", ErrNoInput
	}

	return path, nil
}

// readRows parses the system at path ("-" reads the command's input).
func readRows(cmd *cobra.Command, path string) ([][]float64, error) {
	if path == stdinPath {
		rows, err := loader.Parse(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return rows, nil
	}

	return loader.ReadFile(path)
}

// explainShape turns loader shape errors into the messages users know.
func explainShape(path string, err error) error {
	switch {
	case errors.Is(err, loader.ErrEmpty):
		return fmt.Errorf("%s: there were zero rows of numbers in your text file: %w", path, err)
	case errors.Is(err, loader.ErrRagged), errors.Is(err, loader.ErrNotAugmented):
		return fmt.Errorf("%s: the provided matrix of numbers is not an N x (N+1) matrix: %w", path, err)
	}

	return fmt.Errorf("%s: %w", path, err)
}
