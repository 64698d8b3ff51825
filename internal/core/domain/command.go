package domain

import (
	"strconv"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Command describes one invocation of an external program.
type Command struct {
	Name string
	Args []string
	// Env holds "KEY=VALUE" entries layered over the process environment.
	Env []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Quiet skips the executor's "Running" line when the caller has announced the command itself.
	Quiet bool
}

// NewCommand returns a Command running name with args.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// Argv returns the full argument vector including the program name.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String renders the command as a POSIX shell line for logs.
func (c Command) String() string {
	argv := c.Argv()
	parts := make([]string, len(argv))
	for i, a := range argv {
		parts[i] = quoteArg(a)
	}
	return strings.Join(parts, " ")
}

// shellMeta are the characters that force quoting; '=' alone does not.
const shellMeta = " \t\r\n'\"\\$;&|<>()`*?[#~{"

func quoteArg(a string) string {
	if a != "" && !strings.ContainsAny(a, shellMeta) {
		return a
	}
	q, err := syntax.Quote(a, syntax.LangPOSIX)
	if err != nil {
		return strconv.Quote(a)
	}
	return q
}
