package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

type step struct {
	line int
	op   string
	args []string
}

// argument count per op
var arity = map[string]int{
	"begin":      0,
	"set":        2,
	"analog":     2,
	"mux-set":    3,
	"mux-analog": 3,
	"wait":       1,
	"poll":       0,
	"run":        1,
}

func parseScript(r io.Reader) ([]step, error) {
	var steps []step
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		fields, err := shlex.Split(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if len(fields) == 0 {
			continue
		}
		s := step{line: n, op: strings.ToLower(fields[0]), args: fields[1:]}
		want, ok := arity[s.op]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown op %q", n, s.op)
		}
		if len(s.args) != want {
			return nil, fmt.Errorf("line %d: %s takes %d argument(s), got %d", n, s.op, want, len(s.args))
		}
		steps = append(steps, s)
	}
	return steps, sc.Err()
}

func parseLevel(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "high", "1", "on":
		return true, nil
	case "low", "0", "off":
		return false, nil
	}
	return false, fmt.Errorf("bad level %q", s)
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
