package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"

	"symex/algebra"
	"symex/store"
)

const storeDir = "exprs"

func main() {
	st, err := store.New(osfs.New("."), storeDir)
	if err != nil {
		log.Fatal(err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			return
		}

		out, err := handleLine(st, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		fmt.Println(out)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "error reading input:", err)
	}
}

func handleLine(st *store.Store, line string) (string, error) {
	command, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch command {
	case "eval":
		bindingsPart, exprPart, ok := strings.Cut(rest, " ")
		if !ok {
			return "", fmt.Errorf("usage: eval name=value[,name=value...] <expr>")
		}
		bindings, err := parseBindings(bindingsPart)
		if err != nil {
			return "", err
		}
		expr, err := algebra.Parse(exprPart)
		if err != nil {
			return "", err
		}
		result, err := expr.Evaluate(bindings)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(result, 'g', -1, 64), nil

	case "deriv":
		name, exprPart, ok := strings.Cut(rest, " ")
		if !ok {
			return "", fmt.Errorf("usage: deriv <variable> <expr>")
		}
		expr, err := algebra.Parse(exprPart)
		if err != nil {
			return "", err
		}
		derivative, err := expr.Derivative(name)
		if err != nil {
			return "", err
		}
		return derivative.Simplify().String(), nil

	case "simplify":
		expr, err := algebra.Parse(rest)
		if err != nil {
			return "", err
		}
		return expr.Simplify().String(), nil

	case "save":
		expr, err := algebra.Parse(rest)
		if err != nil {
			return "", err
		}
		return st.Save(expr)

	case "load":
		expr, err := st.Load(rest)
		if err != nil {
			return "", err
		}
		return expr.String(), nil

	case "list":
		ids, err := st.List()
		if err != nil {
			return "", err
		}
		return strings.Join(ids, "\n"), nil
	}

	// Anything else is an expression; echo its rendered form.
	expr, err := algebra.Parse(line)
	if err != nil {
		return "", err
	}
	return expr.String(), nil
}

func parseBindings(s string) (map[string]float64, error) {
	bindings := map[string]float64{}
	for _, pair := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed binding '%s', want name=value", pair)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed binding value '%s'", value)
		}
		bindings[name] = v
	}

	return bindings, nil
}
