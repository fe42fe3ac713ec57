// cmd/symcalc-run/main.go — YAML scenario runner for symcalc
//
// Reads a scenario file and prints a transcript of engine calls:
//
//   name: smoke
//   steps:
//     - label: fold a sum
//       op: simplify
//       expr: {type: add, left: {type: num, value: "3"}, right: {type: num, value: "5"}}
//     - op: diff
//       var: x
//       expr: {type: pow, left: {type: sym, name: x}, right: {type: num, value: "3"}}
//
// Usage:
//   go run cmd/symcalc-run/main.go scenario.yaml
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jsccast/yaml"

	symcalc "github.com/njchilds90/symcalc"
)

// This YAML codec decodes nested maps as map[string]interface{}, so step
// expressions feed symcalc.FromMap directly.
type scenario struct {
	Name  string `yaml:"name"`
	Steps []step `yaml:"steps"`
}

type step struct {
	Label  string                 `yaml:"label,omitempty"`
	Op     string                 `yaml:"op"`
	Expr   map[string]interface{} `yaml:"expr"`
	Other  map[string]interface{} `yaml:"other,omitempty"`
	Var    string                 `yaml:"var,omitempty"`
	Symbol string                 `yaml:"symbol,omitempty"`
	Value  string                 `yaml:"value,omitempty"`
}

func runStep(a *symcalc.Arena, s step) (string, error) {
	h, err := a.FromMap(s.Expr)
	if err != nil {
		return "", err
	}
	switch s.Op {
	case "render":
		return a.String(h), nil

	case "dump":
		return a.DumpTree(h), nil

	case "simplify":
		r, err := a.Simplify(h)
		if err != nil {
			return "", err
		}
		return a.String(r), nil

	case "diff", "int":
		if s.Var == "" {
			return "", fmt.Errorf("op %s needs var", s.Op)
		}
		var d symcalc.Handle
		if s.Op == "diff" {
			d, err = a.Diff(h, s.Var)
		} else {
			d, err = a.Integral(h, s.Var)
		}
		if err != nil {
			return "", err
		}
		r, err := a.Simplify(d)
		if err != nil {
			return "", err
		}
		return a.String(r), nil

	case "subst":
		r, err := a.Substitute(h, s.Symbol, s.Value)
		if err != nil {
			return "", err
		}
		return a.String(r), nil

	case "eval":
		r, err := a.Eval(h, s.Symbol, s.Value)
		if err != nil {
			return "", err
		}
		return a.String(r), nil

	case "evalnum":
		v, err := a.EvalNumeric(h)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%f", v), nil

	case "equal":
		if s.Other == nil {
			return "", fmt.Errorf("op equal needs other")
		}
		o, err := a.FromMap(s.Other)
		if err != nil {
			return "", err
		}
		if a.Equal(h, o) {
			return "TRUE", nil
		}
		return "FALSE", nil
	}
	return "", fmt.Errorf("unknown op %q", s.Op)
}

func main() {
	log.SetFlags(0)
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s scenario.yaml", os.Args[0])
	}

	body, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	var sc scenario
	if err := yaml.Unmarshal(body, &sc); err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
	if len(sc.Steps) == 0 {
		log.Fatalf("%s: no steps", os.Args[1])
	}

	fmt.Println("----------------------------------------------------")
	fmt.Printf(" Scenario: %s\n", sc.Name)
	fmt.Println("----------------------------------------------------")

	a := symcalc.NewArena()
	failed := 0
	for i, s := range sc.Steps {
		label := s.Label
		if label == "" {
			label = fmt.Sprintf("step %d", i+1)
		}
		out, err := runStep(a, s)
		if err != nil {
			failed++
			fmt.Printf("%s: %s: error: %v\n", label, s.Op, err)
			continue
		}
		fmt.Printf("%s: %s = %s\n", label, s.Op, out)
	}
	if failed > 0 {
		log.Fatalf("%d of %d steps failed", failed, len(sc.Steps))
	}
}
