package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/symcalc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, hist string
		with               [][2]string
		consts             []symcalc.ParseOption
		nl, echo, repl     bool
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=expr", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	addconst := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`constants must be "name=expr", not %q`, s)
		}
		v, err := symcalc.EvalString(d[1], nil)
		if err != nil {
			return fmt.Errorf("constant %s: %w", d[0], err)
		}
		consts = append(consts, symcalc.ParseFunc(strings.TrimSpace(d[0]), symcalc.Constant(v)))
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "numeric result formatting string")
	flag.Func("given", "name=expr variable definition (any number of times)", addwith)
	flag.Func("const", "name=expr named constant, evaluated once (any number of times)", addconst)
	flag.BoolVar(&nl, "n", true, "parse separate input lines as separate statements")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&repl, "i", false, "run an interactive session")
	flag.StringVar(&hist, "history", defaultHistory(), "history file for interactive sessions")
	flag.Parse()

	s := symcalc.NewSession(
		symcalc.WithSink(&symcalc.TableSink{W: os.Stdout, Format: verb}),
		symcalc.WithParseOptions(consts...),
	)
	for _, d := range with {
		nm := d[0]
		vl := d[1]
		if _, err := s.Run(nm + " := " + vl); err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
	}

	if repl {
		os.Exit(interact(s, verb, hist))
	}

	var ins []io.RuneScanner
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	verb += "\n"
	for _, in := range ins {
		for {
			src, err := statement(in, nl)
			if err != nil {
				if err == io.EOF {
					break
				}
				log.Fatal(err)
			}
			if strings.TrimSpace(src) == "" {
				continue
			}
			if echo {
				fmt.Printf("%s : ", strings.TrimSpace(src))
			}
			r, err := s.Run(src)
			if err != nil {
				fmt.Println(err)
				continue
			}
			show(r, verb)
		}
	}
}

// statement reads the next statement from in. In line mode, a statement is a
// line; otherwise it is the rest of the input.
func statement(in io.RuneScanner, lines bool) (string, error) {
	var b strings.Builder
	for {
		r, _, err := in.ReadRune()
		if err != nil {
			if err == io.EOF && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}
		if lines && r == '\n' {
			return b.String(), nil
		}
		b.WriteRune(r)
	}
}

// show prints a result. Numbers use the format verb; other trees print in
// infix form.
func show(r *symcalc.Node, verb string) {
	if r.Kind() == symcalc.KindNum {
		fmt.Printf(verb, r.Value())
		return
	}
	fmt.Println(r)
}

func interact(s *symcalc.Session, verb, hist string) int {
	fmt.Println("symcalc\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.")
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	verb += "\n"
	for {
		line, err := ln.Prompt("symcalc> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			fmt.Println()
			return 0
		}
		code := strings.TrimSpace(line)
		switch {
		case code == "":
			continue
		case code == ":quit":
			return 0
		case code == ":vars":
			if b, ok := s.Env().(*symcalc.Bindings); ok {
				for _, name := range b.Names() {
					v, _ := b.Get(name)
					fmt.Printf("%s := %v\n", name, v)
				}
			}
			ln.AppendHistory(code)
			continue
		case strings.HasPrefix(code, ":"):
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}
		r, err := s.Run(code)
		ln.AppendHistory(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		show(r, verb)
	}
}

func defaultHistory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".symcalc_history")
}

func infile(inname string, std bool) (io.RuneScanner, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return bufio.NewReader(f), nil
}
