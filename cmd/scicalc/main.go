package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/zephyrtronium/scicalc"
)

func main() {
	var (
		inname, verb string
		echo, debug  bool
		digits       int
		mem          float64
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.IntVar(&digits, "digits", scicalc.DefaultDigits, "decimal places used for pi and e")
	flag.Float64Var(&mem, "m", 0, "initial memory register")
	flag.BoolVar(&echo, "echo", false, "print postfix form of each expression")
	flag.BoolVar(&debug, "v", false, "log session events")
	flag.Parse()

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	if digits <= 0 {
		log.Fatal().Int("digits", digits).Msg("digits must be positive")
	}

	var ins []io.Reader
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal().Err(err).Msg("no input")
	}
	if f != nil {
		defer f.Close()
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, strings.NewReader(arg))
	}

	s := scicalc.NewSession(scicalc.WithDigits(digits), scicalc.WithMemory(mem), scicalc.WithLogger(log))
	verb += "\n"
	for _, in := range ins {
		scan := bufio.NewScanner(in)
		for scan.Scan() {
			line := strings.TrimSpace(scan.Text())
			if line == "" {
				continue
			}
			if err := run(s, line, verb, echo); err != nil {
				log.Error().Err(err).Str("kind", scicalc.KindOf(err).String()).Msg("Error")
			}
		}
		if err := scan.Err(); err != nil {
			log.Fatal().Err(err).Msg("reading input")
		}
	}
}

// run handles one line of input. A line starting with ':' is a key; anything
// else is keyed into the expression, followed by equals.
func run(s *scicalc.Session, line, verb string, echo bool) error {
	if strings.HasPrefix(line, ":") {
		return key(s, line[1:], verb)
	}
	s.Input(line)
	return equals(s, verb, echo)
}

func equals(s *scicalc.Session, verb string, echo bool) error {
	if echo && s.Err() == nil {
		if e, err := scicalc.Parse(s.Expression()); err == nil {
			fmt.Printf("%v : ", e)
		}
	}
	r, err := s.Equals()
	if err != nil {
		fmt.Println(s.Display())
		return err
	}
	fmt.Printf(verb, r)
	return nil
}

func key(s *scicalc.Session, k, verb string) error {
	switch k {
	case "=":
		return equals(s, verb, false)
	case "c":
		s.ClearAll()
	case "bs":
		s.Backspace()
	case "neg":
		s.ToggleSign()
	case "pi", "e":
		if err := s.Constant(k); err != nil {
			return err
		}
	case "m+":
		if err := s.MemoryAdd(); err != nil {
			fmt.Println(s.Display())
			return err
		}
		fmt.Println(s.History())
		return nil
	case "mr":
		s.MemoryRecall()
	case "mc":
		s.MemoryClear()
		fmt.Println(s.History())
		return nil
	default:
		return errors.Errorf("unknown key %q", ":"+k)
	}
	fmt.Println(s.Display())
	return nil
}

// infile opens the input named by -in. Stdin is returned with a no-op Close.
func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
