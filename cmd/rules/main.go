package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/acarl005/stripansi"
	"github.com/cricklet/chessrules/internal/game"
	. "github.com/cricklet/chessrules/internal/helpers"
	"github.com/cricklet/chessrules/internal/referee"
	"github.com/cricklet/chessrules/internal/rules"
	"github.com/pkg/profile"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
)

func usage() {
	fmt.Println("usage:")
	fmt.Println(" > rules status <fen>")
	fmt.Println(" > rules check <fen>")
	fmt.Println(" > rules moves <square> <fen>")
	fmt.Println(" > rules validate <start> <end> [promotion] -- <fen>")
	fmt.Println(" > rules bench <fen file> [profile]")
}

func printBoard(b BoardArray) {
	s := b.Unicode()
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		s = stripansi.Strip(s)
	}
	fmt.Println(s)
}

func status(fen string) Error {
	g, err := game.GamestateFromFenString(fen)
	if !IsNil(err) {
		return err
	}
	s, err := g.Status()
	if !IsNil(err) {
		return err
	}

	printBoard(g.Board)
	fmt.Println(g.Player, "to move:", s)
	return NilError
}

func moves(square string, fen string) Error {
	g, err := game.GamestateFromFenString(fen)
	if !IsNil(err) {
		return err
	}
	start, err := SquareFromString(square)
	if !IsNil(err) {
		return err
	}
	result, err := g.LegalMovesFrom(start)
	if !IsNil(err) {
		return err
	}

	printBoard(g.Board)
	for _, m := range result {
		fmt.Println(m)
	}
	return NilError
}

func check(fen string) Error {
	g, err := game.GamestateFromFenString(fen)
	if !IsNil(err) {
		return err
	}
	for _, player := range []Player{White, Black} {
		inCheck, err := rules.IsInCheck(&g.Board, player)
		if !IsNil(err) {
			return err
		}
		fmt.Println(player, "in check:", inCheck)
	}
	return NilError
}

// validate plays start-end (and an optional promotion) through a referee set up
// at fen, printing the resulting position.
func validate(args []string, fen string) Error {
	r, err := referee.NewReferee(
		referee.WithStartFen(fen),
		referee.WithLogger(FuncLogger(func(s string) {
			fmt.Fprint(os.Stderr, s)
		})))
	if !IsNil(err) {
		return err
	}

	promotion := ""
	if len(args) > 2 {
		promotion = args[2]
	}
	err = r.PerformMoveFromSquares(args[0], args[1], promotion)
	if !IsNil(err) {
		return err
	}

	s, err := r.Status()
	if !IsNil(err) {
		return err
	}
	printBoard(r.Board())
	fmt.Println(r.FenString())
	fmt.Println(r.Player(), "to move:", s)
	return NilError
}

func readFens(path string) ([]string, Error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Wrap(err)
	}
	defer f.Close()

	fens := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return WrapReturn(fens, scanner.Err())
}

func bench(path string) Error {
	fens, err := readFens(path)
	if !IsNil(err) {
		return err
	}

	bar := CreateProgressBar(os.Stderr, int(os.Stderr.Fd()), len(fens), "status")
	counts := map[rules.GameStatus]int{}
	failures := []Error{}

	start := time.Now()
	for _, fen := range fens {
		g, err := game.GamestateFromFenString(fen)
		if IsNil(err) {
			var s rules.GameStatus
			s, err = g.Status()
			if IsNil(err) {
				counts[s]++
			}
		}
		if !IsNil(err) {
			failures = append(failures, err)
		}
		bar.Add(1)
	}
	bar.Close()

	fmt.Println(RateSummary(len(fens), "positions", time.Since(start)))
	for _, s := range []rules.GameStatus{rules.Ongoing, rules.Check, rules.Checkmate, rules.Stalemate} {
		fmt.Printf("%10v %v\n", s, counts[s])
	}
	if len(failures) > 0 {
		return Join(failures...)
	}
	return NilError
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
		}
	}()

	args := os.Args[1:]

	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath("."))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	if len(args) == 0 {
		usage()
		return
	}

	var err Error
	switch {
	case args[0] == "status" && len(args) > 1:
		err = status(strings.Join(args[1:], " "))
	case args[0] == "moves" && len(args) > 2:
		err = moves(args[1], strings.Join(args[2:], " "))
	case args[0] == "check" && len(args) > 1:
		err = check(strings.Join(args[1:], " "))
	case args[0] == "validate" && Contains(args, "--"):
		split := slices.Index(args, "--")
		if split < 3 {
			usage()
			return
		}
		err = validate(args[1:split], strings.Join(args[split+1:], " "))
	case args[0] == "bench" && len(args) > 1:
		err = bench(args[1])
	default:
		usage()
		return
	}

	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err.Message())
		os.Exit(1)
	}
}
