package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"chessEval/chessnode"
	"chessEval/heuristics"
	"chessEval/moveorder"

	"github.com/notnil/chess"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	var (
		fen         string
		maxSide     string
		order       string
		workers     int
		weightsPath string
		verbose     bool
	)
	flag.StringVar(&fen, "fen", startFEN, "position to analyse")
	flag.StringVar(&maxSide, "max", "turn", "maximizing side: white, black or turn")
	flag.StringVar(&order, "order", "buckets", "move ordering: buckets or rank")
	flag.IntVar(&workers, "workers", 1, "parallel evaluations for rank ordering")
	flag.StringVar(&weightsPath, "weights", "", "JSON file overriding evaluation weights")
	flag.BoolVar(&verbose, "v", false, "log every evaluation")
	flag.Parse()

	evaluator := heuristics.NewEvaluator()
	if weightsPath != "" {
		w, err := heuristics.LoadWeights(weightsPath)
		if err != nil {
			log.Fatal(err)
		}
		evaluator.Weights = w
	}
	if verbose {
		evaluator.Logger = log.New(os.Stderr, "", log.Lmicroseconds)
	}

	pos, err := chessnode.ParseFEN(fen)
	if err != nil {
		log.Fatal(err)
	}
	maxColor, err := parseSide(maxSide, pos.Turn())
	if err != nil {
		log.Fatal(err)
	}
	root := chessnode.Root(pos, maxColor)

	var orderer moveorder.Orderer
	switch order {
	case "buckets":
		orderer = moveorder.BucketOrderer{}
	case "rank":
		orderer = moveorder.RankOrderer{Evaluator: evaluator, Workers: workers}
	default:
		log.Fatalf("unknown ordering %q", order)
	}

	if err := analyse(root, evaluator, orderer); err != nil {
		log.Fatal(err)
	}
}

func parseSide(s string, turn chess.Color) (chess.Color, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	case "turn", "":
		return turn, nil
	}
	return chess.NoColor, fmt.Errorf("unknown side %q", s)
}

func analyse(root *chessnode.Node, evaluator *heuristics.Evaluator, orderer moveorder.Orderer) error {
	f, err := evaluator.Features(root)
	if err != nil {
		return err
	}
	fmt.Printf("position  %s\n", root.Position())
	fmt.Printf("max       %v\n", root.Game().MaxPlayer())
	fmt.Printf("score     %.3f\n", f.Score(evaluator.Weights))
	fmt.Printf("  material %.2f  mobility %.0f  center %.2f  development %.2f  promotion %.0f\n",
		f.Material, f.Mobility, f.Center, f.Development, f.Promotion)

	children, err := orderer.Order(chessnode.Nodes(root.Children()))
	if err != nil {
		return err
	}
	fmt.Printf("%d moves\n", len(children))
	for i, c := range children {
		score, err := evaluator.Evaluate(c)
		if err != nil {
			return err
		}
		fmt.Printf("%3d  %-6v %-9v %8.3f\n", i+1, c, moveorder.Classify(c.Move()), score)
	}
	return nil
}
