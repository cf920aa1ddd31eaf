package sequence_test

import (
	"context"
	"fmt"

	"github.com/agbru/fibseq/internal/sequence"
)

// ExampleGenerate demonstrates the fixed demonstration run: the first 10
// terms and their sum.
func ExampleGenerate() {
	seq := sequence.Generate(10)
	fmt.Println(seq)
	fmt.Println(sequence.Sum(seq))
	// Output:
	// [0 1 1 2 3 5 8 13 21 34]
	// 88
}

// ExampleGenerate_edgeCases shows the branch cases for small counts.
func ExampleGenerate_edgeCases() {
	fmt.Println(sequence.Generate(-1))
	fmt.Println(sequence.Generate(0))
	fmt.Println(sequence.Generate(1))
	fmt.Println(sequence.Generate(2))
	// Output:
	// []
	// []
	// [0]
	// [0 1]
}

// ExampleGenerator demonstrates the context-aware generator used by the
// interactive modes.
func ExampleGenerator() {
	g := sequence.NewGenerator(nil)
	seq, err := g.Generate(context.Background(), 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(seq)
	// Output:
	// [0 1 1 2 3]
}
