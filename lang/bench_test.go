package lang

import (
	"context"
	"testing"
)

const benchInput = `result = hash(preimage || salt, 0x1F2E3D4C) + (len(preimage) - 1) * 2`

func BenchmarkTokenize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := Tokenize(benchInput)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseString(b *testing.B) {
	ctx := context.Background()

	for i := 0; i < b.N; i++ {
		_, err := ParseString(ctx, benchInput)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEval(b *testing.B) {
	node, err := ParseString(context.Background(), benchInput)
	if err != nil {
		b.Fatal(err)
	}

	rec := &recorder{}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rec.calls = rec.calls[:0]

		_, err := node.Eval(rec)
		if err != nil {
			b.Fatal(err)
		}
	}
}
