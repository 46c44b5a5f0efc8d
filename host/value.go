package host

import (
	"encoding/hex"
	"log/slog"
	"math/big"

	"github.com/OdomarTrindade/btcdeb/lang"
)

// Predefined errors (sentinel values).
var (
	ErrBadLiteral = lang.NewError("malformed literal")
	ErrDivByZero  = lang.NewError("division by zero")
	ErrNegative   = lang.NewError("arithmetic result is negative")
	ErrArgCount   = lang.NewError("wrong number of arguments")
)

// Format renders a byte vector the way script tooling prints stack
// elements: lowercase hex with a 0x prefix, where the empty vector is the
// canonical zero.
func Format(value []byte) string {
	if len(value) == 0 {
		return "0x"
	}

	return "0x" + hex.EncodeToString(value)
}

// decode materializes literal text as a byte vector.
//
// Decimal and binary literals encode as the minimal big-endian
// representation of their integer value, hex literals decode digit-for-
// digit (an odd digit count gets a leading zero nibble), and string
// literals are their raw bytes. Zero encodes as the empty vector.
func decode(text string, kind, restriction lang.Kind) ([]byte, error) {
	switch {
	case kind == lang.KindString:
		return []byte(text), nil

	case restriction == lang.KindHex:
		if len(text)%2 == 1 {
			text = "0" + text
		}

		data, err := hex.DecodeString(text)
		if err != nil {
			return nil, ErrBadLiteral.Wrap(err)
		}

		return data, nil

	case restriction == lang.KindBin:
		return decodeInt(text, 2)

	case kind == lang.KindNumber:
		return decodeInt(text, 10)
	}

	return nil, ErrBadLiteral.With(slog.String("kind", kind.String()))
}

func decodeInt(text string, base int) ([]byte, error) {
	n, ok := new(big.Int).SetString(text, base)
	if !ok {
		return nil, ErrBadLiteral.With(slog.String("text", text))
	}

	return n.Bytes(), nil
}

// arith applies an arithmetic operator to two vectors interpreted as
// unsigned big-endian integers. Division truncates toward zero.
func arith(op lang.Kind, a, b []byte) ([]byte, error) {
	x := new(big.Int).SetBytes(a)
	y := new(big.Int).SetBytes(b)

	switch op {
	case lang.KindPlus:
		x.Add(x, y)

	case lang.KindMinus:
		x.Sub(x, y)
		if x.Sign() < 0 {
			return nil, ErrNegative
		}

	case lang.KindMul:
		x.Mul(x, y)

	case lang.KindDiv:
		if y.Sign() == 0 {
			return nil, ErrDivByZero
		}

		x.Quo(x, y)

	default:
		return nil, ErrBadOperator.With(slog.String("op", op.String()))
	}

	return x.Bytes(), nil
}

// neg negates a vector. Values are unsigned, so only zero survives.
func neg(v []byte) ([]byte, error) {
	if new(big.Int).SetBytes(v).Sign() != 0 {
		return nil, ErrNegative
	}

	return nil, nil
}

// builtins are the functions every new environment starts with.
var builtins = map[string]Func{
	"len": fnLen,
	"cat": fnCat,
	"rev": fnRev,
	"hex": fnHex,
}

// fnLen returns the byte length of its single argument as an integer.
func fnLen(args [][]byte) ([]byte, error) {
	if len(args) != 1 {
		return nil, ErrArgCount.With(slog.String("func", "len"))
	}

	return new(big.Int).SetInt64(int64(len(args[0]))).Bytes(), nil
}

// fnCat concatenates all arguments in order.
func fnCat(args [][]byte) ([]byte, error) {
	var out []byte
	for _, arg := range args {
		out = append(out, arg...)
	}

	return out, nil
}

// fnRev returns its single argument with the byte order reversed.
func fnRev(args [][]byte) ([]byte, error) {
	if len(args) != 1 {
		return nil, ErrArgCount.With(slog.String("func", "rev"))
	}

	in := args[0]
	out := make([]byte, len(in))

	for i, b := range in {
		out[len(in)-1-i] = b
	}

	return out, nil
}

// fnHex returns the ASCII hex encoding of its single argument.
func fnHex(args [][]byte) ([]byte, error) {
	if len(args) != 1 {
		return nil, ErrArgCount.With(slog.String("func", "hex"))
	}

	return []byte(hex.EncodeToString(args[0])), nil
}
