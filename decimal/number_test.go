package decimal

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

type numberOp func(x, y Number) Number

func TestNumberArith(t *testing.T) {
	type TC struct {
		name   string
		op     numberOp
		x, y   string
		output string
		Mark   error
	}

	add, sub, mul, div := Number.Add, Number.Sub, Number.Mul, Number.Div

	tcs := []TC{
		{name: "+", op: add, x: "NaN", y: "1", output: "NaN", Mark: oops.New("unexpected")},
		{name: "+", op: add, x: "1", y: "nan", output: "NaN", Mark: oops.New("unexpected")},
		{name: "+", op: add, x: "inf", y: "-inf", output: "NaN", Mark: oops.New("unexpected")},
		{name: "+", op: add, x: "inf", y: "inf", output: "inf", Mark: oops.New("unexpected")},
		{name: "+", op: add, x: "-inf", y: "-inf", output: "-inf", Mark: oops.New("unexpected")},
		{name: "+", op: add, x: "inf", y: "5", output: "inf", Mark: oops.New("unexpected")},
		{name: "+", op: add, x: "5", y: "-inf", output: "-inf", Mark: oops.New("unexpected")},
		{name: "+", op: add, x: "1.5", y: "2.25", output: "3.75", Mark: oops.New("unexpected")},
		{name: "+", op: add, x: "9999999999999999999", y: "1", output: "inf", Mark: oops.New("unexpected")},

		{name: "-", op: sub, x: "inf", y: "inf", output: "NaN", Mark: oops.New("unexpected")},
		{name: "-", op: sub, x: "inf", y: "-inf", output: "inf", Mark: oops.New("unexpected")},
		{name: "-", op: sub, x: "5", y: "inf", output: "-inf", Mark: oops.New("unexpected")},
		{name: "-", op: sub, x: "-9999999999999999999", y: "1", output: "-inf", Mark: oops.New("unexpected")},
		{name: "-", op: sub, x: "3", y: "3", output: "0", Mark: oops.New("unexpected")},

		{name: "*", op: mul, x: "NaN", y: "inf", output: "NaN", Mark: oops.New("unexpected")},
		{name: "*", op: mul, x: "inf", y: "0", output: "inf", Mark: oops.New("unexpected")},
		{name: "*", op: mul, x: "-inf", y: "2", output: "-inf", Mark: oops.New("unexpected")},
		{name: "*", op: mul, x: "-inf", y: "-2", output: "inf", Mark: oops.New("unexpected")},
		{name: "*", op: mul, x: "inf", y: "-inf", output: "-inf", Mark: oops.New("unexpected")},
		{name: "*", op: mul, x: "2", y: "-inf", output: "-inf", Mark: oops.New("unexpected")},
		{name: "*", op: mul, x: "-1.5", y: "4", output: "-6", Mark: oops.New("unexpected")},
		{name: "*", op: mul, x: "-9999999999", y: "9999999999", output: "-inf", Mark: oops.New("unexpected")},

		{name: "/", op: div, x: "inf", y: "inf", output: "NaN", Mark: oops.New("unexpected")},
		{name: "/", op: div, x: "-inf", y: "inf", output: "NaN", Mark: oops.New("unexpected")},
		{name: "/", op: div, x: "inf", y: "-2", output: "-inf", Mark: oops.New("unexpected")},
		{name: "/", op: div, x: "inf", y: "0", output: "inf", Mark: oops.New("unexpected")},
		{name: "/", op: div, x: "5", y: "inf", output: "0", Mark: oops.New("unexpected")},
		{name: "/", op: div, x: "-5", y: "inf", output: "0", Mark: oops.New("unexpected")},
		{name: "/", op: div, x: "5", y: "0", output: "inf", Mark: oops.New("unexpected")},
		{name: "/", op: div, x: "-5", y: "0", output: "-inf", Mark: oops.New("unexpected")},
		{name: "/", op: div, x: "5", y: "-0", output: "inf", Mark: oops.New("unexpected")},
		{name: "/", op: div, x: "0", y: "0", output: "NaN", Mark: oops.New("unexpected")},
		{name: "/", op: div, x: "NaN", y: "0", output: "NaN", Mark: oops.New("unexpected")},
		{name: "/", op: div, x: "1", y: "3", output: "0.333333333333333333", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s %s %s", i, tc.x, tc.name, tc.y), func(t *testing.T) {
			x, err := Base10.ParseNumber(tc.x)
			require.NoError(t, err, tc.Mark)

			y, err := Base10.ParseNumber(tc.y)
			require.NoError(t, err, tc.Mark)

			z := tc.op(x, y)
			require.Equal(t, tc.output, z.String(), tc.Mark)
		})
	}
}

func TestParseNumber(t *testing.T) {
	type TC struct {
		input  string
		nan    bool
		inf    bool
		sign   Sign
		output string
		Mark   error
	}

	tcs := []TC{
		{input: "inf", inf: true, output: "inf", Mark: oops.New("unexpected")},
		{input: "+Inf", inf: true, output: "inf", Mark: oops.New("unexpected")},
		{input: "-INF", inf: true, sign: Negative, output: "-inf", Mark: oops.New("unexpected")},
		{input: "nan", nan: true, output: "NaN", Mark: oops.New("unexpected")},
		{input: "NaN", nan: true, output: "NaN", Mark: oops.New("unexpected")},
		{input: "-12.5", sign: Negative, output: "-12.5", Mark: oops.New("unexpected")},
		{input: "0", output: "0", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			n, err := Base10.ParseNumber(tc.input)
			require.NoError(t, err, tc.Mark)

			require.Equal(t, tc.nan, n.IsNaN(), tc.Mark)
			require.Equal(t, tc.inf, n.IsInf(), tc.Mark)
			require.Equal(t, !tc.nan && !tc.inf, n.IsFinite(), tc.Mark)
			require.Equal(t, tc.sign, n.Sign(), tc.Mark)
			require.Equal(t, tc.output, n.String(), tc.Mark)

			text, err := n.MarshalText()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.output, string(text), tc.Mark)

			f, ok := n.Finite()
			require.Equal(t, n.IsFinite(), ok, tc.Mark)

			if ok {
				require.Equal(t, tc.output, f.String(), tc.Mark)
			}
		})
	}

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "infinity", "-nan", "1.2.3"} {
			_, err := Base10.ParseNumber(s)
			require.Error(t, err, s)
			require.True(t, Error.Has(err), s)
		}
	})
}

func TestNumberCmp(t *testing.T) {
	ordered := []string{"-inf", "-100", "-0.5", "0", "0.001", "7", "inf"}

	for i := range ordered {
		for j := range ordered {
			x, err := Base10.ParseNumber(ordered[i])
			require.NoError(t, err)

			y, err := Base10.ParseNumber(ordered[j])
			require.NoError(t, err)

			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}

			c, ok := x.Cmp(y)
			require.True(t, ok, "%s <=> %s", ordered[i], ordered[j])
			require.Equal(t, want, c, "%s <=> %s", ordered[i], ordered[j])
			require.Equal(t, want == 0, x.Equal(y), "%s == %s", ordered[i], ordered[j])
			require.Equal(t, want < 0, x.Less(y), "%s < %s", ordered[i], ordered[j])
		}
	}

	t.Run("unordered", func(t *testing.T) {
		for _, s := range append(ordered, "nan") {
			x, err := Base10.ParseNumber(s)
			require.NoError(t, err)

			_, ok := x.Cmp(NaN())
			require.False(t, ok, s)

			_, ok = NaN().Cmp(x)
			require.False(t, ok, s)

			require.False(t, x.Equal(NaN()), s)
			require.False(t, NaN().Less(x), s)
			require.False(t, x.Less(NaN()), s)
		}
	})
}

func TestNumberNeg(t *testing.T) {
	require.Equal(t, "-inf", Inf(Positive).Neg().String())
	require.Equal(t, "inf", Inf(Negative).Neg().String())
	require.Equal(t, "NaN", NaN().Neg().String())
	require.Equal(t, "-2", NewNumber(Base10.MustParse("2")).Neg().String())
	require.Equal(t, "0", NewNumber(Base10.Zero()).Neg().String())
}

func TestNumberZeroValue(t *testing.T) {
	var n Number

	require.True(t, n.IsNaN())
	require.Equal(t, Positive, n.Sign())
	require.Equal(t, "NaN", n.String())

	_, ok := n.Finite()
	require.False(t, ok)
}
