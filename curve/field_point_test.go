package curve

import (
	"math/big"
	"testing"

	"github.com/izouxv/goEcc/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prime223 = 223

func fp(t *testing.T, num int64) field.FieldElement {
	t.Helper()
	e, err := field.NewInt64(num, prime223)
	require.NoError(t, err)
	return e
}

// fpt returns a point on y² = x³ + 7 over F_223.
func fpt(t *testing.T, x, y int64) Point[field.FieldElement] {
	t.Helper()
	p, err := New(fp(t, x), fp(t, y), fp(t, 0), fp(t, 7))
	require.NoError(t, err)
	return p
}

func TestFieldPointCreation(t *testing.T) {
	for _, c := range [][2]int64{{192, 105}, {17, 56}, {1, 193}} {
		_, err := New(fp(t, c[0]), fp(t, c[1]), fp(t, 0), fp(t, 7))
		assert.NoError(t, err, "(%d, %d)", c[0], c[1])
	}
	for _, c := range [][2]int64{{200, 119}, {42, 99}} {
		_, err := New(fp(t, c[0]), fp(t, c[1]), fp(t, 0), fp(t, 7))
		assert.ErrorIs(t, err, ErrNotOnCurve, "(%d, %d)", c[0], c[1])
	}
}

func TestFieldPointString(t *testing.T) {
	assert.Equal(t,
		"Point(FieldElement_223(192), FieldElement_223(105))_FieldElement_223(0)_FieldElement_223(7)",
		fpt(t, 192, 105).String())
}

func TestAddField(t *testing.T) {
	tests := []struct {
		p, q, want [2]int64
	}{
		{[2]int64{192, 105}, [2]int64{17, 56}, [2]int64{170, 142}},
		{[2]int64{170, 142}, [2]int64{60, 139}, [2]int64{220, 181}},
		{[2]int64{47, 71}, [2]int64{17, 56}, [2]int64{215, 68}},
		{[2]int64{143, 98}, [2]int64{76, 66}, [2]int64{47, 71}},
		{[2]int64{192, 105}, [2]int64{192, 105}, [2]int64{49, 71}},
		{[2]int64{143, 98}, [2]int64{143, 98}, [2]int64{64, 168}},
		{[2]int64{47, 71}, [2]int64{47, 71}, [2]int64{36, 111}},
	}
	for _, tt := range tests {
		got, err := Add(fpt(t, tt.p[0], tt.p[1]), fpt(t, tt.q[0], tt.q[1]))
		require.NoError(t, err)
		want := fpt(t, tt.want[0], tt.want[1])
		assert.True(t, want.Equal(got), "%v + %v: got %s", tt.p, tt.q, got)
	}
}

func TestAddFieldLaws(t *testing.T) {
	p := fpt(t, 192, 105)
	q := fpt(t, 17, 56)
	r := fpt(t, 143, 98)
	inf := Inf(fp(t, 0), fp(t, 7))

	t.Run("identity", func(t *testing.T) {
		got, err := Add(inf, p)
		require.NoError(t, err)
		assert.True(t, p.Equal(got))
		got, err = Add(p, inf)
		require.NoError(t, err)
		assert.True(t, p.Equal(got))
	})

	t.Run("inverse", func(t *testing.T) {
		negY, err := fp(t, 105).Neg()
		require.NoError(t, err)
		neg, err := New(fp(t, 192), negY, fp(t, 0), fp(t, 7))
		require.NoError(t, err)
		got, err := Add(p, neg)
		require.NoError(t, err)
		assert.True(t, inf.Equal(got))
	})

	t.Run("commutative", func(t *testing.T) {
		pq, err := Add(p, q)
		require.NoError(t, err)
		qp, err := Add(q, p)
		require.NoError(t, err)
		assert.True(t, pq.Equal(qp))
	})

	t.Run("associative", func(t *testing.T) {
		for _, triple := range [][3]Point[field.FieldElement]{{p, q, r}, {p, p, q}, {r, q, r}} {
			ab, err := Add(triple[0], triple[1])
			require.NoError(t, err)
			left, err := Add(ab, triple[2])
			require.NoError(t, err)
			bc, err := Add(triple[1], triple[2])
			require.NoError(t, err)
			right, err := Add(triple[0], bc)
			require.NoError(t, err)
			assert.True(t, left.Equal(right), "got %s and %s", left, right)
		}
	})

	t.Run("tangent vertical", func(t *testing.T) {
		// y² = x³ - x over F_97 has (1, 0).
		a, err := field.NewInt64(96, 97)
		require.NoError(t, err)
		b, err := field.NewInt64(0, 97)
		require.NoError(t, err)
		x, err := field.NewInt64(1, 97)
		require.NoError(t, err)
		pt, err := New(x, b, a, b)
		require.NoError(t, err)
		got, err := Add(pt, pt)
		require.NoError(t, err)
		assert.True(t, IsInfinity(got))
	})
}

func TestAddFieldPrimeMismatch(t *testing.T) {
	a, err := field.NewInt64(0, 7)
	require.NoError(t, err)
	b, err := field.NewInt64(0, 223)
	require.NoError(t, err)
	// Same residues, different fields: the curves differ.
	_, err = Add(Inf(a, a), fpt(t, 192, 105))
	assert.ErrorIs(t, err, ErrCurveMismatch)
	_, err = New(fp(t, 192), fp(t, 105), b, a)
	assert.ErrorIs(t, err, field.ErrPrimeMismatch)
}

func TestCurveSingular(t *testing.T) {
	c := NewCurve(fp(t, 0), fp(t, 7))
	singular, err := c.Singular()
	require.NoError(t, err)
	assert.False(t, singular)

	cusp := NewCurve(fp(t, 0), fp(t, 0))
	singular, err = cusp.Singular()
	require.NoError(t, err)
	assert.True(t, singular)

	node := NewCurve[Int](-3, 2)
	singular, err = node.Singular()
	require.NoError(t, err)
	assert.True(t, singular)
}

func TestCurve(t *testing.T) {
	c := NewCurve(fp(t, 0), fp(t, 7))
	assert.Equal(t, "Curve(y^2 = x^3 + FieldElement_223(0)*x + FieldElement_223(7))", c.String())

	ok, err := c.Contains(fp(t, 192), fp(t, 105))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = c.Contains(fp(t, 200), fp(t, 119))
	require.NoError(t, err)
	assert.False(t, ok)

	p, err := c.Point(fp(t, 17), fp(t, 56))
	require.NoError(t, err)
	assert.True(t, c.Owns(p))
	assert.True(t, c.Owns(c.Infinity()))
	assert.False(t, NewCurve(fp(t, 1), fp(t, 7)).Owns(p))
	assert.True(t, c.A().IsZero())
	assert.True(t, c.B().EqualInt(7))

	_, err = c.Point(fp(t, 42), fp(t, 99))
	assert.ErrorIs(t, err, ErrNotOnCurve)
}

func TestFieldPointAtLargePrime(t *testing.T) {
	p, ok := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
	require.True(t, ok)
	gx := field.MustParse("0x79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", "0x"+p.Text(16))
	gy := field.MustParse("0x483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", "0x"+p.Text(16))
	a, err := field.Zero(p)
	require.NoError(t, err)
	b, err := field.FromInt(7, p)
	require.NoError(t, err)

	g, err := New(gx, gy, a, b)
	require.NoError(t, err)
	assert.True(t, NewCurve(a, b).Owns(g))
}
