package chromatic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkravets/graphtk/chromatic"
	"github.com/dkravets/graphtk/graph"
)

func undirected(t *testing.T, kind graph.Kind, edges []graph.Edge[string]) *graph.Undirected[string, struct{}, struct{}, int] {
	t.Helper()
	g, err := graph.UndirectedFromEdges[string, struct{}, struct{}, int](kind, edges)
	require.NoError(t, err)

	return g
}

func triangle(t *testing.T) *graph.Undirected[string, struct{}, struct{}, int] {
	return undirected(t, graph.Simple, []graph.Edge[string]{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "c", To: "a"},
	})
}

func TestPolynomialOf_Triangle(t *testing.T) {
	// P(K3) = x³ - 3x² + 2x.
	p := chromatic.PolynomialOf[string, struct{}, struct{}, int](triangle(t))
	assert.True(t, p.Equal(chromatic.NewPolynomial(0, 2, -3, 1)), "got %v", p.Coef)
}

func TestPolynomialOf_Path(t *testing.T) {
	// P(P3) = x(x-1)² = x³ - 2x² + x.
	g := undirected(t, graph.Simple, []graph.Edge[string]{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
	})
	p := chromatic.PolynomialOf[string, struct{}, struct{}, int](g)
	assert.True(t, p.Equal(chromatic.NewPolynomial(0, 1, -2, 1)), "got %v", p.Coef)
}

func TestPolynomialOf_FourCycle(t *testing.T) {
	// P(C4) = (x-1)⁴ + (x-1) = x⁴ - 4x³ + 6x² - 3x.
	g := undirected(t, graph.Simple, []graph.Edge[string]{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "c", To: "d"},
		{From: "d", To: "a"},
	})
	p := chromatic.PolynomialOf[string, struct{}, struct{}, int](g)
	assert.True(t, p.Equal(chromatic.NewPolynomial(0, -3, 6, -4, 1)), "got %v", p.Coef)
}

func TestPolynomialOf_EdgelessIsMonomial(t *testing.T) {
	g, err := graph.UndirectedFromNodesAndEdges[string, struct{}, struct{}, int](graph.Simple, []string{"a", "b", "c"}, nil)
	require.NoError(t, err)
	p := chromatic.PolynomialOf[string, struct{}, struct{}, int](g)
	assert.True(t, p.Equal(chromatic.NewPolynomial(0, 0, 0, 1)), "got %v", p.Coef)
}

func TestPolynomialOf_MethodsAgree(t *testing.T) {
	graphs := map[string]*graph.Undirected[string, struct{}, struct{}, int]{
		"triangle": triangle(t),
		"square-with-diagonal": undirected(t, graph.Simple, []graph.Edge[string]{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
			{From: "c", To: "d"},
			{From: "d", To: "a"},
			{From: "a", To: "c"},
		}),
		"two-components": undirected(t, graph.Simple, []graph.Edge[string]{
			{From: "a", To: "b"},
			{From: "c", To: "d"},
		}),
	}
	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			del := chromatic.PolynomialOf[string, struct{}, struct{}, int](g, chromatic.WithMethod(chromatic.MethodRemoveEdges))
			add := chromatic.PolynomialOf[string, struct{}, struct{}, int](g, chromatic.WithMethod(chromatic.MethodAddEdges))
			assert.True(t, del.Equal(add), "remove %v vs add %v", del.Coef, add.Coef)
		})
	}
}

func TestPolynomialOf_EvalZeroIsZero(t *testing.T) {
	p := chromatic.PolynomialOf[string, struct{}, struct{}, int](triangle(t))
	assert.Zero(t, p.Eval(0))
}

func TestPolynomialOf_ParallelRecordsCollapse(t *testing.T) {
	// A doubled edge colors exactly like a single one.
	multi := undirected(t, graph.Multi, []graph.Edge[string]{
		{From: "a", To: "b"},
		{From: "a", To: "b"},
	})
	simple := undirected(t, graph.Simple, []graph.Edge[string]{
		{From: "a", To: "b"},
	})
	pm := chromatic.PolynomialOf[string, struct{}, struct{}, int](multi)
	ps := chromatic.PolynomialOf[string, struct{}, struct{}, int](simple)
	assert.True(t, pm.Equal(ps))
}

func TestColoringsAndChromaticNumber(t *testing.T) {
	tri := triangle(t)
	assert.Equal(t, int64(0), chromatic.Colorings[string, struct{}, struct{}, int](tri, 2))
	assert.Equal(t, int64(6), chromatic.Colorings[string, struct{}, struct{}, int](tri, 3))
	assert.Equal(t, 3, chromatic.ChromaticNumber[string, struct{}, struct{}, int](tri))

	path := undirected(t, graph.Simple, []graph.Edge[string]{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
	})
	assert.Equal(t, 2, chromatic.ChromaticNumber[string, struct{}, struct{}, int](path))

	empty, err := graph.UndirectedFromEdges[string, struct{}, struct{}, int](graph.Simple, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, chromatic.ChromaticNumber[string, struct{}, struct{}, int](empty))
}

func TestPolynomial_Arithmetic(t *testing.T) {
	p := chromatic.NewPolynomial(1, 2) // 1 + 2x
	q := chromatic.NewPolynomial(0, 1) // x

	sum := p.Add(q) // 1 + 3x
	assert.Equal(t, []int64{1, 3}, sum.Coef)

	diff := p.Sub(chromatic.NewPolynomial(1, 2)) // zero
	assert.Equal(t, []int64{0}, diff.Coef)
	assert.Equal(t, 0, diff.Degree())

	prod := p.Mul(q) // x + 2x²
	assert.Equal(t, []int64{0, 1, 2}, prod.Coef)

	assert.Equal(t, int64(7), p.Eval(3))
}
