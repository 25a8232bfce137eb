package optim

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sfw-ml/sfw/internal/tensor"
)

// Power iteration policy for the nuclear oracle. The iteration runs on
// the Gram matrix GᵀG with a deterministic start vector, so repeated
// calls on the same gradient produce identical output.
const (
	powerIterMax = 500
	powerIterTol = 1e-10
)

// LMOL1 returns the point on the L1 ball of radius kappa that minimizes
// the inner product with grad.
//
// The minimizer is a vertex of the ball: all mass kappa on the coordinate
// of largest absolute gradient, sign opposite the gradient. Ties are
// broken by first occurrence. A zero gradient has sign 0 everywhere and
// yields the zero tensor (a degenerate no-op step for Frank-Wolfe).
//
// LMOL1 is pure: grad is only read and the result is freshly allocated.
func LMOL1(grad *tensor.Tensor, kappa float64) (*tensor.Tensor, error) {
	if kappa <= 0 {
		return nil, &ShapeError{Op: "lmo_l1", Details: "kappa must be > 0"}
	}

	gd := grad.Data()
	best := 0
	bestAbs := 0.0
	for i, g := range gd {
		if a := math.Abs(g); a > bestAbs {
			best = i
			bestAbs = a
		}
	}

	s := tensor.ZerosLike(grad)
	s.Set(best, -kappa*sign(gd[best]))
	return s, nil
}

// LMONuclear returns the matrix on the nuclear-norm ball of radius kappa
// that minimizes the Frobenius inner product with grad.
//
// The minimizer is the rank-1 matrix -kappa·u₁v₁ᵀ built from the top
// singular triplet of grad. Only the leading triplet is needed, so it is
// computed by power iteration on GᵀG rather than a full SVD: the start
// vector is the standard basis vector of the column with largest norm,
// and the iteration stops once the eigen-residual ‖Bq − λq‖ falls below
// powerIterTol·max(1, λ), or fails with a NumericalError carrying the
// iteration count and final residual after powerIterMax iterations.
//
// A zero gradient matrix yields the zero matrix.
func LMONuclear(grad *tensor.Tensor, kappa float64) (*tensor.Tensor, error) {
	if kappa <= 0 {
		return nil, &ShapeError{Op: "lmo_nuclear", Details: "kappa must be > 0"}
	}
	if !grad.Shape().IsMatrix() {
		return nil, &ShapeError{Op: "lmo_nuclear", Details: "gradient shape " + grad.Shape().String() + " is not a matrix"}
	}

	if isZero(grad.Data()) {
		return tensor.ZerosLike(grad), nil
	}

	g, err := grad.Dense()
	if err != nil {
		return nil, &ShapeError{Op: "lmo_nuclear", Details: err.Error()}
	}

	// Only the singular vectors enter the vertex; σ₁ sets its scale to κ.
	_, u, v, err := topSingularTriplet(g)
	if err != nil {
		return nil, err
	}

	rows, cols := g.Dims()
	s := tensor.Zeros(tensor.Shape{rows, cols})
	sd := s.Data()
	for i := 0; i < rows; i++ {
		ui := u.AtVec(i)
		for j := 0; j < cols; j++ {
			sd[i*cols+j] = -kappa * ui * v.AtVec(j)
		}
	}
	return s, nil
}

// topSingularTriplet computes the leading singular triplet (σ₁, u₁, v₁)
// of g by power iteration on the Gram matrix B = gᵀg.
//
// B is symmetric positive semi-definite, so the iterates cannot oscillate
// in sign and the Rayleigh quotient qᵀBq increases monotonically toward
// σ₁². The caller guarantees g is nonzero.
func topSingularTriplet(g *mat.Dense) (float64, *mat.VecDense, *mat.VecDense, error) {
	rows, cols := g.Dims()

	b := mat.NewDense(cols, cols, nil)
	b.Mul(g.T(), g)

	lambda, q, err := dominantEigen(b, powerIterMax, powerIterTol)
	if err != nil {
		return 0, nil, nil, err
	}

	sigma := math.Sqrt(lambda)
	v := mat.NewVecDense(cols, nil)
	v.CopyVec(q)

	// u₁ = g·v₁ / σ₁
	u := mat.NewVecDense(rows, nil)
	u.MulVec(g, v)
	u.ScaleVec(1/sigma, u)

	return sigma, u, v, nil
}

// dominantEigen computes the largest eigenpair of a symmetric positive
// semi-definite matrix b by power iteration.
//
// The start vector is the basis vector of b's largest diagonal entry,
// which is deterministic and, for a nonzero b, never in the nullspace.
// Convergence is declared when the eigen-residual ‖bq − λq‖ drops below
// tol·max(1, λ).
func dominantEigen(b *mat.Dense, maxIter int, tol float64) (float64, *mat.VecDense, error) {
	n, _ := b.Dims()

	start := 0
	for j := 1; j < n; j++ {
		if b.At(j, j) > b.At(start, start) {
			start = j
		}
	}
	q := mat.NewVecDense(n, nil)
	q.SetVec(start, 1)

	z := mat.NewVecDense(n, nil)
	r := mat.NewVecDense(n, nil)

	var lambda, residual float64
	for iter := 1; iter <= maxIter; iter++ {
		z.MulVec(b, q)
		lambda = mat.Dot(q, z) // Rayleigh quotient; q is unit length

		r.AddScaledVec(z, -lambda, q)
		residual = mat.Norm(r, 2)
		if residual <= tol*math.Max(1, lambda) {
			return lambda, q, nil
		}

		norm := mat.Norm(z, 2)
		if norm == 0 {
			// q fell into b's nullspace; the iteration cannot recover.
			return 0, nil, &NumericalError{Op: "lmo_nuclear", Iterations: iter, Residual: residual}
		}
		z.ScaleVec(1/norm, z)
		q.CopyVec(z)
	}
	return 0, nil, &NumericalError{Op: "lmo_nuclear", Iterations: maxIter, Residual: residual}
}

// sign returns -1, 0 or 1. sign(0) = 0 is the subgradient chosen at the
// kink of |x|.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// isZero reports whether every element of data is exactly zero.
func isZero(data []float64) bool {
	for _, v := range data {
		if v != 0 {
			return false
		}
	}
	return true
}
