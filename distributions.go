package rng

import "math"

const (
	twoPi        = 2 * math.Pi
	log4         = 1.3862943611198906 // math.Log(4)
	sgMagicConst = 2.504077396776274  // 1 + math.Log(4.5)
)

// NormFloat64 returns a standard normal value. Values are produced in pairs
// and the second of each pair is cached until the next call.
func (r *Rand) NormFloat64() float64 {
	if r.gaussValid {
		r.gaussValid = false
		return r.gaussNext
	}

	u := twoPi * r.Float64()
	g := math.Sqrt(-2 * math.Log(1-r.Float64()))
	r.gaussNext, r.gaussValid = math.Sin(u)*g, true
	return math.Cos(u) * g
}

// Gauss returns a normal value with mean mu and standard deviation sigma.
func (r *Rand) Gauss(mu, sigma float64) (float64, error) {
	if !(sigma > 0) {
		return 0, ErrInvalidArgument.New("sigma %v must be positive", sigma)
	}
	return mu + sigma*r.NormFloat64(), nil
}

// NormalVariate is the same as Gauss.
func (r *Rand) NormalVariate(mu, sigma float64) (float64, error) { return r.Gauss(mu, sigma) }

// LogNormVariate returns exp of a normal value with mean mu and standard
// deviation sigma.
func (r *Rand) LogNormVariate(mu, sigma float64) (float64, error) {
	v, err := r.Gauss(mu, sigma)
	if err != nil {
		return 0, err
	}
	return math.Exp(v), nil
}

// ExpFloat64 returns an exponential value with rate 1.
func (r *Rand) ExpFloat64() float64 { return -math.Log(1 - r.Float64()) }

// ExpoVariate returns an exponential value with rate lambda. A negative lambda
// gives values in (-inf, 0].
func (r *Rand) ExpoVariate(lambda float64) (float64, error) {
	if lambda == 0 || math.IsNaN(lambda) {
		return 0, ErrInvalidArgument.New("lambda %v must be non-zero", lambda)
	}
	return r.ExpFloat64() / lambda, nil
}

// GammaVariate returns a gamma value with shape alpha and scale beta.
func (r *Rand) GammaVariate(alpha, beta float64) (float64, error) {
	if !(alpha > 0) || !(beta > 0) {
		return 0, ErrInvalidArgument.New("alpha %v and beta %v must be positive", alpha, beta)
	}

	switch {
	case alpha > 1:
		// Cheng's rejection algorithm GB.
		ainv := math.Sqrt(2*alpha - 1)
		bbb := alpha - log4
		ccc := alpha + ainv
		for {
			u1 := r.Float64()
			if u1 < 1e-7 || u1 > 1-1e-7 {
				continue
			}
			u2 := 1 - r.Float64()
			v := math.Log(u1/(1-u1)) / ainv
			x := alpha * math.Exp(v)
			z := u1 * u1 * u2
			w := bbb + ccc*v - x
			if w+sgMagicConst-4.5*z >= 0 || w >= math.Log(z) {
				return x * beta, nil
			}
		}

	case alpha == 1:
		return -math.Log(1-r.Float64()) * beta, nil

	default:
		// Ahrens and Dieter's algorithm GS.
		for {
			u := r.Float64()
			b := (math.E + alpha) / math.E
			p := b * u
			var x float64
			if p <= 1 {
				x = math.Pow(p, 1/alpha)
			} else {
				x = -math.Log((b - p) / alpha)
			}
			u1 := r.Float64()
			if p > 1 {
				if u1 <= math.Pow(x, alpha-1) {
					return x * beta, nil
				}
			} else if u1 <= math.Exp(-x) {
				return x * beta, nil
			}
		}
	}
}

// BetaVariate returns a beta value in [0, 1].
func (r *Rand) BetaVariate(alpha, beta float64) (float64, error) {
	y, err := r.GammaVariate(alpha, 1)
	if err != nil {
		return 0, err
	}
	if y == 0 {
		return 0, nil
	}
	z, err := r.GammaVariate(beta, 1)
	if err != nil {
		return 0, err
	}
	return y / (y + z), nil
}

// ParetoVariate returns a Pareto value with shape alpha.
func (r *Rand) ParetoVariate(alpha float64) (float64, error) {
	if alpha == 0 || math.IsNaN(alpha) {
		return 0, ErrInvalidArgument.New("alpha %v must be non-zero", alpha)
	}
	return math.Pow(1-r.Float64(), -1/alpha), nil
}

// Triangular returns a value in [low, high] from the triangular distribution
// peaking at mode.
func (r *Rand) Triangular(low, high, mode float64) float64 {
	if high == low {
		return low
	}
	u := r.Float64()
	c := (mode - low) / (high - low)
	if u > c {
		u, c = 1-u, 1-c
		low, high = high, low
	}
	return low + (high-low)*math.Sqrt(u*c)
}

// VonMisesVariate returns an angle in [0, 2π) with mean angle mu and
// concentration kappa. A kappa near zero gives a uniform angle.
func (r *Rand) VonMisesVariate(mu, kappa float64) (float64, error) {
	if kappa < 0 || math.IsNaN(kappa) {
		return 0, ErrInvalidArgument.New("kappa %v must not be negative", kappa)
	}
	if kappa <= 1e-6 {
		return twoPi * r.Float64(), nil
	}

	s := 0.5 / kappa
	rr := s + math.Sqrt(1+s*s)

	var z float64
	for {
		u1 := r.Float64()
		z = math.Cos(math.Pi * u1)
		d := z / (rr + z)
		u2 := r.Float64()
		if u2 < 1-d*d || u2 <= (1-d)*math.Exp(d) {
			break
		}
	}

	q := 1 / rr
	f := (q + z) / (1 + q*z)

	theta := mu - math.Acos(f)
	if r.Float64() > 0.5 {
		theta = mu + math.Acos(f)
	}
	if theta = math.Mod(theta, twoPi); theta < 0 {
		theta += twoPi
	}
	return theta, nil
}

// WeibullVariate returns a Weibull value with scale alpha and shape beta.
func (r *Rand) WeibullVariate(alpha, beta float64) (float64, error) {
	if !(beta > 0) {
		return 0, ErrInvalidArgument.New("beta %v must be positive", beta)
	}
	return alpha * math.Pow(-math.Log(1-r.Float64()), 1/beta), nil
}

// BinomialVariate returns the number of successes in n trials that each
// succeed with probability p.
func (r *Rand) BinomialVariate(n int, p float64) (int, error) {
	if n < 0 {
		return 0, ErrInvalidArgument.New("trial count %d must not be negative", n)
	}
	if !(p >= 0 && p <= 1) {
		return 0, ErrInvalidArgument.New("probability %v must be in [0, 1]", p)
	}

	hits := 0
	for i := 0; i < n; i++ {
		if r.Float64() < p {
			hits++
		}
	}
	return hits, nil
}
