package reactor_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pfrsim/internal/dynamo"
	"github.com/san-kum/pfrsim/internal/integrators"
	"github.com/san-kum/pfrsim/internal/reactor"
)

func conversion(req reactor.Request, p reactor.Params) float64 {
	return reactor.Summarize(reactor.Integrate(req, p), p).FinalConversion
}

var _ = Describe("Integrate", func() {
	var p reactor.Params

	BeforeEach(func() {
		p = reactor.DefaultParams()
	})

	Context("at the default operating point", func() {
		var (
			req  reactor.Request
			prof *reactor.Profile
		)

		BeforeEach(func() {
			req = reactor.Request{TIn: 310, Velocity: 1.5, TJacket: 280}
			prof = reactor.Integrate(req, p)
		})

		It("produces 501 aligned points", func() {
			Expect(prof.Len()).To(Equal(501))
			Expect(prof.T).To(HaveLen(501))
			Expect(prof.C).To(HaveLen(501))
		})

		It("pins both ends of the grid", func() {
			Expect(prof.Z[0]).To(Equal(0.0))
			Expect(prof.Z[prof.Len()-1]).To(Equal(p.Length))
			Expect(prof.Z[1]).To(BeNumerically("~", p.Dz, 1e-12))
		})

		It("starts from the inlet conditions", func() {
			Expect(prof.T[0]).To(Equal(310.0))
			Expect(prof.C[0]).To(Equal(1.0))
		})

		It("converts some but not all of the reactant", func() {
			sum := reactor.Summarize(prof, p)
			Expect(sum.FinalConversion).To(BeNumerically(">", 0))
			Expect(sum.FinalConversion).To(BeNumerically("<", 100))
			Expect(sum.MaxTemperature).To(BeNumerically(">=", 310))
		})

		It("never increases concentration along the axis", func() {
			for i := 0; i+1 < prof.Len(); i++ {
				Expect(prof.C[i]).To(BeNumerically(">=", prof.C[i+1]), "i=%d", i)
			}
		})

		It("matches a hand-computed first Euler step", func() {
			k := reactor.RateConstant(310, p)
			dC := -k / 1.5 * 1.0
			dT := (-p.DeltaH*k*1.0*p.CMolar - p.U*p.Area*(310-280)) / (p.Rho * p.Cp * 1.5)
			Expect(prof.C[1]).To(BeNumerically("~", 1.0+dC*p.Dz, 1e-12))
			Expect(prof.T[1]).To(BeNumerically("~", 310+dT*p.Dz, 1e-9))
		})

		It("is deterministic", func() {
			again := reactor.Integrate(req, p)
			Expect(again.T).To(Equal(prof.T))
			Expect(again.C).To(Equal(prof.C))
			Expect(again.Z).To(Equal(prof.Z))
		})
	})

	It("keeps every profile finite and non-negative across the operating envelope", func() {
		for tIn := 300.0; tIn <= 350; tIn += 10 {
			for _, u := range []float64{0.5, 1.0, 2.5, 5.0} {
				for tJ := 250.0; tJ <= 300; tJ += 25 {
					req := reactor.Request{TIn: tIn, Velocity: u, TJacket: tJ}
					prof := reactor.Integrate(req, p)
					Expect(prof.CheckFinite()).To(Succeed(), "req=%+v", req)
					for i, c := range prof.C {
						Expect(c).To(BeNumerically(">=", 0), "req=%+v i=%d", req, i)
					}
				}
			}
		}
	})

	It("clamps concentration at zero when a step would overshoot", func() {
		p.K0 = 1e9
		prof := reactor.Integrate(reactor.Request{TIn: 340, Velocity: 0.5, TJacket: 280}, p)
		Expect(prof.C[1]).To(Equal(0.0))
		Expect(prof.C[prof.Len()-1]).To(Equal(0.0))
	})

	It("converts more with a hotter inlet", func() {
		prev := -1.0
		for tIn := 300.0; tIn <= 350; tIn += 10 {
			x := conversion(reactor.Request{TIn: tIn, Velocity: 2.0, TJacket: 280}, p)
			Expect(x).To(BeNumerically(">", prev), "T_in=%v", tIn)
			prev = x
		}
	})

	It("converts more with a slower flow", func() {
		prev := -1.0
		for _, u := range []float64{5.0, 4.0, 3.0, 2.0, 1.0} {
			x := conversion(reactor.Request{TIn: 310, Velocity: u, TJacket: 280}, p)
			Expect(x).To(BeNumerically(">", prev), "u=%v", u)
			prev = x
		}
	})

	It("converts more at 330 K and 2 m/s than at the default point", func() {
		hot := conversion(reactor.Request{TIn: 330, Velocity: 2.0, TJacket: 280}, p)
		base := conversion(reactor.Request{TIn: 310, Velocity: 1.5, TJacket: 280}, p)
		Expect(hot).To(BeNumerically(">", base))
	})

	It("reaches L when L/dz rounds just below an integer", func() {
		p.Length = 0.3
		p.Dz = 0.1
		prof := reactor.Integrate(reactor.Request{TIn: 310, Velocity: 1.5, TJacket: 280}, p)
		Expect(prof.Len()).To(Equal(p.GridSize()))
		Expect(prof.Z[prof.Len()-1]).To(Equal(0.3))
		Expect(prof.Z[prof.Len()-1] - prof.Z[prof.Len()-2]).To(BeNumerically("<=", p.Dz+1e-12))
		marched := float64(prof.Len()-1) * p.Dz
		Expect(prof.Z[prof.Len()-1] - marched).To(BeNumerically("<", p.Dz))
	})

	DescribeTable("marches to within one step of L",
		func(length, dz float64, points int) {
			p.Length = length
			p.Dz = dz
			Expect(p.GridSize()).To(Equal(points))
			marched := float64(p.GridSize()-1) * p.Dz
			Expect(p.Length - marched).To(BeNumerically(">=", -1e-9))
			Expect(p.Length - marched).To(BeNumerically("<", p.Dz))
		},
		Entry("exact multiple with rounding", 0.3, 0.1, 4),
		Entry("default reactor", 5.0, 0.01, 501),
		Entry("fractional remainder", 0.35, 0.1, 4),
		Entry("shorter than one step", 0.005, 0.01, 1),
		Entry("seven tenths", 0.7, 0.1, 8),
	)

	It("returns a single point when the reactor is shorter than one step", func() {
		p.Length = 0.005
		prof := reactor.Integrate(reactor.Request{TIn: 310, Velocity: 1.5, TJacket: 280}, p)
		Expect(prof.Len()).To(Equal(1))
		Expect(prof.Z).To(Equal([]float64{0}))
	})

	It("agrees with RK4 to within a few percent conversion", func() {
		req := reactor.Request{TIn: 310, Velocity: 1.5, TJacket: 280}
		euler := reactor.Summarize(reactor.Integrate(req, p), p)
		rk4 := reactor.Summarize(reactor.IntegrateWith(req, p, integrators.NewRK4()), p)
		Expect(rk4.FinalConversion).To(BeNumerically("~", euler.FinalConversion, 5))
		Expect(rk4.MaxTemperature).To(BeNumerically("~", euler.MaxTemperature, 10))
	})
})

var _ = Describe("Profile.CheckFinite", func() {
	It("reports the first non-finite point", func() {
		prof := &reactor.Profile{
			Z: []float64{0, 1, 2},
			T: []float64{300, math.Inf(1), math.NaN()},
			C: []float64{1, 0.5, 0.2},
		}
		err := prof.CheckFinite()
		Expect(errors.Is(err, dynamo.ErrInvalidState)).To(BeTrue())

		var simErr *dynamo.SimulationError
		Expect(errors.As(err, &simErr)).To(BeTrue())
		Expect(simErr.Step).To(Equal(1))
		Expect(simErr.Position).To(Equal(1.0))
	})
})

var _ = Describe("Model", func() {
	It("heats the fluid when the jacket matches the fluid temperature", func() {
		p := reactor.DefaultParams()
		m := reactor.NewModel(reactor.Request{TIn: 310, Velocity: 1.5, TJacket: 310}, p)
		dx := m.Derive(dynamo.State{1.0, 310}, 0)
		Expect(dx[reactor.IdxConcentration]).To(BeNumerically("<", 0))
		Expect(dx[reactor.IdxTemperature]).To(BeNumerically(">", 0))
	})

	It("only cools once the reactant is gone", func() {
		p := reactor.DefaultParams()
		m := reactor.NewModel(reactor.Request{TIn: 310, Velocity: 1.5, TJacket: 280}, p)
		dx := m.Derive(dynamo.State{0, 320}, 0)
		Expect(dx[reactor.IdxConcentration]).To(Equal(0.0))
		Expect(dx[reactor.IdxTemperature]).To(BeNumerically("<", 0))
	})
})
