package reactor_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pfrsim/internal/dynamo"
	"github.com/san-kum/pfrsim/internal/reactor"
)

var _ = Describe("Params", func() {
	It("ships valid defaults", func() {
		Expect(reactor.DefaultParams().Validate()).To(Succeed())
		Expect(reactor.DefaultParams().GridSize()).To(Equal(501))
	})

	DescribeTable("rejects out-of-bounds values",
		func(name string, value float64) {
			p := reactor.DefaultParams()
			Expect(p.SetParam(name, value)).To(Succeed())
			err := p.Validate()
			Expect(errors.Is(err, dynamo.ErrParameterBounds)).To(BeTrue(), "err=%v", err)
		},
		Entry("zero length", "length", 0.0),
		Entry("negative dz", "dz", -0.01),
		Entry("zero activation energy", "ea", 0.0),
		Entry("endothermic enthalpy", "delta_h", 1000.0),
		Entry("negative area", "area", -1.0),
		Entry("NaN density", "rho", math.NaN()),
		Entry("infinite heat capacity", "cp", math.Inf(1)),
	)

	It("derives the exchange area from the diameter when unset", func() {
		p := reactor.DefaultParams()
		Expect(p.ExchangeArea()).To(Equal(0.785))
		p.Area = 0
		Expect(p.ExchangeArea()).To(BeNumerically("~", math.Pi*0.05, 1e-12))
		Expect(p.Validate()).To(Succeed())
	})

	It("round-trips every named parameter", func() {
		p := reactor.DefaultParams()
		for _, name := range reactor.ParamNames() {
			Expect(p.SetParam(name, 7)).To(Succeed())
			Expect(p.GetParams()[name]).To(Equal(7.0), name)
		}
		Expect(p.SetParam("viscosity", 1)).NotTo(Succeed())
	})
})

var _ = Describe("Request.Validate", func() {
	DescribeTable("boundary conditions",
		func(req reactor.Request, ok bool) {
			err := req.Validate()
			if ok {
				Expect(err).NotTo(HaveOccurred())
				return
			}
			Expect(errors.Is(err, dynamo.ErrInvalidRequest)).To(BeTrue(), "err=%v", err)
		},
		Entry("default point", reactor.Request{TIn: 310, Velocity: 1.5, TJacket: 280}, true),
		Entry("jacket above inlet", reactor.Request{TIn: 310, Velocity: 1.5, TJacket: 400}, true),
		Entry("negative jacket", reactor.Request{TIn: 310, Velocity: 1.5, TJacket: -5}, true),
		Entry("zero inlet temperature", reactor.Request{TIn: 0, Velocity: 1.5, TJacket: 280}, false),
		Entry("negative inlet temperature", reactor.Request{TIn: -10, Velocity: 1.5, TJacket: 280}, false),
		Entry("zero velocity", reactor.Request{TIn: 310, Velocity: 0, TJacket: 280}, false),
		Entry("NaN velocity", reactor.Request{TIn: 310, Velocity: math.NaN(), TJacket: 280}, false),
		Entry("infinite jacket", reactor.Request{TIn: 310, Velocity: 1.5, TJacket: math.Inf(-1)}, false),
	)
})

var _ = Describe("Simulate", func() {
	It("integrates and summarizes a valid request", func() {
		p := reactor.DefaultParams()
		req := reactor.Request{TIn: 310, Velocity: 1.5, TJacket: 280}
		res, err := reactor.Simulate(req, p, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Integrator).To(Equal("euler"))
		Expect(res.Profile.Len()).To(Equal(501))
		Expect(res.Summary).To(Equal(reactor.Summarize(reactor.Integrate(req, p), p)))
	})

	It("refuses invalid requests before integrating", func() {
		_, err := reactor.Simulate(reactor.Request{TIn: 0, Velocity: 1.5}, reactor.DefaultParams(), nil)
		Expect(errors.Is(err, dynamo.ErrInvalidRequest)).To(BeTrue())

		_, err = reactor.Simulate(reactor.Request{TIn: 310, Velocity: 0}, reactor.DefaultParams(), nil)
		Expect(errors.Is(err, dynamo.ErrInvalidRequest)).To(BeTrue())
	})

	It("refuses invalid parameters", func() {
		p := reactor.DefaultParams()
		p.Dz = 0
		_, err := reactor.Simulate(reactor.Request{TIn: 310, Velocity: 1.5, TJacket: 280}, p, nil)
		Expect(errors.Is(err, dynamo.ErrParameterBounds)).To(BeTrue())
	})
})

var _ = Describe("Summary reductions", func() {
	It("computes conversion and peak temperature", func() {
		prof := &reactor.Profile{
			Z: []float64{0, 1, 2},
			T: []float64{300, 340, 320},
			C: []float64{1, 0.5, 0.25},
		}
		Expect(reactor.FinalConversion(prof, 1.0)).To(Equal(75.0))
		Expect(reactor.MaxTemperature(prof)).To(Equal(340.0))
	})
})
