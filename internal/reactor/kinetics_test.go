package reactor_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pfrsim/internal/reactor"
)

var _ = Describe("RateConstant", func() {
	var p reactor.Params

	BeforeEach(func() {
		p = reactor.DefaultParams()
	})

	It("follows the Arrhenius law", func() {
		expected := p.K0 * math.Exp(-p.Ea/(p.Rg*310))
		Expect(reactor.RateConstant(310, p)).To(Equal(expected))
	})

	It("is strictly increasing in temperature", func() {
		prev := reactor.RateConstant(200, p)
		for T := 210.0; T <= 1000; T += 10 {
			k := reactor.RateConstant(T, p)
			Expect(k).To(BeNumerically(">", prev), "T=%v", T)
			prev = k
		}
	})

	It("is positive for positive temperatures", func() {
		for _, T := range []float64{1e-3, 1, 50, 300, 350, 2000} {
			Expect(reactor.RateConstant(T, p)).To(BeNumerically(">", 0), "T=%v", T)
		}
	})

	It("floors the exponent at -700", func() {
		Expect(reactor.RateConstant(1, p)).To(Equal(p.K0 * math.Exp(-700)))
		Expect(reactor.RateConstant(1e-3, p)).To(Equal(reactor.RateConstant(1, p)))
	})

	It("does not cap the exponent for very hot fluid", func() {
		k := reactor.RateConstant(1e9, p)
		Expect(k).To(BeNumerically("~", p.K0, p.K0*1e-4))
		Expect(math.IsInf(k, 0)).To(BeFalse())
	})
})
