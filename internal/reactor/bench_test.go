package reactor

import "testing"

func BenchmarkIntegrate(b *testing.B) {
	p := DefaultParams()
	req := Request{TIn: 310, Velocity: 1.5, TJacket: 280}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Integrate(req, p)
	}
}
