package hypersplit_test

import (
	"testing"

	"github.com/fivetuple/classify/hypersplit"
	"github.com/fivetuple/classify/simulate"
)

func BenchmarkClassifyLargeRuleSet(b *testing.B) {
	sim := simulate.New(2024)
	rules := sim.GenerateRules(2000)
	packets := sim.GeneratePackets(1000)

	c, err := hypersplit.Build(rules)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Classify(packets[i%len(packets)])
	}
}
