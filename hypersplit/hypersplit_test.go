package hypersplit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetuple/classify/hypersplit"
	"github.com/fivetuple/classify/rule"
)

func wildcardRule(id, pri uint32, action rule.Action) rule.Rule {
	return rule.Rule{
		ID: id, Priority: pri,
		SrcIP: rule.Any[uint32](0, ^uint32(0)), DstIP: rule.Any[uint32](0, ^uint32(0)),
		SrcPort: rule.Any[uint16](0, 65535), DstPort: rule.Any[uint16](0, 65535),
		Proto: rule.Any[uint8](0, 255), Action: action,
	}
}

func TestEmptyRuleSet(t *testing.T) {
	c, err := hypersplit.Build(nil)
	require.NoError(t, err)

	_, ok := c.Classify(rule.FiveTuple{})
	require.False(t, ok)
}

func TestPortRangeSplit(t *testing.T) {
	rules := []rule.Rule{{
		ID: 1, Priority: 0,
		SrcIP: rule.Any[uint32](0, ^uint32(0)), DstIP: rule.Any[uint32](0, ^uint32(0)),
		SrcPort: rule.Any[uint16](0, 65535), DstPort: rule.NewRange[uint16](1, 1023),
		Proto: rule.Exact[uint8](6), Action: rule.Permit,
	}}
	c, err := hypersplit.Build(rules)
	require.NoError(t, err)

	action, ok := c.Classify(rule.FiveTuple{DstPort: 80, Proto: 6})
	require.True(t, ok)
	require.Equal(t, rule.Permit, action)

	_, ok = c.Classify(rule.FiveTuple{DstPort: 8080, Proto: 6})
	require.False(t, ok)
}

func TestPriorityOrderingAtLeaf(t *testing.T) {
	rules := []rule.Rule{
		wildcardRule(1, 5, rule.Permit),
		wildcardRule(2, 1, rule.Deny),
	}
	c, err := hypersplit.Build(rules)
	require.NoError(t, err)

	action, ok := c.Classify(rule.FiveTuple{})
	require.True(t, ok)
	require.Equal(t, rule.Deny, action)
}

func TestManyRulesSplitDeeply(t *testing.T) {
	var rules []rule.Rule
	for i := uint32(0); i < 200; i++ {
		rules = append(rules, rule.Rule{
			ID: i, Priority: i,
			SrcIP:   rule.Any[uint32](0, ^uint32(0)),
			DstIP:   rule.Any[uint32](0, ^uint32(0)),
			SrcPort: rule.Any[uint16](0, 65535),
			DstPort: rule.Exact(uint16(i)),
			Proto:   rule.Any[uint8](0, 255),
			Action:  rule.Permit,
		})
	}
	c, err := hypersplit.Build(rules, hypersplit.WithLeafThreshold(4))
	require.NoError(t, err)

	for i := uint32(0); i < 200; i++ {
		action, ok := c.Classify(rule.FiveTuple{DstPort: uint16(i)})
		require.True(t, ok, "port %d", i)
		require.Equal(t, rule.Permit, action)
	}
}
