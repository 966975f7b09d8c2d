package hicuts_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetuple/classify/hicuts"
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
	c, err := hicuts.Build(nil)
	require.NoError(t, err)

	_, ok := c.Classify(rule.FiveTuple{})
	require.False(t, ok)
}

func TestSingleRuleMatchesAcrossSubnet(t *testing.T) {
	rules := []rule.Rule{{
		ID: 1, Priority: 0,
		SrcIP:   rule.NewRange[uint32](0xC0A80000, 0xC0A8FFFF),
		DstIP:   rule.Any[uint32](0, ^uint32(0)),
		SrcPort: rule.Any[uint16](0, 65535), DstPort: rule.Any[uint16](0, 65535),
		Proto: rule.Any[uint8](0, 255), Action: rule.Permit,
	}}
	c, err := hicuts.Build(rules)
	require.NoError(t, err)

	action, ok := c.Classify(rule.FiveTuple{SrcIP: 0xC0A80042})
	require.True(t, ok)
	require.Equal(t, rule.Permit, action)

	_, ok = c.Classify(rule.FiveTuple{SrcIP: 0xC0A90000})
	require.False(t, ok)
}

func TestPriorityOrderingAtLeaf(t *testing.T) {
	rules := []rule.Rule{
		wildcardRule(1, 5, rule.Permit),
		wildcardRule(2, 1, rule.Deny),
	}
	c, err := hicuts.Build(rules)
	require.NoError(t, err)

	action, ok := c.Classify(rule.FiveTuple{})
	require.True(t, ok)
	require.Equal(t, rule.Deny, action)
}

func TestManyDistinctSubnetsBuildsMultiwayTree(t *testing.T) {
	var rules []rule.Rule
	for i := uint32(0); i < 64; i++ {
		base := i << 20
		rules = append(rules, rule.Rule{
			ID: i, Priority: i,
			SrcIP:   rule.NewRange(base, base+0xFFFFF),
			DstIP:   rule.Any[uint32](0, ^uint32(0)),
			SrcPort: rule.Any[uint16](0, 65535), DstPort: rule.Any[uint16](0, 65535),
			Proto: rule.Any[uint8](0, 255), Action: rule.Permit,
		})
	}
	c, err := hicuts.Build(rules, hicuts.WithLeafThreshold(4), hicuts.WithMaxDepth(8))
	require.NoError(t, err)

	for i := uint32(0); i < 64; i++ {
		action, ok := c.Classify(rule.FiveTuple{SrcIP: (i << 20) + 5})
		require.True(t, ok, "rule %d", i)
		require.Equal(t, rule.Permit, action)
	}
}
