package simulate

import "github.com/fivetuple/classify/rule"

// servicePorts are the destination ports gen_lan_to_wan draws from,
// mirroring original_source's gen_service_port helper.
var servicePorts = [4]uint16{80, 443, 53, 8080}

// GenerateRules produces n scenario rules plus a trailing wildcard-Deny
// catch-all (n+1 rules total, IDs and priorities 0..n in emission order,
// lower ID taking priority per the classifiers' "lowest value wins"
// convention). Scenario kinds are drawn roughly 6:3:1 in favor of
// LAN-to-WAN over WAN-to-LAN over IGMP multicast, and each scenario rule
// is Permit with probability 0.8, Deny otherwise.
func (s *Simulator) GenerateRules(n int) []rule.Rule {
	rules := make([]rule.Rule, 0, n+1)

	for i := 0; i < n; i++ {
		id := uint32(i)
		action := rule.Deny
		if s.rng.Float64() < 0.8 {
			action = rule.Permit
		}

		var r rule.Rule
		switch kind := s.rng.Intn(10); {
		case kind < 6:
			r = s.genLANToWANRule(id, action)
		case kind < 9:
			r = s.genWANToLANRule(id, action)
		default:
			r = s.genIGMPRule(id, action)
		}
		rules = append(rules, r)
	}

	rules = append(rules, rule.Rule{
		ID:       uint32(n),
		Priority: uint32(n),
		SrcIP:    rule.Any[uint32](0, ^uint32(0)),
		DstIP:    rule.Any[uint32](0, ^uint32(0)),
		SrcPort:  rule.Any[uint16](0, 65535),
		DstPort:  rule.Any[uint16](0, 65535),
		Proto:    rule.Any[uint8](0, 255),
		Action:   rule.Deny,
	})

	return rules
}

// genLANToWANRule builds a rule matching outbound traffic from a random
// LAN subnet to an arbitrary destination on a common service port.
func (s *Simulator) genLANToWANRule(id uint32, action rule.Action) rule.Rule {
	srcPrefixLen := 16 + s.rng.Intn(16) // /16 .. /31
	suffixBits := uint(32 - srcPrefixLen)
	suffix := s.rng.Uint32() & ((uint32(1) << suffixBits) - 1)
	srcStart := lanBase | suffix
	srcEnd := srcStart + uint32(s.rng.Intn(256))

	dstStart := s.rng.Uint32()
	dstEnd := dstStart + 100 // wraps on overflow, harmlessly rare

	return rule.Rule{
		ID:       id,
		Priority: id,
		SrcIP:    rule.NewRange(srcStart, srcEnd),
		DstIP:    rule.NewRange(dstStart, dstEnd),
		SrcPort:  rule.Any[uint16](1024, 65535),
		DstPort:  rule.Exact(s.genServicePort()),
		Proto:    rule.Exact(s.genTransportProto()),
		Action:   action,
	}
}

// genWANToLANRule builds a rule matching inbound traffic from an
// arbitrary source toward a LAN host on port 80/TCP.
func (s *Simulator) genWANToLANRule(id uint32, action rule.Action) rule.Rule {
	srcStart := s.rng.Uint32()
	srcEnd := srcStart + 50 // wraps on overflow, harmlessly rare
	dstIP := lanBase | (s.rng.Uint32() & 0xFFFF)

	return rule.Rule{
		ID:       id,
		Priority: id,
		SrcIP:    rule.NewRange(srcStart, srcEnd),
		DstIP:    rule.Exact(dstIP),
		SrcPort:  rule.Any[uint16](0, 65535),
		DstPort:  rule.Exact[uint16](80),
		Proto:    rule.Exact(ProtoTCP),
		Action:   action,
	}
}

// genIGMPRule builds a rule matching multicast group-membership traffic
// from any source to the IPv4 multicast block.
func (s *Simulator) genIGMPRule(id uint32, action rule.Action) rule.Rule {
	return rule.Rule{
		ID:       id,
		Priority: id,
		SrcIP:    rule.Any[uint32](0, ^uint32(0)),
		DstIP:    rule.NewRange(multicastMin, multicastMax),
		SrcPort:  rule.Any[uint16](0, 65535),
		DstPort:  rule.Any[uint16](0, 65535),
		Proto:    rule.Exact(ProtoIGMP),
		Action:   action,
	}
}

func (s *Simulator) genServicePort() uint16 {
	return servicePorts[s.rng.Intn(len(servicePorts))]
}

func (s *Simulator) genTransportProto() uint8 {
	if s.rng.Intn(2) == 0 {
		return ProtoTCP
	}
	return ProtoUDP
}
