package simulate

import "github.com/fivetuple/classify/rule"

// GeneratePackets produces n random five-tuples. Source and destination
// IPs are each independently drawn from the simulated LAN block with
// probability 0.5 and from the full address space otherwise; ports are
// uniform over the full 16-bit range; the protocol is IGMP with
// probability 0.1 and an even TCP/UDP split otherwise.
func (s *Simulator) GeneratePackets(n int) []rule.FiveTuple {
	packets := make([]rule.FiveTuple, n)
	for i := range packets {
		packets[i] = rule.FiveTuple{
			SrcIP:   s.genPacketIP(),
			DstIP:   s.genPacketIP(),
			SrcPort: uint16(s.rng.Intn(65536)),
			DstPort: uint16(s.rng.Intn(65536)),
			Proto:   s.genPacketProto(),
		}
	}
	return packets
}

func (s *Simulator) genPacketIP() uint32 {
	if s.rng.Float64() < 0.5 {
		return lanBase | (s.rng.Uint32() & 0xFFFF)
	}
	return s.rng.Uint32()
}

func (s *Simulator) genPacketProto() uint8 {
	if s.rng.Float64() < 0.1 {
		return ProtoIGMP
	}
	if s.rng.Intn(2) == 0 {
		return ProtoTCP
	}
	return ProtoUDP
}
