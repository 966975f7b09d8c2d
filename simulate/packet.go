package simulate

import "github.com/fivetuple/classify/rule"

// L4Kind discriminates which of Packet's transport-header fields is
// populated, following the same tagged-field convention the classifier
// engines use for their tree nodes rather than an interface hierarchy.
type L4Kind int

const (
	L4None L4Kind = iota
	L4TCP
	L4UDP
	L4IGMP
)

// IPv4Header is a minimal stand-in for the network-layer header carried
// by Packet, supplemented from original_source's Ipv4Header: the address
// and protocol fields ToFiveTuple reads, plus a TTL it does not use.
type IPv4Header struct {
	Src   uint32
	Dst   uint32
	Proto uint8
	TTL   uint8
}

// TCPHeader mirrors original_source's TcpHeader.
type TCPHeader struct {
	SrcPort uint16
	DstPort uint16
	Flags   uint8
}

// UDPHeader mirrors original_source's UdpHeader.
type UDPHeader struct {
	SrcPort uint16
	DstPort uint16
}

// IGMPHeader mirrors original_source's IgmpHeader. IGMP carries no ports;
// GroupAddr is retained for completeness but does not feed FiveTuple.
type IGMPHeader struct {
	Type      uint8
	GroupAddr uint32
}

// Packet is a supplemented convenience type bundling an IPv4Header with
// exactly one populated transport header, letting callers build a
// five-tuple from header values instead of constructing one directly.
// The classifier engines never see a Packet; ToFiveTuple is the one
// bridge between the two.
type Packet struct {
	IP   IPv4Header
	Kind L4Kind
	TCP  TCPHeader
	UDP  UDPHeader
	IGMP IGMPHeader
}

// ToFiveTuple extracts the classifier-facing FiveTuple from a Packet.
// IGMP packets (and any Packet with no transport header set) have both
// ports set to zero, matching how the spec treats protocols without a
// meaningful port pair.
func ToFiveTuple(p Packet) rule.FiveTuple {
	var srcPort, dstPort uint16
	switch p.Kind {
	case L4TCP:
		srcPort, dstPort = p.TCP.SrcPort, p.TCP.DstPort
	case L4UDP:
		srcPort, dstPort = p.UDP.SrcPort, p.UDP.DstPort
	}

	return rule.FiveTuple{
		SrcIP:   p.IP.Src,
		DstIP:   p.IP.Dst,
		SrcPort: srcPort,
		DstPort: dstPort,
		Proto:   p.IP.Proto,
	}
}
