package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetuple/classify/rule"
	"github.com/fivetuple/classify/simulate"
)

func TestToFiveTupleTCP(t *testing.T) {
	p := simulate.Packet{
		IP:   simulate.IPv4Header{Src: 0xC0A80001, Dst: 0x08080808, Proto: simulate.ProtoTCP},
		Kind: simulate.L4TCP,
		TCP:  simulate.TCPHeader{SrcPort: 51820, DstPort: 443},
	}

	require.Equal(t, rule.FiveTuple{
		SrcIP: 0xC0A80001, DstIP: 0x08080808, SrcPort: 51820, DstPort: 443, Proto: simulate.ProtoTCP,
	}, simulate.ToFiveTuple(p))
}

func TestToFiveTupleUDP(t *testing.T) {
	p := simulate.Packet{
		IP:   simulate.IPv4Header{Src: 1, Dst: 2, Proto: simulate.ProtoUDP},
		Kind: simulate.L4UDP,
		UDP:  simulate.UDPHeader{SrcPort: 53, DstPort: 12345},
	}

	require.Equal(t, rule.FiveTuple{
		SrcIP: 1, DstIP: 2, SrcPort: 53, DstPort: 12345, Proto: simulate.ProtoUDP,
	}, simulate.ToFiveTuple(p))
}

func TestToFiveTupleIGMPHasNoPorts(t *testing.T) {
	p := simulate.Packet{
		IP:   simulate.IPv4Header{Src: 1, Dst: 0xE0000001, Proto: simulate.ProtoIGMP},
		Kind: simulate.L4IGMP,
		IGMP: simulate.IGMPHeader{Type: 0x16, GroupAddr: 0xE0000001},
	}

	got := simulate.ToFiveTuple(p)
	require.Equal(t, rule.FiveTuple{SrcIP: 1, DstIP: 0xE0000001, Proto: simulate.ProtoIGMP}, got)
	require.Zero(t, got.SrcPort)
	require.Zero(t, got.DstPort)
}
