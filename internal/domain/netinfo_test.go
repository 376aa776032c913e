package domain

import (
	"fmt"
	"math/big"
	"net/netip"
	"testing"

	"pgregory.net/rapid"
)

func TestCalculateNetworkInfo(t *testing.T) {
	tests := []struct {
		name      string
		cidr      string
		network   string
		netmask   string
		broadcast string
		hosts     int64
		usable    int64
		prefix    int
	}{
		{"class c", "192.168.1.0/24", "192.168.1.0", "255.255.255.0", "192.168.1.255", 256, 254, 24},
		{"host bits masked", "10.0.0.77/24", "10.0.0.0", "255.255.255.0", "10.0.0.255", 256, 254, 24},
		{"dotted netmask", "172.16.4.0/255.255.252.0", "172.16.4.0", "255.255.252.0", "172.16.7.255", 1024, 1022, 22},
		{"hostmask", "172.16.4.0/0.0.3.255", "172.16.4.0", "255.255.252.0", "172.16.7.255", 1024, 1022, 22},
		{"bare address", "10.1.2.3", "10.1.2.3", "255.255.255.255", "10.1.2.3", 1, -1, 32},
		{"point to point", "10.0.0.0/31", "10.0.0.0", "255.255.255.254", "10.0.0.1", 2, 0, 31},
		{"single host", "10.0.0.9/32", "10.0.0.9", "255.255.255.255", "10.0.0.9", 1, -1, 32},
		{"ipv6", "2001:db8::/120", "2001:db8::", "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ff00", "2001:db8::ff", 256, 254, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := CalculateNetworkInfo(tt.cidr)
			if !ok {
				t.Fatalf("expected %q to parse", tt.cidr)
			}
			if info.Network != tt.network {
				t.Fatalf("network: expected %q, got %q", tt.network, info.Network)
			}
			if info.Netmask != tt.netmask {
				t.Fatalf("netmask: expected %q, got %q", tt.netmask, info.Netmask)
			}
			if info.Broadcast != tt.broadcast {
				t.Fatalf("broadcast: expected %q, got %q", tt.broadcast, info.Broadcast)
			}
			if info.Hosts.Int64() != tt.hosts {
				t.Fatalf("hosts: expected %d, got %s", tt.hosts, info.Hosts)
			}
			if info.UsableHosts.Int64() != tt.usable {
				t.Fatalf("usable hosts: expected %d, got %s", tt.usable, info.UsableHosts)
			}
			if info.Prefix != tt.prefix {
				t.Fatalf("prefix: expected %d, got %d", tt.prefix, info.Prefix)
			}
		})
	}
}

func TestCalculateNetworkInfoIPv6HostCountExceedsInt64(t *testing.T) {
	info, ok := CalculateNetworkInfo("2001:db8::/32")
	if !ok {
		t.Fatal("expected ipv6 /32 to parse")
	}
	want := new(big.Int).Lsh(big.NewInt(1), 96)
	if info.Hosts.Cmp(want) != 0 {
		t.Fatalf("expected 2^96 hosts, got %s", info.Hosts)
	}
}

func TestCalculateNetworkInfoRejectsMalformed(t *testing.T) {
	for _, cidr := range []string{
		"",
		"not-a-cidr",
		"10.0.0.0/33",
		"10.0.0.0/-1",
		"10.0.0.0/",
		"10.0.0.256/24",
		"10.0.0.0/255.0.255.0",
		"2001:db8::/129",
		"2001:db8::/ffff::",
		"fe80::1%eth0/64",
		" 10.0.0.0/24",
	} {
		if _, ok := CalculateNetworkInfo(cidr); ok {
			t.Errorf("expected %q to be rejected", cidr)
		}
	}
}

func TestUtilization(t *testing.T) {
	tests := []struct {
		allocated int64
		usable    int64
		want      float64
	}{
		{0, 254, 0},
		{127, 254, 50},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{5, 0, 0},
		{1, -1, 0},
	}
	for _, tt := range tests {
		got := Utilization(tt.allocated, big.NewInt(tt.usable))
		if got != tt.want {
			t.Errorf("Utilization(%d, %d): expected %v, got %v", tt.allocated, tt.usable, tt.want, got)
		}
	}
}

func TestNetworkInfoIPv4Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.Byte(), 4, 4).Draw(t, "addr")
		bits := rapid.IntRange(0, 32).Draw(t, "bits")

		addr := netip.AddrFrom4([4]byte{raw[0], raw[1], raw[2], raw[3]})
		cidr := fmt.Sprintf("%s/%d", addr, bits)

		info, ok := CalculateNetworkInfo(cidr)
		if !ok {
			t.Fatalf("expected %q to parse", cidr)
		}

		hosts := new(big.Int).Lsh(big.NewInt(1), uint(32-bits))
		if info.Hosts.Cmp(hosts) != 0 {
			t.Fatalf("hosts: expected %s, got %s", hosts, info.Hosts)
		}
		if usable := new(big.Int).Sub(hosts, big.NewInt(2)); info.UsableHosts.Cmp(usable) != 0 {
			t.Fatalf("usable: expected %s, got %s", usable, info.UsableHosts)
		}
		if bits >= 31 && info.UsableHosts.Sign() > 0 {
			t.Fatalf("expected non-positive usable hosts for /%d, got %s", bits, info.UsableHosts)
		}
		if info.Prefix != bits {
			t.Fatalf("prefix: expected %d, got %d", bits, info.Prefix)
		}
		if want := netip.PrefixFrom(addr, bits).Masked().Addr().String(); info.Network != want {
			t.Fatalf("network: expected %s, got %s", want, info.Network)
		}

		again, ok := CalculateNetworkInfo(fmt.Sprintf("%s/%d", info.Network, info.Prefix))
		if !ok || again.Network != info.Network || again.Broadcast != info.Broadcast {
			t.Fatalf("normalized network %s/%d did not round trip", info.Network, info.Prefix)
		}
	})
}

func TestNetworkInfoRejectsGarbageProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[g-z]{1,12}(/[0-9]{1,2})?`).Draw(t, "cidr")
		if _, ok := CalculateNetworkInfo(s); ok {
			t.Fatalf("expected %q to be rejected", s)
		}
	})
}
