package domain

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/netip"
	"strconv"
	"strings"

	"go4.org/netipx"
)

var errBadMask = errors.New("bad netmask")

// ParseNetwork parses s as an IP network without requiring host bits to be
// zero; any set host bits are masked off. Besides addr/len it accepts a bare
// address (a single-host network) and an IPv4 dotted netmask or hostmask.
func ParseNetwork(s string) (netip.Prefix, error) {
	addrPart, maskPart, hasMask := strings.Cut(s, "/")

	addr, err := netip.ParseAddr(addrPart)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("parse address %q: %w", addrPart, err)
	}
	if addr.Zone() != "" {
		return netip.Prefix{}, fmt.Errorf("zoned address %q not allowed", addrPart)
	}

	bits := addr.BitLen()
	if hasMask {
		bits, err = parseMask(addr, maskPart)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("parse mask %q: %w", maskPart, err)
		}
	}

	return netip.PrefixFrom(addr, bits).Masked(), nil
}

func parseMask(addr netip.Addr, mask string) (int, error) {
	if mask != "" && isDigits(mask) {
		bits, err := strconv.Atoi(mask)
		if err != nil || bits > addr.BitLen() {
			return 0, errBadMask
		}
		return bits, nil
	}

	if !addr.Is4() {
		return 0, errBadMask
	}
	m, err := netip.ParseAddr(mask)
	if err != nil || !m.Is4() {
		return 0, errBadMask
	}

	raw := m.As4()
	if ones, size := net.IPMask(raw[:]).Size(); size != 0 {
		return ones, nil
	}

	// Hostmask form, e.g. 0.0.0.255.
	for i := range raw {
		raw[i] = ^raw[i]
	}
	if ones, size := net.IPMask(raw[:]).Size(); size != 0 {
		return ones, nil
	}
	return 0, errBadMask
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CalculateNetworkInfo derives network metadata from a CIDR string. The
// boolean is false when s is not a parseable network.
func CalculateNetworkInfo(s string) (NetworkInfo, bool) {
	prefix, err := ParseNetwork(s)
	if err != nil {
		return NetworkInfo{}, false
	}
	return NetworkInfoForPrefix(prefix), true
}

// NetworkInfoForPrefix computes metadata for an already masked prefix.
// UsableHosts is always Hosts-2, so /31 and /32 blocks report 0 and -1.
func NetworkInfoForPrefix(prefix netip.Prefix) NetworkInfo {
	prefix = prefix.Masked()
	addrBits := prefix.Addr().BitLen()

	hosts := new(big.Int).Lsh(big.NewInt(1), uint(addrBits-prefix.Bits()))
	usable := new(big.Int).Sub(hosts, big.NewInt(2))

	mask, _ := netip.AddrFromSlice(net.CIDRMask(prefix.Bits(), addrBits))

	return NetworkInfo{
		Network:     prefix.Addr().String(),
		Netmask:     mask.String(),
		Broadcast:   netipx.PrefixLastIP(prefix).String(),
		Hosts:       hosts,
		UsableHosts: usable,
		Prefix:      prefix.Bits(),
	}
}

// Utilization returns allocated/usable*100 rounded to two decimals, or 0 when
// the block has no usable addresses.
func Utilization(allocated int64, usable *big.Int) float64 {
	if usable == nil || usable.Sign() <= 0 {
		return 0
	}
	ratio := new(big.Rat).SetFrac(new(big.Int).Mul(big.NewInt(allocated), big.NewInt(100)), usable)
	pct, _ := ratio.Float64()
	return math.Round(pct*100) / 100
}
