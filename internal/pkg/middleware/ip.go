package middleware

import (
	"fmt"
	"net"
	"strings"

	"github.com/labstack/echo/v4"
)

// IPExtractor decides how echo resolves the client IP used for rate limiting.
// With no trusted proxies the TCP peer address is used and forwarding headers
// are ignored. Otherwise X-Forwarded-For is honoured only for hops coming from
// the listed proxies, given as CIDRs or bare IPs.
func IPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, proxy := range trustedProxies {
		ipNet, err := parseProxy(proxy)
		if err != nil {
			return nil, err
		}
		options = append(options, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(options...), nil
}

func parseProxy(proxy string) (*net.IPNet, error) {
	proxy = strings.TrimSpace(proxy)
	if !strings.Contains(proxy, "/") {
		ip := net.ParseIP(proxy)
		if ip == nil {
			return nil, fmt.Errorf("invalid trusted proxy %q", proxy)
		}
		if ip.To4() != nil {
			proxy += "/32"
		} else {
			proxy += "/128"
		}
	}

	_, ipNet, err := net.ParseCIDR(proxy)
	if err != nil {
		return nil, fmt.Errorf("invalid trusted proxy %q: %w", proxy, err)
	}
	return ipNet, nil
}
