package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// RealIP reemplaza RemoteAddr por la IP del cliente solo si el request llega
// desde un proxy de confianza. Sin proxies configurados no toca nada.
//
// X-Forwarded-For se recorre de derecha a izquierda salteando proxies
// de confianza; la primera IP ajena es el cliente.
func RealIP(trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(trusted) > 0 && isTrusted(trusted, remoteAddr(r)) {
				if ip := forwardedClient(trusted, r); ip.IsValid() {
					r.RemoteAddr = ip.String()
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func forwardedClient(trusted []netip.Prefix, r *http.Request) netip.Addr {
	if xff := r.Header.Values("X-Forwarded-For"); len(xff) > 0 {
		hops := strings.Split(strings.Join(xff, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			ip, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
			if err != nil {
				// hop ilegible: no seguimos más a la izquierda
				return netip.Addr{}
			}
			if !isTrusted(trusted, ip) {
				return ip
			}
		}
		return netip.Addr{}
	}

	if ip, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return ip
	}
	return netip.Addr{}
}

func remoteAddr(r *http.Request) netip.Addr {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}
	}
	return ip.Unmap()
}

func isTrusted(trusted []netip.Prefix, ip netip.Addr) bool {
	if !ip.IsValid() {
		return false
	}
	ip = ip.Unmap()
	for _, p := range trusted {
		if p.Contains(ip) {
			return true
		}
	}
	return false
}
