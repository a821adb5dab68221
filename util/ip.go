package util

import (
	"net"
	"strings"
)

// IsIP returns true if string is a valid IP address
func IsIP(ip string) bool {
	return net.ParseIP(ip) != nil
}

//IsIPv4 checks if an ip is ipv4
func IsIPv4(address string) bool {
	return strings.Count(address, ":") < 2
}
