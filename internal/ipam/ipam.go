// SPDX-License-Identifier:Apache-2.0

package ipam

import (
	"fmt"
	"net"

	gocidr "github.com/apparentlymart/go-cidr/cidr"
)

// The interconnect subnet is carved as follows: host #1 is the static
// gateway, hosts #2..#N+1 belong to the N fabric nodes in sequence order,
// host #N+2 is the floating address of the VPC pair.
const (
	gatewayHost   = 1
	firstNodeHost = 2
	reservedHosts = 2 // gateway + floating
	edgeAddresses = 2 // network + broadcast
)

// Gateway returns the static gateway address of the pool, host #1 with the
// pool mask attached.
func Gateway(pool string) (net.IPNet, error) {
	_, cidr, err := net.ParseCIDR(pool)
	if err != nil {
		return net.IPNet{}, fmt.Errorf("failed to parse pool %s: %w", pool, err)
	}
	res, err := hostElem(cidr, gatewayHost)
	if err != nil {
		return net.IPNet{}, err
	}
	return *res, nil
}

// NodeIP returns the address of the ith node of the pool. Node 0 gets host
// #2; host #1 is the gateway.
func NodeIP(pool string, index int) (net.IPNet, error) {
	_, cidr, err := net.ParseCIDR(pool)
	if err != nil {
		return net.IPNet{}, fmt.Errorf("failed to parse pool %s: %w", pool, err)
	}
	res, err := hostElem(cidr, index+firstNodeHost)
	if err != nil {
		return net.IPNet{}, err
	}
	return *res, nil
}

// FloatingIP returns the virtual address advertised by the VPC pair, the
// first host after the node range.
func FloatingIP(pool string, nodeCount int) (net.IPNet, error) {
	_, cidr, err := net.ParseCIDR(pool)
	if err != nil {
		return net.IPNet{}, fmt.Errorf("failed to parse pool %s: %w", pool, err)
	}
	res, err := hostElem(cidr, nodeCount+reservedHosts)
	if err != nil {
		return net.IPNet{}, err
	}
	return *res, nil
}

// CheckCapacity fails when the pool cannot hold the gateway, nodeCount node
// addresses and the floating address as usable hosts. Host numbering would
// otherwise silently run into the broadcast address.
func CheckCapacity(pool string, nodeCount int) error {
	_, cidr, err := net.ParseCIDR(pool)
	if err != nil {
		return fmt.Errorf("failed to parse pool %s: %w", pool, err)
	}

	total := gocidr.AddressCount(cidr)
	usable := uint64(0)
	if total > edgeAddresses {
		usable = total - edgeAddresses
	}

	required := uint64(nodeCount) + reservedHosts
	if usable < required {
		return fmt.Errorf("subnet %s provides %d usable host addresses, need %d (gateway + %d nodes + floating)",
			pool, usable, required, nodeCount)
	}
	return nil
}

// hostElem returns host number n of the cidr with the cidr mask reattached.
func hostElem(pool *net.IPNet, n int) (*net.IPNet, error) {
	ip, err := gocidr.Host(pool, n)
	if err != nil {
		return nil, fmt.Errorf("failed to get host %d from %s: %w", n, pool, err)
	}
	return &net.IPNet{
		IP:   ip,
		Mask: pool.Mask,
	}, nil
}
