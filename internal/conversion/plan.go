// SPDX-License-Identifier:Apache-2.0

package conversion

import (
	"fmt"

	"github.com/l3plan/l3plan/api/topology"
	"github.com/l3plan/l3plan/internal/ipam"
	"github.com/l3plan/l3plan/internal/l3out"
)

// APItoPlan derives the complete addressing and routing plan from the
// config. Validation runs first; once it passes, the derivation cannot fail
// and the same input always yields the same plan. Empty paths are valid and
// produce empty node-derived collections.
func APItoPlan(cfg topology.L3OutConfig) (l3out.Plan, error) {
	cfg.SetDefaults()

	if err := Validate(cfg); err != nil {
		return l3out.Plan{}, err
	}

	nodes := NodesFromPaths(cfg.Paths, cfg.VRFID)

	gateway, err := ipam.Gateway(cfg.InterconnectSubnet)
	if err != nil {
		return l3out.Plan{}, fmt.Errorf("failed to get gateway from %s: %w", cfg.InterconnectSubnet, err)
	}

	floating, err := ipam.FloatingIP(cfg.InterconnectSubnet, len(nodes))
	if err != nil {
		return l3out.Plan{}, fmt.Errorf("failed to get floating address from %s: %w", cfg.InterconnectSubnet, err)
	}

	addresses, err := AddressesForNodes(nodes, cfg.InterconnectSubnet)
	if err != nil {
		return l3out.Plan{}, err
	}

	paths := make([]l3out.Path, 0, len(cfg.Paths))
	for _, p := range cfg.Paths {
		paths = append(paths, l3out.Path{
			Key:    p.Key,
			Name:   p.Name,
			PodID:  p.PodID,
			Nodes:  append([]int{}, p.Nodes...),
			VPC:    p.VPC,
			VLANID: p.VLANID,
			MTU:    p.MTU,
		})
	}

	return l3out.Plan{
		Name:               cfg.Name,
		Tenant:             cfg.Tenant,
		VRF:                cfg.VRF,
		L3Domain:           cfg.L3Domain,
		RouterIDAsLoopback: cfg.RouterIDAsLoopback,
		StaticSubnets:      append([]string{}, cfg.StaticSubnets...),
		Paths:              paths,
		Nodes:              nodes,
		Addresses:          addresses,
		Gateway:            gateway.String(),
		FloatingAddress:    floating.String(),
		StaticRoutes:       StaticRoutesForNodes(nodes, cfg.StaticRoutes, gateway.String()),
		ExternalSubnets:    ExternalSubnetsFromEPGs(cfg.ExternalEPGs),
		OSPF:               OSPFFragment(cfg),
		BGP:                BGPFragment(cfg.BGPPeers),
	}, nil
}
