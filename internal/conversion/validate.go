// SPDX-License-Identifier:Apache-2.0

package conversion

import (
	"fmt"
	"net"

	"github.com/l3plan/l3plan/api/topology"
	"github.com/l3plan/l3plan/internal/ipam"
)

// Validate checks the whole config before any derivation runs. Once it
// passes, the derivation functions are total: they cannot fail halfway.
func Validate(cfg topology.L3OutConfig) error {
	if cfg.InterconnectSubnet == "" {
		return fmt.Errorf("interconnectSubnet is required")
	}
	if _, _, err := net.ParseCIDR(cfg.InterconnectSubnet); err != nil {
		return fmt.Errorf("invalid interconnectSubnet %s: %w", cfg.InterconnectSubnet, err)
	}

	if err := validatePrefixes("staticSubnets", cfg.StaticSubnets); err != nil {
		return err
	}
	if err := validatePrefixes("staticRoutes", cfg.StaticRoutes); err != nil {
		return err
	}
	for key, epg := range cfg.ExternalEPGs {
		if err := validatePrefixes(fmt.Sprintf("externalEpgs[%s].subnets", key), epg.Subnets); err != nil {
			return err
		}
	}

	if cfg.OSPFEnable {
		if err := validateOSPFAuth(cfg.OSPFAuth); err != nil {
			return err
		}
	}

	// The node count decides how much of the interconnect subnet is
	// needed; failing here keeps host numbering from running off the end
	// of the subnet during allocation.
	nodes := NodesFromPaths(cfg.Paths, cfg.VRFID)
	if err := ipam.CheckCapacity(cfg.InterconnectSubnet, len(nodes)); err != nil {
		return fmt.Errorf("interconnectSubnet too small: %w", err)
	}

	return nil
}

func validatePrefixes(field string, prefixes []string) error {
	for _, prefix := range prefixes {
		if _, _, err := net.ParseCIDR(prefix); err != nil {
			return fmt.Errorf("invalid prefix %s in %s: %w", prefix, field, err)
		}
	}
	return nil
}

func validateOSPFAuth(auth topology.OSPFAuth) error {
	switch auth.Type {
	case "", "none", "md5", "simple":
	default:
		return fmt.Errorf("invalid ospfAuth.type %s: must be one of [md5, simple, none]", auth.Type)
	}

	if auth.KeyID != nil && (*auth.KeyID < 1 || *auth.KeyID > 255) {
		return fmt.Errorf("invalid ospfAuth.keyId %d: must be between 1 and 255", *auth.KeyID)
	}
	return nil
}
