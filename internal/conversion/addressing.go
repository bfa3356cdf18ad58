// SPDX-License-Identifier:Apache-2.0

package conversion

import (
	"fmt"

	"github.com/l3plan/l3plan/internal/ipam"
	"github.com/l3plan/l3plan/internal/l3out"
)

const (
	// SideA and SideB are the two roles of a VPC pair. The side is a pure
	// function of node id parity, whatever path or pod the node sits in.
	SideA = "A"
	SideB = "B"
)

// AddressesForNodes assigns one point-to-point address per node out of the
// interconnect subnet. The ith node of the sequence gets host #i+2; host #1
// is the gateway. VPC nodes additionally carry their side.
func AddressesForNodes(nodes []l3out.Node, subnet string) ([]l3out.AddressAssignment, error) {
	res := make([]l3out.AddressAssignment, 0, len(nodes))
	for i, node := range nodes {
		ip, err := ipam.NodeIP(subnet, i)
		if err != nil {
			return nil, fmt.Errorf("failed to get address for node %s, subnet %s: %w", node.ID, subnet, err)
		}

		assignment := l3out.AddressAssignment{
			NodeID:  node.ID,
			PathKey: node.PathKey,
			Address: ip.String(),
		}
		if node.VPC {
			assignment.Side = vpcSide(node.NodeID)
		}
		res = append(res, assignment)
	}
	return res, nil
}

func vpcSide(nodeID int) string {
	if nodeID%2 == 0 {
		return SideB
	}
	return SideA
}
