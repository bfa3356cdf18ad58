// SPDX-License-Identifier:Apache-2.0

package conversion

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/l3plan/l3plan/api/topology"
	"github.com/l3plan/l3plan/internal/l3out"
)

// NodesFromPaths flattens the paths into the ordered node sequence. Nodes
// are emitted in path-then-node order and deduplicated by identity keeping
// the first occurrence, so a node listed by two paths belongs to whichever
// path listed it first. The position in the returned slice is what address
// allocation binds to.
func NodesFromPaths(paths topology.PathList, vrfID int) []l3out.Node {
	candidates := []l3out.Node{}
	for _, path := range paths {
		for _, id := range path.Nodes {
			candidates = append(candidates, l3out.Node{
				ID:       nodeIdentity(path.PodID, id),
				RouterID: routerID(path.PodID, id, vrfID),
				PathKey:  path.Key,
				NodeID:   id,
				VPC:      path.VPC,
			})
		}
	}

	return lo.UniqBy(candidates, func(n l3out.Node) string { return n.ID })
}

// NodesByID derives the identity-keyed lookup from the ordered sequence.
// Only good for membership and attribute lookup; positional computation
// must use the slice.
func NodesByID(nodes []l3out.Node) map[string]l3out.Node {
	res := make(map[string]l3out.Node, len(nodes))
	for _, n := range nodes {
		res[n.ID] = n
	}
	return res
}

func nodeIdentity(podID, nodeID int) string {
	return fmt.Sprintf("pod/%d/node-%d", podID, nodeID)
}

// routerID is 1.<pod>.<node>.<vrf>. The vrf octet keeps router IDs unique
// across L3Outs that share a tenant but live in different VRFs.
func routerID(podID, nodeID, vrfID int) string {
	return fmt.Sprintf("1.%d.%d.%d", podID, nodeID, vrfID)
}
