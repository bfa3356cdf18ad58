// SPDX-License-Identifier:Apache-2.0

package conversion

import (
	"github.com/l3plan/l3plan/internal/l3out"
)

// StaticRoutesForNodes emits the full nodes x prefixes cross-product, every
// route pointing at the static gateway. Keys are <node identity>/<prefix>,
// pairwise unique by construction.
func StaticRoutesForNodes(nodes []l3out.Node, prefixes []string, gateway string) []l3out.StaticRoute {
	res := make([]l3out.StaticRoute, 0, len(nodes)*len(prefixes))
	for _, node := range nodes {
		for _, prefix := range prefixes {
			res = append(res, l3out.StaticRoute{
				Key:     node.ID + "/" + prefix,
				NodeID:  node.ID,
				Prefix:  prefix,
				NextHop: gateway,
			})
		}
	}
	return res
}
