// SPDX-License-Identifier:Apache-2.0

package conversion

import (
	"sort"

	"github.com/samber/lo"

	"github.com/l3plan/l3plan/api/topology"
	"github.com/l3plan/l3plan/internal/l3out"
)

const (
	defaultEPGKey   = "default"
	defaultEPGCIDR  = "0.0.0.0/0"
	defaultEPGScope = "import-security"
)

// ExternalSubnetsFromEPGs flattens every external EPG against its own
// prefix list. Keys are <epg key>/<prefix>, so two EPGs sharing a prefix
// still produce distinct entries. With no EPGs configured a catch-all
// default EPG is assumed. EPG keys are walked in sorted order to keep the
// output deterministic; nothing positional is derived from it.
func ExternalSubnetsFromEPGs(epgs map[string]topology.ExternalEPG) []l3out.ExternalSubnet {
	if len(epgs) == 0 {
		epgs = map[string]topology.ExternalEPG{
			defaultEPGKey: {
				Subnets: []string{defaultEPGCIDR},
				Scope:   []string{defaultEPGScope},
			},
		}
	}

	keys := lo.Keys(epgs)
	sort.Strings(keys)

	res := []l3out.ExternalSubnet{}
	for _, key := range keys {
		epg := epgs[key]
		for _, prefix := range epg.Subnets {
			res = append(res, l3out.ExternalSubnet{
				Key:    key + "/" + prefix,
				EPG:    key,
				Prefix: prefix,
				Scope:  append([]string{}, epg.Scope...),
			})
		}
	}
	return res
}
