// SPDX-License-Identifier:Apache-2.0

package topology

// L3OutConfig is the declarative description of an L3Out: where it attaches,
// which subnet the point-to-point links are carved from, and which routing
// features are turned on. Everything the planner produces is a pure function
// of this structure.
type L3OutConfig struct {
	// Name of the L3Out object.
	Name string `json:"name"`

	// Tenant the L3Out belongs to.
	Tenant string `json:"tenant"`

	// VRF the external routes are leaked into.
	VRF string `json:"vrf"`

	// VRFID disambiguates router IDs across L3Outs that share a tenant but
	// use different VRFs. Defaults to 1.
	VRFID int `json:"vrfId,omitempty"`

	// L3Domain is the routed domain the paths are bound to.
	L3Domain string `json:"l3domain"`

	// RouterIDAsLoopback is passed through to the provisioner untouched.
	RouterIDAsLoopback bool `json:"routerIdAsLoopback,omitempty"`

	// StaticSubnets are carried on the plan for the provisioner; the planner
	// validates their syntax but never consumes them.
	StaticSubnets []string `json:"staticSubnets,omitempty"`

	// InterconnectSubnet is the CIDR all point-to-point addresses, the
	// static gateway and the floating address are allocated from.
	InterconnectSubnet string `json:"interconnectSubnet"`

	// Paths are the attachment points. Their document order defines the
	// node sequence, which in turn defines address allocation.
	Paths PathList `json:"paths"`

	// ExternalEPGs describe the external prefixes and their scopes. When
	// empty, a catch-all "default" EPG covering 0.0.0.0/0 is assumed.
	ExternalEPGs map[string]ExternalEPG `json:"externalEpgs,omitempty"`

	// StaticRoutes are destination prefixes configured on every node via
	// the static gateway.
	StaticRoutes []string `json:"staticRoutes,omitempty"`

	OSPFEnable bool       `json:"ospfEnable,omitempty"`
	OSPFArea   OSPFArea   `json:"ospfArea,omitempty"`
	OSPFTimers OSPFTimers `json:"ospfTimers,omitempty"`
	OSPFAuth   OSPFAuth   `json:"ospfAuth,omitempty"`

	// BGPPeers maps a peer key to its session parameters. A non-empty map
	// turns the BGP fragment on.
	BGPPeers map[string]BGPPeer `json:"bgpPeers,omitempty"`
}

// Path is a physical or virtual attachment point. One path may reference
// several fabric nodes (two for a VPC pair).
type Path struct {
	// Key is the identifier the path was registered under. Filled from the
	// map key during decoding, never from the document body.
	Key string `json:"-"`

	Name  string `json:"name"`
	PodID int    `json:"podId"`

	// Nodes are the fabric node ids, in order.
	Nodes []int `json:"nodes"`

	// VPC marks a dual-homed virtual port-channel path.
	VPC bool `json:"vpc,omitempty"`

	VLANID int `json:"vlanId"`

	// MTU, when nil, is left to the fabric default.
	MTU *int `json:"mtu,omitempty"`
}

// ExternalEPG groups external prefixes under a shared security scope.
type ExternalEPG struct {
	Subnets []string `json:"subnets"`
	Scope   []string `json:"scope,omitempty"`
}

// OSPFArea carries the area settings merged over documented defaults when
// OSPF is enabled. Numeric overrides are pointers: nil means "use the
// default", while an explicit zero (a valid DR priority, for one) is kept.
type OSPFArea struct {
	ID   int    `json:"id,omitempty"`
	Type string `json:"type,omitempty"`
	Cost *int   `json:"cost,omitempty"`
}

type OSPFTimers struct {
	Hello         *int `json:"hello,omitempty"`
	Dead          *int `json:"dead,omitempty"`
	Retransmit    *int `json:"retransmit,omitempty"`
	TransmitDelay *int `json:"transmitDelay,omitempty"`
	Priority      *int `json:"priority,omitempty"`
}

type OSPFAuth struct {
	Key   string `json:"key,omitempty"`
	KeyID *int   `json:"keyId,omitempty"`
	Type  string `json:"type,omitempty"`
}

// BGPPeer is one BGP session, passed through to the provisioner verbatim.
type BGPPeer struct {
	Address  string `json:"address"`
	LocalAS  int    `json:"localAs"`
	RemoteAS int    `json:"remoteAs"`
	Password string `json:"password,omitempty"`
}

// SetDefaults fills the config-level defaults. Feature-fragment defaults
// (OSPF area, timers, auth) are merged at derivation time instead, so that
// an absent fragment stays absent.
func (c *L3OutConfig) SetDefaults() {
	if c.VRFID == 0 {
		c.VRFID = 1
	}
}
