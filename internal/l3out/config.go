// SPDX-License-Identifier:Apache-2.0

package l3out

// Plan is the complete addressing and routing plan for one L3Out. It is the
// single structure handed to the provisioner and is fully determined by the
// input configuration: deriving it twice from the same input yields the same
// plan. Optional protocol fragments are nil pointers when the feature is
// off, so they disappear from the serialized form entirely instead of
// showing up with default values.
type Plan struct {
	Name               string   `json:"name"`
	Tenant             string   `json:"tenant"`
	VRF                string   `json:"vrf"`
	L3Domain           string   `json:"l3domain"`
	RouterIDAsLoopback bool     `json:"routerIdAsLoopback"`
	StaticSubnets      []string `json:"staticSubnets,omitempty"`

	Paths []Path `json:"paths"`

	// Nodes is the ordered, deduplicated node sequence. Its order is
	// authoritative: address allocation binds to the position in this
	// slice, never to any map iteration.
	Nodes []Node `json:"nodes"`

	Addresses []AddressAssignment `json:"addresses"`

	// Gateway is host #1 of the interconnect subnet, the next hop of all
	// static routes.
	Gateway string `json:"gateway"`

	// FloatingAddress is the virtual IP shared by the VPC pair, host #N+2
	// of the interconnect subnet.
	FloatingAddress string `json:"floatingAddress"`

	StaticRoutes    []StaticRoute    `json:"staticRoutes"`
	ExternalSubnets []ExternalSubnet `json:"externalSubnets"`

	OSPF *OSPFConfig `json:"ospf,omitempty"`
	BGP  *BGPConfig  `json:"bgp,omitempty"`
}

// Path is the normalized attachment point carried through for the
// provisioner.
type Path struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	PodID  int    `json:"podId"`
	Nodes  []int  `json:"nodes"`
	VPC    bool   `json:"vpc"`
	VLANID int    `json:"vlanId"`
	MTU    *int   `json:"mtu,omitempty"`
}

// Node is one fabric node the L3Out attaches to. ID is the node identity
// string, unique across all paths; a node referenced by several paths is
// attributed to the first path that listed it.
type Node struct {
	// ID is the node identity, pod/<pod>/node-<n>.
	ID string `json:"id"`

	// RouterID is 1.<pod>.<node>.<vrfId>.
	RouterID string `json:"routerId"`

	// PathKey is the key of the path the node was first seen on.
	PathKey string `json:"pathKey"`

	// NodeID is the numeric fabric node id.
	NodeID int `json:"nodeId"`

	VPC bool `json:"vpc"`
}

// AddressAssignment binds one node to its point-to-point address.
type AddressAssignment struct {
	NodeID  string `json:"nodeId"`
	PathKey string `json:"pathKey"`

	// Address is the CIDR-notation address, interconnect subnet mask
	// reattached.
	Address string `json:"address"`

	// Side is the VPC side, "A" or "B", present only for VPC nodes.
	Side string `json:"side,omitempty"`
}

// StaticRoute is one (node, prefix) entry. Key is <node identity>/<prefix>,
// unique by construction, and serves as the stable identifier for
// idempotent upserts downstream.
type StaticRoute struct {
	Key     string `json:"key"`
	NodeID  string `json:"nodeId"`
	Prefix  string `json:"prefix"`
	NextHop string `json:"nextHop"`
}

// ExternalSubnet is one (external EPG, prefix) entry. Key is
// <epg key>/<prefix>, unique even when two EPGs carry the same prefix.
type ExternalSubnet struct {
	Key    string   `json:"key"`
	EPG    string   `json:"epg"`
	Prefix string   `json:"prefix"`
	Scope  []string `json:"scope,omitempty"`
}

// OSPFConfig is the OSPF fragment. All three sub-structures are always
// populated when the fragment exists: caller overrides merged over the
// defaults.
type OSPFConfig struct {
	Area   OSPFArea   `json:"area"`
	Timers OSPFTimers `json:"timers"`
	Auth   OSPFAuth   `json:"auth"`
}

type OSPFArea struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Cost int    `json:"cost"`
}

type OSPFTimers struct {
	Hello         int `json:"hello"`
	Dead          int `json:"dead"`
	Retransmit    int `json:"retransmit"`
	TransmitDelay int `json:"transmitDelay"`
	Priority      int `json:"priority"`
}

type OSPFAuth struct {
	Key   string `json:"key"`
	KeyID int    `json:"keyId"`
	Type  string `json:"type"`
}

// BGPConfig is the BGP fragment, present only when at least one peer is
// configured.
type BGPConfig struct {
	// Enabled is "yes" whenever the fragment exists. The consuming schema
	// keys off the presence of the field, hence a string instead of a bool.
	Enabled string `json:"enable"`

	Peers map[string]BGPPeer `json:"peers"`
}

type BGPPeer struct {
	Address  string `json:"address"`
	LocalAS  int    `json:"localAs"`
	RemoteAS int    `json:"remoteAs"`
	Password string `json:"password,omitempty"`
}
