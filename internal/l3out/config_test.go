// SPDX-License-Identifier:Apache-2.0

package l3out

import (
	"encoding/json"
	"strings"
	"testing"
)

// Consumers distinguish an omitted fragment from one populated with
// defaults, so a plan without OSPF or BGP must serialize without those keys
// at all.
func TestPlanFragmentsOmittedWhenAbsent(t *testing.T) {
	plan := Plan{
		Name:    "out1",
		Gateway: "10.0.0.1/28",
	}

	data, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("got error %s", err)
	}

	if strings.Contains(string(data), "\"ospf\"") {
		t.Fatalf("ospf key present in %s", data)
	}
	if strings.Contains(string(data), "\"bgp\"") {
		t.Fatalf("bgp key present in %s", data)
	}
}

func TestPlanFragmentsPresentWhenSet(t *testing.T) {
	plan := Plan{
		OSPF: &OSPFConfig{
			Area:   OSPFArea{ID: 0, Type: "regular", Cost: 1},
			Timers: OSPFTimers{Hello: 10, Dead: 40, Retransmit: 5, TransmitDelay: 1, Priority: 1},
			Auth:   OSPFAuth{KeyID: 1, Type: "none"},
		},
		BGP: &BGPConfig{
			Enabled: "yes",
			Peers:   map[string]BGPPeer{"up": {Address: "10.9.9.1", LocalAS: 65000, RemoteAS: 65001}},
		},
	}

	data, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("got error %s", err)
	}

	var decoded Plan
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("got error %s", err)
	}

	if decoded.OSPF == nil || decoded.OSPF.Area.Type != "regular" {
		t.Fatalf("ospf fragment lost in round trip: %s", data)
	}
	if decoded.BGP == nil || decoded.BGP.Enabled != "yes" {
		t.Fatalf("bgp fragment lost in round trip: %s", data)
	}
}

func TestSummary(t *testing.T) {
	plan := Plan{
		Name:            "dc-out",
		Tenant:          "prod",
		VRF:             "prod-vrf",
		L3Domain:        "l3dom",
		Gateway:         "10.0.0.1/28",
		FloatingAddress: "10.0.0.4/28",
		Nodes: []Node{
			{ID: "pod/1/node-101", RouterID: "1.1.101.5", PathKey: "p1", NodeID: 101},
		},
		Addresses: []AddressAssignment{
			{NodeID: "pod/1/node-101", PathKey: "p1", Address: "10.0.0.2/28", Side: "A"},
		},
		StaticRoutes: []StaticRoute{
			{Key: "pod/1/node-101/172.16.0.0/16", NodeID: "pod/1/node-101", Prefix: "172.16.0.0/16", NextHop: "10.0.0.1/28"},
		},
		ExternalSubnets: []ExternalSubnet{
			{Key: "default/0.0.0.0/0", EPG: "default", Prefix: "0.0.0.0/0", Scope: []string{"import-security"}},
		},
		OSPF: &OSPFConfig{
			Area:   OSPFArea{ID: 0, Type: "regular", Cost: 1},
			Timers: OSPFTimers{Hello: 10, Dead: 40, Retransmit: 5, TransmitDelay: 1, Priority: 1},
			Auth:   OSPFAuth{KeyID: 1, Type: "none"},
		},
	}

	out, err := plan.Summary()
	if err != nil {
		t.Fatalf("got error %s", err)
	}

	for _, line := range []string{
		"l3out dc-out tenant prod vrf prod-vrf domain l3dom",
		"gateway 10.0.0.1/28",
		"floating 10.0.0.4/28",
		"node pod/1/node-101 router-id 1.1.101.5 path p1",
		"address pod/1/node-101 10.0.0.2/28 side A",
		"route 172.16.0.0/16 via 10.0.0.1/28 on pod/1/node-101",
		"external-subnet 0.0.0.0/0 epg default scope import-security",
		"ospf area 0 type regular cost 1",
	} {
		if !strings.Contains(out, line) {
			t.Fatalf("summary missing %q:\n%s", line, out)
		}
	}

	if strings.Contains(out, "bgp enable") {
		t.Fatalf("summary shows bgp for a plan without it:\n%s", out)
	}
}
