// SPDX-License-Identifier:Apache-2.0

package conversion

import (
	"k8s.io/utils/ptr"

	"github.com/l3plan/l3plan/api/topology"
	"github.com/l3plan/l3plan/internal/l3out"
)

const bgpEnabled = "yes"

// OSPF defaults, applied under the caller's settings when the fragment is
// emitted at all.
const (
	defaultOSPFAreaType = "regular"
	defaultOSPFAreaCost = 1

	defaultOSPFHello         = 10
	defaultOSPFDead          = 40
	defaultOSPFRetransmit    = 5
	defaultOSPFTransmitDelay = 1
	defaultOSPFPriority      = 1

	defaultOSPFAuthKeyID = 1
	defaultOSPFAuthType  = "none"
)

// OSPFFragment returns the OSPF fragment, or nil when OSPF is disabled. The
// consumer treats the presence of the fragment itself as the toggle, so a
// disabled OSPF must yield no fragment rather than one full of defaults.
func OSPFFragment(cfg topology.L3OutConfig) *l3out.OSPFConfig {
	if !cfg.OSPFEnable {
		return nil
	}

	// nil overrides fall back to the defaults; explicit values, zero
	// included, always win.
	area := l3out.OSPFArea{
		ID:   cfg.OSPFArea.ID,
		Type: cfg.OSPFArea.Type,
		Cost: ptr.Deref(cfg.OSPFArea.Cost, defaultOSPFAreaCost),
	}
	if area.Type == "" {
		area.Type = defaultOSPFAreaType
	}

	timers := l3out.OSPFTimers{
		Hello:         ptr.Deref(cfg.OSPFTimers.Hello, defaultOSPFHello),
		Dead:          ptr.Deref(cfg.OSPFTimers.Dead, defaultOSPFDead),
		Retransmit:    ptr.Deref(cfg.OSPFTimers.Retransmit, defaultOSPFRetransmit),
		TransmitDelay: ptr.Deref(cfg.OSPFTimers.TransmitDelay, defaultOSPFTransmitDelay),
		Priority:      ptr.Deref(cfg.OSPFTimers.Priority, defaultOSPFPriority),
	}

	auth := l3out.OSPFAuth{
		Key:   cfg.OSPFAuth.Key,
		KeyID: ptr.Deref(cfg.OSPFAuth.KeyID, defaultOSPFAuthKeyID),
		Type:  cfg.OSPFAuth.Type,
	}
	if auth.Type == "" {
		auth.Type = defaultOSPFAuthType
	}

	return &l3out.OSPFConfig{
		Area:   area,
		Timers: timers,
		Auth:   auth,
	}
}

// BGPFragment returns the BGP fragment, or nil when no peers are
// configured. Peers are passed through verbatim; the enable flag exists
// only alongside them.
func BGPFragment(peers map[string]topology.BGPPeer) *l3out.BGPConfig {
	if len(peers) == 0 {
		return nil
	}

	res := &l3out.BGPConfig{
		Enabled: bgpEnabled,
		Peers:   make(map[string]l3out.BGPPeer, len(peers)),
	}
	for key, peer := range peers {
		res.Peers[key] = l3out.BGPPeer{
			Address:  peer.Address,
			LocalAS:  peer.LocalAS,
			RemoteAS: peer.RemoteAS,
			Password: peer.Password,
		}
	}
	return res
}
