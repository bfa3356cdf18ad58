// SPDX-License-Identifier:Apache-2.0

package topology

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"k8s.io/utils/ptr"
)

func TestPathListKeepsDocumentOrder(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantKeys []string
	}{
		{
			name: "yaml order preserved",
			content: `paths:
  zeta:
    podId: 1
    nodes: [101]
  alpha:
    podId: 1
    nodes: [102]
  mid:
    podId: 2
    nodes: [103]
`,
			wantKeys: []string{"zeta", "alpha", "mid"},
		},
		{
			name: "reordered document reorders the list",
			content: `paths:
  alpha:
    podId: 1
    nodes: [102]
  zeta:
    podId: 1
    nodes: [101]
  mid:
    podId: 2
    nodes: [103]
`,
			wantKeys: []string{"alpha", "zeta", "mid"},
		},
		{
			name: "json document",
			content: `{"paths": {"zeta": {"podId": 1, "nodes": [101]}, "alpha": {"podId": 1, "nodes": [102]}}}`,
			wantKeys: []string{"zeta", "alpha"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tc.content))
			if err != nil {
				t.Fatalf("got error %s", err)
			}

			keys := make([]string, 0, len(cfg.Paths))
			for _, p := range cfg.Paths {
				keys = append(keys, p.Key)
			}
			if diff := cmp.Diff(tc.wantKeys, keys); diff != "" {
				t.Fatalf("key order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseConfigDecodesBody(t *testing.T) {
	content := `paths:
  vpc1:
    name: eth1/1
    podId: 1
    nodes: [101, 102]
    vpc: true
    vlanId: 300
    mtu: 9000
`
	cfg, err := ParseConfig([]byte(content))
	if err != nil {
		t.Fatalf("got error %s", err)
	}

	want := PathList{
		{Key: "vpc1", Name: "eth1/1", PodID: 1, Nodes: []int{101, 102}, VPC: true, VLANID: 300, MTU: ptr.To(9000)},
	}
	if diff := cmp.Diff(want, cfg.Paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigWithoutPaths(t *testing.T) {
	cfg, err := ParseConfig([]byte("name: out\n"))
	if err != nil {
		t.Fatalf("got error %s", err)
	}
	if len(cfg.Paths) != 0 {
		t.Fatalf("expecting no paths, got %v", cfg.Paths)
	}
}

func TestParseConfigRejectsNonObjectPaths(t *testing.T) {
	content := `paths:
  - name: eth1/1
`
	if _, err := ParseConfig([]byte(content)); err == nil {
		t.Fatalf("expected error, did not happen")
	}
}

func TestPathListRoundTrip(t *testing.T) {
	paths := PathList{
		{Key: "b", PodID: 1, Nodes: []int{101}},
		{Key: "a", PodID: 1, Nodes: []int{102}},
	}

	data, err := paths.MarshalJSON()
	if err != nil {
		t.Fatalf("got error %s", err)
	}

	var decoded PathList
	if err := decoded.UnmarshalJSON(data); err != nil {
		t.Fatalf("got error %s", err)
	}
	if diff := cmp.Diff(paths, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
