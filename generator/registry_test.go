package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/typeschema/graph"
)

func TestRegistryNameCollisions(t *testing.T) {
	g := graph.New("acme.Report",
		&graph.TypeNode{
			ID: "acme.Report", Name: "Report", Kind: graph.KindObject,
			Members: []*graph.MemberNode{
				member("first", "acme.billing.Item"),
				member("second", "acme.shipping.Item"),
			},
		},
		&graph.TypeNode{
			ID: "acme.billing.Item", Name: "Item", Namespace: "acme.billing", Kind: graph.KindObject,
			Members: []*graph.MemberNode{member("amount", "sys.int32")},
		},
		&graph.TypeNode{
			ID: "acme.shipping.Item", Name: "Item", Namespace: "acme.shipping", Kind: graph.KindObject,
			Members: []*graph.MemberNode{member("weight", "sys.int32")},
		},
		int32Node(),
	)

	res, err := ConvertWithResult(g, WithCommonNamespace("acme"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Item", "shipping_Item"}, res.Definitions)

	first, _ := res.Schema.Properties.Get("first")
	second, _ := res.Schema.Properties.Get("second")
	assert.Equal(t, "#/$defs/Item", first.Ref)
	assert.Equal(t, "#/$defs/shipping_Item", second.Ref)
}

func TestRegistryNestedDeclarationNames(t *testing.T) {
	g := graph.New("acme.Job",
		&graph.TypeNode{
			ID: "acme.Job", Name: "Job", Kind: graph.KindObject,
			Members: []*graph.MemberNode{member("status", "acme.Job.Status")},
		},
		&graph.TypeNode{
			ID: "acme.Job.Status", Name: "Status", Kind: graph.KindEnum,
			DeclaringType: "acme.Job",
			EnumValues:    []graph.EnumValue{{Name: "Pending"}, {Name: "Done", Value: 1}},
		},
	)

	res, err := ConvertWithResult(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"Job_Status"}, res.Definitions)

	status, _ := res.Schema.Properties.Get("status")
	assert.Equal(t, "#/$defs/Job_Status", status.Ref)
}

func TestRegistryNumericSuffixFallback(t *testing.T) {
	cfg := defaultConfig()
	g := graph.New("x.Root")
	r := newRegistry(g, &cfg)

	nodes := []*graph.TypeNode{
		{ID: "a.Thing", Name: "Thing", Kind: graph.KindObject},
		{ID: "b.Thing", Name: "Thing", Kind: graph.KindObject},
		{ID: "c.Thing", Name: "Thing", Kind: graph.KindObject},
	}
	var names []string
	for _, n := range nodes {
		name, _, err := r.reserve(n)
		require.NoError(t, err)
		names = append(names, name)
	}
	assert.Equal(t, []string{"Thing", "Thing2", "Thing3"}, names)
}

func TestRegistryDoubleReserve(t *testing.T) {
	cfg := defaultConfig()
	r := newRegistry(graph.New("x.Root"), &cfg)

	node := &graph.TypeNode{ID: "a.Thing", Name: "Thing", Kind: graph.KindObject}
	_, _, err := r.reserve(node)
	require.NoError(t, err)
	_, _, err = r.reserve(node)
	require.Error(t, err)
}
