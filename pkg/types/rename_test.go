package types_test

import (
	"testing"

	"github.com/arthur-debert/edit-move/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestRenameOperation_Verb(t *testing.T) {
	tests := []struct {
		name string
		op   types.RenameOperation
		want string
	}{
		{"same directory", types.RenameOperation{Source: "a/foo", Destination: "a/bar"}, "Renamed"},
		{"top level", types.RenameOperation{Source: "foo", Destination: "bar"}, "Renamed"},
		{"different directory", types.RenameOperation{Source: "foo", Destination: "dir/foo"}, "Moved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.Verb())
		})
	}
}

func TestRenameOperation_String(t *testing.T) {
	op := types.RenameOperation{Source: "foo", Destination: "bar baz"}
	assert.Equal(t, `"foo" => "bar baz"`, op.String())
}

func TestRenamePlan_Lookups(t *testing.T) {
	plan := types.RenamePlan{
		{Source: "a", Destination: "b"},
		{Source: "b", Destination: "c"},
	}

	assert.Equal(t, map[string]int{"a": 0, "b": 1}, plan.SourceIndex())
	assert.Equal(t, []string{"b", "c"}, plan.Destinations())
	assert.True(t, plan.Touches("c"))
	assert.False(t, plan.Touches("d"))
}
