package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"autocomment.dev/pkg/autocomment/internal/domain"
	m "autocomment.dev/pkg/autocomment/internal/model"
)

func TestReconcile(t *testing.T) {
	lines := []string{"a", "b", "c"}

	tests := []struct {
		name     string
		comments []m.Comment
		want     []string
	}{
		{"no comments", nil, []string{"a", "b", "c"}},
		{"first line", []m.Comment{{Line: 1, Text: "//1"}}, []string{"//1", "a", "b", "c"}},
		{"last line", []m.Comment{{Line: 3, Text: "//3"}}, []string{"a", "b", "//3", "c"}},
		{
			"descending input",
			[]m.Comment{{Line: 3, Text: "//3"}, {Line: 1, Text: "//1"}},
			[]string{"//1", "a", "b", "//3", "c"},
		},
		{
			"ascending input",
			[]m.Comment{{Line: 1, Text: "//1"}, {Line: 2, Text: "//2"}, {Line: 3, Text: "//3"}},
			[]string{"//1", "a", "//2", "b", "//3", "c"},
		},
		{"past the end is appended", []m.Comment{{Line: 10, Text: "//10"}}, []string{"a", "b", "c", "//10"}},
		{"non-positive line goes first", []m.Comment{{Line: 0, Text: "//0"}}, []string{"//0", "a", "b", "c"}},
		{
			"shared target line",
			[]m.Comment{{Line: 2, Text: "//a"}, {Line: 2, Text: "//b"}},
			[]string{"a", "//b", "//a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Reconcile(lines, tt.comments))
		})
	}
}

func TestReconcile_DoesNotModifyInputs(t *testing.T) {
	lines := []string{"a", "b"}
	comments := []m.Comment{{Line: 1, Text: "//1"}, {Line: 2, Text: "//2"}}

	out := domain.Reconcile(lines, comments)

	assert.Equal(t, []string{"a", "b"}, lines)
	assert.Equal(t, []m.Comment{{Line: 1, Text: "//1"}, {Line: 2, Text: "//2"}}, comments)
	assert.Len(t, out, len(lines)+len(comments))
}

func TestReconcile_PreservesOriginalOrder(t *testing.T) {
	lines := []string{"l1", "l2", "l3", "l4", "l5", "l6"}
	comments := []m.Comment{
		{Line: 5, Text: "// five"},
		{Line: 2, Text: "// two"},
		{Line: 6, Text: "// six"},
	}
	targets := map[string]string{"// five": "l5", "// two": "l2", "// six": "l6"}

	out := domain.Reconcile(lines, comments)
	assert.Len(t, out, len(lines)+len(comments))

	originals := make([]string, 0, len(lines))

	for i, line := range out {
		if target, ok := targets[line]; ok {
			assert.Equal(t, target, out[i+1], "comment %q", line)
			continue
		}

		originals = append(originals, line)
	}

	assert.Equal(t, lines, originals)
}

func TestReconcile_SharedTargetLineKeepsEveryComment(t *testing.T) {
	lines := []string{"a", "b", "c"}
	comments := []m.Comment{
		{Line: 2, Text: "//a"},
		{Line: 3, Text: "//c"},
		{Line: 2, Text: "//b"},
		{Line: 2, Text: "//d"},
	}

	out := domain.Reconcile(lines, comments)
	assert.Len(t, out, len(lines)+len(comments))

	b := slices.Index(out, "b")
	assert.ElementsMatch(t, []string{"//a", "//b", "//d"}, out[b-3:b])
	assert.Equal(t, []string{"a"}, out[:b-3])
	assert.Equal(t, []string{"//c", "c"}, out[b+1:])
}
