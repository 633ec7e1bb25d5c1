package literal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
		want Kind
	}{
		{"empty", "", KindUnknown},
		{"plus line", "+----+", KindLine},
		{"bar line", "I----I", KindLine},
		{"indented line", "  +--+", KindLine},
		{"single row garbage", "----", KindUnknown},
		{"rectangle", "+--+\n|  |\n+--+", KindRectangle},
		{"two row rectangle", "+--+\n+--+", KindRectangle},
		{"rectangle with annotated interior", "+----+\n| /**/ |\n+----+", KindRectangle},
		{
			name: "cuboid",
			body: strings.Join([]string{
				"  +--+",
				" /  /",
				"+--+",
			}, "\n"),
			want: KindCuboid,
		},
		{"multi row without top corner", "|--|\n+--+", KindUnknown},
		{"multi row without bottom corner", "+--+\n|--|", KindUnknown},
		{"blank rows", "  \n  ", KindUnknown},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Classify(LoadGrid(tc.body)))
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "line", KindLine.String())
	assert.Equal(t, "rectangle", KindRectangle.String())
	assert.Equal(t, "cuboid", KindCuboid.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
