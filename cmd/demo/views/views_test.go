package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViews(t *testing.T) {
	assert.Equal(t, "== ada's counter · light ==", Header("ada", "light"))
	assert.Equal(t, "count: 3  (step 2)", Counter(3, 2))
	assert.Equal(t, "changes: 1  renders: header=2 counter=1", Stats(1, []RenderCount{
		{Key: "header", Renders: 2},
		{Key: "counter", Renders: 1},
	}))
	assert.Equal(t, "[+/-] count  [n] name  [t] theme  [r] reset  [q] quit", Help(false))
	assert.Contains(t, Help(true), "(auto +1)")
}
