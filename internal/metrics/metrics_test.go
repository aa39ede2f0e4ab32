package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRender(t *testing.T) {
	before := testutil.ToFloat64(renders.WithLabelValues("board"))
	ObserveRender("board", 12, 3*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(renders.WithLabelValues("board")))
}

func TestCountVisibility(t *testing.T) {
	before := testutil.ToFloat64(visibilityMutations.WithLabelValues("toggle_global", "rejected"))
	CountVisibility("toggle_global", "rejected")
	CountVisibility("toggle_global", "rejected")
	assert.Equal(t, before+2, testutil.ToFloat64(visibilityMutations.WithLabelValues("toggle_global", "rejected")))
}
