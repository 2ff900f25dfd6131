package weburl_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/weburl/pkg/urltest"
)

func TestVectors(t *testing.T) {
	t.Parallel()

	cases, err := urltest.Open("testdata/urltestdata.json")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	outcomes, err := urltest.Run(context.Background(), cases)
	require.NoError(t, err)

	for _, out := range outcomes {
		assert.NoErrorf(t, out.Err, "case %d %q", out.Case.Index, out.Case.Input)
		assert.Emptyf(t, out.Mismatches, "case %d %q", out.Case.Index, out.Case.Input)
	}

	summary := urltest.Summarize(outcomes)
	assert.Equal(t, summary.Total, summary.Passed)
}
