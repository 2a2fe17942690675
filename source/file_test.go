package source

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromPath(t *testing.T) {
	src, err := FromPath("roster.CSV")
	require.NoError(t, err)
	require.IsType(t, &CSV{}, src)

	src, err = FromPath("/tmp/roster.tsv")
	require.NoError(t, err)
	require.Equal(t, '\t', src.(*CSV).comma)

	src, err = FromPath("roster.xlsx")
	require.NoError(t, err)
	require.IsType(t, &XLSX{}, src)

	_, err = FromPath("roster.pdf")
	require.ErrorContains(t, err, "unsupported")
}
