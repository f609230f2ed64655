package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
)

func TestShowCmd(t *testing.T) {
	useTestApp(t)

	out, err := execute(t, "show", domain.SourceFMIBistro, fmiFixture)
	require.NoError(t, err)

	assert.Contains(t, out, "FMI Bistro Garching · KW 44/2017")
	assert.Contains(t, out, "Monday, 30.10.2017")
	assert.Contains(t, out, "Gulasch vom Rind mit Spätzle")
	assert.Contains(t, out, "3.60 €")
}

func TestShowCmd_MedizinerWeekFromFilename(t *testing.T) {
	useTestApp(t)

	out, err := execute(t, "show", domain.SourceMedizinerMensa, medizinerFixture)
	require.NoError(t, err)
	assert.Contains(t, out, "Mediziner Mensa · KW 44/2018")
}
