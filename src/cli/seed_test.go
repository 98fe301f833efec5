package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ealert.io/src/models"
)

func TestSampleUsersAreRegistrable(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range sampleUsers {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Age)
		assert.NotEmpty(t, s.Gender)
		assert.NotEmpty(t, s.Address)
		assert.NotEmpty(t, s.Contact)
		assert.True(t, models.ValidCode(s.Code), "user %s has invalid code %q", s.Name, s.Code)

		assert.False(t, seen[s.Name], "duplicate sample user name %q", s.Name)
		seen[s.Name] = true
	}
}

func TestSampleAlertsAreComplete(t *testing.T) {
	for _, a := range sampleAlerts {
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Address)
		assert.NotEmpty(t, a.Contact)
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	root := NewRootCmd()

	names := map[string]bool{}
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}

	require.True(t, names["seed"])
	require.True(t, names["info"])
}
