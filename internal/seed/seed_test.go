package seed

import (
	"testing"

	"github.com/linskybing/form-platform/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureYAML = `
roles:
  - name: admin
    rank: 0
  - name: student
    rank: 5
users:
  - username: alice
    email: alice@example.com
    full_name: Alice Admin
    role: admin
  - username: sam
    email: sam@example.com
    role: student
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(fixtureYAML))
	require.NoError(t, err)
	assert.Len(t, f.Roles, 2)
	require.Len(t, f.Users, 2)
	assert.Equal(t, "Alice Admin", f.Users[0].FullName)
	assert.Equal(t, "student", f.Users[1].Role)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":    "roles: []\nteams: []\n",
		"blank role":     "roles:\n  - name: \"\"\n",
		"blank username": "users:\n  - email: x@example.com\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	repos := store.Repos()
	f, err := Parse([]byte(fixtureYAML))
	require.NoError(t, err)

	first, err := Apply(repos, f)
	require.NoError(t, err)
	require.Len(t, first, 2)

	f.Users[1].FullName = "Sam Student"
	second, err := Apply(repos, f)
	require.NoError(t, err)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[1].ID, second[1].ID)

	sam, err := repos.User.GetUserByUsername("sam")
	require.NoError(t, err)
	assert.Equal(t, "Sam Student", sam.FullName)
	require.NotNil(t, sam.Role)
	assert.Equal(t, "student", sam.Role.Name)
}

func TestApplyUnknownRole(t *testing.T) {
	store := memory.NewStore()
	_, err := Apply(store.Repos(), Fixtures{Users: []UserFixture{{Username: "x", Role: "ghost"}}})
	assert.ErrorContains(t, err, "unknown role ghost")
	_, err = store.Repos().User.GetUserByUsername("x")
	assert.Error(t, err)
}
