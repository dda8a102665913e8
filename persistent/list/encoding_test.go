package list_test

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/cons/persistent/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type config struct {
	Name  string            `json:"name" yaml:"name"`
	Paths list.List[string] `json:"paths" yaml:"paths"`
	Ports list.List[int]    `json:"ports" yaml:"ports"`
}

func TestJSON(t *testing.T) {
	c := config{Name: "x", Paths: list.Of("/a", "/b")}
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","paths":["/a","/b"],"ports":[]}`, string(data))
	var d config
	require.NoError(t, json.Unmarshal([]byte(`{"paths":["/c"],"ports":[80,443]}`), &d))
	assert.Equal(t, "/c", d.Paths.String())
	assert.Equal(t, "80,443", d.Ports.String())
	err = json.Unmarshal([]byte(`{"ports":["x"]}`), &d)
	assert.Error(t, err)
}

func TestUnmarshalLeavesSharedCellsAlone(t *testing.T) {
	l := list.Of(1, 2)
	alias := l
	require.NoError(t, json.Unmarshal([]byte(`[3]`), &l))
	assert.Equal(t, "3", l.String())
	assert.Equal(t, "1,2", alias.String())
}

func TestYAML(t *testing.T) {
	c := config{Name: "y", Ports: list.Of(22, 8080)}
	data, err := yaml.Marshal(c)
	require.NoError(t, err)
	var d config
	require.NoError(t, yaml.Unmarshal(data, &d))
	assert.Equal(t, "y", d.Name)
	assert.True(t, list.Equal(c.Ports, d.Ports))
	assert.True(t, d.Paths.IsEmpty())
	src := "name: z\npaths:\n  - /etc\n  - /usr\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &d))
	assert.Equal(t, "/etc,/usr", d.Paths.String())
	assert.Error(t, yaml.Unmarshal([]byte("ports: {a: 1}\n"), &d))
}
