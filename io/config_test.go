package io

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, text string) string {
	dir, err := ioutil.TempDir("", "gosph_test")
	if err != nil {
		t.Fatalf("TempDir failed: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	fname := path.Join(dir, "mesh.config")
	if err := ioutil.WriteFile(fname, []byte(text), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return fname
}

func TestReadMeshConfig(t *testing.T) {
	fname := writeConfig(t, `[Domain]
XMin = 0
YMin = 0
ZMin = 0
XMax = 10
YMax = 20
ZMax = 30
Spacing = 0.5
Periodic = true

[Mesh]
Levels = 2
`)

	cfg, err := ReadMeshConfig(fname)
	if err != nil {
		t.Fatalf("ReadMeshConfig failed: %v", err)
	}

	assert.Equal(t, 0.5, cfg.Domain.Spacing)
	assert.Equal(t, true, cfg.Domain.Periodic)
	assert.Equal(t, 2, cfg.Mesh.Levels)

	box := cfg.Domain.Box()
	assert.Equal(t, 10.0, box.Max.X)
	assert.Equal(t, 20.0, box.Max.Y)
	assert.Equal(t, 30.0, box.Max.Z)
}

func TestReadMeshConfigDefaults(t *testing.T) {
	fname := writeConfig(t, `[Domain]
XMax = 1
YMax = 1
ZMax = 1
Spacing = 0.25
`)

	cfg, err := ReadMeshConfig(fname)
	if err != nil {
		t.Fatalf("ReadMeshConfig failed: %v", err)
	}
	assert.Equal(t, 1, cfg.Mesh.Levels, "level count defaults to one")
	assert.Equal(t, false, cfg.Domain.Periodic)
}

func TestReadMeshConfigErrors(t *testing.T) {
	table := []struct {
		name string
		text string
	}{
		{"zero spacing", `[Domain]
XMax = 1
YMax = 1
ZMax = 1
Spacing = 0
`},
		{"negative spacing", `[Domain]
XMax = 1
YMax = 1
ZMax = 1
Spacing = -0.5
`},
		{"inverted x bounds", `[Domain]
XMin = 2
XMax = 1
YMax = 1
ZMax = 1
Spacing = 0.5
`},
		{"inverted z bounds", `[Domain]
XMax = 1
YMax = 1
ZMin = 5
ZMax = 1
Spacing = 0.5
`},
		{"negative levels", `[Domain]
XMax = 1
YMax = 1
ZMax = 1
Spacing = 0.5

[Mesh]
Levels = -2
`},
	}

	for _, test := range table {
		fname := writeConfig(t, test.text)
		if _, err := ReadMeshConfig(fname); err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}

func TestExampleMeshFileParses(t *testing.T) {
	fname := writeConfig(t, ExampleMeshFile)
	cfg, err := ReadMeshConfig(fname)
	if err != nil {
		t.Fatalf("the example configuration does not parse: %v", err)
	}
	assert.Equal(t, 1.0, cfg.Domain.Spacing)
}
