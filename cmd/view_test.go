package cmd

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/slffea/femview/viewdata"
)

func TestViewInputParameters(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Quarter plate with hole
ElementType: tri # Can be "quad"
CoordRescale: 2.
DataDir: /tmp/fem
`)
	var input InputParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.ElementType, "tri")
	assert.Equal(t, input.CoordRescale, 2.)
	assert.Equal(t, input.DataDir, "/tmp/fem")
	input.Print()
	assert.Equal(t, input.Title, "Quarter plate with hole")

	// File values override the flag defaults
	ipFile := filepath.Join(t.TempDir(), "view.yaml")
	if err = ioutil.WriteFile(ipFile, fileInput, 0644); err != nil {
		panic(err)
	}
	mv := &ModelView{
		Element:      viewdata.EL_Quad,
		DataDir:      ".",
		CoordRescale: 1.0,
		IPFile:       ipFile,
	}
	processViewInput(mv)
	assert.Equal(t, mv.Element, viewdata.EL_Tri)
	assert.Equal(t, mv.CoordRescale, 2.)
	assert.Equal(t, mv.DataDir, "/tmp/fem")
}
