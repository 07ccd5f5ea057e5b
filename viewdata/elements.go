package viewdata

import (
	"fmt"
	"strings"
)

// ElementType selects which element shape flavor of the view data
// file is read. The post-processor writes one file per flavor.
type ElementType uint

const (
	EL_Quad ElementType = iota
	EL_Tri
)

var (
	ElementNames = map[string]ElementType{
		"quad": EL_Quad,
		"tri":  EL_Tri,
	}
	ElementPrintNames = []string{"Quad", "Tri"}
	elementDataFiles  = []string{"qdview.dat", "trview.dat"}
)

func (et ElementType) Print() (txt string) {
	txt = ElementPrintNames[et]
	return
}

// DataFile is the filename the post-processor writes for this flavor.
func (et ElementType) DataFile() (name string) {
	name = elementDataFiles[et]
	return
}

func NewElementType(label string) (et ElementType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(strings.Trim(label, " "))
	if et, ok = ElementNames[label]; !ok {
		err = fmt.Errorf("unable to use element type named %s", label)
		panic(err)
	}
	return
}
