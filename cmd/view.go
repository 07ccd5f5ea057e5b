/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"

	"github.com/slffea/femview/viewdata"
)

type ModelView struct {
	Element      viewdata.ElementType
	DataDir      string
	CoordRescale float64
	IPFile       string
	Verbose      bool
}

type InputParameters struct {
	Title        string  `yaml:"Title"`
	ElementType  string  `yaml:"ElementType"`
	CoordRescale float64 `yaml:"CoordRescale"`
	DataDir      string  `yaml:"DataDir"`
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Element Type\n", ip.ElementType)
	fmt.Printf("%8.5f\t\t= Coordinate Rescale\n", ip.CoordRescale)
	fmt.Printf("[%s]\t\t\t= Data Directory\n", ip.DataDir)
}

// ViewCmd represents the view command
var ViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Reload GUI view parameters from the post-processor's view data file",
	Long:  `Reload GUI view parameters from the post-processor's view data file`,
	Run: func(cmd *cobra.Command, args []string) {
		mv := &ModelView{}
		el, _ := cmd.Flags().GetString("element")
		mv.Element = viewdata.NewElementType(el)
		mv.DataDir, _ = cmd.Flags().GetString("dataDir")
		mv.CoordRescale, _ = cmd.Flags().GetFloat64("rescale")
		mv.IPFile, _ = cmd.Flags().GetString("inputParametersFile")
		mv.Verbose, _ = cmd.Flags().GetBool("verbose")
		processViewInput(mv)
		RunView(mv)
	},
}

// processViewInput folds the optional YAML parameters file into the
// flag values. File values win where present, 2D solver style.
func processViewInput(mv *ModelView) (ip *InputParameters) {
	var (
		err error
	)
	if len(mv.IPFile) == 0 {
		return
	}
	var data []byte
	if data, err = ioutil.ReadFile(mv.IPFile); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Quarter plate with hole"
ElementType: quad # Can be "tri"
CoordRescale: 1.
DataDir: "."
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	ip = &InputParameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	if len(ip.ElementType) != 0 {
		mv.Element = viewdata.NewElementType(ip.ElementType)
	}
	if ip.CoordRescale != 0 {
		mv.CoordRescale = ip.CoordRescale
	}
	if len(ip.DataDir) != 0 {
		mv.DataDir = ip.DataDir
	}
	if mv.Verbose {
		ip.Print()
	}
	return
}

func init() {
	rootCmd.AddCommand(ViewCmd)
	ViewCmd.Flags().StringP("element", "e", "quad", "element shape flavor of the view data file: quad or tri")
	ViewCmd.Flags().StringP("dataDir", "F", ".", "directory holding the view data file (qdview.dat or trview.dat)")
	ViewCmd.Flags().Float64P("rescale", "r", 1.0, "coordinate rescale divisor applied to the displacement extrema")
	ViewCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for input parameters like:\n\t- ElementType\n\t- CoordRescale")
	ViewCmd.Flags().BoolP("verbose", "v", false, "print progress while reading")
}

func RunView(mv *ModelView) {
	filename := filepath.Join(mv.DataDir, mv.Element.DataFile())
	if mv.Verbose {
		fmt.Printf("Reading view data file named: %s\n", filename)
	}
	vp, err := viewdata.ReadViewData(filename, mv.CoordRescale)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	vp.Report(os.Stdout)
}
