/*
  main.go
  Description: termgrid-demo, a small CLI that renders a YAML fixture through
  the table engine
  -----------------------------------------------------------------------------
*/

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/clinaresl/termgrid/table"
	"github.com/clinaresl/termgrid/table/termwidth"
)

var log = logrus.New()

// fixture is the shape of the YAML file termgrid-demo reads: a header row,
// one record per subsequent row keyed by header name, and the border style
// to demonstrate.
type fixture struct {
	Header []string                 `yaml:"header"`
	Rows   []map[string]interface{} `yaml:"rows"`
	Border string                   `yaml:"border"`
}

var borderStyles = map[string]table.BorderStyle{
	"none":        table.StyleNone,
	"air":         table.StyleAir,
	"thin":        table.StyleThin,
	"double":      table.StyleDouble,
	"thin_double": table.StyleThinDouble,
	"fancy_light": table.StyleFancyLight,
	"old_school":  table.StyleOldSchool,
}

func loadFixture(path string) (fixture, error) {
	var fx fixture
	data, err := os.ReadFile(path)
	if err != nil {
		return fx, err
	}
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return fx, err
	}
	return fx, nil
}

func newRenderCmd() *cobra.Command {
	var width int
	var charWidthName string

	cmd := &cobra.Command{
		Use:   "render [fixture.yaml]",
		Short: "render a YAML fixture as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fx, err := loadFixture(args[0])
			if err != nil {
				return fmt.Errorf("reading fixture: %w", err)
			}

			records := make([]map[string]any, len(fx.Rows))
			for i, row := range fx.Rows {
				record := make(map[string]any, len(row))
				for k, v := range row {
					record[k] = v
				}
				records[i] = record
			}
			model := table.NewRecordModel(fx.Header, records)

			tbl, err := table.NewTable(model)
			if err != nil {
				return err
			}
			tbl.WithLogger(log)

			var charWidth termwidth.CharWidth = termwidth.ASCII
			if charWidthName == "eastasian" {
				charWidth = termwidth.EastAsian
			}
			tbl.WithCharWidth(charWidth)

			style, ok := borderStyles[fx.Border]
			if !ok {
				style = table.StyleThin
			}
			rows, columns := model.RowCount(), model.ColumnCount()
			if err := tbl.WithBorder(0, 0, rows, columns, table.Outline, style); err != nil {
				return err
			}
			if err := tbl.WithBorder(0, 0, 1, columns, table.Bottom, style); err != nil {
				return err
			}

			out, err := tbl.Render(width)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "total render width, including borders")
	cmd.Flags().StringVar(&charWidthName, "char-width", "ascii", "rune width measurement: ascii or eastasian")
	viper.BindPFlag("width", cmd.Flags().Lookup("width"))
	viper.BindPFlag("char-width", cmd.Flags().Lookup("char-width"))

	return cmd
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{})

	root := &cobra.Command{
		Use:   "termgrid-demo",
		Short: "demonstrates the termgrid table rendering engine",
	}
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	cobra.OnInitialize(func() {
		if viper.GetBool("verbose") {
			log.SetLevel(logrus.DebugLevel)
		}
	})

	root.AddCommand(newRenderCmd())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
