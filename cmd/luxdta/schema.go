package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/luxdta"
	"github.com/arloliu/luxdta/dta"
)

type schemaDoc struct {
	File        string          `yaml:"file"`
	Version     string          `yaml:"version"`
	Fingerprint string          `yaml:"fingerprint"`
	RecordWidth int             `yaml:"record_width"`
	Fields      []string        `yaml:"fields,flow"`
	Duplicates  []string        `yaml:"duplicates,omitempty,flow"`
	Descriptors []descriptorDoc `yaml:"descriptors"`
}

type descriptorDoc struct {
	Offset   int      `yaml:"offset"`
	Kind     string   `yaml:"kind"`
	Category string   `yaml:"category,omitempty"`
	Name     string   `yaml:"name,omitempty"`
	Color    string   `yaml:"color,omitempty"`
	Scale    int16    `yaml:"scale,omitempty"`
	Bits     []bitDoc `yaml:"bits,omitempty"`
	Labels   []string `yaml:"labels,omitempty,flow"`
}

type bitDoc struct {
	Name     string `yaml:"name"`
	Position uint8  `yaml:"position"`
	Inverted bool   `yaml:"inverted,omitempty"`
}

func newSchemaCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema FILE",
		Short: "Print the record schema embedded in a 9003 DTA file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := luxdta.ReadFile(args[0])
			if err != nil {
				return err
			}
			res, err := luxdta.Decode(data, dta.WithLogger(a.logger))
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			if res.Schema == nil {
				return fmt.Errorf("%s: %s files carry no schema", args[0], res.Version)
			}

			return writeSchema(cmd.OutOrStdout(), args[0], res)
		},
	}

	return cmd
}

func writeSchema(w io.Writer, file string, res *dta.Result) error {
	table := res.Schema
	doc := schemaDoc{
		File:        file,
		Version:     res.Version.String(),
		Fingerprint: fmt.Sprintf("%016x", table.Fingerprint()),
		RecordWidth: table.RecordWidth(),
		Fields:      table.FieldNames(),
		Duplicates:  table.Duplicates(),
	}

	for _, d := range table.Descriptors() {
		dd := descriptorDoc{
			Offset: d.Offset,
			Kind:   d.Kind.String(),
			Name:   d.Name,
			Labels: d.Labels,
		}
		if d.Kind != dta.DescriptorCategory {
			dd.Category = d.Category
		}
		if d.Kind == dta.DescriptorAnalogue {
			dd.Color = colorHex(d.Color)
			dd.Scale = d.Scale
		}
		for _, b := range d.Bits {
			dd.Bits = append(dd.Bits, bitDoc{Name: b.Name, Position: b.Position, Inverted: b.Inverted})
		}
		doc.Descriptors = append(doc.Descriptors, dd)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

func colorHex(c dta.Color) string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}
