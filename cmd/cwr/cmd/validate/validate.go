/*
 * Copyright 2019 National Library of Norway.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package validate

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cdacos/allegro-cwr"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type conf struct {
	fileName string
	asYaml   bool
}

func NewCommand() *cobra.Command {
	c := &conf{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse a CWR file and report every field-level warning",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing file name")
			}
			c.fileName = args[0]
			return runE(c)
		},
	}
	cmd.Flags().BoolVar(&c.asYaml, "yaml", false, "print the warning list as YAML")
	return cmd
}

type summary struct {
	File         string        `yaml:"file"`
	RecordCount  int           `yaml:"record_count"`
	WarningCount int           `yaml:"warning_count"`
	Warnings     []cwr.Warning `yaml:"warnings,omitempty"`
}

func runE(c *conf) error {
	f, err := os.Open(c.fileName)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := cwr.OpenCwrStream(f, cwr.WithFilename(c.fileName))
	if err != nil {
		return fmt.Errorf("opening %s: %w", c.fileName, err)
	}

	sum := summary{File: c.fileName}
	for {
		pr, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		sum.RecordCount++
		sum.Warnings = append(sum.Warnings, pr.Warnings...)
	}
	sum.WarningCount = len(sum.Warnings)

	if c.asYaml {
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(sum)
	}

	fmt.Printf("%s: %d records, %d warnings\n", sum.File, sum.RecordCount, sum.WarningCount)
	for _, w := range sum.Warnings {
		fmt.Printf("  [%s] %s: %s\n", w.Level, w.FieldName, w.Description)
	}
	if cwr.AnyCritical(sum.Warnings) {
		os.Exit(1)
	}
	return nil
}
