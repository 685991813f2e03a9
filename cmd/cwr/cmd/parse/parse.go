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
package parse

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cdacos/allegro-cwr"
	"github.com/spf13/cobra"
)

type conf struct {
	fileName     string
	versionHint  string
	showWarnings bool
}

func NewCommand() *cobra.Command {
	c := &conf{}
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a CWR file and print each record's type and line number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing file name")
			}
			c.fileName = args[0]
			return runE(c)
		},
	}

	cmd.Flags().StringVar(&c.versionHint, "version", "", "force CWR version (2.0, 2.1 or 2.2) instead of inferring it")
	cmd.Flags().BoolVar(&c.showWarnings, "warnings", true, "print warnings encountered while parsing")

	return cmd
}

func runE(c *conf) error {
	f, err := os.Open(c.fileName)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := []cwr.StreamOption{cwr.WithFilename(c.fileName)}
	switch c.versionHint {
	case "2.0":
		opts = append(opts, cwr.WithVersionHint(cwr.V20))
	case "2.1":
		opts = append(opts, cwr.WithVersionHint(cwr.V21))
	case "2.2":
		opts = append(opts, cwr.WithVersionHint(cwr.V22))
	}

	s, err := cwr.OpenCwrStream(f, opts...)
	if err != nil {
		return fmt.Errorf("opening %s: %w", c.fileName, err)
	}

	count := 0
	for {
		pr, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%s:%d: %w", c.fileName, count+1, err)
		}
		count++
		fmt.Printf("%6d  %-3s\n", pr.Line, pr.Record.RecordTypeCode())
		if c.showWarnings {
			for _, w := range pr.Warnings {
				fmt.Printf("        [%s] %s: %s\n", w.Level, w.FieldName, w.Description)
			}
		}
	}
	fmt.Fprintf(os.Stderr, "%d record(s)\n", count)
	return nil
}
