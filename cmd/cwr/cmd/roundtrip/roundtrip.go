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
package roundtrip

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/cdacos/allegro-cwr"
	"github.com/spf13/cobra"
)

type conf struct {
	fileName string
	timeout  time.Duration
}

func NewCommand() *cobra.Command {
	c := &conf{}
	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Parse then re-serialize a CWR file, reporting any byte divergence",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("missing file name")
			}
			c.fileName = args[0]
			return runE(c)
		},
	}
	cmd.Flags().DurationVar(&c.timeout, "timeout", 0, "cancel the validation run after this duration (0 = no timeout)")
	return cmd
}

func runE(c *conf) error {
	ctx := context.Background()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	rpt, err := cwr.ValidateRoundtrip(ctx, c.fileName)
	if err != nil && rpt.FailedToOpen != nil {
		return fmt.Errorf("opening %s: %w", c.fileName, err)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d lines read, %d warnings, %d divergences\n",
		rpt.Path, rpt.LinesRead, len(rpt.Warnings), len(rpt.Divergences))
	for _, d := range rpt.Divergences {
		fmt.Println(" ", d.String())
	}

	if rpt.HasErrors() {
		os.Exit(1)
	}
	return nil
}
