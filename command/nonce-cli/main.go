// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	_ "github.com/bitmark-inc/noncesearch/blockdigest/argon2d"
	"github.com/bitmark-inc/noncesearch/configuration"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "nonce-cli"
	app.Usage = "inspect nonce search headers and results"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	headerFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "algorithm, a",
			Value: "",
			Usage: " digest `NAME` [default sha256]",
		},
		cli.StringFlag{
			Name:  "seed, s",
			Value: configuration.DefaultPreviousSeed,
			Usage: " previous block seed `TEXT`",
		},
		cli.StringFlag{
			Name:  "payload, p",
			Value: "",
			Usage: "+transactions `TEXT`",
		},
		cli.StringFlag{
			Name:  "url, u",
			Value: "",
			Usage: "+fetch transactions from `URL`",
		},
		cli.StringFlag{
			Name:  "header, H",
			Value: "",
			Usage: "+previously assembled `HEADER`",
		},
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "header",
			Usage:     "assemble the header for a seed and payload",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags:     headerFlags,
			Action:    runHeader,
		},
		{
			Name:      "digest",
			Usage:     "digest of header and nonce",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "nonce, n",
					Value: "",
					Usage: "*decimal `NONCE`",
				},
			}, headerFlags...),
			Action: runDigest,
		},
		{
			Name:      "verify",
			Usage:     "check a nonce, digest and difficulty",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "nonce, n",
					Value: "",
					Usage: "*decimal `NONCE`",
				},
				cli.StringFlag{
					Name:  "digest, d",
					Value: "",
					Usage: "*claimed hex `DIGEST`",
				},
				cli.IntFlag{
					Name:  "difficulty, D",
					Value: 0,
					Usage: "*leading zero hex digits `N`",
				},
			}, headerFlags...),
			Action: runVerify,
		},
		{
			Name:   "algorithms",
			Usage:  "list digest algorithms",
			Action: runAlgorithms,
		},
		{
			Name:  "version",
			Usage: "display nonce-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
