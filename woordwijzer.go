// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2024 Department of Linguistics,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// woordwijzer is a batch annotator and a small web service for Dutch
// words - it detects their word class, fetches dictionary definitions
// from Wiktionary and derives inflected forms.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

var (
	version   string
	buildDate string
	gitCommit string
)

type CmdOptions struct {
	Host             string
	Port             int
	ReadTimeoutSecs  int
	WriteTimeoutSecs int
	LogPath          string
	LogLevel         string
}

func main() {
	cmdOpts := new(CmdOptions)
	flag.StringVar(&cmdOpts.Host, "host", "", "Host to listen on (serve mode)")
	flag.IntVar(&cmdOpts.Port, "port", 0, "Port to listen on (serve mode)")
	flag.IntVar(&cmdOpts.ReadTimeoutSecs, "read-timeout", 0, "Server read timeout in seconds")
	flag.IntVar(&cmdOpts.WriteTimeoutSecs, "write-timeout", 0, "Server write timeout in seconds")
	flag.StringVar(&cmdOpts.LogPath, "log-path", "", "A file to log to (if empty then stderr is used)")
	flag.StringVar(&cmdOpts.LogLevel, "log-level", "", "A log level (debug, info, warn/warning, error)")

	flag.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"woordwijzer - a Dutch word analyzer"+
				"\n\nUsage:"+
				"\n\t%s [options] analyze [words file] [output.json] [conf.json]"+
				"\n\t%s [options] serve [conf.json]"+
				"\n\t%s [options] version\n",
			filepath.Base(os.Args[0]), filepath.Base(os.Args[0]), filepath.Base(os.Args[0]),
		)
		flag.PrintDefaults()
	}
	flag.Parse()

	switch flag.Arg(0) {
	case "version":
		fmt.Printf("woordwijzer %s\nbuild date: %s\nlast commit: %s\n", version, buildDate, gitCommit)
	case "analyze":
		if flag.Arg(1) == "" {
			fmt.Fprintln(os.Stderr, "missing words file. Try -h for help")
			os.Exit(1)
		}
		conf := findAndLoadConfig(flag.Arg(3), cmdOpts)
		runAnalyze(conf, flag.Arg(1), flag.Arg(2))
	case "serve":
		conf := findAndLoadConfig(flag.Arg(1), cmdOpts)
		log.Info().
			Str("version", version).
			Str("buildDate", buildDate).
			Str("lastCommit", gitCommit).
			Msg("Starting woordwijzer")
		runService(conf)
	default:
		fmt.Printf("Unknown action [%s]. Try -h for help\n", flag.Arg(0))
		os.Exit(1)
	}
}
